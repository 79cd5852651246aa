package attr

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseColor parses a CSS style color: a color name, #rgb, #rrggbb,
// rgb(r,g,b) with components 0-255 or rgba(r,g,b,a) with alpha 0-1.
func ParseColor(s string) (color.NRGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case v == "":
		return color.NRGBA{}, fmt.Errorf("%w: empty", ErrColor)
	case v == "transparent":
		return color.NRGBA{}, nil
	case strings.HasPrefix(v, "#"):
		if len(v) != 4 && len(v) != 7 {
			return color.NRGBA{}, fmt.Errorf("%w: %q: want #rgb or #rrggbb", ErrColor, s)
		}
		c, err := colorful.Hex(v)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q: %w", ErrColor, s, err)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
	case strings.HasPrefix(v, "rgba("):
		return parseRGBFunc(s, v[len("rgba("):], true)
	case strings.HasPrefix(v, "rgb("):
		return parseRGBFunc(s, v[len("rgb("):], false)
	}
	c, ok := colornames.Map[v]
	if !ok {
		return color.NRGBA{}, fmt.Errorf("%w: unknown color name %q", ErrColor, s)
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}

// args is everything after the opening parenthesis.
func parseRGBFunc(orig, args string, alpha bool) (color.NRGBA, error) {
	body, ok := strings.CutSuffix(args, ")")
	if !ok {
		return color.NRGBA{}, fmt.Errorf("%w: %q: missing )", ErrColor, orig)
	}
	parts := strings.Split(body, ",")
	want := 3
	if alpha {
		want = 4
	}
	if len(parts) != want {
		return color.NRGBA{}, fmt.Errorf("%w: %q: want %d components, got %d", ErrColor, orig, want, len(parts))
	}
	var rgb [3]uint8
	for i := range rgb {
		n, err := strconv.ParseUint(strings.TrimSpace(parts[i]), 10, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q: %w", ErrColor, orig, err)
		}
		rgb[i] = uint8(n)
	}
	res := color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
	if alpha {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q: %w", ErrColor, orig, err)
		}
		if math.IsNaN(a) || a < 0 || a > 1 {
			return color.NRGBA{}, fmt.Errorf("%w: %q: alpha must be between 0 and 1", ErrColor, orig)
		}
		res.A = uint8(math.Round(a * 255))
	}
	return res, nil
}

// FormatColor writes c in a form accepted by ParseColor.
func FormatColor(c color.NRGBA) string {
	if c.A == 255 {
		cf, _ := colorful.MakeColor(c)
		return cf.Hex()
	}
	a := strconv.FormatFloat(float64(c.A)/255, 'f', 3, 64)
	a = strings.TrimRight(strings.TrimRight(a, "0"), ".")
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, a)
}

func parseColor(s string) (Value, error) {
	c, err := ParseColor(s)
	if err != nil {
		return Value{}, err
	}
	return ColorValue(c), nil
}
