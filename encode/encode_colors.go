package encode

import (
	"strings"

	"github.com/fatih/color"
	"github.com/signadot/knitchart/chart"
)

type ColorAttr int

const (
	KeyColor ColorAttr = iota
	SepColor
	ValueColor
	KeywordColor
	KnitColor
	PurlColor
	EmptyColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			KeyColor:     color.RGB(196, 96, 16).SprintfFunc(),
			SepColor:     color.RGB(255, 0, 196).SprintfFunc(),
			ValueColor:   color.RGB(8, 196, 16).SprintfFunc(),
			KeywordColor: color.New(color.FgCyan, color.Bold).SprintfFunc(),
			KnitColor:    color.RGB(128, 216, 236).SprintfFunc(),
			PurlColor:    color.RGB(198, 198, 46).SprintfFunc(),
			EmptyColor:   color.RGB(96, 96, 96).SprintfFunc(),
		},
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}

func stitchColor(s chart.Stitch) ColorAttr {
	switch s {
	case chart.Purl:
		return PurlColor
	case chart.Empty:
		return EmptyColor
	default:
		return KnitColor
	}
}
