package attr

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxDimension is the largest rows or columns value a header may declare.
const MaxDimension = 4096

// ParseCount parses a base 10 unsigned count that fits in an int.
func ParseCount(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, strconv.IntSize-1)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCount, err)
	}
	return uint(n), nil
}

// ParseDimension parses a rows or columns count, at most MaxDimension.
func ParseDimension(s string) (uint, error) {
	n, err := ParseCount(s)
	if err != nil {
		return 0, err
	}
	if n > MaxDimension {
		return 0, fmt.Errorf("%w: %d exceeds the maximum chart dimension %d", ErrCount, n, MaxDimension)
	}
	return n, nil
}

// ParseLength parses a non-negative length in pixels, with or without a
// px suffix.
func ParseLength(s string) (float64, error) {
	v := strings.TrimSuffix(strings.TrimSpace(s), "px")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrLength, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, fmt.Errorf("%w: %q must be a finite non-negative number", ErrLength, s)
	}
	return f, nil
}

func FormatLength(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64) + "px"
}

func parseCount(s string) (Value, error) {
	n, err := ParseCount(s)
	if err != nil {
		return Value{}, err
	}
	return CountValue(n), nil
}

func parseDimension(s string) (Value, error) {
	n, err := ParseDimension(s)
	if err != nil {
		return Value{}, err
	}
	return CountValue(n), nil
}

func parseLength(s string) (Value, error) {
	f, err := ParseLength(s)
	if err != nil {
		return Value{}, err
	}
	return LengthValue(f), nil
}
