package encode

import "github.com/signadot/knitchart/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// EncodeDefaults causes attributes with default values to be written as
// well.
func EncodeDefaults(v bool) EncodeOption {
	return func(es *EncState) { es.defaults = v }
}

// EncodeWarnings causes chart warnings to be included in YAML and JSON
// output.
func EncodeWarnings(v bool) EncodeOption {
	return func(es *EncState) { es.warnings = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
