// Package format names the forms a chart can be written in.
package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	TextFormat Format = iota
	YAMLFormat
	JSONFormat

	nFormats
)

var ErrBadFormat = errors.New("bad format")

var names = [nFormats]string{
	TextFormat: "text",
	YAMLFormat: "yaml",
	JSONFormat: "json",
}

// suffixes maps file extensions to formats. The first listed for a format
// is its Suffix.
var suffixes = []struct {
	ext string
	f   Format
}{
	{".knit", TextFormat},
	{".chart", TextFormat},
	{".txt", TextFormat},
	{".yaml", YAMLFormat},
	{".yml", YAMLFormat},
	{".json", JSONFormat},
}

// ParseFormat accepts a format name or its first letter, in any case.
func ParseFormat(v string) (Format, error) {
	lv := strings.ToLower(v)
	for f, name := range names {
		if lv == name || lv == name[:1] {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// ForPath returns the format implied by the extension of path.
func ForPath(path string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range suffixes {
		if s.ext == ext {
			return s.f, true
		}
	}
	return 0, false
}

func (f Format) valid() bool { return f >= 0 && f < nFormats }

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
	return []byte(names[f]), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsText() bool { return f == TextFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }
func (f Format) IsJSON() bool { return f == JSONFormat }

// Suffix returns the preferred file extension for f, including the dot.
func (f Format) Suffix() string {
	for _, s := range suffixes {
		if s.f == f {
			return s.ext
		}
	}
	return ""
}
