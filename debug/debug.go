package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Header bool
	Attrs  bool
	Grid   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Header = boolEnv("KNIT_DEBUG_HEADER")
	d.Attrs = boolEnv("KNIT_DEBUG_ATTRS")
	d.Grid = boolEnv("KNIT_DEBUG_GRID")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Header() bool {
	return d.Header
}
func Attrs() bool {
	return d.Attrs
}
func Grid() bool {
	return d.Grid
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
