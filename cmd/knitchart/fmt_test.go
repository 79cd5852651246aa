package main

import (
	"bytes"
	"testing"

	"github.com/signadot/knitchart/libdiff"
)

func TestWriteDiff(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	lines := libdiff.Lines("rows=2\nCHART\nX\n", "rows=2\ncolumns=1\nCHART\nX\n")
	if err := writeDiff(buf, "a.knit", lines, false); err != nil {
		t.Fatal(err)
	}
	want := "--- a.knit\n+++ a.knit (formatted)\n rows=2\n+columns=1\n CHART\n X\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestWriteDiffUnchanged(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := writeDiff(buf, "a.knit", libdiff.Lines("CHART\n", "CHART\n"), true); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("got %q want nothing", buf.String())
	}
}
