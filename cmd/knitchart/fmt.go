package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/knitchart/chart"
	"github.com/signadot/knitchart/encode"
	"github.com/signadot/knitchart/format"
	"github.com/signadot/knitchart/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func fmtCharts(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachInput(cc, args, func(name string, r io.Reader) error {
		in, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", name, err)
		}
		c, err := chart.Read(bytes.NewReader(in), cfg.readOpts(false)...)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", name, err)
		}
		if !cfg.Diff {
			if err := encode.Encode(c, cc.Out, cfg.encOpts(cc.Out, format.TextFormat)...); err != nil {
				return fmt.Errorf("error encoding %s: %w", name, err)
			}
			return nil
		}
		out := bytes.NewBuffer(nil)
		opts := []encode.EncodeOption{encode.EncodeDefaults(cfg.Defaults)}
		if err := encode.Encode(c, out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", name, err)
		}
		return writeDiff(cc.Out, name, libdiff.Lines(string(in), out.String()), cfg.useColor(cc.Out))
	})
}

func writeDiff(w io.Writer, name string, lines []libdiff.Line, colored bool) error {
	if !libdiff.Changed(lines) {
		return nil
	}
	if _, err := fmt.Fprintf(w, "--- %s\n+++ %s (formatted)\n", name, name); err != nil {
		return err
	}
	paint := map[libdiff.Op]func(string, ...any) string{
		libdiff.Delete: color.RedString,
		libdiff.Insert: color.GreenString,
	}
	for _, ln := range lines {
		s := ln.String()
		if f := paint[ln.Op]; colored && f != nil {
			s = f("%s", s)
		}
		if _, err := io.WriteString(w, s+"\n"); err != nil {
			return err
		}
	}
	return nil
}
