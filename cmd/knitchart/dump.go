package main

import (
	"fmt"
	"io"

	"github.com/signadot/knitchart/chart"
	"github.com/signadot/knitchart/encode"
	"github.com/signadot/knitchart/format"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	fmat := format.YAMLFormat
	if cfg.J {
		fmat = format.JSONFormat
	}
	opts := append(cfg.encOpts(cc.Out, fmat), encode.EncodeWarnings(cfg.Warnings))
	first := true
	return eachInput(cc, args, func(name string, r io.Reader) error {
		// with -w warnings go to the document rather than the log
		c, err := chart.Read(r, cfg.readOpts(cfg.Warnings)...)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", name, err)
		}
		if !first {
			if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
				return err
			}
		}
		first = false
		if err := encode.Encode(c, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", name, err)
		}
		return nil
	})
}
