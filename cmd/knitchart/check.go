package main

import (
	"fmt"
	"io"

	"github.com/signadot/knitchart/chart"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachInput(cc, args, func(name string, r io.Reader) error {
		c, err := chart.Read(r, cfg.readOpts(cfg.Quiet)...)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", name, err)
		}
		_, err = fmt.Fprintf(cc.Out, "Chart: %s\n     rows: %d\n  columns: %d\n",
			name, c.Rows(), c.Columns())
		return err
	})
}
