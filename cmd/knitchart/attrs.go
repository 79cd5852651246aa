package main

import (
	"fmt"

	"github.com/signadot/knitchart/attr"

	"github.com/scott-cotton/cli"
)

func attrs(cfg *AttrsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Attrs.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: attrs takes no arguments", cli.ErrUsage)
	}
	for _, spec := range attr.Specs() {
		_, err := fmt.Fprintf(cc.Out, "%-10s %-6s %-11s %s\n", spec.Name, spec.Kind, spec.Default, spec.Doc)
		if err != nil {
			return err
		}
	}
	return nil
}
