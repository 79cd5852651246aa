package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/knitchart/chart"
	"github.com/signadot/knitchart/encode"
	"github.com/signadot/knitchart/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='encode with color'"`
	Defaults bool `cli:"name=a aliases=all desc='write attributes with default values'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) readOpts(quiet bool) []chart.ReadOption {
	if quiet {
		return []chart.ReadOption{chart.WithLogger(nil)}
	}
	return []chart.ReadOption{chart.WithLogger(theLog)}
}

// outFormat is the format given by -O, else the one implied by the -o
// file's extension, else def.
func (cfg *MainConfig) outFormat(def format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if cfg.Out != "" && cfg.Out != "-" {
		if f, ok := format.ForPath(cfg.Out); ok {
			return f
		}
	}
	return def
}

// encOpts returns encoding options writing to w, in the output format
// with fmat as the default.
func (cfg *MainConfig) encOpts(w io.Writer, fmat format.Format) []encode.EncodeOption {
	fmat = cfg.outFormat(fmat)
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.EncodeDefaults(cfg.Defaults),
	}
	if fmat.IsText() && cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor reports whether to color output to w: -color if given,
// otherwise whether w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='do not log warnings'"`

	Check *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Diff bool `cli:"name=d desc='print a diff of the input and the formatted chart'"`

	Fmt *cli.Command
}

type DumpConfig struct {
	*MainConfig
	J        bool `cli:"name=j aliases=json desc='dump in json'"`
	Y        bool `cli:"name=y aliases=yaml desc='dump in yaml'"`
	Warnings bool `cli:"name=w desc='include warnings'"`

	Dump *cli.Command
}

type AttrsConfig struct {
	*MainConfig

	Attrs *cli.Command
}
