package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	xnode "github.com/signadot/xnode-format/go-xnode"
	"github.com/signadot/xnode-format/go-xnode/format"
	"github.com/signadot/xnode-format/go-xnode/jsoncodec"
	"github.com/signadot/xnode-format/go-xnode/xmlcodec"
)

type MainConfig struct {
	X bool `cli:"name=x aliases=xml desc='do i/o in xml'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`

	Color  bool `cli:"name=color desc='render markup with color'"`
	Pretty bool `cli:"name=pretty desc='indent output'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat resolves the input format for arg from flags, falling back to
// the argument's file suffix.
func (cfg *MainConfig) inFormat(arg string) (format.Format, error) {
	switch {
	case cfg.InFormat != nil:
		return *cfg.InFormat, nil
	case cfg.X:
		return format.XMLFormat, nil
	case cfg.J:
		return format.JSONFormat, nil
	}
	for _, f := range format.AllFormats() {
		if strings.HasSuffix(arg, f.Suffix()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: cannot determine input format of %q, use -I",
		cli.ErrUsage, arg)
}

// outFormat resolves the output format, defaulting to the opposite of
// the input.
func (cfg *MainConfig) outFormat(in format.Format) format.Format {
	switch {
	case cfg.OutFormat != nil:
		return *cfg.OutFormat
	case cfg.X:
		return format.XMLFormat
	case cfg.J:
		return format.JSONFormat
	}
	if in.IsXML() {
		return format.JSONFormat
	}
	return format.XMLFormat
}

func (cfg *MainConfig) xmlOutputOpts(w io.Writer) *xmlcodec.OutputOptions {
	o := xmlcodec.DefaultOutputOptions()
	o.Pretty = cfg.Pretty
	o.Declaration = cfg.Pretty
	if cfg.Color {
		o.Colors = xmlcodec.NewColors()
		return o
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return o
	}
	f, ok := w.(*os.File)
	if ok && isatty.IsTerminal(f.Fd()) {
		o.Colors = xmlcodec.NewColors()
	}
	return o
}

type ConvertConfig struct {
	*MainConfig

	HiFi      bool   `cli:"name=hifi desc='use high-fidelity json'"`
	Profile   string `cli:"name=p aliases=profile desc='profile file (yaml)'"`
	PatchFile string `cli:"name=patch desc='json patch file applied to json output'"`

	Convert *cli.Command
}

// options assembles the conversion options for one run, applying the
// profile (if any) on top of the command line flags.
func (cfg *ConvertConfig) options(w io.Writer) (*xnode.Options, error) {
	opts := &xnode.Options{
		XMLSource:  xmlcodec.DefaultSourceOptions(),
		XMLOutput:  cfg.xmlOutputOpts(w),
		JSONSource: jsoncodec.DefaultSourceOptions(),
		JSONOutput: &jsoncodec.OutputOptions{
			HiFi:   cfg.HiFi,
			Pretty: cfg.Pretty,
		},
	}
	if cfg.Profile == "" {
		return opts, nil
	}
	prof, err := loadProfile(cfg.Profile)
	if err != nil {
		return nil, err
	}
	if err := prof.apply(opts); err != nil {
		return nil, err
	}
	return opts, nil
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}
