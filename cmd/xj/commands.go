package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: xml/x, json/j",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: xml/x, json/j",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "xj").
		WithSynopsis("xj [opts] command [opts]").
		WithDescription("xj is a tool for converting between xml and json.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return xjMain(cfg, cc, args)
		}).
		WithSubs(
			ConvertCommand(cfg),
			DiffCommand(cfg),
			GetCommand(cfg))
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("convert").
		WithAliases("c", "co").
		WithSynopsis("convert [-p profile] [-patch patchfile] [files]").
		WithDescription(convertDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
	cfg.Convert = cmd
	return cmd
}

const convertDescription = `convert converts documents between xml and json.

The input format comes from -I, -x, or -j, or the file suffix; the output
format comes from -O, -x, or -j and defaults to the opposite of the input.
Converting to the input's own format normalizes the document.

A profile file given with -p declares codec options and an ordered list of
transforms applied between decoding and encoding:

  xml:
    source:
      namespaces: label   # preserve, label, or strip
      comments: false
  json:
    output:
      pretty: true
  transforms:
  - use: bools            # a registered transformer
    paths: ["**.flag"]
  - value: 'trim(value)'  # an expression over scalar values
  - filter: 'name != "deprecated"'

With -patch, a JSON Patch (RFC 6902) file is applied to json output.`

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff a b").
		WithDescription("diff two documents structurally, in either format").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get <xpath> [files]").
		WithDescription("get elements from xml files with xpath").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}
