package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/xnode-format/go-xnode/dom"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an xpath expression", cli.ErrUsage)
	}
	expr := args[0]
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := getArg(cc.Out, expr, arg); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, expr, err)
		}
	}
	return nil
}

func getArg(w io.Writer, expr, arg string) error {
	d, err := readArg(arg)
	if err != nil {
		return err
	}
	doc, err := dom.Parse(string(d))
	if err != nil {
		return err
	}
	nodes, err := dom.Query(doc, expr)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		if _, err := io.WriteString(w, dom.OutputXML(n)+"\n"); err != nil {
			return err
		}
	}
	return nil
}
