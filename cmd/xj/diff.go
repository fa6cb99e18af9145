package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	xnode "github.com/signadot/xnode-format/go-xnode"
	"github.com/signadot/xnode-format/go-xnode/format"
	"github.com/signadot/xnode-format/go-xnode/ir"
	"github.com/signadot/xnode-format/go-xnode/jsoncodec"
)

// diff compares two documents structurally by rendering both node trees
// in the canonical high-fidelity encoding and diffing the text.  Inputs
// may be in either format.
func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	a, err := canonical(cfg.MainConfig, args[0])
	if err != nil {
		return fmt.Errorf("error reading %s: %w", args[0], err)
	}
	b, err := canonical(cfg.MainConfig, args[1])
	if err != nil {
		return fmt.Errorf("error reading %s: %w", args[1], err)
	}
	if a == b {
		return nil
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(a, b, true)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	if _, err := io.WriteString(cc.Out, diffCfg.DiffPrettyText(diffs)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

// canonical sources arg into a node tree and renders it as indented
// high-fidelity json, which is stable under equal trees.
func canonical(cfg *MainConfig, arg string) (string, error) {
	d, err := readArg(arg)
	if err != nil {
		return "", err
	}
	in, err := cfg.inFormat(arg)
	if err != nil {
		return "", err
	}
	var n *ir.Node
	if in == format.XMLFormat {
		n, err = xnode.SourceXML(string(d), nil)
	} else {
		n, err = xnode.SourceJSONBytes(d, nil)
	}
	if err != nil {
		return "", err
	}
	out, err := jsoncodec.OutputBytes(n, &jsoncodec.OutputOptions{HiFi: true, Pretty: true})
	if err != nil {
		return "", err
	}
	return string(out), nil
}
