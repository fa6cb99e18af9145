package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	xnode "github.com/signadot/xnode-format/go-xnode"
	"github.com/signadot/xnode-format/go-xnode/format"
	"github.com/signadot/xnode-format/go-xnode/transform"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	opts, err := cfg.options(cc.Out)
	if err != nil {
		return err
	}
	var patch jsonpatch.Patch
	if cfg.PatchFile != "" {
		patch, err = loadPatch(cfg.PatchFile)
		if err != nil {
			return err
		}
	}
	for _, arg := range args {
		if err := convertArg(cfg, cc.Out, opts, patch, arg); err != nil {
			return fmt.Errorf("error converting %s: %w", arg, err)
		}
		if opts.Pipeline != nil {
			for _, w := range opts.Pipeline.Warnings() {
				fmt.Fprintf(os.Stderr, "warning: %s: %s\n", arg, w)
			}
		}
	}
	return nil
}

func convertArg(cfg *ConvertConfig, w io.Writer, opts *xnode.Options, patch jsonpatch.Patch, arg string) error {
	d, err := readArg(arg)
	if err != nil {
		return err
	}
	in, err := cfg.inFormat(arg)
	if err != nil {
		return err
	}
	out := cfg.outFormat(in)
	if out.IsXML() {
		s, err := toXML(string(d), in, opts)
		if err != nil {
			return err
		}
		if !strings.HasSuffix(s, "\n") {
			s += "\n"
		}
		_, err = io.WriteString(w, s)
		return err
	}
	res, err := toJSON(d, in, opts)
	if err != nil {
		return err
	}
	if patch != nil {
		res, err = applyPatch(patch, res, opts)
		if err != nil {
			return err
		}
	}
	if _, err := w.Write(res); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

func toXML(s string, in format.Format, opts *xnode.Options) (string, error) {
	if in.IsJSON() {
		return xnode.JSONBytesToXML([]byte(s), opts)
	}
	// xml to xml normalizes, still running the pipeline
	n, err := xnode.SourceXML(s, opts)
	if err != nil {
		return "", err
	}
	if opts.Pipeline != nil && !opts.Pipeline.Empty() {
		n, err = opts.Pipeline.Run(n, transform.RootContext(format.XMLFormat, n, opts))
		if err != nil {
			return "", err
		}
		if n == nil {
			return "", fmt.Errorf("pipeline removed the document root")
		}
	}
	return xnode.OutputXML(n, opts)
}

func toJSON(d []byte, in format.Format, opts *xnode.Options) ([]byte, error) {
	if in.IsXML() {
		return xnode.XMLToJSONBytes(string(d), opts)
	}
	n, err := xnode.SourceJSONBytes(d, opts)
	if err != nil {
		return nil, err
	}
	if opts.Pipeline != nil && !opts.Pipeline.Empty() {
		n, err = opts.Pipeline.Run(n, transform.RootContext(format.JSONFormat, n, opts))
		if err != nil {
			return nil, err
		}
		if n == nil {
			return []byte("null"), nil
		}
	}
	return xnode.OutputJSONBytes(n, opts)
}

func loadPatch(path string) (jsonpatch.Patch, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading patch %s: %w", path, err)
	}
	p, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch %s: %w", path, err)
	}
	return p, nil
}

func applyPatch(patch jsonpatch.Patch, doc []byte, opts *xnode.Options) ([]byte, error) {
	res, err := patch.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("error applying patch: %w", err)
	}
	if opts.JSONOutput == nil || !opts.JSONOutput.Pretty {
		return res, nil
	}
	// patch application compacts, restore the indentation
	buf := &bytes.Buffer{}
	if err := json.Indent(buf, res, "", opts.JSONOutput.Indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	f, err := os.Open(arg)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
