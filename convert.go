package xnode

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/xnode-format/go-xnode/format"
	"github.com/signadot/xnode-format/go-xnode/ir"
	"github.com/signadot/xnode-format/go-xnode/jsoncodec"
	"github.com/signadot/xnode-format/go-xnode/transform"
	"github.com/signadot/xnode-format/go-xnode/xmlcodec"
)

// SourceXML converts markup into a node tree, running the source hooks
// around the codec boundary.
func SourceXML(s string, o *Options) (*ir.Node, error) {
	o = o.withDefaults()
	raw := o.Hooks.beforeSource(s)
	s, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("%w: before-source hook replaced string input with %T", xmlcodec.ErrValidate, raw)
	}
	n, err := xmlcodec.Source(s, o.XMLSource)
	if err != nil {
		return nil, err
	}
	return o.Hooks.afterSource(n), nil
}

// OutputXML converts a node tree into markup, running the output hooks.
func OutputXML(n *ir.Node, o *Options) (string, error) {
	o = o.withDefaults()
	n = o.Hooks.beforeOutput(n)
	s, err := xmlcodec.Output(n, o.XMLOutput)
	if err != nil {
		return "", err
	}
	out := o.Hooks.afterOutput(s)
	res, ok := out.(string)
	if !ok {
		return s, nil
	}
	return res, nil
}

// SourceJSON converts a decoded JSON value into a node tree. A value in
// the high-fidelity shape is reversed losslessly; anything else goes
// through the standard source path.
func SourceJSON(v any, o *Options) (*ir.Node, error) {
	o = o.withDefaults()
	v = o.Hooks.beforeSource(v)
	var (
		n   *ir.Node
		err error
	)
	if jsoncodec.IsHiFi(v) {
		n, err = jsoncodec.SourceHiFi(v)
	} else {
		n, err = jsoncodec.Source(v, o.JSONSource)
	}
	if err != nil {
		return nil, err
	}
	return o.Hooks.afterSource(n), nil
}

// SourceJSONBytes decodes raw JSON and converts it.
func SourceJSONBytes(d []byte, o *Options) (*ir.Node, error) {
	var v any
	if err := json.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", jsoncodec.ErrValidate, err)
	}
	return SourceJSON(v, o)
}

// OutputJSON converts a node tree into a JSON value.
func OutputJSON(n *ir.Node, o *Options) (any, error) {
	o = o.withDefaults()
	n = o.Hooks.beforeOutput(n)
	v, err := jsoncodec.Output(n, o.JSONOutput)
	if err != nil {
		return nil, err
	}
	return o.Hooks.afterOutput(v), nil
}

// OutputJSONBytes converts a node tree into serialized JSON.
func OutputJSONBytes(n *ir.Node, o *Options) ([]byte, error) {
	o = o.withDefaults()
	v, err := OutputJSON(n, o)
	if err != nil {
		return nil, err
	}
	jo := o.JSONOutput
	if jo != nil && jo.Pretty {
		indent := jo.Indent
		if indent == "" {
			indent = "  "
		}
		return json.MarshalIndent(v, "", indent)
	}
	return json.Marshal(v)
}

// XMLToJSON converts markup to a JSON value: source, pipeline, output.
// The pipeline mutates the tree in place between the codec boundaries; on
// any error no partial result is returned.
func XMLToJSON(s string, o *Options) (any, error) {
	o = o.withDefaults()
	n, err := SourceXML(s, o)
	if err != nil {
		return nil, err
	}
	n, err = runPipeline(n, format.JSONFormat, o)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	return OutputJSON(n, o)
}

// XMLToJSONBytes is XMLToJSON ending in serialized JSON.
func XMLToJSONBytes(s string, o *Options) ([]byte, error) {
	o = o.withDefaults()
	n, err := SourceXML(s, o)
	if err != nil {
		return nil, err
	}
	n, err = runPipeline(n, format.JSONFormat, o)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return []byte("null"), nil
	}
	return OutputJSONBytes(n, o)
}

// JSONToXML converts a decoded JSON value to markup.
func JSONToXML(v any, o *Options) (string, error) {
	o = o.withDefaults()
	n, err := SourceJSON(v, o)
	if err != nil {
		return "", err
	}
	n, err = runPipeline(n, format.XMLFormat, o)
	if err != nil {
		return "", err
	}
	if n == nil {
		return "", fmt.Errorf("%w: pipeline removed the document root", xmlcodec.ErrOutput)
	}
	return OutputXML(n, o)
}

// JSONBytesToXML decodes raw JSON and converts it to markup.
func JSONBytesToXML(d []byte, o *Options) (string, error) {
	var v any
	if err := json.Unmarshal(d, &v); err != nil {
		return "", fmt.Errorf("%w: %v", jsoncodec.ErrValidate, err)
	}
	return JSONToXML(v, o)
}

func runPipeline(n *ir.Node, f format.Format, o *Options) (*ir.Node, error) {
	if o.Pipeline == nil || o.Pipeline.Empty() {
		return n, nil
	}
	ctx := transform.RootContext(f, n, o)
	return o.Pipeline.Run(n, ctx)
}
