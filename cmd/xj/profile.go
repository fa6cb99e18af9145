package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	xnode "github.com/signadot/xnode-format/go-xnode"
	"github.com/signadot/xnode-format/go-xnode/jsoncodec"
	"github.com/signadot/xnode-format/go-xnode/transform"
	"github.com/signadot/xnode-format/go-xnode/xmlcodec"
)

// Profile is the yaml form of a conversion configuration: codec options
// plus an ordered list of transforms.
type Profile struct {
	XML struct {
		Source *xmlSourceProfile `yaml:"source"`
		Output *xmlOutputProfile `yaml:"output"`
	} `yaml:"xml"`
	JSON struct {
		Source *jsonSourceProfile `yaml:"source"`
		Output *jsonOutputProfile `yaml:"output"`
	} `yaml:"json"`
	Transforms []transformProfile `yaml:"transforms"`
}

type xmlSourceProfile struct {
	Namespaces   string `yaml:"namespaces"`
	Attributes   string `yaml:"attributes"`
	Comments     *bool  `yaml:"comments"`
	Instructions *bool  `yaml:"instructions"`
	CDATA        *bool  `yaml:"cdata"`
	Text         *bool  `yaml:"text"`
	Whitespace   *bool  `yaml:"whitespace"`
}

type xmlOutputProfile struct {
	Namespaces  string `yaml:"namespaces"`
	Pretty      *bool  `yaml:"pretty"`
	Indent      string `yaml:"indent"`
	Declaration *bool  `yaml:"declaration"`
	Encoding    string `yaml:"encoding"`
}

type jsonSourceProfile struct {
	ItemNames       map[string]string `yaml:"itemNames"`
	DefaultItemName string            `yaml:"defaultItemName"`
	Fields          string            `yaml:"fields"`
	Nulls           string            `yaml:"nulls"`
}

type jsonOutputProfile struct {
	HiFi   *bool  `yaml:"hifi"`
	Pretty *bool  `yaml:"pretty"`
	Indent string `yaml:"indent"`
}

// transformProfile is one pipeline entry: exactly one of use, value, or
// filter, optionally scoped by paths.
type transformProfile struct {
	Use    string   `yaml:"use"`
	Value  string   `yaml:"value"`
	Filter string   `yaml:"filter"`
	Paths  []string `yaml:"paths"`
}

func loadProfile(path string) (*Profile, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading profile %s: %w", path, err)
	}
	prof := &Profile{}
	if err := yaml.Unmarshal(d, prof); err != nil {
		return nil, fmt.Errorf("error parsing profile %s: %w", path, err)
	}
	return prof, nil
}

func (p *Profile) apply(opts *xnode.Options) error {
	if s := p.XML.Source; s != nil {
		if err := s.apply(opts.XMLSource); err != nil {
			return err
		}
	}
	if o := p.XML.Output; o != nil {
		if err := o.apply(opts.XMLOutput); err != nil {
			return err
		}
	}
	if s := p.JSON.Source; s != nil {
		if err := s.apply(opts.JSONSource); err != nil {
			return err
		}
	}
	if o := p.JSON.Output; o != nil {
		o.apply(opts.JSONOutput)
	}
	if len(p.Transforms) == 0 {
		return nil
	}
	pl := transform.NewPipeline()
	for i := range p.Transforms {
		if err := p.Transforms[i].add(pl); err != nil {
			return fmt.Errorf("transforms[%d]: %w", i, err)
		}
	}
	opts.Pipeline = pl
	return nil
}

func (s *xmlSourceProfile) apply(o *xmlcodec.SourceOptions) error {
	if s.Namespaces != "" {
		pol, err := xmlcodec.ParseNamespacePolicy(s.Namespaces)
		if err != nil {
			return err
		}
		o.NamespacePolicy = pol
		o.PreserveNamespaces = pol != xmlcodec.NamespaceStrip
	}
	switch s.Attributes {
	case "":
	case "attributes":
		o.AttributeMode = xmlcodec.AttributesAsAttributes
	case "fields":
		o.AttributeMode = xmlcodec.AttributesAsFields
	default:
		return fmt.Errorf("bad attributes mode %q", s.Attributes)
	}
	setBool(&o.PreserveComments, s.Comments)
	setBool(&o.PreserveInstructions, s.Instructions)
	setBool(&o.PreserveCDATA, s.CDATA)
	setBool(&o.PreserveTextNodes, s.Text)
	setBool(&o.PreserveWhitespace, s.Whitespace)
	return nil
}

func (op *xmlOutputProfile) apply(o *xmlcodec.OutputOptions) error {
	if op.Namespaces != "" {
		pol, err := xmlcodec.ParseNamespacePolicy(op.Namespaces)
		if err != nil {
			return err
		}
		o.NamespacePolicy = pol
	}
	setBool(&o.Pretty, op.Pretty)
	setBool(&o.Declaration, op.Declaration)
	if op.Indent != "" {
		o.Indent = op.Indent
	}
	if op.Encoding != "" {
		o.Encoding = op.Encoding
	}
	return nil
}

func (s *jsonSourceProfile) apply(o *jsoncodec.SourceOptions) error {
	if len(s.ItemNames) > 0 {
		o.ItemNames = s.ItemNames
	}
	if s.DefaultItemName != "" {
		o.DefaultItemName = s.DefaultItemName
	}
	if s.Fields != "" {
		pol, err := jsoncodec.ParseFieldPolicy(s.Fields)
		if err != nil {
			return err
		}
		o.FieldPolicy = pol
	}
	if s.Nulls != "" {
		pol, err := jsoncodec.ParseNullPolicy(s.Nulls)
		if err != nil {
			return err
		}
		o.NullPolicy = pol
	}
	return nil
}

func (op *jsonOutputProfile) apply(o *jsoncodec.OutputOptions) {
	setBool(&o.HiFi, op.HiFi)
	setBool(&o.Pretty, op.Pretty)
	if op.Indent != "" {
		o.Indent = op.Indent
	}
}

func (t *transformProfile) add(pl *transform.Pipeline) error {
	n := 0
	for _, s := range []string{t.Use, t.Value, t.Filter} {
		if s != "" {
			n++
		}
	}
	if n != 1 {
		return fmt.Errorf("need exactly one of use, value, filter")
	}
	switch {
	case t.Use != "":
		return pl.Use(t.Use, t.Paths...)
	case t.Value != "":
		f, err := transform.ExprValue(t.Value)
		if err != nil {
			return err
		}
		return pl.OnValue(f, t.Paths...)
	default:
		f, err := transform.ExprNodeFilter(t.Filter)
		if err != nil {
			return err
		}
		return pl.OnNode(f, t.Paths...)
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
