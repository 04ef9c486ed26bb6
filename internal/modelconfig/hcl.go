package modelconfig

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// hclDocument is the HCL shape of a model configuration. Channels are
// labeled blocks:
//
//	inport "vectors.vector1d_in" {
//	  dimX = 8
//	}
type hclDocument struct {
	Name       string         `hcl:"name"`
	Builder    string         `hcl:"builder"`
	BaseRate   hcl.Expression `hcl:"baserate"`
	Inports    []*hclChannel  `hcl:"inport,block"`
	Outports   []*hclChannel  `hcl:"outport,block"`
	Parameters []*hclChannel  `hcl:"parameter,block"`
	Signals    []*hclChannel  `hcl:"signal,block"`
}

type hclChannel struct {
	Name        string  `hcl:"name,label"`
	DimX        *int    `hcl:"dimX,optional"`
	DimY        *int    `hcl:"dimY,optional"`
	Type        *string `hcl:"type,optional"`
	Description *string `hcl:"description,optional"`
}

const (
	hclInport    = "inport"
	hclOutport   = "outport"
	hclParameter = "parameter"
	hclSignal    = "signal"
)

func decodeHCL(data []byte, filename string) (*Document, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL model config %s: %w", filename, diags)
	}

	var parsed hclDocument
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL model config %s: %w", filename, diags)
	}

	rate, err := evalBaseRate(parsed.BaseRate)
	if err != nil {
		return nil, fmt.Errorf("model config %s: baserate: %w", filename, err)
	}

	return &Document{
		Name:       parsed.Name,
		Builder:    parsed.Builder,
		BaseRate:   &rate,
		Inports:    fromHCLChannels(parsed.Inports),
		Outports:   fromHCLChannels(parsed.Outports),
		Parameters: fromHCLChannels(parsed.Parameters),
		Signals:    fromHCLChannels(parsed.Signals),
	}, nil
}

// evalBaseRate evaluates the baserate expression without variables, so plain
// arithmetic such as 1 / 400 is allowed.
func evalBaseRate(expr hcl.Expression) (float64, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return 0, diags
	}
	if val.IsNull() || !val.IsKnown() {
		return 0, fmt.Errorf("value is not set")
	}
	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %s to number: %w", val.Type().FriendlyName(), err)
	}
	var rate float64
	if err := gocty.FromCtyValue(num, &rate); err != nil {
		return 0, err
	}
	return rate, nil
}

func fromHCLChannels(in []*hclChannel) []ChannelDoc {
	if len(in) == 0 {
		return nil
	}
	out := make([]ChannelDoc, 0, len(in))
	for _, c := range in {
		d := ChannelDoc{Name: c.Name, DimX: c.DimX, DimY: c.DimY}
		if c.Type != nil {
			d.Type = *c.Type
		}
		if c.Description != nil {
			d.Description = *c.Description
		}
		out = append(out, d)
	}
	return out
}

func encodeHCL(doc *Document) []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	body.SetAttributeValue("name", cty.StringVal(doc.Name))
	body.SetAttributeValue("builder", cty.StringVal(doc.Builder))
	if doc.BaseRate != nil {
		body.SetAttributeValue("baserate", cty.NumberFloatVal(*doc.BaseRate))
	}

	families := []struct {
		block    string
		channels []ChannelDoc
	}{
		{hclInport, doc.Inports},
		{hclOutport, doc.Outports},
		{hclParameter, doc.Parameters},
		{hclSignal, doc.Signals},
	}
	for _, fam := range families {
		for _, c := range fam.channels {
			body.AppendNewline()
			b := body.AppendNewBlock(fam.block, []string{c.Name}).Body()
			if c.DimX != nil {
				b.SetAttributeValue("dimX", cty.NumberIntVal(int64(*c.DimX)))
			}
			if c.DimY != nil {
				b.SetAttributeValue("dimY", cty.NumberIntVal(int64(*c.DimY)))
			}
			if c.Type != "" {
				b.SetAttributeValue("type", cty.StringVal(c.Type))
			}
			if c.Description != "" {
				b.SetAttributeValue("description", cty.StringVal(c.Description))
			}
		}
	}

	return f.Bytes()
}
