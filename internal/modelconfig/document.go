// Package modelconfig loads model configuration documents (JSON, YAML, TOML
// or HCL) into a channel.Model.
package modelconfig

import (
	"encoding/json"
	"errors"
	"fmt"

	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/vsgen/internal/codegen/channel"
)

// Document is the on-disk shape of a model configuration.
type Document struct {
	Name       string       `json:"name" yaml:"name" toml:"name"`
	Builder    string       `json:"builder" yaml:"builder" toml:"builder"`
	BaseRate   *float64     `json:"baserate" yaml:"baserate" toml:"baserate"`
	Inports    []ChannelDoc `json:"inports,omitempty" yaml:"inports,omitempty" toml:"inports,omitempty"`
	Outports   []ChannelDoc `json:"outports,omitempty" yaml:"outports,omitempty" toml:"outports,omitempty"`
	Parameters []ChannelDoc `json:"parameters,omitempty" yaml:"parameters,omitempty" toml:"parameters,omitempty"`
	Signals    []ChannelDoc `json:"signals,omitempty" yaml:"signals,omitempty" toml:"signals,omitempty"`
}

// ChannelDoc is one channel entry. In JSON and YAML an entry may also be a
// bare name string.
type ChannelDoc struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	DimX        *int   `json:"dimX,omitempty" yaml:"dimX,omitempty" toml:"dimX,omitempty"`
	DimY        *int   `json:"dimY,omitempty" yaml:"dimY,omitempty" toml:"dimY,omitempty"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
}

func (c *ChannelDoc) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err == nil {
		*c = ChannelDoc{Name: name}
		return nil
	}
	type plain ChannelDoc
	return json.Unmarshal(b, (*plain)(c))
}

func (c *ChannelDoc) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		*c = ChannelDoc{Name: n.Value}
		return nil
	}
	type plain ChannelDoc
	return n.Decode((*plain)(c))
}

func (d *Document) channels(f channel.Family) []ChannelDoc {
	switch f {
	case channel.Inport:
		return d.Inports
	case channel.Outport:
		return d.Outports
	case channel.Parameter:
		return d.Parameters
	default:
		return d.Signals
	}
}

// Model applies defaults and converts the document. Only type spellings are
// checked here; names and dimensions are left to the layout validator.
func (d *Document) Model() (*channel.Model, error) {
	m := &channel.Model{Name: d.Name, Builder: d.Builder}
	if d.BaseRate != nil {
		m.BaseRate = *d.BaseRate
	}

	var errs []error
	for _, f := range channel.Families {
		entries := d.channels(f)
		if len(entries) == 0 {
			continue
		}
		specs := make([]channel.Spec, 0, len(entries))
		for _, c := range entries {
			s, err := c.spec(f)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s %q: %w", f, c.Name, err))
				continue
			}
			specs = append(specs, s)
		}
		switch f {
		case channel.Inport:
			m.Inports = specs
		case channel.Outport:
			m.Outports = specs
		case channel.Parameter:
			m.Parameters = specs
		case channel.Signal:
			m.Signals = specs
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return m, nil
}

func (c ChannelDoc) spec(f channel.Family) (channel.Spec, error) {
	s := channel.NewSpec(c.Name)
	if c.DimX != nil {
		s.DimX = *c.DimX
	}
	if c.DimY != nil {
		s.DimY = *c.DimY
	}

	t, err := channel.ParseElementType(c.Type)
	if err != nil {
		return s, err
	}
	if f.IsPort() && t != channel.Double {
		return s, fmt.Errorf("ports are always double, type %q is not supported", c.Type)
	}
	s.Type = t

	if f == channel.Signal {
		s.Description = c.Description
	}
	return s, nil
}

// FromModel converts a model back into a document, spelling out every
// dimension and type.
func FromModel(m *channel.Model) *Document {
	rate := m.BaseRate
	d := &Document{Name: m.Name, Builder: m.Builder, BaseRate: &rate}
	for _, f := range channel.Families {
		var docs []ChannelDoc
		for _, s := range m.Channels(f) {
			dimX, dimY := s.DimX, s.DimY
			c := ChannelDoc{Name: s.Name, DimX: &dimX, DimY: &dimY}
			if f.HasOffsets() {
				c.Type = s.Type.String()
			}
			if f == channel.Signal {
				c.Description = s.Description
			}
			docs = append(docs, c)
		}
		switch f {
		case channel.Inport:
			d.Inports = docs
		case channel.Outport:
			d.Outports = docs
		case channel.Parameter:
			d.Parameters = docs
		case channel.Signal:
			d.Signals = docs
		}
	}
	return d
}
