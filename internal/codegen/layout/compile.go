// Package layout compiles a model's channel declarations into the memory
// layout and positional metadata tables the host framework loads.
//
// The pipeline is Validate, Resolve, CompileFamily, Emit. Compile runs it
// for every family of a model and either returns the whole result or an
// ErrorList; nothing partial is ever returned.
package layout

import "github.com/Alia5/vsgen/internal/codegen/channel"

// CompiledFamily is the layout and host tables of one family.
type CompiledFamily struct {
	*FamilyLayout
	Tables *Tables
}

// Len is the number of channels in the family.
func (c *CompiledFamily) Len() int { return len(c.Tables.Descriptors) }

// Result is the compiled form of a model.
type Result struct {
	Model    *channel.Model
	families [len(familyOrder)]*CompiledFamily
}

var familyOrder = [...]channel.Family{channel.Inport, channel.Outport, channel.Parameter, channel.Signal}

// Family returns the compiled family f.
func (r *Result) Family(f channel.Family) *CompiledFamily { return r.families[f] }

// Compile validates and compiles every family of m. The result is a pure
// function of m.
func Compile(m *channel.Model) (*Result, error) {
	if err := ValidateModel(m); err != nil {
		return nil, err
	}

	r := &Result{Model: m}
	for _, f := range familyOrder {
		l := CompileFamily(f, Resolve(m.Channels(f)))
		r.families[f] = &CompiledFamily{FamilyLayout: l, Tables: Emit(l)}
	}
	return r, nil
}
