// Package channel holds the validated in-memory model configuration consumed
// by the layout compiler: the model header and the four ordered channel
// families.
package channel

import "fmt"

// Family is one of the four channel kinds of a model.
type Family uint8

const (
	Inport Family = iota
	Outport
	Parameter
	Signal
)

// Families lists every family in the order the host tables are rendered.
var Families = []Family{Inport, Outport, Parameter, Signal}

func (f Family) String() string {
	switch f {
	case Inport:
		return "inports"
	case Outport:
		return "outports"
	case Parameter:
		return "parameters"
	case Signal:
		return "signals"
	default:
		return fmt.Sprintf("family(%d)", uint8(f))
	}
}

// IsPort reports whether the family is carried in the external IO list.
func (f Family) IsPort() bool { return f == Inport || f == Outport }

// HasOffsets reports whether the family shares one backing structure whose
// field offsets are published to the host.
func (f Family) HasOffsets() bool { return f == Parameter || f == Signal }

// StructName is the C typedef name of the family's backing structure.
func (f Family) StructName() string {
	switch f {
	case Inport:
		return "Inports"
	case Outport:
		return "Outports"
	case Parameter:
		return "Parameters"
	case Signal:
		return "Signals"
	default:
		return ""
	}
}

// ElementType is the numeric type of every element of a channel.
type ElementType uint8

const (
	Double ElementType = iota
	Int32
)

// ParseElementType maps the configuration spelling to an ElementType.
// An empty string selects the Double default.
func ParseElementType(s string) (ElementType, error) {
	switch s {
	case "", "double":
		return Double, nil
	case "i32":
		return Int32, nil
	default:
		return Double, fmt.Errorf("unknown element type %q (expected \"double\" or \"i32\")", s)
	}
}

// String returns the configuration spelling.
func (t ElementType) String() string {
	if t == Int32 {
		return "i32"
	}
	return "double"
}

// Width is the size in bytes of one element.
func (t ElementType) Width() int {
	if t == Int32 {
		return 4
	}
	return 8
}

// Tag is the host's numeric type tag (rtDBL = 0, rtINT = 1).
func (t ElementType) Tag() int {
	if t == Int32 {
		return 1
	}
	return 0
}

// TagName is the C macro naming Tag in generated sources.
func (t ElementType) TagName() string {
	if t == Int32 {
		return "rtINT"
	}
	return "rtDBL"
}

// CType is the C element type used in structure declarations.
func (t ElementType) CType() string {
	if t == Int32 {
		return "int32_t"
	}
	return "double"
}

// Spec is one declared channel. Loaders apply defaults before a Spec is
// built; a zero DimX or DimY therefore means the configuration said 0.
type Spec struct {
	Name        string
	DimX        int
	DimY        int
	Type        ElementType
	Description string
}

// NewSpec returns a scalar Double spec with the given name.
func NewSpec(name string) Spec {
	return Spec{Name: name, DimX: 1, DimY: 1, Type: Double}
}

// Model is the validated configuration tree of one model.
type Model struct {
	Name       string
	Builder    string
	BaseRate   float64
	Inports    []Spec
	Outports   []Spec
	Parameters []Spec
	Signals    []Spec
}

// Channels returns the declared channels of a family in declaration order.
func (m *Model) Channels(f Family) []Spec {
	switch f {
	case Inport:
		return m.Inports
	case Outport:
		return m.Outports
	case Parameter:
		return m.Parameters
	case Signal:
		return m.Signals
	default:
		return nil
	}
}
