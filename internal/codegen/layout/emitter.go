package layout

import (
	"strings"

	"github.com/Alia5/vsgen/internal/codegen/channel"
)

// Dimensionality is the number of dimension entries every channel occupies
// in the host's dimension lists.
const Dimensionality = 2

// Host direction codes of the external IO list.
const (
	DirectionIn  = 0
	DirectionOut = 1
)

// Descriptor is one row of per-channel metadata for the host loader.
type Descriptor struct {
	Index          int
	HostPath       string
	Member         string
	Type           channel.ElementType
	TypeTag        int
	Count          int
	Dimensionality int
	Offset         int
	HasOffset      bool
	DimIndex       int    // first entry of this channel in the flat dimension list
	Direction      int    // ports only
	Description    string // signals only
}

// DimRow is one (major, minor) pair of a dimension list.
type DimRow struct {
	Major  int
	Minor  int
	Member string
}

// SizeRow is one row of the per-channel size table: element width in bytes,
// flat element count and type tag.
type SizeRow struct {
	Width   int
	Count   int
	Type    channel.ElementType
	TypeTag int
	Member  string
}

// Binding says which element of a signal's backing storage the host reads:
// the member, the subscript selecting its first element and that element's
// byte offset in the backing structure.
type Binding struct {
	Index     int
	HostPath  string
	Member    string
	Subscript string
	Offset    int
}

// Lvalue renders the bound element relative to a structure instance, e.g.
// "rtSignal.vectors.v[0][0]".
func (b Binding) Lvalue(instance string) string {
	return instance + Separator + b.Member + b.Subscript
}

// Tables are the positional host tables of one family. Descriptors, Dims and
// Sizes have one entry per channel, in the same order.
type Tables struct {
	Family      channel.Family
	Descriptors []Descriptor
	Dims        []DimRow
	Sizes       []SizeRow
	Bindings    []Binding // signals only
}

// Emit projects a compiled family into its host tables. It performs no
// validation.
func Emit(l *FamilyLayout) *Tables {
	t := &Tables{Family: l.Family}
	for i, c := range l.Channels() {
		d := Descriptor{
			Index:          i,
			HostPath:       c.HostPath(),
			Member:         c.Member(),
			Type:           c.Type,
			TypeTag:        c.Type.Tag(),
			Count:          c.Count,
			Dimensionality: Dimensionality,
			Offset:         c.Offset,
			HasOffset:      c.HasOffset,
			DimIndex:       i * Dimensionality,
			Description:    c.Description,
		}
		if l.Family == channel.Outport {
			d.Direction = DirectionOut
		}
		t.Descriptors = append(t.Descriptors, d)

		major, minor := c.Shape.Dims()
		t.Dims = append(t.Dims, DimRow{Major: major, Minor: minor, Member: d.Member})
		t.Sizes = append(t.Sizes, SizeRow{Width: c.Type.Width(), Count: c.Count, Type: c.Type, TypeTag: d.TypeTag, Member: d.Member})

		if l.Family == channel.Signal {
			b := bind(c)
			b.Index = i
			t.Bindings = append(t.Bindings, b)
		}
	}
	return t
}

// bind addresses the first element of a channel: the channel itself for a
// scalar, element [0] of a vector, element [0][0] of a matrix.
func bind(c *Compiled) Binding {
	return Binding{
		HostPath:  c.HostPath(),
		Member:    c.Member(),
		Subscript: strings.Repeat("[0]", c.Shape.Rank()),
		Offset:    c.Offset,
	}
}
