package layout

import (
	"fmt"

	"github.com/Alia5/vsgen/internal/codegen/channel"
)

// ShapeKind distinguishes how a channel is declared in C.
type ShapeKind uint8

const (
	Scalar ShapeKind = iota
	Vector1D
	Vector2D
)

// Shape is the declared shape of a channel. Scalars are 1×1 and
// one-dimensional vectors n×1.
type Shape struct {
	Kind ShapeKind
	Rows int
	Cols int
}

// ShapeOf applies the shape rule to effective dimensions.
func ShapeOf(dimX, dimY int) Shape {
	switch {
	case dimX <= 1 && dimY <= 1:
		return Shape{Kind: Scalar, Rows: 1, Cols: 1}
	case dimY <= 1:
		return Shape{Kind: Vector1D, Rows: dimX, Cols: 1}
	case dimX <= 1:
		return Shape{Kind: Vector2D, Rows: 1, Cols: dimY}
	default:
		return Shape{Kind: Vector2D, Rows: dimX, Cols: dimY}
	}
}

// Rank is the number of subscripts in the C declaration.
func (s Shape) Rank() int { return int(s.Kind) }

// Dims returns the (major, minor) dimension pair published in the host's
// dimension lists.
func (s Shape) Dims() (major, minor int) { return s.Rows, s.Cols }

func (s Shape) String() string {
	switch s.Kind {
	case Scalar:
		return "scalar"
	case Vector1D:
		return fmt.Sprintf("vector1d(%d)", s.Rows)
	default:
		return fmt.Sprintf("vector2d(%d,%d)", s.Rows, s.Cols)
	}
}

// Compiled is the derived layout of one channel.
type Compiled struct {
	Group       string
	Name        string
	Type        channel.ElementType
	Description string
	Count       int
	Shape       Shape
	ByteSize    int
	Offset      int
	HasOffset   bool
}

// HostPath is the slash separated nesting path of the channel.
func (c *Compiled) HostPath() string { return HostPath(c.Group, c.Name) }

// Member is the C member designator of the channel inside its backing
// structure, e.g. "vectors.vector1d_in".
func (c *Compiled) Member() string {
	if c.Group == "" {
		return c.Name
	}
	return c.Group + Separator + c.Name
}

// FamilyLayout is the compiled tree of one family plus the size and
// alignment of its backing structure.
type FamilyLayout struct {
	Family channel.Family
	Tree   []Node[Compiled]
	Size   int
	Align  int
}

// Channels returns the compiled leaves in depth-first declaration order.
func (l *FamilyLayout) Channels() []*Compiled { return Leaves(l.Tree) }

// Groups returns the group names in declaration order.
func (l *FamilyLayout) Groups() []string {
	var out []string
	for i := range l.Tree {
		if l.Tree[i].IsGroup() {
			out = append(out, l.Tree[i].Name)
		}
	}
	return out
}

// AlignSize rounds size up to the next multiple of align, a power of two.
func AlignSize(size, align int) int {
	return (size + align - 1) &^ (align - 1)
}

// CompileFamily computes the layout of a resolved family. It cannot fail on
// a validated tree; an empty tree yields an empty layout.
func CompileFamily(f channel.Family, tree []Node[channel.Spec]) *FamilyLayout {
	out := &FamilyLayout{Family: f, Tree: make([]Node[Compiled], len(tree)), Align: 1}

	for i := range tree {
		n := &tree[i]
		out.Tree[i].Name = n.Name
		if !n.IsGroup() {
			out.Tree[i].Leaf = compileLeaf(f, "", n.Name, n.Leaf)
			continue
		}
		out.Tree[i].Children = make([]Node[Compiled], len(n.Children))
		for j := range n.Children {
			c := &n.Children[j]
			out.Tree[i].Children[j] = Node[Compiled]{Name: c.Name, Leaf: compileLeaf(f, n.Name, c.Name, c.Leaf)}
		}
	}

	if f.HasOffsets() {
		out.Size, out.Align = assignOffsets(out.Tree)
	}
	return out
}

func compileLeaf(f channel.Family, group, name string, s *channel.Spec) *Compiled {
	c := &Compiled{
		Group: group,
		Name:  name,
		Type:  s.Type,
		Count: s.DimX * s.DimY,
		Shape: ShapeOf(s.DimX, s.DimY),
	}
	// the host has no typed ports
	if f.IsPort() {
		c.Type = channel.Double
	}
	if f == channel.Signal {
		c.Description = s.Description
		if c.Description == "" {
			c.Description = name
		}
	}
	c.ByteSize = c.Count * c.Type.Width()
	return c
}

// assignOffsets lays leaves out the way a C compiler packs the backing
// structure: each member at its natural alignment, groups as nested structs
// aligned and tail padded to their widest member.
func assignOffsets(tree []Node[Compiled]) (int, int) {
	cursor, align := 0, 1
	Walk(tree, func(_ string, n *Node[Compiled], _ bool) {
		if n.IsGroup() {
			a := groupAlign(n)
			cursor = AlignSize(cursor, a)
			align = max(align, a)
			return
		}
		w := n.Leaf.Type.Width()
		cursor = AlignSize(cursor, w)
		n.Leaf.Offset = cursor
		n.Leaf.HasOffset = true
		cursor += n.Leaf.ByteSize
		align = max(align, w)
	})
	return AlignSize(cursor, align), align
}

func groupAlign(n *Node[Compiled]) int {
	a := 1
	for i := range n.Children {
		a = max(a, n.Children[i].Leaf.Type.Width())
	}
	return a
}
