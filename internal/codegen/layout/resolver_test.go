package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/vsgen/internal/codegen/channel"
)

func names(specs ...string) []channel.Spec {
	out := make([]channel.Spec, len(specs))
	for i, s := range specs {
		out[i] = channel.NewSpec(s)
	}
	return out
}

// shape renders a tree as "a g(x y) b" for compact assertions.
func shape[T any](nodes []Node[T]) []string {
	var out []string
	for _, n := range nodes {
		if !n.IsGroup() {
			out = append(out, n.Name)
			continue
		}
		s := n.Name + "("
		for i, c := range n.Children {
			if i > 0 {
				s += " "
			}
			s += c.Name
		}
		out = append(out, s+")")
	}
	return out
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		specs []channel.Spec
		want  []string
	}{
		{"empty", nil, nil},
		{"flat", names("a", "b"), []string{"a", "b"}},
		{"nested one group", names("scalar_in", "vectors.vector1d_in", "vectors.vector2d_in"), []string{"scalar_in", "vectors(vector1d_in vector2d_in)"}},
		{"group reused in first-seen position", names("g.x", "a", "h.y", "g.z", "b"), []string{"g(x z)", "a", "h(y)", "b"}},
		{"no sorting", names("z", "y.b", "y.a", "x"), []string{"z", "y(b a)", "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shape(Resolve(tt.specs)))
		})
	}
}

func TestResolveKeepsSpecs(t *testing.T) {
	specs := []channel.Spec{
		{Name: "vectors.vector1d_in", DimX: 8, DimY: 1},
		{Name: "vectors.m", DimX: 2, DimY: 3, Type: channel.Int32},
	}
	tree := Resolve(specs)
	require.Len(t, tree, 1)
	require.True(t, tree[0].IsGroup())
	require.Len(t, tree[0].Children, 2)
	assert.Equal(t, 8, tree[0].Children[0].Leaf.DimX)
	assert.Equal(t, channel.Int32, tree[0].Children[1].Leaf.Type)

	// the tree does not alias the input
	tree[0].Children[0].Leaf.DimX = 99
	assert.Equal(t, 8, specs[0].DimX)
}

func TestWalkOrder(t *testing.T) {
	tree := Resolve(names("a", "g.x", "g.y", "b"))
	var events []string
	Walk(tree, func(group string, n *Node[channel.Spec], enter bool) {
		switch {
		case !n.IsGroup():
			events = append(events, HostPath(group, n.Name))
		case enter:
			events = append(events, "enter "+n.Name)
		default:
			events = append(events, "leave "+n.Name)
		}
	})
	assert.Equal(t, []string{"a", "enter g", "g/x", "g/y", "leave g", "b"}, events)

	var leaves []string
	for _, l := range Leaves(tree) {
		leaves = append(leaves, l.Name)
	}
	assert.Equal(t, []string{"a", "g.x", "g.y", "b"}, leaves)
}
