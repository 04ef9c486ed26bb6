package layout

// Node is one entry of a family's nesting tree: either a leaf carrying T or
// a group with ordered leaf children. Groups never contain groups.
type Node[T any] struct {
	Name     string
	Leaf     *T
	Children []Node[T]
}

// IsGroup reports whether the node is a group.
func (n *Node[T]) IsGroup() bool { return n.Leaf == nil }

// Visitor is called for every node of a tree. group is the enclosing group
// name, empty for top-level nodes. enter is true when a group is entered and
// false when it is left; leaves are visited once with enter set.
type Visitor[T any] func(group string, n *Node[T], enter bool)

// Walk visits nodes depth-first in declaration order.
func Walk[T any](nodes []Node[T], visit Visitor[T]) {
	for i := range nodes {
		n := &nodes[i]
		if !n.IsGroup() {
			visit("", n, true)
			continue
		}
		visit("", n, true)
		for j := range n.Children {
			visit(n.Name, &n.Children[j], true)
		}
		visit("", n, false)
	}
}

// Leaves returns the leaves of a tree in depth-first declaration order.
func Leaves[T any](nodes []Node[T]) []*T {
	var out []*T
	Walk(nodes, func(_ string, n *Node[T], _ bool) {
		if !n.IsGroup() {
			out = append(out, n.Leaf)
		}
	})
	return out
}

// HostPath joins a group and leaf name into the slash separated path the host
// uses to address a channel.
func HostPath(group, leaf string) string {
	if group == "" {
		return leaf
	}
	return group + "/" + leaf
}
