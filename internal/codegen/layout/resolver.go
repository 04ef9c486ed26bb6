package layout

import "github.com/Alia5/vsgen/internal/codegen/channel"

// Resolve builds the nesting tree of a validated family. Top-level leaves and
// groups keep the position of their first declaration; leaves inside a group
// keep their declaration order. Nothing is sorted: the host binds table rows
// by position.
func Resolve(specs []channel.Spec) []Node[channel.Spec] {
	nodes := make([]Node[channel.Spec], 0, len(specs))
	groupIndex := make(map[string]int)

	for i := range specs {
		s := specs[i]
		group, leaf, _ := SplitName(s.Name)
		if group == "" {
			nodes = append(nodes, Node[channel.Spec]{Name: leaf, Leaf: &s})
			continue
		}

		idx, ok := groupIndex[group]
		if !ok {
			idx = len(nodes)
			groupIndex[group] = idx
			nodes = append(nodes, Node[channel.Spec]{Name: group})
		}
		nodes[idx].Children = append(nodes[idx].Children, Node[channel.Spec]{Name: leaf, Leaf: &s})
	}

	return nodes
}
