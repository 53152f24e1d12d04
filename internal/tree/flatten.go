package tree

// Flattened is one visible row: the node and the path that leads to it.
// It references the source tree and is only valid while that tree is alive.
type Flattened[K comparable] struct {
	Path Path[K]
	Node *Node[K]
}

// Depth is zero for root level rows.
func (f Flattened[K]) Depth() int {
	return f.Path.Depth()
}

// Flatten returns the visible rows of roots in depth-first pre-order. Children
// are only visited when the path of their parent is in expanded, so hidden
// subtrees cost one check each regardless of their size.
func Flatten[K comparable](expanded *PathSet[K], roots []*Node[K]) []Flattened[K] {
	var open *trieNode[K]
	if expanded != nil {
		open = &expanded.root
	}
	return flatten(nil, open, roots, nil)
}

func flatten[K comparable](result []Flattened[K], open *trieNode[K], nodes []*Node[K], current Path[K]) []Flattened[K] {
	for _, node := range nodes {
		path := current.Append(node.identifier)
		result = append(result, Flattened[K]{Path: path, Node: node})

		sub := open.child(node.identifier)
		if sub != nil && sub.member {
			result = flatten(result, sub, node.children, path)
		}
	}
	return result
}
