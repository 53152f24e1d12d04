package tree

// PathSet is a set of paths stored as a trie of identifiers. Lookups walk one
// map per path segment, and Flatten walks the trie in step with the tree so a
// membership check during traversal costs a single map lookup.
type PathSet[K comparable] struct {
	root trieNode[K]
	size int
}

type trieNode[K comparable] struct {
	member   bool
	children map[K]*trieNode[K]
}

func (t *trieNode[K]) child(id K) *trieNode[K] {
	if t == nil || t.children == nil {
		return nil
	}
	return t.children[id]
}

// Insert adds p and reports whether the set changed. The empty path is ignored.
func (s *PathSet[K]) Insert(p Path[K]) bool {
	if len(p) == 0 {
		return false
	}
	node := &s.root
	for _, id := range p {
		next := node.child(id)
		if next == nil {
			if node.children == nil {
				node.children = make(map[K]*trieNode[K])
			}
			next = &trieNode[K]{}
			node.children[id] = next
		}
		node = next
	}
	if node.member {
		return false
	}
	node.member = true
	s.size++
	return true
}

// Remove deletes p and reports whether the set changed. Branches of the trie
// that no longer hold any member are pruned.
func (s *PathSet[K]) Remove(p Path[K]) bool {
	if len(p) == 0 {
		return false
	}
	removed := remove(&s.root, p)
	if removed {
		s.size--
	}
	return removed
}

func remove[K comparable](node *trieNode[K], p Path[K]) bool {
	if len(p) == 0 {
		if !node.member {
			return false
		}
		node.member = false
		return true
	}
	next := node.child(p[0])
	if next == nil {
		return false
	}
	removed := remove(next, p[1:])
	if removed && !next.member && len(next.children) == 0 {
		delete(node.children, p[0])
	}
	return removed
}

// Contains reports whether p is in the set.
func (s *PathSet[K]) Contains(p Path[K]) bool {
	if len(p) == 0 {
		return false
	}
	node := &s.root
	for _, id := range p {
		node = node.child(id)
		if node == nil {
			return false
		}
	}
	return node.member
}

func (s *PathSet[K]) Len() int {
	return s.size
}

// Clear removes every path and reports whether the set was non-empty.
func (s *PathSet[K]) Clear() bool {
	changed := s.size > 0
	s.root = trieNode[K]{}
	s.size = 0
	return changed
}

// Paths returns every member. The order is unspecified.
func (s *PathSet[K]) Paths() []Path[K] {
	out := make([]Path[K], 0, s.size)
	var walk func(node *trieNode[K], prefix Path[K])
	walk = func(node *trieNode[K], prefix Path[K]) {
		for id, child := range node.children {
			p := prefix.Append(id)
			if child.member {
				out = append(out, p)
			}
			walk(child, p)
		}
	}
	walk(&s.root, nil)
	return out
}
