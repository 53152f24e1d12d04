package tree

import (
	"fmt"
	"strings"
)

// Path is the sequence of identifiers from a root node down to a node,
// inclusive. It identifies a node across renders as long as the host keeps
// identifiers stable. The empty path means "nothing".
type Path[K comparable] []K

// Append returns a new path for the child id of p. p is never aliased.
func (p Path[K]) Append(id K) Path[K] {
	child := make(Path[K], len(p), len(p)+1)
	copy(child, p)
	return append(child, id)
}

// Parent returns p without its last identifier. Root level and empty paths
// have no parent.
func (p Path[K]) Parent() (Path[K], bool) {
	if len(p) < 2 {
		return nil, false
	}
	parent := make(Path[K], len(p)-1)
	copy(parent, p)
	return parent, true
}

// Leaf returns the last identifier of p.
func (p Path[K]) Leaf() (K, bool) {
	var zero K
	if len(p) == 0 {
		return zero, false
	}
	return p[len(p)-1], true
}

// Depth is zero for root level nodes.
func (p Path[K]) Depth() int {
	return len(p) - 1
}

func (p Path[K]) IsEmpty() bool {
	return len(p) == 0
}

// Equal reports whether both paths hold the same identifiers in the same order.
func (p Path[K]) Equal(other Path[K]) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether prefix is an ancestor of p or p itself.
func (p Path[K]) HasPrefix(prefix Path[K]) bool {
	return len(prefix) <= len(p) && p[:len(prefix)].Equal(prefix)
}

// Clone returns a copy of p that shares no memory with it.
func (p Path[K]) Clone() Path[K] {
	if p == nil {
		return nil
	}
	out := make(Path[K], len(p))
	copy(out, p)
	return out
}

func (p Path[K]) String() string {
	parts := make([]string, len(p))
	for i, id := range p {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, "/")
}
