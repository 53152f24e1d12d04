package search

import (
	"strings"

	"github.com/pstuifzand/tui-tree/internal/tree"
)

// Entry is one node of the tree as seen by a query.
type Entry struct {
	Path     tree.Path[string]
	Text     string
	Children int
	Parent   *Entry
	// Order is the position in a pre-order walk of the whole forest.
	Order int
}

// Depth is 0 for root-level nodes.
func (e *Entry) Depth() int {
	return e.Path.Depth()
}

// Index holds every node of a forest in pre-order, including the ones that are
// hidden behind closed branches.
type Index struct {
	entries []*Entry
	byPath  map[string]*Entry
}

// NewIndex walks all nodes of roots. Multi-line content is joined with spaces.
func NewIndex(roots []*tree.Node[string]) *Index {
	ix := &Index{byPath: make(map[string]*Entry)}
	ix.collect(nil, nil, roots)
	return ix
}

func (ix *Index) collect(parent *Entry, path tree.Path[string], nodes []*tree.Node[string]) {
	for _, node := range nodes {
		entry := &Entry{
			Path:     path.Append(node.Identifier()),
			Children: len(node.Children()),
			Parent:   parent,
			Order:    len(ix.entries),
		}
		if c := node.Content(); c != nil {
			entry.Text = strings.Join(c.Lines(), " ")
		}
		ix.entries = append(ix.entries, entry)
		ix.byPath[pathKey(entry.Path)] = entry
		ix.collect(entry, entry.Path, node.Children())
	}
}

// Lookup finds the entry for path.
func (ix *Index) Lookup(path tree.Path[string]) (*Entry, bool) {
	e, ok := ix.byPath[pathKey(path)]
	return e, ok
}

// pathKey joins with NUL so identifiers containing "/" stay distinct.
func pathKey(path tree.Path[string]) string {
	return strings.Join(path, "\x00")
}

// Len returns the number of indexed nodes.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Find parses query and returns the matching entries in tree order. An empty
// query matches nothing.
func (ix *Index) Find(query string) ([]*Entry, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	expr, err := ParseQuery(query)
	if err != nil {
		return nil, err
	}
	return ix.Filter(expr), nil
}

// Filter returns the entries matching expr in tree order.
func (ix *Index) Filter(expr FilterExpr) []*Entry {
	var result []*Entry
	for _, e := range ix.entries {
		if expr.Matches(e) {
			result = append(result, e)
		}
	}
	return result
}
