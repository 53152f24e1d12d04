// Package tree renders hierarchical data as an indented, scrollable list of rows
// inside a character grid and keeps track of which branches are open and which
// row is selected between render passes.
//
// A forest of Node values is built once per render. State is owned by the host
// and survives across renders; Flatten turns the forest plus the open paths into
// the visible rows and Tree.Render paints the window of rows that fits the area.
package tree

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ErrDuplicateIdentifier is returned when two siblings share an identifier.
var ErrDuplicateIdentifier = errors.New("duplicate identifier")

// Content is the payload displayed for a node.
type Content interface {
	// Height is the number of screen rows the content occupies.
	Height() int
	// Lines returns the text to draw, one entry per screen row.
	Lines() []string
}

// Styled is implemented by content that carries its own row style.
type Styled interface {
	Style() tcell.Style
}

// Text is a multi-line string content. Each "\n" starts a new row.
type Text struct {
	lines []string
	style tcell.Style
}

// NewText creates text content from s.
func NewText(s string) Text {
	return Text{lines: strings.Split(s, "\n")}
}

// NewStyledText creates text content drawn with style instead of the tree's base style.
func NewStyledText(s string, style tcell.Style) Text {
	return Text{lines: strings.Split(s, "\n"), style: style}
}

func (t Text) Height() int     { return len(t.lines) }
func (t Text) Lines() []string { return t.lines }
func (t Text) String() string  { return strings.Join(t.lines, "\n") }

// Style returns the row style. tcell.StyleDefault means the tree's base style is used.
func (t Text) Style() tcell.Style {
	return t.style
}

// Node is one element of the tree. A node owns its children; identifiers only
// have to be unique among direct siblings and may repeat elsewhere in the tree.
//
// A file browser is the usual example: a file name is unique inside its
// directory, and the path of names from the root identifies it everywhere.
type Node[K comparable] struct {
	identifier K
	content    Content
	children   []*Node[K]
}

// NewLeaf creates a node without children.
func NewLeaf[K comparable](identifier K, content Content) *Node[K] {
	return &Node[K]{
		identifier: identifier,
		content:    content,
	}
}

// New creates a node with children. It fails with ErrDuplicateIdentifier when
// two of the children share an identifier.
func New[K comparable](identifier K, content Content, children []*Node[K]) (*Node[K], error) {
	if err := checkUnique(children); err != nil {
		return nil, err
	}
	return &Node[K]{
		identifier: identifier,
		content:    content,
		children:   children,
	}, nil
}

// Identifier returns the node's identifier.
func (n *Node[K]) Identifier() K {
	return n.identifier
}

// Content returns the node's content.
func (n *Node[K]) Content() Content {
	return n.content
}

// Children returns the children in order. The slice must not be modified.
func (n *Node[K]) Children() []*Node[K] {
	return n.children
}

// HasChildren reports whether the node has at least one child.
func (n *Node[K]) HasChildren() bool {
	return len(n.children) > 0
}

// Child returns the child at index.
func (n *Node[K]) Child(index int) (*Node[K], bool) {
	if index < 0 || index >= len(n.children) {
		return nil, false
	}
	return n.children[index], true
}

// ChildMut returns the child at index for modification. Changing the
// identifiers of a child makes existing State paths point at nothing.
func (n *Node[K]) ChildMut(index int) (*Node[K], bool) {
	return n.Child(index)
}

// Height returns the number of rows the node's content occupies.
func (n *Node[K]) Height() int {
	if n.content == nil {
		return 0
	}
	return max(n.content.Height(), 0)
}

// AddChild appends child. It fails with ErrDuplicateIdentifier and leaves the
// children untouched when a child with the same identifier already exists.
func (n *Node[K]) AddChild(child *Node[K]) error {
	for _, existing := range n.children {
		if existing.identifier == child.identifier {
			return fmt.Errorf("%w: %v already exists in the children", ErrDuplicateIdentifier, child.identifier)
		}
	}
	n.children = append(n.children, child)
	return nil
}

func checkUnique[K comparable](nodes []*Node[K]) error {
	seen := make(map[K]struct{}, len(nodes))
	for _, node := range nodes {
		if _, ok := seen[node.identifier]; ok {
			return fmt.Errorf("%w: %v", ErrDuplicateIdentifier, node.identifier)
		}
		seen[node.identifier] = struct{}{}
	}
	return nil
}
