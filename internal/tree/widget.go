package tree

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Anchor is the corner rows are stacked from.
type Anchor int

const (
	// AnchorTopLeft draws the first row at the top of the area.
	AnchorTopLeft Anchor = iota
	// AnchorBottomLeft draws the first row at the bottom of the area and
	// stacks the following rows upwards.
	AnchorBottomLeft
)

func (a Anchor) String() string {
	switch a {
	case AnchorBottomLeft:
		return "bottom-left"
	default:
		return "top-left"
	}
}

// ParseAnchor accepts "top-left" and "bottom-left".
func ParseAnchor(s string) (Anchor, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top-left", "topleft", "":
		return AnchorTopLeft, true
	case "bottom-left", "bottomleft":
		return AnchorBottomLeft, true
	}
	return AnchorTopLeft, false
}

const (
	DefaultClosedSymbol = "▶ "
	DefaultOpenSymbol   = "▼ "
	DefaultLeafSymbol   = "  "
)

// Tree paints a forest of nodes. The interaction state lives in a State that
// is passed to Render.
type Tree[K comparable] struct {
	items []*Node[K]

	anchor Anchor
	// style is the base style of the whole area
	style tcell.Style
	// highlightStyle is used for the selected row
	highlightStyle tcell.Style
	// highlightSymbol is drawn in front of the selected row, shifting all rows right
	highlightSymbol string

	closedSymbol string
	openSymbol   string
	leafSymbol   string

	// marked rows that are not selected are drawn in markStyle
	marked    func(Path[K]) bool
	markStyle tcell.Style
}

// NewTree creates a tree widget. It fails with ErrDuplicateIdentifier when two
// root nodes share an identifier.
func NewTree[K comparable](items []*Node[K]) (*Tree[K], error) {
	if err := checkUnique(items); err != nil {
		return nil, err
	}
	return &Tree[K]{
		items:        items,
		anchor:       AnchorTopLeft,
		style:        tcell.StyleDefault,
		closedSymbol: DefaultClosedSymbol,
		openSymbol:   DefaultOpenSymbol,
		leafSymbol:   DefaultLeafSymbol,
	}, nil
}

// Items returns the root nodes.
func (t *Tree[K]) Items() []*Node[K] {
	return t.items
}

func (t *Tree[K]) SetAnchor(anchor Anchor) *Tree[K] {
	t.anchor = anchor
	return t
}

func (t *Tree[K]) SetStyle(style tcell.Style) *Tree[K] {
	t.style = style
	return t
}

func (t *Tree[K]) SetHighlightStyle(style tcell.Style) *Tree[K] {
	t.highlightStyle = style
	return t
}

func (t *Tree[K]) SetHighlightSymbol(symbol string) *Tree[K] {
	t.highlightSymbol = symbol
	return t
}

// SetClosedSymbol sets the prefix of nodes whose children are hidden.
func (t *Tree[K]) SetClosedSymbol(symbol string) *Tree[K] {
	t.closedSymbol = symbol
	return t
}

// SetOpenSymbol sets the prefix of nodes whose children are shown.
func (t *Tree[K]) SetOpenSymbol(symbol string) *Tree[K] {
	t.openSymbol = symbol
	return t
}

// SetLeafSymbol sets the prefix of nodes without children.
func (t *Tree[K]) SetLeafSymbol(symbol string) *Tree[K] {
	t.leafSymbol = symbol
	return t
}

// SetMarked draws every unselected row for which marked returns true in
// style. A nil func clears the marks.
func (t *Tree[K]) SetMarked(marked func(Path[K]) bool, style tcell.Style) *Tree[K] {
	t.marked = marked
	t.markStyle = style
	return t
}

// Draw renders the tree with everything closed and nothing selected.
func (t *Tree[K]) Draw(surface Surface, area Rect) {
	t.Render(surface, area, NewState[K]())
}

// Render paints the rows of the tree that fit into area and updates the
// offset of state so that a pending selection is visible.
func (t *Tree[K]) Render(surface Surface, area Rect, state *State[K]) {
	c := canvas{surface: surface, clip: area}
	c.fill(area, t.style)
	if area.Empty() {
		return
	}

	visible := state.Flatten(t.items)
	if len(visible) == 0 {
		return
	}
	start, end := state.Viewport(visible, area.Height)

	blank := strings.Repeat(" ", runewidth.StringWidth(t.highlightSymbol))
	hasSelection := !state.selected.IsEmpty()

	current := 0
	for _, row := range visible[start:end] {
		height := row.Node.Height()
		var y int
		switch t.anchor {
		case AnchorBottomLeft:
			current += height
			y = area.Bottom() - current
		default:
			y = area.Y + current
			current += height
		}

		selected := hasSelection && state.selected.Equal(row.Path)
		style := t.rowStyle(row, selected)
		c.fill(Rect{X: area.X, Y: y, Width: area.Width, Height: height}, style)

		x := area.X
		if hasSelection {
			symbol := blank
			if selected {
				symbol = t.highlightSymbol
			}
			x = c.drawString(x, y, symbol, area.Right()-x, style)
		}
		x = min(x+row.Depth()*2, area.Right())
		x = c.drawString(x, y, t.nodeSymbol(row, state), area.Right()-x, style)

		if row.Node.content == nil {
			continue
		}
		for j, line := range row.Node.content.Lines() {
			if j >= height {
				break
			}
			c.drawString(x, y+j, line, area.Right()-x, style)
		}
	}
}

// rowStyle layers content, mark and highlight styles over the base style.
func (t *Tree[K]) rowStyle(row Flattened[K], selected bool) tcell.Style {
	style := t.style
	if styled, ok := row.Node.content.(Styled); ok {
		style = patchStyle(style, styled.Style())
	}
	if t.marked != nil && t.marked(row.Path) {
		style = patchStyle(style, t.markStyle)
	}
	if selected {
		style = patchStyle(style, t.highlightStyle)
	}
	return style
}

func (t *Tree[K]) nodeSymbol(row Flattened[K], state *State[K]) string {
	switch {
	case !row.Node.HasChildren():
		return t.leafSymbol
	case state.IsOpen(row.Path):
		return t.openSymbol
	default:
		return t.closedSymbol
	}
}
