package tree

import "math"

// State keeps the interaction state of a tree between renders: the open
// branches, the selected row and the scroll offset. It is owned by the host and
// must only be used from one goroutine at a time; a render mutates it.
//
// The zero value is ready to use.
type State[K comparable] struct {
	opened   PathSet[K]
	selected Path[K]
	offset   int

	// revealSelected forces the next render to scroll until the selected row
	// is visible. Set by selection changes, cleared by Render.
	revealSelected bool
}

// NewState returns an empty State.
func NewState[K comparable]() *State[K] {
	return &State[K]{}
}

// Offset is the index of the topmost rendered row.
func (s *State[K]) Offset() int {
	return s.offset
}

// Selected returns a copy of the selected path. It is empty when nothing is selected.
func (s *State[K]) Selected() Path[K] {
	return s.selected.Clone()
}

// Opened returns the open paths in unspecified order.
func (s *State[K]) Opened() []Path[K] {
	return s.opened.Paths()
}

// IsOpen reports whether the children of the node at p are shown.
func (s *State[K]) IsOpen(p Path[K]) bool {
	return s.opened.Contains(p)
}

// RevealPending reports whether the next render will scroll to the selection.
func (s *State[K]) RevealPending() bool {
	return s.revealSelected
}

// Flatten returns the rows of roots that are currently visible.
func (s *State[K]) Flatten(roots []*Node[K]) []Flattened[K] {
	return Flatten(&s.opened, roots)
}

// Select selects p and makes the next render scroll it into view. An empty
// path clears the selection. Reports whether the selection changed.
func (s *State[K]) Select(p Path[K]) bool {
	s.revealSelected = true
	changed := !s.selected.Equal(p)
	s.selected = p.Clone()
	return changed
}

// Open shows the children of the node at p. Reports whether p was closed before.
func (s *State[K]) Open(p Path[K]) bool {
	return s.visibilityChanged(s.opened.Insert(p))
}

// Close hides the children of the node at p. Reports whether p was open before.
func (s *State[K]) Close(p Path[K]) bool {
	return s.visibilityChanged(s.opened.Remove(p))
}

// Toggle opens p when it is closed and closes it otherwise. It always changes
// the state of non-empty paths.
func (s *State[K]) Toggle(p Path[K]) bool {
	if s.opened.Contains(p) {
		return s.Close(p)
	}
	return s.Open(p)
}

// ToggleSelected toggles the selected node. Reports false without a selection.
func (s *State[K]) ToggleSelected() bool {
	if s.selected.IsEmpty() {
		return false
	}
	s.revealSelected = true
	return s.Toggle(s.selected)
}

// CloseAll closes every node. Reports whether anything was open.
func (s *State[K]) CloseAll() bool {
	return s.visibilityChanged(s.opened.Clear())
}

// OpenAll opens every node of roots that has children.
func (s *State[K]) OpenAll(roots []*Node[K]) bool {
	changed := false
	var walk func(nodes []*Node[K], parent Path[K])
	walk = func(nodes []*Node[K], parent Path[K]) {
		for _, node := range nodes {
			if !node.HasChildren() {
				continue
			}
			p := parent.Append(node.identifier)
			if s.opened.Insert(p) {
				changed = true
			}
			walk(node.children, p)
		}
	}
	walk(roots, nil)
	return s.visibilityChanged(changed)
}

// OpenAncestors opens every ancestor of p so that the node at p becomes visible.
func (s *State[K]) OpenAncestors(p Path[K]) bool {
	changed := false
	for i := 1; i < len(p); i++ {
		if s.opened.Insert(p[:i].Clone()) {
			changed = true
		}
	}
	return s.visibilityChanged(changed)
}

// visibilityChanged arms the reveal when the visible rows changed while a row
// is selected, so the selection does not drift out of view.
func (s *State[K]) visibilityChanged(changed bool) bool {
	if changed && !s.selected.IsEmpty() {
		s.revealSelected = true
	}
	return changed
}

// SelectFirst selects the first visible row.
func (s *State[K]) SelectFirst(roots []*Node[K]) bool {
	if len(roots) == 0 {
		return s.Select(nil)
	}
	return s.Select(Path[K]{roots[0].identifier})
}

// SelectLast selects the last visible row.
func (s *State[K]) SelectLast(roots []*Node[K]) bool {
	visible := s.Flatten(roots)
	if len(visible) == 0 {
		return s.Select(nil)
	}
	return s.Select(visible[len(visible)-1].Path)
}

// SelectRelative moves the selection by delta visible rows, clamped to the
// first and last row. Without a selection, a positive delta starts from the top
// and a negative delta from the bottom. A selection that is no longer visible
// counts as the first row, as it does in Viewport.
func (s *State[K]) SelectRelative(roots []*Node[K], delta int) bool {
	visible := s.Flatten(roots)
	if len(visible) == 0 {
		return s.Select(nil)
	}

	var next int
	switch {
	case s.selected.IsEmpty() && delta < 0:
		next = len(visible) - 1
	case s.selected.IsEmpty():
		next = 0
	default:
		next = max(indexOf(visible, s.selected), 0) + delta
	}
	next = min(max(next, 0), len(visible)-1)
	return s.Select(visible[next].Path)
}

// KeyUp selects the previous visible row.
func (s *State[K]) KeyUp(roots []*Node[K]) bool {
	return s.SelectRelative(roots, -1)
}

// KeyDown selects the next visible row.
func (s *State[K]) KeyDown(roots []*Node[K]) bool {
	return s.SelectRelative(roots, 1)
}

// KeyLeft closes the selected node, or selects its parent when it is already closed.
func (s *State[K]) KeyLeft() bool {
	if s.selected.IsEmpty() {
		return false
	}
	s.revealSelected = true
	if s.opened.Remove(s.selected) {
		return true
	}
	parent, ok := s.selected.Parent()
	if !ok {
		return false
	}
	s.selected = parent
	return true
}

// KeyRight opens the selected node.
func (s *State[K]) KeyRight() bool {
	if s.selected.IsEmpty() {
		return false
	}
	s.revealSelected = true
	return s.Open(s.selected)
}

// ScrollUp moves the offset up by lines. Reports whether it moved.
func (s *State[K]) ScrollUp(lines int) bool {
	before := s.offset
	s.offset = max(s.offset-max(lines, 0), 0)
	return before != s.offset
}

// ScrollDown moves the offset down by lines. The next render clamps it to the
// last row.
func (s *State[K]) ScrollDown(lines int) bool {
	if lines <= 0 {
		return false
	}
	if s.offset > math.MaxInt-lines {
		s.offset = math.MaxInt
	} else {
		s.offset += lines
	}
	return true
}

func indexOf[K comparable](visible []Flattened[K], p Path[K]) int {
	for i, row := range visible {
		if row.Path.Equal(p) {
			return i
		}
	}
	return -1
}
