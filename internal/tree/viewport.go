package tree

import "math"

// Viewport picks the rows of visible that fit into height screen rows and
// returns them as the half-open range [start, end). It commits start as the new
// offset and consumes a pending reveal. When visible is empty or height is not
// positive nothing fits and the state is left untouched.
//
// A selection that is not among the visible rows (collapsed or removed since it
// was selected) is treated as the first row.
func (s *State[K]) Viewport(visible []Flattened[K], height int) (start, end int) {
	if len(visible) == 0 || height <= 0 {
		return 0, 0
	}

	selected := 0
	if !s.selected.IsEmpty() {
		selected = max(indexOf(visible, s.selected), 0)
	}

	// Keep the last row reachable after the tree shrank.
	start = min(max(s.offset, 0), len(visible)-1)
	if s.revealSelected {
		start = min(start, selected)
	}

	end = start
	used := 0
	for _, row := range visible[start:] {
		h := row.Node.Height()
		if addHeight(used, h) > height {
			break
		}
		used = addHeight(used, h)
		end++
	}

	// Grow past the selection, then drop rows from the top until the window
	// fits again. Rows are only ever removed in front of the selection, so a
	// selected row taller than the area still starts the window.
	for s.revealSelected && selected >= end {
		used = addHeight(used, visible[end].Node.Height())
		end++
		for used > height && start < selected {
			used = subHeight(used, visible[start].Node.Height())
			start++
		}
	}

	s.offset = start
	s.revealSelected = false
	return start, end
}

func addHeight(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

func subHeight(a, b int) int {
	return max(a-b, 0)
}
