package tree

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Surface is the character grid a tree is painted into. tcell.Screen
// satisfies it.
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Rect is an area of the grid in cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) Right() int  { return r.X + r.Width }
func (r Rect) Bottom() int { return r.Y + r.Height }

func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks r by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{
		X:      r.X + n,
		Y:      r.Y + n,
		Width:  max(r.Width-2*n, 0),
		Height: max(r.Height-2*n, 0),
	}
}

// canvas clips every write to an area of the surface.
type canvas struct {
	surface Surface
	clip    Rect
}

func (c canvas) set(x, y int, r rune, style tcell.Style) {
	if c.clip.Contains(x, y) {
		c.surface.SetContent(x, y, r, nil, style)
	}
}

func (c canvas) fill(area Rect, style tcell.Style) {
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			c.set(x, y, ' ', style)
		}
	}
}

// drawString writes s from x up to maxWidth columns and returns the column
// after the last written cell. Wide runes that would not fit are dropped.
func (c canvas) drawString(x, y int, s string, maxWidth int, style tcell.Style) int {
	used := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w <= 0 {
			continue
		}
		if used+w > maxWidth {
			break
		}
		c.set(x+used, y, r, style)
		used += w
	}
	return x + used
}

// patchStyle returns base with the colors and attributes that over sets.
func patchStyle(base, over tcell.Style) tcell.Style {
	fg, bg, attrs := over.Decompose()
	if fg != tcell.ColorDefault {
		base = base.Foreground(fg)
	}
	if bg != tcell.ColorDefault {
		base = base.Background(bg)
	}
	_, _, baseAttrs := base.Decompose()
	base = base.Attributes(baseAttrs | attrs)
	if ul := over.GetUnderlineStyle(); ul != tcell.UnderlineStyleNone {
		base = base.Underline(ul)
	}
	if c := over.GetUnderlineColor(); c != tcell.ColorDefault {
		base = base.Underline(c)
	}
	return base
}
