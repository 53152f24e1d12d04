package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/tui-tree/internal/theme"
	"github.com/pstuifzand/tui-tree/internal/tree"
)

// Screen manages the tcell screen and rendering. It satisfies tree.Surface.
type Screen struct {
	tcellScreen tcell.Screen
	Theme       *theme.Theme
	closed      bool
}

// NewScreen creates and initializes a terminal screen with the given theme.
func NewScreen(t *theme.Theme) (*Screen, error) {
	tcellScreen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	return NewScreenFrom(tcellScreen, t)
}

// NewScreenFrom initializes an existing tcell screen, e.g. a simulation
// screen in tests.
func NewScreenFrom(s tcell.Screen, t *theme.Theme) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	if t == nil {
		t = theme.Default()
	}
	s.SetStyle(t.BackgroundStyle())

	return &Screen{tcellScreen: s, Theme: t}, nil
}

// SetTheme switches the theme used by everything drawn afterwards.
func (s *Screen) SetTheme(t *theme.Theme) {
	s.Theme = t
	s.tcellScreen.SetStyle(t.BackgroundStyle())
}

// Close restores the terminal. Calling it again does nothing.
func (s *Screen) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.tcellScreen.Fini()
	return nil
}

// Clear clears the entire screen
func (s *Screen) Clear() {
	s.tcellScreen.Clear()
}

// Show flushes pending changes to the terminal.
func (s *Screen) Show() {
	s.tcellScreen.Show()
}

// Sync redraws every cell, used after a resize.
func (s *Screen) Sync() {
	s.tcellScreen.Sync()
}

// PollEvent blocks until the next event. It returns nil after Close.
func (s *Screen) PollEvent() tcell.Event {
	return s.tcellScreen.PollEvent()
}

// Size returns the width and height of the screen
func (s *Screen) Size() (int, int) {
	return s.tcellScreen.Size()
}

// Bounds is the whole screen as a rectangle.
func (s *Screen) Bounds() tree.Rect {
	w, h := s.Size()
	return tree.Rect{Width: w, Height: h}
}

// SetContent implements tree.Surface. Writes outside the screen are dropped.
func (s *Screen) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	w, h := s.tcellScreen.Size()
	if x >= 0 && x < w && y >= 0 && y < h {
		s.tcellScreen.SetContent(x, y, primary, combining, style)
	}
}

// SetCell sets a cell at the given position
func (s *Screen) SetCell(x, y int, r rune, style tcell.Style) {
	s.SetContent(x, y, r, nil, style)
}

// DrawString draws text starting at x and returns the number of columns used.
// Wide runes take two columns.
func (s *Screen) DrawString(x, y int, text string, style tcell.Style) int {
	col := 0
	for _, r := range text {
		w := RuneWidth(r)
		if w == 0 {
			continue
		}
		s.SetCell(x+col, y, r, style)
		col += w
	}
	return col
}

// DrawStringLimited draws text, truncating it to maxWidth columns.
func (s *Screen) DrawStringLimited(x, y int, text string, maxWidth int, style tcell.Style) int {
	if maxWidth <= 0 {
		return 0
	}
	return s.DrawString(x, y, TruncateToWidth(text, maxWidth), style)
}

// Fill paints area with blanks in style.
func (s *Screen) Fill(area tree.Rect, style tcell.Style) {
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			s.SetCell(x, y, ' ', style)
		}
	}
}

// DrawBox draws a single-line border around area with an optional title in
// the top edge, and returns the inner area.
func (s *Screen) DrawBox(area tree.Rect, title string) tree.Rect {
	if area.Width < 2 || area.Height < 2 {
		return tree.Rect{X: area.X, Y: area.Y}
	}
	border := s.Theme.BorderStyle()
	left, top := area.X, area.Y
	right, bottom := area.Right()-1, area.Bottom()-1

	for x := left + 1; x < right; x++ {
		s.SetCell(x, top, '─', border)
		s.SetCell(x, bottom, '─', border)
	}
	for y := top + 1; y < bottom; y++ {
		s.SetCell(left, y, '│', border)
		s.SetCell(right, y, '│', border)
	}
	s.SetCell(left, top, '┌', border)
	s.SetCell(right, top, '┐', border)
	s.SetCell(left, bottom, '└', border)
	s.SetCell(right, bottom, '┘', border)

	if title != "" && area.Width > 4 {
		s.DrawStringLimited(left+1, top, " "+title+" ", area.Width-2, s.Theme.TitleStyle())
	}

	return area.Inset(1)
}
