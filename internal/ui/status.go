package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/tui-tree/internal/tree"
)

const defaultMessageTTL = 4 * time.Second

// StatusLine shows a transient message in the last screen row, with a
// permanent hint on the right.
type StatusLine struct {
	message string
	isError bool
	setAt   time.Time
	ttl     time.Duration
	hint    string

	// now is replaced in tests
	now func() time.Time
}

// NewStatusLine creates a status line whose messages expire after ttl.
// A zero ttl uses the default.
func NewStatusLine(ttl time.Duration) *StatusLine {
	if ttl <= 0 {
		ttl = defaultMessageTTL
	}
	return &StatusLine{ttl: ttl, now: time.Now}
}

// SetMessage shows an informational message.
func (s *StatusLine) SetMessage(msg string) {
	s.message, s.isError, s.setAt = msg, false, s.now()
}

// SetError shows an error message.
func (s *StatusLine) SetError(msg string) {
	s.message, s.isError, s.setAt = msg, true, s.now()
}

// SetHint sets the text shown right-aligned when there is room.
func (s *StatusLine) SetHint(hint string) {
	s.hint = hint
}

// Message returns the current message, or "" once it has expired.
func (s *StatusLine) Message() string {
	if s.message == "" || s.now().Sub(s.setAt) > s.ttl {
		return ""
	}
	return s.message
}

// Render draws the status line in row area.Y.
func (s *StatusLine) Render(screen *Screen, area tree.Rect) {
	row := tree.Rect{X: area.X, Y: area.Y, Width: area.Width, Height: 1}
	screen.Fill(row, screen.Theme.BackgroundStyle())

	var style tcell.Style
	if s.isError {
		style = screen.Theme.StatusErrorStyle()
	} else {
		style = screen.Theme.StatusMessageStyle()
	}
	used := screen.DrawStringLimited(area.X, area.Y, s.Message(), area.Width, style)

	hintWidth := StringWidth(s.hint)
	if s.hint != "" && used+hintWidth+1 <= area.Width {
		screen.DrawString(area.Right()-hintWidth, area.Y, s.hint, screen.Theme.StatusKeyStyle())
	}
}
