package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/tui-tree/internal/search"
	"github.com/pstuifzand/tui-tree/internal/tree"
)

const searchLabel = "Search: "

// SearchAction tells the caller what a key press in the prompt did.
type SearchAction int

const (
	// SearchEditing means the prompt is still open.
	SearchEditing SearchAction = iota
	// SearchSubmitted means enter was pressed; the matches stay available.
	SearchSubmitted
	// SearchCancelled means the prompt was closed with escape.
	SearchCancelled
)

// Search is the "/" prompt. Matches are recomputed on every edit.
type Search struct {
	index     *search.Index
	query     []rune
	cursorPos int
	active    bool

	matches         []*search.Entry
	currentMatchIdx int
	parseError      string

	history      []string
	historyIndex int
}

// NewSearch creates a prompt searching index.
func NewSearch(index *search.Index) *Search {
	return &Search{index: index, historyIndex: -1}
}

// Start opens an empty prompt.
func (s *Search) Start() {
	s.active = true
	s.query = s.query[:0]
	s.cursorPos = 0
	s.historyIndex = -1
	s.updateResults()
}

// IsActive returns whether the prompt is open.
func (s *Search) IsActive() bool {
	return s.active
}

// GetQuery returns the current query.
func (s *Search) GetQuery() string {
	return string(s.query)
}

// HandleKey edits the query.
func (s *Search) HandleKey(ev *tcell.EventKey) SearchAction {
	switch ev.Key() {
	case tcell.KeyEscape:
		s.active = false
		return SearchCancelled
	case tcell.KeyEnter:
		s.active = false
		s.addHistory(string(s.query))
		return SearchSubmitted
	case tcell.KeyUp:
		s.recall(-1)
	case tcell.KeyDown:
		s.recall(1)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if s.cursorPos > 0 {
			s.query = append(s.query[:s.cursorPos-1], s.query[s.cursorPos:]...)
			s.cursorPos--
			s.updateResults()
		}
	case tcell.KeyDelete:
		if s.cursorPos < len(s.query) {
			s.query = append(s.query[:s.cursorPos], s.query[s.cursorPos+1:]...)
			s.updateResults()
		}
	case tcell.KeyLeft:
		s.cursorPos = max(s.cursorPos-1, 0)
	case tcell.KeyRight:
		s.cursorPos = min(s.cursorPos+1, len(s.query))
	case tcell.KeyHome, tcell.KeyCtrlA:
		s.cursorPos = 0
	case tcell.KeyEnd, tcell.KeyCtrlE:
		s.cursorPos = len(s.query)
	case tcell.KeyCtrlU:
		s.query = s.query[:0]
		s.cursorPos = 0
		s.updateResults()
	case tcell.KeyRune:
		s.query = append(s.query[:s.cursorPos], append([]rune{ev.Rune()}, s.query[s.cursorPos:]...)...)
		s.cursorPos++
		s.updateResults()
	}
	return SearchEditing
}

func (s *Search) updateResults() {
	s.matches = nil
	s.currentMatchIdx = 0
	s.parseError = ""
	if s.index == nil {
		return
	}

	matches, err := s.index.Find(string(s.query))
	if err != nil {
		s.parseError = err.Error()
		return
	}
	s.matches = matches
}

func (s *Search) addHistory(query string) {
	if query == "" || (len(s.history) > 0 && s.history[len(s.history)-1] == query) {
		return
	}
	s.history = append(s.history, query)
	s.historyIndex = -1
}

// recall walks the history; dir -1 is older, 1 is newer. Walking past the
// newest entry clears the prompt.
func (s *Search) recall(dir int) {
	if len(s.history) == 0 {
		return
	}
	switch {
	case s.historyIndex < 0 && dir < 0:
		s.historyIndex = len(s.history) - 1
	case s.historyIndex < 0:
		return
	default:
		s.historyIndex += dir
	}
	s.historyIndex = max(s.historyIndex, 0)

	if s.historyIndex >= len(s.history) {
		s.historyIndex = -1
		s.query = s.query[:0]
	} else {
		s.query = append(s.query[:0], []rune(s.history[s.historyIndex])...)
	}
	s.cursorPos = len(s.query)
	s.updateResults()
}

// NextMatch moves to the next match, wrapping around.
func (s *Search) NextMatch() bool {
	if len(s.matches) == 0 {
		return false
	}
	s.currentMatchIdx = (s.currentMatchIdx + 1) % len(s.matches)
	return true
}

// PrevMatch moves to the previous match, wrapping around.
func (s *Search) PrevMatch() bool {
	if len(s.matches) == 0 {
		return false
	}
	s.currentMatchIdx = (s.currentMatchIdx - 1 + len(s.matches)) % len(s.matches)
	return true
}

// SeekFrom makes the first match at or after from (in tree order) current.
// An empty or unknown path leaves the first match current.
func (s *Search) SeekFrom(from tree.Path[string]) {
	if len(s.matches) == 0 || s.index == nil {
		return
	}
	start, ok := s.index.Lookup(from)
	if !ok {
		return
	}
	for i, m := range s.matches {
		if m.Order >= start.Order {
			s.currentMatchIdx = i
			return
		}
	}
	s.currentMatchIdx = 0
}

// Current returns the current match.
func (s *Search) Current() (*search.Entry, bool) {
	if len(s.matches) == 0 {
		return nil, false
	}
	return s.matches[s.currentMatchIdx], true
}

// Position returns the 1-based number of the current match and the match
// count. It is 0, 0 without matches.
func (s *Search) Position() (int, int) {
	if len(s.matches) == 0 {
		return 0, 0
	}
	return s.currentMatchIdx + 1, len(s.matches)
}

// MatchCount returns the number of matches.
func (s *Search) MatchCount() int {
	return len(s.matches)
}

// IsMatch reports whether path is one of the matches.
func (s *Search) IsMatch(path tree.Path[string]) bool {
	for _, m := range s.matches {
		if m.Path.Equal(path) {
			return true
		}
	}
	return false
}

// ParseError returns the last query error, if any.
func (s *Search) ParseError() string {
	return s.parseError
}

// Render draws the prompt in row area.Y.
func (s *Search) Render(screen *Screen, area tree.Rect) {
	th := screen.Theme
	screen.Fill(tree.Rect{X: area.X, Y: area.Y, Width: area.Width, Height: 1}, th.BackgroundStyle())

	var result string
	switch {
	case s.parseError != "":
		result = " (error)"
	case len(s.query) == 0:
	case len(s.matches) == 0:
		result = " (no matches)"
	default:
		result = fmt.Sprintf(" (%d of %d)", s.currentMatchIdx+1, len(s.matches))
	}

	x := area.X + screen.DrawStringLimited(area.X, area.Y, searchLabel, area.Width, th.SearchLabelStyle())
	room := area.Right() - x - StringWidth(result) - 1
	if room <= 0 {
		return
	}

	// Keep the cursor in view by dropping runes from the front.
	visible := s.query
	cursor := s.cursorPos
	for StringWidth(string(visible[:cursor])) >= room && cursor > 0 {
		visible = visible[1:]
		cursor--
	}
	used := screen.DrawStringLimited(x, area.Y, string(visible), room, th.SearchTextStyle())
	cursorX := x + StringWidth(string(visible[:cursor]))
	var under rune = ' '
	if cursor < len(visible) {
		under = visible[cursor]
	}
	screen.SetCell(cursorX, area.Y, under, th.SearchTextStyle().Reverse(true))

	if result != "" {
		screen.DrawString(max(x+used+1, area.Right()-StringWidth(result)), area.Y, result, th.SearchResultCountStyle())
	}
}
