package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/tui-tree/internal/tree"
)

const commandHistorySize = 50

// CommandMode manages command line input (`:command`)
type CommandMode struct {
	active    bool
	input     []rune
	cursorPos int

	history      []string
	historyIndex int
	// pending is the unfinished input while walking the history
	pending []rune
}

// NewCommandMode creates a new CommandMode
func NewCommandMode() *CommandMode {
	return &CommandMode{historyIndex: -1}
}

// Start enters command mode
func (c *CommandMode) Start() {
	c.active = true
	c.input = c.input[:0]
	c.cursorPos = 0
	c.historyIndex = -1
}

// Stop exits command mode
func (c *CommandMode) Stop() {
	c.active = false
}

// IsActive returns whether command mode is active
func (c *CommandMode) IsActive() bool {
	return c.active
}

// GetInput returns the current command input
func (c *CommandMode) GetInput() string {
	return strings.TrimSpace(string(c.input))
}

// DeleteWordBackwards deletes the word before the cursor
func (c *CommandMode) DeleteWordBackwards() {
	pos := c.cursorPos
	for pos > 0 && (c.input[pos-1] == ' ' || c.input[pos-1] == '\t') {
		pos--
	}
	for pos > 0 && c.input[pos-1] != ' ' && c.input[pos-1] != '\t' {
		pos--
	}
	c.input = append(c.input[:pos], c.input[c.cursorPos:]...)
	c.cursorPos = pos
}

// HandleKey processes a key press in command mode. done is true when the
// prompt closed; command is empty when it was cancelled.
func (c *CommandMode) HandleKey(ev *tcell.EventKey) (command string, done bool) {
	switch ev.Key() {
	case tcell.KeyCtrlW:
		c.DeleteWordBackwards()
	case tcell.KeyEscape:
		c.Stop()
		return "", true
	case tcell.KeyEnter:
		cmd := c.GetInput()
		c.addHistory(cmd)
		c.Stop()
		return cmd, true
	case tcell.KeyUp:
		c.recall(-1)
	case tcell.KeyDown:
		c.recall(1)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if c.cursorPos > 0 {
			c.input = append(c.input[:c.cursorPos-1], c.input[c.cursorPos:]...)
			c.cursorPos--
		} else if len(c.input) == 0 {
			// Backspace on an empty line leaves command mode
			c.Stop()
			return "", true
		}
	case tcell.KeyDelete:
		if c.cursorPos < len(c.input) {
			c.input = append(c.input[:c.cursorPos], c.input[c.cursorPos+1:]...)
		}
	case tcell.KeyLeft:
		c.cursorPos = max(c.cursorPos-1, 0)
	case tcell.KeyRight:
		c.cursorPos = min(c.cursorPos+1, len(c.input))
	case tcell.KeyHome, tcell.KeyCtrlA:
		c.cursorPos = 0
	case tcell.KeyEnd, tcell.KeyCtrlE:
		c.cursorPos = len(c.input)
	case tcell.KeyCtrlU:
		c.input = append(c.input[:0], c.input[c.cursorPos:]...)
		c.cursorPos = 0
	case tcell.KeyCtrlK:
		c.input = c.input[:c.cursorPos]
	case tcell.KeyRune:
		c.input = append(c.input[:c.cursorPos], append([]rune{ev.Rune()}, c.input[c.cursorPos:]...)...)
		c.cursorPos++
	}

	return "", false
}

func (c *CommandMode) addHistory(cmd string) {
	if cmd == "" || (len(c.history) > 0 && c.history[len(c.history)-1] == cmd) {
		return
	}
	c.history = append(c.history, cmd)
	if len(c.history) > commandHistorySize {
		c.history = c.history[len(c.history)-commandHistorySize:]
	}
}

// recall walks the history; -1 is older. Walking past the newest entry
// brings back what was typed before.
func (c *CommandMode) recall(dir int) {
	if len(c.history) == 0 {
		return
	}
	switch {
	case c.historyIndex < 0 && dir > 0:
		return
	case c.historyIndex < 0:
		c.pending = append(c.pending[:0], c.input...)
		c.historyIndex = len(c.history) - 1
	default:
		c.historyIndex = max(c.historyIndex+dir, 0)
	}

	if c.historyIndex >= len(c.history) {
		c.historyIndex = -1
		c.input = append(c.input[:0], c.pending...)
	} else {
		c.input = append(c.input[:0], []rune(c.history[c.historyIndex])...)
	}
	c.cursorPos = len(c.input)
}

// Render renders the command line in row area.Y
func (c *CommandMode) Render(screen *Screen, area tree.Rect) {
	if !c.active {
		return
	}
	th := screen.Theme
	screen.Fill(tree.Rect{X: area.X, Y: area.Y, Width: area.Width, Height: 1}, th.SearchTextStyle())

	x := area.X + screen.DrawStringLimited(area.X, area.Y, ":", area.Width, th.SearchLabelStyle())
	room := area.Right() - x - 1
	if room <= 0 {
		return
	}

	visible := c.input
	cursor := c.cursorPos
	for StringWidth(string(visible[:cursor])) >= room && cursor > 0 {
		visible = visible[1:]
		cursor--
	}
	screen.DrawStringLimited(x, area.Y, string(visible), room, th.SearchTextStyle())

	cursorX := x + StringWidth(string(visible[:cursor]))
	r := ' '
	if cursor < len(visible) {
		r = visible[cursor]
	}
	screen.SetCell(cursorX, area.Y, r, th.SearchTextStyle().Reverse(true))
}
