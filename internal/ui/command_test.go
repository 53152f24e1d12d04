package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/tui-tree/internal/tree"
)

func typeCommand(c *CommandMode, text string) {
	for _, r := range text {
		c.HandleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
}

func TestCommandModeEditing(t *testing.T) {
	c := NewCommandMode()
	c.Start()
	typeCommand(c, "export out.md")

	c.HandleKey(key(tcell.KeyCtrlW))
	if c.GetInput() != "export" {
		t.Errorf("Expected ctrl-w to delete a word, got %q", c.GetInput())
	}

	c.HandleKey(key(tcell.KeyHome))
	typeCommand(c, "x")
	c.HandleKey(key(tcell.KeyDelete))
	if c.GetInput() != "xxport" {
		t.Errorf("Expected edit at the cursor, got %q", c.GetInput())
	}

	c.HandleKey(key(tcell.KeyCtrlK))
	if c.GetInput() != "x" {
		t.Errorf("Expected ctrl-k to cut to the end, got %q", c.GetInput())
	}

	cmd, done := c.HandleKey(key(tcell.KeyEnter))
	if !done || cmd != "x" || c.IsActive() {
		t.Errorf("Expected submitted command, got %q done=%v", cmd, done)
	}
}

func TestCommandModeCancel(t *testing.T) {
	c := NewCommandMode()
	c.Start()
	typeCommand(c, "quit")
	if cmd, done := c.HandleKey(key(tcell.KeyEscape)); !done || cmd != "" {
		t.Errorf("Expected cancel, got %q done=%v", cmd, done)
	}

	c.Start()
	if cmd, done := c.HandleKey(key(tcell.KeyBackspace2)); !done || cmd != "" || c.IsActive() {
		t.Error("Expected backspace on an empty line to leave command mode")
	}
}

func TestCommandModeHistory(t *testing.T) {
	c := NewCommandMode()
	for _, cmd := range []string{"expand", "collapse"} {
		c.Start()
		typeCommand(c, cmd)
		c.HandleKey(key(tcell.KeyEnter))
	}

	c.Start()
	typeCommand(c, "th")
	c.HandleKey(key(tcell.KeyUp))
	if c.GetInput() != "collapse" {
		t.Errorf("Expected newest entry, got %q", c.GetInput())
	}
	c.HandleKey(key(tcell.KeyUp))
	c.HandleKey(key(tcell.KeyUp))
	if c.GetInput() != "expand" {
		t.Errorf("Expected oldest entry to stick, got %q", c.GetInput())
	}
	c.HandleKey(key(tcell.KeyDown))
	c.HandleKey(key(tcell.KeyDown))
	if c.GetInput() != "th" {
		t.Errorf("Expected typed text back, got %q", c.GetInput())
	}
}

func TestCommandModeRender(t *testing.T) {
	s := newTestScreen(t, 20, 2)
	c := NewCommandMode()

	c.Render(s, tree.Rect{Y: 1, Width: 20, Height: 1})
	if got := row(s, 1); got != "" {
		t.Errorf("Inactive command line should draw nothing, got %q", got)
	}

	c.Start()
	typeCommand(c, "theme default")
	c.Render(s, tree.Rect{Y: 1, Width: 20, Height: 1})
	if got := row(s, 1); got != ":theme default" {
		t.Errorf("Unexpected command line %q", got)
	}
}
