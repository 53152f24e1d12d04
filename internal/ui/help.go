package ui

import "github.com/pstuifzand/tui-tree/internal/tree"

// KeyBindingInfo represents a keybinding for display
type KeyBindingInfo interface {
	GetKeyName() string
	GetDescription() string
}

// HelpScreen manages the help display
type HelpScreen struct {
	visible     bool
	keybindings []KeyBindingInfo
}

// NewHelpScreen creates a new HelpScreen
func NewHelpScreen() *HelpScreen {
	return &HelpScreen{}
}

// SetKeybindings sets the keybindings to display
func (h *HelpScreen) SetKeybindings(keybindings []KeyBindingInfo) {
	h.keybindings = keybindings
}

// Toggle toggles the help screen visibility
func (h *HelpScreen) Toggle() {
	h.visible = !h.visible
}

// Hide closes the help screen.
func (h *HelpScreen) Hide() {
	h.visible = false
}

// IsVisible returns whether the help screen is visible
func (h *HelpScreen) IsVisible() bool {
	return h.visible
}

// Lines returns the formatted keybinding list with aligned descriptions.
func (h *HelpScreen) Lines() []string {
	keyWidth := 0
	for _, kb := range h.keybindings {
		keyWidth = max(keyWidth, StringWidth(kb.GetKeyName()))
	}

	lines := make([]string, 0, len(h.keybindings))
	for _, kb := range h.keybindings {
		lines = append(lines, PadStringToWidth(kb.GetKeyName(), keyWidth)+"  "+kb.GetDescription())
	}
	return lines
}

// Render draws the help box centered over area.
func (h *HelpScreen) Render(screen *Screen, area tree.Rect) {
	if !h.visible {
		return
	}

	lines := h.Lines()
	width := len(" Keybindings (? to close) ") + 2
	for _, line := range lines {
		width = max(width, StringWidth(line)+4)
	}
	width = min(width, area.Width)
	height := min(len(lines)+2, area.Height)

	box := tree.Rect{
		X:      area.X + (area.Width-width)/2,
		Y:      area.Y + (area.Height-height)/2,
		Width:  width,
		Height: height,
	}
	screen.Fill(box, screen.Theme.TreeStyle())
	inner := screen.DrawBox(box, "Keybindings (? to close)")

	for i, line := range lines {
		if i >= inner.Height {
			break
		}
		screen.DrawStringLimited(inner.X+1, inner.Y+i, line, inner.Width-1, screen.Theme.TreeStyle())
	}
}
