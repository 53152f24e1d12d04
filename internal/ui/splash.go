package ui

import (
	"strings"

	"github.com/pstuifzand/tui-tree/internal/tree"
)

// SplashScreen fills the tree area when there is nothing to show
type SplashScreen struct {
	visible bool
	source  string
}

// NewSplashScreen creates a new SplashScreen for the named file
func NewSplashScreen(source string) *SplashScreen {
	return &SplashScreen{source: source}
}

// Show makes the splash screen visible
func (s *SplashScreen) Show() {
	s.visible = true
}

// Hide makes the splash screen invisible
func (s *SplashScreen) Hide() {
	s.visible = false
}

// IsVisible returns whether the splash screen is visible
func (s *SplashScreen) IsVisible() bool {
	return s.visible
}

// GetContent returns the lines to display on the splash screen
func (s *SplashScreen) GetContent() []string {
	return []string{
		"~~ tui-tree ~~",
		"",
		"No items in " + s.source,
		"",
		"Supported files:",
		"  .json      outline JSON",
		"  .md        headings and bullets",
		"  other      indented text",
		"",
		"Press ? for keys, q to quit",
	}
}

// Render draws the content as a block centered in area
func (s *SplashScreen) Render(screen *Screen, area tree.Rect) {
	if !s.visible || area.Empty() {
		return
	}

	screen.Fill(area, screen.Theme.BackgroundStyle())
	textStyle := screen.Theme.TitleStyle()
	dimStyle := screen.Theme.StatusMessageStyle()

	content := s.GetContent()
	blockWidth := 0
	for _, line := range content {
		blockWidth = max(blockWidth, StringWidth(line))
	}

	startY := area.Y + max((area.Height-len(content))/2, 0)
	startX := area.X + max((area.Width-blockWidth)/2, 0)

	for i, line := range content {
		y := startY + i
		if y >= area.Bottom() {
			break
		}
		style := textStyle
		if strings.HasPrefix(line, "  ") || strings.HasPrefix(line, "Press") {
			style = dimStyle
		}
		screen.DrawStringLimited(startX, y, line, area.Right()-startX, style)
	}
}
