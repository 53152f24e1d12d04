package theme

import (
	"github.com/gdamore/tcell/v2"
)

// Colors holds all the color definitions for the theme
type Colors struct {
	Background tcell.Color

	// Tree rows
	TreeText        tcell.Color
	TreeSelected    tcell.Color
	TreeSelectedBg  tcell.Color
	TreeSearchMatch tcell.Color

	// Box around the tree
	Border tcell.Color
	Title  tcell.Color

	// Header line
	HeaderTitle tcell.Color
	HeaderBg    tcell.Color

	// Search prompt
	SearchLabel       tcell.Color
	SearchText        tcell.Color
	SearchResultCount tcell.Color

	// Status line
	StatusKey     tcell.Color
	StatusMessage tcell.Color
	StatusError   tcell.Color
}

// Theme represents a complete color theme
type Theme struct {
	Name   string
	Colors Colors
}

// Default returns a default theme using terminal defaults
func Default() *Theme {
	return &Theme{
		Name: "default",
		Colors: Colors{
			Background:        tcell.ColorDefault,
			TreeText:          tcell.ColorDefault,
			TreeSelected:      tcell.ColorDefault,
			TreeSelectedBg:    tcell.ColorDefault,
			TreeSearchMatch:   tcell.ColorDefault,
			Border:            tcell.ColorDefault,
			Title:             tcell.ColorDefault,
			HeaderTitle:       tcell.ColorDefault,
			HeaderBg:          tcell.ColorDefault,
			SearchLabel:       tcell.ColorDefault,
			SearchText:        tcell.ColorDefault,
			SearchResultCount: tcell.ColorDefault,
			StatusKey:         tcell.ColorDefault,
			StatusMessage:     tcell.ColorDefault,
			StatusError:       tcell.ColorDefault,
		},
	}
}

// TokyoNight returns the Tokyo Night theme
func TokyoNight() *Theme {
	return &Theme{
		Name: "tokyo-night",
		Colors: Colors{
			Background:        HexToColor("#1a1b26"), // Night
			TreeText:          HexToColor("#c0caf5"), // Light gray-blue
			TreeSelected:      HexToColor("#1a1b26"),
			TreeSelectedBg:    HexToColor("#7aa2f7"), // Blue
			TreeSearchMatch:   HexToColor("#e0af68"), // Yellow
			Border:            HexToColor("#3b4261"),
			Title:             HexToColor("#7dcfff"), // Cyan
			HeaderTitle:       HexToColor("#bb9af7"), // Magenta
			HeaderBg:          HexToColor("#16161e"),
			SearchLabel:       HexToColor("#bb9af7"),
			SearchText:        HexToColor("#c0caf5"),
			SearchResultCount: HexToColor("#9ece6a"), // Green
			StatusKey:         HexToColor("#7dcfff"),
			StatusMessage:     HexToColor("#565f89"), // Comment gray
			StatusError:       HexToColor("#f7768e"), // Red
		},
	}
}

// ByName returns a built-in theme.
func ByName(name string) (*Theme, bool) {
	switch name {
	case "default":
		return Default(), true
	case "tokyo-night":
		return TokyoNight(), true
	}
	return nil, false
}

// TreeStyle is the base style of the tree rows.
func (t *Theme) TreeStyle() tcell.Style {
	return ColorPairToStyle(t.Colors.TreeText, t.Colors.Background)
}

// HighlightStyle is the style of the selected row.
func (t *Theme) HighlightStyle() tcell.Style {
	if t.Colors.TreeSelectedBg == tcell.ColorDefault {
		return tcell.StyleDefault.Reverse(true)
	}
	return ColorPairToStyle(t.Colors.TreeSelected, t.Colors.TreeSelectedBg).Bold(true)
}

// SearchMatchStyle marks rows that match the active search. The background is
// tinted toward the match color when both are RGB.
func (t *Theme) SearchMatchStyle() tcell.Style {
	bg := Blend(t.Colors.Background, t.Colors.TreeSearchMatch, 0.2)
	return ColorPairToStyle(t.Colors.TreeSearchMatch, bg).Underline(true)
}

func (t *Theme) BorderStyle() tcell.Style {
	return ColorPairToStyle(t.Colors.Border, t.Colors.Background)
}

func (t *Theme) TitleStyle() tcell.Style {
	return ColorPairToStyle(t.Colors.Title, t.Colors.Background).Bold(true)
}

func (t *Theme) HeaderStyle() tcell.Style {
	return ColorPairToStyle(t.Colors.HeaderTitle, t.Colors.HeaderBg).Bold(true)
}

func (t *Theme) SearchLabelStyle() tcell.Style {
	return ColorPairToStyle(t.Colors.SearchLabel, t.Colors.Background)
}

func (t *Theme) SearchTextStyle() tcell.Style {
	return ColorPairToStyle(t.Colors.SearchText, t.Colors.Background)
}

func (t *Theme) SearchResultCountStyle() tcell.Style {
	return ColorPairToStyle(t.Colors.SearchResultCount, t.Colors.Background)
}

func (t *Theme) StatusKeyStyle() tcell.Style {
	return ColorPairToStyle(t.Colors.StatusKey, t.Colors.Background).Bold(true)
}

func (t *Theme) StatusMessageStyle() tcell.Style {
	return ColorPairToStyle(t.Colors.StatusMessage, t.Colors.Background)
}

func (t *Theme) StatusErrorStyle() tcell.Style {
	return ColorPairToStyle(t.Colors.StatusError, t.Colors.Background).Bold(true)
}

// BackgroundStyle returns the default background style for the application
func (t *Theme) BackgroundStyle() tcell.Style {
	return tcell.StyleDefault.Background(t.Colors.Background)
}
