package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor accepts #RRGGBB, #RGB, rgb(r,g,b) and the color names tcell
// knows about ("red", "darkcyan", "default").
func ParseColor(s string) (tcell.Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	switch {
	case s == "" || s == "default":
		return tcell.ColorDefault, nil
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return fromColorful(c), nil
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		parts := strings.Split(strings.TrimSuffix(strings.TrimPrefix(s, "rgb("), ")"), ",")
		if len(parts) != 3 {
			return tcell.ColorDefault, fmt.Errorf("invalid rgb color %q", s)
		}
		var rgb [3]int32
		for i, part := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || v < 0 || v > 255 {
				return tcell.ColorDefault, fmt.Errorf("invalid rgb component %q in %q", part, s)
			}
			rgb[i] = int32(v)
		}
		return tcell.NewRGBColor(rgb[0], rgb[1], rgb[2]), nil
	}

	if c, ok := tcell.ColorNames[s]; ok {
		return c, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown color %q", s)
}

// ParseColorString is ParseColor that falls back to the terminal default.
func ParseColorString(s string) tcell.Color {
	c, err := ParseColor(s)
	if err != nil {
		return tcell.ColorDefault
	}
	return c
}

// HexToColor converts a hex color string (#RRGGBB or #RGB) to tcell.Color
func HexToColor(hexColor string) tcell.Color {
	if !strings.HasPrefix(hexColor, "#") {
		hexColor = "#" + hexColor
	}
	return ParseColorString(hexColor)
}

// Blend mixes two RGB colors in Lab space. t=0 gives a, t=1 gives b.
// Non-RGB colors (like the terminal default) are returned unchanged.
func Blend(a, b tcell.Color, t float64) tcell.Color {
	if !a.IsRGB() || !b.IsRGB() {
		return a
	}
	return fromColorful(toColorful(a).BlendLab(toColorful(b), t).Clamped())
}

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func fromColorful(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// ColorPairToStyle creates a style with specific foreground and background colors
func ColorPairToStyle(fgColor, bgColor tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fgColor).Background(bgColor)
}
