package theme

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"
)

// ThemeConfig represents the raw TOML theme configuration
type ThemeConfig struct {
	Name   string `toml:"name"`
	Colors struct {
		Background        string `toml:"background"`
		TreeText          string `toml:"tree_text"`
		TreeSelected      string `toml:"tree_selected"`
		TreeSelectedBg    string `toml:"tree_selected_bg"`
		TreeSearchMatch   string `toml:"tree_search_match"`
		Border            string `toml:"border"`
		Title             string `toml:"title"`
		HeaderTitle       string `toml:"header_title"`
		HeaderBg          string `toml:"header_bg"`
		SearchLabel       string `toml:"search_label"`
		SearchText        string `toml:"search_text"`
		SearchResultCount string `toml:"search_result_count"`
		StatusKey         string `toml:"status_key"`
		StatusMessage     string `toml:"status_message"`
		StatusError       string `toml:"status_error"`
	} `toml:"colors"`
}

// getThemePaths returns the search paths for theme files
func getThemePaths() []string {
	paths := []string{}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "tui-tree", "themes"),
			filepath.Join(home, ".local", "share", "tui-tree", "themes"),
		)
	}

	return paths
}

// findThemeFile searches for a theme file in standard locations
func findThemeFile(themeName string) (string, error) {
	filename := themeName + ".toml"

	for _, dir := range getThemePaths() {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("theme file not found: %s", filename)
}

// LoadThemeFromFile loads a theme from a TOML file
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var config ThemeConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	return configToTheme(config), nil
}

// LoadTheme loads a theme by name, searching standard theme directories
func LoadTheme(themeName string) (*Theme, error) {
	filePath, err := findThemeFile(themeName)
	if err != nil {
		return nil, err
	}

	return LoadThemeFromFile(filePath)
}

// configToTheme converts a ThemeConfig to a Theme. Missing colors keep the
// Tokyo Night value.
func configToTheme(config ThemeConfig) *Theme {
	t := TokyoNight()
	c := &config.Colors

	overrides := []struct {
		value  string
		target *tcell.Color
	}{
		{c.Background, &t.Colors.Background},
		{c.TreeText, &t.Colors.TreeText},
		{c.TreeSelected, &t.Colors.TreeSelected},
		{c.TreeSelectedBg, &t.Colors.TreeSelectedBg},
		{c.TreeSearchMatch, &t.Colors.TreeSearchMatch},
		{c.Border, &t.Colors.Border},
		{c.Title, &t.Colors.Title},
		{c.HeaderTitle, &t.Colors.HeaderTitle},
		{c.HeaderBg, &t.Colors.HeaderBg},
		{c.SearchLabel, &t.Colors.SearchLabel},
		{c.SearchText, &t.Colors.SearchText},
		{c.SearchResultCount, &t.Colors.SearchResultCount},
		{c.StatusKey, &t.Colors.StatusKey},
		{c.StatusMessage, &t.Colors.StatusMessage},
		{c.StatusError, &t.Colors.StatusError},
	}
	for _, o := range overrides {
		if o.value != "" {
			*o.target = ParseColorString(o.value)
		}
	}

	if config.Name != "" {
		t.Name = config.Name
	}

	return t
}

// LoadThemeOrDefault returns a built-in theme by name, then looks for a theme
// file, and falls back to Tokyo Night.
func LoadThemeOrDefault(themeName string) *Theme {
	if t, ok := ByName(themeName); ok {
		return t
	}

	t, err := LoadTheme(themeName)
	if err != nil {
		return TokyoNight()
	}

	return t
}
