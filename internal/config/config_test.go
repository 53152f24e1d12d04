package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGet(t *testing.T) {
	cfg := &Config{Settings: map[string]string{"anchor": "top-left"}}

	assert.Equal(t, "", cfg.Get("nonexistent"))
	assert.Equal(t, "top-left", cfg.Get("anchor"))

	cfg.Set("anchor", "bottom-left")
	assert.Equal(t, "bottom-left", cfg.Get("anchor"), "session settings override persisted ones")
	assert.Equal(t, "top-left", cfg.Settings["anchor"])
}

func TestGetAllReturnsACopy(t *testing.T) {
	cfg := &Config{Settings: map[string]string{"a": "1", "b": "2"}}
	cfg.Set("b", "3")

	all := cfg.GetAll()
	assert.Equal(t, map[string]string{"a": "1", "b": "3"}, all)

	all["a"] = "modified"
	assert.Equal(t, "1", cfg.Get("a"))
}

func TestNilMaps(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, "", cfg.Get("key"))
	assert.Empty(t, cfg.GetAll())

	cfg.Set("key", "value")
	assert.Equal(t, "value", cfg.Get("key"))
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	assert.Equal(t, "tokyo-night", cfg.Theme)
	assert.Equal(t, "> ", cfg.Tree.HighlightSymbol)
	assert.Equal(t, "top-left", cfg.Tree.Anchor)
	assert.Equal(t, 3, cfg.Tree.ScrollStep)
	assert.NotNil(t, cfg.sessionSettings)
}

func TestLoadFromFileMissingUsesDefaults(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "none.toml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `theme = "default"

[tree]
open_symbol = "- "
closed_symbol = "+ "
anchor = "bottom-left"
scroll_step = 0

[settings]
foo = "bar"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.Theme)
	assert.Equal(t, "- ", cfg.Tree.OpenSymbol)
	assert.Equal(t, "+ ", cfg.Tree.ClosedSymbol)
	assert.Equal(t, "> ", cfg.Tree.HighlightSymbol, "unset keys keep their defaults")
	assert.Equal(t, "bottom-left", cfg.Tree.Anchor)
	assert.Equal(t, 3, cfg.Tree.ScrollStep, "non-positive step falls back")
	assert.Equal(t, "bar", cfg.Get("foo"))
}

func TestLoadFromFileParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[tree\n"), 0o644))

	_, err := LoadFromFile(path)
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestSaveToFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := defaultConfig()
	cfg.Tree.LeafSymbol = "· "
	cfg.Settings["persisted"] = "yes"
	cfg.Set("session", "only")

	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "· ", loaded.Tree.LeafSymbol)
	assert.Equal(t, "yes", loaded.Get("persisted"))
	assert.Equal(t, "", loaded.Get("session"), "session settings are not saved")
}

func TestSaveUsesHomeConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.NoError(t, defaultConfig().Save())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "tokyo-night", cfg.Theme)
	assert.FileExists(t, filepath.Join(home, ".config", "tui-tree", "config.toml"))
}
