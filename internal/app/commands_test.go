package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/tui-tree/internal/tree"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "simple command",
			input:    "expand",
			expected: []string{"expand"},
		},
		{
			name:     "command with arguments",
			input:    "export out.md",
			expected: []string{"export", "out.md"},
		},
		{
			name:     "double quoted string",
			input:    `export "my file.md"`,
			expected: []string{"export", "my file.md"},
		},
		{
			name:     "single quoted string",
			input:    "export 'my file.md'",
			expected: []string{"export", "my file.md"},
		},
		{
			name:     "escaped quotes",
			input:    `set highlight_symbol "\"> "`,
			expected: []string{"set", "highlight_symbol", `"> `},
		},
		{
			name:     "escaped backslash",
			input:    `export "C:\\notes\\out.md"`,
			expected: []string{"export", `C:\notes\out.md`},
		},
		{
			name:     "tabs and spaces",
			input:    "set\tscroll_step   5",
			expected: []string{"set", "scroll_step", "5"},
		},
		{
			name:     "empty quoted string",
			input:    `set leaf_symbol ""`,
			expected: []string{"set", "leaf_symbol", ""},
		},
		{
			name:     "only spaces",
			input:    "   ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseCommand(tt.input)
			if len(result) != len(tt.expected) {
				t.Fatalf("Expected %d parts, got %d (%q). Input: %q", len(tt.expected), len(result), result, tt.input)
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("Part %d: expected %q, got %q", i, tt.expected[i], result[i])
				}
			}
		})
	}
}

func runCommand(a *App, cmd string) {
	press(a, ':')
	typeText(a, cmd)
	press(a, tcell.KeyEnter)
}

func TestCommandModeCapturesKeys(t *testing.T) {
	a, sim := newTestApp(t, Options{})

	press(a, ':')
	if !a.command.IsActive() {
		t.Fatal("Expected command mode")
	}
	typeText(a, "qj")
	if a.quit || !a.state.Selected().Equal(path("fruit")) {
		t.Error("Expected keys to go to the command line")
	}
	a.render()
	if got := rowText(sim, 9); got != ":qj" {
		t.Errorf("Expected command line, got %q", got)
	}

	press(a, tcell.KeyEscape)
	if a.command.IsActive() || a.quit {
		t.Error("Expected escape to cancel the command")
	}
}

func TestQuitCommand(t *testing.T) {
	a, _ := newTestApp(t, Options{})
	runCommand(a, "quit")
	if !a.quit {
		t.Error("Expected :quit to quit")
	}
}

func TestUnknownCommand(t *testing.T) {
	a, _ := newTestApp(t, Options{})
	runCommand(a, "frobnicate now")
	if a.status.Message() != "Unknown command: frobnicate" {
		t.Errorf("Unexpected status %q", a.status.Message())
	}
}

func TestExpandCollapseCommands(t *testing.T) {
	a, _ := newTestApp(t, Options{})

	runCommand(a, "expand")
	if len(a.state.Flatten(a.roots)) != 6 {
		t.Error("Expected :expand to open everything")
	}
	runCommand(a, "collapse")
	if len(a.state.Flatten(a.roots)) != 3 {
		t.Error("Expected :collapse to close everything")
	}
}

func TestExportCommand(t *testing.T) {
	a, _ := newTestApp(t, Options{})
	press(a, 'l')
	out := filepath.Join(t.TempDir(), "my notes.md")

	runCommand(a, `export "`+out+`"`)

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Expected export file: %v", err)
	}
	want := "- Fruit\n  - Apple\n  - Banana\n- Vegetables\n- Notes\n"
	if string(data) != want {
		t.Errorf("Expected %q, got %q", want, data)
	}
	if !strings.HasPrefix(a.status.Message(), "Exported 5 rows") {
		t.Errorf("Unexpected status %q", a.status.Message())
	}

	runCommand(a, "export")
	if a.status.Message() != "Usage: export <file.md>" {
		t.Errorf("Unexpected status %q", a.status.Message())
	}
}

func TestThemeCommand(t *testing.T) {
	a, _ := newTestApp(t, Options{})

	runCommand(a, "theme tokyo-night")
	if a.screen.Theme.Name != "tokyo-night" {
		t.Errorf("Expected tokyo-night theme, got %q", a.screen.Theme.Name)
	}
	runCommand(a, "theme default")
	if a.cfg.Theme != "default" || a.screen.Theme.Name != "default" {
		t.Errorf("Expected default theme, got %q", a.screen.Theme.Name)
	}

	t.Setenv("HOME", t.TempDir())
	runCommand(a, "theme nosuchtheme")
	if a.cfg.Theme != "default" || a.screen.Theme.Name != "default" {
		t.Error("Expected failed theme switch to keep the current theme")
	}
}

func TestAnchorCommand(t *testing.T) {
	a, sim := newTestApp(t, Options{})

	runCommand(a, "anchor bottom-left")
	if a.cfg.Tree.Anchor != tree.AnchorBottomLeft.String() {
		t.Errorf("Expected anchor to change, got %q", a.cfg.Tree.Anchor)
	}
	a.render()
	// Inner area is rows 2..7; the first root is drawn on the last row.
	if got := strings.TrimSuffix(rowText(sim, 7), "│"); strings.TrimRight(got, " ") != "│> ▶ Fruit" {
		t.Errorf("Unexpected bottom row %q", got)
	}

	runCommand(a, "anchor middle")
	if a.status.Message() != `Unknown anchor "middle"` {
		t.Errorf("Unexpected status %q", a.status.Message())
	}
}

func TestSetCommand(t *testing.T) {
	a, _ := newTestApp(t, Options{ExpandAll: true})

	runCommand(a, "set scroll_step 2")
	press(a, tcell.KeyPgDn)
	if a.state.Offset() != 2 {
		t.Errorf("Expected page of 2 rows, got offset %d", a.state.Offset())
	}

	runCommand(a, "set scroll_step zero")
	if a.cfg.Tree.ScrollStep != 2 {
		t.Error("Expected invalid scroll_step to be rejected")
	}

	runCommand(a, "set color blue")
	runCommand(a, "set color")
	if a.status.Message() != "color=blue" {
		t.Errorf("Unexpected status %q", a.status.Message())
	}

	runCommand(a, "set")
	if a.status.Message() != "color=blue scroll_step=2" {
		t.Errorf("Unexpected status %q", a.status.Message())
	}
}
