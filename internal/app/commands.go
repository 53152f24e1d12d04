package app

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/pstuifzand/tui-tree/internal/export"
	"github.com/pstuifzand/tui-tree/internal/theme"
	"github.com/pstuifzand/tui-tree/internal/tree"
)

// parseCommand splits a command line into words. Single and double quotes
// group words; a backslash escapes the next character.
func parseCommand(input string) []string {
	var (
		parts   []string
		current strings.Builder
		quote   rune
		inWord  bool
		escaped bool
	)

	for _, r := range input {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
			inWord = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inWord = true
		case r == ' ' || r == '\t':
			if inWord {
				parts = append(parts, current.String())
				current.Reset()
				inWord = false
			}
		default:
			current.WriteRune(r)
			inWord = true
		}
	}
	if inWord {
		parts = append(parts, current.String())
	}
	return parts
}

// handleCommand processes a command from command mode
func (a *App) handleCommand(cmd string) {
	parts := parseCommand(cmd)
	if len(parts) == 0 {
		return
	}
	log.Printf("Command: %q", parts)

	args := parts[1:]
	switch parts[0] {
	case "q", "quit":
		a.quit = true
	case "help":
		a.help.Toggle()
	case "debug":
		a.debugMode = !a.debugMode
		if a.debugMode {
			a.status.SetMessage("Debug mode ON")
		} else {
			a.status.SetMessage("Debug mode OFF")
		}
	case "expand":
		a.state.OpenAll(a.roots)
	case "collapse":
		a.state.CloseAll()
	case "export":
		a.exportCommand(args)
	case "theme":
		a.themeCommand(args)
	case "anchor":
		a.anchorCommand(args)
	case "set":
		a.setCommand(args)
	default:
		a.status.SetError("Unknown command: " + parts[0])
	}
}

func (a *App) exportCommand(args []string) {
	if len(args) != 1 {
		a.status.SetError("Usage: export <file.md>")
		return
	}
	rows := a.state.Flatten(a.roots)
	if err := export.ExportToMarkdown(rows, args[0]); err != nil {
		log.Printf("Export failed: %v", err)
		a.status.SetError("Export failed: " + err.Error())
		return
	}
	a.status.SetMessage(fmt.Sprintf("Exported %d rows to %s", len(rows), args[0]))
}

func (a *App) themeCommand(args []string) {
	if len(args) != 1 {
		a.status.SetMessage("Theme: " + a.cfg.Theme)
		return
	}
	th, ok := theme.ByName(args[0])
	if !ok {
		var err error
		if th, err = theme.LoadTheme(args[0]); err != nil {
			a.status.SetError(err.Error())
			return
		}
	}
	a.cfg.Theme = args[0]
	a.applyTheme(th)
	a.status.SetMessage("Theme: " + args[0])
}

func (a *App) anchorCommand(args []string) {
	if len(args) != 1 {
		a.status.SetError("Usage: anchor top-left|bottom-left")
		return
	}
	anchor, ok := tree.ParseAnchor(args[0])
	if !ok {
		a.status.SetError(fmt.Sprintf("Unknown anchor %q", args[0]))
		return
	}
	a.widget.SetAnchor(anchor)
	a.cfg.Tree.Anchor = anchor.String()
}

// setCommand shows or changes a tree setting for this session. Unknown keys
// are kept as plain session settings.
func (a *App) setCommand(args []string) {
	switch len(args) {
	case 0:
		all := a.cfg.GetAll()
		keys := make([]string, 0, len(all))
		for k, v := range all {
			keys = append(keys, k+"="+v)
		}
		sort.Strings(keys)
		a.status.SetMessage(strings.Join(keys, " "))
		return
	case 1:
		a.status.SetMessage(args[0] + "=" + a.cfg.Get(args[0]))
		return
	}

	key, value := args[0], strings.Join(args[1:], " ")
	switch key {
	case "scroll_step":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			a.status.SetError("scroll_step must be a positive number")
			return
		}
		a.cfg.Tree.ScrollStep = n
	case "highlight_symbol":
		a.widget.SetHighlightSymbol(value)
	case "open_symbol":
		a.widget.SetOpenSymbol(value)
	case "closed_symbol":
		a.widget.SetClosedSymbol(value)
	case "leaf_symbol":
		a.widget.SetLeafSymbol(value)
	}
	a.cfg.Set(key, value)
	a.status.SetMessage(key + "=" + value)
}
