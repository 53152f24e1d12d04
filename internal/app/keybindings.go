package app

import (
	"github.com/gdamore/tcell/v2"
)

// KeyBinding represents a key binding with its description and handler
type KeyBinding struct {
	// Name is shown in the help screen
	Name        string
	Runes       []rune
	Keys        []tcell.Key
	Description string
	Handler     func(*App)
}

// GetKeyName returns the key as shown in the help screen
func (kb *KeyBinding) GetKeyName() string {
	return kb.Name
}

// GetDescription returns the description of this keybinding
func (kb *KeyBinding) GetDescription() string {
	return kb.Description
}

// Matches reports whether ev triggers this binding.
func (kb *KeyBinding) Matches(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyRune {
		for _, r := range kb.Runes {
			if r == ev.Rune() {
				return true
			}
		}
		return false
	}
	for _, k := range kb.Keys {
		if k == ev.Key() {
			return true
		}
	}
	return false
}

// InitializeKeybindings sets up all the key bindings
func (a *App) InitializeKeybindings() []KeyBinding {
	return []KeyBinding{
		{
			Name:        "j / ↓",
			Runes:       []rune{'j'},
			Keys:        []tcell.Key{tcell.KeyDown},
			Description: "Select next row",
			Handler: func(app *App) {
				app.state.KeyDown(app.roots)
			},
		},
		{
			Name:        "k / ↑",
			Runes:       []rune{'k'},
			Keys:        []tcell.Key{tcell.KeyUp},
			Description: "Select previous row",
			Handler: func(app *App) {
				app.state.KeyUp(app.roots)
			},
		},
		{
			Name:        "h / ←",
			Runes:       []rune{'h'},
			Keys:        []tcell.Key{tcell.KeyLeft},
			Description: "Collapse, or go to parent",
			Handler: func(app *App) {
				app.state.KeyLeft()
			},
		},
		{
			Name:        "l / →",
			Runes:       []rune{'l'},
			Keys:        []tcell.Key{tcell.KeyRight},
			Description: "Expand",
			Handler: func(app *App) {
				app.state.KeyRight()
			},
		},
		{
			Name:        "enter / space",
			Runes:       []rune{' '},
			Keys:        []tcell.Key{tcell.KeyEnter},
			Description: "Toggle expanded",
			Handler: func(app *App) {
				app.state.ToggleSelected()
			},
		},
		{
			Name:        "g / home",
			Runes:       []rune{'g'},
			Keys:        []tcell.Key{tcell.KeyHome},
			Description: "Select first row",
			Handler: func(app *App) {
				app.state.SelectFirst(app.roots)
			},
		},
		{
			Name:        "G / end",
			Runes:       []rune{'G'},
			Keys:        []tcell.Key{tcell.KeyEnd},
			Description: "Select last row",
			Handler: func(app *App) {
				app.state.SelectLast(app.roots)
			},
		},
		{
			Name:        "ctrl-e",
			Keys:        []tcell.Key{tcell.KeyCtrlE},
			Description: "Scroll down one row",
			Handler: func(app *App) {
				app.state.ScrollDown(1)
			},
		},
		{
			Name:        "ctrl-y",
			Keys:        []tcell.Key{tcell.KeyCtrlY},
			Description: "Scroll up one row",
			Handler: func(app *App) {
				app.state.ScrollUp(1)
			},
		},
		{
			Name:        "pgdn",
			Keys:        []tcell.Key{tcell.KeyPgDn, tcell.KeyCtrlD},
			Description: "Scroll down a page",
			Handler: func(app *App) {
				app.state.ScrollDown(app.pageSize())
			},
		},
		{
			Name:        "pgup",
			Keys:        []tcell.Key{tcell.KeyPgUp, tcell.KeyCtrlU},
			Description: "Scroll up a page",
			Handler: func(app *App) {
				app.state.ScrollUp(app.pageSize())
			},
		},
		{
			Name:        "E",
			Runes:       []rune{'E'},
			Description: "Expand all",
			Handler: func(app *App) {
				if app.state.OpenAll(app.roots) {
					app.status.SetMessage("Expanded all")
				}
			},
		},
		{
			Name:        "C",
			Runes:       []rune{'C'},
			Description: "Collapse all",
			Handler: func(app *App) {
				if app.state.CloseAll() {
					app.status.SetMessage("Collapsed all")
				}
			},
		},
		{
			Name:        "/",
			Runes:       []rune{'/'},
			Description: "Search",
			Handler: func(app *App) {
				app.startSearch()
			},
		},
		{
			Name:        ":",
			Runes:       []rune{':'},
			Description: "Command (export, theme, anchor, set, quit)",
			Handler: func(app *App) {
				app.command.Start()
			},
		},
		{
			Name:        "n",
			Runes:       []rune{'n'},
			Description: "Next match",
			Handler: func(app *App) {
				app.nextMatch(true)
			},
		},
		{
			Name:        "N",
			Runes:       []rune{'N'},
			Description: "Previous match",
			Handler: func(app *App) {
				app.nextMatch(false)
			},
		},
		{
			Name:        "?",
			Runes:       []rune{'?'},
			Description: "Toggle help",
			Handler: func(app *App) {
				app.help.Toggle()
			},
		},
		{
			Name:        "q",
			Runes:       []rune{'q'},
			Description: "Quit",
			Handler: func(app *App) {
				app.Quit()
			},
		},
		{
			Name:        "esc",
			Keys:        []tcell.Key{tcell.KeyEscape},
			Description: "Clear search marks, or quit",
			Handler: func(app *App) {
				if app.showMatches && app.search.MatchCount() > 0 {
					app.showMatches = false
					return
				}
				app.Quit()
			},
		},
	}
}
