package app

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/tui-tree/internal/config"
	"github.com/pstuifzand/tui-tree/internal/model"
	"github.com/pstuifzand/tui-tree/internal/search"
	"github.com/pstuifzand/tui-tree/internal/storage"
	"github.com/pstuifzand/tui-tree/internal/theme"
	"github.com/pstuifzand/tui-tree/internal/tree"
	"github.com/pstuifzand/tui-tree/internal/ui"
)

// Options are the command line overrides of the config file.
type Options struct {
	Theme     string
	Anchor    string
	ExpandAll bool
	Debug     bool
}

// App is the main application controller
type App struct {
	screen   *ui.Screen
	filePath string
	cfg      *config.Config

	roots  []*tree.Node[string]
	widget *tree.Tree[string]
	state  *tree.State[string]

	index       *search.Index
	search      *ui.Search
	showMatches bool

	command *ui.CommandMode
	splash  *ui.SplashScreen
	help    *ui.HelpScreen
	status  *ui.StatusLine
	keys    []KeyBinding

	// treeHeight is the number of rows the tree got in the last render
	treeHeight int
	quit       bool
	debugMode  bool
}

// NewApp loads the outline at filePath and opens the terminal.
func NewApp(filePath string, opts Options) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Config not loaded, using defaults: %v", err)
		cfg = config.Default()
	}
	if opts.Theme != "" {
		cfg.Theme = opts.Theme
	}

	outline, err := storage.LoadOutline(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load outline: %w", err)
	}

	screen, err := ui.NewScreen(theme.LoadThemeOrDefault(cfg.Theme))
	if err != nil {
		return nil, err
	}

	a, err := newApp(screen, outline, filePath, cfg, opts)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return a, nil
}

func newApp(screen *ui.Screen, outline *model.Outline, filePath string, cfg *config.Config, opts Options) (*App, error) {
	roots, err := outline.BuildTree()
	if err != nil {
		return nil, fmt.Errorf("invalid outline: %w", err)
	}

	anchorName := cfg.Tree.Anchor
	if opts.Anchor != "" {
		anchorName = opts.Anchor
	}
	anchor, ok := tree.ParseAnchor(anchorName)
	if !ok {
		return nil, fmt.Errorf("unknown anchor %q", anchorName)
	}

	widget, err := tree.NewTree(roots)
	if err != nil {
		return nil, fmt.Errorf("invalid outline: %w", err)
	}
	widget.SetAnchor(anchor).SetHighlightSymbol(cfg.Tree.HighlightSymbol)
	if cfg.Tree.OpenSymbol != "" {
		widget.SetOpenSymbol(cfg.Tree.OpenSymbol)
	}
	if cfg.Tree.ClosedSymbol != "" {
		widget.SetClosedSymbol(cfg.Tree.ClosedSymbol)
	}
	if cfg.Tree.LeafSymbol != "" {
		widget.SetLeafSymbol(cfg.Tree.LeafSymbol)
	}

	index := search.NewIndex(roots)
	a := &App{
		screen:    screen,
		filePath:  filePath,
		cfg:       cfg,
		roots:     roots,
		widget:    widget,
		state:     tree.NewState[string](),
		index:     index,
		search:    ui.NewSearch(index),
		command:   ui.NewCommandMode(),
		splash:    ui.NewSplashScreen(filepath.Base(filePath)),
		help:      ui.NewHelpScreen(),
		status:    ui.NewStatusLine(0),
		debugMode: opts.Debug,
	}
	a.applyTheme(screen.Theme)

	a.keys = a.InitializeKeybindings()
	infos := make([]ui.KeyBindingInfo, len(a.keys))
	for i := range a.keys {
		infos[i] = &a.keys[i]
	}
	a.help.SetKeybindings(infos)
	a.status.SetHint("? help  q quit")

	if len(roots) == 0 {
		a.splash.Show()
	}
	if opts.ExpandAll {
		a.state.OpenAll(roots)
	}
	a.state.SelectFirst(roots)

	log.Printf("Loaded %s: %d nodes, anchor %s, theme %s", filePath, index.Len(), anchor, cfg.Theme)
	return a, nil
}

// Run starts the main event loop
func (a *App) Run() error {
	defer a.Close()

	eventChan := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)

	go a.pollEvents(eventChan, done)

	ticker := time.NewTicker(50 * time.Millisecond) // ~20 FPS
	defer ticker.Stop()

	a.render()
	for !a.quit {
		select {
		case ev := <-eventChan:
			if ev == nil {
				return nil
			}
			a.handleRawEvent(ev)
		case <-ticker.C:
			a.render()
		}
	}
	return nil
}

// pollEvents forwards screen events to events until the screen is finalized
// or done is closed.
func (a *App) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		event := a.screen.PollEvent()
		select {
		case events <- event:
		case <-done:
			return
		}
		if event == nil {
			return
		}
	}
}

// Close restores the terminal.
func (a *App) Close() {
	a.screen.Close()
}

// Quit signals the app to quit
func (a *App) Quit() {
	a.quit = true
}

// SetDebugMode enables or disables debug mode
func (a *App) SetDebugMode(debug bool) {
	a.debugMode = debug
}

// applyTheme restyles the screen and the tree widget.
func (a *App) applyTheme(th *theme.Theme) {
	a.screen.SetTheme(th)
	a.widget.SetStyle(th.TreeStyle()).
		SetHighlightStyle(th.HighlightStyle()).
		SetMarked(a.isMarked, th.SearchMatchStyle())
}

func (a *App) isMarked(path tree.Path[string]) bool {
	return a.showMatches && a.search.IsMatch(path)
}

// layout splits the screen into header, tree box and bottom line.
func (a *App) layout() (header, box, bottom tree.Rect) {
	bounds := a.screen.Bounds()
	header = tree.Rect{X: bounds.X, Y: bounds.Y, Width: bounds.Width, Height: min(1, bounds.Height)}
	bottom = tree.Rect{X: bounds.X, Y: bounds.Bottom() - 1, Width: bounds.Width, Height: 1}
	box = tree.Rect{X: bounds.X, Y: bounds.Y + 1, Width: bounds.Width, Height: max(bounds.Height-2, 0)}
	return header, box, bottom
}

func (a *App) render() {
	a.screen.Clear()
	header, box, bottom := a.layout()
	th := a.screen.Theme

	a.screen.Fill(header, th.HeaderStyle())
	a.screen.DrawStringLimited(header.X+1, header.Y, "tui-tree", header.Width-1, th.HeaderStyle().Bold(true))
	info := fmt.Sprintf("%d nodes ", a.index.Len())
	if a.debugMode {
		info = fmt.Sprintf("offset %d  selected %s  ", a.state.Offset(), a.state.Selected()) + info
	}
	if w := ui.StringWidth(info); w+10 <= header.Width {
		a.screen.DrawString(header.Right()-w, header.Y, info, th.HeaderStyle())
	}

	inner := a.screen.DrawBox(box, filepath.Base(a.filePath))
	a.treeHeight = inner.Height
	a.widget.Render(a.screen, inner, a.state)
	a.splash.Render(a.screen, inner)

	switch {
	case a.command.IsActive():
		a.command.Render(a.screen, bottom)
	case a.search.IsActive():
		a.search.Render(a.screen, bottom)
	default:
		a.status.Render(a.screen, bottom)
	}

	a.help.Render(a.screen, box)
	a.screen.Show()
}

// handleRawEvent processes raw input events
func (a *App) handleRawEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		log.Printf("Resize to %dx%d", w, h)
		a.screen.Sync()
	case *tcell.EventKey:
		a.handleKey(ev)
	}
}

func (a *App) handleKey(ev *tcell.EventKey) {
	if a.command.IsActive() {
		if cmd, done := a.command.HandleKey(ev); done {
			a.handleCommand(cmd)
		}
		return
	}

	if a.search.IsActive() {
		a.handleSearchKey(ev)
		return
	}

	if a.help.IsVisible() {
		if ev.Key() == tcell.KeyEscape || ev.Rune() == '?' || ev.Rune() == 'q' {
			a.help.Hide()
		}
		return
	}

	if a.debugMode {
		a.status.SetMessage(fmt.Sprintf("Key: %v | Rune: %q | Modifiers: %v", ev.Key(), ev.Rune(), ev.Modifiers()))
	}

	for i := range a.keys {
		if a.keys[i].Matches(ev) {
			a.keys[i].Handler(a)
			return
		}
	}
}

func (a *App) handleSearchKey(ev *tcell.EventKey) {
	switch a.search.HandleKey(ev) {
	case ui.SearchCancelled:
		a.showMatches = false
	case ui.SearchSubmitted:
		query := a.search.GetQuery()
		if msg := a.search.ParseError(); msg != "" {
			log.Printf("Search %q failed: %s", query, msg)
			a.status.SetError("Invalid search: " + msg)
			a.showMatches = false
			return
		}
		log.Printf("Search %q: %d matches", query, a.search.MatchCount())
		if a.search.MatchCount() == 0 {
			if query != "" {
				a.status.SetError(fmt.Sprintf("No matches for %q", query))
			}
			a.showMatches = false
			return
		}
		a.search.SeekFrom(a.state.Selected())
		a.jumpToMatch()
	}
}

// jumpToMatch opens the branches above the current search match and selects
// it.
func (a *App) jumpToMatch() bool {
	entry, ok := a.search.Current()
	if !ok {
		return false
	}
	a.state.OpenAncestors(entry.Path)
	a.state.Select(entry.Path)
	n, total := a.search.Position()
	a.status.SetMessage(fmt.Sprintf("Match %d of %d", n, total))
	return true
}

func (a *App) startSearch() {
	a.search.Start()
	a.showMatches = true
}

func (a *App) nextMatch(forward bool) {
	if a.search.MatchCount() == 0 {
		a.status.SetError("No active search")
		return
	}
	if forward {
		a.search.NextMatch()
	} else {
		a.search.PrevMatch()
	}
	a.showMatches = true
	a.jumpToMatch()
}

// pageSize is the number of rows moved by page up and down.
func (a *App) pageSize() int {
	if a.cfg.Tree.ScrollStep > 0 {
		return a.cfg.Tree.ScrollStep
	}
	return max(a.treeHeight-1, 1)
}
