package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"gridctl/internal/clip"
	"gridctl/internal/config"
	"gridctl/internal/grid"
	"gridctl/internal/table"
)

// model is the grid editor TUI.
type model struct {
	eng  *grid.Engine
	view *table.View
	win  *window
	path string

	storeCh  chan struct{}
	notifier *notices

	editor textinput.Model
	search textinput.Model

	keys keyMap
	help help.Model

	width  int
	height int

	notice     string
	noticeWarn bool
	noticeSeq  int

	showHelp bool
	helpVP   viewport.Model
	helpText string

	watcher *fsnotify.Watcher
	watchCh chan struct{}

	// drag state for mouse range selection
	dragging bool

	quitting bool
}

// keyMap drives the short/full help surfaces. The engine owns the actual
// dispatch; this is documentation only.
type keyMap struct {
	Navigate key.Binding
	Edit     key.Binding
	Select   key.Binding
	Copy     key.Binding
	Paste    key.Binding
	Cut      key.Binding
	Search   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Navigate: key.NewBinding(
			key.WithKeys("up", "down", "left", "right"),
			key.WithHelp("↑↓←→", "move")),
		Edit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit cell")),
		Select: key.NewBinding(
			key.WithKeys("shift+up", "shift+down", "shift+left", "shift+right"),
			key.WithHelp("shift+↑↓←→", "select")),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "copy")),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "paste")),
		Cut: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "cut")),
		Search: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "search")),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help")),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q"),
			key.WithHelp("ctrl+q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Navigate, k.Edit, k.Search, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Navigate, k.Edit, k.Select},
		{k.Copy, k.Cut, k.Paste},
		{k.Search, k.Help, k.Quit},
	}
}

// newModel wires the engine over a loaded document.
func newModel(path string, doc *table.Document, settings config.Settings) model {
	view := table.NewView(doc)
	var save func(*table.Document) error
	if path != "" && !settings.ReadOnly {
		p := path
		save = func(d *table.Document) error { return table.Save(p, d) }
	}
	mut := table.NewMutator(view, save)
	win := &window{rowSpan: 1, colSpan: 1}
	win.setExtent(view.RowCount(), len(view.Columns()))
	notifier := newNotices()

	eng := grid.New(grid.Config{
		Rows:        view,
		Virtualizer: win,
		Mutator:     mut,
		Clipboard:   clip.System{},
		Notifier:    notifier,
		Options: grid.Options{
			RightToLeft:   settings.RightToLeft,
			ReadOnly:      settings.ReadOnly,
			SearchEnabled: settings.SearchEnabled,
			RowHeight:     settings.RowHeight,
		},
	})

	storeCh := make(chan struct{}, 1)
	eng.Store().Subscribe(func() {
		select {
		case storeCh <- struct{}{}:
		default:
		}
	})

	editor := textinput.New()
	editor.Prompt = ""
	editor.CharLimit = 4096

	search := textinput.New()
	search.Prompt = " / "
	search.Placeholder = "search"
	search.CharLimit = 256

	return model{
		eng:      eng,
		view:     view,
		win:      win,
		path:     path,
		storeCh:  storeCh,
		notifier: notifier,
		editor:   editor,
		search:   search,
		keys:     newKeyMap(),
		help:     help.New(),
	}
}

// InitialModel builds the editor model for app.Start.
func InitialModel(path string, doc *table.Document, settings config.Settings) tea.Model {
	return newModel(path, doc, settings)
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		storeSubscribeCmd(m.storeCh),
		noticeSubscribeCmd(m.notifier.ch),
		startWatchCmd(m.path),
	)
}

// syncExtent pushes the current table shape into the scroll window.
func (m *model) syncExtent() {
	m.win.setExtent(m.view.RowCount(), len(m.view.Columns()))
}
