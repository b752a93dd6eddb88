package ui

import (
	"os"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"lspretty/internal/browser"
	"lspretty/internal/system"
	"lspretty/internal/tabs"
	"lspretty/internal/term"
)

// Options configure the initial model from CLI flags and stored prefs.
type Options struct {
	Path       string
	ShowHidden bool
	HumanSizes bool
	NerdFont   bool
}

// focusArea identifies which subsystem receives key events.
type focusArea int

const (
	focusBrowser focusArea = iota
	focusEditor
	focusTerminal
)

// Model for the TUI
type model struct {
	opts Options

	// browser state
	cwd        string
	entries    []browser.Entry
	visible    []browser.Entry // entries after filtering
	selected   int
	showHidden bool
	humanSizes bool

	// fuzzy filter
	filterInput textinput.Model
	filtering   bool

	// editor state
	tabMgr   *tabs.Manager
	editMode bool
	mdCache  map[string]string // rendered markdown, keyed by path

	// terminal state
	sess *term.Session

	// chrome
	focus     focusArea
	showHelp  bool
	notice    string
	width     int
	height    int
	keys      keyMap
	quitting  bool
	blinkOn   bool
	lastBlink time.Time
	now       time.Time

	// status bar
	git          system.GitInfo
	lastGitCheck time.Time

	watcher *fsnotify.Watcher
}

func initialModel(opts Options) model {
	cwd := opts.Path
	if cwd == "" {
		cwd, _ = os.Getwd()
	}

	SetNerdFont(opts.NerdFont)

	fi := textinput.New()
	fi.Prompt = "/ "
	fi.Placeholder = "filter"
	fi.CharLimit = 128

	m := model{
		opts:        opts,
		cwd:         cwd,
		showHidden:  opts.ShowHidden,
		humanSizes:  opts.HumanSizes,
		filterInput: fi,
		tabMgr:      tabs.NewManager(),
		mdCache:     make(map[string]string),
		keys:        defaultKeyMap(),
		blinkOn:     true,
		now:         time.Now(),
	}
	// Best-effort: the browser works without a watcher, the listing just
	// stops auto-refreshing.
	if w, err := browser.Watch(cwd); err == nil {
		m.watcher = w
	} else {
		system.Logger.Warn("directory watch unavailable", "dir", cwd, "err", err)
	}
	return m
}

// InitialModel is the public constructor used by app.
func InitialModel(opts Options) tea.Model { return initialModel(opts) }

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		loadDirCmd(m.cwd, m.showHidden),
		gitInfoCmd(m.cwd),
		tickCmd(),
	}
	if m.watcher != nil {
		cmds = append(cmds, waitFsEventCmd(m.watcher))
	}
	return tea.Batch(cmds...)
}

// applyFilter recomputes the visible entry slice from the filter input.
func (m *model) applyFilter() {
	query := m.filterInput.Value()
	if !m.filtering && query == "" {
		m.visible = m.entries
	} else {
		m.visible = browser.Filter(m.entries, query)
	}
	if m.selected >= len(m.visible) {
		m.selected = len(m.visible) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// changeDir swaps the browsed directory, re-rooting the watcher.
func (m *model) changeDir(dir string) tea.Cmd {
	m.cwd = dir
	m.selected = 0
	m.filtering = false
	m.filterInput.SetValue("")
	if m.watcher != nil {
		_ = m.watcher.Close()
		m.watcher = nil
	}
	cmds := []tea.Cmd{loadDirCmd(dir, m.showHidden), gitInfoCmd(dir)}
	if w, err := browser.Watch(dir); err == nil {
		m.watcher = w
		cmds = append(cmds, waitFsEventCmd(w))
	}
	return tea.Batch(cmds...)
}

// editorHeight is the number of buffer lines visible in the editor pane,
// derived from the current layout.
func (m model) editorHeight() int {
	h := m.height - 8 // header, tab bar, editor title+frame, status
	if m.sess != nil {
		h -= term.Rows + 3
	}
	if h < 5 {
		h = 5
	}
	return h
}

// listHeight is the number of file rows visible in the browser pane.
func (m model) listHeight() int {
	h := m.height - 6
	if m.sess != nil {
		h -= term.Rows + 3
	}
	if h < 3 {
		h = 3
	}
	return h
}
