package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"lspretty/internal/browser"
	"lspretty/internal/buffer"
	"lspretty/internal/system"
	"lspretty/internal/tabs"
	"lspretty/internal/term"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for _, t := range m.tabMgr.Tabs() {
			t.Buf.SetVisibleHeight(m.editorHeight())
		}
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		if m.now.Sub(m.lastBlink) >= 500*time.Millisecond {
			m.blinkOn = !m.blinkOn
			m.lastBlink = m.now
		}
		cmds := []tea.Cmd{tickCmd()}
		if m.now.Sub(m.lastGitCheck) >= 5*time.Second {
			m.lastGitCheck = m.now
			cmds = append(cmds, gitInfoCmd(m.cwd))
		}
		return m, tea.Batch(cmds...)

	case dirLoadedMsg:
		if msg.err != nil {
			m.notice = "read dir: " + msg.err.Error()
			return m, nil
		}
		if msg.dir != m.cwd {
			return m, nil // stale load from a previous directory
		}
		m.entries = msg.entries
		m.applyFilter()
		return m, nil

	case fileOpenedMsg:
		if msg.err != nil {
			m.notice = "open: " + msg.err.Error()
			return m, nil
		}
		idx := m.tabMgr.Add(msg.path, msg.content)
		if t, err := m.tabMgr.Tab(idx); err == nil {
			t.Buf.SetVisibleHeight(m.editorHeight())
		}
		m.focus = focusEditor
		m.editMode = false
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.notice = "save failed: " + msg.err.Error()
			system.Logger.Error("save failed", "err", msg.err)
		} else if msg.n > 0 {
			m.notice = fmt.Sprintf("saved %d file(s)", msg.n)
		}
		return m, nil

	case gitInfoMsg:
		m.git = msg.info
		return m, nil

	case termChunkMsg:
		// Output is pulled from the session snapshot at render time; this
		// message only forces the frame and re-arms the wait.
		if m.sess != nil {
			return m, waitOutputCmd(m.sess)
		}
		return m, nil

	case fsEventMsg:
		if !msg.ok || m.watcher == nil {
			return m, nil
		}
		return m, tea.Batch(loadDirCmd(m.cwd, m.showHidden), waitFsEventCmd(m.watcher))

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Unsaved-changes alert has the highest priority; it swallows
	// everything except its three answers.
	if _, pending := m.tabMgr.Pending(); pending {
		return m.handleAlertKey(msg)
	}

	if msg.String() == "ctrl+c" {
		if m.focus == focusTerminal && m.sess != nil {
			m.sess.Interrupt()
			return m, nil
		}
		return m.quit()
	}

	if m.showHelp {
		switch msg.String() {
		case "h", "q", "esc":
			m.showHelp = false
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Terminal) {
		return m.toggleTerminal()
	}

	switch m.focus {
	case focusTerminal:
		return m.handleTerminalKey(msg)
	case focusEditor:
		return m.handleEditorKey(msg)
	default:
		return m.handleBrowserKey(msg)
	}
}

func (m model) handleAlertKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s": // save and close
		idx, _ := m.tabMgr.Pending()
		if t, err := m.tabMgr.Tab(idx); err == nil {
			t.Buf.CommitSave()
			saved := tabs.SavedFile{Path: t.Path, Content: t.Buf.Content()}
			m.tabMgr.ConfirmClose()
			m.afterTabClose()
			return m, saveFilesCmd([]tabs.SavedFile{saved})
		}
		m.tabMgr.CancelClose()
	case "d", "y": // discard changes and close
		m.tabMgr.ConfirmClose()
		m.afterTabClose()
	case "c", "n", "esc": // keep editing
		m.tabMgr.CancelClose()
	}
	return m, nil
}

// afterTabClose returns focus to the browser when the last tab went away.
func (m *model) afterTabClose() {
	if !m.tabMgr.HasTabs() {
		m.focus = focusBrowser
		m.editMode = false
	}
}

func (m model) handleBrowserKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Filter input captures typing while active.
	if m.filtering {
		switch msg.Type {
		case tea.KeyEsc:
			m.filtering = false
			m.filterInput.Blur()
			m.filterInput.SetValue("")
			m.applyFilter()
			return m, nil
		case tea.KeyEnter:
			m.filtering = false
			m.filterInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		m.applyFilter()
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.visible)-1 {
			m.selected++
		}
		return m, nil
	case key.Matches(msg, m.keys.Open):
		return m.openSelected()
	case key.Matches(msg, m.keys.Hidden):
		m.showHidden = !m.showHidden
		return m, loadDirCmd(m.cwd, m.showHidden)
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.filterInput.Focus()
		m.applyFilter()
		return m, nil
	case key.Matches(msg, m.keys.SaveAll):
		if files := m.tabMgr.SaveAll(); len(files) > 0 {
			return m, saveFilesCmd(files)
		}
		return m, nil
	case key.Matches(msg, m.keys.NextTab):
		if m.tabMgr.HasTabs() {
			m.focus = focusEditor
		}
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		if msg.String() == "esc" && m.filterInput.Value() != "" {
			m.filterInput.SetValue("")
			m.applyFilter()
			return m, nil
		}
		return m.quit()
	}
	return m, nil
}

func (m model) openSelected() (tea.Model, tea.Cmd) {
	if m.selected < 0 || m.selected >= len(m.visible) {
		return m, nil
	}
	e := m.visible[m.selected]
	if e.IsDir {
		return m, m.changeDir(e.Path)
	}
	if !browser.IsTextFile(e) {
		m.notice = e.Name + " is not a text file"
		return m, nil
	}
	// Re-opening an already open file just refocuses its tab.
	if _, ok := m.tabMgr.FindByPath(e.Path); ok {
		m.tabMgr.Add(e.Path, "")
		m.focus = focusEditor
		return m, nil
	}
	return m, openFileCmd(e.Path)
}

func (m model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := m.tabMgr.Active()
	if t == nil {
		m.focus = focusBrowser
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextTab):
		m.tabMgr.Next()
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.tabMgr.Previous()
		return m, nil
	case key.Matches(msg, m.keys.Save):
		saved, err := m.tabMgr.SaveActive()
		if err != nil {
			m.notice = err.Error()
			return m, nil
		}
		delete(m.mdCache, saved.Path)
		return m, saveFilesCmd([]tabs.SavedFile{saved})
	case key.Matches(msg, m.keys.CloseTab):
		if err := m.tabMgr.CloseActive(); err == nil {
			m.afterTabClose()
		}
		// ErrUnsavedChanges parks the close; the alert overlay takes over.
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if m.editMode {
			m.editMode = false
		} else {
			m.focus = focusBrowser
		}
		return m, nil
	}

	if m.editMode {
		return m.handleEditKey(msg, t)
	}

	// View mode: arrows scroll, e enters edit mode. The binding is only
	// consulted here so "e" stays typable while editing.
	if key.Matches(msg, m.keys.Edit) {
		m.editMode = true
		return m, nil
	}
	switch msg.Type {
	case tea.KeyUp:
		t.Buf.ScrollUp()
	case tea.KeyDown:
		t.Buf.ScrollDown()
	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "k":
			t.Buf.ScrollUp()
		case "j":
			t.Buf.ScrollDown()
		case "q":
			m.focus = focusBrowser
		}
	}
	return m, nil
}

func (m model) handleEditKey(msg tea.KeyMsg, t *tabs.Tab) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		t.Buf.MoveCursor(buffer.Up)
	case tea.KeyDown:
		t.Buf.MoveCursor(buffer.Down)
	case tea.KeyLeft:
		t.Buf.MoveCursor(buffer.Left)
	case tea.KeyRight:
		t.Buf.MoveCursor(buffer.Right)
	case tea.KeyEnter:
		t.Buf.InsertRune('\n')
	case tea.KeyBackspace:
		t.Buf.DeleteBeforeCursor()
	case tea.KeySpace:
		t.Buf.InsertRune(' ')
	case tea.KeyRunes:
		t.Buf.InsertString(string(msg.Runes))
	}
	return m, nil
}

func (m model) handleTerminalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.sess == nil {
		m.focus = focusBrowser
		return m, nil
	}
	switch msg.Type {
	case tea.KeyEnter:
		m.sess.SubmitLine()
	case tea.KeyBackspace:
		m.sess.Backspace()
	case tea.KeySpace:
		m.sess.Type(" ")
	case tea.KeyTab:
		m.sess.ForwardInput("\t")
	case tea.KeyEsc:
		return m.toggleTerminal()
	case tea.KeyRunes:
		m.sess.Type(string(msg.Runes))
	}
	return m, nil
}

func (m model) toggleTerminal() (tea.Model, tea.Cmd) {
	if m.sess != nil {
		m.sess.Close()
		m.sess = nil
		if m.focus == focusTerminal {
			m.focus = focusBrowser
		}
		return m, nil
	}
	sess, err := term.Open(m.cwd)
	m.sess = sess
	m.focus = focusTerminal
	if err != nil {
		// Degraded echo-only mode; the session still shows typed input.
		m.notice = "terminal: " + err.Error()
		system.Logger.Warn("pty unavailable, echo mode", "err", err)
		return m, nil
	}
	return m, waitOutputCmd(sess)
}

func (m model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.sess != nil {
		m.sess.Close()
	}
	if m.watcher != nil {
		_ = m.watcher.Close()
	}
	return m, tea.Quit
}
