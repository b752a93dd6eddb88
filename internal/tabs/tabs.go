// Package tabs manages the set of open editor documents: an ordered tab
// list with a single active tab, path-deduplicated opens, and a
// confirmation gate for closing tabs with unsaved changes.
package tabs

import (
	"errors"
	"fmt"
	"path/filepath"

	"lspretty/internal/buffer"
)

var (
	// ErrOutOfRange is returned for tab indices outside the open set.
	ErrOutOfRange = errors.New("tab index out of range")
	// ErrNoActiveTab is returned by operations that need an active tab
	// when no tabs are open.
	ErrNoActiveTab = errors.New("no active tab")
	// ErrUnsavedChanges is returned by Close when the target tab is dirty
	// and the close has been parked pending confirmation.
	ErrUnsavedChanges = errors.New("tab has unsaved changes")
)

// Tab binds one open file to its editable buffer. The id is unique for the
// lifetime of the manager; the path is the identity used to deduplicate
// opens.
type Tab struct {
	ID   int
	Name string
	Path string
	Buf  *buffer.Buffer
}

// Dirty reports whether the tab's buffer has unsaved edits.
func (t *Tab) Dirty() bool { return t.Buf.Dirty() }

// DisplayName returns the tab title, with a trailing "*" when dirty.
func (t *Tab) DisplayName() string {
	if t.Dirty() {
		return t.Name + "*"
	}
	return t.Name
}

// SavedFile is one (path, content) pair produced by a save operation.
// The manager commits the buffer; the caller performs the actual write.
type SavedFile struct {
	Path    string
	Content string
}

// Manager owns the ordered tab list and the close-confirmation state.
// It is single-goroutine state, owned by the UI loop.
type Manager struct {
	tabs    []*Tab
	active  int
	nextID  int
	pending int // index awaiting close confirmation, -1 when none
}

// NewManager returns an empty tab manager.
func NewManager() *Manager {
	return &Manager{nextID: 1, pending: -1}
}

// Add opens path with the given content and focuses it. If a tab for the
// same path already exists, it is focused instead and no new buffer is
// created. Returns the index of the focused tab.
func (m *Manager) Add(path, content string) int {
	if i, ok := m.FindByPath(path); ok {
		m.active = i
		return i
	}
	t := &Tab{
		ID:   m.nextID,
		Name: filepath.Base(path),
		Path: path,
		Buf:  buffer.New(content),
	}
	m.nextID++
	m.tabs = append(m.tabs, t)
	m.active = len(m.tabs) - 1
	return m.active
}

// Close removes the tab at index if it is clean. A dirty tab is left in
// place, the index is parked as pending, and ErrUnsavedChanges is
// returned; the caller is expected to prompt and then call ConfirmClose or
// CancelClose.
func (m *Manager) Close(index int) error {
	if index < 0 || index >= len(m.tabs) {
		return fmt.Errorf("close tab %d: %w", index, ErrOutOfRange)
	}
	if m.tabs[index].Dirty() {
		m.pending = index
		return ErrUnsavedChanges
	}
	m.remove(index)
	return nil
}

// ForceClose removes the tab at index regardless of its dirty state.
func (m *Manager) ForceClose(index int) error {
	if index < 0 || index >= len(m.tabs) {
		return fmt.Errorf("close tab %d: %w", index, ErrOutOfRange)
	}
	m.remove(index)
	return nil
}

// CloseActive requests closing the active tab.
func (m *Manager) CloseActive() error {
	if len(m.tabs) == 0 {
		return ErrNoActiveTab
	}
	return m.Close(m.active)
}

// Pending returns the index parked by a gated close and whether one exists.
func (m *Manager) Pending() (int, bool) {
	if m.pending < 0 {
		return 0, false
	}
	return m.pending, true
}

// ConfirmClose completes a parked close, discarding unsaved changes.
// No-op when no close is pending.
func (m *Manager) ConfirmClose() {
	if m.pending >= 0 && m.pending < len(m.tabs) {
		m.remove(m.pending)
	}
	m.pending = -1
}

// CancelClose abandons a parked close with no structural change.
func (m *Manager) CancelClose() { m.pending = -1 }

// remove deletes tabs[index] and repairs the active index so the
// previously focused tab stays focused when a tab before or at it goes
// away, and the index never runs past the end.
func (m *Manager) remove(index int) {
	m.tabs = append(m.tabs[:index], m.tabs[index+1:]...)
	switch {
	case len(m.tabs) == 0:
		m.active = 0
	case m.active >= len(m.tabs):
		m.active = len(m.tabs) - 1
	case index <= m.active && m.active > 0:
		m.active--
	}
}

// SwitchTo focuses the tab at index.
func (m *Manager) SwitchTo(index int) error {
	if index < 0 || index >= len(m.tabs) {
		return fmt.Errorf("switch to tab %d: %w", index, ErrOutOfRange)
	}
	m.active = index
	return nil
}

// Next rotates focus to the following tab, wrapping at the end.
func (m *Manager) Next() {
	if len(m.tabs) > 0 {
		m.active = (m.active + 1) % len(m.tabs)
	}
}

// Previous rotates focus to the preceding tab, wrapping at the start.
func (m *Manager) Previous() {
	if len(m.tabs) > 0 {
		m.active = (m.active + len(m.tabs) - 1) % len(m.tabs)
	}
}

// Active returns the focused tab, or nil when no tabs are open.
func (m *Manager) Active() *Tab {
	if len(m.tabs) == 0 {
		return nil
	}
	return m.tabs[m.active]
}

// ActiveIndex returns the focused tab index. Meaningless when empty.
func (m *Manager) ActiveIndex() int { return m.active }

// Tab returns the tab at index.
func (m *Manager) Tab(index int) (*Tab, error) {
	if index < 0 || index >= len(m.tabs) {
		return nil, fmt.Errorf("tab %d: %w", index, ErrOutOfRange)
	}
	return m.tabs[index], nil
}

// Tabs returns the tab list in display order. The slice is shared; callers
// must not mutate it.
func (m *Manager) Tabs() []*Tab { return m.tabs }

// HasTabs reports whether any tabs are open.
func (m *Manager) HasTabs() bool { return len(m.tabs) > 0 }

// Count returns the number of open tabs.
func (m *Manager) Count() int { return len(m.tabs) }

// FindByPath returns the index of the tab open for path, if any.
func (m *Manager) FindByPath(path string) (int, bool) {
	for i, t := range m.tabs {
		if t.Path == path {
			return i, true
		}
	}
	return 0, false
}

// HasUnsavedChanges reports whether any open tab is dirty.
func (m *Manager) HasUnsavedChanges() bool {
	for _, t := range m.tabs {
		if t.Dirty() {
			return true
		}
	}
	return false
}

// SaveActive commits the active tab's buffer and returns the pair the
// caller must persist. The in-memory state is committed first; a failed
// write leaves the content intact for retry.
func (m *Manager) SaveActive() (SavedFile, error) {
	t := m.Active()
	if t == nil {
		return SavedFile{}, ErrNoActiveTab
	}
	t.Buf.CommitSave()
	return SavedFile{Path: t.Path, Content: t.Buf.Content()}, nil
}

// SaveAll commits every dirty tab and returns the pairs to persist.
// Clean tabs are skipped. Performs no I/O itself.
func (m *Manager) SaveAll() []SavedFile {
	var out []SavedFile
	for _, t := range m.tabs {
		if t.Dirty() {
			t.Buf.CommitSave()
			out = append(out, SavedFile{Path: t.Path, Content: t.Buf.Content()})
		}
	}
	return out
}

// Info returns a short human summary for the status bar.
func (m *Manager) Info() string {
	if len(m.tabs) == 0 {
		return "no tabs open"
	}
	unsaved := 0
	for _, t := range m.tabs {
		if t.Dirty() {
			unsaved++
		}
	}
	if unsaved > 0 {
		return fmt.Sprintf("%d tabs (%d unsaved)", len(m.tabs), unsaved)
	}
	return fmt.Sprintf("%d tabs", len(m.tabs))
}
