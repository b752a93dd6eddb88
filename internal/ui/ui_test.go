package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"

	"lspretty/internal/browser"
	"lspretty/internal/tabs"
	tu "lspretty/internal/testutil"
)

func newTestModel() model {
	return model{
		tabMgr:  tabs.NewManager(),
		mdCache: make(map[string]string),
		keys:    defaultKeyMap(),
		width:   80,
		height:  24,
		blinkOn: true,
		now:     time.Now(),
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestEditorView_RendersTitle(t *testing.T) {
	m := newTestModel()
	m.tabMgr.Add("/tmp/notes.txt", "hello")
	m.focus = focusEditor

	plain := xansi.Strip(m.editorView())
	if !strings.Contains(plain, "notes.txt") {
		t.Fatalf("view-mode panel missing title:\n%s", plain)
	}
	if strings.Contains(plain, "(EDITING") {
		t.Fatalf("view mode should not show the editing badge:\n%s", plain)
	}

	m.editMode = true
	plain = xansi.Strip(m.editorView())
	if !strings.Contains(plain, "notes.txt (EDITING)") {
		t.Fatalf("edit-mode panel missing badge:\n%s", plain)
	}

	m.tabMgr.Active().Buf.InsertString("x")
	plain = xansi.Strip(m.editorView())
	if !strings.Contains(plain, "notes.txt (EDITING · UNSAVED)") {
		t.Fatalf("dirty edit-mode panel missing unsaved badge:\n%s", plain)
	}
}

func TestIconFor_RespectsPreference(t *testing.T) {
	defer tu.WithEnv(t, "NERDFONT", "")()
	defer SetNerdFont(true)

	dir := browser.Entry{Name: "src", IsDir: true}

	SetNerdFont(false)
	if got := IconFor(dir); got != "d" {
		t.Fatalf("icon with preference off = %q, want fallback", got)
	}

	SetNerdFont(true)
	if got := IconFor(dir); got == "d" {
		t.Fatal("icon with preference on should use the glyph")
	}

	// env kill switch beats the stored preference
	defer tu.WithEnv(t, "NERDFONT", "0")()
	if got := IconFor(dir); got != "d" {
		t.Fatalf("NERDFONT=0 should force fallback, got %q", got)
	}
}

func TestStatusBar_ShowsRelativeMtime(t *testing.T) {
	m := newTestModel()
	m.visible = []browser.Entry{{Name: "a.txt", ModTime: time.Now().Add(-2 * time.Minute)}}
	m.selected = 0

	plain := xansi.Strip(m.statusBarView())
	if !strings.Contains(plain, "modified") {
		t.Fatalf("status bar missing relative mtime:\n%s", plain)
	}

	// synthetic entries with no mtime stay silent
	m.visible = []browser.Entry{{Name: "..", IsDir: true}}
	plain = xansi.Strip(m.statusBarView())
	if strings.Contains(plain, "modified") {
		t.Fatalf("status bar shows mtime for zero time:\n%s", plain)
	}
}

func TestEditKey_TogglesOnlyInViewMode(t *testing.T) {
	m := newTestModel()
	m.tabMgr.Add("/tmp/a.txt", "")
	m.focus = focusEditor

	res, _ := m.handleEditorKey(runes("e"))
	got := res.(model)
	if !got.editMode {
		t.Fatal("e in view mode should enter edit mode")
	}

	res, _ = got.handleEditorKey(runes("e"))
	got = res.(model)
	if !got.editMode {
		t.Fatal("e while editing must not leave edit mode")
	}
	if content := got.tabMgr.Active().Buf.Content(); content != "e" {
		t.Fatalf("e while editing should insert, content = %q", content)
	}
}
