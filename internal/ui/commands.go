package ui

import (
	"context"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"lspretty/internal/browser"
	"lspretty/internal/system"
	"lspretty/internal/tabs"
	"lspretty/internal/term"
)

// pollInterval drives the cooperative UI loop: clock, cursor blink, and
// the fallback terminal snapshot refresh.
const pollInterval = 100 * time.Millisecond

func tickCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func loadDirCmd(dir string, showHidden bool) tea.Cmd {
	return func() tea.Msg {
		entries, err := browser.Load(dir, showHidden)
		return dirLoadedMsg{dir: dir, entries: entries, err: err}
	}
}

func openFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		b, err := os.ReadFile(path)
		if err != nil {
			return fileOpenedMsg{path: path, err: err}
		}
		// Invalid byte sequences are replaced, never fatal.
		return fileOpenedMsg{path: path, content: strings.ToValidUTF8(string(b), "�")}
	}
}

// saveFilesCmd persists committed buffers. The tab manager has already
// committed in memory; a failed write is surfaced without losing content.
func saveFilesCmd(files []tabs.SavedFile) tea.Cmd {
	return func() tea.Msg {
		for i, f := range files {
			if err := os.WriteFile(f.Path, []byte(f.Content), 0o644); err != nil {
				return savedMsg{n: i, err: err}
			}
		}
		return savedMsg{n: len(files)}
	}
}

func gitInfoCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		info, _ := system.GetGitInfo(context.Background(), dir)
		return gitInfoMsg{info: info}
	}
}

// waitOutputCmd blocks on the session's chunk channel and is re-issued on
// every chunk, so output appears without waiting for the next tick.
func waitOutputCmd(s *term.Session) tea.Cmd {
	return func() tea.Msg {
		<-s.Chunks()
		return termChunkMsg{}
	}
}

// waitFsEventCmd blocks on the directory watcher. Returns ok=false once
// the watcher is closed, which stops the re-issue loop.
func waitFsEventCmd(w *fsnotify.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case _, ok := <-w.Events:
			return fsEventMsg{ok: ok}
		case _, ok := <-w.Errors:
			return fsEventMsg{ok: ok}
		}
	}
}
