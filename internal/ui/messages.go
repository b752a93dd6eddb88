package ui

import (
	"time"

	"lspretty/internal/browser"
	"lspretty/internal/system"
)

// Bubble Tea messages

// periodic tick driving the clock and cursor blink
type tickMsg time.Time

// directory listing finished loading
type dirLoadedMsg struct {
	dir     string
	entries []browser.Entry
	err     error
}

// file read finished for an editor open
type fileOpenedMsg struct {
	path    string
	content string
	err     error
}

// save batch finished
type savedMsg struct {
	n   int
	err error
}

// git info updates for the status bar
type gitInfoMsg struct{ info system.GitInfo }

// one chunk of terminal output arrived (wake-up; content is pulled via
// Snapshot at render time)
type termChunkMsg struct{}

// the watched directory changed on disk
type fsEventMsg struct{ ok bool }
