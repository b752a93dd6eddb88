// Package buffer implements the editable text buffer backing a single
// open file: a flat rune sequence kept in lock-step with a (line, column)
// cursor and a scroll window.
package buffer

import (
	"strings"
	"unicode"
)

// Direction of a cursor movement.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// DefaultVisibleHeight is the editor viewport height used when the caller
// does not set one explicitly.
const DefaultVisibleHeight = 30

// Buffer holds one file's mutable text plus cursor and scroll state.
//
// Cursor state is redundant on purpose (offset and line/col are both kept);
// the only two writers are the offset-from-line/col recompute after vertical
// moves and the incremental updates after horizontal moves and edits. Keeping
// both avoids rescanning the document on every keystroke.
type Buffer struct {
	content  []rune
	original string

	offset int // absolute rune index, 0 <= offset <= len(content)
	line   int
	col    int

	scroll int // first visible line
	height int
}

// New creates a buffer over content with cursor and scroll at the start.
// The loaded content doubles as the clean snapshot for dirty tracking.
func New(content string) *Buffer {
	return &Buffer{
		content:  []rune(content),
		original: content,
		height:   DefaultVisibleHeight,
	}
}

// SetVisibleHeight adjusts the viewport height used for autoscroll.
// Values below 1 are clamped.
func (b *Buffer) SetVisibleHeight(h int) {
	if h < 1 {
		h = 1
	}
	b.height = h
	b.autoscroll()
}

// Content returns the current document text.
func (b *Buffer) Content() string { return string(b.content) }

// Lines splits the document into lines. An empty document yields a single
// empty line, and a trailing newline yields a trailing empty line, so the
// cursor line is always a valid index.
func (b *Buffer) Lines() []string { return strings.Split(string(b.content), "\n") }

// LineCount reports the number of lines per the Lines convention.
func (b *Buffer) LineCount() int { return strings.Count(string(b.content), "\n") + 1 }

// Cursor returns the current (line, column) position.
func (b *Buffer) Cursor() (line, col int) { return b.line, b.col }

// Offset returns the absolute rune index of the cursor.
func (b *Buffer) Offset() int { return b.offset }

// Scroll returns the first visible line index.
func (b *Buffer) Scroll() int { return b.scroll }

// VisibleHeight returns the viewport height used for autoscroll.
func (b *Buffer) VisibleHeight() int { return b.height }

// Dirty reports whether the content differs from the clean snapshot.
func (b *Buffer) Dirty() bool { return string(b.content) != b.original }

// InsertRune inserts r at the cursor. A newline splits the current line;
// control characters other than newline are ignored.
func (b *Buffer) InsertRune(r rune) {
	if r != '\n' && unicode.IsControl(r) {
		return
	}
	b.content = append(b.content, 0)
	copy(b.content[b.offset+1:], b.content[b.offset:])
	b.content[b.offset] = r
	b.offset++
	if r == '\n' {
		b.line++
		b.col = 0
	} else {
		b.col++
	}
	b.autoscroll()
}

// InsertString inserts each rune of s in order.
func (b *Buffer) InsertString(s string) {
	for _, r := range s {
		b.InsertRune(r)
	}
}

// DeleteBeforeCursor removes the character immediately before the cursor
// (backspace). Removing a newline joins the cursor line onto the previous
// one, leaving the cursor at the join point. No-op at the start of the
// document.
func (b *Buffer) DeleteBeforeCursor() {
	if b.offset == 0 {
		return
	}
	removed := b.content[b.offset-1]
	// Length of the line above, before the join happens.
	prevLen := 0
	if removed == '\n' && b.line > 0 {
		prevLen = b.lineLen(b.line - 1)
	}
	b.content = append(b.content[:b.offset-1], b.content[b.offset:]...)
	b.offset--
	if removed == '\n' {
		b.line--
		b.col = prevLen
	} else {
		b.col--
	}
	b.autoscroll()
}

// MoveCursor moves one step in the given direction. Vertical moves clamp
// the column to the target line and recompute the offset from line/col;
// horizontal moves wrap across line boundaries and update the offset
// incrementally. Moving past either end of the document is a no-op.
func (b *Buffer) MoveCursor(d Direction) {
	switch d {
	case Up:
		if b.line > 0 {
			b.line--
			b.clampCol()
			b.recomputeOffset()
		}
	case Down:
		if b.line < b.LineCount()-1 {
			b.line++
			b.clampCol()
			b.recomputeOffset()
		}
	case Left:
		if b.col > 0 {
			b.col--
			b.offset--
		} else if b.line > 0 {
			b.line--
			b.col = b.lineLen(b.line)
			b.offset--
		}
	case Right:
		if b.col < b.lineLen(b.line) {
			b.col++
			b.offset++
		} else if b.line < b.LineCount()-1 {
			b.line++
			b.col = 0
			b.offset++
		}
	}
	b.autoscroll()
}

// ScrollUp moves the viewport one line up without touching the cursor.
// Used by the read-only view mode.
func (b *Buffer) ScrollUp() {
	if b.scroll > 0 {
		b.scroll--
	}
}

// ScrollDown moves the viewport one line down without touching the cursor.
func (b *Buffer) ScrollDown() {
	if b.scroll < b.LineCount()-1 {
		b.scroll++
	}
}

// Revert restores the clean snapshot and resets cursor and scroll.
func (b *Buffer) Revert() {
	b.content = []rune(b.original)
	b.offset = 0
	b.line = 0
	b.col = 0
	b.scroll = 0
}

// CommitSave marks the current content as the clean snapshot. The caller is
// responsible for having persisted the content durably first.
func (b *Buffer) CommitSave() {
	b.original = string(b.content)
}

func (b *Buffer) lineLen(i int) int {
	lines := b.Lines()
	if i < 0 || i >= len(lines) {
		return 0
	}
	return len([]rune(lines[i]))
}

func (b *Buffer) clampCol() {
	if n := b.lineLen(b.line); b.col > n {
		b.col = n
	}
}

// recomputeOffset derives the absolute offset from line/col. Authoritative
// after vertical moves, where clamping can change the column.
func (b *Buffer) recomputeOffset() {
	lines := b.Lines()
	pos := 0
	for i := 0; i < b.line && i < len(lines); i++ {
		pos += len([]rune(lines[i])) + 1
	}
	pos += b.col
	if pos > len(b.content) {
		pos = len(b.content)
	}
	b.offset = pos
}

// autoscroll shifts the viewport by the minimal amount that keeps the
// cursor line inside [scroll, scroll+height).
func (b *Buffer) autoscroll() {
	if b.line >= b.scroll+b.height {
		b.scroll = b.line - b.height + 1
	} else if b.line < b.scroll {
		b.scroll = b.line
	}
}
