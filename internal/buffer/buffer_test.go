package buffer

import "testing"

func TestBuffer_NewEmpty(t *testing.T) {
	b := New("")
	if got := b.LineCount(); got != 1 {
		t.Fatalf("empty buffer line count = %d, want 1", got)
	}
	line, col := b.Cursor()
	if line != 0 || col != 0 || b.Offset() != 0 {
		t.Fatalf("unexpected initial cursor: line=%d col=%d offset=%d", line, col, b.Offset())
	}
	if b.Dirty() {
		t.Fatal("fresh buffer must not be dirty")
	}
}

func TestBuffer_InsertTracksCursor(t *testing.T) {
	b := New("")
	b.InsertString("hello\nworld")
	if got := b.Content(); got != "hello\nworld" {
		t.Fatalf("content = %q", got)
	}
	line, col := b.Cursor()
	if line != 1 || col != 5 || b.Offset() != 11 {
		t.Fatalf("cursor after insert: line=%d col=%d offset=%d", line, col, b.Offset())
	}
	if !b.Dirty() {
		t.Fatal("buffer should be dirty after insert")
	}
}

func TestBuffer_ControlRunesIgnored(t *testing.T) {
	b := New("")
	b.InsertRune('\t')
	b.InsertRune('\x1b')
	b.InsertRune('a')
	if got := b.Content(); got != "a" {
		t.Fatalf("content = %q, want %q", got, "a")
	}
}

func TestBuffer_NewlineBackspaceRoundTrip(t *testing.T) {
	b := New("ab")
	b.MoveCursor(Right)
	b.MoveCursor(Right)
	b.InsertRune('\n')
	line, col := b.Cursor()
	if line != 1 || col != 0 {
		t.Fatalf("after newline: line=%d col=%d", line, col)
	}
	b.DeleteBeforeCursor()
	if got := b.Content(); got != "ab" {
		t.Fatalf("content after round trip = %q", got)
	}
	line, col = b.Cursor()
	if line != 0 || col != 2 || b.Offset() != 2 {
		t.Fatalf("cursor after round trip: line=%d col=%d offset=%d", line, col, b.Offset())
	}
}

func TestBuffer_BackspaceJoinsAtPreviousLineEnd(t *testing.T) {
	b := New("abc\nxy")
	b.MoveCursor(Down) // line 1, col 0
	b.MoveCursor(Right)
	// delete the 'x' first, then the newline
	b.DeleteBeforeCursor()
	b.DeleteBeforeCursor()
	if got := b.Content(); got != "abcy" {
		t.Fatalf("content = %q", got)
	}
	line, col := b.Cursor()
	if line != 0 || col != 3 {
		t.Fatalf("cursor at join: line=%d col=%d", line, col)
	}
}

func TestBuffer_DeleteAtStartNoop(t *testing.T) {
	b := New("x")
	b.DeleteBeforeCursor()
	if got := b.Content(); got != "x" {
		t.Fatalf("content = %q, delete at offset 0 must be a no-op", got)
	}
}

func TestBuffer_VerticalMoveRecomputesOffset(t *testing.T) {
	b := New("ab\ncd")
	b.MoveCursor(Right) // offset 1, col 1
	b.MoveCursor(Down)
	line, col := b.Cursor()
	if line != 1 || col != 1 || b.Offset() != 4 {
		t.Fatalf("after down: line=%d col=%d offset=%d, want 1/1/4", line, col, b.Offset())
	}
	b.MoveCursor(Up)
	line, col = b.Cursor()
	if line != 0 || col != 1 || b.Offset() != 1 {
		t.Fatalf("after up: line=%d col=%d offset=%d, want 0/1/1", line, col, b.Offset())
	}
}

func TestBuffer_VerticalMoveClampsColumn(t *testing.T) {
	b := New("longer line\nab")
	for i := 0; i < 6; i++ {
		b.MoveCursor(Right)
	}
	b.MoveCursor(Down)
	line, col := b.Cursor()
	if line != 1 || col != 2 {
		t.Fatalf("clamped cursor: line=%d col=%d, want 1/2", line, col)
	}
	if b.Offset() != len("longer line")+1+2 {
		t.Fatalf("offset = %d", b.Offset())
	}
}

func TestBuffer_HorizontalWrap(t *testing.T) {
	b := New("ab\ncd")
	// right across the end of line 0
	b.MoveCursor(Right)
	b.MoveCursor(Right)
	b.MoveCursor(Right)
	line, col := b.Cursor()
	if line != 1 || col != 0 || b.Offset() != 3 {
		t.Fatalf("right wrap: line=%d col=%d offset=%d", line, col, b.Offset())
	}
	// and back
	b.MoveCursor(Left)
	line, col = b.Cursor()
	if line != 0 || col != 2 || b.Offset() != 2 {
		t.Fatalf("left wrap: line=%d col=%d offset=%d", line, col, b.Offset())
	}
}

func TestBuffer_MovePastEndsNoop(t *testing.T) {
	b := New("a")
	b.MoveCursor(Up)
	b.MoveCursor(Left)
	if l, c := b.Cursor(); l != 0 || c != 0 {
		t.Fatalf("cursor moved past start: line=%d col=%d", l, c)
	}
	b.MoveCursor(Right)
	b.MoveCursor(Right)
	b.MoveCursor(Down)
	if l, c := b.Cursor(); l != 0 || c != 1 || b.Offset() != 1 {
		t.Fatalf("cursor moved past end: line=%d col=%d offset=%d", l, c, b.Offset())
	}
}

func TestBuffer_OffsetStaysInBounds(t *testing.T) {
	b := New("one\ntwo\nthree")
	moves := []Direction{Down, Down, Right, Right, Up, Left, Left, Left, Left, Down, Right, Up, Up, Up}
	for _, d := range moves {
		b.MoveCursor(d)
		if off := b.Offset(); off < 0 || off > len([]rune(b.Content())) {
			t.Fatalf("offset %d out of bounds after move %d", off, d)
		}
	}
}

func TestBuffer_AutoscrollFollowsCursor(t *testing.T) {
	b := New("a\nb\nc\nd\ne\nf")
	b.SetVisibleHeight(3)
	for i := 0; i < 5; i++ {
		b.MoveCursor(Down)
	}
	if got := b.Scroll(); got != 3 {
		t.Fatalf("scroll after moving to last line = %d, want 3", got)
	}
	for i := 0; i < 5; i++ {
		b.MoveCursor(Up)
	}
	if got := b.Scroll(); got != 0 {
		t.Fatalf("scroll after returning to top = %d, want 0", got)
	}
}

func TestBuffer_ViewScrollIndependentOfCursor(t *testing.T) {
	b := New("a\nb\nc")
	b.ScrollDown()
	b.ScrollDown()
	if got := b.Scroll(); got != 2 {
		t.Fatalf("scroll = %d, want 2", got)
	}
	b.ScrollDown() // past last line, clamped
	if got := b.Scroll(); got != 2 {
		t.Fatalf("scroll past end = %d, want 2", got)
	}
	if l, c := b.Cursor(); l != 0 || c != 0 {
		t.Fatalf("view scrolling moved the cursor: line=%d col=%d", l, c)
	}
	b.ScrollUp()
	b.ScrollUp()
	b.ScrollUp() // past top, clamped
	if got := b.Scroll(); got != 0 {
		t.Fatalf("scroll past top = %d, want 0", got)
	}
}

func TestBuffer_RevertAndCommitSave(t *testing.T) {
	b := New("original")
	b.InsertString("x")
	if !b.Dirty() {
		t.Fatal("expected dirty after edit")
	}
	b.Revert()
	if b.Dirty() || b.Content() != "original" {
		t.Fatalf("revert failed: dirty=%v content=%q", b.Dirty(), b.Content())
	}
	if l, c := b.Cursor(); l != 0 || c != 0 || b.Offset() != 0 || b.Scroll() != 0 {
		t.Fatalf("revert did not reset cursor: line=%d col=%d", l, c)
	}

	b.InsertString("y")
	b.CommitSave()
	if b.Dirty() {
		t.Fatal("expected clean after commit")
	}
	if got := b.Content(); got != "yoriginal" {
		t.Fatalf("content = %q", got)
	}
}

func TestBuffer_EditBackToOriginalIsClean(t *testing.T) {
	b := New("ab")
	b.InsertRune('x')
	b.DeleteBeforeCursor()
	if b.Dirty() {
		t.Fatal("content equal to snapshot must not be dirty")
	}
}
