package term

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	tu "lspretty/internal/testutil"
)

// openDegraded forces the shell spawn to fail so tests exercise the
// echo-only path deterministically, without depending on a usable pty.
func openDegraded(t *testing.T) *Session {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("degraded-shell setup relies on $SHELL")
	}
	defer tu.WithEnv(t, "SHELL", "/nonexistent/lspretty-test-shell")()
	s, err := Open(t.TempDir())
	if !errors.Is(err, ErrPtyUnavailable) {
		t.Fatalf("expected ErrPtyUnavailable, got %v", err)
	}
	if !s.Degraded() {
		t.Fatal("session should report degraded")
	}
	return s
}

func TestSession_DegradedEcho(t *testing.T) {
	s := openDegraded(t)
	defer s.Close()

	lines, _ := s.Snapshot(0)
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "echo mode") {
		t.Fatalf("missing degraded banner in %q", joined)
	}

	s.ForwardInput("ls -la\n")
	lines, _ = s.Snapshot(0)
	joined = strings.Join(lines, "\n")
	if !strings.Contains(joined, "(no terminal) ls -la") {
		t.Fatalf("missing echoed input in %q", joined)
	}
}

func TestSession_TypeAndBackspace(t *testing.T) {
	s := openDegraded(t)
	defer s.Close()

	s.Type("ech")
	s.Type("ox")
	if _, input := s.Snapshot(0); input != "echox" {
		t.Fatalf("input = %q", input)
	}
	s.Backspace()
	if _, input := s.Snapshot(0); input != "echo" {
		t.Fatalf("input after backspace = %q", input)
	}

	s.SubmitLine()
	if _, input := s.Snapshot(0); input != "" {
		t.Fatalf("input after submit = %q", input)
	}

	// backspace on an empty line stays a no-op
	s.Backspace()
	if _, input := s.Snapshot(0); input != "" {
		t.Fatalf("input after empty backspace = %q", input)
	}
}

func TestSession_ScrollbackKeepsExactCap(t *testing.T) {
	s := &Session{chunks: make(chan string, 8)}
	for i := 0; i < 150; i++ {
		s.append(fmt.Sprintf("line %d\n", i))
	}
	lines, _ := s.Snapshot(0)
	if len(lines) != maxScrollback {
		t.Fatalf("scrollback holds %d lines, want exactly %d", len(lines), maxScrollback)
	}
	if lines[0] != "line 50" || lines[maxScrollback-1] != "line 149" {
		t.Fatalf("retained window = %q .. %q, want line 50 .. line 149", lines[0], lines[maxScrollback-1])
	}
}

func TestSession_TrailingNewlineNotCounted(t *testing.T) {
	s := &Session{chunks: make(chan string, 8)}
	for i := 0; i < maxScrollback; i++ {
		s.append(fmt.Sprintf("line %d\n", i))
	}
	lines, _ := s.Snapshot(0)
	if len(lines) != maxScrollback || lines[0] != "line 0" {
		t.Fatalf("exactly-at-cap output trimmed: %d lines, first %q", len(lines), lines[0])
	}
}

func TestSession_SnapshotWindow(t *testing.T) {
	s := &Session{chunks: make(chan string, 8)}
	s.append("a\nb\nc\nd\n")
	lines, _ := s.Snapshot(2)
	if len(lines) != 2 {
		t.Fatalf("window returned %d lines", len(lines))
	}
	if lines[0] != "c" || lines[1] != "d" {
		t.Fatalf("window = %q, want [c d]", lines)
	}

	// partial line without a terminator stays the last line
	s.append("$ ")
	lines, _ = s.Snapshot(2)
	if lines[0] != "d" || lines[1] != "$ " {
		t.Fatalf("window with partial line = %q", lines)
	}
}

func TestSession_CloseStopsAppends(t *testing.T) {
	s := openDegraded(t)
	s.Type("pending")
	s.Close()

	lines, input := s.Snapshot(0)
	if input != "" || strings.Join(lines, "") != "" {
		t.Fatalf("state not cleared on close: lines=%q input=%q", lines, input)
	}
	if s.append("late chunk") {
		t.Fatal("append after close must report closed")
	}
	if lines, _ := s.Snapshot(0); strings.Join(lines, "") != "" {
		t.Fatal("closed session must not accumulate output")
	}
}

func TestDefaultShell_RespectsEnv(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix shell resolution")
	}
	defer tu.WithEnv(t, "SHELL", "/opt/custom/sh")()
	sh, args := defaultShell()
	if sh != "/opt/custom/sh" || len(args) != 0 {
		t.Fatalf("shell = %q args=%v", sh, args)
	}

	defer tu.WithEnv(t, "SHELL", "")()
	sh, _ = defaultShell()
	if sh != "/bin/bash" && sh != "/bin/sh" {
		t.Fatalf("fallback shell = %q", sh)
	}
}
