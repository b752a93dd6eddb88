// Package term hosts the embedded shell session: a child shell spawned
// under a pseudo-terminal, a background goroutine draining its output into
// a bounded scrollback buffer, and input forwarding for the UI's echoed
// command line.
package term

import (
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"github.com/creack/pty"
)

// ErrPtyUnavailable reports that pseudo-terminal allocation or the shell
// spawn failed. The session returned alongside it still works in echo-only
// mode, so the UI keeps showing typed input.
var ErrPtyUnavailable = errors.New("pseudo-terminal unavailable")

// Fixed geometry for the embedded terminal pane. Resize negotiation is out
// of scope; the pane renders a fixed number of rows.
const (
	Rows = 8
	Cols = 80
)

// maxScrollback bounds the output buffer; older lines are evicted first.
const maxScrollback = 100

// Session owns one child shell and its pty master side.
//
// The output buffer is the only state shared with the reader goroutine and
// is guarded by mu. The lock is held only for append-and-trim or snapshot,
// never across I/O. Closing the session flips the closed flag so a reader
// blocked in Read stops touching the buffer once it wakes up.
type Session struct {
	mu     sync.Mutex
	output string
	input  string
	closed bool

	ptmx   *os.File
	cmd    *exec.Cmd
	chunks chan string
}

// Open spawns the platform shell under a new pty rooted at dir and starts
// the output reader. On pty failure it returns a degraded echo-only
// session together with ErrPtyUnavailable; the caller decides how loudly
// to surface that.
func Open(dir string) (*Session, error) {
	s := &Session{chunks: make(chan string, 8)}

	sh, args := defaultShell()
	cmd := exec.Command(sh, args...)
	cmd.Dir = dir

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: Rows, Cols: Cols})
	if err != nil {
		s.append("Failed to create pseudo-terminal, using echo mode.\n")
		s.append("Error: " + err.Error() + "\n")
		return s, ErrPtyUnavailable
	}
	s.ptmx = ptmx
	s.cmd = cmd

	s.append("Terminal initialized successfully.\n")
	s.append("Working directory: " + dir + "\n")

	go s.drain(ptmx)
	return s, nil
}

// Degraded reports whether the session runs without a real pty.
func (s *Session) Degraded() bool { return s.ptmx == nil }

// Chunks exposes the wake-up channel: one notification per output chunk,
// dropped when nobody is listening. The buffer itself is the durable state.
func (s *Session) Chunks() <-chan string { return s.chunks }

// drain reads pty output until EOF or error. Invalid byte sequences are
// replaced, never fatal. The goroutine exits quietly and does not restart;
// the session stays open but inert until closed.
func (s *Session) drain(ptmx *os.File) {
	buf := make([]byte, 4096)
	for {
		n, err := ptmx.Read(buf)
		if n > 0 {
			text := strings.ToValidUTF8(string(buf[:n]), "�")
			if !s.append(text) {
				return // session closed, buffer is orphaned
			}
			select {
			case s.chunks <- text:
			default:
			}
		}
		if err != nil {
			return
		}
	}
}

// append adds text to the scrollback under the lock, trimming to the most
// recent maxScrollback lines. A trailing newline terminates the last line
// rather than starting a new one, so it never counts against the cap.
// Reports false once the session is closed.
func (s *Session) append(text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.output += text
	segs := strings.Split(s.output, "\n")
	n := len(segs)
	if n > 0 && segs[n-1] == "" {
		n--
	}
	if drop := n - maxScrollback; drop > 0 {
		s.output = strings.Join(segs[drop:], "\n")
	}
	return true
}

// ForwardInput writes text verbatim to the shell. Without a write handle
// the text is echoed into the scrollback with a marker instead, so the
// user always sees feedback.
func (s *Session) ForwardInput(text string) {
	if s.ptmx != nil {
		if _, err := s.ptmx.Write([]byte(text)); err == nil {
			return
		}
	}
	s.append("(no terminal) " + text)
}

// Type appends text to the echoed input line and forwards it keystroke-
// for-keystroke, matching what the shell's own line editor sees.
func (s *Session) Type(text string) {
	s.mu.Lock()
	s.input += text
	s.mu.Unlock()
	s.ForwardInput(text)
}

// SubmitLine forwards the pending input line with a terminator and clears
// the local echo.
func (s *Session) SubmitLine() {
	s.mu.Lock()
	s.input = ""
	s.mu.Unlock()
	s.ForwardInput("\n")
}

// Backspace removes the last echoed rune and forwards an erase sequence so
// the remote line editor stays in sync. No-op on an empty input line.
func (s *Session) Backspace() {
	s.mu.Lock()
	if s.input == "" {
		s.mu.Unlock()
		return
	}
	r := []rune(s.input)
	s.input = string(r[:len(r)-1])
	s.mu.Unlock()
	s.ForwardInput("\b \b")
}

// Interrupt forwards ETX (Ctrl+C) to the shell's foreground process.
func (s *Session) Interrupt() {
	s.ForwardInput("\x03")
}

// Snapshot returns the last maxLines of scrollback plus the pending input
// line. A trailing newline closes the last line instead of producing an
// empty one, so every returned slot carries content. Never blocks on the
// reader.
func (s *Session) Snapshot(maxLines int) (lines []string, input string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := strings.Split(s.output, "\n")
	if len(all) > 0 && all[len(all)-1] == "" {
		all = all[:len(all)-1]
	}
	if maxLines > 0 && len(all) > maxLines {
		all = all[len(all)-maxLines:]
	}
	lines = make([]string, len(all))
	copy(lines, all)
	return lines, s.input
}

// Close drops the pty handles and clears all session state. The child is
// signaled by the usual hang-up-on-close behavior; its exact exit timing
// is not waited on. A reader still blocked in Read exits on its next wake
// and finds the buffer closed.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.output = ""
	s.input = ""
	s.mu.Unlock()
	if s.ptmx != nil {
		_ = s.ptmx.Close()
	}
	if s.cmd != nil {
		cmd := s.cmd
		go func() { _ = cmd.Wait() }() // reap, without blocking the UI
	}
}

// defaultShell returns the platform-appropriate shell and arguments.
func defaultShell() (string, []string) {
	if runtime.GOOS == "windows" {
		pwsh := os.Getenv("COMSPEC")
		if pwsh == "" {
			pwsh = "powershell.exe"
		}
		return pwsh, nil
	}
	// Respect $SHELL, default to /bin/bash then /bin/sh
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh, nil
	}
	if _, err := os.Stat("/bin/bash"); err == nil {
		return "/bin/bash", nil
	}
	return "/bin/sh", nil
}
