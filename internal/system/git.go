package system

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// GitInfo is the repository status shown in the status bar for the
// directory being browsed.
type GitInfo struct {
	InRepo   bool
	Branch   string
	ShortSHA string
	Dirty    bool
}

// GetGitInfo inspects the Git repository at dir and returns basic status.
// Missing git or a non-repo directory is not an error; the zero value is
// returned and the status bar simply omits the segment.
func GetGitInfo(ctx context.Context, dir string) (GitInfo, error) {
	gi := GitInfo{}

	if _, err := exec.LookPath("git"); err != nil {
		return gi, nil
	}

	// Short timeout per call so a slow repo never stalls the UI tick.
	withTimeout := func(d time.Duration) (context.Context, context.CancelFunc) {
		return context.WithTimeout(ctx, d)
	}

	{
		cctx, cancel := withTimeout(800 * time.Millisecond)
		out, err := exec.CommandContext(cctx, "git", "-C", dir, "rev-parse", "--is-inside-work-tree").CombinedOutput()
		cancel()
		if err != nil {
			return gi, nil
		}
		if strings.TrimSpace(string(out)) != "true" {
			return gi, nil
		}
		gi.InRepo = true
	}

	// Branch name (short)
	{
		cctx, cancel := withTimeout(800 * time.Millisecond)
		out, err := exec.CommandContext(cctx, "git", "-C", dir, "symbolic-ref", "--quiet", "--short", "HEAD").CombinedOutput()
		cancel()
		if err == nil {
			gi.Branch = strings.TrimSpace(string(out))
		} else {
			// Detached head fallback
			cctx2, cancel2 := withTimeout(800 * time.Millisecond)
			out2, err2 := exec.CommandContext(cctx2, "git", "-C", dir, "rev-parse", "--abbrev-ref", "HEAD").CombinedOutput()
			cancel2()
			if err2 == nil {
				gi.Branch = strings.TrimSpace(string(out2))
			}
		}
	}

	// Short SHA
	{
		cctx, cancel := withTimeout(800 * time.Millisecond)
		out, err := exec.CommandContext(cctx, "git", "-C", dir, "rev-parse", "--short", "HEAD").CombinedOutput()
		cancel()
		if err == nil {
			gi.ShortSHA = strings.TrimSpace(string(out))
		}
	}

	// Dirty state
	{
		cctx, cancel := withTimeout(800 * time.Millisecond)
		out, err := exec.CommandContext(cctx, "git", "-C", dir, "status", "--porcelain").CombinedOutput()
		cancel()
		if err == nil {
			gi.Dirty = strings.TrimSpace(string(out)) != ""
		}
	}

	return gi, nil
}
