package browser

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatSize renders a size column value. Human mode uses binary units
// ("4.2 MiB"); plain mode prints raw bytes.
func FormatSize(n int64, human bool) string {
	if n < 0 {
		n = 0
	}
	if human {
		return humanize.IBytes(uint64(n))
	}
	return fmt.Sprintf("%d", n)
}

// FormatTime renders the mtime column. The zero time (synthetic entries
// like "..") renders as a dash.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}

// RelTime renders a friendly relative mtime for the status bar.
func RelTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.Time(t)
}
