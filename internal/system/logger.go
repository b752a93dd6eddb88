package system

import (
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger. It prints to stderr with
// timestamps so it never corrupts the TUI's stdout frame.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
})
