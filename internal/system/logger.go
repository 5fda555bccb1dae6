package system

import (
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger. It prints to stderr with
// timestamps so TUI output on stdout stays clean. GRIDCTL_DEBUG=1 enables
// debug-level records.
var Logger = newLogger()

func newLogger() *clog.Logger {
	l := clog.NewWithOptions(os.Stderr, clog.Options{
		ReportTimestamp: true,
	})
	if os.Getenv("GRIDCTL_DEBUG") != "" {
		l.SetLevel(clog.DebugLevel)
	}
	return l
}
