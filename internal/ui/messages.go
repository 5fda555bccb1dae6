package ui

import (
	"github.com/fsnotify/fsnotify"

	"gridctl/internal/table"
)

// Bubble Tea messages

// storeChangedMsg arrives when the interaction store mutated, possibly from
// an engine goroutine.
type storeChangedMsg struct{}

// noticeMsg carries a transient status-bar notice.
type noticeMsg struct {
	text string
	warn bool
}

// noticeExpiredMsg clears a notice once its display window passed. seq
// guards against clearing a newer notice.
type noticeExpiredMsg struct{ seq int }

// watchStartedMsg delivers the live-reload watcher once it is running.
type watchStartedMsg struct {
	w  *fsnotify.Watcher
	ch chan struct{}
}

// fileChangedMsg fires after the open document changed on disk.
type fileChangedMsg struct{}

// docReloadedMsg carries the freshly loaded document, or the load error.
type docReloadedMsg struct {
	doc *table.Document
	err error
}
