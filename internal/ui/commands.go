package ui

import (
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"gridctl/internal/table"
)

// Commands

// storeSubscribeCmd waits for the next interaction-store mutation. The
// store notifies from whichever goroutine mutated it; the channel hands
// the repaint to the program loop. Re-issued from Update after each hit.
func storeSubscribeCmd(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if ch == nil {
			return nil
		}
		<-ch
		return storeChangedMsg{}
	}
}

// noticeSubscribeCmd waits for the next engine notice.
func noticeSubscribeCmd(ch <-chan noticeMsg) tea.Cmd {
	return func() tea.Msg {
		if ch == nil {
			return nil
		}
		return <-ch
	}
}

// startWatchCmd sets up an fsnotify watcher on the open document's
// directory. Watching the directory instead of the file survives
// rename-style saves.
func startWatchCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return nil
		}
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return nil
		}
		if err := w.Add(filepath.Dir(path)); err != nil {
			_ = w.Close()
			return nil
		}
		base := filepath.Base(path)
		ch := make(chan struct{}, 1)
		go func() {
			for {
				select {
				case ev, ok := <-w.Events:
					if !ok {
						return
					}
					if filepath.Base(ev.Name) != base {
						continue
					}
					if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
						continue
					}
					select {
					case ch <- struct{}{}:
					default:
					}
				case _, ok := <-w.Errors:
					if !ok {
						return
					}
				}
			}
		}()
		return watchStartedMsg{w: w, ch: ch}
	}
}

// watchSubscribeCmd waits for the next file change, debounced so editors
// that write in bursts trigger a single reload.
func watchSubscribeCmd(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if ch == nil {
			return nil
		}
		<-ch
		time.Sleep(120 * time.Millisecond)
		return fileChangedMsg{}
	}
}

// reloadDocCmd re-reads the document from disk.
func reloadDocCmd(path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := table.Load(path)
		return docReloadedMsg{doc: doc, err: err}
	}
}
