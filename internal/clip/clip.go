// Package clip adapts the system clipboard to the engine's Clipboard
// contract.
package clip

import "github.com/atotto/clipboard"

// System talks to the OS clipboard. On headless systems without a
// clipboard provider, calls return the library's unsupported error and the
// engine surfaces a notice.
type System struct{}

func (System) ReadText() (string, error) {
	return clipboard.ReadAll()
}

func (System) WriteText(text string) error {
	return clipboard.WriteAll(text)
}
