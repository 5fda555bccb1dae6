package grid

import "context"

// directionKeys maps plain navigation key names to directions. Key names
// follow Bubble Tea's KeyMsg.String() encoding.
var directionKeys = map[string]Direction{
	"up":        DirUp,
	"down":      DirDown,
	"left":      DirLeft,
	"right":     DirRight,
	"home":      DirHome,
	"end":       DirEnd,
	"ctrl+home": DirCtrlHome,
	"ctrl+end":  DirCtrlEnd,
	"ctrl+up":   DirCtrlUp,
	"ctrl+down": DirCtrlDown,
	"pgup":      DirPageUp,
	"pgdown":    DirPageDown,
	"alt+left":  DirPageLeft,
	"alt+right": DirPageRight,
}

// shiftKeys maps shift-modified navigation keys to the direction used for
// one-step selection extension.
var shiftKeys = map[string]Direction{
	"shift+up":     DirUp,
	"shift+down":   DirDown,
	"shift+left":   DirLeft,
	"shift+right":  DirRight,
	"shift+home":   DirHome,
	"shift+end":    DirEnd,
	"shift+pgup":   DirPageUp,
	"shift+pgdown": DirPageDown,
}

// edgeKeys maps ctrl+shift+arrow to the direction whose extreme the
// selection extends to.
var edgeKeys = map[string]Direction{
	"ctrl+shift+up":    DirUp,
	"ctrl+shift+down":  DirDown,
	"ctrl+shift+left":  DirLeft,
	"ctrl+shift+right": DirRight,
}

// HandleKey is the single keyboard entry point. It maps a raw key name to
// an engine operation and reports whether the key was consumed; unconsumed
// keys belong to whatever input widget currently has focus.
func (e *Engine) HandleKey(key string) bool {
	st := e.store.State()
	editing := st.Editing != nil

	// Search toggle is intercepted before anything else.
	if key == "ctrl+f" && e.opts.SearchEnabled {
		e.SetSearchOpen(!st.Search.Open)
		return true
	}

	// With the search bar open, enter/shift+enter step matches and escape
	// closes; everything else flows to the search input.
	if st.Search.Open && !editing {
		switch key {
		case "enter":
			e.NextMatch()
			return true
		case "shift+enter":
			e.PrevMatch()
			return true
		case "esc":
			e.SetSearchOpen(false)
			return true
		}
		return false
	}

	// Edit mode owns the keyboard; stop triggers are handled by the editor
	// widget, not here.
	if editing {
		return false
	}

	// Bulk row delete. Many terminals deliver ctrl+backspace as ctrl+h.
	if key == "ctrl+backspace" || key == "ctrl+delete" || key == "ctrl+h" {
		if len(st.SelectedRows) > 0 || len(st.Selection.Cells) > 0 || st.Focused != nil {
			e.async(e.DeleteRows)
			return true
		}
		return false
	}

	switch key {
	case "ctrl+a":
		e.SelectAll()
		return true
	case "ctrl+c":
		e.async(e.CopyCells)
		return true
	case "ctrl+x":
		e.async(e.CutCells)
		return true
	case "ctrl+v":
		e.async(e.PasteCells)
		return true
	case "delete", "backspace":
		e.async(e.ClearCells)
		return true
	case "shift+enter":
		if e.canAppendRows() {
			e.async(e.AppendRowAndFocus)
			return true
		}
		return false
	case "esc":
		if len(st.Selection.Cells) > 0 || len(st.SelectedRows) > 0 {
			e.ClearSelection()
		} else {
			e.BlurCell()
		}
		return true
	case "tab":
		e.Navigate(DirRight)
		return true
	case "shift+tab":
		e.Navigate(DirLeft)
		return true
	}

	if dir, ok := edgeKeys[key]; ok {
		e.ExtendSelectionToEdge(dir)
		return true
	}
	if dir, ok := shiftKeys[key]; ok {
		e.ExtendSelection(dir)
		return true
	}
	if dir, ok := directionKeys[key]; ok {
		e.Navigate(dir)
		return true
	}
	return false
}

// async runs a clipboard or mutation task off the caller's goroutine. The
// store's locking and the bounded retry loops inside these operations keep
// this safe without explicit cancellation; a newer gesture supersedes older
// reveal work via the focus generation.
func (e *Engine) async(fn func(ctx context.Context)) {
	go fn(context.Background())
}
