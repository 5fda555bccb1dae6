package grid

import (
	"testing"
	"time"
)

// waitFor polls cond until it holds or the deadline passes; some key
// handlers run their mutation off the caller's goroutine.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestHandleKey_NavigationKeys(t *testing.T) {
	e, _, _, _, _ := newTestEngine(10)
	e.FocusCell(2, "b")

	if !e.HandleKey("down") {
		t.Fatal("down not consumed")
	}
	if f := e.State().Focused; *f != (CellPosition{3, "b"}) {
		t.Fatalf("focused = %v", f)
	}

	e.HandleKey("end")
	if f := e.State().Focused; *f != (CellPosition{3, "c"}) {
		t.Fatalf("focused = %v", f)
	}
	e.HandleKey("ctrl+home")
	if f := e.State().Focused; *f != (CellPosition{0, "a"}) {
		t.Fatalf("focused = %v", f)
	}
}

func TestHandleKey_TabAlwaysConsumed(t *testing.T) {
	e, _, _, _, _ := newTestEngine(3)
	// consumed even without focus so the terminal never sees a literal tab
	if !e.HandleKey("tab") {
		t.Fatal("tab must be consumed")
	}
	e.FocusCell(0, "a")
	e.HandleKey("tab")
	if f := e.State().Focused; *f != (CellPosition{0, "b"}) {
		t.Fatalf("focused = %v", f)
	}
	e.HandleKey("shift+tab")
	if f := e.State().Focused; *f != (CellPosition{0, "a"}) {
		t.Fatalf("focused = %v", f)
	}
}

func TestHandleKey_ShiftArrowExtendsSelection(t *testing.T) {
	e, _, _, _, _ := newTestEngine(5)
	e.FocusCell(1, "a")
	e.HandleKey("shift+down")
	e.HandleKey("shift+right")
	st := e.State()
	if len(st.Selection.Cells) != 4 {
		t.Fatalf("selection = %v", st.Selection.Cells)
	}
	if r := st.Selection.Range; r.Start != (CellPosition{1, "a"}) || r.End != (CellPosition{2, "b"}) {
		t.Fatalf("range = %+v", r)
	}
}

func TestHandleKey_EditingPassesKeysThrough(t *testing.T) {
	e, _, _, _, _ := newTestEngine(3)
	e.FocusCell(0, "a")
	e.StartEditing(0, "a")

	for _, key := range []string{"down", "tab", "ctrl+c", "delete", "esc", "a"} {
		if e.HandleKey(key) {
			t.Fatalf("key %q consumed while editing", key)
		}
	}
}

func TestHandleKey_SearchToggleWorksWhileEditing(t *testing.T) {
	e, _, _, _, _ := newTestEngine(3)
	e.FocusCell(0, "a")
	e.StartEditing(0, "a")
	if !e.HandleKey("ctrl+f") {
		t.Fatal("ctrl+f not consumed")
	}
	if !e.State().Search.Open {
		t.Fatal("search did not open")
	}
}

func TestHandleKey_SearchOpenRouting(t *testing.T) {
	e, rows, _, _, _ := newTestEngine(5)
	rows.set(1, "a", "hit")
	rows.set(3, "b", "hit")
	e.SetSearchOpen(true)
	e.Search("hit")

	if !e.HandleKey("enter") {
		t.Fatal("enter not consumed with search open")
	}
	if idx := e.State().Search.MatchIndex; idx != 1 {
		t.Fatalf("matchIndex = %d", idx)
	}
	if !e.HandleKey("shift+enter") {
		t.Fatal("shift+enter not consumed with search open")
	}
	if idx := e.State().Search.MatchIndex; idx != 0 {
		t.Fatalf("matchIndex = %d", idx)
	}

	// printable keys flow to the search input
	if e.HandleKey("x") {
		t.Fatal("printable key must reach the search input")
	}

	if !e.HandleKey("esc") {
		t.Fatal("esc not consumed with search open")
	}
	if e.State().Search.Open {
		t.Fatal("search did not close")
	}
}

func TestHandleKey_CopyPasteRoundTrip(t *testing.T) {
	e, rows, _, clip, _ := newTestEngine(5)
	rows.set(0, "a", "v")
	e.FocusCell(0, "a")

	if !e.HandleKey("ctrl+c") {
		t.Fatal("ctrl+c not consumed")
	}
	waitFor(t, func() bool {
		text, _ := clip.ReadText()
		return text == "v"
	})

	e.FocusCell(2, "b")
	if !e.HandleKey("ctrl+v") {
		t.Fatal("ctrl+v not consumed")
	}
	waitFor(t, func() bool { return rows.CellValue(2, "b") == "v" })
}

func TestHandleKey_DeleteClearsCells(t *testing.T) {
	e, rows, mut, _, _ := newTestEngine(5)
	rows.set(1, "a", "v")
	e.FocusCell(1, "a")
	if !e.HandleKey("delete") {
		t.Fatal("delete not consumed")
	}
	waitFor(t, func() bool { return len(mut.calls()) == 1 })
	if rows.CellValue(1, "a") != "" {
		t.Fatalf("cell not cleared: %v", rows.CellValue(1, "a"))
	}
}

func TestHandleKey_CtrlBackspaceDeletesRows(t *testing.T) {
	e, _, mut, _, _ := newTestEngine(5)

	// nothing to act on: key flows through
	if e.HandleKey("ctrl+backspace") {
		t.Fatal("ctrl+backspace consumed with no target")
	}

	e.FocusCell(2, "a")
	if !e.HandleKey("ctrl+backspace") {
		t.Fatal("ctrl+backspace not consumed")
	}
	waitFor(t, func() bool {
		mut.mu.Lock()
		defer mut.mu.Unlock()
		return len(mut.deleted) == 1
	})
}

func TestHandleKey_CtrlHAliasesRowDelete(t *testing.T) {
	e, _, mut, _, _ := newTestEngine(5)

	// terminals that can't send ctrl+backspace deliver ctrl+h instead
	e.FocusCell(3, "b")
	if !e.HandleKey("ctrl+h") {
		t.Fatal("ctrl+h not consumed")
	}
	waitFor(t, func() bool {
		mut.mu.Lock()
		defer mut.mu.Unlock()
		return len(mut.deleted) == 1 && len(mut.deleted[0]) == 1 && mut.deleted[0][0] == 3
	})
}

func TestHandleKey_EscPrefersClearingSelection(t *testing.T) {
	e, _, _, _, _ := newTestEngine(5)
	e.FocusCell(1, "a")
	e.HandleKey("shift+down")
	if len(e.State().Selection.Cells) == 0 {
		t.Fatal("selection missing")
	}

	e.HandleKey("esc")
	st := e.State()
	if len(st.Selection.Cells) != 0 {
		t.Fatal("selection not cleared")
	}
	if st.Focused == nil {
		t.Fatal("first esc must keep focus")
	}

	e.HandleKey("esc")
	if e.State().Focused != nil {
		t.Fatal("second esc must blur")
	}
}

func TestHandleKey_ShiftEnterAppendsRow(t *testing.T) {
	rows := newFakeRows(textColumns("a"), 2)
	mut := &appendingMutator{fakeMutator: fakeMutator{rows: rows}}
	e := New(Config{Rows: rows, Mutator: mut, Clipboard: &fakeClipboard{}})

	e.FocusCell(1, "a")
	if !e.HandleKey("shift+enter") {
		t.Fatal("shift+enter not consumed")
	}
	waitFor(t, func() bool { return rows.RowCount() == 3 })
	waitFor(t, func() bool {
		f := e.State().Focused
		return f != nil && *f == (CellPosition{2, "a"})
	})
}

func TestHandleKey_ShiftEnterWithoutAppenderFlowsThrough(t *testing.T) {
	e, _, _, _, _ := newTestEngine(3)
	e.FocusCell(0, "a")
	if e.HandleKey("shift+enter") {
		t.Fatal("shift+enter must not be consumed without append capability")
	}
}

func TestHandleKey_UnknownKeyNotConsumed(t *testing.T) {
	e, _, _, _, _ := newTestEngine(3)
	e.FocusCell(0, "a")
	for _, key := range []string{"a", "ctrl+z", "f5", "alt+x"} {
		if e.HandleKey(key) {
			t.Fatalf("key %q unexpectedly consumed", key)
		}
	}
}
