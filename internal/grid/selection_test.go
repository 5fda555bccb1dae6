package grid

import "testing"

func TestSelectRange_RectangleSizeAndBounds(t *testing.T) {
	e, _, _, _, _ := newTestEngine(10)

	cases := []struct {
		name       string
		start, end CellPosition
		want       int
	}{
		{"single", CellPosition{2, "b"}, CellPosition{2, "b"}, 1},
		{"forward", CellPosition{1, "a"}, CellPosition{3, "c"}, 9},
		{"backward drag", CellPosition{3, "c"}, CellPosition{1, "a"}, 9},
		{"row strip", CellPosition{5, "a"}, CellPosition{5, "c"}, 3},
		{"col strip", CellPosition{0, "b"}, CellPosition{4, "b"}, 5},
	}
	for _, tc := range cases {
		e.SelectRange(tc.start, tc.end, false)
		st := e.State()
		if got := len(st.Selection.Cells); got != tc.want {
			t.Fatalf("%s: cell count = %d, want %d", tc.name, got, tc.want)
		}
		loRow, hiRow := tc.start.Row, tc.end.Row
		if loRow > hiRow {
			loRow, hiRow = hiRow, loRow
		}
		for k := range st.Selection.Cells {
			p, ok := k.Position()
			if !ok {
				t.Fatalf("%s: bad key %q", tc.name, k)
			}
			if p.Row < loRow || p.Row > hiRow {
				t.Fatalf("%s: member %v outside row bounds", tc.name, p)
			}
		}
	}
}

func TestSelectRange_DragDirectionKeepsAnchor(t *testing.T) {
	e, _, _, _, _ := newTestEngine(10)

	e.SelectRange(CellPosition{4, "c"}, CellPosition{1, "a"}, false)
	st := e.State()
	r := st.Selection.Range
	if r == nil {
		t.Fatal("range missing")
	}
	if r.Start != (CellPosition{4, "c"}) || r.End != (CellPosition{1, "a"}) {
		t.Fatalf("raw corners not preserved: %v..%v", r.Start, r.End)
	}

	// Shift-extension moves the far corner; the anchor stays.
	e.ExtendSelection(DirDown)
	r = e.State().Selection.Range
	if r.Start != (CellPosition{4, "c"}) {
		t.Fatalf("anchor moved to %v", r.Start)
	}
	if r.End != (CellPosition{2, "a"}) {
		t.Fatalf("far corner = %v, want (2,a)", r.End)
	}
}

func TestSelectAll_ThenClear_RoundTrip(t *testing.T) {
	e, _, _, _, _ := newTestEngine(4)

	e.SelectAll()
	st := e.State()
	if len(st.Selection.Cells) != 4*3 {
		t.Fatalf("selectAll size = %d, want 12", len(st.Selection.Cells))
	}
	if st.Selection.Range == nil {
		t.Fatal("selectAll should set the full-rectangle range")
	}

	e.ClearSelection()
	st = e.State()
	if len(st.Selection.Cells) != 0 || st.Selection.Range != nil || st.Selection.Selecting {
		t.Fatalf("selection not back to initial state: %+v", st.Selection)
	}
	if len(st.SelectedRows) != 0 {
		t.Fatal("row selection should be cleared too")
	}
}

func TestSelectAll_EmptyGridHasNilRange(t *testing.T) {
	e, _, _, _, _ := newTestEngine(0)
	e.SelectAll()
	st := e.State()
	if len(st.Selection.Cells) != 0 || st.Selection.Range != nil {
		t.Fatalf("empty grid selectAll should be empty, got %+v", st.Selection)
	}
}

func TestSelectColumn(t *testing.T) {
	e, _, _, _, _ := newTestEngine(5)

	e.SelectColumn("b")
	st := e.State()
	if len(st.Selection.Cells) != 5 {
		t.Fatalf("column selection size = %d, want 5", len(st.Selection.Cells))
	}
	for r := 0; r < 5; r++ {
		if !e.IsCellSelected(r, "b") {
			t.Fatalf("row %d of column b not selected", r)
		}
	}
	if e.IsCellSelected(0, "a") {
		t.Fatal("column a must not be selected")
	}
}

func TestSelectColumn_NoRowsIsNoOp(t *testing.T) {
	e, _, _, _, _ := newTestEngine(0)
	e.SelectColumn("a")
	if len(e.State().Selection.Cells) != 0 {
		t.Fatal("selectColumn on empty grid must be a no-op")
	}
}

func TestSelectRow_Toggle(t *testing.T) {
	e, _, _, _, _ := newTestEngine(3)
	e.SelectRow(1, true)
	e.SelectRow(2, true)
	e.SelectRow(1, false)
	st := e.State()
	if _, ok := st.SelectedRows[2]; !ok || len(st.SelectedRows) != 1 {
		t.Fatalf("selected rows = %v, want {2}", st.SelectedRows)
	}
	e.SelectRow(99, true)
	if len(e.State().SelectedRows) != 1 {
		t.Fatal("out-of-range row selection must be ignored")
	}
}
