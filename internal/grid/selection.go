package grid

// SelectAll selects every visual row across every navigable column.
func (e *Engine) SelectAll() {
	rows := e.rowCount()
	cols := e.columns()
	cells := CellSet{}
	for r := 0; r < rows; r++ {
		for _, c := range cols {
			cells[Key(r, c.ID)] = struct{}{}
		}
	}
	var rng *SelectionRange
	if rows > 0 && len(cols) > 0 {
		rng = &SelectionRange{
			Start: CellPosition{Row: 0, ColumnID: cols[0].ID},
			End:   CellPosition{Row: rows - 1, ColumnID: cols[len(cols)-1].ID},
		}
	}
	e.store.SetSelection(SelectionState{Cells: cells, Range: rng})
}

// SelectColumn selects every visual row's cell in the column. No-op when
// there are no rows or the column is unknown.
func (e *Engine) SelectColumn(columnID string) {
	rows := e.rowCount()
	if rows == 0 || e.columnIndex(columnID) < 0 {
		return
	}
	cells := CellSet{}
	for r := 0; r < rows; r++ {
		cells[Key(r, columnID)] = struct{}{}
	}
	rng := &SelectionRange{
		Start: CellPosition{Row: 0, ColumnID: columnID},
		End:   CellPosition{Row: rows - 1, ColumnID: columnID},
	}
	e.store.SetSelection(SelectionState{Cells: cells, Range: rng})
}

// SelectRange selects the inclusive rectangle between start and end. The
// raw corners are kept as the range's anchor and focus so that further
// shift-extension moves end while start stays fixed; the selected set is
// direction-independent (always the min/max fill).
func (e *Engine) SelectRange(start, end CellPosition, selecting bool) {
	cols := e.columns()
	sc := e.columnIndex(start.ColumnID)
	ec := e.columnIndex(end.ColumnID)
	if sc < 0 || ec < 0 {
		return
	}
	r0, r1 := start.Row, end.Row
	if r0 > r1 {
		r0, r1 = r1, r0
	}
	c0, c1 := sc, ec
	if c0 > c1 {
		c0, c1 = c1, c0
	}
	cells := CellSet{}
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			cells[Key(r, cols[c].ID)] = struct{}{}
		}
	}
	e.store.SetSelection(SelectionState{
		Cells:     cells,
		Range:     &SelectionRange{Start: start, End: end},
		Selecting: selecting,
	})
}

// ClearSelection atomically clears cell selection, range, the selecting
// flag and the row-selection map.
func (e *Engine) ClearSelection() {
	e.store.Batch(func() {
		e.store.SetSelection(SelectionState{Cells: CellSet{}})
		e.store.SetSelectedRows(map[int]struct{}{})
	})
}

// IsCellSelected answers a set-membership query against the selection.
func (e *Engine) IsCellSelected(row int, columnID string) bool {
	return e.store.State().IsSelected(row, columnID)
}

// SelectRow toggles whole-row selection for the visual row.
func (e *Engine) SelectRow(row int, selected bool) {
	if row < 0 || row >= e.rowCount() {
		return
	}
	cur := e.store.State().SelectedRows
	next := make(map[int]struct{}, len(cur)+1)
	for k := range cur {
		next[k] = struct{}{}
	}
	if selected {
		next[row] = struct{}{}
	} else {
		delete(next, row)
	}
	e.store.SetSelectedRows(next)
}

// selectionPositions returns the active cell set for clipboard and clearing
// operations: the explicit multi-cell selection when present, else the
// focused cell. Reports false when neither exists.
func (e *Engine) selectionPositions() ([]CellPosition, bool) {
	st := e.store.State()
	if len(st.Selection.Cells) > 0 {
		out := make([]CellPosition, 0, len(st.Selection.Cells))
		for k := range st.Selection.Cells {
			if p, ok := k.Position(); ok {
				out = append(out, p)
			}
		}
		return out, len(out) > 0
	}
	if st.Focused != nil {
		return []CellPosition{*st.Focused}, true
	}
	return nil, false
}
