package grid

// Direction is a symbolic navigation intent.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
	DirHome
	DirEnd
	DirCtrlHome
	DirCtrlEnd
	DirCtrlUp
	DirCtrlDown
	DirPageUp
	DirPageDown
	DirPageLeft
	DirPageRight
)

// Navigate moves focus from the current cell one step in the direction,
// clamped to the grid, and reveals the destination. No-op without a focused
// cell.
func (e *Engine) Navigate(dir Direction) {
	st := e.store.State()
	if st.Focused == nil {
		return
	}
	next, ok := e.target(*st.Focused, dir)
	if !ok || next == *st.Focused {
		return
	}
	p := next
	e.store.Batch(func() {
		e.store.SetEditing(nil)
		e.store.SetFocused(&p)
	})
	e.reveal(p, alignFor(dir))
}

// ExtendSelection grows the selection range one step in the direction: the
// far corner moves by the same directional rules while the anchor stays
// fixed. Starts a new range from the focused cell when none exists.
func (e *Engine) ExtendSelection(dir Direction) {
	anchor, end, ok := e.selectionCorners()
	if !ok {
		return
	}
	next, ok := e.target(end, dir)
	if !ok {
		return
	}
	e.SelectRange(anchor, next, false)
	e.reveal(next, alignFor(dir))
}

// ExtendSelectionToEdge extends the selection to the row or column extreme
// in the direction (ctrl+shift+arrow).
func (e *Engine) ExtendSelectionToEdge(dir Direction) {
	anchor, end, ok := e.selectionCorners()
	if !ok {
		return
	}
	cols := e.columns()
	if len(cols) == 0 {
		return
	}
	next := end
	switch e.logical(dir) {
	case DirUp:
		next.Row = 0
	case DirDown:
		next.Row = e.rowCount() - 1
	case DirLeft:
		next.ColumnID = cols[0].ID
	case DirRight:
		next.ColumnID = cols[len(cols)-1].ID
	default:
		return
	}
	e.SelectRange(anchor, next, false)
	e.reveal(next, alignFor(dir))
}

// selectionCorners returns the current anchor and far corner: the existing
// range's corners, else a fresh pair at the focused cell.
func (e *Engine) selectionCorners() (anchor, end CellPosition, ok bool) {
	st := e.store.State()
	if st.Selection.Range != nil {
		r := *st.Selection.Range
		return r.Start, r.End, true
	}
	if st.Focused != nil {
		return *st.Focused, *st.Focused, true
	}
	return CellPosition{}, CellPosition{}, false
}

// target computes the destination of one directional step from a cell. The
// result is clamped to [0, rowCount) vertically and to the navigable column
// list horizontally. Reports false when the position cannot be resolved.
func (e *Engine) target(from CellPosition, dir Direction) (CellPosition, bool) {
	rows := e.rowCount()
	cols := e.columns()
	if rows == 0 || len(cols) == 0 {
		return CellPosition{}, false
	}
	ci := e.columnIndex(from.ColumnID)
	if ci < 0 {
		return CellPosition{}, false
	}
	row, col := from.Row, ci

	switch e.logical(dir) {
	case DirUp:
		row--
	case DirDown:
		row++
	case DirLeft:
		col--
	case DirRight:
		col++
	case DirHome:
		col = 0
	case DirEnd:
		col = len(cols) - 1
	case DirCtrlHome:
		row, col = 0, 0
	case DirCtrlEnd:
		row, col = rows-1, len(cols)-1
	case DirCtrlUp:
		row = 0
	case DirCtrlDown:
		row = rows - 1
	case DirPageUp:
		row -= e.pageRows()
	case DirPageDown:
		row += e.pageRows()
	case DirPageLeft:
		col -= pageColumns
	case DirPageRight:
		col += pageColumns
	default:
		return from, true
	}

	row = clamp(row, 0, rows-1)
	col = clamp(col, 0, len(cols)-1)
	return CellPosition{Row: row, ColumnID: cols[col].ID}, true
}

// logical resolves the direction under the text-direction flag: in
// right-to-left layout the meaning of horizontal steps is mirrored.
func (e *Engine) logical(dir Direction) Direction {
	if !e.opts.RightToLeft {
		return dir
	}
	switch dir {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirPageLeft:
		return DirPageRight
	case DirPageRight:
		return DirPageLeft
	}
	return dir
}

// pageRows is the vertical page step: the mounted row count when a
// virtualizer is wired, else a fixed fallback.
func (e *Engine) pageRows() int {
	if e.virt != nil {
		start, end := e.virt.MountedRows()
		if n := end - start; n > 0 {
			return n
		}
	}
	return fallbackPageRows
}

// alignFor picks the scroll alignment: start for upward moves, end for
// downward, center otherwise.
func alignFor(dir Direction) Align {
	switch dir {
	case DirUp, DirCtrlUp, DirPageUp, DirCtrlHome:
		return AlignStart
	case DirDown, DirCtrlDown, DirPageDown, DirCtrlEnd:
		return AlignEnd
	}
	return AlignCenter
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
