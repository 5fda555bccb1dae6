package grid

import (
	"context"
	"time"
)

// FocusCell moves keyboard focus to the cell, leaving edit mode. Unless
// search is open, the cell is revealed through the virtualizer; a cell that
// is not yet mounted is retried on a frame cadence until it appears or the
// attempt budget runs out.
func (e *Engine) FocusCell(row int, columnID string) {
	if row < 0 || row >= e.rowCount() || e.columnIndex(columnID) < 0 {
		return
	}
	p := CellPosition{Row: row, ColumnID: columnID}
	searchOpen := e.store.State().Search.Open
	e.store.Batch(func() {
		e.store.SetEditing(nil)
		e.store.SetFocused(&p)
	})
	if !searchOpen {
		e.reveal(p, AlignCenter)
	}
}

// BlurCell releases focus and edit mode.
func (e *Engine) BlurCell() {
	e.focusGen.Add(1) // cancel pending reveals
	e.store.Batch(func() {
		e.store.SetEditing(nil)
		e.store.SetFocused(nil)
	})
}

// StartEditing puts the cell in edit mode, focusing it first. No-op when
// the grid is read-only.
func (e *Engine) StartEditing(row int, columnID string) {
	if e.opts.ReadOnly {
		return
	}
	if row < 0 || row >= e.rowCount() || e.columnIndex(columnID) < 0 {
		return
	}
	p := CellPosition{Row: row, ColumnID: columnID}
	e.store.Batch(func() {
		e.store.SetFocused(&p)
		e.store.SetEditing(&p)
	})
	e.reveal(p, AlignCenter)
}

// StopEditOptions directs where focus goes after an edit ends.
type StopEditOptions struct {
	// MoveToNextRow moves focus down one row, same column, when a next row
	// exists (enter-to-commit flow).
	MoveToNextRow bool
	// Direction, when set, returns focus to the cell and then navigates
	// one step that way (tab-to-commit flow).
	Direction Direction
}

// StopEditing leaves edit mode. Focus returns to the edited cell, or moves
// per opts.
func (e *Engine) StopEditing(opts StopEditOptions) {
	st := e.store.State()
	cell := st.Editing
	if cell == nil {
		return
	}
	e.store.SetEditing(nil)
	switch {
	case opts.MoveToNextRow && cell.Row+1 < e.rowCount():
		e.FocusCell(cell.Row+1, cell.ColumnID)
	case opts.Direction != DirNone:
		e.FocusCell(cell.Row, cell.ColumnID)
		e.Navigate(opts.Direction)
	default:
		e.FocusCell(cell.Row, cell.ColumnID)
	}
}

// CommitEdit writes the editor's text into the edited cell under the
// column's coercion rules, then leaves edit mode per opts. Text that the
// column rejects leaves the stored value untouched.
func (e *Engine) CommitEdit(ctx context.Context, text string, opts StopEditOptions) {
	st := e.store.State()
	cell := st.Editing
	if cell == nil {
		return
	}
	if e.mut != nil && !e.opts.ReadOnly {
		if col, ok := e.columnByID(cell.ColumnID); ok {
			val, skip := parseCell(text, col)
			if !skip {
				if err := e.mut.UpdateCells(ctx, []CellUpdate{{Row: cell.Row, ColumnID: col.ID, Value: val}}); err != nil {
					e.notifyWarn("Couldn't save the cell")
				}
			}
		}
	}
	e.StopEditing(opts)
}

// reveal asks the virtualizer to bring the cell into the mounted range.
// Rows outside the window are scrolled to and then re-checked on a frame
// cadence; a newer focus or blur supersedes the task.
func (e *Engine) reveal(p CellPosition, align Align) {
	if e.virt == nil {
		return
	}
	gen := e.focusGen.Add(1)
	if ci := e.columnIndex(p.ColumnID); ci >= 0 {
		e.virt.ScrollToColumn(ci)
	}
	if e.rowMounted(p.Row) {
		return
	}
	e.virt.ScrollToRow(p.Row, align)
	go func() {
		for i := 0; i < revealAttempts; i++ {
			time.Sleep(revealInterval)
			if e.focusGen.Load() != gen {
				return
			}
			if e.rowMounted(p.Row) {
				return
			}
			e.virt.ScrollToRow(p.Row, align)
		}
	}()
}

func (e *Engine) rowMounted(row int) bool {
	if e.virt == nil {
		return true
	}
	start, end := e.virt.MountedRows()
	return row >= start && row < end
}
