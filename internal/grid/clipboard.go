package grid

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
)

// CopyCells serializes the active cell set (multi-cell selection, else the
// focused cell) to a tab/newline delimited block and writes it to the
// clipboard. Any prior cut marker is cleared. Clipboard failure surfaces as
// a notice, never an error.
func (e *Engine) CopyCells(ctx context.Context) {
	text, ok := e.serializeSelection()
	if !ok {
		return
	}
	if e.clip == nil {
		return
	}
	if err := e.clip.WriteText(text); err != nil {
		e.notifyWarn("Couldn't write to the clipboard")
		return
	}
	e.store.SetCut(CellSet{})
}

// CutCells copies the active cell set and marks it for clearing once a
// subsequent paste succeeds.
func (e *Engine) CutCells(ctx context.Context) {
	if e.opts.ReadOnly {
		return
	}
	positions, ok := e.selectionPositions()
	if !ok {
		return
	}
	text, ok := e.serializeSelection()
	if !ok {
		return
	}
	if e.clip == nil {
		return
	}
	if err := e.clip.WriteText(text); err != nil {
		e.notifyWarn("Couldn't write to the clipboard")
		return
	}
	cut := CellSet{}
	for _, p := range positions {
		cut[p.Key()] = struct{}{}
	}
	e.store.SetCut(cut)
}

// serializeSelection renders the active cell set in ascending row-major
// order, columns tab-separated, rows newline-separated.
func (e *Engine) serializeSelection() (string, bool) {
	positions, ok := e.selectionPositions()
	if !ok || e.rows == nil {
		return "", false
	}

	cols := e.columns()
	rowSet := map[int]struct{}{}
	colSet := map[int]struct{}{}
	for _, p := range positions {
		ci := e.columnIndex(p.ColumnID)
		if ci < 0 {
			continue
		}
		rowSet[p.Row] = struct{}{}
		colSet[ci] = struct{}{}
	}
	if len(rowSet) == 0 || len(colSet) == 0 {
		return "", false
	}
	rowIdx := sortedKeys(rowSet)
	colIdx := sortedKeys(colSet)

	lines := make([]string, 0, len(rowIdx))
	for _, r := range rowIdx {
		fields := make([]string, 0, len(colIdx))
		for _, c := range colIdx {
			col := cols[c]
			fields = append(fields, encodeCell(e.rows.CellValue(r, col.ID), col))
		}
		lines = append(lines, strings.Join(fields, "\t"))
	}
	return strings.Join(lines, "\n"), true
}

// PasteCells reads the clipboard and pastes at the focused cell. When the
// block would extend past the last row: without an append-capable mutator
// the paste is a no-op; with one, the operation pauses in the paste dialog
// until confirmed.
func (e *Engine) PasteCells(ctx context.Context) {
	if e.opts.ReadOnly || e.mut == nil || e.clip == nil {
		return
	}
	if e.store.State().Focused == nil {
		return
	}
	text, err := e.clip.ReadText()
	if err != nil {
		e.notifyWarn("Couldn't read the clipboard")
		return
	}
	e.pasteText(ctx, text, false)
}

// ConfirmPasteDialog resumes the paste retained by the overflow dialog.
func (e *Engine) ConfirmPasteDialog(ctx context.Context) {
	st := e.store.State()
	if !st.PasteDialog.Open {
		return
	}
	text := st.PasteDialog.Text
	e.store.SetPasteDialog(PasteDialogState{})
	e.pasteText(ctx, text, true)
}

// CancelPasteDialog abandons the pending overflow paste.
func (e *Engine) CancelPasteDialog() {
	e.store.SetPasteDialog(PasteDialogState{})
}

// pasteText parses and applies a clipboard block anchored at the focused
// cell. confirmed marks that the user already accepted appending rows.
func (e *Engine) pasteText(ctx context.Context, text string, confirmed bool) {
	if text == "" {
		return
	}
	st := e.store.State()
	anchor := st.Focused
	if anchor == nil {
		return
	}
	anchorCol := e.columnIndex(anchor.ColumnID)
	if anchorCol < 0 {
		return
	}

	lines := splitClipboard(text)
	if len(lines) == 0 {
		return
	}

	needed := anchor.Row + len(lines) - e.rowCount()
	if needed > 0 {
		if !e.canAppendRows() {
			return
		}
		if !confirmed {
			e.store.SetPasteDialog(PasteDialogState{Open: true, RowsNeeded: needed, Text: text})
			return
		}
		e.appendRows(ctx, needed)
	}

	cols := e.columns()
	updates := make([]CellUpdate, 0, len(lines)*4)
	applied := CellSet{}
	skipped := 0
	lastCol := anchorCol
	lastRow := anchor.Row
	for i, line := range lines {
		row := anchor.Row + i
		if row >= e.rowCount() {
			break
		}
		lastRow = row
		for j, cellText := range strings.Split(line, "\t") {
			ci := anchorCol + j
			if ci >= len(cols) {
				break
			}
			if ci > lastCol {
				lastCol = ci
			}
			col := cols[ci]
			val, skip := parseCell(cellText, col)
			if skip {
				skipped++
				continue
			}
			updates = append(updates, CellUpdate{Row: row, ColumnID: col.ID, Value: val})
			applied[Key(row, col.ID)] = struct{}{}
		}
	}

	// Cells cut earlier are cleared in the same batch, unless the paste
	// just overwrote them.
	cut := e.store.State().Cut
	for k := range cut {
		if applied.Has(k) {
			continue
		}
		p, ok := k.Position()
		if !ok {
			continue
		}
		col, ok := e.columnByID(p.ColumnID)
		if !ok {
			continue
		}
		updates = append(updates, CellUpdate{Row: p.Row, ColumnID: col.ID, Value: EmptyValue(col.Variant)})
	}

	if len(updates) > 0 {
		if err := e.mut.UpdateCells(ctx, updates); err != nil {
			e.notifyWarn("Paste failed")
			return
		}
	}

	e.store.Batch(func() {
		e.store.SetCut(CellSet{})
		e.store.SetPasteDialog(PasteDialogState{})
	})
	e.SelectRange(*anchor, CellPosition{Row: lastRow, ColumnID: cols[lastCol].ID}, false)

	pasted := len(applied)
	if skipped > 0 {
		e.notifyInfo(fmt.Sprintf("Pasted %d cells, skipped %d", pasted, skipped))
	} else {
		e.notifyInfo(fmt.Sprintf("Pasted %d cells", pasted))
	}
}

// canAppendRows reports whether the mutator can grow the row count.
func (e *Engine) canAppendRows() bool {
	if e.mut == nil {
		return false
	}
	if _, ok := e.mut.(BulkRowAppender); ok {
		return true
	}
	_, ok := e.mut.(RowAppender)
	return ok
}

// appendRows requests n new rows and polls until the row model reflects
// them, bounded; on timeout the paste proceeds with whatever exists.
func (e *Engine) appendRows(ctx context.Context, n int) {
	want := e.rowCount() + n
	switch m := e.mut.(type) {
	case BulkRowAppender:
		_ = m.AppendRows(ctx, n)
	case RowAppender:
		for i := 0; i < n; i++ {
			_ = m.AppendRow(ctx)
		}
	default:
		return
	}
	for i := 0; i < appendPollAttempts; i++ {
		if e.rowCount() >= want {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(appendPollInterval):
		}
	}
}

// ClearCells writes each selected (or focused) cell's declared empty value
// in a single batched mutation.
func (e *Engine) ClearCells(ctx context.Context) {
	if e.opts.ReadOnly || e.mut == nil {
		return
	}
	positions, ok := e.selectionPositions()
	if !ok {
		return
	}
	updates := make([]CellUpdate, 0, len(positions))
	for _, p := range positions {
		col, ok := e.columnByID(p.ColumnID)
		if !ok || p.Row >= e.rowCount() {
			continue
		}
		updates = append(updates, CellUpdate{Row: p.Row, ColumnID: col.ID, Value: EmptyValue(col.Variant)})
	}
	if len(updates) == 0 {
		return
	}
	if err := e.mut.UpdateCells(ctx, updates); err != nil {
		e.notifyWarn("Clear failed")
	}
}

// DeleteRows removes whole rows: the row-selection set when present, else
// the rows covered by the cell selection, else the focused row.
func (e *Engine) DeleteRows(ctx context.Context) {
	if e.opts.ReadOnly || e.mut == nil {
		return
	}
	st := e.store.State()
	rowSet := map[int]struct{}{}
	switch {
	case len(st.SelectedRows) > 0:
		for r := range st.SelectedRows {
			rowSet[r] = struct{}{}
		}
	case len(st.Selection.Cells) > 0:
		for k := range st.Selection.Cells {
			if p, ok := k.Position(); ok {
				rowSet[p.Row] = struct{}{}
			}
		}
	case st.Focused != nil:
		rowSet[st.Focused.Row] = struct{}{}
	default:
		return
	}
	rows := sortedKeys(rowSet)
	if len(rows) == 0 {
		return
	}
	if err := e.mut.DeleteRows(ctx, rows); err != nil {
		e.notifyWarn("Delete failed")
		return
	}
	// Visual indices are stale after a row delete.
	e.store.Batch(func() {
		e.store.SetSelection(SelectionState{Cells: CellSet{}})
		e.store.SetSelectedRows(map[int]struct{}{})
		e.store.SetCut(CellSet{})
		e.store.SetFocused(nil)
		e.store.SetEditing(nil)
	})
	e.notifyInfo(fmt.Sprintf("Deleted %d rows", len(rows)))
}

// AppendRowAndFocus appends one row and moves focus to its first cell once
// the row model grows, bounded by the append poll budget.
func (e *Engine) AppendRowAndFocus(ctx context.Context) {
	if e.opts.ReadOnly || !e.canAppendRows() {
		return
	}
	cols := e.columns()
	if len(cols) == 0 {
		return
	}
	colID := cols[0].ID
	if st := e.store.State(); st.Focused != nil {
		colID = st.Focused.ColumnID
	}
	before := e.rowCount()
	e.appendRows(ctx, 1)
	if e.rowCount() > before {
		e.FocusCell(e.rowCount()-1, colID)
	}
}

// splitClipboard splits a clipboard block into lines, tolerating CRLF and
// a trailing newline.
func splitClipboard(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
