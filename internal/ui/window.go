package ui

import (
	"sync"

	"gridctl/internal/grid"
)

// window is the scroll state behind the grid viewport. It implements
// grid.Virtualizer; the engine calls it from its own goroutines, so all
// fields sit behind a mutex.
type window struct {
	mu      sync.Mutex
	rowOff  int
	rowSpan int
	colOff  int
	colSpan int
	rows    int
	cols    int
}

func (w *window) setSize(rowSpan, colSpan int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if rowSpan < 1 {
		rowSpan = 1
	}
	if colSpan < 1 {
		colSpan = 1
	}
	w.rowSpan = rowSpan
	w.colSpan = colSpan
	w.clampLocked()
}

func (w *window) setExtent(rows, cols int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.rows = rows
	w.cols = cols
	w.clampLocked()
}

func (w *window) offsets() (row, col int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.rowOff, w.colOff
}

func (w *window) scrollRows(delta int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.rowOff += delta
	w.clampLocked()
}

// ScrollToRow brings row into the window. AlignStart pins it to the top
// edge, AlignEnd to the bottom, AlignCenter to the middle.
func (w *window) ScrollToRow(row int, align grid.Align) {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch align {
	case grid.AlignStart:
		w.rowOff = row
	case grid.AlignEnd:
		w.rowOff = row - w.rowSpan + 1
	default:
		w.rowOff = row - w.rowSpan/2
	}
	w.clampLocked()
}

// ScrollToColumn brings col into the window with a one-column margin.
func (w *window) ScrollToColumn(col int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if col < w.colOff {
		w.colOff = col - 1
	} else if col >= w.colOff+w.colSpan {
		w.colOff = col - w.colSpan + 2
	}
	w.clampLocked()
}

// MountedRows reports the half-open row range currently rendered.
func (w *window) MountedRows() (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	end := w.rowOff + w.rowSpan
	if end > w.rows {
		end = w.rows
	}
	return w.rowOff, end
}

func (w *window) clampLocked() {
	maxRow := w.rows - w.rowSpan
	if maxRow < 0 {
		maxRow = 0
	}
	if w.rowOff > maxRow {
		w.rowOff = maxRow
	}
	if w.rowOff < 0 {
		w.rowOff = 0
	}
	maxCol := w.cols - w.colSpan
	if maxCol < 0 {
		maxCol = 0
	}
	if w.colOff > maxCol {
		w.colOff = maxCol
	}
	if w.colOff < 0 {
		w.colOff = 0
	}
}
