package grid

import (
	"context"
	"errors"
	"sync"
)

// fakeRows is an in-memory row model for engine tests.
type fakeRows struct {
	mu   sync.Mutex
	cols []Column
	data []map[string]any
	gen  int64
}

func newFakeRows(cols []Column, rows int) *fakeRows {
	f := &fakeRows{cols: cols}
	for i := 0; i < rows; i++ {
		f.data = append(f.data, map[string]any{})
	}
	return f
}

func (f *fakeRows) RowCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.data)
}

func (f *fakeRows) Columns() []Column { return f.cols }

func (f *fakeRows) CellValue(row int, columnID string) any {
	f.mu.Lock()
	defer f.mu.Unlock()
	if row < 0 || row >= len(f.data) {
		return nil
	}
	return f.data[row][columnID]
}

func (f *fakeRows) Generation() int64 { return f.gen }

func (f *fakeRows) set(row int, columnID string, val any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[row][columnID] = val
}

// fakeMutator records calls; it optionally grows the fakeRows on append.
type fakeMutator struct {
	mu          sync.Mutex
	rows        *fakeRows
	updateCalls [][]CellUpdate
	deleted     [][]int
	failUpdates bool
}

func (m *fakeMutator) UpdateCells(ctx context.Context, updates []CellUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failUpdates {
		return errors.New("update failed")
	}
	cp := make([]CellUpdate, len(updates))
	copy(cp, updates)
	m.updateCalls = append(m.updateCalls, cp)
	for _, u := range updates {
		if u.Row < len(m.rows.data) {
			m.rows.set(u.Row, u.ColumnID, u.Value)
		}
	}
	return nil
}

func (m *fakeMutator) DeleteRows(ctx context.Context, rows []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]int, len(rows))
	copy(cp, rows)
	m.deleted = append(m.deleted, cp)
	return nil
}

func (m *fakeMutator) calls() [][]CellUpdate {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updateCalls
}

// appendingMutator adds bulk append capability on top of fakeMutator.
type appendingMutator struct {
	fakeMutator
	appended int
}

func (m *appendingMutator) AppendRows(ctx context.Context, n int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.appended += n
	m.rows.mu.Lock()
	for i := 0; i < n; i++ {
		m.rows.data = append(m.rows.data, map[string]any{})
	}
	m.rows.mu.Unlock()
	return nil
}

// fakeClipboard is an in-process clipboard.
type fakeClipboard struct {
	mu      sync.Mutex
	text    string
	failing bool
}

func (c *fakeClipboard) ReadText() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failing {
		return "", errors.New("denied")
	}
	return c.text, nil
}

func (c *fakeClipboard) WriteText(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failing {
		return errors.New("denied")
	}
	c.text = text
	return nil
}

// fakeVirtualizer records scroll requests and reports a fixed window.
type fakeVirtualizer struct {
	mu         sync.Mutex
	start, end int
	scrolls    []int
	aligns     []Align
	colScrolls []int
}

func (v *fakeVirtualizer) ScrollToRow(row int, align Align) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.scrolls = append(v.scrolls, row)
	v.aligns = append(v.aligns, align)
	// pretend the scroll succeeded
	span := v.end - v.start
	v.start = row
	v.end = row + span
}

func (v *fakeVirtualizer) ScrollToColumn(col int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.colScrolls = append(v.colScrolls, col)
}

func (v *fakeVirtualizer) MountedRows() (int, int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.start, v.end
}

// fakeNotifier collects notices.
type fakeNotifier struct {
	mu    sync.Mutex
	infos []string
	warns []string
}

func (n *fakeNotifier) Info(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.infos = append(n.infos, msg)
}

func (n *fakeNotifier) Warn(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.warns = append(n.warns, msg)
}

func textColumns(ids ...string) []Column {
	cols := make([]Column, 0, len(ids))
	for _, id := range ids {
		cols = append(cols, Column{ID: id, Name: id, Variant: VariantText})
	}
	return cols
}

// newTestEngine wires an engine over three text columns and n rows with a
// working clipboard and mutator.
func newTestEngine(nRows int) (*Engine, *fakeRows, *fakeMutator, *fakeClipboard, *fakeNotifier) {
	rows := newFakeRows(textColumns("a", "b", "c"), nRows)
	mut := &fakeMutator{rows: rows}
	clip := &fakeClipboard{}
	not := &fakeNotifier{}
	e := New(Config{
		Rows:      rows,
		Mutator:   mut,
		Clipboard: clip,
		Notifier:  not,
		Options:   Options{SearchEnabled: true, RowHeight: 1},
	})
	return e, rows, mut, clip, not
}
