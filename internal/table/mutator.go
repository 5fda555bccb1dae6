package table

import (
	"context"
	"sort"
	"sync"

	"gridctl/internal/grid"
)

// Mutator applies engine mutations to a View's document. Visual row
// indices are resolved against the projection at call time; each batch is
// applied as a whole and then persisted through save, when set.
type Mutator struct {
	mu   sync.Mutex
	view *View
	save func(*Document) error
}

// NewMutator wires a mutator to view. save runs after every applied batch
// and may be nil for in-memory tables.
func NewMutator(view *View, save func(*Document) error) *Mutator {
	return &Mutator{view: view, save: save}
}

// UpdateCells writes a batch of cell values. Rows outside the projection
// and unknown columns are skipped rather than failing the batch.
func (m *Mutator) UpdateCells(ctx context.Context, updates []grid.CellUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc := m.view.Document()
	applied := 0
	for _, u := range updates {
		rec := m.view.RecordIndex(u.Row)
		if rec < 0 {
			continue
		}
		if _, ok := doc.Column(u.ColumnID); !ok {
			continue
		}
		doc.Rows[rec][u.ColumnID] = u.Value
		applied++
	}
	if applied == 0 {
		return nil
	}
	m.view.Refresh()
	return m.persist(doc)
}

// DeleteRows removes the records behind the visual rows.
func (m *Mutator) DeleteRows(ctx context.Context, rows []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc := m.view.Document()
	drop := map[int]struct{}{}
	for _, r := range rows {
		if rec := m.view.RecordIndex(r); rec >= 0 {
			drop[rec] = struct{}{}
		}
	}
	if len(drop) == 0 {
		return nil
	}
	recs := make([]int, 0, len(drop))
	for r := range drop {
		recs = append(recs, r)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(recs)))
	for _, r := range recs {
		doc.Rows = append(doc.Rows[:r], doc.Rows[r+1:]...)
	}
	m.view.Refresh()
	return m.persist(doc)
}

// AppendRow appends one empty record.
func (m *Mutator) AppendRow(ctx context.Context) error {
	return m.AppendRows(ctx, 1)
}

// AppendRows appends n empty records in one batch.
func (m *Mutator) AppendRows(ctx context.Context, n int) error {
	if n <= 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	doc := m.view.Document()
	for i := 0; i < n; i++ {
		doc.Rows = append(doc.Rows, doc.EmptyRow())
	}
	m.view.Refresh()
	return m.persist(doc)
}

func (m *Mutator) persist(doc *Document) error {
	if m.save == nil {
		return nil
	}
	return m.save(doc)
}
