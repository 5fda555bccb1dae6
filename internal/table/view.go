package table

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"gridctl/internal/grid"
)

// View is a sorted and filtered projection over a Document. It implements
// grid.RowModel: the engine addresses cells by visual row index, the view
// maps those back to record indices. Every reorder bumps the generation so
// cached visual indices can be recognized as stale.
type View struct {
	mu     sync.RWMutex
	doc    *Document
	order  []int // visual index -> record index
	sortBy string
	desc   bool
	filter string
	gen    int64
}

// NewView projects doc in record order with no filter.
func NewView(doc *Document) *View {
	v := &View{doc: doc}
	v.rebuild()
	return v
}

// Replace swaps the underlying document, dropping sort and filter. Used by
// live reload, where stale visual indices must not survive.
func (v *View) Replace(doc *Document) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.doc = doc
	v.sortBy = ""
	v.desc = false
	v.filter = ""
	v.rebuild()
}

// SortBy orders rows by the column, ascending or descending. An empty
// column ID restores record order.
func (v *View) SortBy(columnID string, desc bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sortBy = columnID
	v.desc = desc
	v.rebuild()
}

// Filter keeps rows where any cell's display text contains the query,
// case-insensitively. Blank clears the filter.
func (v *View) Filter(query string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = strings.TrimSpace(query)
	v.rebuild()
}

func (v *View) RowCount() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.order)
}

func (v *View) Columns() []grid.Column {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.doc.Columns
}

func (v *View) CellValue(row int, columnID string) any {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if row < 0 || row >= len(v.order) {
		return nil
	}
	return v.doc.Rows[v.order[row]][columnID]
}

func (v *View) Generation() int64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.gen
}

// RecordIndex maps a visual row to its index in Document.Rows, or -1.
func (v *View) RecordIndex(row int) int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if row < 0 || row >= len(v.order) {
		return -1
	}
	return v.order[row]
}

// Document returns the underlying document. Mutations must go through a
// Mutator so the projection stays coherent.
func (v *View) Document() *Document {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.doc
}

// Refresh rebuilds the projection after the underlying rows changed shape
// (appends, deletes).
func (v *View) Refresh() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.rebuild()
}

// rebuild recomputes order under v.mu.
func (v *View) rebuild() {
	order := make([]int, 0, len(v.doc.Rows))
	q := strings.ToLower(v.filter)
	for i, rec := range v.doc.Rows {
		if q != "" && !recordMatches(rec, v.doc.Columns, q) {
			continue
		}
		order = append(order, i)
	}
	if col, ok := v.doc.Column(v.sortBy); ok {
		sort.SliceStable(order, func(a, b int) bool {
			less := compareCells(v.doc.Rows[order[a]][col.ID], v.doc.Rows[order[b]][col.ID], col.Variant) < 0
			if v.desc {
				return !less
			}
			return less
		})
	}
	v.order = order
	v.gen++
}

func recordMatches(rec map[string]any, cols []grid.Column, q string) bool {
	for _, c := range cols {
		if strings.Contains(strings.ToLower(CellText(rec[c.ID])), q) {
			return true
		}
	}
	return false
}

// compareCells orders two cell values under a column variant. Nil sorts
// first; mixed or unknown types fall back to text comparison.
func compareCells(a, b any, variant grid.Variant) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}
	switch variant {
	case grid.VariantNumber:
		af, aok := asFloat(a)
		bf, bok := asFloat(b)
		if aok && bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	case grid.VariantCheckbox:
		ab, aok := a.(bool)
		bb, bok := b.(bool)
		if aok && bok {
			switch {
			case ab == bb:
				return 0
			case !ab:
				return -1
			default:
				return 1
			}
		}
	case grid.VariantDate:
		at, aok := asDate(a)
		bt, bok := asDate(b)
		if aok && bok {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			default:
				return 0
			}
		}
	}
	return strings.Compare(strings.ToLower(CellText(a)), strings.ToLower(CellText(b)))
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

func asDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return d, true
	case string:
		if t, err := time.Parse(time.RFC3339, d); err == nil {
			return t, true
		}
		if t, err := time.Parse("2006-01-02", d); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CellText renders a cell value for filtering and painting.
func CellText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case []string:
		return strings.Join(t, ", ")
	case []grid.FileRef:
		names := make([]string, 0, len(t))
		for _, r := range t {
			names = append(names, r.Name)
		}
		return strings.Join(names, ", ")
	case time.Time:
		return t.Format("1/2/2006")
	case []any:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			parts = append(parts, CellText(e))
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		if name, ok := t["name"].(string); ok {
			return name
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
