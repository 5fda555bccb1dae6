// Package grid implements the interaction engine behind gridctl's table
// editor: cell focus and edit mode, rectangular selection, keyboard
// navigation, clipboard copy/cut/paste with per-column coercion, and
// incremental search.
//
// The engine is headless. It owns interaction state only; row data, the
// scroll window and the actual painting belong to collaborators passed in
// through Config. Every operation degrades to a no-op when a collaborator
// or precondition is missing, so the engine never panics on user input.
package grid

import (
	"context"
	"sync/atomic"
	"time"
)

// Variant is a column's declared value type. It drives clipboard encoding,
// paste coercion and empty-value semantics.
type Variant string

const (
	VariantText        Variant = "text"
	VariantNumber      Variant = "number"
	VariantCheckbox    Variant = "checkbox"
	VariantDate        Variant = "date"
	VariantSelect      Variant = "select"
	VariantMultiSelect Variant = "multiselect"
	VariantURL         Variant = "url"
	VariantFile        Variant = "file"
)

// Column declares one column of the grid. Structural columns (row handles,
// action buttons) are not part of the navigable column list and never reach
// the engine.
type Column struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Variant Variant  `json:"variant"`
	Options []string `json:"options,omitempty"`
}

// FileRef is one attachment in a file cell. A ref is well-formed when both
// Name and URL are set.
type FileRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Size int64  `json:"size,omitempty"`
}

// CellPosition identifies a cell by visual row index and stable column ID.
// Row indices follow the current sorted/filtered display order; they are
// not remapped when the row model reorders, so callers must re-derive them
// after a sort or filter change.
type CellPosition struct {
	Row      int
	ColumnID string
}

// CellUpdate is one pending value write, addressed like CellPosition.
type CellUpdate struct {
	Row      int
	ColumnID string
	Value    any
}

// RowModel is the external row/column model. The engine treats it as
// authoritative for the currently visible rows and columns on every query.
type RowModel interface {
	RowCount() int
	// Columns returns the navigable columns in display order.
	Columns() []Column
	CellValue(row int, columnID string) any
	// Generation changes whenever the visual row order changes identity.
	Generation() int64
}

// Align hints where a scrolled-to row should land in the viewport.
type Align int

const (
	AlignCenter Align = iota
	AlignStart
	AlignEnd
)

// Virtualizer is the external scroll window. MountedRows reports the
// half-open range of rows currently rendered.
type Virtualizer interface {
	ScrollToRow(row int, align Align)
	ScrollToColumn(col int)
	MountedRows() (start, end int)
}

// Mutator accepts data mutations. Calls are awaited but their internal
// failure handling is opaque to the engine; the engine does not retry them.
type Mutator interface {
	UpdateCells(ctx context.Context, updates []CellUpdate) error
	DeleteRows(ctx context.Context, rows []int) error
}

// RowAppender is an optional Mutator capability: append one empty row.
type RowAppender interface {
	AppendRow(ctx context.Context) error
}

// BulkRowAppender is an optional Mutator capability: append n empty rows in
// one call. Preferred over RowAppender when both are available.
type BulkRowAppender interface {
	AppendRows(ctx context.Context, n int) error
}

// Clipboard reads and writes the system clipboard. Failures are reported to
// the Notifier, never thrown through.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// Notifier surfaces transient, user-visible notices.
type Notifier interface {
	Info(msg string)
	Warn(msg string)
}

// Options tunes engine behavior.
type Options struct {
	// RightToLeft swaps the meaning of horizontal directions.
	RightToLeft bool
	// ReadOnly disables edit mode and all mutations.
	ReadOnly bool
	// SearchEnabled gates the search shortcut and search state.
	SearchEnabled bool
	// RowHeight is the initial row height stored in the interaction state.
	RowHeight int
}

// Config wires an Engine to its collaborators. Rows is required; everything
// else may be nil and the dependent operations become no-ops.
type Config struct {
	Rows        RowModel
	Virtualizer Virtualizer
	Mutator     Mutator
	Clipboard   Clipboard
	Notifier    Notifier
	Options     Options
}

const (
	// fallbackPageRows is the page-move step when no virtualizer is wired.
	fallbackPageRows = 10
	// pageColumns is the horizontal page-move step.
	pageColumns = 5

	// revealAttempts bounds the scroll-and-retry loop that brings a focused
	// cell into the mounted row range.
	revealAttempts = 16
	revealInterval = 16 * time.Millisecond

	// appendPollAttempts bounds the wait for externally-appended rows to
	// show up in the row model during paste.
	appendPollAttempts = 50
	appendPollInterval = 100 * time.Millisecond
)

// Engine owns the interaction state for one grid instance. Instances are
// isolated; there is no shared state across engines.
type Engine struct {
	store  *Store
	rows   RowModel
	virt   Virtualizer
	mut    Mutator
	clip   Clipboard
	notify Notifier
	opts   Options

	// focusGen supersedes in-flight reveal tasks: a newer focus request
	// bumps the generation and stale tasks exit.
	focusGen atomic.Int64
}

// New creates an engine with default interaction state.
func New(cfg Config) *Engine {
	rh := cfg.Options.RowHeight
	if rh < 1 {
		rh = 1
	}
	return &Engine{
		store:  NewStore(rh),
		rows:   cfg.Rows,
		virt:   cfg.Virtualizer,
		mut:    cfg.Mutator,
		clip:   cfg.Clipboard,
		notify: cfg.Notifier,
		opts:   cfg.Options,
	}
}

// Store exposes the interaction store for subscription and snapshots.
func (e *Engine) Store() *Store { return e.store }

// State returns the current interaction snapshot.
func (e *Engine) State() State { return e.store.State() }

// ReadOnly reports whether editing and mutations are disabled.
func (e *Engine) ReadOnly() bool { return e.opts.ReadOnly }

// columns returns the navigable column list, nil-safe.
func (e *Engine) columns() []Column {
	if e.rows == nil {
		return nil
	}
	return e.rows.Columns()
}

// rowCount returns the visible row count, nil-safe.
func (e *Engine) rowCount() int {
	if e.rows == nil {
		return 0
	}
	return e.rows.RowCount()
}

// columnIndex resolves a column ID to its index in the navigable order,
// or -1 when the column is unknown.
func (e *Engine) columnIndex(columnID string) int {
	for i, c := range e.columns() {
		if c.ID == columnID {
			return i
		}
	}
	return -1
}

// columnByID resolves a column declaration, or false when unknown.
func (e *Engine) columnByID(columnID string) (Column, bool) {
	for _, c := range e.columns() {
		if c.ID == columnID {
			return c, true
		}
	}
	return Column{}, false
}

func (e *Engine) notifyInfo(msg string) {
	if e.notify != nil {
		e.notify.Info(msg)
	}
}

func (e *Engine) notifyWarn(msg string) {
	if e.notify != nil {
		e.notify.Warn(msg)
	}
}
