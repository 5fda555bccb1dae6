package grid

import "sync"

// Store holds the mutable interaction state for one grid instance and
// notifies subscribers when it changes.
//
// Setters are no-ops when the new value equals the current one. Mutations
// inside Batch produce a single notification when the outermost batch
// returns, so one logical gesture repaints once instead of flickering
// through intermediate states. Outside a batch each effective mutation
// notifies immediately.
//
// The store is safe for concurrent use: bounded background tasks (clipboard
// work, reveal retries) mutate it off the UI goroutine.
type Store struct {
	mu         sync.Mutex
	state      State
	batchDepth int
	dirty      bool
	subs       map[int]func()
	nextSub    int
}

// NewStore creates a store with default state: no focus, no edit, empty
// selection, no search, the given row height.
func NewStore(rowHeight int) *Store {
	return &Store{
		state: State{
			Selection:    SelectionState{Cells: CellSet{}},
			SelectedRows: map[int]struct{}{},
			Cut:          CellSet{},
			Search:       SearchState{MatchIndex: -1},
			RowHeight:    rowHeight,
		},
		subs: map[int]func(){},
	}
}

// State returns the current snapshot. Contained maps and slices are shared;
// treat them as read-only. Setters always replace them wholesale, so a held
// snapshot never changes underneath the caller.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers a change listener and returns its unsubscribe func.
// Listeners run outside the store lock, after the outermost mutation.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Batch runs fn with notification suppressed, then notifies once if any
// contained setter changed state. Nested batches collapse into the
// outermost one.
func (s *Store) Batch(fn func()) {
	s.mu.Lock()
	s.batchDepth++
	s.mu.Unlock()

	fn()

	s.mu.Lock()
	s.batchDepth--
	fire := s.batchDepth == 0 && s.dirty
	if fire {
		s.dirty = false
	}
	subs := s.listeners()
	s.mu.Unlock()
	if fire {
		for _, f := range subs {
			f()
		}
	}
}

// listeners snapshots the subscriber list; callers must hold mu.
func (s *Store) listeners() []func() {
	out := make([]func(), 0, len(s.subs))
	for _, f := range s.subs {
		out = append(out, f)
	}
	return out
}

// mutate applies fn under the lock when apply reports an effective change,
// and fires notification unless inside a batch.
func (s *Store) mutate(apply func(st *State) bool) {
	s.mu.Lock()
	if !apply(&s.state) {
		s.mu.Unlock()
		return
	}
	if s.batchDepth > 0 {
		s.dirty = true
		s.mu.Unlock()
		return
	}
	subs := s.listeners()
	s.mu.Unlock()
	for _, f := range subs {
		f()
	}
}

// SetFocused replaces the focused cell.
func (s *Store) SetFocused(p *CellPosition) {
	s.mutate(func(st *State) bool {
		if samePos(st.Focused, p) {
			return false
		}
		st.Focused = clonePos(p)
		return true
	})
}

// SetEditing replaces the editing cell.
func (s *Store) SetEditing(p *CellPosition) {
	s.mutate(func(st *State) bool {
		if samePos(st.Editing, p) {
			return false
		}
		st.Editing = clonePos(p)
		return true
	})
}

// SetSelection replaces the whole selection state.
func (s *Store) SetSelection(sel SelectionState) {
	s.mutate(func(st *State) bool {
		if sameRange(st.Selection.Range, sel.Range) &&
			st.Selection.Selecting == sel.Selecting &&
			equalCellSets(st.Selection.Cells, sel.Cells) {
			return false
		}
		st.Selection = sel
		return true
	})
}

// SetSelecting toggles the in-progress drag flag.
func (s *Store) SetSelecting(v bool) {
	s.mutate(func(st *State) bool {
		if st.Selection.Selecting == v {
			return false
		}
		st.Selection.Selecting = v
		return true
	})
}

// SetSelectedRows replaces the whole-row selection map.
func (s *Store) SetSelectedRows(rows map[int]struct{}) {
	s.mutate(func(st *State) bool {
		if equalIntSets(st.SelectedRows, rows) {
			return false
		}
		if rows == nil {
			rows = map[int]struct{}{}
		}
		st.SelectedRows = rows
		return true
	})
}

// SetCut replaces the cut-marker set.
func (s *Store) SetCut(cells CellSet) {
	s.mutate(func(st *State) bool {
		if equalCellSets(st.Cut, cells) {
			return false
		}
		if cells == nil {
			cells = CellSet{}
		}
		st.Cut = cells
		return true
	})
}

// SetSearch replaces the search state.
func (s *Store) SetSearch(v SearchState) {
	s.mutate(func(st *State) bool {
		if equalSearch(st.Search, v) {
			return false
		}
		st.Search = v
		return true
	})
}

// SetPasteDialog replaces the paste-overflow dialog state.
func (s *Store) SetPasteDialog(v PasteDialogState) {
	s.mutate(func(st *State) bool {
		if st.PasteDialog == v {
			return false
		}
		st.PasteDialog = v
		return true
	})
}

// SetContextMenu replaces the context menu state.
func (s *Store) SetContextMenu(v ContextMenuState) {
	s.mutate(func(st *State) bool {
		if st.ContextMenu == v {
			return false
		}
		st.ContextMenu = v
		return true
	})
}

// SetRowHeight replaces the row height.
func (s *Store) SetRowHeight(h int) {
	s.mutate(func(st *State) bool {
		if h < 1 || st.RowHeight == h {
			return false
		}
		st.RowHeight = h
		return true
	})
}

func clonePos(p *CellPosition) *CellPosition {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func equalCellSets(a, b CellSet) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b.Has(k) {
			return false
		}
	}
	return true
}

func equalIntSets(a, b map[int]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

func equalSearch(a, b SearchState) bool {
	if a.Query != b.Query || a.MatchIndex != b.MatchIndex || a.Open != b.Open {
		return false
	}
	if len(a.Matches) != len(b.Matches) {
		return false
	}
	for i := range a.Matches {
		if a.Matches[i] != b.Matches[i] {
			return false
		}
	}
	return true
}
