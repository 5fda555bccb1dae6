package grid

import "strings"

// Search recomputes the match list for the query against the currently
// visible rows and columns, in row-major order. A blank query clears the
// matches. The first match, if any, is scrolled to center.
func (e *Engine) Search(query string) {
	if !e.opts.SearchEnabled {
		return
	}
	cur := e.store.State().Search
	next := SearchState{Query: query, MatchIndex: -1, Open: cur.Open}
	q := strings.ToLower(strings.TrimSpace(query))
	if q != "" && e.rows != nil {
		rows := e.rowCount()
		cols := e.columns()
		for r := 0; r < rows; r++ {
			for _, c := range cols {
				text := strings.ToLower(stringify(e.rows.CellValue(r, c.ID)))
				if strings.Contains(text, q) {
					next.Matches = append(next.Matches, CellPosition{Row: r, ColumnID: c.ID})
				}
			}
		}
	}
	if len(next.Matches) > 0 {
		next.MatchIndex = 0
	}
	e.store.SetSearch(next)
	if len(next.Matches) > 0 && e.virt != nil {
		e.virt.ScrollToRow(next.Matches[0].Row, AlignCenter)
	}
}

// NextMatch advances the match cursor circularly and reveals the target.
func (e *Engine) NextMatch() { e.stepMatch(1) }

// PrevMatch retreats the match cursor circularly and reveals the target.
func (e *Engine) PrevMatch() { e.stepMatch(-1) }

func (e *Engine) stepMatch(delta int) {
	st := e.store.State().Search
	n := len(st.Matches)
	if n == 0 {
		return
	}
	idx := st.MatchIndex
	if idx < 0 {
		idx = 0
	} else {
		idx = ((idx+delta)%n + n) % n
	}
	st.MatchIndex = idx
	e.store.SetSearch(st)

	target := st.Matches[idx]
	if e.virt != nil {
		e.virt.ScrollToRow(target.Row, AlignCenter)
	}
	e.FocusCell(target.Row, target.ColumnID)
}

// SetSearchOpen opens or closes the search bar. Closing clears the query
// and matches; when a match was active, focus stays on that cell.
func (e *Engine) SetSearchOpen(open bool) {
	if !e.opts.SearchEnabled {
		return
	}
	st := e.store.State()
	if st.Search.Open == open {
		return
	}
	if open {
		s := st.Search
		s.Open = true
		e.store.SetSearch(s)
		return
	}
	active, hadActive := st.ActiveMatch()
	e.store.SetSearch(SearchState{MatchIndex: -1})
	if hadActive {
		e.FocusCell(active.Row, active.ColumnID)
	}
}
