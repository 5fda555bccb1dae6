package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// CellKey is a stable string encoding of (rowIndex, columnID) used for set
// membership.
type CellKey string

// Key builds the cell key for a position.
func Key(row int, columnID string) CellKey {
	return CellKey(strconv.Itoa(row) + ":" + columnID)
}

// Key returns the position's cell key.
func (p CellPosition) Key() CellKey { return Key(p.Row, p.ColumnID) }

// Position decodes a cell key. Reports false for malformed keys.
func (k CellKey) Position() (CellPosition, bool) {
	s := string(k)
	i := strings.IndexByte(s, ':')
	if i <= 0 {
		return CellPosition{}, false
	}
	row, err := strconv.Atoi(s[:i])
	if err != nil || row < 0 {
		return CellPosition{}, false
	}
	return CellPosition{Row: row, ColumnID: s[i+1:]}, true
}

// CellSet is a set of cell keys.
type CellSet map[CellKey]struct{}

// Has reports membership.
func (s CellSet) Has(k CellKey) bool {
	_, ok := s[k]
	return ok
}

// SelectionRange keeps the raw anchor (Start) and focus (End) of a range
// selection. The anchor is preserved across shift-extension; the selected
// rectangle is always the min/max fill between the two corners.
type SelectionRange struct {
	Start CellPosition
	End   CellPosition
}

// SelectionState is the current cell selection.
type SelectionState struct {
	// Cells is exactly the rectangular fill of Range when Range is set.
	Cells CellSet
	Range *SelectionRange
	// Selecting is true only during an in-progress pointer drag.
	Selecting bool
}

// SearchState is the incremental search state. MatchIndex is -1 when there
// is no current match.
type SearchState struct {
	Query      string
	Matches    []CellPosition
	MatchIndex int
	Open       bool
}

// PasteDialogState pauses an overflowing paste until the user confirms
// appending rows. Text retains the clipboard content so confirmation can
// resume without re-reading the clipboard.
type PasteDialogState struct {
	Open       bool
	RowsNeeded int
	Text       string
}

// ContextMenuState anchors the context menu at screen coordinates.
type ContextMenuState struct {
	Open bool
	X    int
	Y    int
}

// State is one immutable snapshot of the interaction store. Maps and slices
// inside a snapshot are shared copy-on-write structures: consumers must
// treat them as read-only.
type State struct {
	Focused *CellPosition
	// Editing is non-nil only while a cell edit is active; it always equals
	// Focused then.
	Editing      *CellPosition
	Selection    SelectionState
	SelectedRows map[int]struct{}
	// Cut marks cells pending clearing after a successful paste.
	Cut         CellSet
	Search      SearchState
	PasteDialog PasteDialogState
	ContextMenu ContextMenuState
	RowHeight   int
}

// IsSelected reports whether the cell is in the current selection.
func (st State) IsSelected(row int, columnID string) bool {
	return st.Selection.Cells.Has(Key(row, columnID))
}

// IsCut reports whether the cell carries a cut marker.
func (st State) IsCut(row int, columnID string) bool {
	return st.Cut.Has(Key(row, columnID))
}

// IsFocused reports whether the cell has keyboard focus.
func (st State) IsFocused(row int, columnID string) bool {
	return st.Focused != nil && st.Focused.Row == row && st.Focused.ColumnID == columnID
}

// IsEditing reports whether the cell is in edit mode.
func (st State) IsEditing(row int, columnID string) bool {
	return st.Editing != nil && st.Editing.Row == row && st.Editing.ColumnID == columnID
}

// ActiveMatch returns the current search match, if any.
func (st State) ActiveMatch() (CellPosition, bool) {
	s := st.Search
	if s.MatchIndex < 0 || s.MatchIndex >= len(s.Matches) {
		return CellPosition{}, false
	}
	return s.Matches[s.MatchIndex], true
}

// IsMatch reports whether the cell is a search match.
func (st State) IsMatch(row int, columnID string) bool {
	for _, m := range st.Search.Matches {
		if m.Row == row && m.ColumnID == columnID {
			return true
		}
	}
	return false
}

func (p CellPosition) String() string {
	return fmt.Sprintf("(%d,%s)", p.Row, p.ColumnID)
}

func samePos(a, b *CellPosition) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func sameRange(a, b *SelectionRange) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
