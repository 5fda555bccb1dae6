package grid

import "testing"

func searchFixture(t *testing.T) (*Engine, *fakeRows, *fakeVirtualizer) {
	t.Helper()
	rows := newFakeRows(textColumns("name", "city"), 6)
	rows.set(0, "name", "Alice")
	rows.set(1, "city", "Dallas")
	rows.set(3, "name", "Alan")
	rows.set(5, "city", "Atlanta")
	virt := &fakeVirtualizer{start: 0, end: 6}
	e := New(Config{
		Rows:        rows,
		Virtualizer: virt,
		Options:     Options{SearchEnabled: true},
	})
	return e, rows, virt
}

func TestSearch_RowMajorMatches(t *testing.T) {
	e, _, virt := searchFixture(t)
	e.SetSearchOpen(true)
	e.Search("al")

	st := e.State().Search
	want := []CellPosition{
		{0, "name"},
		{1, "city"},
		{3, "name"},
	}
	if len(st.Matches) != len(want) {
		t.Fatalf("matches = %v", st.Matches)
	}
	for i, m := range st.Matches {
		if m != want[i] {
			t.Fatalf("match %d = %v, want %v", i, m, want[i])
		}
	}
	if st.MatchIndex != 0 {
		t.Fatalf("matchIndex = %d", st.MatchIndex)
	}
	// first match revealed at center
	if len(virt.scrolls) == 0 || virt.scrolls[0] != 0 || virt.aligns[0] != AlignCenter {
		t.Fatalf("scrolls = %v aligns = %v", virt.scrolls, virt.aligns)
	}
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	e, _, _ := searchFixture(t)
	e.Search("ATLAN")
	st := e.State().Search
	if len(st.Matches) != 1 || st.Matches[0] != (CellPosition{5, "city"}) {
		t.Fatalf("matches = %v", st.Matches)
	}
}

func TestSearch_BlankQueryClears(t *testing.T) {
	e, _, _ := searchFixture(t)
	e.Search("al")
	e.Search("   ")
	st := e.State().Search
	if len(st.Matches) != 0 || st.MatchIndex != -1 {
		t.Fatalf("search = %+v", st)
	}
}

func TestSearch_NoMatches(t *testing.T) {
	e, _, virt := searchFixture(t)
	e.Search("zzz")
	st := e.State().Search
	if len(st.Matches) != 0 || st.MatchIndex != -1 {
		t.Fatalf("search = %+v", st)
	}
	if len(virt.scrolls) != 0 {
		t.Fatal("no scroll without a match")
	}
}

func TestSearch_StepsCircularly(t *testing.T) {
	e, _, _ := searchFixture(t)
	e.Search("al")

	e.NextMatch()
	if idx := e.State().Search.MatchIndex; idx != 1 {
		t.Fatalf("matchIndex = %d, want 1", idx)
	}
	e.NextMatch()
	e.NextMatch() // wraps past the last match
	if idx := e.State().Search.MatchIndex; idx != 0 {
		t.Fatalf("matchIndex = %d, want 0 after wrap", idx)
	}
	e.PrevMatch() // wraps backwards
	if idx := e.State().Search.MatchIndex; idx != 2 {
		t.Fatalf("matchIndex = %d, want 2 after backward wrap", idx)
	}
}

func TestSearch_StepFocusesMatch(t *testing.T) {
	e, _, _ := searchFixture(t)
	e.SetSearchOpen(true)
	e.Search("al")
	e.NextMatch()
	st := e.State()
	if st.Focused == nil || *st.Focused != (CellPosition{1, "city"}) {
		t.Fatalf("focused = %v", st.Focused)
	}
}

func TestSearch_CloseKeepsActiveMatchFocused(t *testing.T) {
	e, _, _ := searchFixture(t)
	e.SetSearchOpen(true)
	e.Search("atlanta")
	e.SetSearchOpen(false)

	st := e.State()
	if st.Search.Open || st.Search.Query != "" || len(st.Search.Matches) != 0 {
		t.Fatalf("search not reset: %+v", st.Search)
	}
	if st.Focused == nil || *st.Focused != (CellPosition{5, "city"}) {
		t.Fatalf("focused = %v, want the active match", st.Focused)
	}
}

func TestSearch_DisabledIsInert(t *testing.T) {
	rows := newFakeRows(textColumns("a"), 2)
	rows.set(0, "a", "hit")
	e := New(Config{Rows: rows})
	e.SetSearchOpen(true)
	e.Search("hit")
	st := e.State().Search
	if st.Open || len(st.Matches) != 0 {
		t.Fatalf("search ran while disabled: %+v", st)
	}
}
