package grid

import "testing"

func TestCellKey_RoundTrip(t *testing.T) {
	k := Key(12, "col:with:colons")
	p, ok := k.Position()
	if !ok {
		t.Fatalf("decode failed for %q", k)
	}
	if p.Row != 12 || p.ColumnID != "col:with:colons" {
		t.Fatalf("decoded %+v", p)
	}
	if p.Key() != k {
		t.Fatalf("re-encoded %q, want %q", p.Key(), k)
	}
}

func TestCellKey_MalformedReportsFalse(t *testing.T) {
	for _, k := range []CellKey{"", "nocolon", ":a", "x:a", "-1:a"} {
		if _, ok := k.Position(); ok {
			t.Fatalf("decoded malformed key %q", k)
		}
	}
}
