package table

import (
	"testing"

	"gridctl/internal/grid"
)

func TestNormalize_FillsDefaults(t *testing.T) {
	doc := &Document{
		Columns: []grid.Column{
			{ID: " a "},
			{ID: "b", Name: "B", Variant: grid.VariantSelect, Options: []string{" x ", "", "y"}},
		},
		Rows: []map[string]any{nil, {"a": "v"}},
	}
	if err := doc.Normalize(); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if doc.Name != "untitled" {
		t.Fatalf("name = %q", doc.Name)
	}
	c := doc.Columns[0]
	if c.ID != "a" || c.Name != "a" || c.Variant != grid.VariantText {
		t.Fatalf("column 0 = %+v", c)
	}
	if opts := doc.Columns[1].Options; len(opts) != 2 || opts[0] != "x" || opts[1] != "y" {
		t.Fatalf("options = %v", opts)
	}
	if doc.Rows[0] == nil {
		t.Fatal("nil row not replaced")
	}
}

func TestNormalize_RejectsBadColumns(t *testing.T) {
	if err := (&Document{Columns: []grid.Column{{ID: "  "}}}).Normalize(); err == nil {
		t.Fatal("empty id accepted")
	}
	dup := &Document{Columns: []grid.Column{{ID: "a"}, {ID: "a"}}}
	if err := dup.Normalize(); err == nil {
		t.Fatal("duplicate id accepted")
	}
}

func TestEmptyRow_UsesVariantEmptyValues(t *testing.T) {
	doc := &Document{Columns: []grid.Column{
		{ID: "t", Variant: grid.VariantText},
		{ID: "n", Variant: grid.VariantNumber},
		{ID: "c", Variant: grid.VariantCheckbox},
		{ID: "m", Variant: grid.VariantMultiSelect},
	}}
	row := doc.EmptyRow()
	if row["t"] != "" || row["n"] != nil || row["c"] != false {
		t.Fatalf("row = %v", row)
	}
	if m, ok := row["m"].([]string); !ok || len(m) != 0 {
		t.Fatalf("multiselect empty = %v", row["m"])
	}
}
