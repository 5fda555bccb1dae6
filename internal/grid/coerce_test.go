package grid

import (
	"testing"
	"time"
)

func TestParseCell_Number(t *testing.T) {
	col := Column{ID: "n", Variant: VariantNumber}
	cases := []struct {
		in   string
		want any
		skip bool
	}{
		{"12.5", 12.5, false},
		{"-3", -3.0, false},
		{"12.5kg", 12.5, false},
		{"", nil, false},
		{"abc", nil, true},
		{"--2", nil, true},
	}
	for _, tc := range cases {
		got, skip := parseCell(tc.in, col)
		if skip != tc.skip {
			t.Fatalf("%q: skip = %v, want %v", tc.in, skip, tc.skip)
		}
		if !skip && got != tc.want {
			t.Fatalf("%q: value = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseCell_Checkbox(t *testing.T) {
	col := Column{ID: "d", Variant: VariantCheckbox}
	for _, s := range []string{"true", "1", "yes", "checked", "YES", "Checked"} {
		v, skip := parseCell(s, col)
		if skip || v != true {
			t.Fatalf("%q should parse to true (skip=%v, v=%v)", s, skip, v)
		}
	}
	for _, s := range []string{"false", "0", "no", "unchecked", "No"} {
		v, skip := parseCell(s, col)
		if skip || v != false {
			t.Fatalf("%q should parse to false (skip=%v, v=%v)", s, skip, v)
		}
	}
	if _, skip := parseCell("maybe", col); !skip {
		t.Fatal(`"maybe" must be skipped`)
	}
	if v, skip := parseCell("", col); skip || v != false {
		t.Fatal("empty checkbox text must parse to false")
	}
}

func TestParseCell_Date(t *testing.T) {
	col := Column{ID: "d", Variant: VariantDate}
	v, skip := parseCell("2024-03-14", col)
	if skip {
		t.Fatal("ISO date skipped")
	}
	ts, _ := time.Parse(time.RFC3339, v.(string))
	if ts.Year() != 2024 || ts.Month() != time.March || ts.Day() != 14 {
		t.Fatalf("parsed %v", ts)
	}
	if _, skip := parseCell("not a date", col); !skip {
		t.Fatal("invalid date must be skipped")
	}
	if v, skip := parseCell("", col); skip || v != nil {
		t.Fatal("empty date text must parse to nil")
	}
}

func TestParseCell_Select(t *testing.T) {
	col := Column{ID: "s", Variant: VariantSelect, Options: []string{"High", "Medium", "Low"}}
	if v, skip := parseCell("high", col); skip || v != "High" {
		t.Fatalf("case-insensitive match failed: %v %v", v, skip)
	}
	if v, skip := parseCell("Hgh", col); skip || v != "High" {
		t.Fatalf("fuzzy match failed: %v %v", v, skip)
	}
	if _, skip := parseCell("urgent", col); !skip {
		t.Fatal("unmatched option must skip the cell")
	}
	if v, skip := parseCell("", col); skip || v != "" {
		t.Fatal("empty select text must parse to empty string")
	}
}

func TestParseCell_MultiSelect(t *testing.T) {
	col := Column{ID: "m", Variant: VariantMultiSelect, Options: []string{"red", "green", "blue"}}

	v, skip := parseCell(`["red","blue"]`, col)
	if skip {
		t.Fatal("valid JSON array skipped")
	}
	got := v.([]string)
	if len(got) != 2 || got[0] != "red" || got[1] != "blue" {
		t.Fatalf("parsed %v", got)
	}

	// comma fallback
	v, skip = parseCell("green, red", col)
	if skip || len(v.([]string)) != 2 {
		t.Fatalf("comma fallback parsed %v (skip=%v)", v, skip)
	}

	// any unmatched entry skips the whole cell, unlike a select where only
	// the single value can fail
	if _, skip = parseCell("red, purple", col); !skip {
		t.Fatal("partially-invalid multi-select must be skipped")
	}

	if v, skip = parseCell("", col); skip || len(v.([]string)) != 0 {
		t.Fatal("empty multi-select text must parse to empty list")
	}
}

func TestParseCell_File(t *testing.T) {
	col := Column{ID: "f", Variant: VariantFile}

	v, skip := parseCell(`[{"name":"a.txt","url":"https://x/a.txt"}]`, col)
	if skip {
		t.Fatal("valid file array skipped")
	}
	refs := v.([]FileRef)
	if len(refs) != 1 || refs[0].Name != "a.txt" {
		t.Fatalf("parsed %v", refs)
	}

	if _, skip = parseCell(`[{"name":"a.txt"}]`, col); !skip {
		t.Fatal("array with a malformed record must be skipped")
	}
	if _, skip = parseCell("just text", col); !skip {
		t.Fatal("non-array input must be skipped")
	}
	if v, skip = parseCell("", col); skip || len(v.([]FileRef)) != 0 {
		t.Fatal("empty file text must parse to empty list")
	}
}

func TestParseCell_URL(t *testing.T) {
	col := Column{ID: "u", Variant: VariantURL}
	for _, s := range []string{"https://example.com/x?y=1", "example.com", "sub.example.co.uk/path"} {
		if _, skip := parseCell(s, col); skip {
			t.Fatalf("%q should be accepted", s)
		}
	}
	for _, s := range []string{`{"a":1}`, `["x"]`, "not a url at all"} {
		if _, skip := parseCell(s, col); !skip {
			t.Fatalf("%q should be skipped", s)
		}
	}
	if v, skip := parseCell("", col); skip || v != "" {
		t.Fatal("empty url text must parse to empty string")
	}
}

func TestParseCell_TextNeverSkips(t *testing.T) {
	col := Column{ID: "t", Variant: VariantText}

	if v, _ := parseCell("2024-03-14T00:00:00Z", col); v != "3/14/2024" {
		t.Fatalf("ISO date reformatting got %v", v)
	}
	if v, _ := parseCell(`[{"name":"a.txt","url":"u"},{"name":"b.txt","url":"u"}]`, col); v != "a.txt, b.txt" {
		t.Fatalf("file summary got %v", v)
	}
	if v, _ := parseCell(`["x","y"]`, col); v != "x, y" {
		t.Fatalf("string-array summary got %v", v)
	}
	if v, _ := parseCell("plain text", col); v != "plain text" {
		t.Fatalf("plain text got %v", v)
	}
	if v, _ := parseCell("{broken json", col); v != "{broken json" {
		t.Fatalf("unparseable JSON-ish text got %v", v)
	}
}

func TestEmptyValue(t *testing.T) {
	if EmptyValue(VariantNumber) != nil || EmptyValue(VariantDate) != nil {
		t.Fatal("number/date empty value must be nil")
	}
	if EmptyValue(VariantCheckbox) != false {
		t.Fatal("checkbox empty value must be false")
	}
	if s := EmptyValue(VariantSelect); s != "" {
		t.Fatalf("select empty value = %v", s)
	}
	if l := EmptyValue(VariantMultiSelect).([]string); len(l) != 0 {
		t.Fatalf("multi-select empty value = %v", l)
	}
	if l := EmptyValue(VariantFile).([]FileRef); len(l) != 0 {
		t.Fatalf("file empty value = %v", l)
	}
}

func TestEncodeCell(t *testing.T) {
	if s := encodeCell(nil, Column{Variant: VariantText}); s != "" {
		t.Fatalf("nil encodes to %q", s)
	}
	if s := encodeCell([]string{"a", "b"}, Column{Variant: VariantMultiSelect}); s != `["a","b"]` {
		t.Fatalf("multi-select encodes to %q", s)
	}
	if s := encodeCell([]FileRef{{Name: "a", URL: "u"}}, Column{Variant: VariantFile}); s != `[{"name":"a","url":"u"}]` {
		t.Fatalf("file encodes to %q", s)
	}
	if s := encodeCell("2024-03-14", Column{Variant: VariantDate}); s != "2024-03-14T00:00:00Z" {
		t.Fatalf("date encodes to %q", s)
	}
	if s := encodeCell(12.5, Column{Variant: VariantNumber}); s != "12.5" {
		t.Fatalf("number encodes to %q", s)
	}
	if s := encodeCell(true, Column{Variant: VariantCheckbox}); s != "true" {
		t.Fatalf("checkbox encodes to %q", s)
	}
}
