package grid

import (
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"
)

// EmptyValue returns the value a cleared cell of the variant holds.
func EmptyValue(v Variant) any {
	switch v {
	case VariantNumber, VariantDate:
		return nil
	case VariantCheckbox:
		return false
	case VariantMultiSelect:
		return []string{}
	case VariantFile:
		return []FileRef{}
	default:
		return ""
	}
}

// encodeCell renders a cell value for the clipboard per the column variant:
// JSON for file and multi-valued cells, RFC 3339 for dates, plain string
// coercion otherwise. Nil always encodes to the empty string.
func encodeCell(val any, col Column) string {
	if val == nil {
		return ""
	}
	switch col.Variant {
	case VariantFile, VariantMultiSelect:
		b, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(b)
	case VariantDate:
		if t, ok := asTime(val); ok {
			return t.Format(time.RFC3339)
		}
		return stringify(val)
	default:
		return stringify(val)
	}
}

// stringify is the default clipboard/search coercion of a cell value.
func stringify(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case time.Time:
		return v.Format(time.RFC3339)
	case []string:
		return strings.Join(v, ", ")
	case []FileRef:
		names := make([]string, 0, len(v))
		for _, f := range v {
			names = append(names, f.Name)
		}
		return strings.Join(names, ", ")
	default:
		return fmt.Sprintf("%v", val)
	}
}

// asTime coerces the values a date cell may hold after JSON decoding.
func asTime(val any) (time.Time, bool) {
	switch v := val.(type) {
	case time.Time:
		return v, true
	case string:
		return parseDate(v)
	}
	return time.Time{}, false
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseLeadingFloat mimics lenient numeric parsing: a leading numeric
// prefix is accepted, anything after it ignored ("12.5kg" -> 12.5).
func parseLeadingFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, true
	}
	end := 0
	seenDigit, seenDot := false, false
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			seenDigit = true
		case (r == '+' || r == '-') && i == 0:
		case r == '.' && !seenDot:
			seenDot = true
		default:
			goto done
		}
		end = i + 1
	}
done:
	if !seenDigit {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

var truthyWords = map[string]bool{"true": true, "1": true, "yes": true, "checked": true}
var falsyWords = map[string]bool{"false": true, "0": true, "no": true, "unchecked": true}

// looksLikeDomain accepts bare domains pasted without a scheme.
var looksLikeDomain = regexp.MustCompile(`^[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)+([/?#][^\s]*)?$`)

// matchOption resolves pasted text against a select column's option list:
// exact case-insensitive match first, then a fuzzy fallback.
func matchOption(text string, options []string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	for _, o := range options {
		if strings.EqualFold(o, text) {
			return o, true
		}
	}
	if ms := fuzzy.Find(text, options); len(ms) > 0 {
		return options[ms[0].Index], true
	}
	return "", false
}

// parseCell coerces pasted text to the column's variant. skip reports that
// the text failed validation; skipped cells are excluded from the update
// batch and counted separately.
func parseCell(text string, col Column) (val any, skip bool) {
	trimmed := strings.TrimSpace(text)

	switch col.Variant {
	case VariantNumber:
		if trimmed == "" {
			return nil, false
		}
		f, ok := parseLeadingFloat(trimmed)
		if !ok {
			return nil, true
		}
		return f, false

	case VariantCheckbox:
		if trimmed == "" {
			return false, false
		}
		w := strings.ToLower(trimmed)
		if truthyWords[w] {
			return true, false
		}
		if falsyWords[w] {
			return false, false
		}
		return nil, true

	case VariantDate:
		if trimmed == "" {
			return nil, false
		}
		t, ok := parseDate(trimmed)
		if !ok {
			return nil, true
		}
		return t.Format(time.RFC3339), false

	case VariantSelect:
		if trimmed == "" {
			return "", false
		}
		o, ok := matchOption(trimmed, col.Options)
		if !ok {
			return nil, true
		}
		return o, false

	case VariantMultiSelect:
		return parseMultiSelect(trimmed, col.Options)

	case VariantFile:
		return parseFileCell(trimmed)

	case VariantURL:
		if trimmed == "" {
			return "", false
		}
		// Structured-looking input is never a URL.
		if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
			return nil, true
		}
		if u, err := url.Parse(trimmed); err == nil && u.IsAbs() && u.Host != "" {
			return trimmed, false
		}
		if looksLikeDomain.MatchString(trimmed) {
			return trimmed, false
		}
		return nil, true

	default:
		return parseTextCell(trimmed), false
	}
}

// parseMultiSelect reads a JSON string array, falling back to comma
// splitting, and matches every entry against the option list. The matched
// entries form the value; the cell is skipped when any entry fails to
// match while the input was non-empty.
func parseMultiSelect(text string, options []string) (any, bool) {
	if text == "" {
		return []string{}, false
	}
	var parts []string
	if strings.HasPrefix(text, "[") {
		if err := json.Unmarshal([]byte(text), &parts); err != nil {
			parts = nil
		}
	}
	if parts == nil {
		for _, p := range strings.Split(text, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
	}
	matched := make([]string, 0, len(parts))
	failed := false
	for _, p := range parts {
		if o, ok := matchOption(p, options); ok {
			matched = append(matched, o)
		} else {
			failed = true
		}
	}
	if failed || len(parts) == 0 {
		return nil, true
	}
	return matched, false
}

// parseFileCell accepts a JSON array of file records, filtered to
// well-formed ones. Non-array input, or an array with malformed elements,
// skips the cell.
func parseFileCell(text string) (any, bool) {
	if text == "" {
		return []FileRef{}, false
	}
	if !strings.HasPrefix(text, "[") {
		return nil, true
	}
	var refs []FileRef
	if err := json.Unmarshal([]byte(text), &refs); err != nil {
		return nil, true
	}
	kept := make([]FileRef, 0, len(refs))
	for _, r := range refs {
		if r.Name != "" && r.URL != "" {
			kept = append(kept, r)
		}
	}
	if len(kept) != len(refs) {
		return nil, true
	}
	return kept, false
}

// parseTextCell normalizes pasted text for a plain text column: ISO dates
// reformat to a short date string, and JSON-looking payloads are summarized
// instead of stored raw. Text cells never skip.
func parseTextCell(text string) string {
	if text == "" {
		return ""
	}
	if isoish(text) {
		if t, ok := parseDate(text); ok {
			return t.Format("1/2/2006")
		}
	}
	if strings.HasPrefix(text, "[") || strings.HasPrefix(text, "{") {
		if s, ok := summarizeJSON(text); ok {
			return s
		}
	}
	return text
}

// isoish cheaply recognizes ISO-8601-looking strings (YYYY-MM-DD...).
func isoish(s string) bool {
	if len(s) < 10 {
		return false
	}
	for i, r := range s[:10] {
		switch i {
		case 4, 7:
			if r != '-' {
				return false
			}
		default:
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}

// summarizeJSON renders a structured clipboard payload as display text:
// file arrays join their names, string arrays join their entries, booleans
// become Checked/Unchecked.
func summarizeJSON(text string) (string, bool) {
	var refs []FileRef
	if err := json.Unmarshal([]byte(text), &refs); err == nil && len(refs) > 0 && refs[0].Name != "" {
		names := make([]string, 0, len(refs))
		for _, r := range refs {
			names = append(names, r.Name)
		}
		return strings.Join(names, ", "), true
	}
	var arr []string
	if err := json.Unmarshal([]byte(text), &arr); err == nil {
		return strings.Join(arr, ", "), true
	}
	var b bool
	if err := json.Unmarshal([]byte(text), &b); err == nil {
		if b {
			return "Checked", true
		}
		return "Unchecked", true
	}
	return "", false
}
