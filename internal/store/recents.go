package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// maxRecents caps the recently-opened document list.
const maxRecents = 15

// LoadRecents reads a JSON string array of document paths from path.
// Missing file yields an empty list without error.
func LoadRecents(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	var arr []string
	if err := json.Unmarshal(b, &arr); err != nil {
		return nil, err
	}
	return dedupe(arr), nil
}

// SaveRecents writes the list to path, creating parent dirs. Order is
// preserved (most recent first) and the list is capped.
func SaveRecents(path string, list []string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	arr := dedupe(list)
	if len(arr) > maxRecents {
		arr = arr[:maxRecents]
	}
	b, err := json.MarshalIndent(arr, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Touch moves doc to the front of the recents list at path and saves.
func Touch(path, doc string) error {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return nil
	}
	cur, err := LoadRecents(path)
	if err != nil {
		return err
	}
	next := make([]string, 0, len(cur)+1)
	next = append(next, doc)
	for _, s := range cur {
		if s != doc {
			next = append(next, s)
		}
	}
	return SaveRecents(path, next)
}

func dedupe(in []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
