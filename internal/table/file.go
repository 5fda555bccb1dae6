package table

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gridctl/internal/config"
	"gridctl/internal/grid"
)

// Ext is the table document file extension.
const Ext = ".grid.json"

// Load reads and normalizes a table document. A missing file yields an
// empty document named after the file, without error.
func Load(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Document{Name: DocumentName(path), Rows: []map[string]any{}}, nil
		}
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	if err := doc.Normalize(); err != nil {
		return nil, err
	}
	decodeRows(&doc)
	return &doc, nil
}

// Save normalizes and writes doc to path, creating parent directories.
func Save(path string, doc *Document) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("empty path")
	}
	if err := doc.Normalize(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// DefaultPath returns the managed location for a document name.
func DefaultPath(name string) (string, error) {
	dir, err := config.TablesDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name+Ext), nil
}

// DocumentName derives a display name from a document path.
func DocumentName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, Ext)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// List returns the managed table document paths, sorted by name.
func List() ([]string, error) {
	dir, err := config.TablesDir()
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Ext) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// decodeRows re-types JSON-decoded cell values to the shapes the engine
// and the coercion layer expect: string slices for multi-selects, FileRef
// slices for file cells.
func decodeRows(doc *Document) {
	for _, col := range doc.Columns {
		switch col.Variant {
		case grid.VariantMultiSelect:
			for _, rec := range doc.Rows {
				if raw, ok := rec[col.ID].([]any); ok {
					vals := make([]string, 0, len(raw))
					for _, e := range raw {
						if s, ok := e.(string); ok {
							vals = append(vals, s)
						}
					}
					rec[col.ID] = vals
				}
			}
		case grid.VariantFile:
			for _, rec := range doc.Rows {
				raw, ok := rec[col.ID]
				if !ok || raw == nil {
					continue
				}
				b, err := json.Marshal(raw)
				if err != nil {
					continue
				}
				var refs []grid.FileRef
				if err := json.Unmarshal(b, &refs); err != nil {
					continue
				}
				rec[col.ID] = refs
			}
		}
	}
}
