// Package table is the row/column model behind gridctl: JSON table
// documents, a sorted/filtered view implementing the engine's RowModel,
// and a mutator translating visual indices back to records.
package table

import (
	"errors"
	"strings"

	"gridctl/internal/grid"
)

// Document is one table: its column declarations plus untyped row records
// keyed by column ID.
type Document struct {
	Name    string           `json:"name"`
	Columns []grid.Column    `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

// Normalize repairs a loaded document in place: blank or duplicate column
// IDs are rejected, rows get non-nil maps, select options are trimmed.
func (d *Document) Normalize() error {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		d.Name = "untitled"
	}
	seen := map[string]bool{}
	cols := d.Columns[:0]
	for _, c := range d.Columns {
		c.ID = strings.TrimSpace(c.ID)
		if c.ID == "" {
			return errors.New("column with empty id")
		}
		if seen[c.ID] {
			return errors.New("duplicate column id: " + c.ID)
		}
		seen[c.ID] = true
		if strings.TrimSpace(c.Name) == "" {
			c.Name = c.ID
		}
		if c.Variant == "" {
			c.Variant = grid.VariantText
		}
		opts := c.Options[:0]
		for _, o := range c.Options {
			if o = strings.TrimSpace(o); o != "" {
				opts = append(opts, o)
			}
		}
		c.Options = opts
		cols = append(cols, c)
	}
	d.Columns = cols
	for i, r := range d.Rows {
		if r == nil {
			d.Rows[i] = map[string]any{}
		}
	}
	return nil
}

// Column resolves a column declaration by ID.
func (d *Document) Column(id string) (grid.Column, bool) {
	for _, c := range d.Columns {
		if c.ID == id {
			return c, true
		}
	}
	return grid.Column{}, false
}

// EmptyRow returns a fresh record with each column's declared empty value.
func (d *Document) EmptyRow() map[string]any {
	row := make(map[string]any, len(d.Columns))
	for _, c := range d.Columns {
		row[c.ID] = grid.EmptyValue(c.Variant)
	}
	return row
}
