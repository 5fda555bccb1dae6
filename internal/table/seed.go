package table

import (
	"gridctl/internal/grid"
)

// Seed builds the demo table shown on first run. It exercises every
// column variant so the editor's coercion and rendering paths are all
// reachable from a fresh install.
func Seed() *Document {
	return &Document{
		Name: "tasks",
		Columns: []grid.Column{
			{ID: "title", Name: "Title", Variant: grid.VariantText},
			{ID: "estimate", Name: "Estimate (h)", Variant: grid.VariantNumber},
			{ID: "done", Name: "Done", Variant: grid.VariantCheckbox},
			{ID: "due", Name: "Due", Variant: grid.VariantDate},
			{ID: "priority", Name: "Priority", Variant: grid.VariantSelect,
				Options: []string{"Low", "Medium", "High"}},
			{ID: "tags", Name: "Tags", Variant: grid.VariantMultiSelect,
				Options: []string{"frontend", "backend", "infra", "docs"}},
			{ID: "link", Name: "Link", Variant: grid.VariantURL},
			{ID: "attachments", Name: "Attachments", Variant: grid.VariantFile},
		},
		Rows: []map[string]any{
			{
				"title":    "Wire up the status bar",
				"estimate": 3.0,
				"done":     false,
				"due":      "2026-09-15T00:00:00Z",
				"priority": "High",
				"tags":     []string{"frontend"},
				"link":     "https://github.com/charmbracelet/lipgloss",
				"attachments": []grid.FileRef{
					{Name: "mockup.png", URL: "https://example.com/mockup.png", Size: 48213},
				},
			},
			{
				"title":       "Cache the column widths",
				"estimate":    1.5,
				"done":        true,
				"due":         "2026-09-01T00:00:00Z",
				"priority":    "Medium",
				"tags":        []string{"frontend", "infra"},
				"link":        "https://github.com/mattn/go-runewidth",
				"attachments": []grid.FileRef{},
			},
			{
				"title":       "Document the paste rules",
				"estimate":    2.0,
				"done":        false,
				"due":         "2026-09-22T00:00:00Z",
				"priority":    "Low",
				"tags":        []string{"docs"},
				"link":        "",
				"attachments": []grid.FileRef{},
			},
			{
				"title":       "Profile the reload path",
				"estimate":    5.0,
				"done":        false,
				"due":         "2026-10-02T00:00:00Z",
				"priority":    "High",
				"tags":        []string{"backend", "infra"},
				"link":        "https://github.com/fsnotify/fsnotify",
				"attachments": []grid.FileRef{},
			},
			{
				"title":       "Trim the demo data",
				"estimate":    0.5,
				"done":        true,
				"due":         "2026-08-28T00:00:00Z",
				"priority":    "Low",
				"tags":        []string{},
				"link":        "",
				"attachments": []grid.FileRef{},
			},
		},
	}
}
