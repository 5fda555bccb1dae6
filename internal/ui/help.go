package ui

import "gridctl/internal/table"

// cellEditText seeds the editor when a cell enters edit mode.
func cellEditText(v *table.View, row int, colID string) string {
	return table.CellText(v.CellValue(row, colID))
}

const helpMarkdown = `# gridctl

Navigate with the arrow keys. Home/End jump within the row, PgUp/PgDn move
a page, Alt+←/→ page across columns, Ctrl+Home/End jump to the corners.

## Editing

| Key | Action |
|---|---|
| Enter / F2 | edit the focused cell |
| Enter (while editing) | save and move down |
| Tab / Shift+Tab (while editing) | save and move right / left |
| Esc (while editing) | discard |
| Delete / Backspace | clear the selected cells |
| Shift+Enter | append a row |
| Ctrl+Backspace / Ctrl+Delete / Ctrl+H | delete the selected row(s) |

## Selection and clipboard

| Key | Action |
|---|---|
| Shift+arrows | extend the selection |
| Ctrl+Shift+arrows | extend to the table edge |
| Ctrl+A | select everything |
| Ctrl+C / Ctrl+X / Ctrl+V | copy / cut / paste |
| Esc | clear the selection, then blur |

Pasted text is split on tabs and newlines. Each cell is coerced to its
column's type; values the column rejects keep the cell unchanged. A paste
that runs past the last row offers to append the missing rows.

## Search

Ctrl+F opens the search bar. Enter and Shift+Enter step through matches;
Esc closes and keeps the active match focused.

Quit with Ctrl+Q.
`
