package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	runewidth "github.com/mattn/go-runewidth"

	"gridctl/internal/grid"
	"gridctl/internal/table"
	appver "gridctl/internal/version"
)

const (
	minColWidth = 6
	maxColWidth = 24
	gutterWidth = 4
)

func (m model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	if m.width == 0 {
		return "loading…"
	}

	st := m.eng.State()

	if m.showHelp {
		return zone.Scan(m.renderHelp())
	}
	if st.PasteDialog.Open {
		return zone.Scan(m.renderPasteDialog(st))
	}

	b := &strings.Builder{}
	b.WriteString(m.renderTitle())
	b.WriteString("\n")
	if st.Search.Open {
		b.WriteString(m.renderSearchBar(st))
		b.WriteString("\n")
	}
	b.WriteString(m.renderGrid(st))
	if st.ContextMenu.Open {
		b.WriteString(m.renderContextMenu(st))
		b.WriteString("\n")
	}
	b.WriteString(m.renderStatusBar(st))
	return zone.Scan(b.String())
}

func (m model) renderTitle() string {
	name := m.view.Document().Name
	dims := fmt.Sprintf("%d×%d", m.view.RowCount(), len(m.view.Columns()))
	left := ChipKeyStyle().Render("gridctl") + " " +
		lipgloss.NewStyle().Bold(true).Foreground(Vitesse.Text).Render(name)
	right := lipgloss.NewStyle().Foreground(Vitesse.Muted).Render(dims)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m model) renderSearchBar(st grid.State) string {
	bar := m.search.View()
	if n := len(st.Search.Matches); n > 0 {
		bar += lipgloss.NewStyle().Foreground(Vitesse.Secondary).
			Render(fmt.Sprintf("  %d/%d", st.Search.MatchIndex+1, n))
	} else if strings.TrimSpace(st.Search.Query) != "" {
		bar += warningStyle.Render("  no matches")
	}
	return bar
}

// renderGrid paints the header row and the mounted slice of rows.
func (m model) renderGrid(st grid.State) string {
	cols := m.view.Columns()
	if len(cols) == 0 {
		return lipgloss.NewStyle().Foreground(Vitesse.Muted).Render("  (no columns)") + "\n"
	}
	_, colOff := m.win.offsets()
	start, end := m.win.MountedRows()

	visCols := m.visibleColumns(cols, colOff)
	widths := m.columnWidths(cols, visCols, start, end)

	b := &strings.Builder{}

	// header
	b.WriteString(strings.Repeat(" ", gutterWidth))
	for _, ci := range visCols {
		col := cols[ci]
		sty := headerStyle
		if columnFullySelected(st, col.ID, m.view.RowCount()) {
			sty = headerSelStyle
		}
		cell := sty.Render(pad(col.Name, widths[ci]))
		b.WriteString(zone.Mark("head:"+col.ID, cell))
		b.WriteString(" ")
	}
	b.WriteString("\n")

	for r := start; r < end; r++ {
		b.WriteString(m.renderRow(st, cols, visCols, widths, r))
		b.WriteString("\n")
	}
	// pad short tables so the status bar stays put
	for i := end - start; i < m.gridRows(); i++ {
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) renderRow(st grid.State, cols []grid.Column, visCols []int, widths map[int]int, r int) string {
	b := &strings.Builder{}
	_, rowSelected := st.SelectedRows[r]

	gutter := fmt.Sprintf("%*d ", gutterWidth-1, r+1)
	gsty := lipgloss.NewStyle().Foreground(Vitesse.Muted)
	if rowSelected {
		gsty = lipgloss.NewStyle().Bold(true).Foreground(Vitesse.OnAccent).Background(Vitesse.Primary)
	}
	b.WriteString(zone.Mark(fmt.Sprintf("row:%d", r), gsty.Render(gutter)))

	for _, ci := range visCols {
		col := cols[ci]
		w := widths[ci]
		var cell string
		if st.IsEditing(r, col.ID) {
			cell = pad(m.editor.View(), w)
		} else {
			text := table.CellText(m.view.CellValue(r, col.ID))
			cell = m.cellStyleFor(st, r, col.ID, rowSelected).Render(pad(text, w))
		}
		b.WriteString(zone.Mark(fmt.Sprintf("cell:%d:%s", r, col.ID), cell))
		b.WriteString(" ")
	}
	return b.String()
}

// cellStyleFor layers interaction flags: active match > focus > match >
// cut > selection > row selection > plain.
func (m model) cellStyleFor(st grid.State, row int, colID string, rowSelected bool) lipgloss.Style {
	if p, ok := st.ActiveMatch(); ok && p.Row == row && p.ColumnID == colID {
		return activeMatchSt
	}
	if st.IsFocused(row, colID) {
		return focusedStyle
	}
	if st.IsMatch(row, colID) {
		return matchStyle
	}
	if st.IsCut(row, colID) {
		return cutStyle
	}
	if st.IsSelected(row, colID) {
		return selectedStyle
	}
	if rowSelected {
		return rowSelStyle
	}
	return cellStyle
}

func (m model) renderStatusBar(st grid.State) string {
	var left string
	switch {
	case m.notice != "":
		sty := noticeStyle
		if m.noticeWarn {
			sty = warningStyle
		}
		left = sty.Render(m.notice)
	case st.Focused != nil:
		ci := columnIndexOf(m.view.Columns(), st.Focused.ColumnID)
		left = fmt.Sprintf("r%d c%d", st.Focused.Row+1, ci+1)
	default:
		left = "? help"
	}
	right := "v" + appver.AppVersion
	if m.eng.ReadOnly() {
		right = "read-only · " + right
	}
	base := StatusBarBase()
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return base.Render(" " + left + strings.Repeat(" ", gap) + right + " ")
}

func (m model) renderPasteDialog(st grid.State) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(Vitesse.Yellow).
		Render("Paste exceeds the table")
	body := fmt.Sprintf("The pasted block needs %d more row(s).", st.PasteDialog.RowsNeeded)
	buttons := zone.Mark("dialog.confirm", ChipKeyStyle().Render("Enter · add rows")) +
		"  " +
		zone.Mark("dialog.cancel", lipgloss.NewStyle().
			Foreground(Vitesse.Secondary).Background(Vitesse.BgSoft).Padding(0, 1).
			Render("Esc · cancel"))
	box := overlayStyle.Render(title + "\n\n" + body + "\n\n" + buttons)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// context menu actions, in render order.
var menuActions = []struct {
	id    string
	label string
	needs string // "write" gates on a writable grid
}{
	{"menu.copy", "Copy", ""},
	{"menu.cut", "Cut", "write"},
	{"menu.paste", "Paste", "write"},
	{"menu.clear", "Clear cells", "write"},
	{"menu.delrows", "Delete row(s)", "write"},
}

func (m model) renderContextMenu(st grid.State) string {
	items := make([]string, 0, len(menuActions))
	for _, a := range menuActions {
		sty := menuItemStyle
		if a.needs == "write" && m.eng.ReadOnly() {
			sty = menuItemDisabled
		}
		items = append(items, zone.Mark(a.id, sty.Render(a.label)))
	}
	return menuStyle.Render(strings.Join(items, "\n"))
}

func (m model) renderHelp() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(Vitesse.Primary).Render("Keybindings")
	box := overlayStyle.Render(title + "\n\n" + m.helpVP.View() + "\n\n" + m.help.View(m.keys))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// visibleColumns returns the column indices that fit the width, starting
// at colOff.
func (m model) visibleColumns(cols []grid.Column, colOff int) []int {
	avail := m.width - gutterWidth
	out := make([]int, 0, len(cols))
	for ci := colOff; ci < len(cols) && avail > 0; ci++ {
		out = append(out, ci)
		avail -= minColWidth + 1
	}
	if len(out) == 0 && len(cols) > 0 {
		out = append(out, clampInt(colOff, 0, len(cols)-1))
	}
	return out
}

// columnWidths sizes each visible column to its content across the
// mounted rows, bounded.
func (m model) columnWidths(cols []grid.Column, visCols []int, start, end int) map[int]int {
	widths := make(map[int]int, len(visCols))
	for _, ci := range visCols {
		col := cols[ci]
		w := runewidth.StringWidth(col.Name)
		for r := start; r < end; r++ {
			cw := runewidth.StringWidth(table.CellText(m.view.CellValue(r, col.ID)))
			if cw > w {
				w = cw
			}
		}
		widths[ci] = clampInt(w, minColWidth, maxColWidth)
	}
	return widths
}

// gridRows is the number of data lines the grid body occupies.
func (m model) gridRows() int {
	h := m.height - 3 // title, header, status bar
	if m.eng.State().Search.Open {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}

func pad(s string, w int) string {
	if runewidth.StringWidth(s) > w {
		return runewidth.Truncate(s, w, "…")
	}
	return s + strings.Repeat(" ", w-runewidth.StringWidth(s))
}

func columnFullySelected(st grid.State, colID string, rows int) bool {
	if rows == 0 || st.Selection.Range == nil {
		return false
	}
	r := st.Selection.Range
	lo, hi := r.Start.Row, r.End.Row
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo != 0 || hi != rows-1 {
		return false
	}
	return st.IsSelected(0, colID)
}

func columnIndexOf(cols []grid.Column, id string) int {
	for i, c := range cols {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
