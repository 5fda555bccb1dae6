package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	zone "github.com/lrstanley/bubblezone"

	"gridctl/internal/grid"
	"gridctl/internal/system"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.win.setSize(m.gridRows(), (msg.Width-gutterWidth)/(minColWidth+1))
		m.editor.Width = maxColWidth
		m.search.Width = minInt(48, msg.Width-8)
		m.help.Width = msg.Width
		if m.showHelp {
			m.sizeHelpViewport()
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case storeChangedMsg:
		m.syncWidgets()
		m.syncExtent()
		return m, storeSubscribeCmd(m.storeCh)

	case noticeMsg:
		m.notice = msg.text
		m.noticeWarn = msg.warn
		m.noticeSeq++
		seq := m.noticeSeq
		expire := tea.Tick(4*time.Second, func(time.Time) tea.Msg {
			return noticeExpiredMsg{seq: seq}
		})
		return m, tea.Batch(expire, noticeSubscribeCmd(m.notifier.ch))

	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
			m.noticeWarn = false
		}
		return m, nil

	case watchStartedMsg:
		m.watcher = msg.w
		m.watchCh = msg.ch
		return m, watchSubscribeCmd(m.watchCh)

	case fileChangedMsg:
		return m, tea.Batch(reloadDocCmd(m.path), watchSubscribeCmd(m.watchCh))

	case docReloadedMsg:
		if msg.err != nil {
			system.Logger.Warn("reload failed", "path", m.path, "err", msg.err)
			m.notice = "Couldn't reload the document"
			m.noticeWarn = true
			return m, nil
		}
		// External edits invalidate every visual index; drop the
		// interaction state rather than guessing a remap.
		m.view.Replace(msg.doc)
		m.eng.BlurCell()
		m.eng.ClearSelection()
		m.syncExtent()
		m.notice = "Reloaded from disk"
		m.noticeWarn = false
		return m, nil
	}
	return m, nil
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+q" {
		m.quitting = true
		if m.watcher != nil {
			_ = m.watcher.Close()
		}
		return m, tea.Quit
	}

	if m.showHelp {
		switch key {
		case "esc", "?", "q":
			m.showHelp = false
			return m, nil
		}
		var cmd tea.Cmd
		m.helpVP, cmd = m.helpVP.Update(msg)
		return m, cmd
	}

	st := m.eng.State()

	if st.PasteDialog.Open {
		switch key {
		case "enter":
			return m, engineCmd(m.eng.ConfirmPasteDialog)
		case "esc":
			m.eng.CancelPasteDialog()
			return m, nil
		}
		return m, nil
	}

	if st.ContextMenu.Open {
		m.eng.Store().SetContextMenu(grid.ContextMenuState{})
		return m, nil
	}

	// the engine owns grid shortcuts; unconsumed keys fall through to
	// whichever input is active
	if m.eng.HandleKey(key) {
		return m, nil
	}

	if st.Editing != nil {
		return m.updateEditorKey(msg, key, st)
	}

	if st.Search.Open {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.eng.Search(m.search.Value())
		return m, cmd
	}

	switch key {
	case "enter", "f2":
		if st.Focused != nil && !m.eng.ReadOnly() {
			m.eng.StartEditing(st.Focused.Row, st.Focused.ColumnID)
		}
		return m, nil
	case "?":
		m.openHelp()
		return m, nil
	}
	return m, nil
}

func (m model) updateEditorKey(msg tea.KeyMsg, key string, st grid.State) (tea.Model, tea.Cmd) {
	switch key {
	case "enter":
		text := m.editor.Value()
		return m, engineCmd(func(ctx context.Context) {
			m.eng.CommitEdit(ctx, text, grid.StopEditOptions{MoveToNextRow: true})
		})
	case "tab", "shift+tab":
		dir := grid.DirRight
		if key == "shift+tab" {
			dir = grid.DirLeft
		}
		text := m.editor.Value()
		return m, engineCmd(func(ctx context.Context) {
			m.eng.CommitEdit(ctx, text, grid.StopEditOptions{Direction: dir})
		})
	case "esc":
		m.eng.StopEditing(grid.StopEditOptions{})
		return m, nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.win.scrollRows(-3)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.win.scrollRows(3)
		return m, nil
	}

	st := m.eng.State()

	if st.PasteDialog.Open {
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			if zone.Get("dialog.confirm").InBounds(msg) {
				return m, engineCmd(m.eng.ConfirmPasteDialog)
			}
			if zone.Get("dialog.cancel").InBounds(msg) {
				m.eng.CancelPasteDialog()
			}
		}
		return m, nil
	}

	if st.ContextMenu.Open {
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			m.eng.Store().SetContextMenu(grid.ContextMenuState{})
			return m, m.menuActionAt(msg)
		}
		return m, nil
	}

	switch {
	case msg.Button == tea.MouseButtonRight && msg.Action == tea.MouseActionRelease:
		if p, ok := m.cellAt(msg); ok {
			if !st.IsSelected(p.Row, p.ColumnID) {
				m.eng.FocusCell(p.Row, p.ColumnID)
			}
			m.eng.Store().SetContextMenu(grid.ContextMenuState{Open: true, X: msg.X, Y: msg.Y})
		}
		return m, nil

	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		for _, col := range m.view.Columns() {
			if zone.Get("head:" + col.ID).InBounds(msg) {
				m.eng.SelectColumn(col.ID)
				return m, nil
			}
		}
		start, end := m.win.MountedRows()
		for r := start; r < end; r++ {
			if zone.Get(fmt.Sprintf("row:%d", r)).InBounds(msg) {
				_, selected := st.SelectedRows[r]
				m.eng.SelectRow(r, !selected)
				return m, nil
			}
		}
		if p, ok := m.cellAt(msg); ok {
			m.dragging = true
			m.eng.FocusCell(p.Row, p.ColumnID)
			m.eng.SelectRange(p, p, true)
		}
		return m, nil

	case msg.Action == tea.MouseActionMotion && m.dragging:
		if p, ok := m.cellAt(msg); ok {
			if r := m.eng.State().Selection.Range; r != nil {
				m.eng.SelectRange(r.Start, p, true)
			}
		}
		return m, nil

	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease:
		if m.dragging {
			m.dragging = false
			if r := m.eng.State().Selection.Range; r != nil {
				if p, ok := m.cellAt(msg); ok {
					m.eng.SelectRange(r.Start, p, false)
				} else {
					m.eng.SelectRange(r.Start, r.End, false)
				}
			}
		}
		return m, nil
	}
	return m, nil
}

// cellAt resolves the mouse position to a mounted cell through its zone.
func (m model) cellAt(msg tea.MouseMsg) (grid.CellPosition, bool) {
	start, end := m.win.MountedRows()
	for r := start; r < end; r++ {
		for _, col := range m.view.Columns() {
			if zone.Get(fmt.Sprintf("cell:%d:%s", r, col.ID)).InBounds(msg) {
				return grid.CellPosition{Row: r, ColumnID: col.ID}, true
			}
		}
	}
	return grid.CellPosition{}, false
}

// menuActionAt maps a context-menu click to the engine operation.
func (m model) menuActionAt(msg tea.MouseMsg) tea.Cmd {
	readOnly := m.eng.ReadOnly()
	switch {
	case zone.Get("menu.copy").InBounds(msg):
		return engineCmd(m.eng.CopyCells)
	case zone.Get("menu.cut").InBounds(msg) && !readOnly:
		return engineCmd(m.eng.CutCells)
	case zone.Get("menu.paste").InBounds(msg) && !readOnly:
		return engineCmd(m.eng.PasteCells)
	case zone.Get("menu.clear").InBounds(msg) && !readOnly:
		return engineCmd(m.eng.ClearCells)
	case zone.Get("menu.delrows").InBounds(msg) && !readOnly:
		return engineCmd(m.eng.DeleteRows)
	}
	return nil
}

// engineCmd runs an engine operation as a command so clipboard and
// mutation work stays off the program loop.
func engineCmd(fn func(ctx context.Context)) tea.Cmd {
	return func() tea.Msg {
		fn(context.Background())
		return nil
	}
}

// syncWidgets reconciles the text inputs with the interaction state after
// a store change: entering edit mode seeds and focuses the editor,
// leaving it blurs; same for the search bar.
func (m *model) syncWidgets() {
	st := m.eng.State()
	if st.Editing != nil {
		if !m.editor.Focused() {
			m.editor.SetValue(cellEditText(m.view, st.Editing.Row, st.Editing.ColumnID))
			m.editor.CursorEnd()
			m.editor.Focus()
		}
	} else if m.editor.Focused() {
		m.editor.Blur()
		m.editor.SetValue("")
	}
	if st.Search.Open {
		if !m.search.Focused() {
			m.search.Focus()
		}
	} else if m.search.Focused() {
		m.search.Blur()
		m.search.SetValue("")
	}
}

func (m *model) openHelp() {
	m.showHelp = true
	if m.helpText == "" {
		wrap := minInt(72, m.width-8)
		if wrap < 20 {
			wrap = 20
		}
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wrap),
		)
		if err == nil {
			if out, rerr := r.Render(helpMarkdown); rerr == nil {
				m.helpText = strings.TrimRight(out, "\n")
			}
		}
		if m.helpText == "" {
			m.helpText = helpMarkdown
		}
	}
	m.sizeHelpViewport()
}

func (m *model) sizeHelpViewport() {
	w := minInt(76, m.width-6)
	h := m.height - 8
	if w < 20 {
		w = 20
	}
	if h < 5 {
		h = 5
	}
	m.helpVP = viewport.New(w, h)
	m.helpVP.SetContent(m.helpText)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
