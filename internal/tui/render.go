package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/floorboard/internal/database/repository"
	"github.com/jask/floorboard/internal/floor"
	"github.com/jask/floorboard/internal/menu"
	"github.com/jask/floorboard/internal/modal"
	"github.com/jask/floorboard/internal/view"
)

const (
	labelWidth   = 16
	pickerCols   = 4
	pickerWidth  = 18
	headerRows   = 3
	servedMarker = "○"
)

func (a *App) View() string {
	var body string
	switch a.state {
	case viewHistory:
		body = a.renderHistory()
	default:
		body = a.renderFloor()
	}
	if overlay := a.renderModal(); overlay != "" {
		body += "\n\n" + overlay
	}
	if a.status != "" {
		style := statusStyle
		if a.statusErr {
			style = statusErrStyle
		}
		body += "\n" + style.Render(a.status)
	}
	return body
}

func (a *App) renderFloor() string {
	cols := []string{a.renderLabelColumn()}
	for i, table := range a.tables() {
		st, _ := a.services.Floor.Store.Table(table)
		cols = append(cols, a.renderTableColumn(table, st, i == a.tableCursor))
	}
	grid := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	out := titleStyle.Render("floorboard") + "\n" + grid + "\n" + a.renderSelection()
	out += "\n" + a.help.View(a.keys)
	return out
}

func (a *App) renderLabelColumn() string {
	lines := make([]string, 0, headerRows+menu.DishCount)
	lines = append(lines, headerStyle.Render(fit("料理", labelWidth)), "", "")
	for i := 0; i < menu.DishCount; i++ {
		label := fit(menu.Label(i), labelWidth)
		if i == a.dishCursor {
			lines = append(lines, headerStyle.Render(label))
			continue
		}
		lines = append(lines, labelStyle.Render(label))
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderTableColumn(table string, st floor.TableState, selected bool) string {
	w := a.cfg.UI.CellWidth
	lines := make([]string, 0, headerRows+menu.DishCount)

	head := fit(table, w)
	if selected {
		head = cursorStyle.Render(head)
	} else {
		head = headerStyle.Render(head)
	}
	pairing := fit("", w)
	if st.Pairing {
		pairing = pairingStyle.Render(fit("ペア", w))
	}
	served, total := view.Progress(st)
	lines = append(lines, head, pairing, dimStyle.Render(fit(fmt.Sprintf("%d/%d", served, total), w)))

	for _, cell := range view.Column(st) {
		text := renderCell(cell, w)
		if selected && cell.Dish == a.dishCursor {
			text = cursorStyle.Render(text)
		}
		lines = append(lines, text)
	}
	return " " + strings.Join(lines, "\n ")
}

// cellText is the unstyled content of a cell: served tick then overlay
// markers.
func cellText(c view.Cell) string {
	var b strings.Builder
	if c.Category == view.Served {
		b.WriteString(servedMarker)
	} else {
		b.WriteString(" ")
	}
	if c.HasAllergy() {
		b.WriteString("!")
	}
	if c.HasSpecial() {
		b.WriteString("S")
	}
	return b.String()
}

func renderCell(c view.Cell, width int) string {
	base := pendingStyle
	switch c.Category {
	case view.Current:
		base = currentStyle
	case view.Served:
		base = servedStyle
	}

	var b strings.Builder
	if c.Category == view.Served {
		b.WriteString(base.Render(servedMarker))
	} else {
		b.WriteString(base.Render(" "))
	}
	if c.HasAllergy() {
		b.WriteString(allergyMarkStyle.Inherit(base).Render("!"))
	}
	if c.HasSpecial() {
		mark := specialPendingStyle
		if c.Special.Provided {
			mark = specialProvidedStyle
		}
		b.WriteString(mark.Inherit(base).Render("S"))
	}
	pad := width - ansi.StringWidth(cellText(c))
	if pad > 0 {
		b.WriteString(base.Render(strings.Repeat(" ", pad)))
	}
	return b.String()
}

// renderSelection describes the cell under the cursor.
func (a *App) renderSelection() string {
	table := a.currentTable()
	st, ok := a.services.Floor.Store.Table(table)
	if !ok {
		return ""
	}
	cell := view.CellOf(st, a.dishCursor)
	parts := []string{fmt.Sprintf("卓 %s / %s [%s]", table, menu.Label(a.dishCursor), cell.Category)}
	if cell.HasAllergy() {
		parts = append(parts, allergyMarkStyle.Render("苦手: ")+oneLine(cell.Allergy.Memo))
	}
	if cell.HasSpecial() {
		state := "未提供"
		if cell.Special.Provided {
			state = "提供済"
		}
		parts = append(parts, specialPendingStyle.Render("特別: ")+oneLine(cell.Special.Memo)+" ("+state+")")
	}
	return strings.Join(parts, "  ")
}

func (a *App) renderModal() string {
	if a.confirmTable != "" {
		return modalStyle.Render(titleStyle.Render(fmt.Sprintf("Reset table %s?", a.confirmTable)) +
			"\nAll courses, notes and specials will be cleared.\n[y] Yes  [n] No")
	}
	switch a.modal.Phase() {
	case modal.DishPicking:
		return modalStyle.Render(a.renderPicker())
	case modal.MemoEditing:
		name, _ := menu.DishName(a.modal.Dish())
		return modalStyle.Render(titleStyle.Render(name) + "\n" + a.memo.View() + "\n[ctrl+s] Save  [esc] Cancel")
	case modal.ViewingNote:
		note, _ := a.modal.Note()
		name, _ := menu.DishName(note.DishIndex)
		return modalStyle.Render(titleStyle.Render(name) + "\n" + note.Memo + "\n[esc] Close")
	default:
		return ""
	}
}

func kindLabel(k floor.Kind) string {
	if k == floor.KindAllergy {
		return "苦手"
	}
	return "特別"
}

func (a *App) renderPicker() string {
	title := titleStyle.Render(fmt.Sprintf("卓 %s｜%s", a.modal.Table(), kindLabel(a.modal.Kind())))
	var rows []string
	var row []string
	for i, dish := range a.pickerHits {
		label := fit(menu.Label(dish), pickerWidth)
		if i == a.pickerCursor {
			label = pickStyle.Render(label)
		}
		row = append(row, label)
		if len(row) == pickerCols {
			rows = append(rows, strings.Join(row, " "))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, " "))
	}
	if len(rows) == 0 {
		rows = append(rows, dimStyle.Render("(no match)"))
	}
	return title + "\n" + a.picker.View() + "\n" + strings.Join(rows, "\n") + "\n[enter] Pick  [↑/↓] Move  [esc] Cancel"
}

func (a *App) renderHistory() string {
	scope := "all tables"
	if a.historyTable != "" {
		scope = "table " + a.historyTable
	}
	out := titleStyle.Render("Shift log - "+scope) + "\n"
	out += renderSummary(a.summary) + "\n"
	if len(a.history) == 0 {
		out += dimStyle.Render("(nothing recorded yet)") + "\n"
	}
	for _, e := range a.history {
		out += a.renderEvent(e) + "\n"
	}
	out += a.help.View(historyKeys{a.keys})
	return out
}

func (a *App) renderEvent(e repository.Event) string {
	dish := ""
	if e.DishIndex != nil {
		dish = menu.Label(*e.DishIndex)
	}
	memo := ""
	if e.Memo != nil {
		memo = oneLine(*e.Memo)
	}
	return fmt.Sprintf("%s  %-3s %-9s %s %s",
		e.CreatedAt.In(a.tz).Format(a.cfg.UI.TimeFormat),
		e.TableID,
		string(e.Action),
		fit(dish, labelWidth),
		memo,
	)
}

func renderSummary(counts map[repository.Action]int) string {
	if len(counts) == 0 {
		return dimStyle.Render("no actions")
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %d", k, counts[repository.Action(k)]))
	}
	return dimStyle.Render(strings.Join(parts, " · "))
}

// fit truncates or pads s to exactly width terminal cells.
func fit(s string, width int) string {
	s = ansi.Truncate(s, width, "…")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
