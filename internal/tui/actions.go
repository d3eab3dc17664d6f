package tui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/floorboard/internal/floor"
	"github.com/jask/floorboard/internal/menu"
)

// resetTable clears a table and drops any open overlay along with it.
func (a *App) resetTable(table string) tea.Cmd {
	a.confirmTable = ""
	a.closeOverlay()
	ev, err := a.services.Floor.Reset(table)
	if err != nil {
		a.setError(err)
		return nil
	}
	log.Printf("table %s reset", table)
	a.setStatus(fmt.Sprintf("table %s reset", table))
	return a.recordCmd(ev)
}

func (a *App) advance(table string) tea.Cmd {
	ev, ok, err := a.services.Floor.Advance(table)
	if err != nil {
		a.setError(err)
		return nil
	}
	if !ok {
		a.setStatus(fmt.Sprintf("table %s: all courses served", table))
		return nil
	}
	a.setStatus(fmt.Sprintf("table %s: served %s", table, menu.Label(*ev.DishIndex)))
	return a.recordCmd(ev)
}

func (a *App) togglePairing(table string) tea.Cmd {
	ev, err := a.services.Floor.TogglePairing(table)
	if err != nil {
		a.setError(err)
		return nil
	}
	a.setStatus(fmt.Sprintf("table %s: pairing %s", table, *ev.Memo))
	return a.recordCmd(ev)
}

// toggleProvided flips the special badge on a cell. Cells without a special
// request are left alone.
func (a *App) toggleProvided(table string, dish int) tea.Cmd {
	ev, ok, err := a.services.Floor.ToggleSpecialProvided(table, dish)
	if err != nil {
		a.setError(err)
		return nil
	}
	if !ok {
		a.setStatus(fmt.Sprintf("table %s: no special on %s", table, menu.Label(dish)))
		return nil
	}
	a.setStatus(fmt.Sprintf("table %s: %s special %s", table, menu.Label(dish), *ev.Memo))
	return a.recordCmd(ev)
}

// viewAllergy opens the note viewer for a cell. It never touches the
// cell's special badge.
func (a *App) viewAllergy(table string, dish int) {
	st, ok := a.services.Floor.Store.Table(table)
	if !ok {
		return
	}
	note, ok := st.Allergy(dish)
	if !ok {
		a.setStatus(fmt.Sprintf("table %s: no allergy note on %s", table, menu.Label(dish)))
		return
	}
	a.modal.ViewNote(table, note)
}

func (a *App) openPicker(table string, kind floor.Kind) tea.Cmd {
	if !a.modal.OpenPicker(table, kind) {
		return nil
	}
	a.picker.Reset()
	a.refreshPicker()
	a.pickerCursor = a.dishCursor
	return a.picker.Focus()
}

func (a *App) refreshPicker() {
	a.pickerHits = menu.Search(a.picker.Value())
	if a.pickerCursor >= len(a.pickerHits) {
		a.pickerCursor = max(0, len(a.pickerHits)-1)
	}
}

func (a *App) pickDish() tea.Cmd {
	if len(a.pickerHits) == 0 {
		a.setStatus("no dish matches")
		return nil
	}
	if !a.modal.PickDish(a.pickerHits[a.pickerCursor]) {
		return nil
	}
	a.picker.Blur()
	a.memo.Reset()
	switch a.modal.Kind() {
	case floor.KindAllergy:
		a.memo.Placeholder = "苦手内容"
	default:
		a.memo.Placeholder = "特別対応内容"
	}
	return tea.Batch(a.memo.Focus(), textarea.Blink)
}

func (a *App) saveMemo() tea.Cmd {
	req, ok := a.modal.Save()
	a.memo.Reset()
	a.memo.Blur()
	if !ok {
		return nil
	}
	ev, err := a.services.Floor.SaveNote(req.Table, req.Dish, req.Memo, req.Kind)
	if err != nil {
		a.setError(err)
		return nil
	}
	a.setStatus(fmt.Sprintf("table %s: %s saved for %s", req.Table, req.Kind, menu.Label(req.Dish)))
	return a.recordCmd(ev)
}

// closeOverlay returns the modal controller to Idle and releases input focus.
func (a *App) closeOverlay() {
	a.modal.ForceIdle()
	a.picker.Blur()
	a.picker.Reset()
	a.memo.Blur()
	a.memo.Reset()
	a.pickerHits = nil
	a.pickerCursor = 0
}
