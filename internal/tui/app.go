package tui

import (
	"context"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/floorboard/internal/config"
	"github.com/jask/floorboard/internal/database/repository"
	"github.com/jask/floorboard/internal/floor"
	"github.com/jask/floorboard/internal/menu"
	"github.com/jask/floorboard/internal/modal"
	"github.com/jask/floorboard/internal/service"
)

const historyLimit = 200

// App ties together views.
type App struct {
	ctx      context.Context
	cfg      config.Config
	services Services
	modal    *modal.Controller
	state    appState
	keys     keyMap
	help     help.Model
	tz       *time.Location

	tableCursor int
	dishCursor  int
	// confirmTable is the table awaiting reset confirmation.
	confirmTable string

	picker       textinput.Model
	pickerHits   []int
	pickerCursor int
	memo         textarea.Model

	history      []repository.Event
	summary      map[repository.Action]int
	historyTable string

	status    string
	statusErr bool
	width     int
}

type Services struct {
	Floor       *service.FloorService
	Journal     *service.Journal
	Maintenance *service.MaintenanceService
}

type appState string

const (
	viewFloor   appState = "floor"
	viewHistory appState = "history"
)

func New(ctx context.Context, cfg config.Config, services Services, tz *time.Location) *App {
	if tz == nil {
		tz = time.Local
	}
	if services.Floor == nil {
		services.Floor = service.NewFloorService(floor.NewStore())
	}
	if cfg.UI.CellWidth < 3 {
		cfg.UI.CellWidth = 6
	}
	if cfg.UI.TimeFormat == "" {
		cfg.UI.TimeFormat = "15:04:05"
	}

	picker := textinput.New()
	picker.Placeholder = "料理名 or 番号"
	picker.Prompt = "> "

	memo := textarea.New()
	memo.ShowLineNumbers = false
	memo.SetHeight(4)

	return &App{
		ctx:      ctx,
		cfg:      cfg,
		services: services,
		modal:    modal.New(),
		state:    viewFloor,
		keys:     defaultKeyMap(),
		help:     help.New(),
		tz:       tz,
		picker:   picker,
		memo:     memo,
	}
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.help.Width = m.Width
		a.memo.SetWidth(min(60, max(20, m.Width-8)))
		return a, nil
	case tea.KeyMsg:
		if m.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.confirmTable != "" {
			return a.handleConfirmKey(m)
		}
		switch a.modal.Phase() {
		case modal.DishPicking:
			return a.handlePickerKey(m)
		case modal.MemoEditing:
			return a.handleMemoKey(m)
		case modal.ViewingNote:
			return a.handleNoteKey(m)
		}
		if a.state == viewHistory {
			return a.handleHistoryKey(m)
		}
		return a.handleFloorKey(m)
	case recordedMsg:
		if a.state == viewHistory {
			return a, a.loadHistoryCmd()
		}
	case historyMsg:
		a.history = m.events
		a.summary = m.summary
	case journalClearedMsg:
		a.setStatus("shift log cleared")
		return a, a.loadHistoryCmd()
	case errMsg:
		log.Printf("error: %v", m.error)
		a.setError(m.error)
	default:
		// cursor blink and similar ticks for whichever input is focused
		var cmd tea.Cmd
		switch a.modal.Phase() {
		case modal.DishPicking:
			a.picker, cmd = a.picker.Update(msg)
		case modal.MemoEditing:
			a.memo, cmd = a.memo.Update(msg)
		}
		return a, cmd
	}
	return a, nil
}

func (a *App) handleFloorKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	table := a.currentTable()
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Left):
		if a.tableCursor > 0 {
			a.tableCursor--
		}
	case key.Matches(m, a.keys.Right):
		if a.tableCursor < len(a.tables())-1 {
			a.tableCursor++
		}
	case key.Matches(m, a.keys.Up):
		if a.dishCursor > 0 {
			a.dishCursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.dishCursor < menu.DishCount-1 {
			a.dishCursor++
		}
	case key.Matches(m, a.keys.Advance):
		return a, a.advance(table)
	case key.Matches(m, a.keys.Reset):
		if a.cfg.UI.ConfirmReset {
			a.confirmTable = table
			return a, nil
		}
		return a, a.resetTable(table)
	case key.Matches(m, a.keys.Pairing):
		return a, a.togglePairing(table)
	case key.Matches(m, a.keys.Special):
		return a, a.openPicker(table, floor.KindSpecial)
	case key.Matches(m, a.keys.Allergy):
		return a, a.openPicker(table, floor.KindAllergy)
	case key.Matches(m, a.keys.Provided):
		return a, a.toggleProvided(table, a.dishCursor)
	case key.Matches(m, a.keys.ViewNote):
		a.viewAllergy(table, a.dishCursor)
	case key.Matches(m, a.keys.History):
		a.state = viewHistory
		a.status = ""
		return a, a.loadHistoryCmd()
	case key.Matches(m, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	}
	return a, nil
}

func (a *App) handleConfirmKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Yes):
		return a, a.resetTable(a.confirmTable)
	case key.Matches(m, a.keys.No):
		a.confirmTable = ""
	}
	return a, nil
}

func (a *App) handlePickerKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc:
		a.closeOverlay()
		return a, nil
	case tea.KeyUp:
		if a.pickerCursor > 0 {
			a.pickerCursor--
		}
		return a, nil
	case tea.KeyDown:
		if a.pickerCursor < len(a.pickerHits)-1 {
			a.pickerCursor++
		}
		return a, nil
	case tea.KeyEnter:
		return a, a.pickDish()
	}
	var cmd tea.Cmd
	a.picker, cmd = a.picker.Update(m)
	a.refreshPicker()
	return a, cmd
}

func (a *App) handleMemoKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Cancel):
		a.closeOverlay()
		return a, nil
	case key.Matches(m, a.keys.Save):
		return a, a.saveMemo()
	}
	var cmd tea.Cmd
	a.memo, cmd = a.memo.Update(m)
	a.modal.SetDraft(a.memo.Value())
	return a, cmd
}

func (a *App) handleNoteKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc, tea.KeyEnter:
		a.modal.CloseNote()
	}
	if m.String() == "q" {
		a.modal.CloseNote()
	}
	return a, nil
}

func (a *App) handleHistoryKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Back):
		a.state = viewFloor
		a.status = ""
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.FilterTable):
		a.historyTable = nextFilter(a.tables(), a.historyTable)
		return a, a.loadHistoryCmd()
	case key.Matches(m, a.keys.ClearLog):
		return a, a.clearJournalCmd()
	case key.Matches(m, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	}
	return a, nil
}

// nextFilter cycles "" -> first table -> ... -> last table -> "".
func nextFilter(tables []string, cur string) string {
	if cur == "" {
		if len(tables) == 0 {
			return ""
		}
		return tables[0]
	}
	for i, t := range tables {
		if t == cur && i+1 < len(tables) {
			return tables[i+1]
		}
	}
	return ""
}

func (a *App) tables() []string { return a.services.Floor.Store.Tables() }

func (a *App) currentTable() string {
	tables := a.tables()
	if len(tables) == 0 {
		return ""
	}
	if a.tableCursor >= len(tables) {
		a.tableCursor = len(tables) - 1
	}
	return tables[a.tableCursor]
}

func (a *App) setStatus(text string) {
	a.status = text
	a.statusErr = false
}

func (a *App) setError(err error) {
	a.status = "error: " + err.Error()
	a.statusErr = true
}

// commands

func (a *App) recordCmd(ev repository.Event) tea.Cmd {
	ctx, journal := a.ctx, a.services.Journal
	return func() tea.Msg {
		if err := journal.Record(ctx, ev); err != nil {
			return errMsg{err}
		}
		return recordedMsg{Event: ev}
	}
}

func (a *App) loadHistoryCmd() tea.Cmd {
	ctx, journal, table := a.ctx, a.services.Journal, a.historyTable
	return func() tea.Msg {
		events, err := journal.History(ctx, table, historyLimit)
		if err != nil {
			return errMsg{err}
		}
		summary, err := journal.Summary(ctx, table)
		if err != nil {
			return errMsg{err}
		}
		return historyMsg{events: events, summary: summary}
	}
}

func (a *App) clearJournalCmd() tea.Cmd {
	ctx, maint := a.ctx, a.services.Maintenance
	return func() tea.Msg {
		if err := maint.ClearJournal(ctx); err != nil {
			return errMsg{err}
		}
		return journalClearedMsg{}
	}
}

// messages
type recordedMsg struct {
	Event repository.Event
}

type historyMsg struct {
	events  []repository.Event
	summary map[repository.Action]int
}

type journalClearedMsg struct{}

type errMsg struct{ error }
