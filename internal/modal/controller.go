// Package modal is the overlay state machine that sits in front of the
// floor store. At most one overlay is open at a time:
//
//	Idle -> DishPicking -> MemoEditing -> Idle   (save or cancel)
//	Idle -> ViewingNote -> Idle                  (close)
//
// The controller never touches table state. Save hands the caller a
// SaveRequest to apply to the store.
package modal

import (
	"github.com/jask/floorboard/internal/floor"
	"github.com/jask/floorboard/internal/menu"
)

type Phase int

const (
	Idle Phase = iota
	DishPicking
	MemoEditing
	ViewingNote
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case DishPicking:
		return "dish-picking"
	case MemoEditing:
		return "memo-editing"
	case ViewingNote:
		return "viewing-note"
	default:
		return "unknown"
	}
}

// SaveRequest is the upsert produced by a completed memo edit.
type SaveRequest struct {
	Table string
	Dish  int
	Kind  floor.Kind
	Memo  string
}

type Controller struct {
	phase Phase
	table string
	kind  floor.Kind
	dish  int
	draft string
	note  floor.Note
}

func New() *Controller { return &Controller{dish: -1} }

func (c *Controller) Phase() Phase     { return c.phase }
func (c *Controller) Table() string    { return c.table }
func (c *Controller) Kind() floor.Kind { return c.kind }
func (c *Controller) Draft() string    { return c.draft }

// Dish is the dish being edited, or -1 outside MemoEditing.
func (c *Controller) Dish() int { return c.dish }

// Note is the note on display while ViewingNote.
func (c *Controller) Note() (floor.Note, bool) {
	if c.phase != ViewingNote {
		return floor.Note{}, false
	}
	return c.note, true
}

// OpenPicker starts an annotation flow for table. It only works from Idle.
func (c *Controller) OpenPicker(table string, kind floor.Kind) bool {
	if c.phase != Idle {
		return false
	}
	c.phase = DishPicking
	c.table = table
	c.kind = kind
	return true
}

// PickDish moves from the picker to the memo editor. The draft always
// starts blank, even when the dish already carries a memo.
func (c *Controller) PickDish(dish int) bool {
	if c.phase != DishPicking || !menu.ValidDish(dish) {
		return false
	}
	c.phase = MemoEditing
	c.dish = dish
	c.draft = ""
	return true
}

func (c *Controller) SetDraft(text string) {
	if c.phase == MemoEditing {
		c.draft = text
	}
}

// Save closes the editor and returns the upsert to apply.
func (c *Controller) Save() (SaveRequest, bool) {
	if c.phase != MemoEditing {
		return SaveRequest{}, false
	}
	req := SaveRequest{Table: c.table, Dish: c.dish, Kind: c.kind, Memo: c.draft}
	c.ForceIdle()
	return req, true
}

// ViewNote opens the read-only note viewer. It only works from Idle.
func (c *Controller) ViewNote(table string, note floor.Note) bool {
	if c.phase != Idle {
		return false
	}
	c.phase = ViewingNote
	c.table = table
	c.note = note
	return true
}

func (c *Controller) CloseNote() {
	if c.phase == ViewingNote {
		c.ForceIdle()
	}
}

// Cancel abandons whatever overlay is open.
func (c *Controller) Cancel() { c.ForceIdle() }

// ForceIdle clears all transient selection.
func (c *Controller) ForceIdle() {
	*c = Controller{dish: -1}
}
