// Package floor is the in-memory state store for the dining floor: one
// TableState per table, mutated by replace-on-write.
package floor

import (
	"slices"

	"github.com/jask/floorboard/internal/menu"
)

// FinishedDish is the CurrentDish value once every course has been served.
const FinishedDish = menu.DishCount + 1

// Kind selects which annotation set a note belongs to.
type Kind int

const (
	KindAllergy Kind = iota
	KindSpecial
)

func (k Kind) String() string {
	switch k {
	case KindAllergy:
		return "allergy"
	case KindSpecial:
		return "special"
	default:
		return "unknown"
	}
}

// Note is an allergy annotation on a dish slot.
type Note struct {
	DishIndex int
	Memo      string
}

// SpecialDish is a custom preparation request on a dish slot.
type SpecialDish struct {
	DishIndex int
	Memo      string
	Provided  bool
}

// TableState is everything tracked for one table. CurrentDish is 1-based.
type TableState struct {
	CurrentDish int
	Served      [menu.DishCount]bool
	Pairing     bool
	Allergies   []Note
	Specials    []SpecialDish
}

// NewTableState returns the state a table starts with and returns to on reset.
func NewTableState() TableState {
	return TableState{CurrentDish: 1}
}

// Allergy returns the note attached to dish i, if any.
func (s TableState) Allergy(i int) (Note, bool) {
	for _, n := range s.Allergies {
		if n.DishIndex == i {
			return n, true
		}
	}
	return Note{}, false
}

// Special returns the special request attached to dish i, if any.
func (s TableState) Special(i int) (SpecialDish, bool) {
	for _, sp := range s.Specials {
		if sp.DishIndex == i {
			return sp, true
		}
	}
	return SpecialDish{}, false
}

// ServedCount counts dishes already served.
func (s TableState) ServedCount() int {
	n := 0
	for _, v := range s.Served {
		if v {
			n++
		}
	}
	return n
}

// Finished reports whether every course has been served.
func (s TableState) Finished() bool { return s.CurrentDish >= FinishedDish }

// clone copies the annotation slices so the result shares nothing with s.
func (s TableState) clone() TableState {
	out := s
	out.Allergies = slices.Clone(s.Allergies)
	out.Specials = slices.Clone(s.Specials)
	return out
}
