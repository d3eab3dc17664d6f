package floor

import (
	"errors"
	"fmt"
	"slices"

	"github.com/jask/floorboard/internal/menu"
)

var (
	ErrUnknownTable   = errors.New("unknown table")
	ErrDishOutOfRange = errors.New("dish index out of range")
)

// Store maps table ids to their state. It is not safe for concurrent use;
// callers mutate it from a single event loop.
type Store struct {
	order  []string
	tables map[string]TableState
}

// NewStore creates default state for each id, or for menu.Tables when ids is
// empty.
func NewStore(ids ...string) *Store {
	if len(ids) == 0 {
		ids = menu.Tables[:]
	}
	s := &Store{
		order:  slices.Clone(ids),
		tables: make(map[string]TableState, len(ids)),
	}
	for _, id := range ids {
		s.tables[id] = NewTableState()
	}
	return s
}

// Tables returns table ids in display order.
func (s *Store) Tables() []string {
	return slices.Clone(s.order)
}

// Table returns a snapshot of a table's state. Later mutations do not affect
// the returned value.
func (s *Store) Table(id string) (TableState, bool) {
	st, ok := s.tables[id]
	if !ok {
		return TableState{}, false
	}
	return st.clone(), true
}

// Reset returns a table to its initial state.
func (s *Store) Reset(id string) error {
	if _, err := s.lookup(id); err != nil {
		return err
	}
	s.tables[id] = NewTableState()
	return nil
}

// Advance marks the current dish served and moves to the next one. Once all
// dishes are served it does nothing and reports false.
func (s *Store) Advance(id string) (bool, error) {
	st, err := s.lookup(id)
	if err != nil {
		return false, err
	}
	if st.CurrentDish > menu.DishCount {
		return false, nil
	}
	next := st.clone()
	next.Served[st.CurrentDish-1] = true
	next.CurrentDish++
	s.tables[id] = next
	return true, nil
}

// TogglePairing flips the wine-pairing flag and returns the new value.
func (s *Store) TogglePairing(id string) (bool, error) {
	st, err := s.lookup(id)
	if err != nil {
		return false, err
	}
	next := st.clone()
	next.Pairing = !next.Pairing
	s.tables[id] = next
	return next.Pairing, nil
}

// ToggleSpecialProvided flips Provided on the special for dish. It reports
// false and changes nothing when the dish has no special.
func (s *Store) ToggleSpecialProvided(id string, dish int) (bool, error) {
	st, err := s.lookup(id)
	if err != nil {
		return false, err
	}
	if !menu.ValidDish(dish) {
		return false, fmt.Errorf("toggle special %d: %w", dish, ErrDishOutOfRange)
	}
	if _, ok := st.Special(dish); !ok {
		return false, nil
	}
	next := st.clone()
	for i := range next.Specials {
		if next.Specials[i].DishIndex == dish {
			next.Specials[i].Provided = !next.Specials[i].Provided
		}
	}
	s.tables[id] = next
	return true, nil
}

// UpsertNote replaces whatever annotation of the given kind dish had with a
// new one. A replaced special always starts not provided.
func (s *Store) UpsertNote(id string, dish int, memo string, kind Kind) error {
	st, err := s.lookup(id)
	if err != nil {
		return err
	}
	if !menu.ValidDish(dish) {
		return fmt.Errorf("upsert %s %d: %w", kind, dish, ErrDishOutOfRange)
	}
	next := st.clone()
	switch kind {
	case KindAllergy:
		next.Allergies = slices.DeleteFunc(next.Allergies, func(n Note) bool { return n.DishIndex == dish })
		next.Allergies = append(next.Allergies, Note{DishIndex: dish, Memo: memo})
	case KindSpecial:
		next.Specials = slices.DeleteFunc(next.Specials, func(sp SpecialDish) bool { return sp.DishIndex == dish })
		next.Specials = append(next.Specials, SpecialDish{DishIndex: dish, Memo: memo})
	default:
		return fmt.Errorf("upsert: unknown kind %d", int(kind))
	}
	s.tables[id] = next
	return nil
}

func (s *Store) lookup(id string) (TableState, error) {
	st, ok := s.tables[id]
	if !ok {
		return TableState{}, fmt.Errorf("table %q: %w", id, ErrUnknownTable)
	}
	return st, nil
}
