package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jask/floorboard/internal/database"
	"github.com/jask/floorboard/internal/database/repository"
	"github.com/jask/floorboard/internal/floor"
)

// FloorService applies floor actions to the store and describes each
// applied action as a shift-log event. It never writes the log itself.
type FloorService struct {
	Store *floor.Store
	Clock func() time.Time
}

func NewFloorService(store *floor.Store) *FloorService {
	return &FloorService{Store: store, Clock: database.Now}
}

func (s *FloorService) Reset(table string) (repository.Event, error) {
	if err := s.Store.Reset(table); err != nil {
		return repository.Event{}, fmt.Errorf("reset: %w", err)
	}
	return s.event(table, repository.ActionReset, nil, nil), nil
}

// Advance serves the current dish. ok is false when the table had already
// finished; no event is produced then.
func (s *FloorService) Advance(table string) (ev repository.Event, ok bool, err error) {
	before, found := s.Store.Table(table)
	if !found {
		return repository.Event{}, false, fmt.Errorf("advance: table %q: %w", table, floor.ErrUnknownTable)
	}
	advanced, err := s.Store.Advance(table)
	if err != nil || !advanced {
		return repository.Event{}, false, err
	}
	served := before.CurrentDish - 1
	return s.event(table, repository.ActionAdvance, &served, nil), true, nil
}

func (s *FloorService) TogglePairing(table string) (repository.Event, error) {
	on, err := s.Store.TogglePairing(table)
	if err != nil {
		return repository.Event{}, fmt.Errorf("pairing: %w", err)
	}
	state := "off"
	if on {
		state = "on"
	}
	return s.event(table, repository.ActionPairing, nil, &state), nil
}

// ToggleSpecialProvided flips the provided badge. ok is false when the dish
// has no special request.
func (s *FloorService) ToggleSpecialProvided(table string, dish int) (ev repository.Event, ok bool, err error) {
	toggled, err := s.Store.ToggleSpecialProvided(table, dish)
	if err != nil || !toggled {
		return repository.Event{}, false, err
	}
	st, _ := s.Store.Table(table)
	sp, _ := st.Special(dish)
	state := "pending"
	if sp.Provided {
		state = "provided"
	}
	return s.event(table, repository.ActionProvided, &dish, &state), true, nil
}

// SaveNote upserts an allergy note or special request.
func (s *FloorService) SaveNote(table string, dish int, memo string, kind floor.Kind) (repository.Event, error) {
	if err := s.Store.UpsertNote(table, dish, memo, kind); err != nil {
		return repository.Event{}, err
	}
	action := repository.ActionAllergy
	if kind == floor.KindSpecial {
		action = repository.ActionSpecial
	}
	return s.event(table, action, &dish, &memo), nil
}

func (s *FloorService) event(table string, action repository.Action, dish *int, memo *string) repository.Event {
	now := database.Now
	if s.Clock != nil {
		now = s.Clock
	}
	return repository.Event{
		ID:        uuid.NewString(),
		TableID:   table,
		Action:    action,
		DishIndex: dish,
		Memo:      memo,
		CreatedAt: now(),
	}
}
