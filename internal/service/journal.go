package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/floorboard/internal/database"
	"github.com/jask/floorboard/internal/database/repository"
)

// Journal is the shift log: every applied floor action for the lifetime of
// the process.
type Journal struct {
	Events *repository.EventRepo
}

// Record stores e, filling in ID and CreatedAt when missing. A nil journal
// drops events.
func (j *Journal) Record(ctx context.Context, e repository.Event) error {
	if j == nil || j.Events == nil {
		return nil
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = database.Now()
	}
	if err := j.Events.Insert(ctx, e); err != nil {
		return fmt.Errorf("record %s %s: %w", e.TableID, e.Action, err)
	}
	return nil
}

// History lists recent events, newest first. An empty tableID means every
// table.
func (j *Journal) History(ctx context.Context, tableID string, limit int) ([]repository.Event, error) {
	if j == nil || j.Events == nil {
		return nil, nil
	}
	return j.Events.List(ctx, repository.EventFilter{TableID: tableID, Limit: limit})
}

// Summary counts recorded actions, optionally for one table.
func (j *Journal) Summary(ctx context.Context, tableID string) (map[repository.Action]int, error) {
	if j == nil || j.Events == nil {
		return map[repository.Action]int{}, nil
	}
	return j.Events.CountByAction(ctx, tableID)
}
