package repository

import (
	"context"
	"database/sql"
	"strings"
)

// EventRepo handles the shift log.
type EventRepo struct {
	db *sql.DB
}

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

func (r *EventRepo) Insert(ctx context.Context, e Event) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO events(id, table_id, action, dish_index, memo, created_at)
	VALUES (?, ?, ?, ?, ?, ?);
	`, e.ID, e.TableID, string(e.Action), e.DishIndex, e.Memo, e.CreatedAt)
	return err
}

// List returns events newest first.
func (r *EventRepo) List(ctx context.Context, f EventFilter) ([]Event, error) {
	var (
		where []string
		args  []any
	)
	if f.TableID != "" {
		where = append(where, "table_id = ?")
		args = append(args, f.TableID)
	}
	if f.Action != "" {
		where = append(where, "action = ?")
		args = append(args, string(f.Action))
	}
	q := `SELECT id, table_id, action, dish_index, memo, created_at FROM events`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY created_at DESC, rowid DESC"
	if f.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Event
	for rows.Next() {
		var (
			e      Event
			action string
			dish   sql.NullInt64
			memo   sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.TableID, &action, &dish, &memo, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Action = Action(action)
		if dish.Valid {
			d := int(dish.Int64)
			e.DishIndex = &d
		}
		if memo.Valid {
			m := memo.String
			e.Memo = &m
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// CountByAction tallies events per action, optionally for one table.
func (r *EventRepo) CountByAction(ctx context.Context, tableID string) (map[Action]int, error) {
	q := `SELECT action, COUNT(*) FROM events`
	var args []any
	if tableID != "" {
		q += ` WHERE table_id = ?`
		args = append(args, tableID)
	}
	q += ` GROUP BY action`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[Action]int{}
	for rows.Next() {
		var (
			action string
			n      int
		)
		if err := rows.Scan(&action, &n); err != nil {
			return nil, err
		}
		out[Action(action)] = n
	}
	return out, rows.Err()
}
