package repository

import "time"

// Action names a floor operation recorded in the shift log.
type Action string

const (
	ActionReset    Action = "reset"
	ActionAdvance  Action = "advance"
	ActionPairing  Action = "pairing"
	ActionAllergy  Action = "allergy"
	ActionSpecial  Action = "special"
	ActionProvided Action = "provided"
)

// Event represents an events row.
type Event struct {
	ID        string
	TableID   string
	Action    Action
	DishIndex *int
	Memo      *string
	CreatedAt time.Time
}

// EventFilter narrows List. Zero values mean no restriction.
type EventFilter struct {
	TableID string
	Action  Action
	Limit   int
}
