package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/floorboard/internal/database"
)

// MaintenanceService houses destructive actions on the shift log.
type MaintenanceService struct {
	DB *sql.DB
}

// ClearJournal deletes every recorded event. Table state is untouched.
func (s *MaintenanceService) ClearJournal(ctx context.Context) error {
	if s == nil || s.DB == nil {
		return fmt.Errorf("maintenance: db not configured")
	}
	return database.WithTx(s.DB, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM events"); err != nil {
			return fmt.Errorf("clear events: %w", err)
		}
		return nil
	})
}
