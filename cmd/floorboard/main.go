package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/floorboard/internal/config"
	"github.com/jask/floorboard/internal/database"
	"github.com/jask/floorboard/internal/database/repository"
	"github.com/jask/floorboard/internal/floor"
	"github.com/jask/floorboard/internal/service"
	"github.com/jask/floorboard/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, found, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if !found {
		if err := config.Save(cfg); err != nil {
			log.Printf("warn: could not write default config: %v", err)
		}
	}

	db, services, err := setup(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer db.Close()

	loc, err := time.LoadLocation(cfg.UI.Timezone)
	if err != nil {
		log.Printf("warn: using local timezone due to load failure: %v", err)
		loc = time.Local
	}

	// startup errors above still reach stderr; from here the terminal
	// belongs to the program, so logs go to a file or nowhere
	if cfg.Log.Path != "" {
		f, err := tea.LogToFile(cfg.Log.Path, "floorboard")
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(tui.New(ctx, cfg, services, loc), opts...)
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

// setup opens the journal and builds the services the UI runs on. It does
// not touch the logger.
func setup(cfg config.Config) (*sql.DB, tui.Services, error) {
	if cfg.Journal.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Journal.Path), 0o755); err != nil {
			return nil, tui.Services{}, fmt.Errorf("mkdir journal dir: %w", err)
		}
	}
	db, err := database.OpenMigrated(cfg.Journal.Path)
	if err != nil {
		return nil, tui.Services{}, fmt.Errorf("open journal: %w", err)
	}

	services := tui.Services{
		Floor:       service.NewFloorService(floor.NewStore()),
		Journal:     &service.Journal{Events: repository.NewEventRepo(db)},
		Maintenance: &service.MaintenanceService{DB: db},
	}
	return db, services, nil
}
