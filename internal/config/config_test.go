package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("FLOORBOARD_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, found, err := Load()
	require.NoError(t, err)
	require.False(t, found)
	require.Equal(t, "", cfg.Journal.Path)
	require.True(t, cfg.UI.AltScreen)
	require.Equal(t, 6, cfg.UI.CellWidth)
	require.Equal(t, "15:04:05", cfg.UI.TimeFormat)
	require.True(t, cfg.UI.ConfirmReset)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	t.Setenv("FLOORBOARD_CONFIG", path)

	want := Config{
		Journal: JournalConfig{Path: "/tmp/shift.db"},
		Log:     LogConfig{Path: "/tmp/floorboard.log"},
		UI: UIConfig{
			AltScreen:    false,
			CellWidth:    8,
			Timezone:     "Asia/Tokyo",
			TimeFormat:   "15:04",
			ConfirmReset: false,
		},
	}
	require.NoError(t, Save(want))
	_, err := os.Stat(path)
	require.NoError(t, err)

	got, found, err := Load()
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, want, got)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ncell_width = 9\n"), 0o600))
	t.Setenv("FLOORBOARD_CONFIG", path)
	t.Setenv("FLOORBOARD_UI_CELL_WIDTH", "4")

	cfg, found, err := Load()
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 4, cfg.UI.CellWidth)
}

func TestCellWidthFloor(t *testing.T) {
	t.Setenv("FLOORBOARD_CONFIG", filepath.Join(t.TempDir(), "none.toml"))
	t.Setenv("FLOORBOARD_UI_CELL_WIDTH", "1")

	cfg, _, err := Load()
	require.NoError(t, err)
	require.Equal(t, 3, cfg.UI.CellWidth)
}
