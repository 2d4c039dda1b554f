package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, "./charge_codes", cfg.Paths.ChargeCodesDir)
	assert.Equal(t, "./data", cfg.Paths.DataDir)
	assert.Equal(t, "./exports", cfg.Paths.ExportDir)
	assert.Equal(t, []string{"*.xlsx", "*.xls", "*.csv"}, cfg.Files.ChargeCodePatterns)
	assert.Equal(t, "time_entries.json", cfg.Files.TimeEntriesFile)
	assert.Equal(t, 24.0, cfg.Features.MaxHoursPerDay)
	assert.Equal(t, 8.0, cfg.Features.DefaultHours)
}

func TestLoadPartialFileBackfillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[paths]
data_dir = "/tmp/timesheet-data"

[features]
max_hours_per_day = 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/timesheet-data", cfg.Paths.DataDir)
	assert.Equal(t, 10.0, cfg.Features.MaxHoursPerDay)
	// Untouched settings keep their defaults.
	assert.Equal(t, "./charge_codes", cfg.Paths.ChargeCodesDir)
	assert.Equal(t, 8.0, cfg.Features.DefaultHours)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("paths = not valid toml"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TIMESHEET_DATA_DIR", "/tmp/override-data")
	t.Setenv("TIMESHEET_MAX_HOURS_PER_DAY", "12.5")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/override-data", cfg.Paths.DataDir)
	assert.Equal(t, 12.5, cfg.Features.MaxHoursPerDay)
}

func TestEnvOverrideIgnoresInvalidCap(t *testing.T) {
	t.Setenv("TIMESHEET_MAX_HOURS_PER_DAY", "plenty")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, 24.0, cfg.Features.MaxHoursPerDay)
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := Default()
	cfg.Paths.ChargeCodesDir = filepath.Join(base, "charge_codes")
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.ExportDir = filepath.Join(base, "exports")

	require.NoError(t, cfg.EnsureDirectories())

	for _, dir := range []string{cfg.Paths.ChargeCodesDir, cfg.Paths.DataDir, cfg.Paths.ExportDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestFilePathHelpers(t *testing.T) {
	cfg := Default()
	cfg.Paths.DataDir = "/srv/timesheet"

	assert.Equal(t, filepath.Join("/srv/timesheet", "time_entries.json"), cfg.EntriesFilePath())
	assert.Equal(t, filepath.Join("/srv/timesheet", "templates.json"), cfg.TemplatesFilePath())
}
