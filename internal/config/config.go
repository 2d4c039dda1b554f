package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/alanh90/TimesheetSimplifier/internal/util"
)

// Config is the application configuration, loaded from config.toml with
// built-in defaults and TIMESHEET_* environment overrides.
type Config struct {
	App      AppConfig      `toml:"app"`
	Paths    PathsConfig    `toml:"paths"`
	Files    FilesConfig    `toml:"files"`
	Features FeaturesConfig `toml:"features"`
}

// AppConfig identifies the installation.
type AppConfig struct {
	Name         string `toml:"name"`
	Version      string `toml:"version"`
	Organization string `toml:"organization"`
	Team         string `toml:"team"`
}

// PathsConfig holds the data directories.
type PathsConfig struct {
	ChargeCodesDir string `toml:"charge_codes_dir"`
	DataDir        string `toml:"data_dir"`
	ExportDir      string `toml:"export_dir"`
}

// FilesConfig holds file names and discovery patterns.
type FilesConfig struct {
	ChargeCodePatterns []string `toml:"charge_code_patterns"`
	TimeEntriesFile    string   `toml:"time_entries_file"`
	TemplatesFile      string   `toml:"templates_file"`
}

// FeaturesConfig holds tunable business limits.
type FeaturesConfig struct {
	MaxHoursPerDay float64 `toml:"max_hours_per_day"`
	DefaultHours   float64 `toml:"default_hours"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:    "Timesheet Simplifier",
			Version: "1.0.0",
		},
		Paths: PathsConfig{
			ChargeCodesDir: "./charge_codes",
			DataDir:        "./data",
			ExportDir:      "./exports",
		},
		Files: FilesConfig{
			ChargeCodePatterns: []string{"*.xlsx", "*.xls", "*.csv"},
			TimeEntriesFile:    "time_entries.json",
			TemplatesFile:      "templates.json",
		},
		Features: FeaturesConfig{
			MaxHoursPerDay: 24,
			DefaultHours:   8,
		},
	}
}

// Load reads the TOML config at path, falling back to defaults when the file
// does not exist. Zero values in the file are backfilled with defaults so a
// partially filled config is always usable. A .env file in the working
// directory and TIMESHEET_* environment variables override paths and limits.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
		util.LogDebugf("Loaded configuration from %s", path)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg.applyDefaults()
	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyDefaults backfills zero values with the built-in defaults.
func (c *Config) applyDefaults() {
	def := Default()
	if c.App.Name == "" {
		c.App.Name = def.App.Name
	}
	if c.App.Version == "" {
		c.App.Version = def.App.Version
	}
	if c.Paths.ChargeCodesDir == "" {
		c.Paths.ChargeCodesDir = def.Paths.ChargeCodesDir
	}
	if c.Paths.DataDir == "" {
		c.Paths.DataDir = def.Paths.DataDir
	}
	if c.Paths.ExportDir == "" {
		c.Paths.ExportDir = def.Paths.ExportDir
	}
	if len(c.Files.ChargeCodePatterns) == 0 {
		c.Files.ChargeCodePatterns = def.Files.ChargeCodePatterns
	}
	if c.Files.TimeEntriesFile == "" {
		c.Files.TimeEntriesFile = def.Files.TimeEntriesFile
	}
	if c.Files.TemplatesFile == "" {
		c.Files.TemplatesFile = def.Files.TemplatesFile
	}
	if c.Features.MaxHoursPerDay <= 0 {
		c.Features.MaxHoursPerDay = def.Features.MaxHoursPerDay
	}
	if c.Features.DefaultHours <= 0 {
		c.Features.DefaultHours = def.Features.DefaultHours
	}
}

// applyEnvOverrides loads a .env file if present and applies TIMESHEET_*
// variables on top of the file configuration.
func (c *Config) applyEnvOverrides() {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	if v := os.Getenv("TIMESHEET_CHARGE_CODES_DIR"); v != "" {
		c.Paths.ChargeCodesDir = v
	}
	if v := os.Getenv("TIMESHEET_DATA_DIR"); v != "" {
		c.Paths.DataDir = v
	}
	if v := os.Getenv("TIMESHEET_EXPORT_DIR"); v != "" {
		c.Paths.ExportDir = v
	}
	if v := os.Getenv("TIMESHEET_MAX_HOURS_PER_DAY"); v != "" {
		if hours, err := strconv.ParseFloat(v, 64); err == nil && hours > 0 {
			c.Features.MaxHoursPerDay = hours
		} else {
			util.LogWarnf("Ignoring invalid TIMESHEET_MAX_HOURS_PER_DAY value %q", v)
		}
	}
}

// EnsureDirectories creates the charge-code, data, and export directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.ChargeCodesDir, c.Paths.DataDir, c.Paths.ExportDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	return nil
}

// EntriesFilePath returns the full path of the persisted entry store.
func (c *Config) EntriesFilePath() string {
	return filepath.Join(c.Paths.DataDir, c.Files.TimeEntriesFile)
}

// TemplatesFilePath returns the full path of the persisted template store.
func (c *Config) TemplatesFilePath() string {
	return filepath.Join(c.Paths.DataDir, c.Files.TemplatesFile)
}
