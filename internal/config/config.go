// internal/config/config.go
//
// This package handles configuration and the .crewcal directory structure.
// Every base directory that hosts planner data gets a .crewcal/ folder.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// CrewcalDir is the name of the data directory we create.
	CrewcalDir = ".crewcal"

	defaultAutosaveDelayMS = 1000
)

// DefaultTeams is the built-in crew roster offered by the task form.
var DefaultTeams = []string{
	"Gypsum - Framing",
	"Gypsum - Board Installation",
	"Wiring Team",
	"AC Team",
	"Lighting Team",
	"Paint Team",
}

const defaultSettingsYAML = `# crewcal configuration
version: 1

# Crew roster offered by the task form. Anything not on this list is treated
# as a custom team and colored under the Other category (unless a palette
# plugin says otherwise).
teams:
  - Gypsum - Framing
  - Gypsum - Board Installation
  - Wiring Team
  - AC Team
  - Lighting Team
  - Paint Team

# Which teams the cross-project dashboard tracks. Prefix entries match whole
# families of custom team names.
dashboard:
  prefixes:
    - "Gypsum "
  teams:
    - Paint Team

# Milliseconds of quiet time before edits are autosaved.
autosave_delay_ms: 1000
`

// DashboardRules selects which teams the dashboard aggregates.
type DashboardRules struct {
	Prefixes []string `yaml:"prefixes"`
	Teams    []string `yaml:"teams"`
}

// Settings models .crewcal/config.yaml.
type Settings struct {
	Version         int            `yaml:"version"`
	Teams           []string       `yaml:"teams"`
	Dashboard       DashboardRules `yaml:"dashboard"`
	AutosaveDelayMS int            `yaml:"autosave_delay_ms"`
}

// Config holds the runtime configuration for crewcal.
type Config struct {
	// BaseDir is the directory hosting the planner data, usually the
	// user's home directory.
	BaseDir string

	// DataDir is BaseDir/.crewcal.
	DataDir string

	Settings Settings
}

// InitCrewcalDir creates the .crewcal directory structure in the given base
// directory. Called once at startup.
//
// Structure created:
// .crewcal/
// ├── config.yaml   <- Settings (seeded with defaults on first run)
// ├── logs/         <- Append-only activity log
// ├── palettes/     <- Palette plugin definitions (*.yaml, *.go)
// └── exports/      <- Snapshot exports
func InitCrewcalDir(baseDir string) error {
	dataDir := filepath.Join(baseDir, CrewcalDir)
	dirs := []string{
		filepath.Join(dataDir, "logs"),
		filepath.Join(dataDir, "palettes"),
		filepath.Join(dataDir, "exports"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return ensureSettingsFile(filepath.Join(dataDir, "config.yaml"))
}

// NewConfig creates a Config populated from the base directory's settings
// file, falling back to defaults when it is absent.
func NewConfig(baseDir string) (*Config, error) {
	cfg := &Config{
		BaseDir:  baseDir,
		DataDir:  filepath.Join(baseDir, CrewcalDir),
		Settings: defaultSettings(),
	}
	if err := cfg.loadSettings(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SettingsPath returns the on-disk location for the settings file.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.DataDir, "config.yaml")
}

// ProjectsPath returns the file holding every stored project.
func (c *Config) ProjectsPath() string {
	return filepath.Join(c.DataDir, "projects.json")
}

// CurrentIDPath returns the file holding the active project's identifier.
func (c *Config) CurrentIDPath() string {
	return filepath.Join(c.DataDir, "current")
}

// LogsDir returns the path to the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.DataDir, "logs")
}

// PalettesDir returns the directory scanned for palette plugins.
func (c *Config) PalettesDir() string {
	return filepath.Join(c.DataDir, "palettes")
}

// ExportsDir returns the directory snapshot exports are written to.
func (c *Config) ExportsDir() string {
	return filepath.Join(c.DataDir, "exports")
}

// Teams returns the configured crew roster.
func (c *Config) Teams() []string {
	return c.Settings.Teams
}

// DashboardRules returns the dashboard team selection rules.
func (c *Config) DashboardRules() DashboardRules {
	return c.Settings.Dashboard
}

// AutosaveDelay returns the debounce window for autosaving edits.
func (c *Config) AutosaveDelay() time.Duration {
	return time.Duration(c.Settings.AutosaveDelayMS) * time.Millisecond
}

func (c *Config) loadSettings() error {
	path := c.SettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed Settings
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Settings = parsed
	return nil
}

func defaultSettings() Settings {
	teams := make([]string, len(DefaultTeams))
	copy(teams, DefaultTeams)
	return Settings{
		Version: 1,
		Teams:   teams,
		Dashboard: DashboardRules{
			Prefixes: []string{"Gypsum "},
			Teams:    []string{"Paint Team"},
		},
		AutosaveDelayMS: defaultAutosaveDelayMS,
	}
}

func (s *Settings) applyDefaults() {
	if s.Version == 0 {
		s.Version = 1
	}
	if len(s.Teams) == 0 {
		s.Teams = append(s.Teams, DefaultTeams...)
	}
	if s.AutosaveDelayMS == 0 {
		s.AutosaveDelayMS = defaultAutosaveDelayMS
	}
}

func (s *Settings) normalize() {
	s.Teams = trimNonEmpty(s.Teams, true)
	// Prefixes keep trailing spaces: "Gypsum " must not match bare "Gypsum".
	s.Dashboard.Prefixes = trimNonEmpty(s.Dashboard.Prefixes, false)
	s.Dashboard.Teams = trimNonEmpty(s.Dashboard.Teams, true)
}

func (s Settings) validate() error {
	if s.Version < 1 {
		return fmt.Errorf("version must be >= 1")
	}
	if len(s.Teams) == 0 {
		return fmt.Errorf("at least one roster team is required")
	}
	if s.AutosaveDelayMS < 0 {
		return fmt.Errorf("autosave_delay_ms must not be negative")
	}
	return nil
}

// trimNonEmpty drops blank entries. When trim is true, entries are also
// whitespace-trimmed.
func trimNonEmpty(values []string, trim bool) []string {
	var out []string
	for _, v := range values {
		candidate := v
		if trim {
			candidate = strings.TrimSpace(v)
		}
		if strings.TrimSpace(candidate) == "" {
			continue
		}
		out = append(out, candidate)
	}
	return out
}

func ensureSettingsFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultSettingsYAML), 0o644)
}
