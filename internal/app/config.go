package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/vk/firmgen/internal/boards"
)

// ConfigFileName is the optional per-project configuration file.
const ConfigFileName = "firmgen.toml"

// Categories the capability filter understands.
var knownCategories = map[string]struct{}{
	"sensors":     {},
	"actuators":   {},
	"calibration": {},
}

// Config holds everything one invocation needs.
type Config struct {
	ProjectDir string
	Board      string

	Categories           []string
	ModulesFile          string
	Plugins              []string
	Target               string
	StatusUpdateInterval time.Duration

	// LocalServerURL points at the document store serving module
	// definitions. Empty disables the remote source.
	LocalServerURL string

	LogFormat string
	LogLevel  string
}

// fileConfig is the shape of firmgen.toml.
type fileConfig struct {
	LocalServer struct {
		URL string `toml:"url"`
	} `toml:"local_server"`
	Defaults struct {
		Board      string   `toml:"board"`
		Categories []string `toml:"categories"`
	} `toml:"defaults"`
}

// NewConfig applies defaults, merges the project's firmgen.toml (flags win
// over file values), and validates the result.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ProjectDir == "" {
		cfg.ProjectDir = "."
	}
	abs, err := filepath.Abs(cfg.ProjectDir)
	if err != nil {
		return nil, err
	}
	cfg.ProjectDir = abs

	if err := cfg.mergeProjectFile(); err != nil {
		return nil, err
	}

	if cfg.Board == "" {
		cfg.Board = boards.DefaultBoard
	}
	if len(cfg.Categories) == 0 {
		cfg.Categories = []string{"sensors", "actuators"}
	}
	if cfg.StatusUpdateInterval <= 0 {
		cfg.StatusUpdateInterval = 5 * time.Second
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	for _, c := range cfg.Categories {
		if _, ok := knownCategories[c]; !ok {
			return nil, fmt.Errorf("unknown category %q (known: sensors, actuators, calibration)", c)
		}
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format: must be 'text' or 'json'")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	return &cfg, nil
}

// mergeProjectFile fills unset fields from firmgen.toml if one exists in the
// project directory.
func (c *Config) mergeProjectFile() error {
	path := filepath.Join(c.ProjectDir, ConfigFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return fmt.Errorf("reading %s: %w", ConfigFileName, err)
	}

	if c.LocalServerURL == "" {
		c.LocalServerURL = fc.LocalServer.URL
	}
	if c.Board == "" {
		c.Board = fc.Defaults.Board
	}
	if len(c.Categories) == 0 {
		c.Categories = fc.Defaults.Categories
	}
	return nil
}
