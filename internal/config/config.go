package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/RichardKnop/sqlrite/internal/pkg/logging"
	"github.com/RichardKnop/sqlrite/internal/store"
)

const (
	appName         = "sqlrite"
	configFileName  = "config.yaml"
	historyFileName = "history"
)

type Config struct {
	HistoryFile string `yaml:"history_file"`
	Database    string `yaml:"database"`
	LogLevel    string `yaml:"log_level"`
	NoColor     bool   `yaml:"no_color"`
}

// Default returns the configuration used when neither a config file nor
// flags say otherwise.
func Default() (*Config, error) {
	stateDir, err := StateDir()
	if err != nil {
		return nil, err
	}

	return &Config{
		HistoryFile: filepath.Join(stateDir, historyFileName),
		Database:    store.MemoryTarget,
		LogLevel:    logging.DefaultLevel,
	}, nil
}

// ConfigDir returns $XDG_CONFIG_HOME/sqlrite, falling back to
// ~/.config/sqlrite.
func ConfigDir() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// StateDir returns $XDG_STATE_HOME/sqlrite, falling back to
// ~/.local/state/sqlrite.
func StateDir() (string, error) {
	return xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

func xdgDir(envVar, fallback string) (string, error) {
	base := os.Getenv(envVar)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, fallback)
	}
	return filepath.Join(base, appName), nil
}

// DefaultPath is where Load looks when no --config flag is given.
func DefaultPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load overlays the YAML file at path on top of the defaults. A missing
// file is not an error.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.HistoryFile, err = expandHome(cfg.HistoryFile)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.HistoryFile) == "" {
		return fmt.Errorf("history file cannot be empty")
	}
	if strings.TrimSpace(c.Database) == "" {
		return fmt.Errorf("database cannot be empty")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
