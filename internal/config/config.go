package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/animalquiz/internal/quiz"
)

// DefaultSiteURL is the canonical URL used in share text when none is configured.
const DefaultSiteURL = "https://animalquiz.example.com"

// Config is the application configuration.
type Config struct {
	Site struct {
		URL string `yaml:"url"`
	} `yaml:"site"`
	Assets struct {
		// BaseURL prefixes category image paths. Empty means Site.URL.
		BaseURL string `yaml:"base_url"`
	} `yaml:"assets"`
	Log struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"log"`
	Quiz struct {
		// Seed makes option order reproducible. 0 means random.
		Seed uint64 `yaml:"seed"`
	} `yaml:"quiz"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	var cfg Config
	cfg.Site.URL = DefaultSiteURL
	cfg.Log.Level = "info"
	return cfg
}

// Load reads the YAML config at path, validates it, and applies
// environment overrides. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults only
	case err != nil:
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := validate(data); err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	cfg.Site.URL = strings.TrimRight(cfg.Site.URL, "/")
	if cfg.Site.URL == "" {
		cfg.Site.URL = DefaultSiteURL
	}
	return cfg, nil
}

// applyEnv overrides file values with ANIMALQUIZ_* environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("ANIMALQUIZ_SITE_URL"); v != "" {
		cfg.Site.URL = v
	}
	if v := os.Getenv("ANIMALQUIZ_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("ANIMALQUIZ_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}

// ImageURL resolves a category's image asset against the asset base URL.
func (c Config) ImageURL(cat quiz.Category) string {
	base := c.Assets.BaseURL
	if base == "" {
		base = c.Site.URL
	}
	return strings.TrimRight(base, "/") + quiz.ImagePath(cat)
}

// DefaultPath resolves the config file path in priority order:
// 1. ANIMALQUIZ_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/animalquiz/config.yaml
// 3. ~/.config/animalquiz/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv("ANIMALQUIZ_CONFIG"); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "animalquiz", "config.yaml"), nil
}
