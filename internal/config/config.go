package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

const (
	AppName    = "Translation"
	AppVersion = "1.0.0"

	// SingleForm is the form identifier the translation entity is bound to.
	// The field schema and the language taxonomy are both keyed by it.
	SingleForm = "translation-single"

	// ItemsPerPage is the page size used by the paginated list view.
	ItemsPerPage = 3
)

type Config struct {
	Addr        string   `yaml:"addr"`
	LogLevel    string   `yaml:"log_level"`
	DataDir     string   `yaml:"data_dir"`
	DBPath      string   `yaml:"db_path"`
	LanguageDir string   `yaml:"language_dir"`
	Languages   []string `yaml:"languages"`
}

// DefaultLanguage is the locale used when a request does not name one.
// The first configured language wins.
func (c Config) DefaultLanguage() string {
	if len(c.Languages) == 0 {
		return "en_US"
	}
	return c.Languages[0]
}

// Load builds the configuration from defaults, an optional YAML file
// (TRANSLATION_CONFIG) and environment overrides, in that order.
func Load() (Config, error) {
	cfg := Config{
		Addr:      ":8080",
		LogLevel:  "info",
		DataDir:   "./data",
		Languages: []string{"en_US", "de_DE"},
	}

	if path := os.Getenv("TRANSLATION_CONFIG"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	if v := os.Getenv("TRANSLATION_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("TRANSLATION_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TRANSLATION_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("TRANSLATION_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("TRANSLATION_LANGUAGE_DIR"); v != "" {
		cfg.LanguageDir = v
	}
	if v := os.Getenv("TRANSLATION_LANGUAGES"); v != "" {
		cfg.Languages = splitList(v)
	}

	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "translation.db")
	}
	if cfg.LanguageDir == "" {
		cfg.LanguageDir = filepath.Join(cfg.DataDir, "language")
	}
	if len(cfg.Languages) == 0 {
		return Config{}, fmt.Errorf("no active languages configured")
	}

	cfg.DataDir = filepath.Clean(cfg.DataDir)
	cfg.DBPath = filepath.Clean(cfg.DBPath)
	cfg.LanguageDir = filepath.Clean(cfg.LanguageDir)

	return cfg, nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
