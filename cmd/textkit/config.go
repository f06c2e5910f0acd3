package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings read from the YAML config file. Every field has
// a usable default, so the file itself is optional.
type Config struct {
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
	Database struct {
		Driver string `yaml:"driver"`
		DSN    string `yaml:"dsn"`
	} `yaml:"database"`
	Sentiment struct {
		Lexicon string `yaml:"lexicon"`
		WordNet string `yaml:"wordnet"`
	} `yaml:"sentiment"`
}

func defaultConfig() Config {
	var cfg Config
	cfg.Logging.Level = "info"
	cfg.Logging.Format = "text"
	cfg.Database.Driver = "sqlite3"
	cfg.Database.DSN = "textkit.db"
	return cfg
}

// loadConfig reads the config file at path, or returns the defaults when
// path is empty.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
