package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ProviderConfig describes one sentiment-classifier collaborator. Providers
// are tried in the order they appear in the config; the first one that
// initializes wins.
type ProviderConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

type ClassifierConfig struct {
	Providers []ProviderConfig `toml:"providers"`
}

// GraphConfig points at the optional Memgraph/Neo4j encounter store. An
// empty URI disables recording entirely.
type GraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type ServerConfig struct {
	Port string `toml:"port"`
}

type Config struct {
	Classifier ClassifierConfig `toml:"classifier"`
	Graph      GraphConfig      `toml:"graph"`
	Server     ServerConfig     `toml:"server"`
}

// Default returns a config that works with no file and no network: the
// lexical classifier only, no graph store.
func Default() *Config {
	return &Config{
		Classifier: ClassifierConfig{
			Providers: []ProviderConfig{{Provider: "lexical"}},
		},
		Server: ServerConfig{Port: "8080"},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	if len(cfg.Classifier.Providers) == 0 {
		cfg.Classifier.Providers = Default().Classifier.Providers
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}

	return &cfg, nil
}
