// Package config loads solver settings from YAML or JSON files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/winnow/pkg/domain"
)

// Config is the full configuration surface of the solver binary.
// Zero values fall back to the defaults from Default.
type Config struct {
	// Words is the path to the word list file.
	Words string `yaml:"words" json:"words"`

	// Letters is the word length to play with.
	Letters int `yaml:"letters" json:"letters"`

	// Guesses is how many guesses each game allows.
	Guesses int `yaml:"guesses" json:"guesses"`

	// Pool selects the guess pool: "candidates" or "dictionary".
	Pool string `yaml:"pool" json:"pool"`

	// Opening fixes the first guess instead of searching for it.
	Opening string `yaml:"opening" json:"opening"`

	// ProperNouns keeps capitalized word-list entries.
	ProperNouns bool `yaml:"proper_nouns" json:"proper_nouns"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" json:"log_level"`

	Server ServerConfig `yaml:"server" json:"server"`
	Redis  RedisConfig  `yaml:"redis" json:"redis"`
}

// ServerConfig configures the dashboard server.
type ServerConfig struct {
	Address string `yaml:"address" json:"address"`
}

// RedisConfig configures the shared opening book. An empty address
// disables Redis and the solver falls back to an in-memory book.
type RedisConfig struct {
	Address  string `yaml:"address" json:"address"`
	Password string `yaml:"password" json:"password"`
	DB       int    `yaml:"db" json:"db"`

	// Prefix namespaces the cached opening keys.
	Prefix string `yaml:"prefix" json:"prefix"`

	// TTL is a duration string ("24h", "90m"); empty means no expiry.
	TTL string `yaml:"ttl" json:"ttl"`
}

// TTLDuration parses the configured TTL.
func (r RedisConfig) TTLDuration() (time.Duration, error) {
	if r.TTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(r.TTL)
	if err != nil {
		return 0, fmt.Errorf("invalid redis ttl %q: %w", r.TTL, err)
	}
	return d, nil
}

// Default returns the configuration used when no file overrides it.
func Default() Config {
	return Config{
		Letters:  5,
		Guesses:  6,
		Pool:     string(domain.PoolCandidates),
		LogLevel: "info",
		Server:   ServerConfig{Address: ":8080"},
	}
}

// Load reads the configuration file at path on top of the defaults.
// A missing file is not an error; it simply yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field ranges and enumerations.
func (c Config) Validate() error {
	if c.Letters <= 0 {
		return fmt.Errorf("letters must be positive, got %d", c.Letters)
	}
	if c.Guesses <= 0 {
		return fmt.Errorf("guesses must be positive, got %d", c.Guesses)
	}
	if _, err := domain.ParsePoolPolicy(c.Pool); err != nil {
		return err
	}
	if _, err := c.Redis.TTLDuration(); err != nil {
		return err
	}
	return nil
}
