package balance

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a full balance table from a yaml file and validates it.
// The file replaces the built-in table wholesale.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read balance file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse balance file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid balance file %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadOrDefault loads a balance file when path is non-empty, falling back to
// the built-in table otherwise.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Save writes the table as yaml, mainly so a default file can be generated
// and hand-tuned.
func (c *Config) Save(path string) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal balance: %w", err)
	}
	return os.WriteFile(path, b, 0o644)
}
