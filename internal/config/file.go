package config

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file written next to the generated
// sources.
const FileName = "modsmith.yml"

// Load reads a configuration from path. Setting identities are not
// persisted, so each loaded setting receives a fresh one.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", path, err)
	}

	if cfg.Platforms == nil {
		cfg.Platforms = make(map[Platform]bool)
	}
	for i := range cfg.Settings {
		cfg.Settings[i].ID = uuid.New()
		cfg.Settings[i].Default = cfg.Settings[i].Type.Coerce(cfg.Settings[i].Default)
	}

	return cfg, nil
}

// Save writes the configuration to path as YAML.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
