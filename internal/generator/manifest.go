package generator

import (
	"encoding/json"
	"fmt"

	"github.com/modsmith/modsmith/internal/config"
	"github.com/modsmith/modsmith/internal/project"
)

// Manifest is the mod.json model. Optional fields carry omitempty so the
// emitted manifest only contains what the configuration actually sets.
type Manifest struct {
	Geode        string                     `json:"geode"`
	GD           map[string]string          `json:"gd"`
	ID           string                     `json:"id"`
	Name         string                     `json:"name"`
	Version      string                     `json:"version"`
	Developer    string                     `json:"developer"`
	Description  string                     `json:"description"`
	Icon         string                     `json:"icon,omitempty"`
	Repository   string                     `json:"repository,omitempty"`
	API          bool                       `json:"api,omitempty"`
	EarlyLoad    bool                       `json:"early-load,omitempty"`
	Tags         []string                   `json:"tags,omitempty"`
	Dependencies []Dependency               `json:"dependencies,omitempty"`
	Settings     map[string]ManifestSetting `json:"settings,omitempty"`
}

// ManifestSetting is one custom setting as serialized into mod.json.
type ManifestSetting struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"`
	Default     any    `json:"default"`
}

// buildManifest maps a configuration onto the manifest model.
func buildManifest(cfg config.Config) Manifest {
	m := Manifest{
		Geode:       fallback(cfg.GeodeVersion, "*"),
		GD:          make(map[string]string),
		ID:          fallback(cfg.ID, "com.example.unnamed"),
		Name:        fallback(cfg.Name, "Unnamed Mod"),
		Version:     fallback(cfg.Version, "v1.0.0"),
		Developer:   fallback(cfg.Developer, "Unknown Developer"),
		Description: fallback(cfg.Description, "A brand new mod."),
		Repository:  cfg.Repository,
		API:         cfg.API,
		EarlyLoad:   cfg.EarlyLoad,
		Tags:        splitTags(cfg.Tags),
	}

	for _, p := range cfg.EnabledPlatforms() {
		m.GD[string(p)] = fallback(cfg.GDVersion, "*")
	}

	if cfg.Logo != "" {
		m.Icon = project.LogoPath
	}

	m.Dependencies = ParseDependencyList(cfg.Dependencies)

	if len(cfg.Settings) > 0 {
		m.Settings = make(map[string]ManifestSetting, len(cfg.Settings))
		for _, s := range cfg.Settings {
			m.Settings[s.Key] = ManifestSetting{
				Name:        s.Name,
				Description: s.Description,
				Type:        string(s.Type),
				Default:     s.Type.Coerce(s.Default),
			}
		}
	}

	return m
}

// renderManifest serializes the manifest with stable key order.
// encoding/json sorts map keys, so output is byte-identical per config.
func renderManifest(cfg config.Config) (string, error) {
	data, err := json.MarshalIndent(buildManifest(cfg), "", "\t")
	if err != nil {
		return "", fmt.Errorf("failed to marshal manifest: %w", err)
	}
	return string(data) + "\n", nil
}

// fallback substitutes a placeholder when v is empty. Generation is total:
// missing fields never error, they render as placeholders.
func fallback(v, placeholder string) string {
	if v == "" {
		return placeholder
	}
	return v
}
