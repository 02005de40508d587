package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/modsmith/modsmith/internal/config"
	"github.com/modsmith/modsmith/internal/generator"
	"github.com/modsmith/modsmith/internal/project"
	"github.com/modsmith/modsmith/internal/scaffold"
)

// loadConfig reads the project configuration from the working directory.
func loadConfig() (config.Config, error) {
	return config.Load(config.FileName)
}

// projectID reads just the mod identifier, with MODSMITH_ID environment
// override, for command defaults like archive names.
func projectID() (string, error) {
	v := viper.New()
	v.SetConfigName("modsmith")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvPrefix("MODSMITH")

	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("not in a modsmith project (no modsmith.yml found): %w", err)
	}

	id := v.GetString("id")
	if id == "" {
		return "", fmt.Errorf("modsmith.yml has no id")
	}
	return id, nil
}

// archiveName derives the default zip name from the mod identifier's last
// segment.
func archiveName(id string) string {
	segments := strings.Split(id, ".")
	return segments[len(segments)-1] + ".zip"
}

// regenerateTree rebuilds the project tree for cfg, re-layering assets
// found on disk under root so assistant-added files survive. Returns nil
// when required configuration fields are missing.
func regenerateTree(cfg config.Config, root string) (*project.Tree, error) {
	prev, err := scaffold.ReadAssets(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read existing assets: %w", err)
	}

	fresh, err := generator.New().Generate(cfg)
	if err != nil {
		return nil, err
	}

	store := project.NewStore()
	store.Regenerate(prev)
	return store.Regenerate(fresh), nil
}
