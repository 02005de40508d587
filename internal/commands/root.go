package commands

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/modsmith/modsmith/internal/output"
)

// Version is the modsmith CLI version.
const Version = "0.1.0"

// RootCmd creates and returns the root command for the modsmith CLI.
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "modsmith",
		Short: "Scaffold and evolve Geode mod projects",
		Long: `Modsmith generates a complete mod project from a declarative configuration.

• Scaffold a manifest, build script, code stub, docs and CI in one step
• Regenerate as the configuration evolves, preserving added assets
• Apply assistant-issued file changes and pack builds for distribution`,
		Version: Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}

// HasProject checks if the current directory holds a modsmith project
// (a modsmith.yml with an id).
func HasProject() bool {
	data, err := os.ReadFile("modsmith.yml")
	if err != nil {
		return false
	}

	var cfg struct {
		ID string `yaml:"id"`
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return false
	}

	return cfg.ID != ""
}
