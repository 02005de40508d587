package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/modsmith/modsmith/internal/config"
	"github.com/modsmith/modsmith/internal/exec"
	"github.com/modsmith/modsmith/internal/generator"
	"github.com/modsmith/modsmith/internal/input"
	"github.com/modsmith/modsmith/internal/output"
	"github.com/modsmith/modsmith/internal/scaffold"
	"github.com/modsmith/modsmith/internal/wizard"
)

// NewCmd creates and returns the 'new' command for scaffolding projects.
func NewCmd() *cobra.Command {
	var noWizard, noGit, force bool

	cmd := &cobra.Command{
		Use:   "new [directory]",
		Short: "Create a new mod project",
		Long: `Creates a new mod project with:
• Manifest (mod.json)
• Build script (CMakeLists.txt)
• Code stub for the chosen template
• Docs, license, .gitignore and CI workflow

Example:
  modsmith new my-mod`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			cfg, err := buildConfig(noWizard)
			if err != nil {
				if errors.Is(err, wizard.ErrCancelled) {
					output.Info("Cancelled, nothing written")
					return
				}
				output.Error(err.Error())
				os.Exit(1)
			}

			for _, p := range cfg.Validate() {
				output.Warn(p.String())
			}

			if !cfg.Complete() {
				output.Error("id, name and developer are required")
				os.Exit(1)
			}

			output.Verbose(fmt.Sprintf("Creating mod project: %s", cfg.ID))

			tree, err := generator.New().Generate(cfg)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			ops, err := scaffold.TreeOps(tree, dir)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			ctx := context.Background()
			if err := scaffold.Execute(ctx, ops, scaffold.ExecuteOptions{Force: force}); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			if !noGit && input.Confirm("Initialize a git repository?", true) {
				e := exec.New(&exec.Options{Dir: dir})
				if err := e.RunWithSpinner(ctx, "Initializing git repository", "git", "init"); err != nil {
					output.Warn(fmt.Sprintf("git init failed: %v", err))
				}
			}

			output.Success(fmt.Sprintf("Created mod project: %s", cfg.ID))
			output.Info("Next steps:")
			output.Step(fmt.Sprintf("cd %s", dir))
			output.Step("geode build")
		},
	}

	cmd.Flags().BoolVar(&noWizard, "no-wizard", false, "Skip the interactive form and use plain prompts")
	cmd.Flags().BoolVar(&noGit, "no-git", false, "Do not initialize a git repository")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing files")

	return cmd
}

// buildConfig collects a configuration interactively.
func buildConfig(noWizard bool) (config.Config, error) {
	cfg := config.Default()

	if noWizard {
		cfg.ID = input.Prompt("Mod ID", "")
		cfg.Name = input.Prompt("Mod name", "")
		cfg.Developer = input.Prompt("Developer", "")
		cfg.Description = input.Prompt("Description", "")
		return cfg, nil
	}

	return wizard.Run(cfg)
}
