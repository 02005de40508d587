package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/modsmith/modsmith/internal/output"
	"github.com/modsmith/modsmith/internal/scaffold"
)

// GenerateCmd creates and returns the 'generate' command: regenerate the
// project from modsmith.yml.
func GenerateCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Regenerate the project from modsmith.yml",
		Long: `Regenerates every generated file from the current configuration.

Assets under assets/ that are not the logo or the directory placeholder are
preserved, so files added by the assistant or by hand survive regeneration.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := loadConfig()
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			for _, p := range cfg.Validate() {
				output.Warn(p.String())
			}

			tree, err := regenerateTree(cfg, ".")
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}
			if tree == nil {
				output.Error("configuration incomplete: id, name and developer are required")
				os.Exit(1)
			}

			ops, err := scaffold.TreeOps(tree, ".")
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			opts := scaffold.ExecuteOptions{Force: true, DryRun: dryRun}
			if err := scaffold.Execute(context.Background(), ops, opts); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			output.Success(fmt.Sprintf("Regenerated %d files for %s", tree.Len(), cfg.ID))
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be written without writing")

	return cmd
}
