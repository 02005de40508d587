package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/modsmith/modsmith/internal/archive"
	"github.com/modsmith/modsmith/internal/output"
)

// PackCmd creates and returns the 'pack' command: serialize the project
// into a zip archive.
func PackCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Pack the project into a zip archive",
		Long: `Regenerates the project tree from modsmith.yml, re-layers preserved
assets, and writes everything into a zip archive. Text files are stored
verbatim; binary assets are decoded from base64.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := loadConfig()
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
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

			if outPath == "" {
				id, err := projectID()
				if err != nil {
					output.Error(err.Error())
					os.Exit(1)
				}
				outPath = archiveName(id)
			}

			if err := archive.WriteFile(tree, outPath); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			output.Success(fmt.Sprintf("Packed %d files into %s", tree.Len(), outPath))
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Archive path (default <mod>.zip)")

	return cmd
}
