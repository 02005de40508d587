package main

import (
	"os"

	"github.com/modsmith/modsmith/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	// Always available commands
	rootCmd.AddCommand(commands.NewCmd())

	// Only register project commands inside a modsmith project
	if commands.HasProject() {
		rootCmd.AddCommand(commands.GenerateCmd())
		rootCmd.AddCommand(commands.ApplyCmd())
		rootCmd.AddCommand(commands.PackCmd())
		rootCmd.AddCommand(commands.SettingsCmd())
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
