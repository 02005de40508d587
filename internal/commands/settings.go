package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/modsmith/modsmith/internal/config"
	"github.com/modsmith/modsmith/internal/output"
)

// SettingsCmd creates and returns the 'settings' command group for
// managing custom settings in modsmith.yml.
func SettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage the mod's custom settings",
	}

	cmd.AddCommand(settingsListCmd())
	cmd.AddCommand(settingsAddCmd())

	return cmd
}

func settingsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List custom settings",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := loadConfig()
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			if len(cfg.Settings) == 0 {
				output.Info("No custom settings defined")
				return
			}

			output.Info(fmt.Sprintf("%d custom setting(s):", len(cfg.Settings)))
			for _, s := range cfg.Settings {
				output.Step(fmt.Sprintf("%s (%s) = %v  %s", s.Key, s.Type, s.Default, s.Name))
			}
		},
	}
}

func settingsAddCmd() *cobra.Command {
	var name, description, typeTag, defaultRaw string

	cmd := &cobra.Command{
		Use:   "add [key]",
		Short: "Add a custom setting",
		Long: `Adds a custom setting to modsmith.yml. The default value is parsed
according to the type; an unparseable default falls back to the type's zero
value.

Example:
  modsmith settings add speed --type float --name "Speed" --default 1.5`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			key := args[0]

			typ := config.SettingType(typeTag)
			if !typ.Valid() {
				output.Error(fmt.Sprintf("unknown type %q (bool, int, float, string)", typeTag))
				os.Exit(1)
			}

			cfg, err := loadConfig()
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			for _, s := range cfg.Settings {
				if s.Key == key {
					output.Error(fmt.Sprintf("setting %q already exists", key))
					os.Exit(1)
				}
			}

			if name == "" {
				name = key
			}
			setting := config.NewSetting(key, name, typ)
			setting.Description = description
			if defaultRaw != "" {
				setting.Default = parseDefault(typ, defaultRaw)
			}

			cfg.Settings = append(cfg.Settings, setting)
			if err := config.Save(config.FileName, cfg); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			output.Success(fmt.Sprintf("Added setting %s (%s)", key, typ))
			output.Info("Run 'modsmith generate' to update the generated files")
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name (defaults to the key)")
	cmd.Flags().StringVar(&description, "description", "", "Setting description")
	cmd.Flags().StringVar(&typeTag, "type", "string", "Value type: bool, int, float or string")
	cmd.Flags().StringVar(&defaultRaw, "default", "", "Default value")

	return cmd
}

// parseDefault parses a textual default into the type's runtime
// representation, falling back to the zero value.
func parseDefault(typ config.SettingType, raw string) any {
	switch typ {
	case config.SettingBool:
		if b, err := strconv.ParseBool(raw); err == nil {
			return b
		}
		return typ.Zero()
	default:
		return typ.Coerce(raw)
	}
}
