// Package wizard drives the interactive configuration form for new mod
// projects.
package wizard

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/modsmith/modsmith/internal/config"
)

// ErrCancelled is returned when the user aborts the form.
var ErrCancelled = errors.New("wizard cancelled")

// Run edits a configuration through an interactive form, starting from the
// given defaults. Identifier problems are not enforced here; validation is
// a hint, never a gate.
func Run(defaults config.Config) (config.Config, error) {
	cfg := defaults

	template := string(cfg.Template)
	selected := cfg.EnabledPlatforms()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Mod ID").
				Description("Dotted lowercase segments, e.g. dev.my-mod").
				Value(&cfg.ID),
			huh.NewInput().
				Title("Mod name").
				Value(&cfg.Name),
			huh.NewInput().
				Title("Developer").
				Value(&cfg.Developer),
			huh.NewInput().
				Title("Version").
				Value(&cfg.Version),
			huh.NewText().
				Title("Description").
				Value(&cfg.Description),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Code template").
				Options(
					huh.NewOption("Menu hook - adds a label to the main menu", string(config.TemplateMenu)),
					huh.NewOption("Play hook - notification when quitting a level", string(config.TemplatePlay)),
					huh.NewOption("Settings hook - menu button opening a settings popup", string(config.TemplateSettings)),
				).
				Value(&template),
			huh.NewMultiSelect[config.Platform]().
				Title("Platforms").
				Options(
					huh.NewOption("Windows", config.PlatformWindows),
					huh.NewOption("macOS", config.PlatformMac),
					huh.NewOption("Android (32-bit)", config.PlatformAndroid32),
					huh.NewOption("Android (64-bit)", config.PlatformAndroid64),
					huh.NewOption("iOS", config.PlatformIOS),
				).
				Value(&selected),
			huh.NewInput().
				Title("Target game version").
				Description("Leave empty for any (*)").
				Value(&cfg.GDVersion),
			huh.NewInput().
				Title("Geode version").
				Value(&cfg.GeodeVersion),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Tags").
				Description("Comma-separated, e.g. gameplay, ui").
				Value(&cfg.Tags),
			huh.NewInput().
				Title("Dependencies").
				Description("Comma-separated id@version tokens").
				Value(&cfg.Dependencies),
			huh.NewInput().
				Title("Repository URL").
				Value(&cfg.Repository),
			huh.NewConfirm().
				Title("Include a CI build workflow?").
				Value(&cfg.CI),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return cfg, ErrCancelled
		}
		return cfg, fmt.Errorf("wizard error: %w", err)
	}

	cfg.Template = config.Template(template)
	cfg.Platforms = make(map[config.Platform]bool, len(selected))
	for _, p := range selected {
		cfg.Platforms[p] = true
	}

	return cfg, nil
}
