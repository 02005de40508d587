package config

// Platform identifies a build target for a generated mod.
type Platform string

const (
	PlatformWindows   Platform = "win"
	PlatformMac       Platform = "mac"
	PlatformAndroid32 Platform = "android32"
	PlatformAndroid64 Platform = "android64"
	PlatformIOS       Platform = "ios"
)

// AllPlatforms returns the supported platforms in canonical order.
func AllPlatforms() []Platform {
	return []Platform{
		PlatformWindows,
		PlatformMac,
		PlatformAndroid32,
		PlatformAndroid64,
		PlatformIOS,
	}
}

// Template selects which code stub the generator emits. The set is closed;
// generator dispatch matches exhaustively on it.
type Template string

const (
	// TemplateMenu hooks the main menu and appends a label on init.
	TemplateMenu Template = "menu"
	// TemplatePlay hooks level-quit and shows a notification.
	TemplatePlay Template = "play"
	// TemplateSettings hooks the menu conditionally and builds a settings popup.
	TemplateSettings Template = "settings"
)

// Valid reports whether t is one of the known template variants.
func (t Template) Valid() bool {
	switch t {
	case TemplateMenu, TemplatePlay, TemplateSettings:
		return true
	}
	return false
}

// Config describes the desired mod project. It is the single input to the
// generator; identical configs always produce identical trees.
type Config struct {
	ID           string            `yaml:"id"`
	Name         string            `yaml:"name"`
	Developer    string            `yaml:"developer"`
	Version      string            `yaml:"version"`
	Description  string            `yaml:"description,omitempty"`
	Logo         string            `yaml:"logo,omitempty"` // data URL or raw base64
	Dependencies string            `yaml:"dependencies,omitempty"`
	Repository   string            `yaml:"repository,omitempty"`
	Template     Template          `yaml:"template"`
	CI           bool              `yaml:"ci"`
	Platforms    map[Platform]bool `yaml:"platforms"`
	GDVersion    string            `yaml:"gd_version,omitempty"`
	GeodeVersion string            `yaml:"geode_version,omitempty"`
	Tags         string            `yaml:"tags,omitempty"`
	API          bool              `yaml:"api,omitempty"`
	EarlyLoad    bool              `yaml:"early_load,omitempty"`
	Settings     []Setting         `yaml:"settings,omitempty"`
}

// Default returns a configuration with sensible starting values.
func Default() Config {
	return Config{
		Version:      "v1.0.0",
		Template:     TemplateMenu,
		GeodeVersion: "4.0.0",
		GDVersion:    "2.2074",
		CI:           true,
		Platforms: map[Platform]bool{
			PlatformWindows:   true,
			PlatformMac:       true,
			PlatformAndroid64: true,
		},
	}
}

// Complete reports whether the fields required for generation are set.
// An incomplete config clears the project tree instead of erroring.
func (c Config) Complete() bool {
	return c.ID != "" && c.Name != "" && c.Developer != ""
}

// EnabledPlatforms returns the enabled platforms in canonical order.
func (c Config) EnabledPlatforms() []Platform {
	var out []Platform
	for _, p := range AllPlatforms() {
		if c.Platforms[p] {
			out = append(out, p)
		}
	}
	return out
}

// FirstBoolSetting returns the first boolean custom setting in declaration
// order, if any. The settings code stub keys its menu hook on it.
func (c Config) FirstBoolSetting() (Setting, bool) {
	for _, s := range c.Settings {
		if s.Type == SettingBool {
			return s, true
		}
	}
	return Setting{}, false
}
