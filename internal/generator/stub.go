package generator

import (
	"fmt"
	"strings"

	"github.com/modsmith/modsmith/internal/config"
)

// stubTemplate returns the embedded template path for a variant. Unknown
// values fall back to the menu variant; Validate surfaces them as a hint.
func stubTemplate(t config.Template) string {
	switch t {
	case config.TemplatePlay:
		return "templates/main_play.cpp.tmpl"
	case config.TemplateSettings:
		return "templates/main_settings.cpp.tmpl"
	case config.TemplateMenu:
		return "templates/main_menu.cpp.tmpl"
	default:
		return "templates/main_menu.cpp.tmpl"
	}
}

// settingsBlock emits one UI-binding row per custom setting, in declaration
// order, each chosen by the setting's type tag. With zero settings a single
// placeholder note is emitted instead.
func settingsBlock(settings []config.Setting) string {
	if len(settings) == 0 {
		return "\t\tthis->addNote(\"This mod has no settings yet.\");\n"
	}

	var b strings.Builder
	for _, s := range settings {
		key := s.Key
		name := s.Name
		if name == "" {
			name = key
		}
		switch s.Type {
		case config.SettingBool:
			fmt.Fprintf(&b, "\t\tthis->addToggle(%q, %q);\n", key, name)
		case config.SettingInt:
			fmt.Fprintf(&b, "\t\tthis->addIntInput(%q, %q);\n", key, name)
		case config.SettingFloat:
			fmt.Fprintf(&b, "\t\tthis->addFloatInput(%q, %q);\n", key, name)
		default:
			fmt.Fprintf(&b, "\t\tthis->addTextInput(%q, %q);\n", key, name)
		}
	}
	return b.String()
}
