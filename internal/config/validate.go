package config

import (
	"fmt"
	"regexp"
)

// identifierPattern requires lowercase dotted segments with at least one dot,
// e.g. "dev.my-mod".
var identifierPattern = regexp.MustCompile(`^[a-z0-9-]+(\.[a-z0-9-]+)+$`)

// ValidIdentifier reports whether id matches the mod identifier pattern.
func ValidIdentifier(id string) bool {
	return identifierPattern.MatchString(id)
}

// Problem is a display-only validation hint. Problems never block
// generation; the generator substitutes placeholders for empty fields.
type Problem struct {
	Field   string
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Field, p.Message)
}

// Validate returns hints for fields a user should fix before publishing.
func (c Config) Validate() []Problem {
	var problems []Problem

	if c.ID != "" && !ValidIdentifier(c.ID) {
		problems = append(problems, Problem{
			Field:   "id",
			Message: "must be dotted lowercase segments, e.g. dev.my-mod",
		})
	}

	if c.Template != "" && !c.Template.Valid() {
		problems = append(problems, Problem{
			Field:   "template",
			Message: fmt.Sprintf("unknown template %q (menu, play, settings)", c.Template),
		})
	}

	seen := make(map[string]bool)
	for _, s := range c.Settings {
		if s.Key == "" {
			problems = append(problems, Problem{
				Field:   "settings",
				Message: fmt.Sprintf("setting %q has no key", s.Name),
			})
			continue
		}
		if seen[s.Key] {
			problems = append(problems, Problem{
				Field:   "settings",
				Message: fmt.Sprintf("duplicate setting key %q", s.Key),
			})
		}
		seen[s.Key] = true
		if !s.Type.Valid() {
			problems = append(problems, Problem{
				Field:   "settings",
				Message: fmt.Sprintf("setting %q has unknown type %q", s.Key, s.Type),
			})
		}
	}

	return problems
}
