package config

import (
	"strconv"

	"github.com/google/uuid"
)

// SettingType is the closed enumeration of custom setting value types.
type SettingType string

const (
	SettingBool   SettingType = "bool"
	SettingInt    SettingType = "int"
	SettingFloat  SettingType = "float"
	SettingString SettingType = "string"
)

// Valid reports whether t is a known setting type.
func (t SettingType) Valid() bool {
	switch t {
	case SettingBool, SettingInt, SettingFloat, SettingString:
		return true
	}
	return false
}

// Zero returns the canonical zero value for the type.
func (t SettingType) Zero() any {
	switch t {
	case SettingBool:
		return false
	case SettingInt:
		return int64(0)
	case SettingFloat:
		return float64(0)
	default:
		return ""
	}
}

// Coerce forces v into the type's runtime representation, falling back to
// the zero value when v cannot represent it. Stale cross-type defaults must
// never leak into generated output.
func (t SettingType) Coerce(v any) any {
	switch t {
	case SettingBool:
		if b, ok := v.(bool); ok {
			return b
		}
	case SettingInt:
		switch n := v.(type) {
		case int:
			return int64(n)
		case int64:
			return n
		case float64:
			return int64(n)
		case string:
			if parsed, err := strconv.ParseInt(n, 10, 64); err == nil {
				return parsed
			}
		}
	case SettingFloat:
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		case int64:
			return float64(n)
		case string:
			if parsed, err := strconv.ParseFloat(n, 64); err == nil {
				return parsed
			}
		}
	case SettingString:
		if s, ok := v.(string); ok {
			return s
		}
	}
	return t.Zero()
}

// Setting is a user-defined configurable value exposed by the generated mod.
// The ID is a stable internal identity for editing; it is never written to
// generated output.
type Setting struct {
	ID          uuid.UUID   `yaml:"-"`
	Key         string      `yaml:"key"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Type        SettingType `yaml:"type"`
	Default     any         `yaml:"default"`
}

// NewSetting creates a setting with a fresh identity and the type's zero
// default.
func NewSetting(key, name string, typ SettingType) Setting {
	return Setting{
		ID:      uuid.New(),
		Key:     key,
		Name:    name,
		Type:    typ,
		Default: typ.Zero(),
	}
}

// SetType changes the setting's type tag. Crossing types resets the default
// to the new type's zero value.
func (s *Setting) SetType(typ SettingType) {
	if s.Type == typ {
		return
	}
	s.Type = typ
	s.Default = typ.Zero()
}
