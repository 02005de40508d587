package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDependency(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		id      string
		version string
	}{
		{"id with version", "a.b.c@^1.2.0", "a.b.c", "^1.2.0"},
		{"id only", "a.b.c", "a.b.c", "*"},
		{"scoped id with version", "@scoped.id@2.0", "@scoped.id", "2.0"},
		{"scoped id only", "@scoped.id", "@scoped.id", "*"},
		{"trailing at", "a.b.c@", "a.b.c", "*"},
		{"surrounding whitespace", "  a.b.c @ 1.0 ", "a.b.c", "1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dep := ParseDependency(tt.token)
			assert.Equal(t, tt.id, dep.ID)
			assert.Equal(t, tt.version, dep.Version)
			assert.True(t, dep.Required)
		})
	}
}

func TestParseDependencyList(t *testing.T) {
	deps := ParseDependencyList("a.b@1.0, c.d , ,@scope.e@2")
	assert.Len(t, deps, 3)
	assert.Equal(t, Dependency{ID: "a.b", Version: "1.0", Required: true}, deps[0])
	assert.Equal(t, Dependency{ID: "c.d", Version: "*", Required: true}, deps[1])
	assert.Equal(t, Dependency{ID: "@scope.e", Version: "2", Required: true}, deps[2])
}

func TestParseDependencyListEmpty(t *testing.T) {
	assert.Nil(t, ParseDependencyList(""))
	assert.Nil(t, ParseDependencyList(" , ,"))
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"gameplay", "ui"}, splitTags(" gameplay,, ui "))
	assert.Nil(t, splitTags(""))
}
