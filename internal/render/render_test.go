package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderString(t *testing.T) {
	r := New()

	tests := []struct {
		name        string
		templateStr string
		data        any
		expected    string
		wantErr     bool
		errContains string
	}{
		{
			name:        "plain text",
			templateStr: "Hello World",
			expected:    "Hello World",
		},
		{
			name:        "struct data",
			templateStr: "Mod: {{ .Name }}",
			data:        struct{ Name string }{Name: "Fish"},
			expected:    "Mod: Fish",
		},
		{
			name:        "quote helper",
			templateStr: `{{ quote .Name }}`,
			data:        struct{ Name string }{Name: "Fish"},
			expected:    `"Fish"`,
		},
		{
			name:        "default helper",
			templateStr: `{{ default "unnamed" .Name }}`,
			data:        struct{ Name string }{},
			expected:    "unnamed",
		},
		{
			name:        "syntax error",
			templateStr: "{{ .Name }",
			wantErr:     true,
			errContains: "failed to parse template",
		},
		{
			name:        "execution error",
			templateStr: "{{ .Missing }}",
			data:        struct{}{},
			wantErr:     true,
			errContains: "failed to render template",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := r.RenderString(tt.name, tt.templateStr, tt.data)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, string(output))
			}
		})
	}
}

func TestRenderStringCaches(t *testing.T) {
	r := New()

	first, err := r.RenderString("cached", "v={{ .V }}", map[string]any{"V": 1})
	require.NoError(t, err)
	assert.Equal(t, "v=1", string(first))

	// Same name, different data: the cached template is reused.
	second, err := r.RenderString("cached", "ignored", map[string]any{"V": 2})
	require.NoError(t, err)
	assert.Equal(t, "v=2", string(second))

	r.ClearCache()
	third, err := r.RenderString("cached", "fresh {{ .V }}", map[string]any{"V": 3})
	require.NoError(t, err)
	assert.Equal(t, "fresh 3", string(third))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "My Great Mod", Title("my great MOD"))
	assert.Equal(t, "", Title(""))
}
