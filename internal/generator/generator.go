package generator

import (
	"embed"
	"fmt"
	"strings"
	"time"

	"github.com/modsmith/modsmith/internal/config"
	"github.com/modsmith/modsmith/internal/project"
	"github.com/modsmith/modsmith/internal/render"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Generator turns a configuration into a base project tree. Output is
// deterministic per configuration; the license year is the one wall-clock
// exception.
type Generator struct {
	renderer *render.Renderer
}

// New creates a generator with a fresh template cache.
func New() *Generator {
	return &Generator{renderer: render.New()}
}

// templateData is the view passed to every file template.
type templateData struct {
	ID            string
	Name          string
	Developer     string
	Version       string
	Description   string
	Repository    string
	ProjectName   string
	CMakeVersion  string
	Year          int
	GateKey       string
	SettingsBlock string
}

// Generate builds the full base tree for cfg. When the required fields
// (id, name, developer) are not all set it returns (nil, nil): an absent
// tree, not an error.
func (g *Generator) Generate(cfg config.Config) (*project.Tree, error) {
	if !cfg.Complete() {
		return nil, nil
	}

	data := g.viewOf(cfg)
	tree := project.NewTree()

	manifest, err := renderManifest(cfg)
	if err != nil {
		return nil, err
	}
	tree.Set(project.NewEntry("mod.json", manifest))

	files := []struct {
		path     string
		template string
	}{
		{"CMakeLists.txt", "templates/cmake.tmpl"},
		{"src/main.cpp", stubTemplate(cfg.Template)},
		{"about.md", "templates/about.md.tmpl"},
		{".gitignore", "templates/gitignore.tmpl"},
		{"LICENSE", "templates/license.tmpl"},
		{"CONTRIBUTING.md", "templates/contributing.md.tmpl"},
	}
	if cfg.CI {
		files = append(files, struct {
			path     string
			template string
		}{".github/workflows/build.yml", "templates/ci.yml.tmpl"})
	}

	for _, f := range files {
		content, err := g.renderer.RenderFS(templatesFS, f.template, data)
		if err != nil {
			return nil, fmt.Errorf("failed to generate %s: %w", f.path, err)
		}
		tree.Set(project.NewEntry(f.path, string(content)))
	}

	if cfg.Logo != "" {
		tree.Set(project.NewEntry(project.LogoPath, stripDataURL(cfg.Logo)))
	} else {
		// Keep the asset directory representable even when empty.
		tree.Set(project.NewEntry(project.PlaceholderPath, ""))
	}

	return tree, nil
}

// viewOf applies placeholder fallbacks so templates never see empty fields.
func (g *Generator) viewOf(cfg config.Config) templateData {
	id := fallback(cfg.ID, "com.example.unnamed")
	version := fallback(cfg.Version, "v1.0.0")

	data := templateData{
		ID:           id,
		Name:         fallback(cfg.Name, "Unnamed Mod"),
		Developer:    fallback(cfg.Developer, "Unknown Developer"),
		Version:      version,
		Description:  fallback(cfg.Description, "A brand new mod."),
		Repository:   cfg.Repository,
		ProjectName:  strings.ReplaceAll(id, ".", "_"),
		CMakeVersion: strings.TrimPrefix(version, "v"),
		Year:         time.Now().Year(),
	}

	if cfg.Template == config.TemplateSettings {
		if gate, ok := cfg.FirstBoolSetting(); ok {
			data.GateKey = gate.Key
		}
		data.SettingsBlock = settingsBlock(cfg.Settings)
	}

	return data
}

// stripDataURL drops a "data:...;base64," prefix, leaving the raw payload.
func stripDataURL(s string) string {
	if !strings.HasPrefix(s, "data:") {
		return s
	}
	if i := strings.Index(s, ","); i >= 0 {
		return s[i+1:]
	}
	return s
}
