package project

import (
	"path"
	"strings"
)

// ContentKind tells consumers how an entry's Content is encoded.
type ContentKind int

const (
	// Text entries hold UTF-8 source or documentation.
	Text ContentKind = iota
	// Binary entries hold a base64 payload (no data-URL prefix).
	Binary
)

func (k ContentKind) String() string {
	if k == Binary {
		return "binary"
	}
	return "text"
}

// Reserved paths inside a generated project.
const (
	AssetDir        = "assets"
	LogoPath        = "assets/logo.png"
	PlaceholderPath = "assets/.gitkeep"
)

// textExtensions is the canonical suffix list shared by the generator, the
// store, the archiver and the scaffold executor. Keep it in one place.
var textExtensions = map[string]bool{
	".json":      true,
	".txt":       true,
	".cpp":       true,
	".hpp":       true,
	".md":        true,
	".yml":       true,
	".yaml":      true,
	".gitignore": true,
	".plist":     true,
	".cmake":     true,
}

// textNames are extension-less files that are still text.
var textNames = map[string]bool{
	"LICENSE":        true,
	".gitkeep":       true,
	"CMakeLists.txt": true,
}

// DetectKind classifies a path as Text or Binary by its suffix.
func DetectKind(p string) ContentKind {
	base := path.Base(p)
	if textNames[base] {
		return Text
	}
	if textExtensions[strings.ToLower(path.Ext(base))] {
		return Text
	}
	return Binary
}

// Entry is a single file in a generated project tree.
type Entry struct {
	Path    string
	Content string
	Kind    ContentKind
}

// NewEntry builds an entry, deriving its kind from the path.
func NewEntry(p, content string) Entry {
	return Entry{Path: p, Content: content, Kind: DetectKind(p)}
}

// UnderAssets reports whether p lives inside the reserved asset directory.
func UnderAssets(p string) bool {
	return strings.HasPrefix(p, AssetDir+"/")
}
