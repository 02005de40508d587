package assist

import (
	"path"
	"strings"

	"github.com/modsmith/modsmith/internal/project"
)

// Apply merges a decoded response into the store, guarded by the tree
// version the request was issued against. PlainText and AssetRequest
// responses leave the tree unchanged: text has nothing to apply, and an
// asset request only mutates once its payload arrives (InsertAsset).
// Returns true when entries were merged.
func Apply(store *project.Store, version uint64, resp Response) (bool, error) {
	switch resp.Kind {
	case FileBatch, SingleFile:
		entries := make([]project.Entry, 0, len(resp.Files))
		for _, f := range resp.Files {
			p := cleanPath(f.Path)
			if p == "" {
				continue
			}
			entries = append(entries, project.Entry{Path: p, Content: f.Content})
		}
		if err := store.ApplyAt(version, entries); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, nil
	}
}

// InsertAsset lands a generated asset payload and its companion descriptor
// under the asset directory. The payload is raw base64; the descriptor is
// text placed at the same path with the extension swapped to .plist.
func InsertAsset(store *project.Store, version uint64, fileName, payload, descriptor string) error {
	name := SanitizeFileName(fileName)
	assetPath := project.AssetDir + "/" + name
	descriptorPath := strings.TrimSuffix(assetPath, path.Ext(assetPath)) + ".plist"

	return store.ApplyAt(version, []project.Entry{
		{Path: assetPath, Content: payload},
		{Path: descriptorPath, Content: descriptor},
	})
}

// SanitizeFileName reduces an assistant-supplied file name to a safe flat
// name: no directory segments, spaces collapsed to dashes, lowercased.
func SanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.TrimSpace(strings.ToLower(name))
	name = strings.ReplaceAll(name, " ", "-")

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			b.WriteRune(r)
		}
	}
	out := strings.Trim(b.String(), ".")
	if out == "" {
		out = "asset.png"
	}
	return out
}

// cleanPath normalizes an assistant-supplied path to a forward-slash
// relative path without traversal segments.
func cleanPath(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = path.Clean(strings.TrimPrefix(p, "/"))
	for strings.HasPrefix(p, "../") {
		p = strings.TrimPrefix(p, "../")
	}
	if p == ".." || p == "." {
		return ""
	}
	return p
}
