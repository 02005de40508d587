package scaffold

import (
	"encoding/base64"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/modsmith/modsmith/internal/project"
)

// ReadAssets loads the on-disk asset directory under root into a tree, so a
// regeneration can re-layer assets added after the initial scaffold. A
// missing asset directory yields an empty tree.
func ReadAssets(root string) (*project.Tree, error) {
	tree := project.NewTree()
	assetRoot := filepath.Join(root, project.AssetDir)

	err := filepath.WalkDir(assetRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		relSlash := filepath.ToSlash(rel)

		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("failed to read asset %s: %w", relSlash, err)
		}

		content := string(data)
		if project.DetectKind(relSlash) == project.Binary {
			content = base64.StdEncoding.EncodeToString(data)
		}
		tree.Set(project.NewEntry(relSlash, content))
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return tree, nil
		}
		return nil, err
	}

	return tree, nil
}
