// Package archive serializes a project tree into a distributable zip.
package archive

import (
	"archive/zip"
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"github.com/modsmith/modsmith/internal/project"
)

// Write streams the tree into w as a zip archive. Text entries are written
// verbatim; binary entries are base64-decoded first. Entry order follows
// the tree's insertion order.
func Write(tree *project.Tree, w io.Writer) error {
	if tree == nil {
		return fmt.Errorf("no project tree to archive")
	}

	zw := zip.NewWriter(w)
	for _, e := range tree.Entries() {
		f, err := zw.Create(e.Path)
		if err != nil {
			return fmt.Errorf("failed to add %s to archive: %w", e.Path, err)
		}

		data, err := Payload(e)
		if err != nil {
			return err
		}
		if _, err := f.Write(data); err != nil {
			return fmt.Errorf("failed to write %s: %w", e.Path, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	return nil
}

// WriteFile writes the tree as a zip archive at path.
func WriteFile(tree *project.Tree, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := Write(tree, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Payload returns the raw bytes for an entry: UTF-8 for text, decoded
// base64 for binary.
func Payload(e project.Entry) ([]byte, error) {
	if e.Kind == project.Text {
		return []byte(e.Content), nil
	}
	data, err := base64.StdEncoding.DecodeString(e.Content)
	if err != nil {
		return nil, fmt.Errorf("entry %s is not valid base64: %w", e.Path, err)
	}
	return data, nil
}
