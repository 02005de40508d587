package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modsmith/modsmith/internal/project"
)

func TestWrite(t *testing.T) {
	tree := project.NewTree()
	tree.Set(project.NewEntry("mod.json", `{"id":"dev.mod"}`))
	tree.Set(project.NewEntry("assets/logo.png", "aGVsbG8=")) // "hello"
	tree.Set(project.NewEntry(project.PlaceholderPath, ""))

	var buf bytes.Buffer
	require.NoError(t, Write(tree, &buf))

	r, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, r.File, 3)

	contents := make(map[string][]byte)
	for _, f := range r.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		contents[f.Name] = data
	}

	assert.Equal(t, []byte(`{"id":"dev.mod"}`), contents["mod.json"])
	assert.Equal(t, []byte("hello"), contents["assets/logo.png"], "binary entries are base64-decoded")
	assert.Empty(t, contents[project.PlaceholderPath])
}

func TestWriteRejectsInvalidBase64(t *testing.T) {
	tree := project.NewTree()
	tree.Set(project.NewEntry("assets/broken.png", "not base64!!"))

	err := Write(tree, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid base64")
}

func TestWriteNilTree(t *testing.T) {
	assert.Error(t, Write(nil, &bytes.Buffer{}))
}

func TestPayload(t *testing.T) {
	text := project.NewEntry("a.txt", "plain")
	data, err := Payload(text)
	require.NoError(t, err)
	assert.Equal(t, []byte("plain"), data)

	binary := project.NewEntry("a.bin", "aGVsbG8=")
	data, err = Payload(binary)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)
}
