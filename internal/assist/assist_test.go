package assist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modsmith/modsmith/internal/project"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Kind
	}{
		{
			name: "file batch",
			raw:  `{"files":[{"filePath":"src/a.cpp","fileContent":"// a"}]}`,
			want: FileBatch,
		},
		{
			name: "legacy single file",
			raw:  `{"filePath":"src/a.cpp","fileContent":"// a"}`,
			want: SingleFile,
		},
		{
			name: "asset request",
			raw:  `{"prompt":"a pixel fish","fileName":"fish.png","spriteNames":["fish_01"]}`,
			want: AssetRequest,
		},
		{
			name: "conversational text",
			raw:  "Sure! Here's how hooks work...",
			want: PlainText,
		},
		{
			name: "json without recognized fields",
			raw:  `{"answer":42}`,
			want: PlainText,
		},
		{
			name: "batch with only invalid entries",
			raw:  `{"files":[{"fileContent":"orphan"}]}`,
			want: PlainText,
		},
		{
			name: "empty input",
			raw:  "",
			want: PlainText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := Decode([]byte(tt.raw))
			assert.Equal(t, tt.want, resp.Kind)
		})
	}
}

func TestDecodeBatchContents(t *testing.T) {
	resp := Decode([]byte(`{"files":[
		{"filePath":"src/a.cpp","fileContent":"// a"},
		{"fileContent":"dropped"},
		{"filePath":"src/b.cpp","fileContent":"// b"}
	]}`))

	require.Equal(t, FileBatch, resp.Kind)
	require.Len(t, resp.Files, 2)
	assert.Equal(t, "src/a.cpp", resp.Files[0].Path)
	assert.Equal(t, "src/b.cpp", resp.Files[1].Path)
}

func TestDecodeAssetRequest(t *testing.T) {
	resp := Decode([]byte(`{"prompt":"a pixel fish","fileName":"Fish Sprite.PNG","spriteNames":["fish_01","fish_02"]}`))

	require.Equal(t, AssetRequest, resp.Kind)
	require.NotNil(t, resp.Asset)
	assert.Equal(t, "a pixel fish", resp.Asset.Prompt)
	assert.Equal(t, []string{"fish_01", "fish_02"}, resp.Asset.SpriteNames)
}

func newStore(t *testing.T) *project.Store {
	t.Helper()
	tree := project.NewTree()
	tree.Set(project.NewEntry("mod.json", "{}"))
	tree.Set(project.NewEntry(project.PlaceholderPath, ""))
	store := project.NewStore()
	store.Regenerate(tree)
	return store
}

func TestApplyFileBatch(t *testing.T) {
	store := newStore(t)

	resp := Decode([]byte(`{"files":[{"filePath":"src/a.cpp","fileContent":"// a"}]}`))
	applied, err := Apply(store, store.Version(), resp)

	require.NoError(t, err)
	assert.True(t, applied)
	assert.True(t, store.Tree().Has("src/a.cpp"))
}

func TestApplyPlainTextIsNoop(t *testing.T) {
	store := newStore(t)
	before := store.Tree().Len()

	applied, err := Apply(store, store.Version(), Decode([]byte("just chatting")))

	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, before, store.Tree().Len())
}

func TestApplyStale(t *testing.T) {
	store := newStore(t)
	issued := store.Version()

	// Configuration changed; tree regenerated while the request was pending.
	tree := project.NewTree()
	tree.Set(project.NewEntry("mod.json", "{}"))
	store.Regenerate(tree)

	resp := Decode([]byte(`{"filePath":"src/late.cpp","fileContent":"// late"}`))
	applied, err := Apply(store, issued, resp)

	assert.ErrorIs(t, err, project.ErrStaleMutation)
	assert.False(t, applied)
	assert.False(t, store.Tree().Has("src/late.cpp"))
}

func TestApplySanitizesTraversal(t *testing.T) {
	store := newStore(t)

	resp := Decode([]byte(`{"filePath":"../../etc/passwd","fileContent":"nope"}`))
	applied, err := Apply(store, store.Version(), resp)

	require.NoError(t, err)
	assert.True(t, applied)
	assert.False(t, store.Tree().Has("../../etc/passwd"))
	assert.True(t, store.Tree().Has("etc/passwd"))
}

func TestInsertAsset(t *testing.T) {
	store := newStore(t)
	require.True(t, store.Tree().Has(project.PlaceholderPath))

	err := InsertAsset(store, store.Version(), "Fish Sprite.PNG", "cGF5bG9hZA==", "<plist/>")
	require.NoError(t, err)

	tree := store.Tree()
	payload, ok := tree.Get("assets/fish-sprite.png")
	require.True(t, ok)
	assert.Equal(t, "cGF5bG9hZA==", payload.Content)
	assert.Equal(t, project.Binary, payload.Kind)

	descriptor, ok := tree.Get("assets/fish-sprite.plist")
	require.True(t, ok)
	assert.Equal(t, project.Text, descriptor.Kind)

	assert.False(t, tree.Has(project.PlaceholderPath), "asset directory is no longer empty")
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"spaces and case", "Fish Sprite.PNG", "fish-sprite.png"},
		{"directory stripped", "../secret/../logo.png", "logo.png"},
		{"windows separators", `sprites\fish.png`, "fish.png"},
		{"hostile characters", "a?b*c.png", "abc.png"},
		{"empty falls back", "  ", "asset.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFileName(tt.in))
		})
	}
}
