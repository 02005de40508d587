package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseTree() *Tree {
	tree := NewTree()
	tree.Set(NewEntry("mod.json", "{}"))
	tree.Set(NewEntry("src/main.cpp", "// stub"))
	tree.Set(NewEntry(PlaceholderPath, ""))
	return tree
}

func TestRegeneratePreservesForeignAssets(t *testing.T) {
	store := NewStore()
	store.Regenerate(baseTree())

	store.MergeMany([]Entry{{Path: "assets/extra.png", Content: "aGVsbG8="}})

	fresh := baseTree()
	got := store.Regenerate(fresh)
	require.NotNil(t, got)

	e, ok := got.Get("assets/extra.png")
	require.True(t, ok, "assistant-added asset must survive regeneration")
	assert.Equal(t, "aGVsbG8=", e.Content)
	assert.Equal(t, Binary, e.Kind)
}

func TestRegenerateDropsLogoAndPlaceholderFromPrevious(t *testing.T) {
	store := NewStore()
	prev := baseTree()
	prev.Set(NewEntry(LogoPath, "b64logo"))
	store.Regenerate(prev)

	fresh := NewTree()
	fresh.Set(NewEntry("mod.json", "{}"))
	got := store.Regenerate(fresh)

	assert.False(t, got.Has(LogoPath), "logo is regenerated, never re-layered")
	assert.False(t, got.Has(PlaceholderPath))
}

func TestRegenerateNilClearsTree(t *testing.T) {
	store := NewStore()
	store.Regenerate(baseTree())
	require.NotNil(t, store.Tree())

	got := store.Regenerate(nil)
	assert.Nil(t, got)
	assert.Nil(t, store.Tree())
}

func TestPatchOneLastWriteWins(t *testing.T) {
	store := NewStore()
	store.Regenerate(baseTree())

	store.PatchOne("src/main.cpp", "// edited")
	e, ok := store.Tree().Get("src/main.cpp")
	require.True(t, ok)
	assert.Equal(t, "// edited", e.Content)

	// Patching a binary path with text content is permitted; the kind stays
	// derived from the path.
	store.PatchOne("assets/extra.png", "not base64")
	e, ok = store.Tree().Get("assets/extra.png")
	require.True(t, ok)
	assert.Equal(t, Binary, e.Kind)
}

func TestPatchOneWithoutTreeIsNoop(t *testing.T) {
	store := NewStore()
	store.PatchOne("src/main.cpp", "// edited")
	assert.Nil(t, store.Tree())
}

func TestMergeManyRemovesPlaceholder(t *testing.T) {
	store := NewStore()
	store.Regenerate(baseTree())
	require.True(t, store.Tree().Has(PlaceholderPath))

	store.MergeMany([]Entry{
		{Path: "assets/fish.png", Content: "cGF5bG9hZA=="},
		{Path: "assets/fish.plist", Content: "<plist/>"},
	})

	tree := store.Tree()
	assert.False(t, tree.Has(PlaceholderPath))
	assert.True(t, tree.Has("assets/fish.png"))
	assert.True(t, tree.Has("assets/fish.plist"))
}

func TestMergeManyOutsideAssetsKeepsPlaceholder(t *testing.T) {
	store := NewStore()
	store.Regenerate(baseTree())

	store.MergeMany([]Entry{{Path: "src/util.hpp", Content: "#pragma once"}})

	assert.True(t, store.Tree().Has(PlaceholderPath))
}

func TestApplyAtRejectsStaleMutations(t *testing.T) {
	store := NewStore()
	store.Regenerate(baseTree())
	issued := store.Version()

	// A regeneration lands while the assistant request is in flight.
	store.Regenerate(baseTree())

	err := store.ApplyAt(issued, []Entry{{Path: "src/late.cpp", Content: "// late"}})
	assert.ErrorIs(t, err, ErrStaleMutation)
	assert.False(t, store.Tree().Has("src/late.cpp"))
}

func TestApplyAtCurrentVersionMerges(t *testing.T) {
	store := NewStore()
	store.Regenerate(baseTree())

	// Patches and merges do not invalidate outstanding requests.
	issued := store.Version()
	store.PatchOne("src/main.cpp", "// edited")
	store.MergeMany([]Entry{{Path: "docs/extra.md", Content: "hi"}})

	err := store.ApplyAt(issued, []Entry{{Path: "src/more.cpp", Content: "// ok"}})
	assert.NoError(t, err)
	assert.True(t, store.Tree().Has("src/more.cpp"))
}
