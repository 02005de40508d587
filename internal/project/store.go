package project

import (
	"errors"
	"sync"
)

// ErrStaleMutation is returned by ApplyAt when the tree was regenerated
// after the mutation was issued.
var ErrStaleMutation = errors.New("mutation issued against a stale tree version")

// Store owns the current project tree and reconciles its three mutation
// sources: full regeneration, single-file patches, and batched mutations
// from the assistant. Regenerate and MergeMany are not commutative, so all
// mutators run under one lock.
type Store struct {
	mu      sync.Mutex
	tree    *Tree
	version uint64
}

// NewStore creates a store with no tree (incomplete configuration state).
func NewStore() *Store {
	return &Store{}
}

// Tree returns the current tree, or nil when the configuration is
// incomplete. Callers must not mutate the returned tree.
func (s *Store) Tree() *Tree {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree
}

// Version returns the staleness token for the current tree. It changes on
// every Regenerate; patches and merges leave it untouched.
func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Regenerate replaces the tree with fresh generator output, re-layering
// every asset entry from the previous tree that is neither the logo nor the
// empty-directory placeholder. Assistant-added assets survive configuration
// edits this way. A nil fresh tree clears the store (required configuration
// fields are incomplete). Returns the tree now held.
func (s *Store) Regenerate(fresh *Tree) *Tree {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.version++

	if fresh == nil {
		s.tree = nil
		return nil
	}

	if s.tree != nil {
		for _, e := range s.tree.Entries() {
			if !UnderAssets(e.Path) {
				continue
			}
			if e.Path == LogoPath || e.Path == PlaceholderPath {
				continue
			}
			fresh.Set(e)
		}
	}

	s.tree = fresh
	return s.tree
}

// PatchOne replaces or inserts a single entry, re-deriving its kind from
// the path. Last write wins; content is not validated against the file's
// role.
func (s *Store) PatchOne(path, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tree == nil {
		return
	}
	s.tree.Set(NewEntry(path, content))
}

// MergeMany upserts a batch of entries atomically. When any entry lands
// under the asset directory the placeholder is dropped: the directory is no
// longer empty.
func (s *Store) MergeMany(entries []Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mergeLocked(entries)
}

// ApplyAt is MergeMany guarded by the staleness token: the mutation only
// lands if the tree has not been regenerated since version was observed.
func (s *Store) ApplyAt(version uint64, entries []Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if version != s.version {
		return ErrStaleMutation
	}
	s.mergeLocked(entries)
	return nil
}

func (s *Store) mergeLocked(entries []Entry) {
	if s.tree == nil || len(entries) == 0 {
		return
	}
	touchedAssets := false
	for _, e := range entries {
		s.tree.Set(NewEntry(e.Path, e.Content))
		if UnderAssets(e.Path) {
			touchedAssets = true
		}
	}
	if touchedAssets {
		s.tree.Delete(PlaceholderPath)
	}
}
