package project

// Tree is an ordered mapping of file paths to entries. Paths are unique;
// insertion order is preserved so listings render stably.
type Tree struct {
	order   []string
	entries map[string]Entry
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{entries: make(map[string]Entry)}
}

// Set inserts or replaces the entry at e.Path.
func (t *Tree) Set(e Entry) {
	if _, ok := t.entries[e.Path]; !ok {
		t.order = append(t.order, e.Path)
	}
	t.entries[e.Path] = e
}

// Get returns the entry at path and whether it exists.
func (t *Tree) Get(path string) (Entry, bool) {
	e, ok := t.entries[path]
	return e, ok
}

// Has reports whether path exists in the tree.
func (t *Tree) Has(path string) bool {
	_, ok := t.entries[path]
	return ok
}

// Delete removes the entry at path if present.
func (t *Tree) Delete(path string) {
	if _, ok := t.entries[path]; !ok {
		return
	}
	delete(t.entries, path)
	for i, p := range t.order {
		if p == path {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (t *Tree) Len() int {
	return len(t.entries)
}

// Paths returns entry paths in insertion order.
func (t *Tree) Paths() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Entries returns all entries in insertion order.
func (t *Tree) Entries() []Entry {
	out := make([]Entry, 0, len(t.order))
	for _, p := range t.order {
		out = append(out, t.entries[p])
	}
	return out
}

// Clone returns a deep copy of the tree.
func (t *Tree) Clone() *Tree {
	c := NewTree()
	for _, p := range t.order {
		c.Set(t.entries[p])
	}
	return c
}
