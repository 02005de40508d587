// Package project models a generated mod project as an in-memory file tree.
//
// # Overview
//
// A Tree maps forward-slash paths to entries, each carrying an explicit
// content kind (Text or Binary) derived once by DetectKind. The Store wraps
// a tree with the reconciliation policy that keeps three mutation sources
// coherent:
//
//   - Regenerate: full replacement from the generator, preserving
//     assistant-added assets under assets/
//   - PatchOne: a single manual edit
//   - MergeMany / ApplyAt: batched assistant mutations, optionally guarded
//     by a staleness token
//
// # Usage
//
//	store := project.NewStore()
//	store.Regenerate(tree)
//	store.PatchOne("src/main.cpp", edited)
//	err := store.ApplyAt(version, entries)
package project
