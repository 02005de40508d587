// Package scaffold materializes a project tree on disk.
//
// Each file becomes an Operation that is validated before any operation
// executes, so a conflicting file aborts the whole write instead of leaving
// a half-scaffolded project.
package scaffold
