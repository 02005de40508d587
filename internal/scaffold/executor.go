package scaffold

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/modsmith/modsmith/internal/archive"
	"github.com/modsmith/modsmith/internal/project"
)

// ExecuteOptions configures execution behavior.
type ExecuteOptions struct {
	DryRun bool
	Force  bool
	Writer io.Writer // Where to write output (defaults to os.Stdout)
}

// Execute runs operations with validation: all operations are validated
// before any executes.
func Execute(ctx context.Context, ops []Operation, opts ExecuteOptions) error {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	for _, op := range ops {
		if err := op.Validate(ctx, opts.Force); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	for _, op := range ops {
		if opts.DryRun {
			fmt.Fprintf(opts.Writer, "✓ [DRY RUN] %s\n", op.Description())
		} else {
			if err := op.Execute(ctx); err != nil {
				return fmt.Errorf("execution failed: %w", err)
			}
			fmt.Fprintf(opts.Writer, "✓ %s\n", op.Description())
		}
	}

	return nil
}

// TreeOps converts a project tree into write operations rooted at dir.
// Binary entries are base64-decoded on the way out.
func TreeOps(tree *project.Tree, dir string) ([]Operation, error) {
	var ops []Operation
	for _, e := range tree.Entries() {
		data, err := archive.Payload(e)
		if err != nil {
			return nil, err
		}
		ops = append(ops, &WriteFileOp{
			Path:    filepath.Join(dir, filepath.FromSlash(e.Path)),
			Content: data,
			Mode:    0644,
		})
	}
	return ops, nil
}
