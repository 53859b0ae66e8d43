package storage

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/sparekeeper/internal/filex"
)

// FileSink writes to the local filesystem, creating parent directories.
type FileSink struct{}

func (FileSink) Put(ctx context.Context, path string, body []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	abs, err := filex.EnsureParent(path)
	if err != nil {
		return "", fmt.Errorf("failed to prepare %s: %w", path, err)
	}
	if err := os.WriteFile(abs, body, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", abs, err)
	}
	return abs, nil
}
