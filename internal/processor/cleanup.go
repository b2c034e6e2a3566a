package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// workspace is a per-request scratch directory. Everything the pipeline
// writes for a request lives here and is gone once remove runs.
type workspace struct {
	dir string
}

func (p *implProcessor) newWorkspace(ctx context.Context) (*workspace, error) {
	if err := os.MkdirAll(p.cfg.Paths.Temp, 0755); err != nil {
		return nil, fmt.Errorf("create temp root: %w", err)
	}
	dir, err := os.MkdirTemp(p.cfg.Paths.Temp, "job-*")
	if err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	p.logger.Debug(ctx, "Workspace created: %s", dir)
	return &workspace{dir: dir}, nil
}

// file returns a fresh, unique path inside the workspace.
func (w *workspace) file(ext string) string {
	return filepath.Join(w.dir, uuid.NewString()+ext)
}

func (p *implProcessor) removeWorkspace(ctx context.Context, w *workspace) {
	if err := os.RemoveAll(w.dir); err != nil {
		p.logger.Warn(ctx, "Failed to remove workspace %s: %v", w.dir, err)
		return
	}
	p.logger.Debug(ctx, "Workspace removed: %s", w.dir)
}

// cleanupTempFile removes a temporary file, logs warning if fails
func (p *implProcessor) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	}
}

// moveToArchived moves a processed inbox file out of the inbox
func (p *implProcessor) moveToArchived(ctx context.Context, path string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	dest := filepath.Join(p.cfg.Paths.Archived, filepath.Base(path))
	p.logger.Info(ctx, "Archiving: %s -> %s", path, dest)

	if err := os.Rename(path, dest); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}
