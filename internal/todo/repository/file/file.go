// Package file persists todo snapshots as a single JSON document, replaced
// atomically on every save so a crash can never leave a half-written list.
package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"vif/internal/model"
	"vif/internal/todo/repository"
	pkgLog "vif/pkg/log"
)

type implRepository struct {
	l    pkgLog.Logger
	path string
}

var _ repository.TodoRepository = (*implRepository)(nil)

// New creates a file-backed todo repository at the given path. The parent
// directory is created if missing.
func New(l pkgLog.Logger, path string) (repository.TodoRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &implRepository{l: l, path: path}, nil
}

func (r *implRepository) Load(ctx context.Context) (repository.Snapshot, error) {
	empty := repository.Snapshot{Todos: []model.TodoItem{}, SortBy: model.SortOldest}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return empty, nil
		}
		return empty, fmt.Errorf("failed to read %s: %w", r.path, err)
	}

	var snap repository.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		// Corrupt storage is discarded rather than crashing startup.
		r.l.Warnf(ctx, "discarding malformed todo storage at %s: %v", r.path, err)
		return empty, nil
	}

	if snap.Todos == nil {
		snap.Todos = []model.TodoItem{}
	}
	if !snap.SortBy.Valid() {
		snap.SortBy = model.SortOldest
	}
	return snap, nil
}

func (r *implRepository) Save(ctx context.Context, snap repository.Snapshot) error {
	if snap.Todos == nil {
		snap.Todos = []model.TodoItem{}
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := atomic.WriteFile(r.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", r.path, err)
	}
	return nil
}
