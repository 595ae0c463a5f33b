package repository

import (
	"context"

	"vif/internal/model"
)

// Snapshot is the durable state of the todo list: the items plus the last
// chosen sort order, mirrored together after every mutation.
type Snapshot struct {
	Todos  []model.TodoItem `json:"todos"`
	SortBy model.SortOption `json:"sortBy"`
}

// TodoRepository persists todo list snapshots.
type TodoRepository interface {
	// Load reads the last persisted snapshot. Missing or malformed
	// storage yields an empty snapshot, never an error at startup.
	Load(ctx context.Context) (Snapshot, error)

	// Save durably replaces the snapshot.
	Save(ctx context.Context, snap Snapshot) error
}
