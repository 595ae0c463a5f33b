// Package store owns the in-memory todo list and mirrors every mutation to
// durable storage. State is loaded once at startup and written back after
// each update, so the file on disk always matches what callers last saw.
package store

import (
	"context"
	"fmt"
	"sync"

	"vif/internal/model"
	"vif/internal/todo/repository"
	pkgLog "vif/pkg/log"
)

// UpdateFunc transforms the current snapshot into the next one. It runs under
// the store lock and must not call back into the store.
type UpdateFunc func(snap repository.Snapshot) (repository.Snapshot, error)

type Store struct {
	l    pkgLog.Logger
	repo repository.TodoRepository

	mu   sync.RWMutex
	snap repository.Snapshot
}

// New creates a store and loads the persisted snapshot.
func New(ctx context.Context, l pkgLog.Logger, repo repository.TodoRepository) (*Store, error) {
	snap, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load todo storage: %w", err)
	}
	l.Infof(ctx, "todo store loaded: %d items, sort=%s", len(snap.Todos), snap.SortBy)

	return &Store{l: l, repo: repo, snap: snap}, nil
}

// Snapshot returns a copy of the current state. Mutating the returned slice
// does not affect the store.
func (s *Store) Snapshot() repository.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	todos := make([]model.TodoItem, len(s.snap.Todos))
	copy(todos, s.snap.Todos)
	return repository.Snapshot{Todos: todos, SortBy: s.snap.SortBy}
}

// Update applies fn to the current snapshot and persists the result. The
// in-memory state changes only if persistence succeeds, keeping memory and
// disk in step.
func (s *Store) Update(ctx context.Context, fn UpdateFunc) (repository.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := repository.Snapshot{
		Todos:  make([]model.TodoItem, len(s.snap.Todos)),
		SortBy: s.snap.SortBy,
	}
	copy(current.Todos, s.snap.Todos)

	next, err := fn(current)
	if err != nil {
		return repository.Snapshot{}, err
	}
	if next.Todos == nil {
		next.Todos = []model.TodoItem{}
	}
	if !next.SortBy.Valid() {
		next.SortBy = s.snap.SortBy
	}

	if err := s.repo.Save(ctx, next); err != nil {
		return repository.Snapshot{}, fmt.Errorf("failed to persist todos: %w", err)
	}
	s.snap = next

	return s.copyLocked(), nil
}

func (s *Store) copyLocked() repository.Snapshot {
	todos := make([]model.TodoItem, len(s.snap.Todos))
	copy(todos, s.snap.Todos)
	return repository.Snapshot{Todos: todos, SortBy: s.snap.SortBy}
}
