package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"vif/internal/model"
	"vif/internal/todo/repository"
	"vif/internal/todo/repository/file"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newRepo(t *testing.T) (repository.TodoRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "todos.json")
	repo, err := file.New(&mockLogger{}, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return repo, path
}

func TestLoadMissingFile(t *testing.T) {
	repo, _ := newRepo(t)

	snap, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.Todos) != 0 {
		t.Errorf("expected empty list, got %d items", len(snap.Todos))
	}
	if snap.SortBy != model.SortOldest {
		t.Errorf("expected default sort, got %q", snap.SortBy)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	date := model.NewDate(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	in := repository.Snapshot{
		Todos: []model.TodoItem{
			{ID: "a1", Text: "buy milk", Emoji: "🥛", Date: date, Time: "15:00"},
			{ID: "b2", Text: "ship release", Completed: true, Date: date},
		},
		SortBy: model.SortAlphabetical,
	}
	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	out, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(out.Todos) != 2 {
		t.Fatalf("expected 2 items, got %d", len(out.Todos))
	}
	if out.Todos[0].ID != "a1" || out.Todos[0].Time != "15:00" {
		t.Errorf("unexpected first item: %+v", out.Todos[0])
	}
	if !out.Todos[0].Date.Equal(date) {
		t.Errorf("date did not survive the round trip: %v", out.Todos[0].Date)
	}
	if out.SortBy != model.SortAlphabetical {
		t.Errorf("sort order did not survive, got %q", out.SortBy)
	}
}

func TestLoadMalformedStorage(t *testing.T) {
	repo, path := newRepo(t)

	if err := os.WriteFile(path, []byte(`{"todos": [{"id":`), 0o644); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	snap, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("malformed storage must not fail startup: %v", err)
	}
	if len(snap.Todos) != 0 {
		t.Errorf("expected discarded storage to yield empty list")
	}
}

func TestSaveReplacesAtomically(t *testing.T) {
	repo, path := newRepo(t)
	ctx := context.Background()

	first := repository.Snapshot{Todos: []model.TodoItem{{ID: "a1", Text: "one"}}, SortBy: model.SortOldest}
	second := repository.Snapshot{Todos: []model.TodoItem{{ID: "b2", Text: "two"}}, SortBy: model.SortOldest}

	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	out, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(out.Todos) != 1 || out.Todos[0].ID != "b2" {
		t.Errorf("expected second snapshot to fully replace the first: %+v", out.Todos)
	}

	// No temp files left behind next to the target.
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("expected only the snapshot file, found %d entries", len(entries))
	}
}

func TestNewRequiresPath(t *testing.T) {
	if _, err := file.New(&mockLogger{}, ""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
