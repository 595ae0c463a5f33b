package todo_test

import (
	"reflect"
	"testing"

	"vif/internal/model"
	"vif/internal/todo"
)

func TestFilterByDate(t *testing.T) {
	items := fixtureItems(t)

	got := todo.FilterByDate(items, mustDate(t, "2024-05-01"))
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "2" {
		t.Errorf("unexpected order: %+v", got)
	}

	if got := todo.FilterByDate(items, mustDate(t, "2024-07-01")); len(got) != 0 {
		t.Errorf("expected no items for other day, got %d", len(got))
	}
}

func TestSortItems(t *testing.T) {
	items := []model.TodoItem{
		{ID: "1", Text: "banana"},
		{ID: "2", Text: "Apple", Completed: true},
		{ID: "3", Text: "cherry"},
	}

	tests := []struct {
		sortBy  model.SortOption
		wantIDs []string
	}{
		{model.SortOldest, []string{"1", "2", "3"}},
		{model.SortNewest, []string{"3", "2", "1"}},
		{model.SortAlphabetical, []string{"2", "1", "3"}},
		{model.SortCompleted, []string{"2", "1", "3"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.sortBy), func(t *testing.T) {
			got := todo.SortItems(items, tt.sortBy)
			var ids []string
			for _, item := range got {
				ids = append(ids, item.ID)
			}
			if !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Errorf("SortItems(%s) order = %v, want %v", tt.sortBy, ids, tt.wantIDs)
			}
		})
	}

	// Sorting never reorders the input slice.
	if items[0].ID != "1" || items[2].ID != "3" {
		t.Errorf("SortItems mutated input: %+v", items)
	}
}

func TestProgress(t *testing.T) {
	if got := todo.Progress(nil); got != 0 {
		t.Errorf("empty list progress = %d, want 0", got)
	}

	items := []model.TodoItem{
		{ID: "1", Completed: true},
		{ID: "2"},
		{ID: "3", Completed: true},
	}
	if got := todo.Progress(items); got != 67 {
		t.Errorf("progress = %d, want 67", got)
	}
}
