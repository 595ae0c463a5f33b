package usecase

import (
	"context"

	"vif/internal/todo"
	"vif/internal/todo/repository"
)

// List returns the given day's items in the current sort order plus progress
// stats.
func (uc *implUseCase) List(ctx context.Context, input todo.ListInput) (todo.ListOutput, error) {
	snap := uc.store.Snapshot()

	day := todo.SortItems(todo.FilterByDate(snap.Todos, input.Date), snap.SortBy)

	completed := 0
	for _, item := range day {
		if item.Completed {
			completed++
		}
	}

	return todo.ListOutput{
		Todos:     day,
		SortBy:    snap.SortBy,
		Completed: completed,
		Remaining: len(day) - completed,
		Progress:  todo.Progress(day),
	}, nil
}

// Toggle flips completion of one item. Direct operations reuse the same
// reducer the resolver path goes through, so both paths share one set of
// semantics.
func (uc *implUseCase) Toggle(ctx context.Context, id string) error {
	return uc.applyOne(ctx, todo.Action{Action: todo.ActionMark, TodoID: id}, func(out todo.ApplyOutcome) bool {
		return out.Marked > 0
	})
}

// Delete removes one item by ID.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	return uc.applyOne(ctx, todo.Action{Action: todo.ActionDelete, TodoID: id}, func(out todo.ApplyOutcome) bool {
		return out.Deleted > 0
	})
}

// Edit partially updates one item. Empty fields keep their prior value;
// Date and Time pointers distinguish "unchanged" from explicit values.
func (uc *implUseCase) Edit(ctx context.Context, input todo.EditInput) error {
	if input.ID == "" {
		return todo.ErrTodoNotFound
	}

	found := false
	_, err := uc.store.Update(ctx, func(current repository.Snapshot) (repository.Snapshot, error) {
		for i := range current.Todos {
			if current.Todos[i].ID != input.ID {
				continue
			}
			found = true
			if input.Text != "" {
				current.Todos[i].Text = input.Text
			}
			if input.Emoji != "" {
				current.Todos[i].Emoji = input.Emoji
			}
			if input.Date != nil {
				current.Todos[i].Date = *input.Date
			}
			if input.Time != nil {
				current.Todos[i].Time = *input.Time
			}
			break
		}
		return current, nil
	})
	if err != nil {
		return err
	}
	if !found {
		return todo.ErrTodoNotFound
	}
	return nil
}

// Clear bulk-removes the day's items matching the scope. Items on other days
// are never touched.
func (uc *implUseCase) Clear(ctx context.Context, input todo.ClearInput) (todo.ClearOutput, error) {
	if !input.Scope.Valid() {
		return todo.ClearOutput{}, todo.ErrInvalidClearScope
	}

	var outcome todo.ApplyOutcome
	_, err := uc.store.Update(ctx, func(current repository.Snapshot) (repository.Snapshot, error) {
		batch := todo.ActionBatch{{Action: todo.ActionClear, ListToClear: input.Scope}}
		items, out := todo.Apply(current.Todos, batch, todo.ApplyContext{SelectedDate: input.Date})
		current.Todos = items
		outcome = out
		return current, nil
	})
	if err != nil {
		return todo.ClearOutput{}, err
	}

	uc.l.Infof(ctx, "Clear: scope=%s date=%s removed=%d", input.Scope, input.Date, outcome.Cleared)
	return todo.ClearOutput{Removed: outcome.Cleared}, nil
}

// applyOne runs a single ID-targeted action through the reducer and maps
// "nothing matched" to ErrTodoNotFound.
func (uc *implUseCase) applyOne(ctx context.Context, action todo.Action, matched func(todo.ApplyOutcome) bool) error {
	if action.TodoID == "" {
		return todo.ErrTodoNotFound
	}

	var outcome todo.ApplyOutcome
	_, err := uc.store.Update(ctx, func(current repository.Snapshot) (repository.Snapshot, error) {
		items, out := todo.Apply(current.Todos, todo.ActionBatch{action}, todo.ApplyContext{})
		current.Todos = items
		outcome = out
		return current, nil
	})
	if err != nil {
		return err
	}
	if !matched(outcome) {
		return todo.ErrTodoNotFound
	}
	return nil
}
