package usecase

import (
	"context"
	"strings"

	"vif/internal/model"
	"vif/internal/resolver"
	"vif/internal/todo"
	"vif/internal/todo/repository"
)

// Resolve turns one utterance into structured actions and applies them to the
// list. A resolver failure never loses input: the utterance is added verbatim
// as a new item on the selected day instead.
func (uc *implUseCase) Resolve(ctx context.Context, input todo.ResolveInput) (todo.ResolveOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return todo.ResolveOutput{}, todo.ErrEmptyInput
	}

	uc.l.Infof(ctx, "Resolve: input_length=%d model=%q date=%s", len(input.Text), input.Model, input.SelectedDate)

	timezone := input.Timezone
	if timezone == "" {
		timezone = uc.timezone
	}

	snap := uc.store.Snapshot()
	dayItems := todo.FilterByDate(snap.Todos, input.SelectedDate)

	batch, resolveErr := uc.resolver.Resolve(ctx, resolver.Input{
		Utterance: input.Text,
		Emoji:     input.Emoji,
		Todos:     dayItems,
		ModelKey:  input.Model,
		Timezone:  timezone,
	})

	actx := todo.ApplyContext{
		SelectedDate:  input.SelectedDate,
		SelectedEmoji: input.Emoji,
		RawText:       input.Text,
	}

	var outcome todo.ApplyOutcome
	fallback := false

	next, err := uc.store.Update(ctx, func(current repository.Snapshot) (repository.Snapshot, error) {
		if resolveErr != nil {
			items, added := todo.FallbackAdd(current.Todos, actx)
			current.Todos = items
			outcome = todo.ApplyOutcome{AddedItems: []model.TodoItem{added}}
			fallback = true
			return current, nil
		}

		items, out := todo.Apply(current.Todos, batch, actx)
		current.Todos = items
		if out.SortBy != nil {
			current.SortBy = *out.SortBy
		}
		outcome = out
		return current, nil
	})
	if err != nil {
		return todo.ResolveOutput{}, err
	}

	if fallback {
		uc.l.Warnf(ctx, "Resolve: resolver failed, added utterance verbatim: %v", resolveErr)
	} else {
		uc.l.Infof(ctx, "Resolve: applied %d actions (added=%d deleted=%d marked=%d edited=%d cleared=%d)",
			len(batch), len(outcome.AddedItems), outcome.Deleted, outcome.Marked, outcome.Edited, outcome.Cleared)
	}

	uc.mirrorToCalendar(ctx, outcome.AddedItems, timezone)

	day := todo.SortItems(todo.FilterByDate(next.Todos, input.SelectedDate), next.SortBy)
	return todo.ResolveOutput{
		Todos:    day,
		SortBy:   next.SortBy,
		Outcome:  outcome,
		Fallback: fallback,
	}, nil
}
