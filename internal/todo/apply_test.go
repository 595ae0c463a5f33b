package todo_test

import (
	"fmt"
	"reflect"
	"testing"

	"vif/internal/model"
	"vif/internal/todo"
)

func mustDate(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

// sequentialIDs returns a deterministic ID generator for tests.
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("new-%d", n)
	}
}

func fixtureItems(t *testing.T) []model.TodoItem {
	return []model.TodoItem{
		{ID: "1", Text: "buy groceries", Emoji: "🛒", Date: mustDate(t, "2024-05-01")},
		{ID: "2", Text: "call mom", Emoji: "📞", Completed: true, Date: mustDate(t, "2024-05-01")},
		{ID: "3", Text: "water plants", Emoji: "🪴", Date: mustDate(t, "2024-05-02")},
	}
}

func TestApplyAdd(t *testing.T) {
	actx := todo.ApplyContext{
		SelectedDate:  mustDate(t, "2024-05-01"),
		SelectedEmoji: "✨",
		RawText:       "buy milk",
		NewID:         sequentialIDs(),
	}

	got, outcome := todo.Apply(nil, todo.ActionBatch{
		{Action: todo.ActionAdd, Text: "buy milk", Emoji: "🛒", TargetDate: "2024-05-01"},
	}, actx)

	if len(got) != 1 {
		t.Fatalf("expected 1 item, got %d", len(got))
	}
	item := got[0]
	if item.Text != "buy milk" || item.Emoji != "🛒" || item.Completed {
		t.Errorf("unexpected item: %+v", item)
	}
	if item.Date.String() != "2024-05-01" {
		t.Errorf("expected date 2024-05-01, got %s", item.Date)
	}
	if len(outcome.AddedItems) != 1 {
		t.Errorf("expected 1 added item in outcome, got %d", len(outcome.AddedItems))
	}
}

func TestApplyAddFallbacks(t *testing.T) {
	actx := todo.ApplyContext{
		SelectedDate:  mustDate(t, "2024-06-10"),
		SelectedEmoji: "📌",
		RawText:       "plan the trip",
		NewID:         sequentialIDs(),
	}

	// No text, emoji, or targetDate from the resolver: everything falls back
	// to the caller's selection state.
	got, _ := todo.Apply(nil, todo.ActionBatch{{Action: todo.ActionAdd}}, actx)

	if len(got) != 1 {
		t.Fatalf("expected 1 item, got %d", len(got))
	}
	if got[0].Text != "plan the trip" {
		t.Errorf("expected raw text fallback, got %q", got[0].Text)
	}
	if got[0].Emoji != "📌" {
		t.Errorf("expected selected emoji fallback, got %q", got[0].Emoji)
	}
	if got[0].Date.String() != "2024-06-10" {
		t.Errorf("expected selected date fallback, got %s", got[0].Date)
	}
}

func TestApplyUnknownIDIsNoOp(t *testing.T) {
	items := fixtureItems(t)
	actx := todo.ApplyContext{SelectedDate: mustDate(t, "2024-05-01"), NewID: sequentialIDs()}

	batches := []todo.ActionBatch{
		{{Action: todo.ActionDelete, TodoID: "missing"}},
		{{Action: todo.ActionMark, TodoID: "missing"}},
		{{Action: todo.ActionEdit, TodoID: "missing", Text: "nope"}},
	}

	for _, batch := range batches {
		got, _ := todo.Apply(items, batch, actx)
		if !reflect.DeepEqual(got, items) {
			t.Errorf("batch %+v: expected unchanged list, got %+v", batch, got)
		}
	}
}

func TestApplyIDGrounding(t *testing.T) {
	items := fixtureItems(t)
	actx := todo.ApplyContext{SelectedDate: mustDate(t, "2024-05-01")}

	got, outcome := todo.Apply(items, todo.ActionBatch{
		{Action: todo.ActionDelete, TodoID: "2"},
	}, actx)

	if outcome.Deleted != 1 {
		t.Fatalf("expected 1 deletion, got %d", outcome.Deleted)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	for _, item := range got {
		if item.ID == "2" {
			t.Errorf("item 2 should be gone")
		}
	}
	// Untouched items are byte-for-byte identical.
	if !reflect.DeepEqual(got[0], items[0]) || !reflect.DeepEqual(got[1], items[2]) {
		t.Errorf("other items changed: %+v", got)
	}
}

func TestApplyMarkToggleAndExplicit(t *testing.T) {
	items := fixtureItems(t)
	actx := todo.ApplyContext{SelectedDate: mustDate(t, "2024-05-01")}

	// No status: toggle.
	got, _ := todo.Apply(items, todo.ActionBatch{{Action: todo.ActionMark, TodoID: "1"}}, actx)
	if !got[0].Completed {
		t.Errorf("toggle should complete item 1")
	}
	got, _ = todo.Apply(got, todo.ActionBatch{{Action: todo.ActionMark, TodoID: "1"}}, actx)
	if got[0].Completed {
		t.Errorf("second toggle should uncomplete item 1")
	}

	// Explicit status is idempotent.
	for i := 0; i < 2; i++ {
		got, _ = todo.Apply(got, todo.ActionBatch{{Action: todo.ActionMark, TodoID: "1", Status: todo.StatusComplete}}, actx)
		if !got[0].Completed {
			t.Errorf("explicit complete should set completed=true (round %d)", i)
		}
	}

	got, _ = todo.Apply(got, todo.ActionBatch{{Action: todo.ActionMark, TodoID: "1", Status: todo.StatusIncomplete}}, actx)
	if got[0].Completed {
		t.Errorf("explicit incomplete should set completed=false")
	}
}

func TestApplyPartialEdit(t *testing.T) {
	items := []model.TodoItem{
		{ID: "1", Text: "a", Emoji: "🙂", Date: mustDate(t, "2024-05-01"), Time: "09:00"},
	}
	actx := todo.ApplyContext{SelectedDate: mustDate(t, "2024-05-01")}

	got, outcome := todo.Apply(items, todo.ActionBatch{
		{Action: todo.ActionEdit, TodoID: "1", Text: "b"},
	}, actx)

	if outcome.Edited != 1 {
		t.Fatalf("expected 1 edit, got %d", outcome.Edited)
	}
	want := model.TodoItem{ID: "1", Text: "b", Emoji: "🙂", Date: mustDate(t, "2024-05-01"), Time: "09:00"}
	if !reflect.DeepEqual(got[0], want) {
		t.Errorf("partial edit: got %+v, want %+v", got[0], want)
	}
}

func TestApplyEditAllFields(t *testing.T) {
	items := fixtureItems(t)
	actx := todo.ApplyContext{SelectedDate: mustDate(t, "2024-05-01")}

	got, _ := todo.Apply(items, todo.ActionBatch{
		{Action: todo.ActionEdit, TodoID: "1", Text: "buy flowers", Emoji: "💐", TargetDate: "2024-05-03", Time: "15:00"},
	}, actx)

	item := got[0]
	if item.ID != "1" {
		t.Fatalf("edit must preserve ID, got %q", item.ID)
	}
	if item.Text != "buy flowers" || item.Emoji != "💐" || item.Time != "15:00" || item.Date.String() != "2024-05-03" {
		t.Errorf("unexpected edited item: %+v", item)
	}
}

func TestApplyClearScoping(t *testing.T) {
	items := fixtureItems(t) // two items on 05-01, one on 05-02
	actx := todo.ApplyContext{SelectedDate: mustDate(t, "2024-05-01")}

	tests := []struct {
		scope       todo.ClearScope
		wantCleared int
		wantIDs     []string
	}{
		{todo.ClearAll, 2, []string{"3"}},
		{todo.ClearCompleted, 1, []string{"1", "3"}},
		{todo.ClearIncomplete, 1, []string{"2", "3"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.scope), func(t *testing.T) {
			got, outcome := todo.Apply(items, todo.ActionBatch{
				{Action: todo.ActionClear, ListToClear: tt.scope},
			}, actx)

			if outcome.Cleared != tt.wantCleared {
				t.Errorf("cleared = %d, want %d", outcome.Cleared, tt.wantCleared)
			}
			var ids []string
			for _, item := range got {
				ids = append(ids, item.ID)
			}
			if !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Errorf("remaining ids = %v, want %v", ids, tt.wantIDs)
			}
		})
	}
}

func TestApplySortOutcome(t *testing.T) {
	actx := todo.ApplyContext{SelectedDate: mustDate(t, "2024-05-01")}
	items := fixtureItems(t)

	got, outcome := todo.Apply(items, todo.ActionBatch{
		{Action: todo.ActionSort, SortBy: model.SortAlphabetical},
	}, actx)

	if outcome.SortBy == nil || *outcome.SortBy != model.SortAlphabetical {
		t.Errorf("expected sort outcome alphabetical, got %v", outcome.SortBy)
	}
	// Sort never mutates the items.
	if !reflect.DeepEqual(got, items) {
		t.Errorf("sort must not change the list")
	}

	_, outcome = todo.Apply(items, todo.ActionBatch{
		{Action: todo.ActionSort, SortBy: "bogus"},
	}, actx)
	if outcome.SortBy != nil {
		t.Errorf("invalid sortBy should be ignored")
	}
}

func TestApplyBatchOrdering(t *testing.T) {
	items := fixtureItems(t)
	actx := todo.ApplyContext{
		SelectedDate: mustDate(t, "2024-05-01"),
		RawText:      "add x and mark groceries done",
		NewID:        sequentialIDs(),
	}

	got, _ := todo.Apply(items, todo.ActionBatch{
		{Action: todo.ActionAdd, Text: "x", TargetDate: "2024-05-01"},
		{Action: todo.ActionMark, TodoID: "1", Status: todo.StatusComplete},
	}, actx)

	if len(got) != 4 {
		t.Fatalf("expected 4 items, got %d", len(got))
	}
	if got[0].ID != "1" || !got[0].Completed {
		t.Errorf("pre-existing item should be completed: %+v", got[0])
	}
	if got[3].Text != "x" {
		t.Errorf("new item missing: %+v", got[3])
	}
}

func TestApplyEditThenDeleteSameID(t *testing.T) {
	// Later actions operate on the result of earlier ones: the item ends deleted.
	items := fixtureItems(t)
	actx := todo.ApplyContext{SelectedDate: mustDate(t, "2024-05-01")}

	got, outcome := todo.Apply(items, todo.ActionBatch{
		{Action: todo.ActionEdit, TodoID: "1", Text: "buy flowers"},
		{Action: todo.ActionDelete, TodoID: "1"},
	}, actx)

	if outcome.Edited != 1 || outcome.Deleted != 1 {
		t.Errorf("expected edit then delete, got %+v", outcome)
	}
	for _, item := range got {
		if item.ID == "1" {
			t.Errorf("item 1 should be deleted")
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	items := fixtureItems(t)
	snapshot := make([]model.TodoItem, len(items))
	copy(snapshot, items)

	actx := todo.ApplyContext{SelectedDate: mustDate(t, "2024-05-01"), NewID: sequentialIDs()}
	todo.Apply(items, todo.ActionBatch{
		{Action: todo.ActionMark, TodoID: "1"},
		{Action: todo.ActionClear, ListToClear: todo.ClearAll},
	}, actx)

	if !reflect.DeepEqual(items, snapshot) {
		t.Errorf("Apply mutated its input: %+v", items)
	}
}

func TestFallbackAddVerbatim(t *testing.T) {
	items := fixtureItems(t)
	actx := todo.ApplyContext{
		SelectedDate:  mustDate(t, "2024-05-01"),
		SelectedEmoji: "🛒",
		RawText:       "Buy MILK tomorrow!",
		NewID:         sequentialIDs(),
	}

	got, added := todo.FallbackAdd(items, actx)

	if len(got) != len(items)+1 {
		t.Fatalf("expected %d items, got %d", len(items)+1, len(got))
	}
	// Fallback text is the raw input verbatim, never lowercased.
	if added.Text != "Buy MILK tomorrow!" {
		t.Errorf("fallback text altered: %q", added.Text)
	}
	if added.Emoji != "🛒" || added.Completed || added.Date.String() != "2024-05-01" {
		t.Errorf("unexpected fallback item: %+v", added)
	}
}

func TestNormalizeTargetDates(t *testing.T) {
	batch := todo.ActionBatch{
		{Action: todo.ActionAdd, Text: "a", TargetDate: "2024-05-01"},
		{Action: todo.ActionAdd, Text: "b", TargetDate: "tomorrow"},
		{Action: todo.ActionAdd, Text: "c"},
	}

	normalized := batch.NormalizeTargetDates(func(relative string) (string, bool) {
		if relative == "tomorrow" {
			return "2024-05-02", true
		}
		return "", false
	})

	if normalized[0].TargetDate != "2024-05-01" {
		t.Errorf("valid date must be untouched, got %q", normalized[0].TargetDate)
	}
	if normalized[1].TargetDate != "2024-05-02" {
		t.Errorf("relative date not normalized, got %q", normalized[1].TargetDate)
	}
	if normalized[2].TargetDate != "" {
		t.Errorf("empty date must stay empty, got %q", normalized[2].TargetDate)
	}
	// Original batch unchanged.
	if batch[1].TargetDate != "tomorrow" {
		t.Errorf("NormalizeTargetDates mutated its receiver")
	}
}
