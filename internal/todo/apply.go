package todo

import (
	"strings"

	"github.com/google/uuid"

	"vif/internal/model"
)

// ApplyContext carries the caller's current selection state into the applier.
type ApplyContext struct {
	SelectedDate  model.Date
	SelectedEmoji string
	RawText       string // the original utterance, used when an add carries no text

	// NewID generates item IDs. Defaults to uuid.NewString; tests override it.
	NewID func() string
}

// ApplyOutcome summarizes what a batch did to the list.
type ApplyOutcome struct {
	SortBy     *model.SortOption // set when the batch contained a sort action
	AddedItems []model.TodoItem
	Deleted    int
	Marked     int
	Edited     int
	Cleared    int
}

// Apply processes the batch in order against items and returns the new list.
// Each action sees the accumulated result of the actions before it. Actions
// referencing an unknown TodoID are silent no-ops. Apply never mutates its
// input slice.
func Apply(items []model.TodoItem, batch ActionBatch, actx ApplyContext) ([]model.TodoItem, ApplyOutcome) {
	newID := actx.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	result := make([]model.TodoItem, len(items))
	copy(result, items)

	var outcome ApplyOutcome

	for _, action := range batch {
		switch action.Action {
		case ActionAdd:
			item := model.TodoItem{
				ID:        newID(),
				Text:      action.Text,
				Completed: false,
				Emoji:     action.Emoji,
				Date:      actx.SelectedDate,
				Time:      action.Time,
			}
			if item.Text == "" {
				item.Text = actx.RawText
			}
			if item.Emoji == "" {
				item.Emoji = actx.SelectedEmoji
			}
			if d, err := model.ParseDate(action.TargetDate); err == nil && action.TargetDate != "" {
				item.Date = d
			}
			result = append(result, item)
			outcome.AddedItems = append(outcome.AddedItems, item)

		case ActionDelete:
			if action.TodoID == "" {
				continue
			}
			kept := result[:0]
			for _, item := range result {
				if item.ID == action.TodoID {
					outcome.Deleted++
					continue
				}
				kept = append(kept, item)
			}
			result = kept

		case ActionMark:
			for i := range result {
				if result[i].ID != action.TodoID || action.TodoID == "" {
					continue
				}
				switch action.Status {
				case StatusComplete:
					result[i].Completed = true
				case StatusIncomplete:
					result[i].Completed = false
				default:
					result[i].Completed = !result[i].Completed
				}
				outcome.Marked++
				break
			}

		case ActionEdit:
			for i := range result {
				if result[i].ID != action.TodoID || action.TodoID == "" {
					continue
				}
				if action.Text != "" {
					result[i].Text = action.Text
				}
				if action.Emoji != "" {
					result[i].Emoji = action.Emoji
				}
				if action.TargetDate != "" {
					if d, err := model.ParseDate(action.TargetDate); err == nil {
						result[i].Date = d
					}
				}
				if action.Time != "" {
					result[i].Time = action.Time
				}
				outcome.Edited++
				break
			}

		case ActionSort:
			if action.SortBy.Valid() {
				sortBy := action.SortBy
				outcome.SortBy = &sortBy
			}

		case ActionClear:
			if !action.ListToClear.Valid() {
				continue
			}
			kept := result[:0]
			for _, item := range result {
				if clearMatches(item, action.ListToClear, actx.SelectedDate) {
					outcome.Cleared++
					continue
				}
				kept = append(kept, item)
			}
			result = kept
		}
	}

	return result, outcome
}

// clearMatches reports whether item falls inside the clear scope. Items on
// other calendar days are never cleared.
func clearMatches(item model.TodoItem, scope ClearScope, selected model.Date) bool {
	if !item.Date.Equal(selected) {
		return false
	}
	switch scope {
	case ClearAll:
		return true
	case ClearCompleted:
		return item.Completed
	case ClearIncomplete:
		return !item.Completed
	}
	return false
}

// FallbackAdd appends the raw utterance verbatim as a new item. Used when the
// resolver call fails so the user's input is never silently lost.
func FallbackAdd(items []model.TodoItem, actx ApplyContext) ([]model.TodoItem, model.TodoItem) {
	newID := actx.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	item := model.TodoItem{
		ID:        newID(),
		Text:      actx.RawText,
		Completed: false,
		Emoji:     actx.SelectedEmoji,
		Date:      actx.SelectedDate,
	}

	result := make([]model.TodoItem, len(items), len(items)+1)
	copy(result, items)
	return append(result, item), item
}

// NormalizeTargetDates rewrites non-ISO targetDate values ("tomorrow",
// "next monday") into YYYY-MM-DD using resolve, leaving valid dates and empty
// fields untouched. The resolver contract asks the model for ISO dates, but
// smaller models occasionally echo the relative phrase instead.
func (b ActionBatch) NormalizeTargetDates(resolve func(relative string) (string, bool)) ActionBatch {
	normalized := make(ActionBatch, len(b))
	copy(normalized, b)

	for i, action := range normalized {
		if action.TargetDate == "" {
			continue
		}
		if _, err := model.ParseDate(action.TargetDate); err == nil {
			continue
		}
		if iso, ok := resolve(strings.ToLower(action.TargetDate)); ok {
			normalized[i].TargetDate = iso
		}
	}

	return normalized
}
