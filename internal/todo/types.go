package todo

import (
	"io"

	"vif/internal/model"
)

// ActionKind is the discriminator of a resolved action.
type ActionKind string

const (
	ActionAdd    ActionKind = "add"
	ActionDelete ActionKind = "delete"
	ActionMark   ActionKind = "mark"
	ActionEdit   ActionKind = "edit"
	ActionSort   ActionKind = "sort"
	ActionClear  ActionKind = "clear"
)

// MarkStatus is the explicit completion state carried by a mark action.
// Absence means "toggle".
type MarkStatus string

const (
	StatusComplete   MarkStatus = "complete"
	StatusIncomplete MarkStatus = "incomplete"
)

// ClearScope selects which of the day's items a clear action removes.
type ClearScope string

const (
	ClearAll        ClearScope = "all"
	ClearCompleted  ClearScope = "completed"
	ClearIncomplete ClearScope = "incomplete"
)

// Valid reports whether s is a known clear scope.
func (s ClearScope) Valid() bool {
	switch s {
	case ClearAll, ClearCompleted, ClearIncomplete:
		return true
	}
	return false
}

// Action is one structured instruction resolved from a natural-language
// utterance. Only the fields relevant to the Action kind are populated; the
// applier ignores the rest. Existing items are referenced strictly by TodoID,
// never by text.
type Action struct {
	Action      ActionKind       `json:"action"`
	Text        string           `json:"text,omitempty"`
	TodoID      string           `json:"todoId,omitempty"`
	Emoji       string           `json:"emoji,omitempty"`
	TargetDate  string           `json:"targetDate,omitempty"` // YYYY-MM-DD
	Time        string           `json:"time,omitempty"`       // 24-hour HH:mm
	SortBy      model.SortOption `json:"sortBy,omitempty"`
	Status      MarkStatus       `json:"status,omitempty"`
	ListToClear ClearScope       `json:"listToClear,omitempty"`
}

// ActionBatch is the ordered list of actions resolved for one utterance.
type ActionBatch []Action

// ResolveInput is the input for the natural-language resolve operation.
type ResolveInput struct {
	Text         string
	Emoji        string
	Model        string // opaque model key, empty means default
	Timezone     string // IANA identifier, empty means configured default
	SelectedDate model.Date
}

// ResolveOutput is the result of resolving and applying one utterance.
type ResolveOutput struct {
	Todos    []model.TodoItem // the selected day's items after application
	SortBy   model.SortOption
	Outcome  ApplyOutcome
	Fallback bool // true when the resolver failed and a literal add was performed
}

// ListInput selects the day to list.
type ListInput struct {
	Date model.Date
}

// ListOutput is the day's sorted items plus derived stats.
type ListOutput struct {
	Todos     []model.TodoItem
	SortBy    model.SortOption
	Completed int
	Remaining int
	Progress  int // percent, 0-100
}

// EditInput is a direct (non-AI) partial edit of one item.
type EditInput struct {
	ID    string
	Text  string
	Emoji string
	Date  *model.Date
	Time  *string
}

// ClearInput is a direct bulk removal scoped to one calendar day.
type ClearInput struct {
	Date  model.Date
	Scope ClearScope
}

// ClearOutput reports how many items a clear removed.
type ClearOutput struct {
	Removed int
}

// TranscribeInput carries recorded audio for speech-to-text.
type TranscribeInput struct {
	Audio    io.Reader
	MIMEType string
	Filename string
}

// TranscribeOutput is the transcription result. Text is empty when no speech
// was detected.
type TranscribeOutput struct {
	Text string
}
