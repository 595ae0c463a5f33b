package resolver

import (
	"encoding/json"
	"fmt"
	"strings"

	"vif/internal/model"
	"vif/pkg/datemath"
)

// promptTodo is the trimmed view of an item serialized into the prompt. Only
// the fields the model may reason about are exposed; dates are omitted since
// the list is already filtered to one day.
type promptTodo struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Emoji     string `json:"emoji,omitempty"`
	Completed bool   `json:"completed"`
}

// BuildPrompt renders the user-facing half of the resolution request: the
// date anchors, the visible day's todos with their ids, the optional emoji,
// and the utterance itself.
func BuildPrompt(utterance, emoji string, todos []model.TodoItem, anchors datemath.Anchors) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("TODAY: %s\nTOMORROW: %s\n\n", anchors.Today, anchors.Tomorrow))

	view := make([]promptTodo, 0, len(todos))
	for _, item := range todos {
		view = append(view, promptTodo{
			ID:        item.ID,
			Text:      item.Text,
			Emoji:     item.Emoji,
			Completed: item.Completed,
		})
	}
	serialized, err := json.Marshal(view)
	if err != nil {
		serialized = []byte("[]")
	}
	sb.WriteString("TODO LIST (reference items only by id):\n")
	sb.Write(serialized)
	sb.WriteString("\n\n")

	if emoji != "" {
		sb.WriteString(fmt.Sprintf("The user picked this emoji: %s\n", emoji))
	}

	sb.WriteString(fmt.Sprintf("UTTERANCE: %s\n\nReturn ONLY the JSON object with the actions array.", utterance))

	return sb.String()
}
