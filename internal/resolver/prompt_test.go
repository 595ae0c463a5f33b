package resolver

import (
	"strings"
	"testing"
	"time"

	"vif/internal/model"
	"vif/pkg/datemath"
)

func TestBuildPromptEmptyList(t *testing.T) {
	anchors := datemath.Anchors{Today: "2024-05-01", Tomorrow: "2024-05-02"}

	prompt := BuildPrompt("buy milk", "", nil, anchors)

	if !strings.Contains(prompt, "[]") {
		t.Errorf("empty list should serialize as [], got:\n%s", prompt)
	}
	if strings.Contains(prompt, "picked this emoji") {
		t.Errorf("emoji line must be omitted when no emoji was given")
	}
}

func TestBuildPromptOmitsDates(t *testing.T) {
	anchors := datemath.Anchors{Today: "2024-05-01", Tomorrow: "2024-05-02"}
	todos := []model.TodoItem{
		{ID: "a1", Text: "buy milk", Emoji: "🥛", Completed: true, Date: model.NewDate(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))},
	}

	prompt := BuildPrompt("done with milk", "", todos, anchors)

	if !strings.Contains(prompt, `"completed":true`) {
		t.Errorf("completed state missing from serialized todo")
	}
	// The list is pre-filtered to one day, so per-item dates are noise.
	if strings.Contains(prompt, `"date"`) {
		t.Errorf("per-item dates should not be serialized into the prompt")
	}
}
