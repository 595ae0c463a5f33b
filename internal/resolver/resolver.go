package resolver

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"vif/internal/model"
	"vif/internal/todo"
	"vif/pkg/datemath"
	"vif/pkg/llmprovider"
	pkgLog "vif/pkg/log"
)

type implResolver struct {
	l         pkgLog.Logger
	generator ContentGenerator
	config    Config
	now       func() time.Time
}

var _ Resolver = (*implResolver)(nil)

func (r *implResolver) Resolve(ctx context.Context, in Input) (todo.ActionBatch, error) {
	if strings.TrimSpace(in.Utterance) == "" {
		return nil, todo.ErrEmptyInput
	}

	parser := r.dateParser(ctx, in.Timezone)
	now := r.now()
	anchors := parser.Anchors(now)

	req := &llmprovider.Request{
		SystemInstruction: ActionSystemPrompt,
		Messages: []llmprovider.Message{
			{Role: "user", Text: BuildPrompt(in.Utterance, in.Emoji, in.Todos, anchors)},
		},
		Temperature: defaultTemperature, // low temperature for deterministic JSON output
		MaxTokens:   maxOutputTokens,
		JSONOnly:    true,
	}

	var (
		resp *llmprovider.Response
		err  error
	)
	if in.ModelKey == "" {
		resp, err = r.generator.GenerateContent(ctx, req)
	} else {
		resp, err = r.generator.GenerateContentWithModel(ctx, in.ModelKey, req)
	}
	if err != nil {
		return nil, fmt.Errorf("LLM request failed: %w", err)
	}

	r.l.Debugf(ctx, "resolver raw response from %s/%s: %s", resp.ProviderName, resp.ModelName, resp.Text)

	cleaned := sanitizeJSONResponse(resp.Text)
	envelope, err := validateBatch([]byte(cleaned))
	if err != nil {
		r.l.Errorf(ctx, "resolver rejected model output. Raw=%q Cleaned=%q Err=%v", resp.Text, cleaned, err)
		return nil, err
	}

	batch := toActionBatch(envelope.Actions)
	batch = batch.NormalizeTargetDates(func(relative string) (string, bool) {
		resolved, perr := parser.Parse(relative, now)
		if perr != nil {
			return "", false
		}
		return resolved.Format(datemath.DateFormatISO), true
	})

	return batch, nil
}

// dateParser resolves the timezone to anchor dates against. An invalid or
// empty caller timezone falls back to the configured default, then to UTC.
func (r *implResolver) dateParser(ctx context.Context, timezone string) *datemath.Parser {
	if timezone == "" {
		timezone = r.config.DefaultTimezone
	}

	parser, err := datemath.NewParser(timezone)
	if err == nil {
		return parser
	}
	r.l.Warnf(ctx, "invalid timezone %q, falling back to UTC: %v", timezone, err)

	parser, err = datemath.NewParser("UTC")
	if err != nil {
		// time.LoadLocation("UTC") cannot fail.
		panic(err)
	}
	return parser
}

func toActionBatch(payloads []actionPayload) todo.ActionBatch {
	batch := make(todo.ActionBatch, 0, len(payloads))
	for _, p := range payloads {
		batch = append(batch, todo.Action{
			Action:      todo.ActionKind(p.Action),
			Text:        strings.ToLower(p.Text),
			TodoID:      p.TodoID,
			Emoji:       p.Emoji,
			TargetDate:  p.TargetDate,
			Time:        p.Time,
			SortBy:      model.SortOption(p.SortBy),
			Status:      todo.MarkStatus(p.Status),
			ListToClear: todo.ClearScope(p.ListToClear),
		})
	}
	return batch
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	re := regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	matches := re.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.Index(text, "{")
	if start == -1 {
		return text
	}
	end := strings.LastIndex(text, "}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
