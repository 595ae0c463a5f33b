package http

import (
	"vif/internal/model"
	"vif/internal/todo"
)

// --- Request DTOs ---

type resolveReq struct {
	Text     string `json:"text"     binding:"required,min=1,max=2000"`
	Emoji    string `json:"emoji"    binding:"max=16"`
	Model    string `json:"model"    binding:"max=64"`
	Date     string `json:"date"     binding:"omitempty,datetime=2006-01-02"`
	Timezone string `json:"timezone" binding:"max=64"`

	selectedDate model.Date // resolved during request processing
}

func (r resolveReq) toInput() todo.ResolveInput {
	return todo.ResolveInput{
		Text:         r.Text,
		Emoji:        r.Emoji,
		Model:        r.Model,
		Timezone:     r.Timezone,
		SelectedDate: r.selectedDate,
	}
}

type listReq struct {
	Date     string `form:"date"     binding:"omitempty,datetime=2006-01-02"`
	Timezone string `form:"timezone" binding:"max=64"`

	selectedDate model.Date
}

func (r listReq) toInput() todo.ListInput {
	return todo.ListInput{Date: r.selectedDate}
}

type editReq struct {
	ID    string  `json:"-"`
	Text  string  `json:"text"  binding:"max=2000"`
	Emoji string  `json:"emoji" binding:"max=16"`
	Date  *string `json:"date"  binding:"omitempty,datetime=2006-01-02"`
	Time  *string `json:"time"  binding:"omitempty"`
}

func (r editReq) toInput() (todo.EditInput, error) {
	in := todo.EditInput{
		ID:    r.ID,
		Text:  r.Text,
		Emoji: r.Emoji,
		Time:  r.Time,
	}
	if r.Date != nil {
		d, err := model.ParseDate(*r.Date)
		if err != nil {
			return todo.EditInput{}, err
		}
		in.Date = &d
	}
	return in, nil
}

type clearReq struct {
	Date        string `json:"date"        binding:"omitempty,datetime=2006-01-02"`
	Timezone    string `json:"timezone"    binding:"max=64"`
	ListToClear string `json:"listToClear" binding:"required,oneof=all completed incomplete"`

	selectedDate model.Date
}

func (r clearReq) toInput() todo.ClearInput {
	return todo.ClearInput{
		Date:  r.selectedDate,
		Scope: todo.ClearScope(r.ListToClear),
	}
}

// --- Response DTOs ---

type todoResp struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Emoji     string `json:"emoji,omitempty"`
	Date      string `json:"date"`
	Time      string `json:"time,omitempty"`
}

func newTodoResp(item model.TodoItem) todoResp {
	return todoResp{
		ID:        item.ID,
		Text:      item.Text,
		Completed: item.Completed,
		Emoji:     item.Emoji,
		Date:      item.Date.String(),
		Time:      item.Time,
	}
}

func newTodoList(items []model.TodoItem) []todoResp {
	out := make([]todoResp, len(items))
	for i, item := range items {
		out[i] = newTodoResp(item)
	}
	return out
}

type outcomeResp struct {
	Added   int `json:"added"`
	Deleted int `json:"deleted"`
	Marked  int `json:"marked"`
	Edited  int `json:"edited"`
	Cleared int `json:"cleared"`
}

type resolveResp struct {
	Todos    []todoResp  `json:"todos"`
	SortBy   string      `json:"sortBy"`
	Fallback bool        `json:"fallback"`
	Outcome  outcomeResp `json:"outcome"`
}

func (h *handler) newResolveResp(out todo.ResolveOutput) resolveResp {
	return resolveResp{
		Todos:    newTodoList(out.Todos),
		SortBy:   string(out.SortBy),
		Fallback: out.Fallback,
		Outcome: outcomeResp{
			Added:   len(out.Outcome.AddedItems),
			Deleted: out.Outcome.Deleted,
			Marked:  out.Outcome.Marked,
			Edited:  out.Outcome.Edited,
			Cleared: out.Outcome.Cleared,
		},
	}
}

type listResp struct {
	Todos     []todoResp `json:"todos"`
	SortBy    string     `json:"sortBy"`
	Completed int        `json:"completed"`
	Remaining int        `json:"remaining"`
	Progress  int        `json:"progress"`
}

func (h *handler) newListResp(out todo.ListOutput) listResp {
	return listResp{
		Todos:     newTodoList(out.Todos),
		SortBy:    string(out.SortBy),
		Completed: out.Completed,
		Remaining: out.Remaining,
		Progress:  out.Progress,
	}
}

type clearResp struct {
	Removed int `json:"removed"`
}

type transcribeResp struct {
	Text string `json:"text"`
}
