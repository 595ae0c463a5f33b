package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"vif/config"
	"vif/internal/middleware"
	"vif/internal/model"
	"vif/internal/todo"
	todoHTTP "vif/internal/todo/delivery/http"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockUseCase struct {
	resolveOutput    todo.ResolveOutput
	resolveErr       error
	resolveInput     todo.ResolveInput
	listOutput       todo.ListOutput
	listErr          error
	listInput        todo.ListInput
	toggleErr        error
	toggleID         string
	editErr          error
	editInput        todo.EditInput
	deleteErr        error
	deleteID         string
	clearOutput      todo.ClearOutput
	clearErr         error
	clearInput       todo.ClearInput
	transcribeOutput todo.TranscribeOutput
	transcribeErr    error
	transcribeInput  todo.TranscribeInput
}

func (m *mockUseCase) Resolve(ctx context.Context, input todo.ResolveInput) (todo.ResolveOutput, error) {
	m.resolveInput = input
	return m.resolveOutput, m.resolveErr
}
func (m *mockUseCase) List(ctx context.Context, input todo.ListInput) (todo.ListOutput, error) {
	m.listInput = input
	return m.listOutput, m.listErr
}
func (m *mockUseCase) Toggle(ctx context.Context, id string) error {
	m.toggleID = id
	return m.toggleErr
}
func (m *mockUseCase) Edit(ctx context.Context, input todo.EditInput) error {
	m.editInput = input
	return m.editErr
}
func (m *mockUseCase) Delete(ctx context.Context, id string) error {
	m.deleteID = id
	return m.deleteErr
}
func (m *mockUseCase) Clear(ctx context.Context, input todo.ClearInput) (todo.ClearOutput, error) {
	m.clearInput = input
	return m.clearOutput, m.clearErr
}
func (m *mockUseCase) Transcribe(ctx context.Context, input todo.TranscribeInput) (todo.TranscribeOutput, error) {
	m.transcribeInput = input
	return m.transcribeOutput, m.transcribeErr
}

// ── Helpers ────────────────────────────────────────────────────────────────

func newTestRouter(uc todo.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")

	l := &mockLogger{}
	mw := middleware.New(l, config.RateLimitConfig{Enabled: false})
	h := todoHTTP.New(l, uc)
	todoHTTP.RegisterRoutes(api, h, mw)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope struct {
		ErrorCode int                    `json:"error_code"`
		Message   string                 `json:"message"`
		Data      map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v (body %s)", err, w.Body.String())
	}
	if envelope.ErrorCode != 0 {
		t.Fatalf("error_code = %d, want 0 (body %s)", envelope.ErrorCode, w.Body.String())
	}
	return envelope.Data
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestResolveHandler(t *testing.T) {
	item := model.TodoItem{
		ID:    "t1",
		Text:  "buy milk",
		Emoji: "🥛",
		Date:  model.NewDate(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
	}
	uc := &mockUseCase{
		resolveOutput: todo.ResolveOutput{
			Todos:   []model.TodoItem{item},
			SortBy:  model.SortOldest,
			Outcome: todo.ApplyOutcome{AddedItems: []model.TodoItem{item}},
		},
	}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/todos/resolve",
		`{"text":"add buy milk","emoji":"🥛","model":"fast","date":"2024-05-01"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	if uc.resolveInput.Text != "add buy milk" {
		t.Errorf("uc got text %q", uc.resolveInput.Text)
	}
	if uc.resolveInput.Model != "fast" {
		t.Errorf("uc got model %q", uc.resolveInput.Model)
	}
	if got := uc.resolveInput.SelectedDate.String(); got != "2024-05-01" {
		t.Errorf("uc got selected date %q, want 2024-05-01", got)
	}

	data := decodeData(t, w)
	todos, _ := data["todos"].([]interface{})
	if len(todos) != 1 {
		t.Fatalf("todos length = %d, want 1", len(todos))
	}
	outcome, _ := data["outcome"].(map[string]interface{})
	if outcome["added"] != float64(1) {
		t.Errorf("outcome.added = %v, want 1", outcome["added"])
	}
}

func TestResolveHandlerRejectsEmptyText(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/todos/resolve", `{"text":""}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if uc.resolveInput.Text != "" {
		t.Error("use case should not have been called")
	}
}

func TestListHandler(t *testing.T) {
	uc := &mockUseCase{
		listOutput: todo.ListOutput{
			Todos:     []model.TodoItem{{ID: "t1", Text: "buy milk"}},
			SortBy:    model.SortAlphabetical,
			Completed: 1,
			Remaining: 1,
			Progress:  50,
		},
	}
	r := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/todos?date=2024-05-01", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	if got := uc.listInput.Date.String(); got != "2024-05-01" {
		t.Errorf("uc got date %q, want 2024-05-01", got)
	}

	data := decodeData(t, w)
	if data["progress"] != float64(50) {
		t.Errorf("progress = %v, want 50", data["progress"])
	}
	if data["sortBy"] != string(model.SortAlphabetical) {
		t.Errorf("sortBy = %v, want %s", data["sortBy"], model.SortAlphabetical)
	}
}

func TestToggleHandlerNotFound(t *testing.T) {
	uc := &mockUseCase{toggleErr: todo.ErrTodoNotFound}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/todos/nope/toggle", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if uc.toggleID != "nope" {
		t.Errorf("uc got id %q", uc.toggleID)
	}
}

func TestUpdateHandler(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodPut, "/api/v1/todos/t1",
		`{"text":"buy oat milk","time":"09:30"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	if uc.editInput.ID != "t1" {
		t.Errorf("uc got id %q", uc.editInput.ID)
	}
	if uc.editInput.Text != "buy oat milk" {
		t.Errorf("uc got text %q", uc.editInput.Text)
	}
	if uc.editInput.Time == nil || *uc.editInput.Time != "09:30" {
		t.Errorf("uc got time %v, want 09:30", uc.editInput.Time)
	}
	if uc.editInput.Date != nil {
		t.Errorf("uc got date %v, want nil", uc.editInput.Date)
	}
}

func TestDeleteHandler(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/todos/t1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if uc.deleteID != "t1" {
		t.Errorf("uc got id %q", uc.deleteID)
	}
}

func TestClearHandler(t *testing.T) {
	uc := &mockUseCase{clearOutput: todo.ClearOutput{Removed: 3}}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/todos/clear",
		`{"listToClear":"completed","date":"2024-05-01"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	if uc.clearInput.Scope != todo.ClearCompleted {
		t.Errorf("uc got scope %q", uc.clearInput.Scope)
	}

	data := decodeData(t, w)
	if data["removed"] != float64(3) {
		t.Errorf("removed = %v, want 3", data["removed"])
	}
}

func TestClearHandlerRejectsUnknownScope(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/todos/clear", `{"listToClear":"everything"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestTranscribeHandler(t *testing.T) {
	uc := &mockUseCase{transcribeOutput: todo.TranscribeOutput{Text: "buy milk tomorrow"}}
	r := newTestRouter(uc)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "recording.webm")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := io.WriteString(part, "fake audio bytes"); err != nil {
		t.Fatalf("write part: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/speech/transcriptions", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	if uc.transcribeInput.Filename != "recording.webm" {
		t.Errorf("uc got filename %q", uc.transcribeInput.Filename)
	}

	data := decodeData(t, w)
	if data["text"] != "buy milk tomorrow" {
		t.Errorf("text = %v, want transcription", data["text"])
	}
}

func TestTranscribeHandlerMissingFile(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/speech/transcriptions", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
