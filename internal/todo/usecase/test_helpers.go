package usecase

import (
	"context"
	"io"
	"sync"

	"vif/internal/resolver"
	"vif/internal/todo"
	"vif/internal/todo/repository"
	"vif/internal/todo/store"
	"vif/pkg/elevenlabs"
	"vif/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockResolver returns a canned batch or error and records the last input.
type mockResolver struct {
	batch todo.ActionBatch
	err   error

	lastInput resolver.Input
}

func (m *mockResolver) Resolve(ctx context.Context, in resolver.Input) (todo.ActionBatch, error) {
	m.lastInput = in
	return m.batch, m.err
}

// mockRepo keeps snapshots in memory.
type mockRepo struct {
	mu      sync.Mutex
	snap    repository.Snapshot
	saveErr error
}

func (r *mockRepo) Load(ctx context.Context) (repository.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snap, nil
}

func (r *mockRepo) Save(ctx context.Context, snap repository.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.snap = snap
	return nil
}

// mockSpeech returns a canned transcription.
type mockSpeech struct {
	resp *elevenlabs.TranscriptionResponse
	err  error
}

func (m *mockSpeech) Transcribe(ctx context.Context, audio io.Reader, filename, mimeType string) (*elevenlabs.TranscriptionResponse, error) {
	return m.resp, m.err
}

// mockCalendar records created events.
type mockCalendar struct {
	mu     sync.Mutex
	events []gcalendar.EventRequest
	err    error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.EventRequest) (*gcalendar.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.events = append(m.events, req)
	return &gcalendar.Event{ID: "event-1", Summary: req.Summary}, nil
}

func newTestStore(snap repository.Snapshot) (*store.Store, *mockRepo) {
	repo := &mockRepo{snap: snap}
	s, err := store.New(context.Background(), &mockLogger{}, repo)
	if err != nil {
		panic(err)
	}
	return s, repo
}
