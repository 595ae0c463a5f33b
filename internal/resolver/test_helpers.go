package resolver

import (
	"context"

	"vif/pkg/llmprovider"
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

// mockGenerator returns a canned model reply and records the last request.
type mockGenerator struct {
	response *llmprovider.Response
	err      error

	lastReq      *llmprovider.Request
	lastModelKey string
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.lastReq = req
	return m.response, m.err
}

func (m *mockGenerator) GenerateContentWithModel(ctx context.Context, modelKey string, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.lastReq = req
	m.lastModelKey = modelKey
	return m.response, m.err
}

func textResponse(text string) *llmprovider.Response {
	return &llmprovider.Response{
		Text:         text,
		ProviderName: "mock",
		ModelName:    "mock-model",
		Usage:        &llmprovider.Usage{},
	}
}
