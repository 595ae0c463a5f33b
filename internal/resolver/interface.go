package resolver

import (
	"context"
	"time"

	"vif/internal/todo"
	"vif/pkg/llmprovider"
	pkgLog "vif/pkg/log"
)

//go:generate mockery --name Resolver
type Resolver interface {
	// Resolve turns one natural-language utterance into a validated,
	// ordered action batch. Any failure (transport, malformed output,
	// schema violation) is returned as an error; callers fall back to a
	// literal add.
	Resolve(ctx context.Context, in Input) (todo.ActionBatch, error)
}

// ContentGenerator is the slice of the provider manager the resolver needs.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
	GenerateContentWithModel(ctx context.Context, modelKey string, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Config holds resolver tuning knobs.
type Config struct {
	// DefaultTimezone is used when the caller supplies none. Invalid
	// caller timezones fall back to UTC rather than failing the call.
	DefaultTimezone string
}

func New(l pkgLog.Logger, generator ContentGenerator, cfg Config) Resolver {
	if cfg.DefaultTimezone == "" {
		cfg.DefaultTimezone = "UTC"
	}
	return &implResolver{
		l:         l,
		generator: generator,
		config:    cfg,
		now:       time.Now,
	}
}
