package llmprovider

import (
	"context"
	"fmt"
	"time"

	"vif/pkg/log"
)

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider // priority order
	byKey     map[string]Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // global timeout for the entire fallback chain
}

// NewManager creates a new Provider Manager with the given providers, config, and logger.
// Providers are expected in priority order; each is also registered under its model key.
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	byKey := make(map[string]Provider, len(providers))
	for _, p := range providers {
		byKey[p.Key()] = p
	}

	return &Manager{
		providers: providers,
		byKey:     byKey,
		config:    config,
		logger:    logger,
	}
}

// GenerateContent iterates through providers in priority order with fallback logic
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	return m.generate(ctx, m.providers, req)
}

// GenerateContentWithModel routes the request to the provider registered under
// the given opaque model key, then falls back through the remaining providers
// in priority order when fallback is enabled. An empty key means default
// priority order. An unknown key is an error: silently substituting a
// different model would hide caller misconfiguration.
func (m *Manager) GenerateContentWithModel(ctx context.Context, modelKey string, req *Request) (*Response, error) {
	if modelKey == "" {
		return m.GenerateContent(ctx, req)
	}

	selected, ok := m.byKey[modelKey]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModelKey, modelKey)
	}

	chain := make([]Provider, 0, len(m.providers))
	chain = append(chain, selected)
	for _, p := range m.providers {
		if p != selected {
			chain = append(chain, p)
		}
	}

	return m.generate(ctx, chain, req)
}

func (m *Manager) generate(ctx context.Context, chain []Provider, req *Request) (*Response, error) {
	if len(chain) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	// Create context with global timeout for entire fallback chain
	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error

	for _, provider := range chain {
		// Check if context is already cancelled (timeout exceeded)
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("global timeout exceeded after trying %d provider(s): %w",
				len(chain), ctx.Err())
		default:
		}

		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = err

		// If fallback is disabled, stop after first provider
		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry implements retry mechanism with linear backoff
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := provider.GenerateContent(ctx, req)
		if err == nil {
			return resp, nil
		}

		lastErr = err
	}

	return nil, lastErr
}

// logSuccess logs successful LLM generation with metrics
func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	m.logger.Info(ctx, "LLM generation successful",
		"provider", provider.Name(),
		"model", provider.Model(),
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens,
	)
}

// logFailure logs failed LLM generation attempts
func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warn(ctx, "LLM generation failed",
		"provider", provider.Name(),
		"model", provider.Model(),
		"error", err.Error(),
	)
}
