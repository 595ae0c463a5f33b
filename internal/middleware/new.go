package middleware

import (
	"time"

	"vif/config"
	"vif/pkg/log"
)

type Middleware struct {
	l       log.Logger
	config  config.RateLimitConfig
	clients *clientLimiters
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		config:  cfg,
		clients: newClientLimiters(cfg, 10*time.Minute),
	}
}
