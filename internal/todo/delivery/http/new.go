package http

import (
	"vif/internal/todo"
	pkgLog "vif/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc todo.UseCase
}

// New creates a new HTTP handler for the todo domain.
func New(l pkgLog.Logger, uc todo.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
