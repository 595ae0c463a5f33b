package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"vif/internal/todo"
	"vif/pkg/response"
)

// respond translates domain/use-case errors into HTTP responses. Unknown
// errors become an opaque 500 so internals never leak to clients.
func (h *handler) respond(c *gin.Context, err error) {
	switch {
	case errors.Is(err, todo.ErrEmptyInput),
		errors.Is(err, todo.ErrInvalidClearScope),
		errors.Is(err, todo.ErrEmptyAudio),
		errors.Is(err, todo.ErrUnsupportedAudio):
		response.Error(c, err, nil)
	case errors.Is(err, todo.ErrTodoNotFound):
		response.NotFound(c, err)
	default:
		response.InternalError(c, err)
	}
}
