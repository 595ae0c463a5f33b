package todo

import "errors"

// Domain-specific errors for the todo package.
var (
	ErrEmptyInput        = errors.New("input text is empty")
	ErrTodoNotFound      = errors.New("todo not found")
	ErrInvalidClearScope = errors.New("invalid clear scope")
	ErrEmptyAudio        = errors.New("audio payload is empty")
	ErrUnsupportedAudio  = errors.New("unsupported audio format")
	ErrSpeechUnavailable = errors.New("speech-to-text is not configured")
)
