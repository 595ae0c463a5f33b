package elevenlabs

import (
	"context"
	"io"
)

// IElevenLabs defines the interface for ElevenLabs speech-to-text.
// Implementations are safe for concurrent use.
type IElevenLabs interface {
	Transcribe(ctx context.Context, audio io.Reader, filename, mimeType string) (*TranscriptionResponse, error)
}
