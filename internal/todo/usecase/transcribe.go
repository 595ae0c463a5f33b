package usecase

import (
	"context"
	"fmt"
	"strings"

	"vif/internal/todo"
)

// Transcribe converts recorded audio to text via the speech-to-text client.
// An empty transcription is a valid result: silence is not an error.
func (uc *implUseCase) Transcribe(ctx context.Context, input todo.TranscribeInput) (todo.TranscribeOutput, error) {
	if uc.speech == nil {
		return todo.TranscribeOutput{}, todo.ErrSpeechUnavailable
	}
	if input.Audio == nil {
		return todo.TranscribeOutput{}, todo.ErrEmptyAudio
	}
	if !supportedAudioType(input.MIMEType) {
		return todo.TranscribeOutput{}, fmt.Errorf("%w: %s", todo.ErrUnsupportedAudio, input.MIMEType)
	}

	resp, err := uc.speech.Transcribe(ctx, input.Audio, input.Filename, input.MIMEType)
	if err != nil {
		return todo.TranscribeOutput{}, fmt.Errorf("transcription failed: %w", err)
	}

	uc.l.Infof(ctx, "Transcribe: language=%s length=%d", resp.LanguageCode, len(resp.Text))
	return todo.TranscribeOutput{Text: strings.TrimSpace(resp.Text)}, nil
}

// supportedAudioType accepts browser recording formats. MediaRecorder emits
// webm under a video/ prefix on some platforms.
func supportedAudioType(mimeType string) bool {
	if mimeType == "" {
		return true // let the API decide
	}
	mimeType = strings.ToLower(mimeType)
	return strings.HasPrefix(mimeType, "audio/") || strings.HasPrefix(mimeType, "video/webm")
}
