package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"vif/internal/todo"
	"vif/pkg/elevenlabs"
)

func TestTranscribe(t *testing.T) {
	speech := &mockSpeech{resp: &elevenlabs.TranscriptionResponse{
		LanguageCode: "en",
		Text:         "  buy milk tomorrow \n",
	}}
	st, _ := newTestStore(seedSnapshot())
	uc := New(&mockLogger{}, &mockResolver{}, st, speech, nil, "UTC")

	out, err := uc.Transcribe(context.Background(), todo.TranscribeInput{
		Audio:    strings.NewReader("fake-audio"),
		MIMEType: "audio/webm",
		Filename: "note.webm",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Text != "buy milk tomorrow" {
		t.Errorf("expected trimmed transcription, got %q", out.Text)
	}
}

func TestTranscribeUnavailable(t *testing.T) {
	st, _ := newTestStore(seedSnapshot())
	uc := New(&mockLogger{}, &mockResolver{}, st, nil, nil, "UTC")

	_, err := uc.Transcribe(context.Background(), todo.TranscribeInput{Audio: strings.NewReader("x")})
	if !errors.Is(err, todo.ErrSpeechUnavailable) {
		t.Fatalf("expected ErrSpeechUnavailable, got %v", err)
	}
}

func TestTranscribeNilAudio(t *testing.T) {
	st, _ := newTestStore(seedSnapshot())
	uc := New(&mockLogger{}, &mockResolver{}, st, &mockSpeech{}, nil, "UTC")

	if _, err := uc.Transcribe(context.Background(), todo.TranscribeInput{}); !errors.Is(err, todo.ErrEmptyAudio) {
		t.Fatalf("expected ErrEmptyAudio, got %v", err)
	}
}

func TestTranscribeUnsupportedType(t *testing.T) {
	st, _ := newTestStore(seedSnapshot())
	uc := New(&mockLogger{}, &mockResolver{}, st, &mockSpeech{}, nil, "UTC")

	_, err := uc.Transcribe(context.Background(), todo.TranscribeInput{
		Audio:    strings.NewReader("x"),
		MIMEType: "application/pdf",
	})
	if !errors.Is(err, todo.ErrUnsupportedAudio) {
		t.Fatalf("expected ErrUnsupportedAudio, got %v", err)
	}
}

func TestTranscribeUpstreamError(t *testing.T) {
	speech := &mockSpeech{err: errors.New("api down")}
	st, _ := newTestStore(seedSnapshot())
	uc := New(&mockLogger{}, &mockResolver{}, st, speech, nil, "UTC")

	_, err := uc.Transcribe(context.Background(), todo.TranscribeInput{
		Audio:    strings.NewReader("x"),
		MIMEType: "audio/webm",
	})
	if err == nil {
		t.Fatalf("expected error")
	}
}
