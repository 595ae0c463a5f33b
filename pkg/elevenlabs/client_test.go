package elevenlabs_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vif/pkg/elevenlabs"
)

func TestTranscribe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/speech-to-text" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("xi-api-key") != "test-key" {
			t.Errorf("missing xi-api-key header")
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("not a multipart request: %v", err)
		}
		if got := r.FormValue("model_id"); got != "scribe_v1" {
			t.Errorf("expected model_id scribe_v1, got %q", got)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("missing file part: %v", err)
		}
		defer file.Close()
		if header.Filename != "note.webm" {
			t.Errorf("unexpected filename %q", header.Filename)
		}
		if ct := header.Header.Get("Content-Type"); ct != "audio/webm" {
			t.Errorf("unexpected part content type %q", ct)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"language_code": "en", "language_probability": 0.98, "text": "buy milk tomorrow"}`))
	}))
	defer server.Close()

	client, err := elevenlabs.New("test-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	client = client.WithBaseURL(server.URL)

	resp, err := client.Transcribe(context.Background(), strings.NewReader("fake-audio-bytes"), "note.webm", "audio/webm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "buy milk tomorrow" {
		t.Errorf("unexpected text %q", resp.Text)
	}
}

func TestTranscribeAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail": {"status": "invalid_content", "message": "corrupted audio"}}`))
	}))
	defer server.Close()

	client, _ := elevenlabs.New("test-key")
	client = client.WithBaseURL(server.URL)

	_, err := client.Transcribe(context.Background(), strings.NewReader("bad"), "note.webm", "audio/webm")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "corrupted audio") {
		t.Errorf("error should carry API detail, got %v", err)
	}
}

func TestTranscribeNilAudio(t *testing.T) {
	client, _ := elevenlabs.New("test-key")

	if _, err := client.Transcribe(context.Background(), nil, "", ""); err == nil {
		t.Fatalf("expected error for nil audio")
	}
}

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := elevenlabs.New(""); err == nil {
		t.Fatalf("expected error for empty API key")
	}
}
