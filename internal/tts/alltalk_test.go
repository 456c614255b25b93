package tts

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ytget/voicegen/internal/config"
	"github.com/ytget/voicegen/internal/model"
)

func newTestAllTalk(baseURL string) *AllTalkBackend {
	return NewAllTalkBackend(config.AllTalkConfig{BaseURL: baseURL}, nil, nil)
}

func TestAllTalkBackend_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != AllTalkGeneratePath {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("Failed to parse form: %v", err)
		}
		if r.PostForm.Get("text_input") != "hello" {
			t.Errorf("Unexpected text_input %q", r.PostForm.Get("text_input"))
		}
		if r.PostForm.Get("character_voice_gen") != "alice" {
			t.Errorf("Unexpected voice %q", r.PostForm.Get("character_voice_gen"))
		}
		if r.PostForm.Get("language") != "en" {
			t.Errorf("Unexpected language %q", r.PostForm.Get("language"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"generate-success","output_file_url":"http://x/a.wav"}`))
	}))
	defer server.Close()

	req := model.NewGenerationRequest(model.GenerationRequest{
		Text:           "hello",
		CharacterVoice: "alice",
		Language:       "en",
		OutputName:     "out",
	})
	outcome := newTestAllTalk(server.URL).Generate(context.Background(), req)

	if !outcome.Success {
		t.Fatalf("Expected success, got %+v", outcome)
	}
	if outcome.Kind != model.ReferenceURL {
		t.Errorf("Expected URL reference, got %s", outcome.Kind)
	}
	if outcome.Reference != "http://x/a.wav" {
		t.Errorf("Expected reference http://x/a.wav, got %s", outcome.Reference)
	}
}

func TestAllTalkBackend_FormFields(t *testing.T) {
	received := make(chan map[string]string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		fields := map[string]string{}
		for key := range r.PostForm {
			fields[key] = r.PostForm.Get(key)
		}
		received <- fields
		w.Write([]byte(`{"status":"generate-success","output_file_url":"/audio/out.wav"}`))
	}))
	defer server.Close()

	req := model.NewGenerationRequest(model.GenerationRequest{
		Text:            `"Hi," she said.`,
		CharacterVoice:  "female_01.wav",
		NarratorEnabled: true,
		NarratorVoice:   "male_01.wav",
		TextNotInside:   model.TextNotInsideNarrator,
		TextFiltering:   model.TextFilteringHTML,
		Language:        "fr",
		OutputName:      "scene",
		Timestamp:       true,
		Autoplay:        true,
		Volume:          0.5,
	})
	outcome := newTestAllTalk(server.URL + "/").Generate(context.Background(), req)

	fields := <-received
	expected := map[string]string{
		"text_input":            `"Hi," she said.`,
		"text_filtering":        "html",
		"character_voice_gen":   "female_01.wav",
		"narrator_enabled":      "true",
		"narrator_voice_gen":    "male_01.wav",
		"text_not_inside":       "narrator",
		"language":              "fr",
		"output_file_name":      "scene",
		"output_file_timestamp": "true",
		"autoplay":              "true",
		"autoplay_volume":       "0.5",
	}
	if len(fields) != len(expected) {
		t.Errorf("Expected %d fields, got %d: %v", len(expected), len(fields), fields)
	}
	for key, value := range expected {
		if fields[key] != value {
			t.Errorf("Field %s: expected %q, got %q", key, value, fields[key])
		}
	}

	// Relative URLs are resolved against the server
	if !outcome.Success || outcome.Reference != server.URL+"/audio/out.wav" {
		t.Errorf("Expected resolved reference, got %+v", outcome)
	}
}

func TestAllTalkBackend_Failures(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		malformed bool
	}{
		{"server error", http.StatusInternalServerError, "Internal Server Error", false},
		{"bad request", http.StatusBadRequest, `{"detail":"bad voice"}`, false},
		{"wrong status field", http.StatusOK, `{"status":"generate-failure"}`, true},
		{"not json", http.StatusOK, `<html>`, true},
		{"missing url", http.StatusOK, `{"status":"generate-success"}`, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(test.status)
				w.Write([]byte(test.body))
			}))
			defer server.Close()

			outcome := newTestAllTalk(server.URL).Generate(context.Background(), model.NewGenerationRequest(model.GenerationRequest{
				Text: "hello", CharacterVoice: "alice", OutputName: "out",
			}))

			if outcome.Success {
				t.Fatalf("Expected failure, got %+v", outcome)
			}
			if test.malformed {
				if !errors.Is(outcome.Err, model.ErrMalformedResponse) {
					t.Errorf("Expected ErrMalformedResponse, got %v", outcome.Err)
				}
				return
			}
			var reqErr *model.RequestFailedError
			if !errors.As(outcome.Err, &reqErr) || reqErr.Status != test.status {
				t.Errorf("Expected RequestFailedError %d, got %v", test.status, outcome.Err)
			}
			if reqErr != nil && reqErr.Body != test.body {
				t.Errorf("Expected body %q, got %q", test.body, reqErr.Body)
			}
		})
	}
}

func TestAllTalkBackend_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	backend := NewAllTalkBackend(config.AllTalkConfig{BaseURL: server.URL}, &http.Client{Timeout: 50 * time.Millisecond}, nil)
	outcome := backend.Generate(context.Background(), model.NewGenerationRequest(model.GenerationRequest{
		Text: "hello", CharacterVoice: "alice", OutputName: "out",
	}))

	var transportErr *model.TransportError
	if outcome.Success || !errors.As(outcome.Err, &transportErr) {
		t.Errorf("Expected TransportError on timeout, got %+v", outcome)
	}
}

func TestAllTalkBackend_Cancelled(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	outcome := newTestAllTalk(server.URL).Generate(ctx, model.NewGenerationRequest(model.GenerationRequest{
		Text: "hello", CharacterVoice: "alice", OutputName: "out",
	}))

	if outcome.Success || !errors.Is(outcome.Err, model.ErrCancelled) {
		t.Errorf("Expected ErrCancelled, got %+v", outcome)
	}
}

func TestAllTalkBackend_Validate(t *testing.T) {
	backend := newTestAllTalk("http://localhost:7851")

	valid := model.GenerationRequest{Text: "hi", CharacterVoice: "a", OutputName: "out"}
	if err := backend.Validate(valid); err != nil {
		t.Errorf("Expected valid request, got %v", err)
	}

	narrated := valid
	narrated.NarratorEnabled = true
	if err := backend.Validate(narrated); !errors.Is(err, model.ErrValidation) {
		t.Errorf("Expected ErrValidation without narrator voice, got %v", err)
	}

	narrated.NarratorVoice = "b"
	if err := backend.Validate(narrated); err != nil {
		t.Errorf("Expected valid narrated request, got %v", err)
	}
}
