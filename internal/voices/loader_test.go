package voices

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ytget/voicegen/internal/config"
	"github.com/ytget/voicegen/internal/model"
)

func TestVoiceName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"alice.wav", "alice"},
		{"alice.v2.wav", "alice"},
		{"bob", "bob"},
	}

	for _, test := range tests {
		result := voiceName(test.input)
		if result != test.expected {
			t.Errorf("voiceName(%s) = %s, expected %s", test.input, result, test.expected)
		}
	}
}

func TestDirLoader_Load(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"carol.wav", "alice.wav", "notes.txt", "bob.wav"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.wav"), 0o755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}

	loader := NewDirLoader(dir, ".wav", nil)
	catalog, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := []string{"alice", "bob", "carol"}
	if len(catalog) != len(expected) {
		t.Fatalf("Expected %d voices, got %d: %v", len(expected), len(catalog), catalog)
	}
	for i, voice := range expected {
		if catalog[i] != voice {
			t.Errorf("Voice %d: expected %s, got %s", i, voice, catalog[i])
		}
	}
}

func TestDirLoader_Unavailable(t *testing.T) {
	loader := NewDirLoader(filepath.Join(t.TempDir(), "missing"), ".wav", nil)

	catalog, err := loader.Load(context.Background())
	if !errors.Is(err, model.ErrCatalogUnavailable) {
		t.Errorf("Expected ErrCatalogUnavailable, got %v", err)
	}
	if len(catalog) != 0 {
		t.Errorf("Expected empty catalog, got %v", catalog)
	}
}

func TestDirLoader_Empty(t *testing.T) {
	loader := NewDirLoader(t.TempDir(), ".wav", nil)

	catalog, err := loader.Load(context.Background())
	if !errors.Is(err, model.ErrCatalogUnavailable) {
		t.Errorf("Expected ErrCatalogUnavailable for empty dir, got %v", err)
	}
	if len(catalog) != 0 {
		t.Errorf("Expected empty catalog, got %v", catalog)
	}
}

func TestHTTPLoader_Load(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != VoicesPath {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","voices":["female_01.wav","male_01.wav"]}`))
	}))
	defer server.Close()

	loader := NewHTTPLoader(server.URL+"/", nil, nil)
	catalog, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(catalog) != 2 || catalog[0] != "female_01.wav" || catalog[1] != "male_01.wav" {
		t.Errorf("Unexpected catalog %v", catalog)
	}
}

func TestHTTPLoader_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, "boom"},
		{"malformed json", http.StatusOK, "{not json"},
		{"missing field", http.StatusOK, `{"status":"success"}`},
		{"empty list", http.StatusOK, `{"voices":[]}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(test.status)
				w.Write([]byte(test.body))
			}))
			defer server.Close()

			catalog, err := NewHTTPLoader(server.URL, nil, nil).Load(context.Background())
			if !errors.Is(err, model.ErrCatalogUnavailable) {
				t.Errorf("Expected ErrCatalogUnavailable, got %v", err)
			}
			if len(catalog) != 0 {
				t.Errorf("Expected empty catalog, got %v", catalog)
			}
		})
	}
}

func TestHTTPLoader_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	catalog, err := NewHTTPLoader(url, nil, nil).Load(context.Background())
	if !errors.Is(err, model.ErrCatalogUnavailable) {
		t.Errorf("Expected ErrCatalogUnavailable, got %v", err)
	}
	if len(catalog) != 0 {
		t.Errorf("Expected empty catalog, got %v", catalog)
	}
}

func TestNewLoader(t *testing.T) {
	endpoints := config.DefaultEndpoints()

	loader, err := NewLoader(config.BackendXTTS, endpoints, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, ok := loader.(*DirLoader); !ok {
		t.Errorf("Expected *DirLoader for xtts, got %T", loader)
	}

	loader, err = NewLoader(config.BackendAllTalk, endpoints, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, ok := loader.(*HTTPLoader); !ok {
		t.Errorf("Expected *HTTPLoader for alltalk, got %T", loader)
	}

	if _, err := NewLoader(config.BackendKind("nope"), endpoints, nil); err == nil {
		t.Error("Expected error for unknown backend")
	}
}
