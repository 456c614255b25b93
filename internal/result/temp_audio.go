package result

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/ytget/voicegen/internal/model"
)

// TempFilePattern names downloaded audio in the temp directory
const TempFilePattern = "voicegen-*.wav"

// TempAudio owns at most one downloaded audio file. Replace deletes the
// previous file before creating the next one; Close deletes the live one.
type TempAudio struct {
	dir    string
	client *http.Client
	logger *slog.Logger

	mu   sync.Mutex
	path string
}

// NewTempAudio creates an empty holder. An empty dir means os.TempDir().
func NewTempAudio(dir string, client *http.Client, logger *slog.Logger) *TempAudio {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TempAudio{
		dir:    dir,
		client: client,
		logger: logger,
	}
}

// Path returns the live file, or "" when there is none
func (t *TempAudio) Path() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.path
}

// Replace downloads url into a fresh temp file and makes it the live one
func (t *TempAudio) Replace(ctx context.Context, url string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.removeLocked()

	path, err := t.download(ctx, url)
	if err != nil {
		return "", &model.DownloadError{URL: url, Err: err}
	}
	t.path = path
	t.logger.Info("audio downloaded", slog.String("url", url), slog.String("path", path))
	return path, nil
}

// Close deletes the live file. It is safe to call more than once.
func (t *TempAudio) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.removeLocked()
}

func (t *TempAudio) removeLocked() error {
	if t.path == "" {
		return nil
	}
	path := t.path
	t.path = ""
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		t.logger.Warn("failed to remove temp audio", slog.String("path", path), slog.Any("error", err))
		return err
	}
	t.logger.Debug("temp audio removed", slog.String("path", path))
	return nil
}

// download writes the body of url to a new temp file; partial files are removed
func (t *TempAudio) download(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	f, err := os.CreateTemp(t.dir, TempFilePattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}
	return f.Name(), nil
}
