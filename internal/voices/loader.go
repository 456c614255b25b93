package voices

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/ytget/voicegen/internal/config"
	"github.com/ytget/voicegen/internal/model"
)

// VoicesPath is the AllTalk catalog endpoint
const VoicesPath = "/api/voices"

// DefaultCatalogTimeout bounds the catalog GET when the profile sets none
const DefaultCatalogTimeout = 30 * time.Second

// Loader fetches the voice catalog
type Loader interface {
	Load(ctx context.Context) (model.VoiceCatalog, error)
}

// NewLoader returns the loader matching the backend kind
func NewLoader(kind config.BackendKind, endpoints config.Endpoints, logger *slog.Logger) (Loader, error) {
	switch kind {
	case config.BackendXTTS:
		return NewDirLoader(endpoints.XTTS.SpeakersDir, endpoints.XTTS.SpeakerSuffix, logger), nil
	case config.BackendAllTalk:
		timeout := endpoints.AllTalk.Timeout()
		if timeout <= 0 {
			timeout = DefaultCatalogTimeout
		}
		return NewHTTPLoader(endpoints.AllTalk.BaseURL, &http.Client{Timeout: timeout}, logger), nil
	default:
		return nil, fmt.Errorf("unknown backend: %s", kind)
	}
}

// DirLoader lists speaker reference files in a directory
type DirLoader struct {
	dir    string
	suffix string
	logger *slog.Logger
}

// NewDirLoader creates a loader for dir keeping files that end with suffix
func NewDirLoader(dir, suffix string, logger *slog.Logger) *DirLoader {
	if logger == nil {
		logger = slog.Default()
	}
	if suffix == "" {
		suffix = ".wav"
	}
	return &DirLoader{dir: dir, suffix: suffix, logger: logger}
}

// Load reads the directory and returns voice names without their extension
func (l *DirLoader) Load(ctx context.Context) (model.VoiceCatalog, error) {
	if err := ctx.Err(); err != nil {
		return model.VoiceCatalog{}, fmt.Errorf("%w: %v", model.ErrCatalogUnavailable, err)
	}

	entries, err := os.ReadDir(l.dir)
	if err != nil {
		l.logger.Warn("speakers directory unreadable", slog.String("dir", l.dir), slog.String("error", err.Error()))
		return model.VoiceCatalog{}, fmt.Errorf("%w: Failed to load speakers: %v", model.ErrCatalogUnavailable, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, l.suffix) {
			continue
		}
		names = append(names, voiceName(name))
	}
	sort.Strings(names)

	if len(names) == 0 {
		return model.VoiceCatalog{}, fmt.Errorf("%w: no %s files in %s", model.ErrCatalogUnavailable, l.suffix, l.dir)
	}

	l.logger.Info("voices loaded", slog.String("dir", l.dir), slog.Int("count", len(names)))
	return model.VoiceCatalog(names), nil
}

// voiceName strips everything from the first dot: "alice.v2.wav" -> "alice"
func voiceName(fileName string) string {
	if idx := strings.Index(fileName, "."); idx >= 0 {
		return fileName[:idx]
	}
	return fileName
}

// HTTPLoader queries GET /api/voices
type HTTPLoader struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

type voicesResponse struct {
	Voices []string `json:"voices"`
}

// NewHTTPLoader creates a loader for the service at baseURL
func NewHTTPLoader(baseURL string, client *http.Client, logger *slog.Logger) *HTTPLoader {
	if client == nil {
		client = &http.Client{Timeout: DefaultCatalogTimeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPLoader{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  logger,
	}
}

// Load fetches and decodes the catalog
func (l *HTTPLoader) Load(ctx context.Context) (model.VoiceCatalog, error) {
	endpoint := l.baseURL + VoicesPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.VoiceCatalog{}, fmt.Errorf("%w: create request: %v", model.ErrCatalogUnavailable, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		l.logger.Warn("voice catalog request failed", slog.String("url", endpoint), slog.String("error", err.Error()))
		return model.VoiceCatalog{}, fmt.Errorf("%w: %v", model.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return model.VoiceCatalog{}, fmt.Errorf("%w: HTTP %d: %s", model.ErrCatalogUnavailable, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload voicesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return model.VoiceCatalog{}, fmt.Errorf("%w: decode response: %v", model.ErrCatalogUnavailable, err)
	}
	if payload.Voices == nil {
		return model.VoiceCatalog{}, fmt.Errorf("%w: response has no voices field", model.ErrCatalogUnavailable)
	}
	if len(payload.Voices) == 0 {
		return model.VoiceCatalog{}, fmt.Errorf("%w: server reported no voices", model.ErrCatalogUnavailable)
	}

	l.logger.Info("voices loaded", slog.String("url", endpoint), slog.Int("count", len(payload.Voices)))
	return model.VoiceCatalog(payload.Voices), nil
}
