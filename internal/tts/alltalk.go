package tts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ytget/voicegen/internal/config"
	"github.com/ytget/voicegen/internal/model"
)

// AllTalk API constants
const (
	AllTalkGeneratePath    = "/api/tts-generate"
	AllTalkSuccessStatus   = "generate-success"
	AllTalkDefaultTimeout  = 30 * time.Second
	AllTalkSuccessFormat   = "Audio generated: %s"
	allTalkFormContentType = "application/x-www-form-urlencoded"
)

// allTalkResponse is the JSON body returned by /api/tts-generate
type allTalkResponse struct {
	Status        string `json:"status"`
	OutputFileURL string `json:"output_file_url"`
}

// AllTalkBackend posts a form request and returns the URL of the result.
type AllTalkBackend struct {
	cfg    config.AllTalkConfig
	client *http.Client
	logger *slog.Logger
}

// NewAllTalkBackend creates the backend; a nil client gets the configured
// timeout, 30s by default.
func NewAllTalkBackend(cfg config.AllTalkConfig, client *http.Client, logger *slog.Logger) *AllTalkBackend {
	if client == nil {
		timeout := cfg.Timeout()
		if timeout <= 0 {
			timeout = AllTalkDefaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &AllTalkBackend{cfg: cfg, client: client, logger: logger}
}

// Kind returns config.BackendAllTalk
func (b *AllTalkBackend) Kind() config.BackendKind {
	return config.BackendAllTalk
}

// Validate requires text, a character voice, an output name and a narrator
// voice when narration is on
func (b *AllTalkBackend) Validate(req model.GenerationRequest) error {
	if err := validateCommon(req); err != nil {
		return err
	}
	if err := validateOutputName(req); err != nil {
		return err
	}
	if req.NarratorEnabled && req.NarratorVoice == "" {
		return fmt.Errorf("%w: a narrator voice must be selected", model.ErrValidation)
	}
	return nil
}

// formValues builds the form-encoded body
func formValues(req model.GenerationRequest) url.Values {
	values := url.Values{}
	values.Set("text_input", req.Text)
	values.Set("text_filtering", string(req.TextFiltering))
	values.Set("character_voice_gen", req.CharacterVoice)
	values.Set("narrator_enabled", strconv.FormatBool(req.NarratorEnabled))
	values.Set("narrator_voice_gen", req.NarratorVoice)
	values.Set("text_not_inside", string(req.TextNotInside))
	values.Set("language", req.Language)
	values.Set("output_file_name", req.OutputName)
	values.Set("output_file_timestamp", strconv.FormatBool(req.Timestamp))
	values.Set("autoplay", strconv.FormatBool(req.Autoplay))
	values.Set("autoplay_volume", strconv.FormatFloat(req.Volume, 'f', -1, 64))
	return values
}

// Generate posts the request and extracts output_file_url
func (b *AllTalkBackend) Generate(ctx context.Context, req model.GenerationRequest) model.GenerationOutcome {
	endpoint := b.cfg.BaseURL + AllTalkGeneratePath

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(formValues(req).Encode()))
	if err != nil {
		return model.Failed(&model.TransportError{Op: "create request", Err: err})
	}
	httpReq.Header.Set("Content-Type", allTalkFormContentType)

	b.logger.Info("sending alltalk request",
		slog.String("url", endpoint),
		slog.String("voice", req.CharacterVoice),
		slog.Bool("narrator", req.NarratorEnabled))

	resp, err := b.client.Do(httpReq)
	if err != nil {
		b.logger.Warn("alltalk request failed", slog.String("error", err.Error()))
		return transportFailure(ctx, "POST "+endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportFailure(ctx, "read response", err)
	}

	if resp.StatusCode != http.StatusOK {
		b.logger.Warn("alltalk request rejected", slog.Int("status", resp.StatusCode))
		return model.Failed(&model.RequestFailedError{Status: resp.StatusCode, Body: string(respBody)})
	}

	var payload allTalkResponse
	if err := json.Unmarshal(respBody, &payload); err != nil {
		return model.Failed(fmt.Errorf("%w: %v", model.ErrMalformedResponse, err))
	}
	if payload.Status != AllTalkSuccessStatus {
		return model.Failed(fmt.Errorf("%w: status %q", model.ErrMalformedResponse, payload.Status))
	}
	if payload.OutputFileURL == "" {
		return model.Failed(fmt.Errorf("%w: missing output_file_url", model.ErrMalformedResponse))
	}

	resultURL, err := b.resolve(payload.OutputFileURL)
	if err != nil {
		return model.Failed(fmt.Errorf("%w: %v", model.ErrMalformedResponse, err))
	}
	return model.Succeeded(model.ReferenceURL, resultURL, fmt.Sprintf(AllTalkSuccessFormat, resultURL))
}

// resolve makes a server-relative output URL absolute
func (b *AllTalkBackend) resolve(ref string) (string, error) {
	parsed, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	if parsed.IsAbs() {
		return parsed.String(), nil
	}
	base, err := url.Parse(b.cfg.BaseURL + "/")
	if err != nil {
		return "", err
	}
	return base.ResolveReference(parsed).String(), nil
}
