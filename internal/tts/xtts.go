package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/ytget/voicegen/internal/config"
	"github.com/ytget/voicegen/internal/model"
)

// XTTS output settings
const (
	XTTSOutputExtension = ".wav"
	XTTSSuccessFormat   = "Audio file saved to %s"
)

// xttsRequest is the JSON body of POST /tts_to_file
type xttsRequest struct {
	Text           string `json:"text"`
	Speaker        string `json:"speaker"`
	SpeakerWav     string `json:"speaker_wav"`
	Language       string `json:"language"`
	FileNameOrPath string `json:"file_name_or_path"`
}

// XTTSBackend asks the server to write the file into its shared output directory.
type XTTSBackend struct {
	cfg    config.XTTSConfig
	client *http.Client
	logger *slog.Logger
	now    func() time.Time
}

// NewXTTSBackend creates the backend. A nil client gets cfg.Timeout(), which
// is zero (no deadline) unless configured.
func NewXTTSBackend(cfg config.XTTSConfig, client *http.Client, logger *slog.Logger) *XTTSBackend {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout()}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &XTTSBackend{cfg: cfg, client: client, logger: logger, now: time.Now}
}

// Kind returns config.BackendXTTS
func (b *XTTSBackend) Kind() config.BackendKind {
	return config.BackendXTTS
}

// Validate requires text, a speaker and an output name
func (b *XTTSBackend) Validate(req model.GenerationRequest) error {
	if err := validateCommon(req); err != nil {
		return err
	}
	return validateOutputName(req)
}

// Generate posts the request and reports the server-side file path
func (b *XTTSBackend) Generate(ctx context.Context, req model.GenerationRequest) model.GenerationOutcome {
	fileName := outputFileName(req.OutputName, req.Timestamp, b.now()) + XTTSOutputExtension

	body, err := json.Marshal(xttsRequest{
		Text:           req.Text,
		Speaker:        req.CharacterVoice,
		SpeakerWav:     req.CharacterVoice + ".wav",
		Language:       req.Language,
		FileNameOrPath: fileName,
	})
	if err != nil {
		return model.Failed(fmt.Errorf("marshal request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, b.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return model.Failed(&model.TransportError{Op: "create request", Err: err})
	}
	httpReq.Header.Set("Content-Type", "application/json")

	b.logger.Info("sending xtts request",
		slog.String("url", b.cfg.URL),
		slog.String("speaker", req.CharacterVoice),
		slog.String("file", fileName))

	resp, err := b.client.Do(httpReq)
	if err != nil {
		b.logger.Warn("xtts request failed", slog.String("error", err.Error()))
		return transportFailure(ctx, "POST "+b.cfg.URL, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportFailure(ctx, "read response", err)
	}

	if resp.StatusCode != http.StatusOK {
		b.logger.Warn("xtts request rejected", slog.Int("status", resp.StatusCode))
		return model.Failed(&model.RequestFailedError{Status: resp.StatusCode, Body: string(respBody)})
	}

	path := fileName
	if b.cfg.OutputDir != "" {
		path = filepath.Join(b.cfg.OutputDir, fileName)
	}
	return model.Succeeded(model.ReferenceLocalPath, path, fmt.Sprintf(XTTSSuccessFormat, fileName))
}
