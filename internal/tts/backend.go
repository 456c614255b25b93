package tts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ytget/voicegen/internal/config"
	"github.com/ytget/voicegen/internal/model"
)

// TimestampLayout is appended to output names when the timestamp flag is set
const TimestampLayout = "20060102-150405"

// Backend is a text-to-speech service variant.
type Backend interface {
	// Kind reports which service variant this is
	Kind() config.BackendKind

	// Validate checks the request fields the service requires
	Validate(req model.GenerationRequest) error

	// Generate performs one request and never returns a nil-outcome:
	// failures are folded into a Failed outcome.
	Generate(ctx context.Context, req model.GenerationRequest) model.GenerationOutcome
}

// New returns the backend for kind
func New(kind config.BackendKind, endpoints config.Endpoints, logger *slog.Logger) (Backend, error) {
	switch kind {
	case config.BackendXTTS:
		return NewXTTSBackend(endpoints.XTTS, nil, logger), nil
	case config.BackendAllTalk:
		return NewAllTalkBackend(endpoints.AllTalk, nil, logger), nil
	default:
		return nil, fmt.Errorf("unknown backend: %s", kind)
	}
}

// validateCommon checks fields every backend needs
func validateCommon(req model.GenerationRequest) error {
	if strings.TrimSpace(req.Text) == "" {
		return fmt.Errorf("%w: text is required", model.ErrValidation)
	}
	if req.CharacterVoice == "" {
		return fmt.Errorf("%w: a voice must be selected", model.ErrValidation)
	}
	return nil
}

// validateOutputName checks the file name both services write to
func validateOutputName(req model.GenerationRequest) error {
	if strings.TrimSpace(req.OutputName) == "" {
		return fmt.Errorf("%w: output file name is required", model.ErrValidation)
	}
	return nil
}

// transportFailure converts a client error into the matching outcome
func transportFailure(ctx context.Context, op string, err error) model.GenerationOutcome {
	if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
		return model.Failed(model.ErrCancelled)
	}
	return model.Failed(&model.TransportError{Op: op, Err: err})
}

// outputFileName returns name, optionally suffixed with a timestamp
func outputFileName(name string, timestamp bool, now time.Time) string {
	if timestamp {
		return name + "_" + now.Format(TimestampLayout)
	}
	return name
}
