package result

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"

	"github.com/ytget/voicegen/internal/model"
	"github.com/ytget/voicegen/internal/platform"
)

// Report titles and notes
const (
	TitleSuccess = "Success"
	TitleError   = "Error"

	NoteClipboardCopied = "Audio file copied to clipboard."
	NoteClipboardFailed = "Failed to copy audio file to clipboard."
	NoteURLCopied       = "Audio URL copied to clipboard."
	NoteDownloadFailed  = "Download failed, playback disabled: %v"
	NoteDuration        = "Duration: %s"
	NotePlaybackFailed  = "Playback failed: %v"
)

// Clipboard receives text references
type Clipboard interface {
	SetContent(content string) error
}

// FyneClipboard adapts the application clipboard. The update is queued on
// the UI goroutine; the handler runs on the job goroutine.
type FyneClipboard struct {
	Clipboard fyne.Clipboard
}

// SetContent implements Clipboard
func (c FyneClipboard) SetContent(content string) error {
	if c.Clipboard == nil {
		return errors.New("clipboard is not available")
	}
	fyne.Do(func() {
		c.Clipboard.SetContent(content)
	})
	return nil
}

// Report is what the user is told about a finished job
type Report struct {
	Title        string
	Message      string
	Notes        []string
	IsError      bool
	PlayablePath string
	Err          error
}

// Text joins the message and notes for display
func (r Report) Text() string {
	if len(r.Notes) == 0 {
		return r.Message
	}
	return r.Message + "\n" + strings.Join(r.Notes, "\n")
}

// Handler applies a GenerationOutcome: clipboard, download, autoplay
type Handler struct {
	clipboard Clipboard
	player    platform.Player
	temp      *TempAudio
	logger    *slog.Logger
	inspect   func(path string) (platform.AudioInfo, error)
}

// NewHandler creates a handler. temp holds downloaded audio and is owned by the caller.
func NewHandler(clipboard Clipboard, player platform.Player, temp *TempAudio, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		clipboard: clipboard,
		player:    player,
		temp:      temp,
		logger:    logger,
		inspect:   platform.InspectWAV,
	}
}

// Handle processes outcome and returns the report to show. It performs
// network and file I/O and must not run on the UI goroutine.
func (h *Handler) Handle(ctx context.Context, outcome model.GenerationOutcome, autoplay bool, volume float64) Report {
	if !outcome.Success {
		h.logger.Warn("generation failed", slog.String("message", outcome.Message))
		return Report{
			Title:   TitleError,
			Message: outcome.Message,
			IsError: true,
			Err:     outcome.Err,
		}
	}

	report := Report{
		Title:   TitleSuccess,
		Message: outcome.Message,
	}

	switch outcome.Kind {
	case model.ReferenceLocalPath:
		h.handleLocalPath(outcome.Reference, &report)
	case model.ReferenceURL:
		h.handleURL(ctx, outcome.Reference, &report)
	default:
		h.logger.Warn("unknown reference kind", slog.String("kind", outcome.Kind.String()))
	}

	if report.PlayablePath == "" {
		return report
	}

	if info, err := h.inspect(report.PlayablePath); err == nil {
		report.Notes = append(report.Notes, fmt.Sprintf(NoteDuration, platform.FormatDuration(info.Duration)))
	} else if !errors.Is(err, platform.ErrNotWAV) {
		h.logger.Debug("wav inspection failed", slog.String("path", report.PlayablePath), slog.Any("error", err))
	}

	if autoplay {
		if err := h.Play(report.PlayablePath, volume); err != nil {
			report.Notes = append(report.Notes, fmt.Sprintf(NotePlaybackFailed, err))
		}
	}
	return report
}

// Play starts playback of path at volume
func (h *Handler) Play(path string, volume float64) error {
	if h.player == nil {
		return errors.New("no audio player configured")
	}
	return h.player.Play(path, model.ClampVolume(volume))
}

// handleLocalPath copies a file URI of path; the file is playable only if it is reachable
func (h *Handler) handleLocalPath(path string, report *Report) {
	uri := storage.NewFileURI(path).String()
	if err := h.copy(uri); err != nil {
		report.Notes = append(report.Notes, NoteClipboardFailed)
		report.Err = err
	} else {
		report.Notes = append(report.Notes, NoteClipboardCopied)
	}

	if platform.FileExists(path) {
		report.PlayablePath = path
	} else {
		h.logger.Info("result file not reachable locally", slog.String("path", path))
	}
}

// handleURL copies url once, then replaces the temp audio with its contents
func (h *Handler) handleURL(ctx context.Context, url string, report *Report) {
	if err := h.copy(url); err != nil {
		report.Notes = append(report.Notes, NoteClipboardFailed)
		report.Err = err
	} else {
		report.Notes = append(report.Notes, NoteURLCopied)
	}

	if h.temp == nil {
		return
	}

	path, err := h.temp.Replace(ctx, url)
	if err != nil {
		h.logger.Warn("audio download failed", slog.String("url", url), slog.Any("error", err))
		report.Notes = append(report.Notes, fmt.Sprintf(NoteDownloadFailed, err))
		if report.Err == nil {
			report.Err = err
		}
		return
	}
	report.PlayablePath = path
}

func (h *Handler) copy(content string) error {
	if h.clipboard == nil {
		return &model.ClipboardError{Err: errors.New("clipboard is not available")}
	}
	if err := h.clipboard.SetContent(content); err != nil {
		h.logger.Warn("clipboard update failed", slog.Any("error", err))
		return &model.ClipboardError{Err: err}
	}
	return nil
}
