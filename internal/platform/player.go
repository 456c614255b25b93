package platform

import (
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"

	"github.com/ytget/voicegen/internal/model"
)

// ffplay settings
const (
	FFplayCommand     = "ffplay"
	FFplayLogLevel    = "error"
	FFplayMaxVolume   = 100
	playerFallbackMsg = "ffplay not found, opening with default app (volume ignored)"
)

// Player plays a local audio file at volume in [0, 1] without waiting for it to end.
type Player interface {
	Play(path string, volume float64) error
}

// FFplayPlayer starts ffplay without a window and falls back to the
// desktop's default application when ffplay is not installed.
type FFplayPlayer struct {
	command  string
	lookPath func(string) (string, error)
	start    func(cmd *exec.Cmd) error
	fallback func(path string) error
	logger   *slog.Logger
}

// NewFFplayPlayer creates a player using ffplay from PATH
func NewFFplayPlayer(logger *slog.Logger) *FFplayPlayer {
	if logger == nil {
		logger = slog.Default()
	}
	return &FFplayPlayer{
		command:  FFplayCommand,
		lookPath: exec.LookPath,
		start:    startDetached,
		fallback: OpenFileWithDefaultApp,
		logger:   logger,
	}
}

// Play starts playback and returns immediately
func (p *FFplayPlayer) Play(path string, volume float64) error {
	if !FileExists(path) {
		return fmt.Errorf("audio file does not exist: %s", path)
	}

	bin, err := p.lookPath(p.command)
	if err != nil {
		p.logger.Warn(playerFallbackMsg, slog.String("path", path))
		return p.fallback(path)
	}

	cmd := exec.Command(bin, buildFFplayArgs(path, volume)...)
	if err := p.start(cmd); err != nil {
		return fmt.Errorf("failed to start %s: %w", p.command, err)
	}
	p.logger.Info("playback started", slog.String("path", path), slog.Float64("volume", volume))
	return nil
}

// buildFFplayArgs maps volume [0, 1] onto ffplay's 0-100 scale
func buildFFplayArgs(path string, volume float64) []string {
	level := int(model.ClampVolume(volume)*FFplayMaxVolume + 0.5)
	return []string{
		"-nodisp",
		"-autoexit",
		"-loglevel", FFplayLogLevel,
		"-volume", strconv.Itoa(level),
		path,
	}
}

// startDetached starts cmd and reaps it in the background
func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait()
	return nil
}
