package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"github.com/lmittmann/tint"

	"github.com/ytget/voicegen/internal/config"
	"github.com/ytget/voicegen/internal/platform"
	"github.com/ytget/voicegen/internal/result"
	"github.com/ytget/voicegen/internal/session"
	"github.com/ytget/voicegen/internal/tts"
	"github.com/ytget/voicegen/internal/ui"
	"github.com/ytget/voicegen/internal/voices"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.voicegen"
	AppName = "Voice Generator"

	// EnvLogLevel selects debug logging when set to "debug"
	EnvLogLevel = "VOICEGEN_LOG_LEVEL"

	DownloadTimeout = 60 * time.Second
)

func main() {
	logger := newLogger()
	slog.SetDefault(logger)
	logger.Info("starting", slog.String("app", AppName), slog.String("version", version))

	myApp := app.NewWithID(AppID)
	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))

	settings := config.NewSettings(myApp)
	kind := settings.GetBackend()

	endpoints, err := config.LoadEndpoints(os.Getenv(config.EnvConfigPath))
	if err != nil {
		// Fall back to compiled-in endpoints so the window still opens
		logger.Error("failed to load endpoint profile", slog.Any("error", err))
		endpoints = config.DefaultEndpoints()
	}

	root := ui.NewRootUI(myWindow, settings, kind, logger)

	sess, err := newSession(kind, endpoints, myApp, root, logger)
	if err != nil {
		logger.Error("failed to create session", slog.Any("error", err))
		dialog.ShowError(err, myWindow)
		myWindow.ShowAndRun()
		return
	}
	root.Bind(sess)

	myWindow.ShowAndRun()

	// Window already closed through the intercept; Close is idempotent
	if err := sess.Close(); err != nil {
		logger.Warn("session close failed", slog.Any("error", err))
	}
	logger.Info("stopped")
}

// newSession wires the backend, catalog loader and result handler for kind
func newSession(kind config.BackendKind, endpoints config.Endpoints, a fyne.App, view session.View, logger *slog.Logger) (*session.Session, error) {
	backend, err := tts.New(kind, endpoints, logger.With(slog.String("component", "tts")))
	if err != nil {
		return nil, err
	}

	loader, err := voices.NewLoader(kind, endpoints, logger.With(slog.String("component", "voices")))
	if err != nil {
		return nil, err
	}

	downloadDir := endpoints.AllTalk.DownloadDir
	if downloadDir != "" {
		if err := platform.CreateDirectoryIfNotExists(downloadDir); err != nil {
			logger.Warn("download dir unavailable, using system temp", slog.String("dir", downloadDir), slog.Any("error", err))
			downloadDir = ""
		}
	}

	resultLogger := logger.With(slog.String("component", "result"))
	temp := result.NewTempAudio(downloadDir, &http.Client{Timeout: DownloadTimeout}, resultLogger)
	player := platform.NewFFplayPlayer(logger.With(slog.String("component", "player")))
	handler := result.NewHandler(result.FyneClipboard{Clipboard: a.Clipboard()}, player, temp, resultLogger)

	return session.New(session.Options{
		Backend:  backend,
		Loader:   loader,
		Handler:  handler,
		Temp:     temp,
		View:     view,
		Dispatch: fyne.Do,
		Logger:   logger.With(slog.String("component", "session")),
	}), nil
}

// newLogger builds a colored console logger
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv(EnvLogLevel) == "debug" {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}
