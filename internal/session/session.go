package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ytget/voicegen/internal/job"
	"github.com/ytget/voicegen/internal/model"
	"github.com/ytget/voicegen/internal/platform"
	"github.com/ytget/voicegen/internal/result"
	"github.com/ytget/voicegen/internal/tts"
	"github.com/ytget/voicegen/internal/voices"
)

// Session errors
var (
	ErrClosed        = errors.New("session is closed")
	ErrNothingToPlay = errors.New("no audio file to play")
)

// State of the form
type State int

const (
	StateIdle State = iota
	StateGenerating
)

// String returns string representation of state
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateGenerating:
		return "Generating"
	default:
		return "Unknown"
	}
}

// View is the part of the window the session drives. All calls are made on
// the UI goroutine (directly or through the dispatcher).
type View interface {
	SetGenerating(generating bool)
	SetPlayEnabled(enabled bool)
	SetVoices(catalog model.VoiceCatalog)
	SetJobStatus(j model.GenerationJob)
	ShowReport(report result.Report)
	ShowError(err error)
}

// Dispatcher runs fn on the UI goroutine. fyne.Do satisfies it.
type Dispatcher func(fn func())

// Options holds the collaborators of a session
type Options struct {
	Backend  tts.Backend
	Loader   voices.Loader
	Handler  *result.Handler
	Temp     *result.TempAudio
	View     View
	Dispatch Dispatcher
	Logger   *slog.Logger
}

// Session is the controller of one window
type Session struct {
	backend  tts.Backend
	runner   job.Generator
	loader   voices.Loader
	handler  *result.Handler
	temp     *result.TempAudio
	view     View
	dispatch Dispatcher
	logger   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	bg     sync.WaitGroup

	mu       sync.Mutex
	state    State
	playable string
	closed   bool
}

// New creates an idle session
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	dispatch := opts.Dispatch
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		backend:  opts.Backend,
		runner:   job.NewRunner(opts.Backend, logger),
		loader:   opts.Loader,
		handler:  opts.Handler,
		temp:     opts.Temp,
		view:     opts.View,
		dispatch: dispatch,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}
	s.runner.SetUpdateCallback(s.onJobUpdate)
	return s
}

// State returns the current state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// PlayablePath returns the file Play would use, or ""
func (s *Session) PlayablePath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playable
}

// Generate validates req and starts a job. While a job is in flight it
// returns job.ErrBusy and does nothing else.
func (s *Session) Generate(req model.GenerationRequest) error {
	req = model.NewGenerationRequest(req)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.state == StateGenerating {
		s.mu.Unlock()
		return job.ErrBusy
	}
	if err := s.backend.Validate(req); err != nil {
		s.mu.Unlock()
		s.view.ShowError(err)
		return err
	}
	s.state = StateGenerating
	s.mu.Unlock()

	s.view.SetGenerating(true)

	if _, err := s.runner.Start(req, s.onJobDone); err != nil {
		s.mu.Lock()
		s.state = StateIdle
		s.mu.Unlock()
		s.view.SetGenerating(false)
		s.view.ShowError(err)
		return err
	}
	return nil
}

// Cancel aborts the in-flight job. It returns false when nothing was running.
func (s *Session) Cancel() bool {
	return s.runner.Cancel()
}

// Play starts playback of the last playable file
func (s *Session) Play(volume float64) error {
	path := s.PlayablePath()
	if path == "" || !platform.FileExists(path) {
		return ErrNothingToPlay
	}
	if err := s.handler.Play(path, volume); err != nil {
		return fmt.Errorf("failed to play %s: %w", path, err)
	}
	return nil
}

// LoadVoices loads the catalog. On failure the error is logged and returned
// with an empty catalog; ReloadVoices shows it to the user.
func (s *Session) LoadVoices(ctx context.Context) (model.VoiceCatalog, error) {
	catalog, err := s.loader.Load(ctx)
	if err != nil {
		s.logger.Warn("voice catalog unavailable", slog.Any("error", err))
		return model.VoiceCatalog{}, err
	}
	s.logger.Info("voice catalog loaded", slog.Int("voices", len(catalog)))
	return catalog, nil
}

// ReloadVoices loads the catalog in the background and hands it to the view
func (s *Session) ReloadVoices() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.bg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.bg.Done()
		catalog, err := s.LoadVoices(s.ctx)
		if errors.Is(err, context.Canceled) {
			return
		}
		s.dispatch(func() {
			s.view.SetVoices(catalog)
			if err != nil {
				s.view.ShowError(err)
			}
		})
	}()
}

// Close cancels any job, waits for it and deletes the downloaded audio.
// It is safe to call more than once.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	s.runner.Cancel()
	s.runner.Wait()
	s.bg.Wait()

	s.logger.Info("session closed")
	if s.temp != nil {
		return s.temp.Close()
	}
	return nil
}

// onJobUpdate forwards status changes to the view
func (s *Session) onJobUpdate(j *model.GenerationJob) {
	snapshot := *j
	s.dispatch(func() {
		s.view.SetJobStatus(snapshot)
	})
}

// onJobDone runs on the job goroutine: it handles the outcome there and
// hands the report to the UI goroutine.
func (s *Session) onJobDone(j *model.GenerationJob) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		s.logger.Info("result ignored after close", slog.String("job", j.ID))
		return
	}

	report := s.handle(j)

	s.mu.Lock()
	if j.Outcome.Success && !report.IsError {
		s.playable = report.PlayablePath
	}
	playable := s.playable
	s.mu.Unlock()

	cancelled := j.Status == model.JobStatusCancelled
	s.dispatch(func() {
		s.mu.Lock()
		s.state = StateIdle
		s.mu.Unlock()

		s.view.SetGenerating(false)
		s.view.SetPlayEnabled(playable != "" && platform.FileExists(playable))
		if cancelled {
			return
		}
		s.view.ShowReport(report)
	})
}

// handle runs the result handler. A panic in a collaborator becomes an
// error report so the form still leaves Generating.
func (s *Session) handle(j *model.GenerationJob) (report result.Report) {
	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error("result handling panicked", slog.String("job", j.ID), slog.Any("panic", rec))
			err := fmt.Errorf("Error: result handling failed: %v", rec)
			report = result.Report{
				Title:   result.TitleError,
				Message: err.Error(),
				IsError: true,
				Err:     err,
			}
		}
	}()
	return s.handler.Handle(s.ctx, j.Outcome, j.Request.Autoplay, j.Request.Volume)
}
