package job

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/voicegen/internal/model"
	"github.com/ytget/voicegen/internal/tts"
)

// ErrBusy is returned by Start while another job is in flight
var ErrBusy = errors.New("a generation is already in progress")

// JobIDPrefix prefixes generated job IDs
const JobIDPrefix = "job-"

// Runner executes one generation job at a time
type Runner struct {
	backend tts.Backend
	logger  *slog.Logger

	mu       sync.Mutex
	current  *model.GenerationJob
	cancel   context.CancelFunc
	inFlight sync.WaitGroup
	onUpdate func(*model.GenerationJob) // callback for status changes
}

// NewRunner creates a runner bound to backend
func NewRunner(backend tts.Backend, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		backend: backend,
		logger:  logger,
	}
}

// SetUpdateCallback sets the callback function for job status updates
func (r *Runner) SetUpdateCallback(callback func(*model.GenerationJob)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onUpdate = callback
}

// Start creates a job for req and runs it on a new goroutine
func (r *Runner) Start(req model.GenerationRequest, onDone func(*model.GenerationJob)) (*model.GenerationJob, error) {
	r.mu.Lock()
	if r.current != nil && r.current.Status.IsActive() {
		r.mu.Unlock()
		return nil, ErrBusy
	}

	ctx, cancel := context.WithCancel(context.Background())
	job := &model.GenerationJob{
		ID:      generateJobID(),
		Request: req,
		Status:  model.JobStatusPending,
	}
	r.current = job
	r.cancel = cancel
	r.inFlight.Add(1)
	snapshot := job.Snapshot()
	r.mu.Unlock()

	r.notifyUpdate(&snapshot)

	go r.run(ctx, job, onDone)

	return &snapshot, nil
}

// run executes the job and delivers its terminal state
func (r *Runner) run(ctx context.Context, job *model.GenerationJob, onDone func(*model.GenerationJob)) {
	defer r.inFlight.Done()

	r.mu.Lock()
	if job.Status == model.JobStatusPending {
		job.Status = model.JobStatusRunning
	}
	job.StartedAt = time.Now()
	running := job.Snapshot()
	r.mu.Unlock()
	r.notifyUpdate(&running)

	r.logger.Info("generation started", slog.String("job", job.ID), slog.String("backend", string(r.backend.Kind())))

	outcome := r.generate(ctx, job)

	finished := r.finish(job, outcome)
	r.logger.Info("generation finished",
		slog.String("job", job.ID),
		slog.String("status", finished.Status.String()),
		slog.Duration("elapsed", finished.Elapsed()))

	r.deliver(&finished, onDone)
}

// generate calls the backend; a panicking backend still produces an outcome
func (r *Runner) generate(ctx context.Context, job *model.GenerationJob) (outcome model.GenerationOutcome) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("generation job panicked", slog.String("job", job.ID), slog.Any("panic", rec))
			outcome = model.Failed(errors.New("Error: internal failure"))
		}
	}()
	return r.backend.Generate(ctx, job.Request)
}

// deliver hands the finished job to onDone. The job is already final, so a
// panic in the callback is logged and does not touch the job again.
func (r *Runner) deliver(finished *model.GenerationJob, onDone func(*model.GenerationJob)) {
	if onDone == nil {
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("job completion callback panicked", slog.String("job", finished.ID), slog.Any("panic", rec))
		}
	}()
	onDone(finished)
}

// finish records the outcome and releases the context
func (r *Runner) finish(job *model.GenerationJob, outcome model.GenerationOutcome) model.GenerationJob {
	r.mu.Lock()
	cancelled := job.Status == model.JobStatusCancelling || errors.Is(outcome.Err, model.ErrCancelled)
	if cancelled && outcome.Success {
		// A late success after Cancel is ignored
		outcome = model.Failed(model.ErrCancelled)
	}

	switch {
	case cancelled:
		job.Status = model.JobStatusCancelled
	case outcome.Success:
		job.Status = model.JobStatusCompleted
	default:
		job.Status = model.JobStatusFailed
	}
	job.Outcome = outcome
	job.FinishedAt = time.Now()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	snapshot := job.Snapshot()
	r.mu.Unlock()

	r.notifyUpdate(&snapshot)
	return snapshot
}

// Cancel aborts the in-flight job. It returns false when nothing was running.
func (r *Runner) Cancel() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil || !r.current.Status.IsActive() || r.cancel == nil {
		return false
	}

	r.current.Status = model.JobStatusCancelling
	r.cancel()
	r.logger.Info("generation cancel requested", slog.String("job", r.current.ID))
	return true
}

// Wait blocks until the in-flight job, including its onDone callback, returns
func (r *Runner) Wait() {
	r.inFlight.Wait()
}

// Current returns a copy of the most recent job
func (r *Runner) Current() (model.GenerationJob, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return model.GenerationJob{}, false
	}
	return r.current.Snapshot(), true
}

// notifyUpdate calls the update callback if set
func (r *Runner) notifyUpdate(job *model.GenerationJob) {
	r.mu.Lock()
	callback := r.onUpdate
	r.mu.Unlock()

	if callback != nil {
		callback(job)
	}
}

// generateJobID generates a unique job ID
func generateJobID() string {
	return JobIDPrefix + uuid.NewString()
}
