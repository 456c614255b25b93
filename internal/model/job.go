package model

import (
	"fmt"
	"time"
)

// GenerationJob represents a single text-to-speech request in flight or finished
type GenerationJob struct {
	ID         string
	Request    GenerationRequest
	Status     JobStatus
	Outcome    GenerationOutcome
	StartedAt  time.Time // when the request was sent
	FinishedAt time.Time // when the outcome was produced
}

// Elapsed returns how long the job ran, or has been running so far
func (j *GenerationJob) Elapsed() time.Duration {
	if j.StartedAt.IsZero() {
		return 0
	}
	if j.FinishedAt.IsZero() {
		return time.Since(j.StartedAt)
	}
	return j.FinishedAt.Sub(j.StartedAt)
}

// GetElapsedString returns elapsed time formatted as mm:ss, or "—" if not started
func (j *GenerationJob) GetElapsedString() string {
	elapsed := int(j.Elapsed().Seconds())
	if j.StartedAt.IsZero() {
		return "—"
	}

	minutes := elapsed / 60
	seconds := elapsed % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// Snapshot returns a copy safe to hand to another goroutine
func (j *GenerationJob) Snapshot() GenerationJob {
	return *j
}
