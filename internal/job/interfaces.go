package job

import (
	"github.com/ytget/voicegen/internal/model"
)

// Generator defines the interface for the job runner.
type Generator interface {
	SetUpdateCallback(func(*model.GenerationJob))

	// Start launches req in the background; onDone receives the finished
	// job exactly once, on the job goroutine.
	Start(req model.GenerationRequest, onDone func(*model.GenerationJob)) (*model.GenerationJob, error)

	// Cancel aborts the in-flight request, if any
	Cancel() bool

	// Wait blocks until no job is in flight
	Wait()

	// Current returns a copy of the most recent job
	Current() (model.GenerationJob, bool)
}
