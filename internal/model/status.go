package model

// JobStatus represents the status of a generation job
type JobStatus string

const (
	// JobStatusPending means the job is created but not started
	JobStatusPending JobStatus = "Pending"

	// JobStatusRunning means the request is in flight
	JobStatusRunning JobStatus = "Running"

	// JobStatusCancelling means cancellation was requested and the job is unwinding
	JobStatusCancelling JobStatus = "Cancelling"

	// JobStatusCompleted means the service reported success
	JobStatusCompleted JobStatus = "Completed"

	// JobStatusFailed means the job ended with a failure outcome
	JobStatusFailed JobStatus = "Failed"

	// JobStatusCancelled means the job was cancelled by the user or on close
	JobStatusCancelled JobStatus = "Cancelled"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsActive returns true if the job is in an active state
func (js JobStatus) IsActive() bool {
	return js == JobStatusPending || js == JobStatusRunning || js == JobStatusCancelling
}

// IsFinished returns true if the job is in a finished state (completed, failed, or cancelled)
func (js JobStatus) IsFinished() bool {
	return js == JobStatusCompleted || js == JobStatusFailed || js == JobStatusCancelled
}
