package model

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Wrap them with fmt.Errorf("%w: ...") and match with errors.Is.
var (
	// ErrCatalogUnavailable means the voice list could not be loaded
	ErrCatalogUnavailable = errors.New("voice catalog unavailable")

	// ErrMalformedResponse means the service answered 200 with a body we cannot use
	ErrMalformedResponse = errors.New("malformed response")

	// ErrCancelled means the job was cancelled before it produced a result
	ErrCancelled = errors.New("generation cancelled")

	// ErrValidation means a required form field is missing or invalid
	ErrValidation = errors.New("invalid request")
)

// RequestFailedError is returned when the service answers with a non-200 status.
type RequestFailedError struct {
	Status int
	Body   string
}

func (e *RequestFailedError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("Error: %d", e.Status)
	}
	return fmt.Sprintf("Error: %d\n%s", e.Status, body)
}

// TransportError wraps connection, DNS and timeout failures.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("Error: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ClipboardError is non-fatal: the generation still counts as a success.
type ClipboardError struct {
	Err error
}

func (e *ClipboardError) Error() string {
	return fmt.Sprintf("clipboard: %v", e.Err)
}

func (e *ClipboardError) Unwrap() error { return e.Err }

// DownloadError is non-fatal: it disables playback only.
type DownloadError struct {
	URL string
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }
