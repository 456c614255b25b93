package model

// ReferenceKind tells how a successful result can be reached
type ReferenceKind int

const (
	// ReferenceLocalPath is a file system path (possibly on a network share)
	ReferenceLocalPath ReferenceKind = iota
	// ReferenceURL is a remote URL that must be downloaded before playback
	ReferenceURL
)

// String returns a short name for logs
func (k ReferenceKind) String() string {
	switch k {
	case ReferenceLocalPath:
		return "path"
	case ReferenceURL:
		return "url"
	default:
		return "unknown"
	}
}

// GenerationOutcome is the single terminal result of a generation job:
// either a success carrying a reference, or a failure carrying an error.
type GenerationOutcome struct {
	Success   bool
	Kind      ReferenceKind
	Reference string
	Message   string
	Err       error
}

// Succeeded builds a success outcome
func Succeeded(kind ReferenceKind, reference, message string) GenerationOutcome {
	return GenerationOutcome{
		Success:   true,
		Kind:      kind,
		Reference: reference,
		Message:   message,
	}
}

// Failed builds a failure outcome; the message is taken from err
func Failed(err error) GenerationOutcome {
	msg := "Error: unknown failure"
	if err != nil {
		msg = err.Error()
	}
	return GenerationOutcome{
		Message: msg,
		Err:     err,
	}
}
