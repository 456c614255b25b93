package model

import (
	"errors"
	"strings"
	"testing"
)

func TestSucceeded(t *testing.T) {
	outcome := Succeeded(ReferenceURL, "http://x/a.wav", "ok")

	if !outcome.Success {
		t.Fatal("Expected success outcome")
	}
	if outcome.Kind != ReferenceURL {
		t.Errorf("Expected kind %s, got %s", ReferenceURL, outcome.Kind)
	}
	if outcome.Reference != "http://x/a.wav" {
		t.Errorf("Unexpected reference %s", outcome.Reference)
	}
	if outcome.Err != nil {
		t.Errorf("Success must not carry an error, got %v", outcome.Err)
	}
}

func TestFailed(t *testing.T) {
	err := &RequestFailedError{Status: 500, Body: "boom"}
	outcome := Failed(err)

	if outcome.Success {
		t.Fatal("Expected failure outcome")
	}
	if !strings.Contains(outcome.Message, "500") || !strings.Contains(outcome.Message, "boom") {
		t.Errorf("Expected message to carry status and body, got %q", outcome.Message)
	}

	var reqErr *RequestFailedError
	if !errors.As(outcome.Err, &reqErr) || reqErr.Status != 500 {
		t.Errorf("Expected RequestFailedError with status 500, got %v", outcome.Err)
	}
}

func TestFailed_NilError(t *testing.T) {
	outcome := Failed(nil)
	if outcome.Success || outcome.Message == "" {
		t.Errorf("Expected failure with a message, got %+v", outcome)
	}
}

func TestReferenceKind_String(t *testing.T) {
	if ReferenceLocalPath.String() != "path" || ReferenceURL.String() != "url" {
		t.Errorf("Unexpected names: %s, %s", ReferenceLocalPath, ReferenceURL)
	}
	if ReferenceKind(9).String() != "unknown" {
		t.Errorf("Expected 'unknown' for out-of-range kind")
	}
}
