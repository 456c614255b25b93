package platform

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestBuildFFplayArgs(t *testing.T) {
	args := buildFFplayArgs("/tmp/a.wav", 0.8)

	expectedArgs := []string{
		"-nodisp",
		"-autoexit",
		"-loglevel", FFplayLogLevel,
		"-volume", "80",
		"/tmp/a.wav",
	}

	if len(args) != len(expectedArgs) {
		t.Fatalf("Expected %d args, got %d", len(expectedArgs), len(args))
	}

	for i, expected := range expectedArgs {
		if args[i] != expected {
			t.Errorf("Arg %d: expected %s, got %s", i, expected, args[i])
		}
	}
}

func TestBuildFFplayArgs_ClampsVolume(t *testing.T) {
	tests := []struct {
		volume   float64
		expected string
	}{
		{-1, "0"},
		{0, "0"},
		{0.333, "33"},
		{1, "100"},
		{5, "100"},
	}

	for _, test := range tests {
		args := buildFFplayArgs("a.wav", test.volume)
		if args[5] != test.expected {
			t.Errorf("volume %v: expected %s, got %s", test.volume, test.expected, args[5])
		}
	}
}

func newTestPlayer(lookErr error) (*FFplayPlayer, *[]string, *[]string) {
	var started, fallbacks []string
	player := NewFFplayPlayer(nil)
	player.lookPath = func(string) (string, error) {
		if lookErr != nil {
			return "", lookErr
		}
		return "/usr/bin/ffplay", nil
	}
	player.start = func(cmd *exec.Cmd) error {
		started = append(started, cmd.Args...)
		return nil
	}
	player.fallback = func(path string) error {
		fallbacks = append(fallbacks, path)
		return nil
	}
	return player, &started, &fallbacks
}

func TestFFplayPlayer_Play(t *testing.T) {
	file := filepath.Join(t.TempDir(), "a.wav")
	if err := os.WriteFile(file, []byte("RIFF"), 0o644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	player, started, fallbacks := newTestPlayer(nil)
	if err := player.Play(file, 0.5); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(*started) == 0 || (*started)[0] != "/usr/bin/ffplay" {
		t.Errorf("Expected ffplay to be started, got %v", *started)
	}
	if (*started)[len(*started)-1] != file {
		t.Errorf("Expected file as last argument, got %v", *started)
	}
	if len(*fallbacks) != 0 {
		t.Errorf("Fallback must not be used, got %v", *fallbacks)
	}
}

func TestFFplayPlayer_Fallback(t *testing.T) {
	file := filepath.Join(t.TempDir(), "a.wav")
	if err := os.WriteFile(file, []byte("RIFF"), 0o644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	player, started, fallbacks := newTestPlayer(exec.ErrNotFound)
	if err := player.Play(file, 1); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(*started) != 0 {
		t.Errorf("ffplay must not start, got %v", *started)
	}
	if len(*fallbacks) != 1 || (*fallbacks)[0] != file {
		t.Errorf("Expected fallback for %s, got %v", file, *fallbacks)
	}
}

func TestFFplayPlayer_MissingFile(t *testing.T) {
	player, started, _ := newTestPlayer(nil)

	err := player.Play(filepath.Join(t.TempDir(), "missing.wav"), 1)
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if len(*started) != 0 {
		t.Errorf("ffplay must not start for missing file")
	}
	if errors.Is(err, exec.ErrNotFound) {
		t.Errorf("Unexpected lookup error %v", err)
	}
}
