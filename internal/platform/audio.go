package platform

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-audio/wav"
)

// ErrNotWAV is returned for files without a valid RIFF/WAVE header
var ErrNotWAV = errors.New("not a WAV file")

// AudioInfo describes a decoded WAV header
type AudioInfo struct {
	Duration   time.Duration
	SampleRate int
	Channels   int
	BitDepth   int
}

// InspectWAV reads the header of the WAV file at path
func InspectWAV(path string) (AudioInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return AudioInfo{}, err
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return AudioInfo{}, fmt.Errorf("%w: %s", ErrNotWAV, path)
	}

	duration, err := decoder.Duration()
	if err != nil {
		return AudioInfo{}, fmt.Errorf("failed to read duration: %w", err)
	}

	return AudioInfo{
		Duration:   duration,
		SampleRate: int(decoder.SampleRate),
		Channels:   int(decoder.NumChans),
		BitDepth:   int(decoder.BitDepth),
	}, nil
}

// FormatDuration renders d as seconds with one decimal, e.g. "2.5s"
func FormatDuration(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
