package model

import "strings"

// TextNotInside selects which voice reads text outside quotation marks
// when narration is enabled.
type TextNotInside string

const (
	TextNotInsideCharacter TextNotInside = "character"
	TextNotInsideNarrator  TextNotInside = "narrator"
	TextNotInsideSilent    TextNotInside = "silent"
)

// TextFiltering controls server-side cleanup of the input text
type TextFiltering string

const (
	TextFilteringNone     TextFiltering = "none"
	TextFilteringStandard TextFiltering = "standard"
	TextFilteringHTML     TextFiltering = "html"
)

// Volume bounds for autoplay
const (
	MinVolume     = 0.0
	MaxVolume     = 1.0
	DefaultVolume = 0.8
)

// GenerationRequest is the immutable input of a single generation job.
// Build it with NewGenerationRequest; it is never modified afterwards.
type GenerationRequest struct {
	Text            string
	CharacterVoice  string
	NarratorEnabled bool
	NarratorVoice   string
	TextNotInside   TextNotInside
	TextFiltering   TextFiltering
	Language        string
	OutputName      string
	Timestamp       bool
	Autoplay        bool
	Volume          float64
}

// NewGenerationRequest normalizes the form values into a request:
// trims identifiers, fills defaults and clamps the volume to [0, 1].
func NewGenerationRequest(r GenerationRequest) GenerationRequest {
	r.CharacterVoice = strings.TrimSpace(r.CharacterVoice)
	r.NarratorVoice = strings.TrimSpace(r.NarratorVoice)
	r.OutputName = strings.TrimSpace(r.OutputName)
	r.Language = strings.TrimSpace(r.Language)
	if r.Language == "" {
		r.Language = "en"
	}
	if r.TextNotInside == "" {
		r.TextNotInside = TextNotInsideCharacter
	}
	if r.TextFiltering == "" {
		r.TextFiltering = TextFilteringStandard
	}
	r.Volume = ClampVolume(r.Volume)
	return r
}

// ClampVolume limits v to [MinVolume, MaxVolume]
func ClampVolume(v float64) float64 {
	if v < MinVolume {
		return MinVolume
	}
	if v > MaxVolume {
		return MaxVolume
	}
	return v
}
