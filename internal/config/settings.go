package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/voicegen/internal/model"
)

// BackendKind selects which text-to-speech service variant is used
type BackendKind string

const (
	BackendXTTS    BackendKind = "xtts"
	BackendAllTalk BackendKind = "alltalk"
)

// Settings keys for Fyne preferences
const (
	KeyBackend         = "backend"
	KeyTTSLanguage     = "tts_language"
	KeyOutputName      = "output_name"
	KeyTimestamp       = "output_timestamp"
	KeyCharacterVoice  = "character_voice"
	KeyNarratorEnabled = "narrator_enabled"
	KeyNarratorVoice   = "narrator_voice"
	KeyTextNotInside   = "text_not_inside"
	KeyTextFiltering   = "text_filtering"
	KeyAutoplay        = "autoplay"
	KeyAutoplayVolume  = "autoplay_volume"
	KeyLanguage        = "app_language"
)

// Default values
const (
	DefaultBackend         = BackendXTTS
	DefaultTTSLanguage     = "en"
	DefaultTimestamp       = false
	DefaultNarratorEnabled = false
	DefaultTextNotInside   = model.TextNotInsideCharacter
	DefaultTextFiltering   = model.TextFilteringStandard
	DefaultAutoplay        = false
	DefaultAutoplayVolume  = model.DefaultVolume
	DefaultLanguage        = "system"
)

// Settings manages persisted user choices
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetBackend returns the configured backend kind
func (s *Settings) GetBackend() BackendKind {
	kind := BackendKind(s.app.Preferences().String(KeyBackend))
	switch kind {
	case BackendXTTS, BackendAllTalk:
		return kind
	default:
		s.SetBackend(DefaultBackend)
		return DefaultBackend
	}
}

// SetBackend sets the backend kind; unknown kinds fall back to the default
func (s *Settings) SetBackend(kind BackendKind) {
	if kind != BackendXTTS && kind != BackendAllTalk {
		kind = DefaultBackend
	}
	s.app.Preferences().SetString(KeyBackend, string(kind))
}

// GetBackendOptions returns available backends
func (s *Settings) GetBackendOptions() []BackendKind {
	return []BackendKind{BackendXTTS, BackendAllTalk}
}

// GetTTSLanguage returns the synthesis language code
func (s *Settings) GetTTSLanguage() string {
	lang := s.app.Preferences().String(KeyTTSLanguage)
	if lang == "" {
		s.SetTTSLanguage(DefaultTTSLanguage)
		return DefaultTTSLanguage
	}
	return lang
}

// SetTTSLanguage sets the synthesis language code
func (s *Settings) SetTTSLanguage(lang string) {
	if lang == "" {
		lang = DefaultTTSLanguage
	}
	s.app.Preferences().SetString(KeyTTSLanguage, lang)
}

// GetTTSLanguageOptions returns language codes accepted by the synthesis servers
func (s *Settings) GetTTSLanguageOptions() []string {
	return []string{"en", "ar", "zh-cn", "cs", "nl", "fr", "de", "hu", "it", "ja", "ko", "pl", "pt", "ru", "es", "tr"}
}

// GetOutputName returns the last used output file name
func (s *Settings) GetOutputName() string {
	return s.app.Preferences().String(KeyOutputName)
}

// SetOutputName remembers the output file name
func (s *Settings) SetOutputName(name string) {
	s.app.Preferences().SetString(KeyOutputName, name)
}

// GetTimestamp returns whether a timestamp suffix is added to output names
func (s *Settings) GetTimestamp() bool {
	return s.app.Preferences().BoolWithFallback(KeyTimestamp, DefaultTimestamp)
}

// SetTimestamp sets the timestamp suffix flag
func (s *Settings) SetTimestamp(enabled bool) {
	s.app.Preferences().SetBool(KeyTimestamp, enabled)
}

// GetCharacterVoice returns the last selected character voice
func (s *Settings) GetCharacterVoice() string {
	return s.app.Preferences().String(KeyCharacterVoice)
}

// SetCharacterVoice remembers the character voice
func (s *Settings) SetCharacterVoice(voice string) {
	s.app.Preferences().SetString(KeyCharacterVoice, voice)
}

// GetNarratorEnabled returns whether dual-voice narration is on
func (s *Settings) GetNarratorEnabled() bool {
	return s.app.Preferences().BoolWithFallback(KeyNarratorEnabled, DefaultNarratorEnabled)
}

// SetNarratorEnabled sets the narration flag
func (s *Settings) SetNarratorEnabled(enabled bool) {
	s.app.Preferences().SetBool(KeyNarratorEnabled, enabled)
}

// GetNarratorVoice returns the last selected narrator voice
func (s *Settings) GetNarratorVoice() string {
	return s.app.Preferences().String(KeyNarratorVoice)
}

// SetNarratorVoice remembers the narrator voice
func (s *Settings) SetNarratorVoice(voice string) {
	s.app.Preferences().SetString(KeyNarratorVoice, voice)
}

// GetTextNotInside returns the quoting policy for narration
func (s *Settings) GetTextNotInside() model.TextNotInside {
	value := model.TextNotInside(s.app.Preferences().String(KeyTextNotInside))
	for _, option := range s.GetTextNotInsideOptions() {
		if option == value {
			return value
		}
	}
	s.SetTextNotInside(DefaultTextNotInside)
	return DefaultTextNotInside
}

// SetTextNotInside sets the quoting policy
func (s *Settings) SetTextNotInside(value model.TextNotInside) {
	s.app.Preferences().SetString(KeyTextNotInside, string(value))
}

// GetTextNotInsideOptions returns available quoting policies
func (s *Settings) GetTextNotInsideOptions() []model.TextNotInside {
	return []model.TextNotInside{model.TextNotInsideCharacter, model.TextNotInsideNarrator, model.TextNotInsideSilent}
}

// GetTextFiltering returns the server-side text filtering mode
func (s *Settings) GetTextFiltering() model.TextFiltering {
	value := model.TextFiltering(s.app.Preferences().String(KeyTextFiltering))
	for _, option := range s.GetTextFilteringOptions() {
		if option == value {
			return value
		}
	}
	s.SetTextFiltering(DefaultTextFiltering)
	return DefaultTextFiltering
}

// SetTextFiltering sets the text filtering mode
func (s *Settings) SetTextFiltering(value model.TextFiltering) {
	s.app.Preferences().SetString(KeyTextFiltering, string(value))
}

// GetTextFilteringOptions returns available filtering modes
func (s *Settings) GetTextFilteringOptions() []model.TextFiltering {
	return []model.TextFiltering{model.TextFilteringNone, model.TextFilteringStandard, model.TextFilteringHTML}
}

// GetAutoplay returns whether results are played automatically
func (s *Settings) GetAutoplay() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoplay, DefaultAutoplay)
}

// SetAutoplay sets the autoplay flag
func (s *Settings) SetAutoplay(enabled bool) {
	s.app.Preferences().SetBool(KeyAutoplay, enabled)
}

// GetAutoplayVolume returns the playback volume in [0, 1]
func (s *Settings) GetAutoplayVolume() float64 {
	return model.ClampVolume(s.app.Preferences().FloatWithFallback(KeyAutoplayVolume, DefaultAutoplayVolume))
}

// SetAutoplayVolume sets the playback volume, clamped to [0, 1]
func (s *Settings) SetAutoplayVolume(volume float64) {
	s.app.Preferences().SetFloat(KeyAutoplayVolume, model.ClampVolume(volume))
}

// GetLanguage returns the configured interface language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the interface language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available interface language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
