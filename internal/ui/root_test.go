package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/voicegen/internal/config"
	"github.com/ytget/voicegen/internal/model"
)

func newTestUI(t *testing.T, backend config.BackendKind) (*RootUI, *config.Settings) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	settings := config.NewSettings(a)
	w := a.NewWindow("test")
	t.Cleanup(w.Close)
	return NewRootUI(w, settings, backend, nil), settings
}

func TestRootUI_ReadForm(t *testing.T) {
	ui, _ := newTestUI(t, config.BackendAllTalk)

	ui.SetVoices(model.VoiceCatalog{"alice", "bob"})
	ui.textEntry.SetText("hello")
	ui.outputEntry.SetText("  greeting ")
	ui.voiceSelect.SetSelected("bob")
	ui.narratorCheck.SetChecked(true)
	ui.narratorSelect.SetSelected("alice")
	ui.textNotInsideSelect.SetSelected(string(model.TextNotInsideNarrator))
	ui.languageSelect.SetSelected("ru")
	ui.timestampCheck.SetChecked(true)
	ui.autoplayCheck.SetChecked(true)
	ui.volumeSlider.SetValue(0.5)

	req := ui.readForm()

	if req.Text != "hello" || req.OutputName != "greeting" {
		t.Errorf("Unexpected text/name: %+v", req)
	}
	if req.CharacterVoice != "bob" || req.NarratorVoice != "alice" || !req.NarratorEnabled {
		t.Errorf("Unexpected voices: %+v", req)
	}
	if req.TextNotInside != model.TextNotInsideNarrator {
		t.Errorf("Expected narrator policy, got %s", req.TextNotInside)
	}
	if req.Language != "ru" || !req.Timestamp || !req.Autoplay || req.Volume != 0.5 {
		t.Errorf("Unexpected options: %+v", req)
	}
}

func TestRootUI_ReadFormXTTSIgnoresNarrator(t *testing.T) {
	ui, _ := newTestUI(t, config.BackendXTTS)

	ui.narratorCheck.SetChecked(true)
	req := ui.readForm()

	if req.NarratorEnabled {
		t.Errorf("xtts requests never enable narration")
	}
	if req.TextNotInside != model.TextNotInsideCharacter {
		t.Errorf("Expected default policy, got %s", req.TextNotInside)
	}
}

func TestRootUI_SetVoicesPicksSavedVoice(t *testing.T) {
	ui, settings := newTestUI(t, config.BackendXTTS)

	settings.SetCharacterVoice("bob")
	ui.SetVoices(model.VoiceCatalog{"alice", "bob"})
	if ui.voiceSelect.Selected != "bob" {
		t.Errorf("Expected saved voice bob, got %q", ui.voiceSelect.Selected)
	}

	ui.SetVoices(model.VoiceCatalog{"carol"})
	if ui.voiceSelect.Selected != "carol" {
		t.Errorf("Expected first voice carol, got %q", ui.voiceSelect.Selected)
	}

	ui.SetVoices(model.VoiceCatalog{})
	if ui.voiceSelect.Selected != "" {
		t.Errorf("Expected no selection for empty catalog, got %q", ui.voiceSelect.Selected)
	}
}

func TestRootUI_SetGenerating(t *testing.T) {
	ui, _ := newTestUI(t, config.BackendXTTS)

	ui.SetGenerating(true)
	if !ui.generateBtn.Disabled() || ui.cancelBtn.Disabled() {
		t.Errorf("Generating: generate should be disabled and cancel enabled")
	}

	ui.SetGenerating(false)
	if ui.generateBtn.Disabled() || !ui.cancelBtn.Disabled() {
		t.Errorf("Idle: generate should be enabled and cancel disabled")
	}
}

func TestRootUI_SetPlayEnabled(t *testing.T) {
	ui, _ := newTestUI(t, config.BackendXTTS)

	if !ui.playBtn.Disabled() {
		t.Errorf("Play should start disabled")
	}
	ui.SetPlayEnabled(true)
	if ui.playBtn.Disabled() {
		t.Errorf("Play should be enabled")
	}
	ui.SetPlayEnabled(false)
	if !ui.playBtn.Disabled() {
		t.Errorf("Play should be disabled again")
	}
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui, settings := newTestUI(t, config.BackendXTTS)

	ui.onLanguageChange("pt")

	if settings.GetLanguage() != "pt" {
		t.Errorf("Expected saved language pt, got %s", settings.GetLanguage())
	}
	if ui.generateBtn.Text != "Gerar" {
		t.Errorf("Expected Portuguese button text, got %s", ui.generateBtn.Text)
	}
}

func TestFormatVolume(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "0%"},
		{0.8, "80%"},
		{1, "100%"},
		{2, "100%"},
	}

	for _, tc := range tests {
		if got := formatVolume(tc.input); got != tc.expected {
			t.Errorf("formatVolume(%v) = %s, expected %s", tc.input, got, tc.expected)
		}
	}
}
