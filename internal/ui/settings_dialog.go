package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/voicegen/internal/config"
	"github.com/ytget/voicegen/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(backendChanged bool)

	// UI components
	backendSelect       *widget.Select
	ttsLanguageSelect   *widget.Select
	textFilteringSelect *widget.Select
	languageSelect      *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func(backendChanged bool)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	backendOptions := []string{}
	for _, kind := range sd.settings.GetBackendOptions() {
		backendOptions = append(backendOptions, string(kind))
	}
	sd.backendSelect = widget.NewSelect(backendOptions, nil)

	sd.ttsLanguageSelect = widget.NewSelect(sd.settings.GetTTSLanguageOptions(), nil)

	filteringOptions := []string{}
	for _, value := range sd.settings.GetTextFilteringOptions() {
		filteringOptions = append(filteringOptions, string(value))
	}
	sd.textFilteringSelect = widget.NewSelect(filteringOptions, nil)

	// Language codes sorted for a stable order
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyGenerationSettings)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyBackend)+":"),
		sd.backendSelect,

		widget.NewLabel(l.GetText(KeyTTSLanguage)+":"),
		sd.ttsLanguageSelect,

		widget.NewLabel(l.GetText(KeyTextFiltering)+":"),
		sd.textFilteringSelect,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyInterfaceLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.backendSelect.SetSelected(string(sd.settings.GetBackend()))
	sd.ttsLanguageSelect.SetSelected(sd.settings.GetTTSLanguage())
	sd.textFilteringSelect.SetSelected(string(sd.settings.GetTextFiltering()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	backendChanged := false
	if sd.backendSelect.Selected != "" {
		kind := config.BackendKind(sd.backendSelect.Selected)
		backendChanged = kind != sd.settings.GetBackend()
		sd.settings.SetBackend(kind)
	}

	if sd.ttsLanguageSelect.Selected != "" {
		sd.settings.SetTTSLanguage(sd.ttsLanguageSelect.Selected)
	}

	if sd.textFilteringSelect.Selected != "" {
		sd.settings.SetTextFiltering(model.TextFiltering(sd.textFilteringSelect.Selected))
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved(backendChanged)
	}
}
