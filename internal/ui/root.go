package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/voicegen/internal/config"
	"github.com/ytget/voicegen/internal/job"
	"github.com/ytget/voicegen/internal/model"
	"github.com/ytget/voicegen/internal/platform"
	"github.com/ytget/voicegen/internal/result"
	"github.com/ytget/voicegen/internal/session"
)

// RootUI is the generation form. It implements session.View.
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	backend      config.BackendKind
	session      *session.Session
	logger       *slog.Logger

	form                *widget.Form
	textEntry           *widget.Entry
	outputEntry         *widget.Entry
	voiceSelect         *widget.Select
	narratorCheck       *widget.Check
	narratorSelect      *widget.Select
	textNotInsideSelect *widget.Select
	languageSelect      *widget.Select
	timestampCheck      *widget.Check
	autoplayCheck       *widget.Check
	volumeSlider        *widget.Slider
	volumeLabel         *widget.Label

	generateBtn *widget.Button
	playBtn     *widget.Button
	cancelBtn   *widget.Button
	reloadBtn   *widget.Button
	revealBtn   *widget.Button
	exitBtn     *widget.Button

	statusLabel *widget.Label
	spinner     *widget.ProgressBarInfinite

	// form items whose labels are localized
	textItem, outputItem, voiceItem, narratorItem, narratorVoiceItem *widget.FormItem
	textNotInsideItem, languageItem, volumeItem                      *widget.FormItem
}

// NewRootUI creates the form for the given backend kind. Bind must be
// called before the window is shown.
func NewRootUI(window fyne.Window, settings *config.Settings, backend config.BackendKind, logger *slog.Logger) *RootUI {
	if logger == nil {
		logger = slog.Default()
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		backend:      backend,
		logger:       logger,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()
	return ui
}

// Bind attaches the session, loads voices and routes every close path
// through the session.
func (ui *RootUI) Bind(s *session.Session) {
	ui.session = s
	ui.window.SetCloseIntercept(ui.onExit)
	s.ReloadVoices()
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.textEntry = widget.NewMultiLineEntry()
	ui.textEntry.Wrapping = fyne.TextWrapWord
	ui.textEntry.SetMinRowsVisible(TextEntryRows)
	ui.textEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterText))

	ui.outputEntry = widget.NewEntry()
	ui.outputEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterOutputName))
	ui.outputEntry.SetText(ui.settings.GetOutputName())
	// Pressing Enter in the name field starts generation
	ui.outputEntry.OnSubmitted = func(string) {
		ui.onGenerateClick()
	}

	ui.voiceSelect = widget.NewSelect(nil, nil)
	ui.voiceSelect.PlaceHolder = ui.localization.GetText(KeyNoVoices)

	ui.narratorSelect = widget.NewSelect(nil, nil)
	ui.narratorSelect.PlaceHolder = ui.localization.GetText(KeyNoVoices)

	ui.textNotInsideSelect = widget.NewSelect(textNotInsideOptions(ui.settings.GetTextNotInsideOptions()), nil)
	ui.textNotInsideSelect.SetSelected(string(ui.settings.GetTextNotInside()))

	ui.narratorCheck = widget.NewCheck("", func(enabled bool) {
		ui.setNarratorEnabled(enabled)
	})
	ui.narratorCheck.SetChecked(ui.settings.GetNarratorEnabled())

	ui.languageSelect = widget.NewSelect(ui.settings.GetTTSLanguageOptions(), nil)
	ui.languageSelect.SetSelected(ui.settings.GetTTSLanguage())

	ui.timestampCheck = widget.NewCheck(ui.localization.GetText(KeyTimestamp), nil)
	ui.timestampCheck.SetChecked(ui.settings.GetTimestamp())

	ui.autoplayCheck = widget.NewCheck(ui.localization.GetText(KeyAutoplay), nil)
	ui.autoplayCheck.SetChecked(ui.settings.GetAutoplay())

	ui.volumeLabel = widget.NewLabel("")
	ui.volumeSlider = widget.NewSlider(VolumeSliderMin, VolumeSliderMax)
	ui.volumeSlider.Step = VolumeSliderStep
	ui.volumeSlider.OnChanged = func(v float64) {
		ui.volumeLabel.SetText(formatVolume(v))
	}
	ui.volumeSlider.SetValue(ui.settings.GetAutoplayVolume())
	ui.volumeLabel.SetText(formatVolume(ui.volumeSlider.Value))

	ui.textItem = widget.NewFormItem(ui.localization.GetText(KeyText), ui.textEntry)
	ui.outputItem = widget.NewFormItem(ui.localization.GetText(KeyOutputName),
		container.NewBorder(nil, nil, nil, ui.timestampCheck, ui.outputEntry))
	ui.voiceItem = widget.NewFormItem(ui.localization.GetText(KeyVoice), ui.voiceSelect)
	ui.narratorItem = widget.NewFormItem(ui.localization.GetText(KeyNarrator), ui.narratorCheck)
	ui.narratorVoiceItem = widget.NewFormItem(ui.localization.GetText(KeyNarratorVoice), ui.narratorSelect)
	ui.textNotInsideItem = widget.NewFormItem(ui.localization.GetText(KeyTextNotInside), ui.textNotInsideSelect)
	ui.languageItem = widget.NewFormItem(ui.localization.GetText(KeyTTSLanguage), ui.languageSelect)
	ui.volumeItem = widget.NewFormItem(ui.localization.GetText(KeyVolume),
		container.NewBorder(nil, nil, ui.autoplayCheck, ui.volumeLabel, ui.volumeSlider))

	ui.form = widget.NewForm(ui.textItem, ui.outputItem, ui.voiceItem)
	// Narration options exist only on the AllTalk service
	if ui.backend == config.BackendAllTalk {
		ui.form.AppendItem(ui.narratorItem)
		ui.form.AppendItem(ui.narratorVoiceItem)
		ui.form.AppendItem(ui.textNotInsideItem)
	}
	ui.form.AppendItem(ui.languageItem)
	ui.form.AppendItem(ui.volumeItem)
	ui.setNarratorEnabled(ui.narratorCheck.Checked)

	ui.generateBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyGenerate), theme.MediaRecordIcon(), ui.onGenerateClick)
	ui.generateBtn.Importance = widget.HighImportance
	ui.playBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyPlay), theme.MediaPlayIcon(), ui.onPlayClick)
	ui.playBtn.Disable()
	ui.cancelBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyCancel), theme.MediaStopIcon(), ui.onCancelClick)
	ui.cancelBtn.Disable()
	ui.reloadBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyReloadVoices), theme.ViewRefreshIcon(), ui.onReloadClick)
	ui.revealBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyRevealOutput), theme.FolderOpenIcon(), ui.onRevealClick)
	ui.revealBtn.Disable()
	ui.exitBtn = widget.NewButton(ui.localization.GetText(KeyExit), ui.onExit)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.statusLabel = widget.NewLabel(ui.localization.GetText(KeyStatusIdle))
	ui.spinner = widget.NewProgressBarInfinite()
	ui.spinner.Stop()
	ui.spinner.Hide()

	var header fyne.CanvasObject = settingsBtn
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		header = container.NewHBox(logoImage, settingsBtn)
	}
	top := container.NewBorder(nil, nil, header, ui.reloadBtn, ui.statusLabel)

	buttons := container.NewHBox(ui.generateBtn, ui.playBtn, ui.cancelBtn, ui.revealBtn, layout.NewSpacer(), ui.exitBtn)
	bottom := container.NewVBox(ui.spinner, buttons)

	content := container.NewBorder(top, bottom, nil, nil, container.NewVScroll(ui.form))
	ui.window.SetContent(content)
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	ui.logger.Debug("UI setup completed", slog.String("backend", string(ui.backend)))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	exitItem := fyne.NewMenuItem(ui.localization.GetText(KeyExit), ui.onExit)
	exitItem.IsQuit = true

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, fyne.NewMenuItemSeparator(), exitItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization
	ui.window.SetTitle(l.GetText(KeyAppTitle))

	ui.textEntry.SetPlaceHolder(l.GetText(KeyEnterText))
	ui.outputEntry.SetPlaceHolder(l.GetText(KeyEnterOutputName))
	ui.voiceSelect.PlaceHolder = l.GetText(KeyNoVoices)
	ui.narratorSelect.PlaceHolder = l.GetText(KeyNoVoices)
	ui.voiceSelect.Refresh()
	ui.narratorSelect.Refresh()

	ui.timestampCheck.Text = l.GetText(KeyTimestamp)
	ui.timestampCheck.Refresh()
	ui.autoplayCheck.Text = l.GetText(KeyAutoplay)
	ui.autoplayCheck.Refresh()

	ui.textItem.Text = l.GetText(KeyText)
	ui.outputItem.Text = l.GetText(KeyOutputName)
	ui.voiceItem.Text = l.GetText(KeyVoice)
	ui.narratorItem.Text = l.GetText(KeyNarrator)
	ui.narratorVoiceItem.Text = l.GetText(KeyNarratorVoice)
	ui.textNotInsideItem.Text = l.GetText(KeyTextNotInside)
	ui.languageItem.Text = l.GetText(KeyTTSLanguage)
	ui.volumeItem.Text = l.GetText(KeyVolume)
	ui.form.Refresh()

	ui.generateBtn.SetText(l.GetText(KeyGenerate))
	ui.playBtn.SetText(l.GetText(KeyPlay))
	ui.cancelBtn.SetText(l.GetText(KeyCancel))
	ui.reloadBtn.SetText(l.GetText(KeyReloadVoices))
	ui.revealBtn.SetText(l.GetText(KeyRevealOutput))
	ui.exitBtn.SetText(l.GetText(KeyExit))

	if ui.session != nil && ui.session.State() == session.StateIdle {
		ui.statusLabel.SetText(l.GetText(KeyStatusIdle))
	}
}

// readForm builds a request from the current widget values
func (ui *RootUI) readForm() model.GenerationRequest {
	req := model.GenerationRequest{
		Text:           ui.textEntry.Text,
		CharacterVoice: ui.voiceSelect.Selected,
		Language:       ui.languageSelect.Selected,
		OutputName:     ui.outputEntry.Text,
		Timestamp:      ui.timestampCheck.Checked,
		Autoplay:       ui.autoplayCheck.Checked,
		Volume:         ui.volumeSlider.Value,
		TextFiltering:  ui.settings.GetTextFiltering(),
	}
	if ui.backend == config.BackendAllTalk {
		req.NarratorEnabled = ui.narratorCheck.Checked
		req.NarratorVoice = ui.narratorSelect.Selected
		req.TextNotInside = model.TextNotInside(ui.textNotInsideSelect.Selected)
	}
	return model.NewGenerationRequest(req)
}

// saveForm persists the reusable form values
func (ui *RootUI) saveForm(req model.GenerationRequest) {
	ui.settings.SetOutputName(req.OutputName)
	ui.settings.SetTimestamp(req.Timestamp)
	ui.settings.SetCharacterVoice(req.CharacterVoice)
	ui.settings.SetTTSLanguage(req.Language)
	ui.settings.SetAutoplay(req.Autoplay)
	ui.settings.SetAutoplayVolume(req.Volume)
	if ui.backend == config.BackendAllTalk {
		ui.settings.SetNarratorEnabled(req.NarratorEnabled)
		ui.settings.SetNarratorVoice(req.NarratorVoice)
		ui.settings.SetTextNotInside(req.TextNotInside)
	}
}

// onGenerateClick handles the Generate button
func (ui *RootUI) onGenerateClick() {
	if ui.session == nil {
		return
	}

	req := ui.readForm()
	err := ui.session.Generate(req)
	switch {
	case err == nil:
		ui.saveForm(req)
	case errors.Is(err, job.ErrBusy):
		// Generate is disabled while busy; a queued click is ignored
		ui.logger.Debug("generate ignored while busy")
	default:
		ui.logger.Info("generate rejected", slog.Any("error", err))
	}
}

// onPlayClick plays the last result at the current volume
func (ui *RootUI) onPlayClick() {
	if err := ui.session.Play(ui.volumeSlider.Value); err != nil {
		ui.logger.Warn("playback failed", slog.Any("error", err))
		dialog.ShowError(err, ui.window)
	}
}

// onCancelClick aborts the in-flight generation
func (ui *RootUI) onCancelClick() {
	if ui.session.Cancel() {
		ui.cancelBtn.Disable()
	}
}

// onReloadClick reloads the voice catalog
func (ui *RootUI) onReloadClick() {
	ui.reloadBtn.Disable()
	ui.session.ReloadVoices()
}

// onRevealClick shows the last local result in the file manager
func (ui *RootUI) onRevealClick() {
	path := ui.session.PlayablePath()
	if err := platform.OpenFileInManager(path); err != nil {
		ui.logger.Warn("reveal failed", slog.String("path", path), slog.Any("error", err))
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies saved settings that take effect immediately
func (ui *RootUI) onSettingsSaved(backendChanged bool) {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.languageSelect.SetSelected(ui.settings.GetTTSLanguage())
	ui.refreshUITexts()
	ui.createMenu()

	msg := ui.localization.GetText(KeySettingsSaved)
	if backendChanged {
		msg += "\n" + ui.localization.GetText(KeyRestartRequired)
	}
	dialog.ShowInformation(ui.localization.GetText(KeySettings), msg, ui.window)
}

// onExit closes the session before the window; every close path goes here
func (ui *RootUI) onExit() {
	if ui.session != nil {
		if err := ui.session.Close(); err != nil {
			ui.logger.Warn("session close failed", slog.Any("error", err))
		}
	}
	ui.window.Close()
}

// setNarratorEnabled toggles the narrator-only widgets
func (ui *RootUI) setNarratorEnabled(enabled bool) {
	if enabled {
		ui.narratorSelect.Enable()
		ui.textNotInsideSelect.Enable()
		return
	}
	ui.narratorSelect.Disable()
	ui.textNotInsideSelect.Disable()
}

// SetGenerating implements session.View
func (ui *RootUI) SetGenerating(generating bool) {
	if generating {
		ui.generateBtn.Disable()
		ui.cancelBtn.Enable()
		ui.spinner.Show()
		ui.spinner.Start()
		return
	}
	ui.generateBtn.Enable()
	ui.cancelBtn.Disable()
	ui.spinner.Stop()
	ui.spinner.Hide()
}

// SetPlayEnabled implements session.View
func (ui *RootUI) SetPlayEnabled(enabled bool) {
	if enabled {
		ui.playBtn.Enable()
		ui.revealBtn.Enable()
		return
	}
	ui.playBtn.Disable()
	ui.revealBtn.Disable()
}

// SetVoices implements session.View
func (ui *RootUI) SetVoices(catalog model.VoiceCatalog) {
	ui.reloadBtn.Enable()

	ui.voiceSelect.Options = catalog
	ui.narratorSelect.Options = catalog
	ui.voiceSelect.ClearSelected()
	ui.narratorSelect.ClearSelected()

	if voice := catalog.Pick(ui.settings.GetCharacterVoice()); voice != "" {
		ui.voiceSelect.SetSelected(voice)
	}
	if voice := catalog.Pick(ui.settings.GetNarratorVoice()); voice != "" {
		ui.narratorSelect.SetSelected(voice)
	}
	ui.voiceSelect.Refresh()
	ui.narratorSelect.Refresh()
}

// SetJobStatus implements session.View
func (ui *RootUI) SetJobStatus(j model.GenerationJob) {
	text := ui.localization.StatusText(j.Status)
	if j.Status.IsFinished() {
		text += MiddleDotSeparator + j.GetElapsedString()
	}
	ui.statusLabel.SetText(text)
}

// ShowReport implements session.View
func (ui *RootUI) ShowReport(report result.Report) {
	if report.IsError {
		dialog.ShowError(errors.New(report.Text()), ui.window)
		return
	}

	title := ui.localization.GetText(KeySuccess)
	if report.PlayablePath != "" {
		ui.logger.Info("result ready", slog.String("file", filepath.Base(report.PlayablePath)))
	}
	dialog.ShowInformation(title, report.Text(), ui.window)
}

// ShowError implements session.View
func (ui *RootUI) ShowError(err error) {
	ui.reloadBtn.Enable()
	dialog.ShowError(err, ui.window)
}

// textNotInsideOptions converts policy values to select options
func textNotInsideOptions(values []model.TextNotInside) []string {
	options := make([]string, 0, len(values))
	for _, v := range values {
		options = append(options, string(v))
	}
	return options
}

// formatVolume renders v in [0, 1] as a percentage
func formatVolume(v float64) string {
	return fmt.Sprintf(VolumeFormat, int(model.ClampVolume(v)*100+0.5))
}
