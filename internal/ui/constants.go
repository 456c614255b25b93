package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Window and widget sizing
const (
	WindowWidth  float32 = 640
	WindowHeight float32 = 560

	TextEntryRows = 6

	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 360
)

// Volume slider
const (
	VolumeSliderMin  = 0.0
	VolumeSliderMax  = 1.0
	VolumeSliderStep = 0.05
	VolumeFormat     = "%d%%"
)
