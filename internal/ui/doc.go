// Package ui contains the Fyne-based desktop form of the application.
// It turns widget events into session calls and renders job status, results
// and settings. All UI strings are localized via Localization.
package ui
