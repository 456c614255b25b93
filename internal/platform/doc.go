// Package platform contains OS integration: filesystem helpers, opening and
// revealing files, local audio playback through ffplay, and WAV inspection.
package platform
