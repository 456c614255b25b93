// Package session implements the form controller behind one window: the
// Idle/Generating state machine, job start and cancel, result routing, and
// ownership of the downloaded audio file until the window closes.
package session
