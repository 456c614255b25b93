// Package result turns a finished generation outcome into user-visible
// effects: the clipboard entry, the local playable copy of remote audio,
// the summary shown to the user, and optional autoplay.
package result
