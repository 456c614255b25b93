// Package tts talks to the remote text-to-speech services. Each service
// variant implements Backend and turns every response or transport fault
// into exactly one model.GenerationOutcome.
package tts
