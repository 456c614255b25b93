// Package model defines domain data structures shared across the app:
// generation requests and outcomes, the voice catalog, generation jobs and
// their status enum, and the error taxonomy surfaced to the user.
package model
