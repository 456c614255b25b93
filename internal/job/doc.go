// Package job runs generation requests on a background goroutine. It keeps
// at most one job in flight, supports cancellation through context, and
// delivers each job's terminal state exactly once through a callback.
package job
