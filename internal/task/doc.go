// Package task runs named periodic jobs in the background. Each job runs on
// its own goroutine under a cancellable context; arming a name again cancels
// the previous job first.
package task
