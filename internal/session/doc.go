// Package session drives one application session: it resolves the display
// preferences at start-up, owns the activity stopwatch and runs the two
// background loops (auto night mode and the timer tick) on a task.Scheduler.
//
// Journal operations that go through the controller are serialized with the
// loops. Callers that use the journal returned by Journal directly must not
// do so concurrently with the controller.
package session
