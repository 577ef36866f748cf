// Package events defines the analytics events the application records and a
// small in-process emitter that fans them out to handlers.
//
// The session controller emits events without knowing who consumes them;
// the preference store is the handler that appends them to the persisted
// event log.
package events
