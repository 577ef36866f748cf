// Package prefs is the preference and analytics store: the user's display
// preferences and an append-only log of analytics events, persisted as one
// JSON record through a pluggable Persister, plus the statistics derived
// from that log.
//
// Reads are fail-soft and writes are best effort. Neither ever returns a
// persistence error to the caller; failures are logged.
package prefs
