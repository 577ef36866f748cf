// Package store defines the account and journal storage boundary. The
// interfaces abstract the backing service from the session controller, which
// only ever loads a caregiver's records once at start-up.
package store
