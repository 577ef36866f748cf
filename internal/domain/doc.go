// Package domain contains the journal's entities (babies, activities, custom
// activity types, growth records and teeth), the invariants among them and
// the Journal aggregate that owns them for a single session.
//
// Nothing in this package performs I/O. Persistence and synchronization with
// the account service live behind the interfaces in the store package.
package domain
