// Package auth issues and validates the session tokens handed out by the
// account service and hashes caregiver passwords.
package auth
