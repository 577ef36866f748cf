// Package postgres implements the account and journal storage boundary on
// PostgreSQL. It owns the schema (embedded goose migrations), maps driver
// errors to the store package's sentinels and signs caregivers in with
// bcrypt-checked passwords and HMAC session tokens.
package postgres
