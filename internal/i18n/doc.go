// Package i18n provides the key to string translation tables consumed by the
// journal for display, along with locale detection and the localized calendar
// names used by date labels and reports.
//
// Lookups never fail: an unresolved key is returned unchanged so callers can
// always render something.
package i18n
