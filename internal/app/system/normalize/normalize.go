// internal/app/system/normalize/normalize.go

// Package normalize provides canonical forms for user-supplied strings so
// lookups and uniqueness checks behave consistently.
package normalize

import "strings"

// Email lowercases and trims an email address.
func Email(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Name trims surrounding whitespace from a display name.
func Name(name string) string {
	return strings.TrimSpace(name)
}

// Status lowercases and trims a status value.
func Status(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

// OfferType lowercases and trims a partner offer type.
func OfferType(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}

// QueryParam trims a query string parameter.
func QueryParam(v string) string {
	return strings.TrimSpace(v)
}
