// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize cleans user- and admin-supplied text before storage.
// Blog content keeps a safe subset of formatting markup; review text,
// contact messages, and other plain-text fields have all markup stripped.
package htmlsanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	contentPolicy *bluemonday.Policy
	strictPolicy  *bluemonday.Policy
	policyOnce    sync.Once
)

func policies() (*bluemonday.Policy, *bluemonday.Policy) {
	policyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowTables()
		p.AllowAttrs("class").OnElements("p", "span", "div", "table", "td", "th")
		contentPolicy = p

		strictPolicy = bluemonday.StrictPolicy()
	})
	return contentPolicy, strictPolicy
}

// Sanitize cleans rich content (blog post bodies), keeping common formatting
// elements and dropping scripts, event handlers, and unknown tags.
func Sanitize(html string) string {
	content, _ := policies()
	return content.Sanitize(html)
}

// SanitizeMap sanitizes every value of a multi-language content map.
func SanitizeMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for lang, v := range m {
		out[lang] = Sanitize(v)
	}
	return out
}

// StripTags removes all markup, leaving plain text. Used for review text,
// contact messages, and display names.
func StripTags(s string) string {
	_, strict := policies()
	return strings.TrimSpace(strict.Sanitize(s))
}
