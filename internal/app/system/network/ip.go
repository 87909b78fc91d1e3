// internal/app/system/network/ip.go

// Package network provides helpers for extracting client connection details
// from HTTP requests behind proxies and load balancers.
package network

import (
	"net"
	"net/http"
	"strings"
)

// GetClientIP returns the originating client address for a request.
// It prefers X-Forwarded-For (first hop), then X-Real-IP, then the
// connection's remote address with the port stripped.
func GetClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if first, _, ok := strings.Cut(xff, ","); ok {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
