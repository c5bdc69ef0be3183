package requests

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP resolves the originating client address of a proxied request.
// Precedence: first X-Forwarded-For entry, then X-Real-IP, then RemoteAddr.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return strings.TrimSpace(realIP)
	}
	hostIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return hostIP
}
