package request

import (
	"net"
	"net/http"
	"strings"
)

// ClientAddress determines the visitor's originating address: the first
// comma-separated X-Forwarded-For entry when present, otherwise the
// connection's host with the port stripped.
//
// The forwarding header is trusted as-is without validating it is a
// well-formed address, matching the deployment's reverse-proxy setup.
func ClientAddress(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
