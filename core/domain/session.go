// ABOUTME: Session domain model represents the connection to one server origin
// ABOUTME: Provides origin validation and normalization for connect attempts

package domain

import (
	"net/url"
	"strings"

	"clipper-app-api/core/errors"
)

// Session represents the relationship with one server origin. Authentication
// is not a token the client holds; it is implicit in a browser-managed cookie
// for ServerOrigin, so Authenticated reflects the last successful probe and
// must be re-validated opportunistically.
type Session struct {
	// ServerOrigin is scheme+host+port, no path
	ServerOrigin string

	// Authenticated is true after a successful login or probe
	Authenticated bool
}

// NormalizeOrigin validates a user-entered server URL and reduces it to an
// origin (scheme://host[:port]). HTTPS is required; plain HTTP is allowed
// only for localhost and 127.0.0.1. Any path component other than root is
// rejected to avoid silently posting credentials to an unexpected endpoint.
func NormalizeOrigin(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", &errors.ValidationError{Field: "url", Message: "server URL is required"}
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", &errors.ValidationError{Field: "url", Message: "invalid URL format"}
	}

	switch u.Scheme {
	case "https":
	case "http":
		host := u.Hostname()
		if host != "localhost" && host != "127.0.0.1" {
			return "", &errors.ValidationError{Field: "url", Message: "plain http is only allowed for localhost"}
		}
	default:
		return "", &errors.ValidationError{Field: "url", Message: "URL scheme must be https"}
	}

	if u.Path != "" && u.Path != "/" {
		return "", &errors.ValidationError{Field: "url", Message: "server URL must not include a path"}
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return "", &errors.ValidationError{Field: "url", Message: "server URL must not include a query or fragment"}
	}

	return u.Scheme + "://" + u.Host, nil
}

// OriginHost returns the hostname (without port) of an origin, or an empty
// string when the origin does not parse. Used to detect host changes between
// connect attempts.
func OriginHost(origin string) string {
	u, err := url.Parse(origin)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
