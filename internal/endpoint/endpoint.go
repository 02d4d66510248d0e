// Package endpoint reduces WebSocket endpoint references to a canonical
// addressing tuple and encodes the ws/wss/http/https scheme rules.
package endpoint

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ErrInvalid marks caller-correctable endpoint problems: malformed URI
// syntax, a missing or unrecognized scheme, an empty host. Dial failures
// never wrap it.
var ErrInvalid = errors.New("invalid endpoint")

// PortUnset is the Port value of an endpoint without an explicit port.
const PortUnset = -1

// Endpoint is the canonical decomposition of an endpoint reference.
type Endpoint struct {
	Scheme   string
	UserInfo string
	Host     string
	Port     int // PortUnset when the reference carries no port
	Path     string
	RawQuery string
}

// Parse parses a raw endpoint reference string into an Endpoint.
func Parse(raw string) (Endpoint, error) {
	if strings.TrimSpace(raw) == "" {
		return Endpoint{}, fmt.Errorf("%w: empty reference", ErrInvalid)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return Endpoint{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return FromURL(u)
}

// FromURL converts an already-parsed URL into an Endpoint.
func FromURL(u *url.URL) (Endpoint, error) {
	if u == nil {
		return Endpoint{}, fmt.Errorf("%w: nil url", ErrInvalid)
	}

	port := PortUnset
	if raw := u.Port(); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return Endpoint{}, fmt.Errorf("%w: bad port %q", ErrInvalid, raw)
		}
		port = parsed
	}

	userInfo := ""
	if u.User != nil {
		userInfo = u.User.String()
	}

	return Endpoint{
		Scheme:   u.Scheme,
		UserInfo: userInfo,
		Host:     u.Hostname(),
		Port:     port,
		Path:     u.Path,
		RawQuery: u.RawQuery,
	}, nil
}

// Secure reports whether the scheme calls for a TLS-wrapped socket.
// wss and https are secure, ws and http are plain; matching is
// case-insensitive and anything else is rejected. Accepting http/https
// lets callers reuse ordinary web URLs for WebSocket endpoints.
func Secure(scheme string) (bool, error) {
	switch strings.ToLower(scheme) {
	case "wss", "https":
		return true, nil
	case "ws", "http":
		return false, nil
	case "":
		return false, fmt.Errorf("%w: the scheme part is empty", ErrInvalid)
	default:
		return false, fmt.Errorf("%w: bad scheme: %s", ErrInvalid, scheme)
	}
}

// NormalizePath guarantees a leading-slash request path.
func NormalizePath(path string) string {
	if path == "" {
		return "/"
	}
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}

// ResolvePort returns the explicit port when one was given, otherwise
// the scheme default: 443 secure, 80 plain.
func ResolvePort(port int, secure bool) int {
	if port >= 0 {
		return port
	}
	if secure {
		return 443
	}
	return 80
}
