// Package wsdial resolves WebSocket endpoint references (ws, wss, http,
// https) into connected sockets plus the addressing metadata a handshake
// layer needs: the Host header value and the path[?query] request target.
package wsdial

import (
	"context"
	"net/url"

	"pkt.systems/wsdial/internal/dialer"
	"pkt.systems/wsdial/internal/endpoint"
)

// Endpoint is the canonical decomposition of an endpoint reference.
type Endpoint = endpoint.Endpoint

// Factory selects how plain and secure sockets are produced.
type Factory = dialer.Factory

// SocketFactory opens a transport-layer connection to an address.
type SocketFactory = dialer.SocketFactory

// Target is a resolved, connected endpoint.
type Target = dialer.Target

// ErrInvalidEndpoint marks caller-correctable input problems; transport
// failures never wrap it.
var ErrInvalidEndpoint = endpoint.ErrInvalid

// ParseEndpoint reduces a raw reference string to its canonical tuple
// without dialing.
func ParseEndpoint(raw string) (Endpoint, error) {
	return endpoint.Parse(raw)
}

// SecureScheme reports whether a scheme calls for a TLS-wrapped socket.
func SecureScheme(scheme string) (bool, error) {
	return endpoint.Secure(scheme)
}

// NormalizePath guarantees a leading-slash request path.
func NormalizePath(path string) string {
	return endpoint.NormalizePath(path)
}

// ResolvePort returns the explicit port when one was given, otherwise
// the scheme default.
func ResolvePort(port int, secure bool) int {
	return endpoint.ResolvePort(port, secure)
}

// Describe runs the resolution pipeline without opening a socket. The
// returned target carries the assembled addressing; Conn is nil.
func Describe(raw string) (*Target, error) {
	return dialer.Describe(raw)
}

// Resolve dials a raw endpoint reference with the platform default
// socket factories.
func Resolve(ctx context.Context, raw string) (*Target, error) {
	var f Factory
	return f.Resolve(ctx, raw)
}

// ResolveURL dials an already-parsed URL with the platform default
// socket factories.
func ResolveURL(ctx context.Context, u *url.URL) (*Target, error) {
	var f Factory
	return f.ResolveURL(ctx, u)
}
