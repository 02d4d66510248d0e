// Package dialer resolves an endpoint reference into a connected socket
// plus the addressing strings the downstream handshake layer needs.
package dialer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/url"
	"strconv"

	"pkt.systems/wsdial/internal/endpoint"
)

// SocketFactory opens a transport-layer connection to address.
type SocketFactory func(ctx context.Context, network, address string) (net.Conn, error)

// Factory selects how plain and secure sockets are produced. The zero
// value uses the platform defaults (net.Dialer for ws/http, tls.Dialer
// for wss/https). Fields are read during Resolve without locking;
// callers that mutate them must serialize against in-flight calls.
type Factory struct {
	// Plain overrides the socket factory for ws/http endpoints.
	Plain SocketFactory
	// Secure overrides the socket factory for wss/https endpoints.
	Secure SocketFactory
	// TLSConfig takes precedence over Secure: when set, the secure
	// socket comes from a tls.Dialer derived from it. The config is
	// cloned before use and never mutated.
	TLSConfig *tls.Config
}

// Target is a resolved, connected endpoint. The caller owns Conn.
type Target struct {
	Conn net.Conn
	// HostHeader is the host:port value for the Host header.
	HostHeader string
	// RequestPath is the path[?query] value for the request line.
	RequestPath string
	// UserInfo is the user-info component, passed through untouched.
	UserInfo string
	// Host and Port are the dialed address parts.
	Host string
	Port int
	// Secure reports whether Conn is TLS-wrapped.
	Secure bool
}

// Resolve parses a raw endpoint reference and dials it.
func (f *Factory) Resolve(ctx context.Context, raw string) (*Target, error) {
	ep, err := endpoint.Parse(raw)
	if err != nil {
		return nil, err
	}
	return f.ResolveEndpoint(ctx, ep)
}

// ResolveURL dials an already-parsed URL.
func (f *Factory) ResolveURL(ctx context.Context, u *url.URL) (*Target, error) {
	ep, err := endpoint.FromURL(u)
	if err != nil {
		return nil, err
	}
	return f.ResolveEndpoint(ctx, ep)
}

// ResolveEndpoint dials a canonical endpoint tuple. Validation runs
// before any socket is opened; a dial failure is returned unchanged and
// never alongside a connection.
func (f *Factory) ResolveEndpoint(ctx context.Context, ep endpoint.Endpoint) (*Target, error) {
	target, err := prepare(ep)
	if err != nil {
		return nil, err
	}

	dial := f.socketFactory(target.Secure, target.Host)
	conn, err := dial(ctx, "tcp", target.HostHeader)
	if err != nil {
		return nil, err
	}
	target.Conn = conn
	return target, nil
}

// Describe runs the resolution pipeline without opening a socket. The
// returned target carries the assembled addressing; Conn is nil.
func Describe(raw string) (*Target, error) {
	ep, err := endpoint.Parse(raw)
	if err != nil {
		return nil, err
	}
	return prepare(ep)
}

// prepare validates an endpoint tuple and assembles the addressing
// strings a dial needs.
func prepare(ep endpoint.Endpoint) (*Target, error) {
	secure, err := endpoint.Secure(ep.Scheme)
	if err != nil {
		return nil, err
	}
	if ep.Host == "" {
		return nil, fmt.Errorf("%w: the host part is empty", endpoint.ErrInvalid)
	}

	path := endpoint.NormalizePath(ep.Path)
	port := endpoint.ResolvePort(ep.Port, secure)

	requestPath := path
	if ep.RawQuery != "" {
		requestPath = path + "?" + ep.RawQuery
	}

	return &Target{
		HostHeader:  net.JoinHostPort(ep.Host, strconv.Itoa(port)),
		RequestPath: requestPath,
		UserInfo:    ep.UserInfo,
		Host:        ep.Host,
		Port:        port,
		Secure:      secure,
	}, nil
}

// socketFactory picks the factory for one dial. Secure precedence:
// TLSConfig, then the Secure override, then a default tls.Dialer.
// Plain precedence: the Plain override, then a default net.Dialer.
func (f *Factory) socketFactory(secure bool, host string) SocketFactory {
	if !secure {
		if f.Plain != nil {
			return f.Plain
		}
		var d net.Dialer
		return d.DialContext
	}

	if f.TLSConfig != nil {
		cfg := f.TLSConfig.Clone()
		if cfg.ServerName == "" {
			cfg.ServerName = host
		}
		td := &tls.Dialer{Config: cfg}
		return td.DialContext
	}
	if f.Secure != nil {
		return f.Secure
	}
	td := &tls.Dialer{}
	return td.DialContext
}
