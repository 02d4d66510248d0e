package wsdial

import (
	"context"
	"net"
	"net/http"

	"github.com/coder/websocket"

	"pkt.systems/wsdial/internal/dialer"
)

// ConnectOptions configures a full client connection: resolve the
// endpoint, dial the socket, then complete the WebSocket handshake over
// that socket.
type ConnectOptions struct {
	// Endpoint is the reference to resolve (ws, wss, http, https).
	Endpoint string
	// Factory overrides socket production; nil uses platform defaults.
	Factory *Factory
	// Header is sent with the handshake request.
	Header http.Header
	// Subprotocols are offered during the handshake.
	Subprotocols []string
}

// Connect resolves an endpoint and performs the WebSocket opening
// handshake on the already-connected socket. The handshake transport is
// pinned to the resolver's socket and never dials on its own.
func Connect(ctx context.Context, opts ConnectOptions) (*websocket.Conn, *Target, error) {
	factory := opts.Factory
	if factory == nil {
		factory = &dialer.Factory{}
	}

	target, err := factory.Resolve(ctx, opts.Endpoint)
	if err != nil {
		return nil, nil, err
	}

	scheme := "ws"
	if target.Secure {
		scheme = "wss"
	}
	handshakeURL := scheme + "://" + target.HostHeader + target.RequestPath

	pinned := func(context.Context, string, string) (net.Conn, error) {
		return target.Conn, nil
	}
	transport := &http.Transport{
		DialContext: pinned,
		// The resolver already completed TLS for wss; return the
		// wrapped socket as-is instead of negotiating again.
		DialTLSContext: pinned,
	}

	conn, resp, err := websocket.Dial(ctx, handshakeURL, &websocket.DialOptions{
		HTTPClient:   &http.Client{Transport: transport},
		HTTPHeader:   opts.Header,
		Subprotocols: opts.Subprotocols,
	})
	if resp != nil && resp.Body != nil {
		defer func() { _ = resp.Body.Close() }()
	}
	if err != nil {
		_ = target.Conn.Close()
		return nil, nil, err
	}
	return conn, target, nil
}
