package wsdial

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/coder/websocket"

	"pkt.systems/wsdial/internal/server"
)

func TestConnectEchoOverWS(t *testing.T) {
	srv := httptest.NewServer(server.EchoHandler(nil))
	defer srv.Close()

	endpoint := "ws" + strings.TrimPrefix(srv.URL, "http") + EchoPath
	conn, target, err := Connect(t.Context(), ConnectOptions{Endpoint: endpoint})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer conn.CloseNow()

	if target.Secure {
		t.Fatalf("Secure = true, want false")
	}
	if target.RequestPath != EchoPath {
		t.Fatalf("RequestPath = %q, want %q", target.RequestPath, EchoPath)
	}

	want := []byte("resolved and connected")
	if err := conn.Write(t.Context(), websocket.MessageText, want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	_, got, err := conn.Read(t.Context())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != string(want) {
		t.Fatalf("echo = %q, want %q", got, want)
	}

	if err := conn.Close(websocket.StatusNormalClosure, "done"); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestConnectEchoOverWSS(t *testing.T) {
	srv := httptest.NewTLSServer(server.EchoHandler(nil))
	defer srv.Close()

	pool := x509.NewCertPool()
	pool.AddCert(srv.Certificate())
	factory := &Factory{TLSConfig: &tls.Config{
		MinVersion: tls.VersionTLS12,
		RootCAs:    pool,
	}}

	endpoint := "wss" + strings.TrimPrefix(srv.URL, "https") + EchoPath
	conn, target, err := Connect(t.Context(), ConnectOptions{
		Endpoint: endpoint,
		Factory:  factory,
	})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer conn.CloseNow()

	if !target.Secure {
		t.Fatalf("Secure = false, want true")
	}

	want := []byte("over tls")
	if err := conn.Write(t.Context(), websocket.MessageBinary, want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	_, got, err := conn.Read(t.Context())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != string(want) {
		t.Fatalf("echo = %q, want %q", got, want)
	}

	if err := conn.Close(websocket.StatusNormalClosure, "done"); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestConnectRejectsBadScheme(t *testing.T) {
	_, _, err := Connect(t.Context(), ConnectOptions{Endpoint: "ftp://example.com"})
	if !errors.Is(err, ErrInvalidEndpoint) {
		t.Fatalf("error = %v, want ErrInvalidEndpoint", err)
	}
}

func TestResolveRejectsEmptyHost(t *testing.T) {
	_, err := Resolve(t.Context(), "ws://")
	if !errors.Is(err, ErrInvalidEndpoint) {
		t.Fatalf("error = %v, want ErrInvalidEndpoint", err)
	}
}
