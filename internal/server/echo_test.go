package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/coder/websocket"
)

func TestEchoHandlerHealthz(t *testing.T) {
	srv := httptest.NewServer(EchoHandler(nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}

func TestEchoHandlerRoundTrip(t *testing.T) {
	srv := httptest.NewServer(EchoHandler(nil))
	defer srv.Close()

	conn, _, err := websocket.Dial(t.Context(), srv.URL+EchoPath, nil)
	if err != nil {
		t.Fatalf("websocket.Dial: %v", err)
	}
	defer conn.CloseNow()

	want := []byte("ping over the wire")
	if err := conn.Write(t.Context(), websocket.MessageText, want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	typ, got, err := conn.Read(t.Context())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if typ != websocket.MessageText {
		t.Fatalf("message type = %v, want text", typ)
	}
	if string(got) != string(want) {
		t.Fatalf("echo = %q, want %q", got, want)
	}

	if err := conn.Close(websocket.StatusNormalClosure, "done"); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestEchoHandlerRejectsPlainGet(t *testing.T) {
	srv := httptest.NewServer(EchoHandler(nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + EchoPath)
	if err != nil {
		t.Fatalf("GET %s: %v", EchoPath, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		t.Fatalf("plain GET should not upgrade, status = %d", resp.StatusCode)
	}
}
