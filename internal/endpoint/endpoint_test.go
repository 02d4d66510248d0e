package endpoint

import (
	"errors"
	"net/url"
	"testing"
)

func TestSecureSchemes(t *testing.T) {
	for _, scheme := range []string{"wss", "WSS", "https", "HtTpS"} {
		secure, err := Secure(scheme)
		if err != nil {
			t.Fatalf("Secure(%q): %v", scheme, err)
		}
		if !secure {
			t.Fatalf("Secure(%q) = false, want true", scheme)
		}
	}
	for _, scheme := range []string{"ws", "WS", "http", "HTTP"} {
		secure, err := Secure(scheme)
		if err != nil {
			t.Fatalf("Secure(%q): %v", scheme, err)
		}
		if secure {
			t.Fatalf("Secure(%q) = true, want false", scheme)
		}
	}
}

func TestSecureRejectsUnknownScheme(t *testing.T) {
	for _, scheme := range []string{"ftp", "wss ", "websocket", "tcp"} {
		_, err := Secure(scheme)
		if err == nil {
			t.Fatalf("Secure(%q) succeeded, want error", scheme)
		}
		if !errors.Is(err, ErrInvalid) {
			t.Fatalf("Secure(%q) error = %v, want ErrInvalid", scheme, err)
		}
	}
}

func TestSecureRejectsEmptyScheme(t *testing.T) {
	_, err := Secure("")
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Secure(\"\") error = %v, want ErrInvalid", err)
	}
}

func TestNormalizePath(t *testing.T) {
	cases := map[string]string{
		"":       "/",
		"/":      "/",
		"/a/b":   "/a/b",
		"a/b":    "/a/b",
		"chat":   "/chat",
		"/chat/": "/chat/",
	}
	for in, want := range cases {
		if got := NormalizePath(in); got != want {
			t.Fatalf("NormalizePath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestResolvePortExplicitWins(t *testing.T) {
	for _, port := range []int{0, 80, 443, 9443, 65535} {
		if got := ResolvePort(port, true); got != port {
			t.Fatalf("ResolvePort(%d, secure) = %d, want %d", port, got, port)
		}
		if got := ResolvePort(port, false); got != port {
			t.Fatalf("ResolvePort(%d, plain) = %d, want %d", port, got, port)
		}
	}
}

func TestResolvePortDefaults(t *testing.T) {
	if got := ResolvePort(PortUnset, true); got != 443 {
		t.Fatalf("ResolvePort(unset, secure) = %d, want 443", got)
	}
	if got := ResolvePort(PortUnset, false); got != 80 {
		t.Fatalf("ResolvePort(unset, plain) = %d, want 80", got)
	}
}

func TestParse(t *testing.T) {
	ep, err := Parse("wss://user:pw@example.com:9443/socket?x=1")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if ep.Scheme != "wss" {
		t.Fatalf("Scheme = %q, want wss", ep.Scheme)
	}
	if ep.UserInfo != "user:pw" {
		t.Fatalf("UserInfo = %q, want user:pw", ep.UserInfo)
	}
	if ep.Host != "example.com" {
		t.Fatalf("Host = %q, want example.com", ep.Host)
	}
	if ep.Port != 9443 {
		t.Fatalf("Port = %d, want 9443", ep.Port)
	}
	if ep.Path != "/socket" {
		t.Fatalf("Path = %q, want /socket", ep.Path)
	}
	if ep.RawQuery != "x=1" {
		t.Fatalf("RawQuery = %q, want x=1", ep.RawQuery)
	}
}

func TestParsePortUnset(t *testing.T) {
	ep, err := Parse("ws://example.com/chat")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if ep.Port != PortUnset {
		t.Fatalf("Port = %d, want PortUnset", ep.Port)
	}
}

func TestParseEmptyReference(t *testing.T) {
	for _, raw := range []string{"", "   "} {
		_, err := Parse(raw)
		if !errors.Is(err, ErrInvalid) {
			t.Fatalf("Parse(%q) error = %v, want ErrInvalid", raw, err)
		}
	}
}

func TestParseMalformedReference(t *testing.T) {
	_, err := Parse("ws://example.com:badport/chat")
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Parse error = %v, want ErrInvalid", err)
	}
}

func TestFromURLNil(t *testing.T) {
	_, err := FromURL(nil)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("FromURL(nil) error = %v, want ErrInvalid", err)
	}
}

func TestFromURLKeepsEmptyHost(t *testing.T) {
	u, err := url.Parse("ws://")
	if err != nil {
		t.Fatalf("url.Parse: %v", err)
	}
	ep, err := FromURL(u)
	if err != nil {
		t.Fatalf("FromURL: %v", err)
	}
	if ep.Host != "" {
		t.Fatalf("Host = %q, want empty", ep.Host)
	}
}
