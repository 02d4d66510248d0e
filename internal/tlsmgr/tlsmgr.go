// Package tlsmgr manages the TLS material wsdial works with: the
// client-side secure context for wss dials, and the certificates the
// diagnostic echo server presents.
package tlsmgr

import (
	"context"
	"crypto/tls"
	"encoding/pem"
	"errors"
	"fmt"
	"os"

	"golang.org/x/crypto/acme"
	"golang.org/x/crypto/acme/autocert"
	"pkt.systems/pslog"
)

// Mode selects how server TLS is configured.
type Mode string

const (
	// ModeNone disables TLS; the echo server speaks plain ws.
	ModeNone Mode = "none"
	// ModeAuto generates or loads local TLS assets.
	ModeAuto Mode = "auto"
	// ModeBundle loads TLS assets from PEM bundle files.
	ModeBundle Mode = "bundle"
	// ModeACME uses ACME (TLS-ALPN-01) to obtain certificates.
	ModeACME Mode = "acme"
)

// Config configures server TLS behavior.
type Config struct {
	Mode        Mode
	BundleFiles []string
	Hostname    string
	Dir         string
	CacheDir    string
}

// ResolveMode chooses a TLS mode based on config inputs.
func ResolveMode(cfg Config) (Mode, error) {
	if cfg.Mode != "" {
		return cfg.Mode, nil
	}
	if len(cfg.BundleFiles) > 0 {
		return ModeBundle, nil
	}
	return ModeAuto, nil
}

// BuildServerTLSConfig builds the echo server's TLS config. It returns
// nil for ModeNone.
func BuildServerTLSConfig(ctx context.Context, cfg Config, logger pslog.Logger) (*tls.Config, error) {
	mode, err := ResolveMode(cfg)
	if err != nil {
		return nil, err
	}

	switch mode {
	case ModeNone:
		return nil, nil
	case ModeBundle:
		if len(cfg.BundleFiles) == 0 {
			return nil, fmt.Errorf("tls bundle mode requires at least one bundle file")
		}
		cert, err := LoadBundle(cfg.BundleFiles)
		if err != nil {
			return nil, err
		}
		return &tls.Config{
			MinVersion:   tls.VersionTLS12,
			Certificates: []tls.Certificate{cert},
		}, nil
	case ModeACME:
		if cfg.Hostname == "" {
			return nil, fmt.Errorf("acme mode requires --tls-hostname")
		}
		cacheDir := cfg.CacheDir
		if cacheDir == "" {
			return nil, fmt.Errorf("acme mode requires tls cache dir")
		}
		if err := os.MkdirAll(cacheDir, 0o700); err != nil {
			return nil, err
		}
		manager := autocert.Manager{
			Prompt:     autocert.AcceptTOS,
			Cache:      autocert.DirCache(cacheDir),
			HostPolicy: autocert.HostWhitelist(cfg.Hostname),
		}
		if logger != nil {
			logger.Info("acme tls enabled", "hostname", cfg.Hostname, "cache_dir", cacheDir)
		}
		return &tls.Config{
			MinVersion:     tls.VersionTLS12,
			GetCertificate: manager.GetCertificate,
			NextProtos:     []string{acme.ALPNProto, "h2", "http/1.1"},
		}, nil
	case ModeAuto:
		if cfg.Dir == "" {
			return nil, fmt.Errorf("auto tls mode requires tls dir")
		}
		cert, err := EnsureLocalServerCert(ctx, cfg.Dir, cfg.Hostname, logger)
		if err != nil {
			return nil, err
		}
		return &tls.Config{
			MinVersion:   tls.VersionTLS12,
			Certificates: []tls.Certificate{cert},
		}, nil
	default:
		return nil, fmt.Errorf("unsupported tls mode: %s", cfg.Mode)
	}
}

// LoadBundle loads the first certificate chain and key from one or more
// PEM files.
func LoadBundle(files []string) (tls.Certificate, error) {
	var certBlocks [][]byte
	var keyBlock *pem.Block

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return tls.Certificate{}, err
		}
		for {
			var block *pem.Block
			block, data = pem.Decode(data)
			if block == nil {
				break
			}
			switch block.Type {
			case "CERTIFICATE":
				certBlocks = append(certBlocks, pem.EncodeToMemory(block))
			case "PRIVATE KEY", "RSA PRIVATE KEY", "EC PRIVATE KEY":
				if keyBlock == nil {
					keyBlock = block
				}
			}
		}
	}

	if len(certBlocks) == 0 {
		return tls.Certificate{}, fmt.Errorf("no certificates found in tls bundle")
	}
	if keyBlock == nil {
		return tls.Certificate{}, fmt.Errorf("no private key found in tls bundle")
	}

	certPEM := []byte{}
	for _, block := range certBlocks {
		certPEM = append(certPEM, block...)
	}
	keyPEM := pem.EncodeToMemory(keyBlock)

	cert, err := tls.X509KeyPair(certPEM, keyPEM)
	if err != nil {
		return tls.Certificate{}, err
	}
	return cert, nil
}

func ensureLogger(logger pslog.Logger) pslog.Logger {
	if logger != nil {
		return logger
	}
	return pslog.LoggerFromEnv()
}

func wrapMissing(err error, hint string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s: %w", hint, err)
	}
	return err
}
