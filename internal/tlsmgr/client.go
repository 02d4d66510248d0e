package tlsmgr

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"path/filepath"
)

// ClientTLS configures the secure context used when dialing wss/https
// endpoints.
type ClientTLS struct {
	// CAFiles are extra PEM files appended to the root pool.
	CAFiles []string
	// CADir, when set, contributes its local CA cert (if present).
	CADir string
	// Insecure disables certificate verification.
	Insecure bool
}

// BuildClientTLSConfig builds the dialer's secure context. It returns
// nil when nothing customizes the platform default, so the caller can
// fall through to the default secure socket factory.
func BuildClientTLSConfig(cfg ClientTLS) (*tls.Config, error) {
	if cfg.Insecure {
		return &tls.Config{
			MinVersion:         tls.VersionTLS12,
			InsecureSkipVerify: true,
		}, nil
	}
	if len(cfg.CAFiles) == 0 && cfg.CADir == "" {
		return nil, nil
	}

	pool, err := LoadLocalCARoots(cfg.CADir, nil)
	if err != nil {
		return nil, err
	}
	for _, file := range cfg.CAFiles {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		if ok := pool.AppendCertsFromPEM(data); !ok {
			return nil, fmt.Errorf("no certificates found in %s", file)
		}
	}

	return &tls.Config{
		MinVersion: tls.VersionTLS12,
		RootCAs:    pool,
	}, nil
}

// LoadLocalCARoots loads the local CA cert into the provided pool (or a
// copy of the system pool). A missing CA file is not an error; an empty
// dir contributes nothing.
func LoadLocalCARoots(dir string, pool *x509.CertPool) (*x509.CertPool, error) {
	if pool == nil {
		systemPool, err := x509.SystemCertPool()
		if err != nil || systemPool == nil {
			pool = x509.NewCertPool()
		} else {
			pool = systemPool
		}
	}
	if dir == "" {
		return pool, nil
	}
	data, err := os.ReadFile(filepath.Join(dir, caCertFilename))
	if err != nil {
		if os.IsNotExist(err) {
			return pool, nil
		}
		return nil, err
	}
	if ok := pool.AppendCertsFromPEM(data); !ok {
		return nil, fmt.Errorf("failed to parse ca cert")
	}
	return pool, nil
}
