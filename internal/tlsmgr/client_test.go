package tlsmgr

import (
	"path/filepath"
	"testing"
)

func TestLoadLocalCARootsMissing(t *testing.T) {
	dir := t.TempDir()
	pool, err := LoadLocalCARoots(dir, nil)
	if err != nil {
		t.Fatalf("LoadLocalCARoots: %v", err)
	}
	if pool == nil {
		t.Fatalf("expected cert pool")
	}
}

func TestLoadLocalCARoots(t *testing.T) {
	dir := t.TempDir()
	if err := GenerateCA(t.Context(), dir, nil); err != nil {
		t.Fatalf("GenerateCA: %v", err)
	}
	pool, err := LoadLocalCARoots(dir, nil)
	if err != nil {
		t.Fatalf("LoadLocalCARoots: %v", err)
	}
	if pool == nil {
		t.Fatalf("expected cert pool")
	}
}

func TestBuildClientTLSConfigDefault(t *testing.T) {
	cfg, err := BuildClientTLSConfig(ClientTLS{})
	if err != nil {
		t.Fatalf("BuildClientTLSConfig: %v", err)
	}
	if cfg != nil {
		t.Fatalf("expected nil config when nothing is customized")
	}
}

func TestBuildClientTLSConfigInsecure(t *testing.T) {
	cfg, err := BuildClientTLSConfig(ClientTLS{Insecure: true})
	if err != nil {
		t.Fatalf("BuildClientTLSConfig: %v", err)
	}
	if cfg == nil || !cfg.InsecureSkipVerify {
		t.Fatalf("expected InsecureSkipVerify config, got %+v", cfg)
	}
}

func TestBuildClientTLSConfigFromCADir(t *testing.T) {
	dir := t.TempDir()
	if err := GenerateCA(t.Context(), dir, nil); err != nil {
		t.Fatalf("GenerateCA: %v", err)
	}
	cfg, err := BuildClientTLSConfig(ClientTLS{CADir: dir})
	if err != nil {
		t.Fatalf("BuildClientTLSConfig: %v", err)
	}
	if cfg == nil || cfg.RootCAs == nil {
		t.Fatalf("expected config with root pool")
	}
}

func TestBuildClientTLSConfigFromCAFile(t *testing.T) {
	dir := t.TempDir()
	if err := GenerateCA(t.Context(), dir, nil); err != nil {
		t.Fatalf("GenerateCA: %v", err)
	}
	cfg, err := BuildClientTLSConfig(ClientTLS{CAFiles: []string{filepath.Join(dir, caCertFilename)}})
	if err != nil {
		t.Fatalf("BuildClientTLSConfig: %v", err)
	}
	if cfg == nil || cfg.RootCAs == nil {
		t.Fatalf("expected config with root pool")
	}
}

func TestBuildClientTLSConfigBadCAFile(t *testing.T) {
	_, err := BuildClientTLSConfig(ClientTLS{CAFiles: []string{filepath.Join(t.TempDir(), "missing.pem")}})
	if err == nil {
		t.Fatalf("expected error for missing CA file")
	}
}
