package main

import (
	"crypto/tls"

	"github.com/spf13/cobra"

	"pkt.systems/wsdial"
)

// clientTLSConfig merges the configured client TLS settings with flag
// overrides and builds the secure context. A nil config means the
// platform default verifier applies.
func clientTLSConfig(cmd *cobra.Command, cfg wsdial.Config, insecure bool, caFiles []string, caDir string) (*tls.Config, error) {
	clientTLS := wsdial.ClientTLS{
		CAFiles:  cfg.Client.TLS.CAFiles,
		CADir:    cfg.Client.TLS.CADir,
		Insecure: cfg.Client.TLS.Insecure,
	}
	if cmd.Flags().Changed("ca") {
		clientTLS.CAFiles = caFiles
	}
	if cmd.Flags().Changed("ca-dir") {
		clientTLS.CADir = caDir
	}
	if insecure {
		clientTLS.Insecure = true
	}
	return wsdial.BuildClientTLSConfig(clientTLS)
}
