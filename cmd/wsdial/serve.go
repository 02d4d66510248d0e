package main

import (
	"github.com/spf13/cobra"

	"pkt.systems/pslog"
	"pkt.systems/wsdial"
)

// NewServeCommand builds the echo server command.
func NewServeCommand(loader *wsdial.Loader) *cobra.Command {
	v := loader.Viper()
	v.SetDefault("server.listen", wsdial.DefaultListenAddr)
	v.SetDefault("server.base", wsdial.DefaultBasePath)
	v.SetDefault("server.tls.mode", wsdial.DefaultTLSMode)
	v.SetDefault("server.tls.dir", wsdial.DefaultTLSDir())
	v.SetDefault("server.tls.cache_dir", wsdial.DefaultTLSCacheDir())

	var bindErr error

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the wsdial echo server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if bindErr != nil {
				return bindErr
			}
			cfg, err := loader.Load()
			if err != nil {
				return err
			}

			logger := pslog.Ctx(cmd.Context()).With("component", "serve")
			return wsdial.Serve(cmd.Context(), wsdial.ServeOptions{
				Config: cfg,
				Logger: logger,
			})
		},
	}

	flags := cmd.Flags()
	flags.String("listen", wsdial.DefaultListenAddr, "listen address for the echo server")
	flags.String("base", wsdial.DefaultBasePath, "base path prefix for all HTTP routes")
	flags.String("tls-mode", wsdial.DefaultTLSMode, "tls mode: none, auto, bundle, or acme")
	flags.StringArray("tls-bundle", nil, "path to PEM bundle file (repeatable)")
	flags.String("tls-dir", wsdial.DefaultTLSDir(), "tls directory")
	flags.String("tls-cache-dir", wsdial.DefaultTLSCacheDir(), "tls cache directory for acme")
	flags.String("tls-hostname", "", "hostname for acme or server cert")

	bind := func(key, name string) {
		if bindErr != nil {
			return
		}
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			bindErr = err
		}
	}

	bind("server.listen", "listen")
	bind("server.base", "base")
	bind("server.tls.mode", "tls-mode")
	bind("server.tls.bundle", "tls-bundle")
	bind("server.tls.dir", "tls-dir")
	bind("server.tls.cache_dir", "tls-cache-dir")
	bind("server.tls.hostname", "tls-hostname")

	return cmd
}
