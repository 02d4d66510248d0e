package wsdial

import (
	"context"
	"strings"
	"time"

	"pkt.systems/pslog"
	"pkt.systems/wsdial/internal/server"
	"pkt.systems/wsdial/internal/tlsmgr"
)

// ServeOptions configures the diagnostic echo server run.
type ServeOptions struct {
	Config Config
	Logger pslog.Logger
}

// Serve runs the wsdial echo server until it fails or the listener is
// torn down. With TLS mode "none" it serves plain ws.
func Serve(ctx context.Context, opts ServeOptions) error {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = pslog.LoggerFromEnv()
	}

	base, err := server.NormalizeBasePath(cfg.Server.BasePath)
	if err != nil {
		return err
	}

	tlsCfg, err := tlsmgr.BuildServerTLSConfig(
		ctx,
		tlsmgr.Config{
			Mode:        tlsmgr.Mode(strings.ToLower(cfg.Server.TLS.Mode)),
			BundleFiles: cfg.Server.TLS.Bundle,
			Hostname:    cfg.Server.TLS.Hostname,
			Dir:         cfg.Server.TLS.Dir,
			CacheDir:    cfg.Server.TLS.CacheDir,
		},
		logger,
	)
	if err != nil {
		return err
	}

	srvCfg := server.Config{
		ListenAddr: cfg.Server.Listen,
		BasePath:   base,
		TLSConfig:  tlsCfg,
		Logger:     logger.With("component", "http"),
		// No ReadTimeout/WriteTimeout so long-lived connections survive.
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	handler := server.WrapBasePath(base, server.EchoHandler(logger.With("component", "echo")))
	handler = server.AccessLog(logger.With("component", "access"), handler)
	srv := server.NewServer(srvCfg, handler)

	logger.Info("starting echo server", "listen", srvCfg.ListenAddr, "base", base, "tls_mode", cfg.Server.TLS.Mode)
	if tlsCfg == nil {
		return srv.ListenAndServe()
	}
	return srv.ListenAndServeTLS("", "")
}
