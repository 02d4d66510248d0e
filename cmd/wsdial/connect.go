package main

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pkt.systems/wsdial"
)

// NewConnectCommand builds the interactive WebSocket client command.
func NewConnectCommand(loader *wsdial.Loader) *cobra.Command {
	var endpoint string
	var headers []string
	var subprotocols []string
	var timeout time.Duration
	var insecure bool
	var caFiles []string
	var caDir string

	cmd := &cobra.Command{
		Use:   "connect [endpoint]",
		Short: "Open an interactive WebSocket session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loader.Load()
			if err != nil {
				return err
			}

			endpointValue := endpoint
			if !cmd.Flags().Changed("endpoint") {
				endpointValue = cfg.Client.Endpoint
			}
			if len(args) == 1 {
				endpointValue = args[0]
			}
			if endpointValue == "" {
				return fmt.Errorf("endpoint is required")
			}

			header := http.Header{}
			for _, h := range headers {
				key, value, ok := strings.Cut(h, ":")
				if !ok {
					return fmt.Errorf("invalid header %q, want key:value", h)
				}
				header.Add(strings.TrimSpace(key), strings.TrimSpace(value))
			}

			tlsCfg, err := clientTLSConfig(cmd, cfg, insecure, caFiles, caDir)
			if err != nil {
				return err
			}

			logPath := cfg.Client.LogFile
			if logPath == "" {
				logPath = wsdial.DefaultLogPath()
			}
			logger, closer, err := openClientLogger(logPath)
			if err != nil {
				return err
			}
			defer func() {
				_ = closer.Close()
			}()
			logger = logger.With("component", "connect")

			dialCtx, cancel := context.WithTimeout(cmd.Context(), timeout)
			conn, target, err := wsdial.Connect(dialCtx, wsdial.ConnectOptions{
				Endpoint:     endpointValue,
				Factory:      &wsdial.Factory{TLSConfig: tlsCfg},
				Header:       header,
				Subprotocols: subprotocols,
			})
			cancel()
			if err != nil {
				return err
			}
			defer func() {
				_ = conn.CloseNow()
			}()
			logger.Info("connected", "host", target.HostHeader, "path", target.RequestPath, "secure", target.Secure)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "connected to %s%s\n", target.HostHeader, target.RequestPath)

			ctx := cmd.Context()
			readErr := make(chan error, 1)
			go func() {
				for {
					_, data, err := conn.Read(ctx)
					if err != nil {
						readErr <- err
						return
					}
					fmt.Fprintf(out, "< %s\n", data)
				}
			}()

			lines := make(chan string)
			go func() {
				defer close(lines)
				scanner := bufio.NewScanner(os.Stdin)
				for scanner.Scan() {
					lines <- scanner.Text()
				}
			}()

			interactive := term.IsTerminal(int(os.Stdin.Fd()))
			for {
				if interactive {
					fmt.Fprint(out, "> ")
				}
				select {
				case line, ok := <-lines:
					if !ok {
						logger.Info("input closed, ending session")
						return conn.Close(websocket.StatusNormalClosure, "")
					}
					if line == "" {
						continue
					}
					if err := conn.Write(ctx, websocket.MessageText, []byte(line)); err != nil {
						return err
					}
				case err := <-readErr:
					switch websocket.CloseStatus(err) {
					case websocket.StatusNormalClosure, websocket.StatusGoingAway:
						logger.Info("session closed by peer")
						return nil
					}
					return err
				}
			}
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&endpoint, "endpoint", "e", wsdial.DefaultClientEndpoint, "endpoint to connect to (ws/wss URL)")
	flags.StringArrayVarP(&headers, "header", "H", nil, "handshake header as key:value (repeatable)")
	flags.StringArrayVar(&subprotocols, "subprotocol", nil, "subprotocol to offer (repeatable)")
	flags.DurationVar(&timeout, "timeout", 10*time.Second, "handshake timeout")
	flags.BoolVarP(&insecure, "insecure", "k", false, "skip TLS certificate verification")
	flags.StringArrayVar(&caFiles, "ca", nil, "path to a CA certificate PEM file (repeatable)")
	flags.StringVar(&caDir, "ca-dir", "", "directory holding a local ca.pem")

	return cmd
}
