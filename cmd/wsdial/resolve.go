package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"pkt.systems/prettyx"
	"pkt.systems/pslog"
	"pkt.systems/wsdial"
)

type resolveReport struct {
	Secure      bool   `json:"secure"`
	Host        string `json:"host"`
	Port        int    `json:"port"`
	HostHeader  string `json:"host_header"`
	RequestPath string `json:"request_path"`
	UserInfo    string `json:"user_info,omitempty"`
	RemoteAddr  string `json:"remote_addr,omitempty"`
}

// NewResolveCommand builds the endpoint resolution command.
func NewResolveCommand(loader *wsdial.Loader) *cobra.Command {
	var dial bool
	var timeout time.Duration
	var insecure bool
	var caFiles []string
	var caDir string

	cmd := &cobra.Command{
		Use:   "resolve <endpoint>",
		Short: "Resolve an endpoint reference, optionally dialing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var target *wsdial.Target
			if dial {
				cfg, err := loader.Load()
				if err != nil {
					return err
				}
				tlsCfg, err := clientTLSConfig(cmd, cfg, insecure, caFiles, caDir)
				if err != nil {
					return err
				}
				factory := &wsdial.Factory{TLSConfig: tlsCfg}

				ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
				defer cancel()
				target, err = factory.Resolve(ctx, args[0])
				if err != nil {
					return err
				}
			} else {
				var err error
				target, err = wsdial.Describe(args[0])
				if err != nil {
					return err
				}
			}

			report := resolveReport{
				Secure:      target.Secure,
				Host:        target.Host,
				Port:        target.Port,
				HostHeader:  target.HostHeader,
				RequestPath: target.RequestPath,
				UserInfo:    target.UserInfo,
			}
			if target.Conn != nil {
				report.RemoteAddr = target.Conn.RemoteAddr().String()
				if err := target.Conn.Close(); err != nil {
					pslog.Ctx(cmd.Context()).Warn("failed to close probe socket", "err", err)
				}
			}

			data, err := json.Marshal(report)
			if err != nil {
				return err
			}
			return prettyx.PrettyTo(cmd.OutOrStdout(), data, prettyx.DefaultOptions)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&dial, "dial", false, "open the socket instead of a dry run")
	flags.DurationVar(&timeout, "timeout", 10*time.Second, "dial timeout")
	flags.BoolVarP(&insecure, "insecure", "k", false, "skip TLS certificate verification")
	flags.StringArrayVar(&caFiles, "ca", nil, "path to a CA certificate PEM file (repeatable)")
	flags.StringVar(&caDir, "ca-dir", "", "directory holding a local ca.pem")

	return cmd
}
