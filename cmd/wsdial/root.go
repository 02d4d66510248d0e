package main

import (
	"github.com/spf13/cobra"

	"pkt.systems/wsdial"
)

// NewRootCommand builds the root CLI command.
func NewRootCommand(loader *wsdial.Loader) *cobra.Command {
	var configFile string

	v := loader.Viper()
	v.SetDefault("client.endpoint", wsdial.DefaultClientEndpoint)
	v.SetDefault("client.log_file", wsdial.DefaultLogPath())

	cmd := &cobra.Command{
		Use:   "wsdial",
		Short: "Resolve and dial WebSocket endpoints",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if configFile != "" {
				loader.SetConfigFile(configFile)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	cmd.AddCommand(NewResolveCommand(loader))
	cmd.AddCommand(NewConnectCommand(loader))
	cmd.AddCommand(NewServeCommand(loader))
	cmd.AddCommand(NewTLSCommand())
	cmd.AddCommand(NewConfigCommand(loader))

	return cmd
}
