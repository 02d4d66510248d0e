package wsdial

import "pkt.systems/wsdial/internal/config"

// Config mirrors the wsdial configuration.
type Config = config.Config

// ClientConfig configures endpoint resolution defaults.
type ClientConfig = config.ClientConfig

// ClientTLSConfig configures the client-side secure context.
type ClientTLSConfig = config.ClientTLSConfig

// ServerConfig configures the diagnostic echo server.
type ServerConfig = config.ServerConfig

// TLSConfig configures TLS for the echo server.
type TLSConfig = config.TLSConfig

// Loader wraps configuration loading via Viper.
type Loader = config.Loader

const (
	// DefaultConfigDirName is the directory name under the home directory.
	DefaultConfigDirName = config.DefaultConfigDirName
	// DefaultConfigFileName is the default config file name.
	DefaultConfigFileName = config.DefaultConfigFileName
	// DefaultTLSDirName is the TLS directory name under the config directory.
	DefaultTLSDirName = config.DefaultTLSDirName
	// DefaultTLSCacheDirName is the ACME cache directory name under the TLS directory.
	DefaultTLSCacheDirName = config.DefaultTLSCacheDirName
	// DefaultLogFileName is the default client log file name.
	DefaultLogFileName = config.DefaultLogFileName

	// DefaultListenAddr is the default echo server listen address.
	DefaultListenAddr = config.DefaultListenAddr
	// DefaultBasePath is the default HTTP base path.
	DefaultBasePath = config.DefaultBasePath
	// DefaultTLSMode is the default echo server TLS mode.
	DefaultTLSMode = config.DefaultTLSMode
	// DefaultClientEndpoint is the default endpoint to resolve.
	DefaultClientEndpoint = config.DefaultClientEndpoint
	// EchoPath is the echo server's WebSocket path.
	EchoPath = config.EchoPath
)

// NewLoader returns a config loader with defaults wired.
func NewLoader() *config.Loader {
	return config.NewLoader()
}

// DefaultConfig returns default wsdial configuration.
func DefaultConfig() Config {
	return config.DefaultConfig()
}

// DefaultConfigDir returns the default config directory.
func DefaultConfigDir() string {
	return config.DefaultConfigDir()
}

// DefaultConfigPath returns the default config path.
func DefaultConfigPath() string {
	return config.DefaultConfigPath()
}

// DefaultLogPath returns the default client log file path.
func DefaultLogPath() string {
	return config.DefaultLogPath()
}

// DefaultTLSDir returns the default TLS directory.
func DefaultTLSDir() string {
	return config.DefaultTLSDir()
}

// DefaultTLSCacheDir returns the default TLS cache directory.
func DefaultTLSCacheDir() string {
	return config.DefaultTLSCacheDir()
}
