package config

const (
	// DefaultConfigDirName is the directory name under the home directory.
	DefaultConfigDirName = ".wsdial"
	// DefaultConfigFileName is the default config file name.
	DefaultConfigFileName = "config.yaml"
	// DefaultTLSDirName is the TLS directory name under the config directory.
	DefaultTLSDirName = "tls"
	// DefaultTLSCacheDirName is the ACME cache directory name under the TLS directory.
	DefaultTLSCacheDirName = "cache"
	// DefaultLogFileName is the default client log file name.
	DefaultLogFileName = "wsdial.log"

	// DefaultListenAddr is the default echo server listen address.
	DefaultListenAddr = "127.0.0.1:12980"
	// DefaultBasePath is the default HTTP base path.
	DefaultBasePath = "/"
	// DefaultTLSMode is the default echo server TLS mode.
	DefaultTLSMode = "auto"
	// DefaultClientEndpoint is the default endpoint to resolve.
	DefaultClientEndpoint = "wss://localhost:12980/ws"
	// EchoPath is the echo server's WebSocket path.
	EchoPath = "/ws"
)
