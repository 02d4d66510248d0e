package config

// DefaultConfig returns the default configuration values.
func DefaultConfig() Config {
	return Config{
		Client: ClientConfig{
			Endpoint: DefaultClientEndpoint,
			TLS: ClientTLSConfig{
				CADir: DefaultTLSDir(),
			},
			LogFile: DefaultLogPath(),
		},
		Server: ServerConfig{
			Listen:   DefaultListenAddr,
			BasePath: DefaultBasePath,
			TLS: TLSConfig{
				Mode:     DefaultTLSMode,
				Dir:      DefaultTLSDir(),
				CacheDir: DefaultTLSCacheDir(),
			},
		},
	}
}
