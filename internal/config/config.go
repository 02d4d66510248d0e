package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration for wsdial.
type Config struct {
	Client ClientConfig `mapstructure:"client" yaml:"client"`
	Server ServerConfig `mapstructure:"server" yaml:"server"`
}

// ClientConfig configures endpoint resolution defaults.
type ClientConfig struct {
	Endpoint string          `mapstructure:"endpoint" yaml:"endpoint"`
	TLS      ClientTLSConfig `mapstructure:"tls" yaml:"tls"`
	LogFile  string          `mapstructure:"log_file" yaml:"log_file"`
}

// ClientTLSConfig configures the secure context for wss dials.
type ClientTLSConfig struct {
	CAFiles  []string `mapstructure:"ca_files" yaml:"ca_files"`
	CADir    string   `mapstructure:"ca_dir" yaml:"ca_dir"`
	Insecure bool     `mapstructure:"insecure" yaml:"insecure"`
}

// ServerConfig configures the diagnostic echo server.
type ServerConfig struct {
	Listen   string    `mapstructure:"listen" yaml:"listen"`
	BasePath string    `mapstructure:"base" yaml:"base"`
	TLS      TLSConfig `mapstructure:"tls" yaml:"tls"`
}

// TLSConfig configures TLS behavior for the echo server.
type TLSConfig struct {
	Mode     string   `mapstructure:"mode" yaml:"mode"`
	Bundle   []string `mapstructure:"bundle" yaml:"bundle"`
	Hostname string   `mapstructure:"hostname" yaml:"hostname"`
	Dir      string   `mapstructure:"dir" yaml:"dir"`
	CacheDir string   `mapstructure:"cache_dir" yaml:"cache_dir"`
}

// Loader wraps Viper configuration loading for wsdial.
type Loader struct {
	v          *viper.Viper
	configFile string
}

// NewLoader initializes a Loader with standard defaults.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix("WSDIAL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/wsdial")
	v.AddConfigPath("$HOME/.wsdial")

	return &Loader{v: v}
}

// Viper exposes the underlying Viper instance for flag binding and defaults.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// SetConfigFile sets an explicit config file path.
func (l *Loader) SetConfigFile(path string) {
	l.configFile = strings.TrimSpace(path)
}

// ReadInConfig reads configuration from file if available.
func (l *Loader) ReadInConfig() error {
	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// Load reads configuration and unmarshals it into a Config struct.
func (l *Loader) Load() (Config, error) {
	if err := l.ReadInConfig(); err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
