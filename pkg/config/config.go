package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

type AppConfig struct {
	Host           string `mapstructure:"HOST"`
	Port           string `mapstructure:"PORT"`
	ServiceName    string `mapstructure:"SERVICE_NAME"`
	AppVersion     string `mapstructure:"APP_VERSION"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
	LogDevelopment bool   `mapstructure:"LOG_DEVELOPMENT"`
	TLSEnabled     bool   `mapstructure:"TLS_ENABLED"`
	TLSSelfSigned  bool   `mapstructure:"TLS_SELF_SIGNED"`
	TLSCertFile    string `mapstructure:"TLS_CERT_FILE"`
	TLSKeyFile     string `mapstructure:"TLS_KEY_FILE"`
	TLSHosts       string `mapstructure:"TLS_HOSTS"`
	GRPCEnabled    bool   `mapstructure:"GRPC_ENABLED"`
	GRPCPort       string `mapstructure:"GRPC_PORT"`
	RabbitMQURL    string `mapstructure:"RABBITMQ_URL"`
	MetricsEnabled bool   `mapstructure:"METRICS_ENABLED"`
}

var keys = []string{
	"HOST",
	"PORT",
	"SERVICE_NAME",
	"APP_VERSION",
	"LOG_LEVEL",
	"LOG_DEVELOPMENT",
	"TLS_ENABLED",
	"TLS_SELF_SIGNED",
	"TLS_CERT_FILE",
	"TLS_KEY_FILE",
	"TLS_HOSTS",
	"GRPC_ENABLED",
	"GRPC_PORT",
	"RABBITMQ_URL",
	"METRICS_ENABLED",
}

// Read loads the configuration from .env and the environment and panics if it
// cannot be decoded.
func Read() *AppConfig {
	appConfig, err := Load(".env")
	if err != nil {
		panic(fmt.Errorf("fatal error reading config: %w", err))
	}
	return appConfig
}

// Load reads envFile if it exists; environment variables take precedence.
func Load(envFile string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read %s: %w", envFile, err)
		}
	}

	v.AutomaticEnv()

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
	setDefaults(v)

	var appConfig AppConfig
	if err := v.Unmarshal(&appConfig); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &appConfig, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "8000")
	v.SetDefault("SERVICE_NAME", "catalog")
	v.SetDefault("APP_VERSION", "0.1.0")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DEVELOPMENT", true)
	v.SetDefault("TLS_ENABLED", false)
	v.SetDefault("TLS_SELF_SIGNED", true)
	v.SetDefault("TLS_CERT_FILE", "certs/cert.pem")
	v.SetDefault("TLS_KEY_FILE", "certs/key.pem")
	v.SetDefault("TLS_HOSTS", "localhost,127.0.0.1")
	v.SetDefault("GRPC_ENABLED", false)
	v.SetDefault("GRPC_PORT", "9090")
	v.SetDefault("METRICS_ENABLED", true)
}

func (c *AppConfig) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// Hosts returns the comma separated TLS_HOSTS entries, trimmed and without blanks.
func (c *AppConfig) Hosts() []string {
	var hosts []string
	for _, h := range strings.Split(c.TLSHosts, ",") {
		if h = strings.TrimSpace(h); h != "" {
			hosts = append(hosts, h)
		}
	}
	return hosts
}
