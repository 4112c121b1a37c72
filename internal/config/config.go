// Package config wraps Viper with nil-safe accessors and MotorScope defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override (MOTORSCOPE_SERVER_PORT).
const EnvPrefix = "MOTORSCOPE"

// Config is a read-only view over a Viper instance. A nil Viper behaves
// as an empty configuration.
type Config struct {
	v *viper.Viper
}

// New wraps v. Passing nil yields an empty configuration.
func New(v *viper.Viper) *Config {
	if v == nil {
		v = viper.New()
	}
	return &Config{v: v}
}

// GetString returns the value at key as a string.
func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// GetInt returns the value at key as an int.
func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

// GetFloat64 returns the value at key as a float64.
func (c *Config) GetFloat64(key string) float64 {
	return c.v.GetFloat64(key)
}

// GetBool returns the value at key as a bool.
func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// GetDuration parses the value at key as a time.Duration.
func (c *Config) GetDuration(key string) time.Duration {
	return c.v.GetDuration(key)
}

// IsSet reports whether key has a value from any source, defaults included.
func (c *Config) IsSet(key string) bool {
	return c.v.IsSet(key)
}

// Unmarshal decodes the whole configuration into target.
func (c *Config) Unmarshal(target any) error {
	return c.v.Unmarshal(target)
}

// Sub returns the subtree at key. A missing subtree yields an empty Config, never nil.
func (c *Config) Sub(key string) *Config {
	return New(c.v.Sub(key))
}

// Viper exposes the underlying instance.
func (c *Config) Viper() *viper.Viper {
	return c.v
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.rate_limit", 20.0)
	v.SetDefault("server.rate_burst", 40)
	v.SetDefault("server.tracing", false)

	v.SetDefault("site.name", "Moteurs Essence d'Exception")
	v.SetDefault("site.canonical_url", "https://agentic-dad8af6e.vercel.app")

	v.SetDefault("catalog.dataset", "")
}

// Load builds a Config from defaults, an optional YAML file, and
// MOTORSCOPE_* environment variables, in increasing precedence.
// An empty path searches the working directory for motorscope.yaml and
// tolerates its absence.
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return New(v), nil
	}

	v.SetConfigName("motorscope")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return New(v), nil
}

// Addr returns host:port for the HTTP listener.
func (c *Config) Addr() string {
	host := c.GetString("server.host")
	port := c.GetString("server.port")
	if port == "" {
		port = "8080"
	}
	return host + ":" + port
}
