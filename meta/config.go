package meta

import (
	"errors"
	"fmt"

	"github.com/joeshaw/envdecode"
)

// Config holds the runtime settings of the command line tools. Values come
// from the environment and may be overridden by flags.
type Config struct {
	Host      string `env:"TCHU_HOST,default=localhost"`
	Port      int    `env:"TCHU_PORT,default=5108"`
	Transport string `env:"TCHU_TRANSPORT,default=tcp"` // tcp or ws
	LogLevel  string `env:"TCHU_LOG_LEVEL,default=info"`
	Seed      int64  `env:"TCHU_SEED"` // 0 picks a time based seed
	Name1     string `env:"TCHU_NAME_1,default=Ada"`
	Name2     string `env:"TCHU_NAME_2,default=Charles"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.Transport != "tcp" && cfg.Transport != "ws" {
		return Config{}, fmt.Errorf("unknown transport %q", cfg.Transport)
	}
	return cfg, nil
}

// Addr is the host:port pair the server listens on or the client dials.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
