// Package config loads process settings from the environment and combat
// profiles and characters from TOML files.
package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-dpr/internal/errors"
)

// Config holds the process settings. Every field reads an RPG_DPR_ variable.
type Config struct {
	GRPCPort  int    `env:"GRPC_PORT"  envDefault:"50051"`
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	SRDBaseURL  string        `env:"SRD_BASE_URL"  envDefault:"https://www.dnd5eapi.co/api/2014/"`
	SRDCacheTTL time.Duration `env:"SRD_CACHE_TTL" envDefault:"24h"`
	// SRDRate is SRD requests per second during import
	SRDRate float64 `env:"SRD_RATE" envDefault:"10"`

	DiceSessionTTL time.Duration `env:"DICE_SESSION_TTL" envDefault:"15m"`

	// OTLPEndpoint enables tracing when set
	OTLPEndpoint    string  `env:"OTLP_ENDPOINT"`
	TraceSampleRate float64 `env:"TRACE_SAMPLE_RATE" envDefault:"1"`

	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
}

// EnvPrefix is prepended to every variable name
const EnvPrefix = "RPG_DPR_"

// Load reads the environment
func Load() (*Config, error) {
	return parse(env.Options{Prefix: EnvPrefix})
}

// LoadFrom reads settings from a map instead of the process environment
func LoadFrom(environment map[string]string) (*Config, error) {
	return parse(env.Options{Prefix: EnvPrefix, Environment: environment})
}

func parse(opts env.Options) (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges env parsing cannot
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("grpc_port", c.GRPCPort, 1, 65535, vb)
	if c.RedisAddr == "" {
		vb.RequiredField("redis_addr")
	}
	if c.SRDRate <= 0 {
		vb.Field("srd_rate", "must be positive")
	}
	if c.SRDCacheTTL < 0 {
		vb.Field("srd_cache_ttl", "must not be negative")
	}
	if c.DiceSessionTTL < 0 {
		vb.Field("dice_session_ttl", "must not be negative")
	}
	if c.TraceSampleRate < 0 || c.TraceSampleRate > 1 {
		vb.Field("trace_sample_rate", "must be between 0 and 1")
	}
	return vb.Build()
}

// Logger builds the process logger at the configured level
func (c *Config) Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.LogLevel}))
}
