package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
	"go.uber.org/zap/zapcore"
)

type Log struct {
	Format string `env:"FORMAT,default=console"`
	Level  string `env:"LEVEL,default=info"`
}

type Config struct {
	APIKey   string `env:"API_KEY"`
	Endpoint string `env:"ENDPOINT,default=https://api.itglue.com"`
	Log      *Log   `env:",prefix=LOG_"`
}

// MarshalLogObject omits the API key.
func (cfg *Config) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("endpoint", cfg.Endpoint)
	enc.AddBool("apiKeySet", cfg.APIKey != "")
	return nil
}

// Load reads configuration from GLUE_-prefixed environment variables.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.PrefixLookuper("GLUE_", envconfig.OsLookuper()))
}

// LoadWith reads configuration through the given lookuper.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &cfg, l); err != nil {
		return nil, err
	}

	return &cfg, nil
}
