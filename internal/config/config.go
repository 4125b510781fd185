// Package config loads process configuration from the environment.
//
// A .env file in the working directory is applied first (existing
// variables win), then the Config struct is parsed with caarlos0/env.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// DevTokenSecret signs player tokens when PLAYER_TOKEN_SECRET is unset.
const DevTokenSecret = "dev_secret_change_me"

// Config is every tunable the binaries read.
type Config struct {
	Port            string        `env:"PORT" envDefault:"5175"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	DBPath          string        `env:"DB_PATH" envDefault:"./data/wordwonder.db"`
	ClientOrigin    string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	TokenSecret     string        `env:"PLAYER_TOKEN_SECRET" envDefault:"dev_secret_change_me"`
	TokenDays       int           `env:"PLAYER_TOKEN_DAYS" envDefault:"180"`
	HintBudget      int           `env:"HINT_BUDGET" envDefault:"3"`
	PuzzlesFile     string        `env:"PUZZLES_FILE"`
	DefinitionsFile string        `env:"WORDS_DEFINITIONS_FILE"`
	ProductName     string        `env:"PRODUCT_NAME" envDefault:"WordWonder"`
	ShareURL        string        `env:"SHARE_URL" envDefault:"https://wordwonder.game/daily"`
	Environment     string        `env:"NODE_ENV" envDefault:"development"`
	SessionTTL      time.Duration `env:"SESSION_TTL" envDefault:"6h"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load applies .env (when present) and parses Config.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.HintBudget <= 0 {
		return Config{}, fmt.Errorf("HINT_BUDGET must be positive, got %d", cfg.HintBudget)
	}
	if cfg.TokenDays <= 0 {
		return Config{}, fmt.Errorf("PLAYER_TOKEN_DAYS must be positive, got %d", cfg.TokenDays)
	}
	return cfg, nil
}

// Production reports whether cookies must be Secure.
func (c Config) Production() bool { return c.Environment == "production" }

// Addr is the HTTP listen address.
func (c Config) Addr() string { return ":" + c.Port }

// TokenTTL is the player token lifetime.
func (c Config) TokenTTL() time.Duration { return time.Duration(c.TokenDays) * 24 * time.Hour }

// ApplyLogLevel sets the global zerolog level; unknown names keep the current one.
func (c Config) ApplyLogLevel() {
	if lvl, err := zerolog.ParseLevel(c.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
}
