package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/aaronzipp/imposter/internal/game"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is read from the environment, optionally seeded from a .env file
type Config struct {
	Port      int    `env:"PORT" envDefault:"8080"`
	BaseURL   string `env:"BASE_URL"`
	WordsFile string `env:"WORDS_FILE"`
	Seed      uint64 `env:"SEED"`
	Rotation  string `env:"ROTATION" envDefault:"fixed"`
	Debug     bool   `env:"DEBUG"`
}

// Load reads .env files (missing ones are fine) and then the environment.
// Variables already set in the environment win over .env values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
		log.Printf("config: loaded environment from %s", f)
	}

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if _, err := cfg.RotationPolicy(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// RotationPolicy returns the parsed ROTATION setting
func (c Config) RotationPolicy() (game.RotationPolicy, error) {
	return game.ParseRotationPolicy(c.Rotation)
}

// Addr is the listen address
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
