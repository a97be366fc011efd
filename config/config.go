package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/ratel-online/eins/consts"
)

type Config struct {
	Addr          string
	SessionTTL    time.Duration
	SweepInterval time.Duration
}

// Load reads an optional .env file, then the EINS_* environment variables.
// Variables already set in the environment win over the file.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)

	cfg := Config{
		Addr:          consts.DefaultAddr,
		SessionTTL:    consts.SessionTTL,
		SweepInterval: consts.SweepInterval,
	}
	if addr := os.Getenv("EINS_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	var err error
	if cfg.SessionTTL, err = duration("EINS_SESSION_TTL", cfg.SessionTTL); err != nil {
		return cfg, err
	}
	if cfg.SweepInterval, err = duration("EINS_SWEEP_INTERVAL", cfg.SweepInterval); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func duration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return fallback, fmt.Errorf("%s: must be positive, got %s", key, d)
	}
	return d, nil
}
