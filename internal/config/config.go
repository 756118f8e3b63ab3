package config

import (
	"flag"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Addr                string `env:"RUN_ADDRESS" env-default:"localhost:8080"`
	DatabaseURL         string `env:"DATABASE_URI"`
	MigrationsDir       string `env:"MIGRATIONS_DIR" env-default:"migrations"`
	AccountNumberLength int    `env:"ACCOUNT_NUMBER_LENGTH" env-default:"12"`
}

func Load() (*Config, error) {
	cfg := &Config{}

	flag.StringVar(&cfg.Addr, "a", "localhost:8080", "HTTP server address")
	flag.StringVar(&cfg.DatabaseURL, "d", "", "database URL")
	flag.StringVar(&cfg.MigrationsDir, "m", "migrations", "migrations directory")

	flag.Parse()

	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, fmt.Errorf("couldn't read environment variables: %w", err)
	}

	return cfg, nil
}
