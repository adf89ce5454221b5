package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envConfig holds defaults read from the environment. Flags override them.
type envConfig struct {
	Format   string `env:"QUIZ_FORMAT" envDefault:"json"`
	LogMode  string `env:"QUIZ_LOG_MODE" envDefault:"dev"`
	LogLevel string `env:"QUIZ_LOG_LEVEL" envDefault:"info"`
	Lang     string `env:"QUIZ_LANG" envDefault:"en"`
}

func loadEnvConfig() (envConfig, error) {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return envConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
