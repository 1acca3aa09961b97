package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	API struct {
		// Base da API REST do backend de cobrança, incluindo o prefixo /api.
		BaseURL string `envconfig:"API_URL" default:"http://localhost:8000/api"`
	}

	Log struct {
		File string `envconfig:"LOG_FILE" default:"console.log"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
