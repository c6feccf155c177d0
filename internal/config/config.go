package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	APIBaseURL         string        `env:"API_BASE_URL" envDefault:"https://14.design.htmlacademy.pro/six-cities"`
	HTTPRequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" envDefault:"5s"`
	RedisAddr          string        `env:"REDIS_ADDR,required"`
	RedisPassword      string        `env:"REDIS_PASSWORD"`
	RedisDB            int           `env:"REDIS_DB" envDefault:"0"`
	TokenKey           string        `env:"TOKEN_KEY" envDefault:"six-cities-token"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
