package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ClientConfig is read by the command line client, not by the server.
type ClientConfig struct {
	ApiUrl   string        `env:"PODCAST_API_URL" envDefault:"http://localhost:8080"`
	ApiToken string        `env:"PODCAST_API_TOKEN"`
	Timeout  time.Duration `env:"PODCAST_API_TIMEOUT" envDefault:"10m"`
}

func GetClientConfig() (*ClientConfig, error) {
	var cfg ClientConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("client config: %w", err)
	}
	return &cfg, nil
}
