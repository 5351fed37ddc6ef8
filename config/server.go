package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type ServerConfig struct {
	Port                 int           `env:"PORT" envDefault:"8080"`
	GinMode              string        `env:"GIN_MODE" envDefault:"release"`
	WorkerPoolSize       int           `env:"WORKER_POOL_SIZE" envDefault:"0"`
	ContentLanguage      string        `env:"CONTENT_LANGUAGE" envDefault:"French"`
	SseKeepAliveInterval time.Duration `env:"SSE_KEEPALIVE_INTERVAL" envDefault:"0s"`
	EnableMockRoute      bool          `env:"ENABLE_MOCK_ROUTE" envDefault:"true"`
	LogLevel             string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat            string        `env:"LOG_FORMAT" envDefault:"json"`
}

func GetServerConfig() (*ServerConfig, error) {
	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("server config: %w", err)
	}
	return &cfg, nil
}

func (s *ServerConfig) Address() string {
	return fmt.Sprintf(":%d", s.Port)
}
