package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type ReplicateConfig struct {
	ApiUrl         string        `env:"REPLICATE_API_URL" envDefault:"https://api.replicate.com/v1"`
	ApiToken       string        `env:"REPLICATE_API_TOKEN,required,notEmpty"`
	Model          string        `env:"REPLICATE_MODEL" envDefault:"black-forest-labs/flux-dev"`
	Steps          int           `env:"REPLICATE_STEPS" envDefault:"50"`
	GuidanceScale  float64       `env:"REPLICATE_GUIDANCE_SCALE" envDefault:"7.5"`
	NegativePrompt string        `env:"REPLICATE_NEGATIVE_PROMPT" envDefault:"child, children, person, people, human, blurry, distorted, disfigured, low quality, cartoon, anime, illustration"`
	Width          int           `env:"REPLICATE_WIDTH" envDefault:"896"`
	Height         int           `env:"REPLICATE_HEIGHT" envDefault:"672"`
	PollInterval   time.Duration `env:"REPLICATE_POLL_INTERVAL" envDefault:"1s"`
	Timeout        time.Duration `env:"REPLICATE_TIMEOUT" envDefault:"120s"`
}

func GetReplicateConfig() (*ReplicateConfig, error) {
	var cfg ReplicateConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("replicate config: %w", err)
	}
	if cfg.Steps <= 0 || cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("replicate config: steps and dimensions must be positive")
	}
	return &cfg, nil
}
