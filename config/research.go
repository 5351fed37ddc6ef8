package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type researchEnv struct {
	ApiUrl  string        `env:"RESEARCH_API_URL" envDefault:"https://api.perplexity.ai/"`
	ApiKey  string        `env:"RESEARCH_API_KEY,required,notEmpty"`
	Model   string        `env:"RESEARCH_MODEL" envDefault:"llama-3.1-sonar-huge-128k-online"`
	Timeout time.Duration `env:"RESEARCH_TIMEOUT" envDefault:"120s"`
}

// GetResearchConfig configures the web-search-augmented model used for the
// event analysis and the answers.
func GetResearchConfig() (*ChatCompletionConfig, error) {
	var cfg researchEnv
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("research config: %w", err)
	}
	return &ChatCompletionConfig{
		ApiUrl:  cfg.ApiUrl,
		ApiKey:  cfg.ApiKey,
		Model:   cfg.Model,
		Timeout: cfg.Timeout,
	}, nil
}
