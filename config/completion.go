package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ChatCompletionConfig describes one OpenAI-compatible chat completion API.
type ChatCompletionConfig struct {
	ApiUrl  string
	ApiKey  string
	Model   string
	Timeout time.Duration
}

type completionEnv struct {
	ApiUrl  string        `env:"COMPLETION_API_URL" envDefault:"https://api.groq.com/openai/v1/"`
	ApiKey  string        `env:"COMPLETION_API_KEY,required,notEmpty"`
	Model   string        `env:"COMPLETION_MODEL" envDefault:"llama-3.1-70b-versatile"`
	Timeout time.Duration `env:"COMPLETION_TIMEOUT" envDefault:"120s"`
}

// GetCompletionConfig configures the fast completion model used for
// categorization, questions, the script and image prompts.
func GetCompletionConfig() (*ChatCompletionConfig, error) {
	var cfg completionEnv
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("completion config: %w", err)
	}
	return &ChatCompletionConfig{
		ApiUrl:  cfg.ApiUrl,
		ApiKey:  cfg.ApiKey,
		Model:   cfg.Model,
		Timeout: cfg.Timeout,
	}, nil
}
