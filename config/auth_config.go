package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type AuthConfig struct {
	JwksUrl string `env:"JWKS_URL"`
}

func GetAuthConfig() (*AuthConfig, error) {
	var cfg AuthConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("auth config: %w", err)
	}
	return &cfg, nil
}

// Enabled reports whether generation routes require a bearer token.
func (a *AuthConfig) Enabled() bool {
	return a.JwksUrl != ""
}
