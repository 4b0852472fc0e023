// internal/config/config.go
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// AppConfig holds all application-wide configuration.
type AppConfig struct {
	BankName  string `env:"BANK_NAME"  env-default:"ATOM BANK"`
	LogLevel  string `env:"LOG_LEVEL"  env-default:"info"`
	LogFormat string `env:"LOG_FORMAT" env-default:"text"`
}

// LoadConfig loads configuration from environment variables, falling back to
// the defaults declared on the struct tags.
func LoadConfig() (*AppConfig, error) {
	var cfg AppConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return &cfg, nil
}
