package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default values applied when the corresponding environment variable is
// not set. The API key deliberately has no default.
const (
	defaultPort        = 8080
	defaultLogLevel    = "info"
	defaultModelName   = "gemini-2.0-flash"
	defaultTemperature = 0.7
)

// Load reads configuration from environment variables with the
// PROMPTGEN_ prefix (e.g. PROMPTGEN_LLM_GEMINI_API_KEY) and validates
// the result. Returns a populated Config struct or an error if loading
// or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", defaultPort)
	v.SetDefault("server.log_level", defaultLogLevel)
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.model_name", defaultModelName)
	v.SetDefault("llm.temperature", defaultTemperature)

	v.SetEnvPrefix("PROMPTGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
