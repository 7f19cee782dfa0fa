package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets up environment variables for testing and returns a
// cleanup function that restores the previous values.
func setupEnv(t *testing.T, envVars map[string]string) func() {
	t.Helper()

	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	for name, value := range envVars {
		err := os.Setenv(name, value)
		require.NoError(t, err, "Failed to set environment variable %s", name)
	}

	return func() {
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

// TestLoadDefaults verifies that Load applies the expected default
// values when only the required API key is set.
func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"PROMPTGEN_LLM_GEMINI_API_KEY": "test-api-key",
		"PROMPTGEN_SERVER_PORT":        "",
		"PROMPTGEN_SERVER_LOG_LEVEL":   "",
		"PROMPTGEN_LLM_MODEL_NAME":     "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.ModelName, "Default model name should be gemini-2.0-flash")
	assert.InDelta(t, 0.7, cfg.LLM.Temperature, 0.001, "Default temperature should be 0.7")
}

// TestLoadFromEnv verifies that Load reads values from environment
// variables with the PROMPTGEN_ prefix.
func TestLoadFromEnv(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"PROMPTGEN_SERVER_PORT":        "9090",
		"PROMPTGEN_SERVER_LOG_LEVEL":   "debug",
		"PROMPTGEN_LLM_GEMINI_API_KEY": "test-api-key",
		"PROMPTGEN_LLM_MODEL_NAME":     "gemini-1.5-pro",
		"PROMPTGEN_LLM_TEMPERATURE":    "0.2",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with valid environment variables")
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "test-api-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "gemini-1.5-pro", cfg.LLM.ModelName)
	assert.InDelta(t, 0.2, cfg.LLM.Temperature, 0.001)
}

// TestLoadValidationErrors verifies that Load rejects invalid
// configurations, including the fatal missing-credential case.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name           string
		envVars        map[string]string
		errorSubstring string
	}{
		{
			name: "missing API key",
			envVars: map[string]string{
				"PROMPTGEN_LLM_GEMINI_API_KEY": "",
				"PROMPTGEN_SERVER_PORT":        "9090",
				"PROMPTGEN_SERVER_LOG_LEVEL":   "debug",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "invalid port number",
			envVars: map[string]string{
				"PROMPTGEN_LLM_GEMINI_API_KEY": "test-api-key",
				"PROMPTGEN_SERVER_PORT":        "999999",
				"PROMPTGEN_SERVER_LOG_LEVEL":   "debug",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "invalid log level",
			envVars: map[string]string{
				"PROMPTGEN_LLM_GEMINI_API_KEY": "test-api-key",
				"PROMPTGEN_SERVER_PORT":        "9090",
				"PROMPTGEN_SERVER_LOG_LEVEL":   "verbose",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "temperature out of range",
			envVars: map[string]string{
				"PROMPTGEN_LLM_GEMINI_API_KEY": "test-api-key",
				"PROMPTGEN_SERVER_PORT":        "9090",
				"PROMPTGEN_SERVER_LOG_LEVEL":   "info",
				"PROMPTGEN_LLM_TEMPERATURE":    "3.5",
			},
			errorSubstring: "validation failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cleanup := setupEnv(t, tc.envVars)
			defer cleanup()

			cfg, err := Load()

			assert.Error(t, err, "Load() should return an error with invalid configuration")
			if err != nil {
				assert.Contains(t, err.Error(), tc.errorSubstring)
			}
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
