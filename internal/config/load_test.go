package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for the duration of the test.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for name, value := range envVars {
		t.Setenv(name, value)
	}
}

// TestLoadDefaults verifies the defaults applied when nothing is configured.
// A missing API key is not a load error.
func TestLoadDefaults(t *testing.T) {
	setupEnv(t, map[string]string{
		"IDEASPARK_SERVER_PORT":      "",
		"IDEASPARK_SERVER_LOG_LEVEL": "",
		"IDEASPARK_LLM_API_KEY":      "",
		"IDEASPARK_LLM_PROVIDER":     "",
		"IDEASPARK_LLM_MODEL_NAME":   "",
	})

	cfg, err := LoadFrom(t.TempDir())

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "json", cfg.Server.LogFormat)
	assert.Equal(t, 60*time.Second, cfg.Server.GenerateTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 2000, cfg.Server.MaxInterestLength)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.ModelName)
	assert.Empty(t, cfg.LLM.APIKey)
	assert.Equal(t, []string{"API_KEY", "GEMINI_API_KEY"}, cfg.LLM.APIKeyEnv)
	assert.Equal(t, 4096, cfg.LLM.MaxOutputTokens)
}

// TestLoadFromEnv verifies that the Load function correctly reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	setupEnv(t, map[string]string{
		"IDEASPARK_SERVER_PORT":             "9090",
		"IDEASPARK_SERVER_LOG_LEVEL":        "debug",
		"IDEASPARK_SERVER_GENERATE_TIMEOUT": "15s",
		"IDEASPARK_LLM_PROVIDER":            "openai",
		"IDEASPARK_LLM_API_KEY":             "test-api-key",
		"IDEASPARK_LLM_API_KEY_ENV":         "OPENAI_API_KEY",
		"IDEASPARK_LLM_BASE_URL":            "https://api.deepseek.com/v1",
	})

	cfg, err := LoadFrom(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 15*time.Second, cfg.Server.GenerateTimeout)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.ModelName, "provider default model")
	assert.Equal(t, "test-api-key", cfg.LLM.APIKey)
	assert.Equal(t, []string{"OPENAI_API_KEY"}, cfg.LLM.APIKeyEnv)
	assert.Equal(t, "https://api.deepseek.com/v1", cfg.LLM.BaseURL)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := `
server:
  port: 7070
  log_format: text
llm:
  provider: anthropic
  model_name: claude-custom
  prompt_path: /etc/ideaspark/prompts.yaml
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
	setupEnv(t, map[string]string{"IDEASPARK_SERVER_PORT": "7171"})

	cfg, err := LoadFrom(dir)

	require.NoError(t, err)
	assert.Equal(t, 7171, cfg.Server.Port, "environment overrides file")
	assert.Equal(t, "text", cfg.Server.LogFormat)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, "claude-custom", cfg.LLM.ModelName)
	assert.Equal(t, "/etc/ideaspark/prompts.yaml", cfg.LLM.PromptPath)
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{name: "Invalid port number", envVars: map[string]string{"IDEASPARK_SERVER_PORT": "999999"}},
		{name: "Invalid log level", envVars: map[string]string{"IDEASPARK_SERVER_LOG_LEVEL": "loud"}},
		{name: "Unknown provider", envVars: map[string]string{"IDEASPARK_LLM_PROVIDER": "cohere"}},
		{name: "Invalid base URL", envVars: map[string]string{"IDEASPARK_LLM_BASE_URL": "not a url"}},
		{name: "Zero timeout", envVars: map[string]string{"IDEASPARK_SERVER_GENERATE_TIMEOUT": "0s"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setupEnv(t, tc.envVars)

			cfg, err := LoadFrom(t.TempDir())

			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
			assert.Nil(t, cfg)
		})
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [port"), 0o600))

	cfg, err := LoadFrom(dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
	assert.Nil(t, cfg)
}
