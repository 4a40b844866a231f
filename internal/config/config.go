package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port      int    `mapstructure:"port"       validate:"required,gt=0,lt=65536"`
	LogLevel  string `mapstructure:"log_level"  validate:"required,oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"required,oneof=json text"`

	// GenerateTimeout bounds a single idea generation request. The generator
	// itself imposes no timeout; the HTTP handler applies this one.
	GenerateTimeout time.Duration `mapstructure:"generate_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`

	// MaxInterestLength caps the interest text accepted by the API, in characters.
	MaxInterestLength int `mapstructure:"max_interest_length" validate:"gt=0"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	// Provider selects the model SDK: gemini, openai or anthropic.
	Provider string `mapstructure:"provider" validate:"required,oneof=gemini openai anthropic"`

	// APIKey is optional. When empty the key is looked up in APIKeyEnv on
	// every request, or supplied at runtime through the credential endpoint.
	APIKey    string   `mapstructure:"api_key"`
	APIKeyEnv []string `mapstructure:"api_key_env"`

	ModelName       string `mapstructure:"model_name"        validate:"required"`
	BaseURL         string `mapstructure:"base_url"          validate:"omitempty,url"`
	MaxOutputTokens int    `mapstructure:"max_output_tokens" validate:"gt=0"`

	// PromptPath overrides the embedded prompt catalogue.
	PromptPath string `mapstructure:"prompt_path"`
}
