package redact_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/phrazzld/ideaspark-api/internal/redact"
	"github.com/stretchr/testify/assert"
)

var googleKey = "AIza" + strings.Repeat("x", 35)

func TestRedactString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no sensitive data",
			input:    "API key not valid. Please pass a valid API key.",
			expected: "API key not valid. Please pass a valid API key.",
		},
		{
			name:     "google api key",
			input:    "request with " + googleKey + " rejected",
			expected: "request with [REDACTED_KEY] rejected",
		},
		{
			name:     "openai key",
			input:    "Incorrect API key provided: sk-proj-abcdefghijklmnop1234",
			expected: "Incorrect API key provided: [REDACTED_KEY]",
		},
		{
			name:     "anthropic key",
			input:    "invalid x-api-key sk-ant-REDACTED",
			expected: "invalid x-api-key [REDACTED_KEY]",
		},
		{
			name:     "api key parameter",
			input:    "Using api_key=abcdef1234567890ghijklmnop for authentication",
			expected: "Using api_key=[REDACTED_KEY] for authentication",
		},
		{
			name:     "bearer token",
			input:    "Authorization: Bearer abcdefgh12345678",
			expected: "Authorization: [REDACTED_CREDENTIAL]",
		},
		{
			name:     "email address",
			input:    "quota owner admin@example.com exceeded",
			expected: "quota owner [REDACTED_EMAIL] exceeded",
		},
		{
			name:     "file path",
			input:    "open /etc/ideaspark/prompts.yaml: no such file or directory",
			expected: "open [REDACTED_PATH]: no such file or directory",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, redact.String(tc.input))
		})
	}
}

func TestSecretsKeepsNonCredentialText(t *testing.T) {
	input := "quota exceeded for admin@example.com using key=" + googleKey
	assert.Equal(t, "quota exceeded for admin@example.com using key=[REDACTED_KEY]", redact.Secrets(input))
	assert.Equal(t, "", redact.Secrets(""))
}

func TestRedactError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Equal(t, "", redact.Error(nil))
	})

	t.Run("wrapped error", func(t *testing.T) {
		inner := errors.New("401 Unauthorized: token=abcdefgh12345678")
		wrapped := fmt.Errorf("gemini API error: %w", inner)
		assert.Equal(t, "gemini API error: 401 Unauthorized: token=[REDACTED_KEY]", redact.Error(wrapped))
	})
}
