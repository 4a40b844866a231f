// Package redact scrubs sensitive information from strings before they are
// logged or returned to clients. Its main job here is keeping model-provider
// API keys out of logs and out of the diagnostics embedded in service errors.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
)

type rule struct {
	re          *regexp.Regexp
	replacement string
}

var (
	// Provider keys: Google AI Studio keys, OpenAI/Anthropic "sk-" keys.
	googleKeyRegex   = regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`)
	providerKeyRegex = regexp.MustCompile(`sk-(?:ant-)?[A-Za-z0-9_\-]{16,}`)

	bearerRegex = regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/=]{8,}`)

	// key=value style parameters and headers; the name is kept.
	keyParamRegex = regexp.MustCompile(
		`(?i)((?:x-goog-api-key|api[_-]?key|key|token|secret)["']?\s*[=:]\s*["']?)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	emailRegex    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	unixPathRegex = regexp.MustCompile(`(/[\w.-]+){2,}`)

	secretRules = []rule{
		{googleKeyRegex, RedactedKeyPlaceholder},
		{providerKeyRegex, RedactedKeyPlaceholder},
		{bearerRegex, RedactedCredentialPlaceholder},
		{keyParamRegex, "${1}" + RedactedKeyPlaceholder},
	}

	logRules = append(append([]rule(nil), secretRules...),
		rule{emailRegex, RedactedEmailPlaceholder},
		rule{unixPathRegex, RedactedPathPlaceholder},
	)
)

// Secrets masks credentials only, leaving the rest of the text readable. It is
// used on diagnostics that end up in user-facing messages.
func Secrets(input string) string {
	return apply(input, secretRules)
}

// String redacts credentials, email addresses and file paths.
func String(input string) string {
	return apply(input, logRules)
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}

func apply(input string, rules []rule) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.re.ReplaceAllString(result, r.replacement)
	}
	return result
}
