package mailsniper

import "regexp"

// apiKeyPattern is the lexical format of a MailSniper API key: the "ms_"
// prefix, an 8 character key ID and a 32 character secret, both lowercase hex.
var apiKeyPattern = regexp.MustCompile(`^ms_[0-9a-f]{8}_[0-9a-f]{32}$`)

const invalidAPIKeyMessage = "Invalid API key format. Expected format: ms_[8 hex chars]_[32 hex chars]"

// ValidateAPIKey reports whether key has the MailSniper API key format.
// It returns a *ConfigurationError matching ErrInvalidAPIKey otherwise.
// No network access is involved.
func ValidateAPIKey(key string) error {
	if !apiKeyPattern.MatchString(key) {
		return &ConfigurationError{Message: invalidAPIKeyMessage, Err: ErrInvalidAPIKey}
	}
	return nil
}
