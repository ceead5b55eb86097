package redaction

import "strings"

const redactedValue = "[redacted]"

// RedactSecret returns a fixed placeholder for non-empty secrets.
func RedactSecret(secret string) string {
	if secret == "" {
		return ""
	}
	return redactedValue
}

// RedactToken keeps the bot id segment of a Discord token (the part before
// the first dot) and hides the rest.
func RedactToken(token string) string {
	token = strings.TrimPrefix(token, "Bot ")
	if token == "" {
		return ""
	}
	id, _, found := strings.Cut(token, ".")
	if !found || id == "" {
		return redactedValue
	}
	return id + "." + redactedValue
}
