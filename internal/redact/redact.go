// Package redact hides secret field values before they reach logs or
// reports.
package redact

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// SecretKeyPatterns contains substrings that mark a field or attribute name
// as secret. Keys are matched case-insensitively.
var SecretKeyPatterns = []string{
	"PASSWORD",
	"PASSWD",
	"PASSCODE",
	"SECRET",
	"TOKEN",
	"API_KEY",
	"APIKEY",
	"PRIVATE",
	"CREDENTIAL",
}

// SecretKeySegments are short markers that only count when they form a
// whole segment of the key, so "card_pin" is secret and "opinion" is not.
var SecretKeySegments = []string{
	"PIN",
	"CVV",
	"OTP",
}

// TokenPrefixes contains known API token prefixes that indicate sensitive
// values regardless of key name.
var TokenPrefixes = []string{
	"ghp_", // GitHub personal access token
	"gho_", // GitHub OAuth token
	"sk-",  // OpenAI/Anthropic keys
	"AKIA", // AWS access key prefix
	"AIza", // Google API key
	"xoxb-",
	"xoxp-",
}

// Placeholder replaces concealed values.
const Placeholder = "********"

// ShouldMask returns true if the key name suggests it contains sensitive data.
func ShouldMask(key string) bool {
	upper := strings.ToUpper(key)
	for _, pattern := range SecretKeyPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	for _, segment := range strings.FieldsFunc(upper, isKeySeparator) {
		if slices.Contains(SecretKeySegments, segment) {
			return true
		}
	}
	return false
}

func isKeySeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// ContainsTokenPrefix returns true if the value starts with a known token prefix.
func ContainsTokenPrefix(value string) bool {
	for _, prefix := range TokenPrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}

// MaskValue masks a token-like value, keeping the last 4 characters when
// the value is long enough to identify without exposing it.
func MaskValue(value string) string {
	if len(value) <= 8 {
		return Placeholder
	}
	return "****" + value[len(value)-4:]
}

// Conceal hides a form value completely. Empty values stay empty so a
// report can still show that nothing was entered.
func Conceal(value string) string {
	if value == "" {
		return ""
	}
	return Placeholder
}

// Values returns a copy of values with secret fields concealed.
func Values(values map[string]any) map[string]any {
	if values == nil {
		return nil
	}
	out := make(map[string]any, len(values))
	for k, v := range values {
		if ShouldMask(k) && v != nil {
			out[k] = Conceal(fmt.Sprint(v))
			continue
		}
		out[k] = v
	}
	return out
}
