// Package rules provides reusable form.Rule constructors and the preset
// rule sets of the sign-up, sign-in and forgot-password forms.
package rules

import (
	"fmt"
	"strings"

	"github.com/thoreinstein/formkit/internal/form"
	"github.com/thoreinstein/formkit/internal/password"
)

// text renders a field value as a string. nil becomes "".
func text(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}

// Required rejects empty or whitespace-only values.
func Required(msg string) form.Rule {
	return func(v any) string {
		if strings.TrimSpace(text(v)) == "" {
			return msg
		}
		return ""
	}
}

// MinLength rejects values shorter than n UTF-16 code units.
func MinLength(n int, msg string) form.Rule {
	return func(v any) string {
		if password.Length(text(v)) < n {
			return msg
		}
		return ""
	}
}

// Contains rejects values that do not contain substr.
func Contains(substr, msg string) form.Rule {
	return func(v any) string {
		if !strings.Contains(text(v), substr) {
			return msg
		}
		return ""
	}
}

// MinStrength rejects passwords scoring below score.
func MinStrength(score int, msg string) form.Rule {
	return func(v any) string {
		if password.Score(text(v)) < score {
			return msg
		}
		return ""
	}
}

// Chain applies rules in order and returns the first failure.
func Chain(rules ...form.Rule) form.Rule {
	return func(v any) string {
		for _, r := range rules {
			if r == nil {
				continue
			}
			if msg := r(v); msg != "" {
				return msg
			}
		}
		return ""
	}
}
