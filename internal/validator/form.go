package validator

import (
	"fmt"
	"sort"

	"github.com/thoreinstein/formkit/internal/form"
	"github.com/thoreinstein/formkit/internal/password"
	"github.com/thoreinstein/formkit/internal/redact"
)

// FromSnapshot converts the outcome of a form validation pass into a Result.
//
// Errors are listed in the order of fields; fields with errors that are not
// in fields follow in name order. When the form has a password value, an
// info issue reports its strength. Secret values are never copied into the
// result.
func FromSnapshot(snap form.Snapshot, fields []string) *Result {
	result := &Result{}

	seen := make(map[string]bool, len(fields))
	order := make([]string, 0, len(snap.Errors))
	for _, f := range fields {
		seen[f] = true
		if _, ok := snap.Errors[f]; ok {
			order = append(order, f)
		}
	}
	var extra []string
	for f := range snap.Errors {
		if !seen[f] {
			extra = append(extra, f)
		}
	}
	sort.Strings(extra)
	order = append(order, extra...)

	for _, f := range order {
		result.AddError(f, snap.Errors[f], displayValue(f, snap.Values[f]))
	}

	if v, ok := snap.Values[form.PasswordField]; ok && v != nil && v != "" {
		score := snap.PasswordStrength
		msg := fmt.Sprintf("strength %d/%d", score, password.MaxScore)
		if label := password.Label(score); label != "" {
			msg += " (" + label + ")"
		}
		result.AddInfo(form.PasswordField, msg, nil)
	}

	return result
}

// displayValue returns the value to show next to an issue, or nil when it
// must stay hidden.
func displayValue(field string, v any) any {
	if v == nil || redact.ShouldMask(field) {
		return nil
	}
	return v
}
