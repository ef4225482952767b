package formdef

import (
	"fmt"
	"regexp"

	"github.com/thoreinstein/formkit/internal/password"
	"github.com/thoreinstein/formkit/internal/rules"
	"github.com/thoreinstein/formkit/internal/validator"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Lint checks a definition for structural problems. Errors make the
// definition unusable; warnings point at likely mistakes.
func Lint(d *Definition) *validator.Result {
	result := &validator.Result{}
	if d == nil {
		result.AddError("", "definition is nil", nil)
		return result
	}

	switch {
	case d.Name == "":
		result.AddError("name", "is required", nil)
	case !namePattern.MatchString(d.Name):
		result.AddError("name", "must be lowercase letters, digits and dashes", d.Name)
	}

	if len(d.Fields) == 0 {
		result.AddWarning("fields", "form has no fields", nil)
	}

	seen := make(map[string]bool, len(d.Fields))
	for i, f := range d.Fields {
		path := fmt.Sprintf("fields[%d]", i)
		if f.Name == "" {
			result.AddError(path+".name", "is required", nil)
			continue
		}
		path = "fields." + f.Name
		if seen[f.Name] {
			result.AddError(path, "duplicate field name", f.Name)
		}
		seen[f.Name] = true

		switch f.EffectiveKind() {
		case KindText, KindEmail, KindPassword:
		default:
			result.AddError(path+".kind", "must be text, email or password", f.Kind)
		}

		if f.Secret() && f.Initial != "" {
			result.AddWarning(path+".initial", "password fields should not carry an initial value", nil)
		}

		for j, r := range f.Rules {
			lintRule(result, fmt.Sprintf("%s.rules[%d]", path, j), r)
		}
	}

	return result
}

func lintRule(result *validator.Result, path string, r RuleDef) {
	switch n := r.kinds(); {
	case n == 0:
		result.AddError(path, "rule sets no check", nil)
		return
	case n > 1:
		result.AddError(path, "rule sets more than one check", nil)
		return
	}

	if r.MinLength < 0 {
		result.AddError(path+".min_length", "must not be negative", r.MinLength)
	}
	if r.MinStrength < 0 || r.MinStrength > password.MaxScore {
		result.AddError(path+".min_strength", fmt.Sprintf("must be between 1 and %d", password.MaxScore), r.MinStrength)
	}
	if r.Tag != "" {
		if err := rules.CompileTag(r.Tag); err != nil {
			result.AddError(path+".tag", err.Error(), r.Tag)
		}
	}
	if r.Message == "" {
		result.AddInfo(path+".message", "no message set, a default is used", nil)
	}
}
