// Package formdef describes forms as data: their fields, initial values and
// validation rules. Definitions are either built in or loaded from YAML or
// TOML files.
package formdef

import (
	"fmt"

	"github.com/thoreinstein/formkit/internal/errors"
	"github.com/thoreinstein/formkit/internal/form"
	"github.com/thoreinstein/formkit/internal/rules"
)

// Field kinds.
const (
	KindText     = "text"
	KindEmail    = "email"
	KindPassword = "password"
)

// Definition is a named form.
type Definition struct {
	Name   string     `yaml:"name" toml:"name" json:"name"`
	Title  string     `yaml:"title,omitempty" toml:"title,omitempty" json:"title,omitempty"`
	Fields []FieldDef `yaml:"fields" toml:"fields" json:"fields"`

	// Source is the file the definition was loaded from, empty for builtins.
	Source string `yaml:"-" toml:"-" json:"source,omitempty"`
}

// FieldDef describes one field of a form.
type FieldDef struct {
	Name    string    `yaml:"name" toml:"name" json:"name"`
	Label   string    `yaml:"label,omitempty" toml:"label,omitempty" json:"label,omitempty"`
	Kind    string    `yaml:"kind,omitempty" toml:"kind,omitempty" json:"kind,omitempty"`
	Initial string    `yaml:"initial,omitempty" toml:"initial,omitempty" json:"initial,omitempty"`
	Rules   []RuleDef `yaml:"rules,omitempty" toml:"rules,omitempty" json:"rules,omitempty"`
}

// RuleDef is one check on a field. Exactly one of Tag, Required, MinLength,
// Contains or MinStrength must be set.
type RuleDef struct {
	Tag         string `yaml:"tag,omitempty" toml:"tag,omitempty" json:"tag,omitempty"`
	Required    bool   `yaml:"required,omitempty" toml:"required,omitempty" json:"required,omitempty"`
	MinLength   int    `yaml:"min_length,omitempty" toml:"min_length,omitempty" json:"min_length,omitempty"`
	Contains    string `yaml:"contains,omitempty" toml:"contains,omitempty" json:"contains,omitempty"`
	MinStrength int    `yaml:"min_strength,omitempty" toml:"min_strength,omitempty" json:"min_strength,omitempty"`
	Message     string `yaml:"message,omitempty" toml:"message,omitempty" json:"message,omitempty"`
}

// kinds counts how many rule kinds are set.
func (r RuleDef) kinds() int {
	n := 0
	for _, set := range []bool{r.Tag != "", r.Required, r.MinLength != 0, r.Contains != "", r.MinStrength != 0} {
		if set {
			n++
		}
	}
	return n
}

// DisplayLabel returns the field label, falling back to its name.
func (f FieldDef) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// EffectiveKind returns the field kind, defaulting to text.
func (f FieldDef) EffectiveKind() string {
	if f.Kind == "" {
		return KindText
	}
	return f.Kind
}

// Secret reports whether the field value must be hidden when entered or shown.
func (f FieldDef) Secret() bool {
	return f.EffectiveKind() == KindPassword
}

// FieldNames returns the field names in declaration order.
func (d *Definition) FieldNames() []string {
	names := make([]string, 0, len(d.Fields))
	for _, f := range d.Fields {
		names = append(names, f.Name)
	}
	return names
}

// Field returns the named field.
func (d *Definition) Field(name string) (FieldDef, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDef{}, false
}

// InitialValues returns the seed values for form.New.
func (d *Definition) InitialValues() map[string]any {
	values := make(map[string]any, len(d.Fields))
	for _, f := range d.Fields {
		values[f.Name] = f.Initial
	}
	return values
}

// NewState creates a form.State seeded with the definition's initial values.
func (d *Definition) NewState() *form.State {
	return form.New(d.InitialValues())
}

// Rules compiles the rule definitions. Fields without rules get no entry.
// A definition that fails Lint returns ErrInvalidDefinition.
func (d *Definition) Rules() (form.Rules, error) {
	if res := Lint(d); res.HasErrors() {
		first := res.Errors()[0]
		return nil, errors.Wrapf(errors.ErrInvalidDefinition, "form %q: %s", d.Name, first.Error())
	}

	out := make(form.Rules, len(d.Fields))
	for _, f := range d.Fields {
		if len(f.Rules) == 0 {
			continue
		}
		chain := make([]form.Rule, 0, len(f.Rules))
		for _, r := range f.Rules {
			chain = append(chain, compileRule(f, r))
		}
		if len(chain) == 1 {
			out[f.Name] = chain[0]
		} else {
			out[f.Name] = rules.Chain(chain...)
		}
	}
	return out, nil
}

func compileRule(f FieldDef, r RuleDef) form.Rule {
	msg := r.Message
	switch {
	case r.Tag != "":
		if msg == "" {
			msg = fmt.Sprintf("%s is invalid", f.DisplayLabel())
		}
		return rules.Tag(r.Tag, msg)
	case r.Required:
		if msg == "" {
			msg = fmt.Sprintf("%s is required", f.DisplayLabel())
		}
		return rules.Required(msg)
	case r.MinLength > 0:
		if msg == "" {
			msg = fmt.Sprintf("%s must be at least %d characters", f.DisplayLabel(), r.MinLength)
		}
		return rules.MinLength(r.MinLength, msg)
	case r.Contains != "":
		if msg == "" {
			msg = fmt.Sprintf("%s must contain %q", f.DisplayLabel(), r.Contains)
		}
		return rules.Contains(r.Contains, msg)
	default:
		if msg == "" {
			msg = fmt.Sprintf("%s is too weak", f.DisplayLabel())
		}
		return rules.MinStrength(r.MinStrength, msg)
	}
}
