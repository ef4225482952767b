package rules

import (
	"strconv"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/thoreinstein/formkit/internal/errors"
	"github.com/thoreinstein/formkit/internal/form"
	"github.com/thoreinstein/formkit/internal/password"
)

// StrengthTag is the validator tag that checks password.Score against its
// parameter, e.g. "required,pwstrength=3".
const StrengthTag = "pwstrength"

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator instance with formkit's custom
// tags registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Registration only fails for an empty tag or nil func.
		_ = validate.RegisterValidation(StrengthTag, strengthRule)
	})
	return validate
}

func strengthRule(fl validator.FieldLevel) bool {
	minScore, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return password.Score(fl.Field().String()) >= minScore
}

// Tag builds a rule from a validator tag expression such as "required,email"
// or "min=3". The value is checked as a string. CompileTag should be used
// first when the tag comes from user input; Tag panics on a malformed tag.
func Tag(tag, msg string) form.Rule {
	v := Validator()
	return func(val any) string {
		if err := v.Var(text(val), tag); err != nil {
			return msg
		}
		return ""
	}
}

// CompileTag reports whether tag is a well-formed validator expression.
func CompileTag(tag string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("invalid validation tag %q: %v", tag, r)
		}
	}()
	// A probe value exercises the parser; the outcome of the check itself
	// is irrelevant.
	verr := Validator().Var("", tag)
	var invalid *validator.InvalidValidationError
	if errors.As(verr, &invalid) {
		return errors.Wrapf(verr, "invalid validation tag %q", tag)
	}
	return nil
}
