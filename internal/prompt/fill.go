package prompt

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fatih/color"

	"github.com/thoreinstein/formkit/internal/errors"
	"github.com/thoreinstein/formkit/internal/form"
	"github.com/thoreinstein/formkit/internal/formdef"
	"github.com/thoreinstein/formkit/internal/password"
)

// DefaultMaxAttempts is how many rounds Fill runs before giving up on a form
// that still has errors.
const DefaultMaxAttempts = 3

// meterWidth is the number of cells in the strength bar.
const meterWidth = 20

// Option configures Fill.
type Option func(*filler)

// WithRules replaces the rules compiled from the definition.
func WithRules(r form.Rules) Option {
	return func(f *filler) {
		f.rules = r
	}
}

// WithMaxAttempts sets the number of prompt rounds. Values below one are
// ignored.
func WithMaxAttempts(n int) Option {
	return func(f *filler) {
		if n > 0 {
			f.maxAttempts = n
		}
	}
}

// WithLogger sets the logger used for progress messages.
func WithLogger(l *slog.Logger) Option {
	return func(f *filler) {
		if l != nil {
			f.logger = l
		}
	}
}

type filler struct {
	driver      Driver
	def         *formdef.Definition
	state       *form.State
	rules       form.Rules
	maxAttempts int
	logger      *slog.Logger
}

// Fill prompts for every field of def, applying each answer to state with
// HandleChange and HandleBlur. After each round the state is validated and
// only failing fields are asked again, up to the attempt limit. It reports
// whether the form ended up valid; a form left invalid is not an error.
func Fill(ctx context.Context, d Driver, def *formdef.Definition, state *form.State, opts ...Option) (bool, error) {
	if d == nil {
		return false, errors.New("prompt driver is nil")
	}
	if def == nil || state == nil {
		return false, errors.New("form definition and state are required")
	}

	f := &filler{
		driver:      d,
		def:         def,
		state:       state,
		maxAttempts: DefaultMaxAttempts,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	if f.rules == nil {
		r, err := def.Rules()
		if err != nil {
			return false, err
		}
		f.rules = r
	}

	return f.run(ctx)
}

func (f *filler) run(ctx context.Context) (bool, error) {
	pending := f.def.FieldNames()

	for attempt := 1; ; attempt++ {
		f.logger.Debug("prompt round", "form", f.def.Name, "attempt", attempt, "fields", len(pending))

		for _, name := range pending {
			if err := f.ask(ctx, name); err != nil {
				return false, err
			}
		}

		valid, errs := f.state.Validate(f.rules)
		if valid {
			return true, nil
		}

		pending = f.failing(errs)
		if len(pending) == 0 || attempt >= f.maxAttempts {
			f.logger.Info("form left invalid", "form", f.def.Name, "errors", len(errs))
			return false, nil
		}

		for _, name := range pending {
			field, _ := f.def.Field(name)
			msg := fmt.Sprintf("%s %s: %s", color.RedString("✗"), field.DisplayLabel(), errs[name])
			if err := f.driver.Info(ctx, msg); err != nil {
				return false, err
			}
		}
	}
}

func (f *filler) ask(ctx context.Context, name string) error {
	field, ok := f.def.Field(name)
	if !ok {
		return errors.Newf("field %q is not part of form %q", name, f.def.Name)
	}

	cfg := InputConfig{
		Message: field.DisplayLabel() + ":",
		Help:    f.state.Error(name),
	}

	var (
		answer string
		err    error
	)
	if field.Secret() {
		answer, err = f.driver.Password(ctx, cfg)
	} else {
		cfg.Default = f.state.String(name)
		answer, err = f.driver.Input(ctx, cfg)
	}
	if err != nil {
		return err
	}

	f.state.HandleChange(name, answer)
	f.state.HandleBlur(name)

	if name == form.PasswordField && answer != "" {
		return f.driver.Info(ctx, StrengthLine(f.state.PasswordStrength()))
	}
	return nil
}

// failing returns the fields of the definition that have errors, in
// declaration order.
func (f *filler) failing(errs map[string]string) []string {
	var out []string
	for _, name := range f.def.FieldNames() {
		if _, bad := errs[name]; bad {
			out = append(out, name)
		}
	}
	return out
}

// StrengthLine renders a score as a colored meter with its label, e.g.
// "Strength ████████████░░░░░░░░ Good".
func StrengthLine(score int) string {
	bar := password.Meter(score, meterWidth)
	label := password.Label(score)
	switch password.ToneFor(score) {
	case password.ToneRed:
		bar = color.RedString(bar)
	case password.ToneOrange:
		bar = color.YellowString(bar)
	default:
		bar = color.GreenString(bar)
	}
	return fmt.Sprintf("Strength %s %s", bar, label)
}
