package prompt

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/formkit/internal/errors"
	"github.com/thoreinstein/formkit/internal/form"
	"github.com/thoreinstein/formkit/internal/formdef"
	"github.com/thoreinstein/formkit/internal/logging"
	"github.com/thoreinstein/formkit/internal/rules"
)

// fakeDriver answers prompts from per-message queues.
type fakeDriver struct {
	answers map[string][]string
	asked   []InputConfig
	secret  []string
	infos   []string
	err     error
}

func (d *fakeDriver) next(cfg InputConfig) (string, error) {
	d.asked = append(d.asked, cfg)
	if d.err != nil {
		return "", d.err
	}
	q := d.answers[cfg.Message]
	if len(q) == 0 {
		return "", errors.Newf("no answer scripted for %q", cfg.Message)
	}
	d.answers[cfg.Message] = q[1:]
	return q[0], nil
}

func (d *fakeDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	return d.next(cfg)
}

func (d *fakeDriver) Password(_ context.Context, cfg InputConfig) (string, error) {
	d.secret = append(d.secret, cfg.Message)
	return d.next(cfg)
}

func (d *fakeDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func signUp(t *testing.T) *formdef.Definition {
	t.Helper()
	for _, d := range formdef.Builtin() {
		if d.Name == formdef.SignUpForm {
			return d
		}
	}
	t.Fatal("signup form missing")
	return nil
}

func TestFill_ValidFirstRound(t *testing.T) {
	def := signUp(t)
	state := def.NewState()
	d := &fakeDriver{answers: map[string][]string{
		"Name:":          {"Ada"},
		"Email address:": {"ada@example.com"},
		"Password:":      {"StrongP@ssw0rd"},
	}}

	valid, err := Fill(t.Context(), d, def, state, WithLogger(logging.ForTest(t)))
	require.NoError(t, err)
	assert.True(t, valid)

	assert.Equal(t, "Ada", state.String("name"))
	assert.Equal(t, []string{"email", "name", "password"}, state.TouchedFields())
	assert.Equal(t, 5, state.PasswordStrength())
	assert.Equal(t, []string{"Password:"}, d.secret)

	require.Len(t, d.infos, 1)
	assert.Contains(t, d.infos[0], "Strong")
}

func TestFill_ReaskOnlyFailingFields(t *testing.T) {
	def := signUp(t)
	state := def.NewState()
	d := &fakeDriver{answers: map[string][]string{
		"Name:":          {"Ada"},
		"Email address:": {"ada.example.com", "ada@example.com"},
		"Password:":      {"abc", "abcdef"},
	}}

	valid, err := Fill(t.Context(), d, def, state, WithLogger(logging.NewDiscard()))
	require.NoError(t, err)
	assert.True(t, valid)

	var messages []string
	for _, c := range d.asked {
		messages = append(messages, c.Message)
	}
	assert.Equal(t, []string{"Name:", "Email address:", "Password:", "Email address:", "Password:"}, messages)

	// The second round shows the previous error and keeps the typed text.
	second := d.asked[3]
	assert.Equal(t, rules.MsgInvalidEmail, second.Help)
	assert.Equal(t, "ada.example.com", second.Default)
	assert.Equal(t, rules.MsgPasswordTooShort, d.asked[4].Help)

	var reported int
	for _, msg := range d.infos {
		if strings.Contains(msg, rules.MsgInvalidEmail) || strings.Contains(msg, rules.MsgPasswordTooShort) {
			reported++
		}
	}
	assert.Equal(t, 2, reported)
}

func TestFill_GivesUpAfterMaxAttempts(t *testing.T) {
	def := signUp(t)
	state := def.NewState()
	d := &fakeDriver{answers: map[string][]string{
		"Name:":          {"Al", "Al"},
		"Email address:": {"a@b.co"},
		"Password:":      {"abcdef"},
	}}

	valid, err := Fill(t.Context(), d, def, state, WithMaxAttempts(2), WithLogger(logging.NewDiscard()))
	require.NoError(t, err)
	assert.False(t, valid)
	assert.Equal(t, map[string]string{"name": rules.MsgNameTooShort}, state.Errors())
	assert.Len(t, d.asked, 4)
}

func TestFill_CustomRules(t *testing.T) {
	def := signUp(t)
	state := def.NewState()
	d := &fakeDriver{answers: map[string][]string{
		"Name:":          {"Ada"},
		"Email address:": {"ada@example.com"},
		"Password:":      {"abcdef", "Abcdef12"},
	}}

	custom := rules.SignUp()
	custom[form.PasswordField] = rules.Chain(custom[form.PasswordField], rules.MinStrength(3, "too weak"))

	valid, err := Fill(t.Context(), d, def, state, WithRules(custom), WithLogger(logging.NewDiscard()))
	require.NoError(t, err)
	assert.True(t, valid)
	assert.Equal(t, 3, state.PasswordStrength())
}

func TestFill_Aborted(t *testing.T) {
	def := signUp(t)
	d := &fakeDriver{err: errors.Wrap(errors.ErrAborted, "prompt interrupted")}

	_, err := Fill(t.Context(), d, def, def.NewState(), WithLogger(logging.NewDiscard()))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrAborted))
}

func TestFill_InvalidDefinition(t *testing.T) {
	def := &formdef.Definition{Name: "broken", Fields: []formdef.FieldDef{{Name: "a", Rules: []formdef.RuleDef{{}}}}}
	_, err := Fill(t.Context(), &fakeDriver{}, def, def.NewState())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidDefinition))

	_, err = Fill(t.Context(), nil, def, def.NewState())
	assert.Error(t, err)
}

func TestStrengthLine(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	line := StrengthLine(3)
	assert.Contains(t, line, "Fair")
	assert.Equal(t, meterWidth, strings.Count(line, "█")+strings.Count(line, "░"))
}

func TestSelector(t *testing.T) {
	options := []string{"forgot-password", "signin", "signup"}

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "number", input: "2\n", want: "signin"},
		{name: "empty picks first", input: "\n", want: "forgot-password"},
		{name: "name", input: "signup\n", want: "signup"},
		{name: "no trailing newline", input: "3", want: "signup"},
		{name: "out of range", input: "9\n", wantErr: ErrInvalidSelection},
		{name: "garbage", input: "x\n", wantErr: ErrInvalidSelection},
		{name: "eof", input: "", wantErr: errors.ErrAborted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := NewSelector(strings.NewReader(tt.input), &out).Select("Choose a form:", options)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "[3] signup")
		})
	}
}

func TestSelector_ShortLists(t *testing.T) {
	var out bytes.Buffer
	s := NewSelector(strings.NewReader(""), &out)

	_, err := s.Select("Choose:", nil)
	assert.True(t, errors.Is(err, ErrNothingToSelect))

	got, err := s.Select("Choose:", []string{"only"})
	require.NoError(t, err)
	assert.Equal(t, "only", got)
	assert.Empty(t, out.String())
}
