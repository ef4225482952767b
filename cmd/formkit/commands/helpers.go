package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/thoreinstein/formkit/internal/config"
	"github.com/thoreinstein/formkit/internal/errors"
	"github.com/thoreinstein/formkit/internal/form"
	"github.com/thoreinstein/formkit/internal/formdef"
	"github.com/thoreinstein/formkit/internal/logging"
	"github.com/thoreinstein/formkit/internal/password"
	"github.com/thoreinstein/formkit/internal/paths"
	"github.com/thoreinstein/formkit/internal/rules"
)

// currentConfig returns the loaded config, or defaults when loading was
// skipped.
func currentConfig() *config.Config {
	if appConfig != nil {
		return appConfig
	}
	return config.Default()
}

func formsDir() string {
	if dir := currentConfig().FormsDir; dir != "" {
		return dir
	}
	return paths.FormsDir()
}

func loggerFor(cmd *cobra.Command) *slog.Logger {
	return logging.FromContext(cmd.Context())
}

func loadRegistry(cmd *cobra.Command) (*formdef.Registry, error) {
	reg, err := formdef.NewRegistry(formsDir(), loggerFor(cmd))
	if err != nil {
		return nil, errors.NewSystemError(err, "Check that the forms directory is readable")
	}
	return reg, nil
}

func lookupForm(cmd *cobra.Command, name string) (*formdef.Definition, error) {
	reg, err := loadRegistry(cmd)
	if err != nil {
		return nil, err
	}
	def, err := reg.Lookup(name)
	if err != nil {
		return nil, errors.NewUserError(err, "Run: formkit forms list")
	}
	return def, nil
}

// formRules compiles def's rules and, when min_strength is configured, adds
// a strength floor to every password field.
func formRules(def *formdef.Definition) (form.Rules, error) {
	compiled, err := def.Rules()
	if err != nil {
		return nil, errors.NewUserError(err, "Run: formkit forms show "+def.Name)
	}

	minScore := currentConfig().MinStrength
	if minScore <= 0 {
		return compiled, nil
	}
	floor := rules.MinStrength(minScore, fmt.Sprintf("Password too weak (needs %s)", password.Label(minScore)))
	for _, f := range def.Fields {
		if f.Secret() {
			compiled[f.Name] = rules.Chain(compiled[f.Name], floor)
		}
	}
	return compiled, nil
}

// parseAssignment splits a --set value of the form field=value.
func parseAssignment(s string) (field, value string, err error) {
	field, value, ok := strings.Cut(s, "=")
	field = strings.TrimSpace(field)
	if !ok || field == "" {
		return "", "", errors.NewUserError(errors.Newf("invalid --set %q", s), "Use --set field=value")
	}
	return field, value, nil
}

// terminalFd returns the descriptor of r when it is an interactive terminal.
func terminalFd(r io.Reader) (int, bool) {
	f, ok := r.(interface{ Fd() uintptr })
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}
