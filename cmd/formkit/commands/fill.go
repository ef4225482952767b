package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/formkit/internal/errors"
	"github.com/thoreinstein/formkit/internal/form"
	"github.com/thoreinstein/formkit/internal/formdef"
	"github.com/thoreinstein/formkit/internal/paths"
	"github.com/thoreinstein/formkit/internal/prompt"
	"github.com/thoreinstein/formkit/internal/redact"
	"github.com/thoreinstein/formkit/internal/validator"
	"github.com/thoreinstein/formkit/pkg/fileutil"
)

var (
	fillOut         string
	fillSave        bool
	fillMenu        bool
	fillMaxAttempts int
)

// newDriver builds the prompt driver for fill; tests replace it.
var newDriver = func(cmd *cobra.Command) prompt.Driver {
	return prompt.NewSurveyDriver(cmd.OutOrStdout())
}

// pickForm chooses a form when fill runs without a name; tests replace it.
var pickForm = pickFormFuzzy

func init() {
	fillCmd.Flags().StringVarP(&fillOut, "out", "o", "", "write the filled form snapshot to this JSON file")
	fillCmd.Flags().BoolVar(&fillSave, "save", false, "write the snapshot under the data directory")
	fillCmd.Flags().BoolVar(&fillMenu, "menu", false, "pick the form from a numbered menu instead of the fuzzy finder")
	fillCmd.Flags().IntVar(&fillMaxAttempts, "max-attempts", prompt.DefaultMaxAttempts, "prompt rounds before giving up on invalid fields")
	rootCmd.AddCommand(fillCmd)
}

var fillCmd = &cobra.Command{
	Use:   "fill [form]",
	Short: "Fill a form interactively",
	Long: `Prompt for each field of a form, showing the password strength as you go.
Fields that fail validation are asked again with their error.

Without a form name, the form is picked with a fuzzy finder (or a numbered
menu with --menu).`,
	Example: `  formkit fill signup
  formkit fill --out signup.json signup
  formkit fill --menu`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFill,
}

// savedSnapshot is the JSON written by --out and --save.
type savedSnapshot struct {
	Form    string            `json:"form"`
	SavedAt time.Time         `json:"saved_at"`
	Valid   bool              `json:"valid"`
	Values  map[string]any    `json:"values"`
	Errors  map[string]string `json:"errors,omitempty"`
	Touched []string          `json:"touched,omitempty"`
	// PasswordStrength is the score of the password field, if any.
	PasswordStrength int `json:"password_strength"`
}

func runFill(cmd *cobra.Command, args []string) error {
	logger := loggerFor(cmd)

	reg, err := loadRegistry(cmd)
	if err != nil {
		return err
	}

	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		picked, err := pickForm(cmd, reg.List())
		if err != nil {
			return err
		}
		if picked == "" {
			return nil
		}
		name = picked
	}

	def, err := reg.Lookup(name)
	if err != nil {
		return errors.NewUserError(err, "Run: formkit forms list")
	}
	compiled, err := formRules(def)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if def.Title != "" {
		fmt.Fprintln(out, color.New(color.Bold).Sprint(def.Title))
	}

	state := def.NewState()
	valid, err := prompt.Fill(cmd.Context(), newDriver(cmd), def, state,
		prompt.WithRules(compiled),
		prompt.WithMaxAttempts(fillMaxAttempts),
		prompt.WithLogger(logger),
	)
	if err != nil {
		if errors.Is(err, errors.ErrAborted) {
			return errors.NewUserError(err, "")
		}
		return errors.NewSystemError(err, "")
	}

	snap := state.Snapshot()
	if err := validator.NewReporter(out, validator.FormatText).Report(validator.FromSnapshot(snap, def.FieldNames())); err != nil {
		return errors.NewSystemError(err, "")
	}

	if err := writeSnapshot(cmd, def, snap); err != nil {
		return err
	}

	if !valid {
		return errors.NewExitError(errors.Wrapf(errors.ErrValidationFailed, "form %q", def.Name), errors.ExitUser)
	}
	return nil
}

func writeSnapshot(cmd *cobra.Command, def *formdef.Definition, snap form.Snapshot) error {
	targets := []string{}
	if fillOut != "" {
		targets = append(targets, fillOut)
	}
	if fillSave {
		dir := paths.SnapshotsDir()
		if err := paths.EnsureDir(dir, 0); err != nil {
			return errors.NewSystemError(err, "")
		}
		targets = append(targets, filepath.Join(dir, fmt.Sprintf("%s-%s.json", def.Name, time.Now().UTC().Format("20060102T150405Z"))))
	}
	if len(targets) == 0 {
		return nil
	}

	values := snap.Values
	if currentConfig().MaskValues {
		values = redact.Values(values)
	}
	doc := savedSnapshot{
		Form:             def.Name,
		SavedAt:          time.Now().UTC(),
		Valid:            snap.Valid(),
		Values:           values,
		Errors:           snap.Errors,
		Touched:          snap.Touched,
		PasswordStrength: snap.PasswordStrength,
	}

	for _, path := range targets {
		if err := fileutil.AtomicWriteJSON(path, doc, 0o600); err != nil {
			return errors.NewSystemError(err, "Check that the output directory exists")
		}
		loggerFor(cmd).Info("saved form snapshot", "path", path)
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
	}
	return nil
}

// pickFormFuzzy lets the user choose a form. An aborted finder returns "".
func pickFormFuzzy(cmd *cobra.Command, defs []*formdef.Definition) (string, error) {
	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name
	}

	if _, isTTY := terminalFd(os.Stdin); fillMenu || !isTTY {
		picked, err := prompt.NewSelector(cmd.InOrStdin(), cmd.OutOrStdout()).Select("Choose a form:", names)
		if err != nil {
			return "", errors.NewUserError(err, "Pass the form name: formkit fill <form>")
		}
		return picked, nil
	}

	idx, err := fuzzyfinder.Find(
		defs,
		func(i int) string { return defs[i].Name },
		fuzzyfinder.WithPromptString("form> "),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i < 0 {
				return ""
			}
			return previewForm(defs[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", nil
		}
		return "", errors.NewSystemError(errors.Wrap(err, "form picker failed"), "Use --menu or pass the form name")
	}
	return defs[idx].Name, nil
}

func previewForm(d *formdef.Definition) string {
	s := d.Name
	if d.Title != "" {
		s += "\n" + d.Title
	}
	s += "\n\nFields:"
	for _, f := range d.Fields {
		s += fmt.Sprintf("\n  %s (%s)", f.DisplayLabel(), f.EffectiveKind())
	}
	if d.Source != "" {
		s += "\n\nSource: " + d.Source
	}
	return s
}
