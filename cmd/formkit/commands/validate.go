package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/formkit/internal/errors"
	"github.com/thoreinstein/formkit/internal/validator"
)

var (
	validateSets []string
	validateJSON bool
)

func init() {
	validateCmd.Flags().StringArrayVar(&validateSets, "set", nil, "field=value to apply before validating (repeatable)")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "print the report as JSON")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <form>",
	Short: "Validate a form from field values",
	Long: `Apply each --set to the form in order, as if typed into it, then run its
rules and report the errors.

The exit code is 1 when the form is invalid, so the command can gate
scripts. Password values are never printed.`,
	Example: `  formkit validate signin --set email=ada@example.com --set password=secret
  formkit validate signup --set name=Al --json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	logger := loggerFor(cmd)

	def, err := lookupForm(cmd, args[0])
	if err != nil {
		return err
	}
	compiled, err := formRules(def)
	if err != nil {
		return err
	}

	state := def.NewState()
	for _, s := range validateSets {
		field, value, err := parseAssignment(s)
		if err != nil {
			return err
		}
		if _, ok := def.Field(field); !ok {
			logger.Warn("field is not part of the form", "form", def.Name, "field", field)
		}
		state.HandleChange(field, value)
		state.HandleBlur(field)
	}

	valid, errs := state.Validate(compiled)
	logger.Info("validated form", "form", def.Name, "valid", valid, "errors", len(errs))

	format := validator.FormatText
	if validateJSON {
		format = validator.FormatJSON
	}
	result := validator.FromSnapshot(state.Snapshot(), def.FieldNames())
	if err := validator.NewReporter(cmd.OutOrStdout(), format).Report(result); err != nil {
		return errors.NewSystemError(err, "")
	}

	if !valid {
		return errors.NewExitError(errors.Wrapf(errors.ErrValidationFailed, "form %q", def.Name), errors.ExitUser)
	}
	return nil
}
