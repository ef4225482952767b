package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/formkit/internal/editor"
	"github.com/thoreinstein/formkit/internal/errors"
	"github.com/thoreinstein/formkit/internal/formdef"
	"github.com/thoreinstein/formkit/internal/paths"
	"github.com/thoreinstein/formkit/internal/validator"
)

var (
	formsInitForce bool
	formsShowJSON  bool
)

func init() {
	formsShowCmd.Flags().BoolVar(&formsShowJSON, "lint-json", false, "print lint results as JSON")
	formsInitCmd.Flags().BoolVarP(&formsInitForce, "force", "f", false, "overwrite an existing definition")

	formsCmd.AddCommand(formsListCmd, formsShowCmd, formsInitCmd, formsEditCmd)
	rootCmd.AddCommand(formsCmd)
}

var formsCmd = &cobra.Command{
	Use:   "forms",
	Short: "Manage form definitions",
	Long: `List, inspect and create form definitions.

Definitions live as .yaml, .yml or .toml files in the forms directory
(forms_dir in the config). A file named like a builtin form replaces it.`,
	RunE: runFormsList,
}

var formsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available forms",
	Args:  cobra.NoArgs,
	RunE:  runFormsList,
}

var formsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a form definition and its lint report",
	Args:  cobra.ExactArgs(1),
	RunE:  runFormsShow,
}

var formsInitCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Create a starter form definition",
	Example: `  formkit forms init newsletter
  formkit fill newsletter`,
	Args: cobra.ExactArgs(1),
	RunE: runFormsInit,
}

var formsEditCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Open a form definition in $EDITOR",
	Long: `Open a form definition in your editor and lint it once the editor exits.

Editing a builtin form first copies it into the forms directory, where the
copy then replaces the builtin.`,
	Args: cobra.ExactArgs(1),
	RunE: runFormsEdit,
}

func runFormsList(cmd *cobra.Command, _ []string) error {
	reg, err := loadRegistry(cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFIELDS\tSOURCE")
	for _, d := range reg.List() {
		source := d.Source
		if source == "" {
			source = "builtin"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", d.Name, strings.Join(d.FieldNames(), ","), source)
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "writing form list")
	}

	for _, p := range reg.Problems() {
		fmt.Fprintf(cmd.ErrOrStderr(), "skipped: %v\n", p)
	}
	return nil
}

func runFormsShow(cmd *cobra.Command, args []string) error {
	def, err := lookupForm(cmd, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	data, err := yaml.Marshal(def)
	if err != nil {
		return errors.Wrap(err, "encoding definition")
	}
	if def.Source != "" {
		fmt.Fprintf(out, "# %s\n", def.Source)
	}
	fmt.Fprint(out, string(data))
	fmt.Fprintln(out)

	format := validator.FormatText
	if formsShowJSON {
		format = validator.FormatJSON
	}
	return validator.NewReporter(out, format).Report(formdef.Lint(def))
}

func runFormsInit(cmd *cobra.Command, args []string) error {
	name := args[0]
	def := formdef.Scaffold(name)
	if res := formdef.Lint(def); res.HasErrors() {
		return errors.NewUserError(errors.Newf("invalid form name %q", name), "Use lowercase letters, digits and dashes")
	}

	dir := formsDir()
	if err := paths.EnsureDir(dir, 0); err != nil {
		return errors.NewSystemError(err, "")
	}
	path := filepath.Join(dir, name+".yaml")

	if _, err := os.Stat(path); err == nil && !formsInitForce {
		return errors.NewUserError(errors.Newf("%s already exists", path), "Use --force to overwrite it")
	}

	if err := formdef.Save(path, def); err != nil {
		return errors.NewSystemError(err, "")
	}
	loggerFor(cmd).Info("created form definition", "name", name, "path", path)
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}

func runFormsEdit(cmd *cobra.Command, args []string) error {
	def, err := lookupForm(cmd, args[0])
	if err != nil {
		return err
	}

	path := def.Source
	if path == "" {
		dir := formsDir()
		if err := paths.EnsureDir(dir, 0); err != nil {
			return errors.NewSystemError(err, "")
		}
		path = filepath.Join(dir, def.Name+".yaml")
		if err := formdef.Save(path, def); err != nil {
			return errors.NewSystemError(err, "")
		}
		loggerFor(cmd).Info("copied builtin form for editing", "name", def.Name, "path", path)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Location: %s\n", path)
	if err := editor.Open(cmd.Context(), path, editor.Streams{In: cmd.InOrStdin(), Out: out, Err: cmd.ErrOrStderr()}); err != nil {
		return errors.NewSystemError(err, "Set $EDITOR to your editor command")
	}

	edited, err := formdef.LoadFile(path)
	if err != nil {
		return errors.NewUserError(err, "Fix the file and run: formkit forms edit "+def.Name)
	}
	result := formdef.Lint(edited)
	if err := validator.NewReporter(out, validator.FormatText).Report(result); err != nil {
		return err
	}
	if result.HasErrors() {
		return errors.NewExitError(errors.Wrapf(errors.ErrInvalidDefinition, "%s", path), errors.ExitUser)
	}
	return nil
}
