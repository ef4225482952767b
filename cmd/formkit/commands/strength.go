package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/thoreinstein/formkit/internal/errors"
	"github.com/thoreinstein/formkit/internal/password"
	"github.com/thoreinstein/formkit/internal/prompt"
)

var strengthJSON bool

func init() {
	strengthCmd.Flags().BoolVar(&strengthJSON, "json", false, "print the assessment as JSON")
	rootCmd.AddCommand(strengthCmd)
}

var strengthCmd = &cobra.Command{
	Use:   "strength [password]",
	Short: "Score a password from 0 to 5",
	Long: `Score a password with the five strength rules: at least 6 characters,
at least 10 characters, an uppercase letter, a digit and a symbol.

Without an argument the password is read from the terminal without echo, or
as one line from standard input when it is not a terminal. Prefer that form:
arguments end up in shell history.`,
	Example: `  formkit strength 'Abc12345'
  echo -n 'StrongP@ssw0rd' | formkit strength --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStrength,
}

func runStrength(cmd *cobra.Command, args []string) error {
	var pw string
	if len(args) == 1 {
		pw = args[0]
	} else {
		var err error
		if pw, err = readPassword(cmd.InOrStdin(), cmd.ErrOrStderr()); err != nil {
			return err
		}
	}

	a := password.Assess(pw)
	loggerFor(cmd).Debug("scored password", "score", a.Score, "length", len(pw))

	out := cmd.OutOrStdout()
	if strengthJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(a), "encoding assessment")
	}

	fmt.Fprintf(out, "%s (%d/%d)\n", prompt.StrengthLine(a.Score), a.Score, a.Max)
	for _, c := range []struct {
		ok   bool
		desc string
	}{
		{a.Checks.Length, fmt.Sprintf("at least %d characters", password.MinLength)},
		{a.Checks.ExtendedLength, fmt.Sprintf("at least %d characters", password.ExtendedLength)},
		{a.Checks.Upper, "an uppercase letter"},
		{a.Checks.Digit, "a digit"},
		{a.Checks.Symbol, "a symbol"},
	} {
		mark := color.RedString("✗")
		if c.ok {
			mark = color.GreenString("✓")
		}
		fmt.Fprintf(out, "  %s %s\n", mark, c.desc)
	}
	return nil
}

// readPassword reads without echo from a terminal, or one line otherwise.
func readPassword(in io.Reader, w io.Writer) (string, error) {
	if fd, ok := terminalFd(in); ok {
		fmt.Fprint(w, "Password: ")
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(w)
		if err != nil {
			return "", errors.NewSystemError(errors.Wrap(err, "reading password"), "")
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.NewSystemError(errors.Wrap(err, "reading password"), "")
	}
	return strings.TrimRight(line, "\r\n"), nil
}
