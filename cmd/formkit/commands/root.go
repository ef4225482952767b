// Package commands implements the formkit CLI.
package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/formkit/cmd"
	"github.com/thoreinstein/formkit/internal/config"
	"github.com/thoreinstein/formkit/internal/errors"
	"github.com/thoreinstein/formkit/internal/logging"
)

var (
	// verbosity holds the count of -v flags.
	verbosity int
	quiet     bool
	logFormat string
	logFile   string
	// configPath is an explicit --config file.
	configPath string
)

var (
	appConfig     *config.Config
	configLoadErr error
	logCloser     io.Closer
)

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&verbosity, "verbose", "v", "increase verbosity (-v info, -vv debug)")
	pf.BoolVarP(&quiet, "quiet", "q", false, "only log errors")
	pf.StringVar(&logFormat, "log-format", "text", "log format: text, json")
	pf.StringVar(&logFile, "log-file", "", "also write logs to this file as JSON")
	pf.StringVar(&configPath, "config", "", "config file (default <config dir>/formkit/config.yaml)")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("formkit version {{.Version}}\n")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	appConfig, configLoadErr = config.Load(configPath)
}

var rootCmd = &cobra.Command{
	Use:   "formkit",
	Short: "Fill, validate and score forms from the terminal",
	Long: `formkit runs form state and validation from the command line.

Forms are either built in (signup, signin, forgot-password) or defined as
YAML/TOML files in the forms directory. Each form can be filled
interactively, validated from flags, or inspected. The password strength
scorer is available on its own through "formkit strength".`,
	Example: `  # Score a password
  formkit strength 'StrongP@ssw0rd'

  # Validate the sign-up form without prompting
  formkit validate signup --set name=Ada --set email=ada@example.com --set password=hunter22

  # Fill a form interactively
  formkit fill signin

  See Also: formkit forms list, formkit config show`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging builds the logger from the verbosity flags, FORMKIT_DEBUG
// and --log-file, installs it as the default and stores it on the context.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "Pick one of -q or -v")
	}

	format, err := logging.ParseFormat(logFormat)
	if err != nil {
		return errors.NewUserError(err, "Use --log-format text or --log-format json")
	}

	level := slog.LevelError
	if !quiet {
		v := verbosity
		if v == 0 && viper.GetBool(config.KeyDebug) {
			v = 2
		}
		level = logging.LevelFromVerbosity(v)
	}

	handler := logging.NewFormatHandler(logging.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
	})

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrapf(err, "opening log file %s", logFile), "Check the --log-file path")
		}
		closeLogFile()
		logCloser = f
		fileHandler := logging.NewFormatHandler(logging.Config{
			Level:  min(level, slog.LevelInfo),
			Format: logging.FormatJSON,
			Output: f,
		})
		handler = logging.NewMultiHandler(handler, fileHandler)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))
	return nil
}

// checkConfig surfaces config load errors for commands that depend on it.
func checkConfig(cmd *cobra.Command) error {
	switch cmd.Name() {
	case "help", "version", "path":
		return nil
	}
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	return nil
}

func closeLogFile() {
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
}

// Execute runs the root command. Ctrl-C cancels the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	defer closeLogFile()

	return rootCmd.ExecuteContext(ctx)
}

// PrintError writes err and its suggestion, if any, in the CLI's error
// format.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	fmtErr := err.Error()
	io.WriteString(w, red("Error:")+" "+fmtErr+"\n")

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		io.WriteString(w, "  "+exitErr.Suggestion+"\n")
	}
}
