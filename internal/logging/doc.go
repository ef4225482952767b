// Package logging builds the slog loggers used by formkit.
//
// Text output goes through [Handler], which colors levels on a terminal and
// masks attributes whose key looks like a secret (password, token, ...).
// JSON output uses the standard library handler and is meant for log files.
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(1),
//		Format: logging.FormatText,
//	})
//	ctx = logging.NewContext(ctx, logger)
//
// Tests should use [ForTest] so log lines only show up for failing tests.
package logging
