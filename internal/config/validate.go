package config

import (
	"path/filepath"
	"strings"

	"github.com/thoreinstein/formkit/internal/errors"
	"github.com/thoreinstein/formkit/internal/password"
)

// Validation errors for configuration fields.
var (
	ErrUnsupportedVersion = errors.New("unsupported config version")
	ErrStrengthRange      = errors.New("min_strength out of range")
	ErrInvalidPath        = errors.New("invalid path")
)

// Validate checks cfg and returns every problem found.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error
	if cfg.Version != CurrentVersion {
		errs = append(errs, errors.Wrapf(ErrUnsupportedVersion, "version %d", cfg.Version))
	}
	if cfg.MinStrength < 0 || cfg.MinStrength > password.MaxScore {
		errs = append(errs, errors.Wrapf(ErrStrengthRange, "%d not in 0..%d", cfg.MinStrength, password.MaxScore))
	}
	if err := validatePath(cfg.FormsDir); err != nil {
		errs = append(errs, &PathError{Field: KeyFormsDir, Path: cfg.FormsDir, Err: err})
	}
	return errs
}

// validatePath accepts empty paths (meaning the default) and rejects paths
// that cannot name a directory.
func validatePath(path string) error {
	if path == "" {
		return nil
	}
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}
	if cleaned := filepath.Clean(path); cleaned == "." {
		return ErrInvalidPath
	}
	return nil
}

// PathError reports an invalid path setting.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
