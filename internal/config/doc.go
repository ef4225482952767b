// Package config loads formkit's own settings with Viper.
//
// Settings come from, in increasing precedence, built-in defaults, the YAML
// file at <ConfigDir>/config.yaml (see [paths.ConfigFile]) and FORMKIT_*
// environment variables:
//
//	version: 1
//	forms_dir: ~/.config/formkit/forms
//	min_strength: 3     # extra password strength rule, 0 disables it
//	mask_values: true   # hide password values in saved snapshots
//	debug: false
//
// [Load] validates what it reads; an invalid file yields an error wrapping
// errors.ErrInvalidConfig.
package config
