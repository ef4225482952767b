package config

import (
	"io/fs"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/thoreinstein/formkit/internal/errors"
	"github.com/thoreinstein/formkit/internal/paths"
)

// EnvPrefix is prepended to setting names to form environment variables,
// e.g. FORMKIT_MIN_STRENGTH.
const EnvPrefix = "FORMKIT"

// CurrentVersion is the only config file version understood.
const CurrentVersion = 1

// Setting keys.
const (
	KeyVersion     = "version"
	KeyFormsDir    = "forms_dir"
	KeyMinStrength = "min_strength"
	KeyMaskValues  = "mask_values"
	KeyDebug       = "debug"
)

// Config is formkit's resolved configuration.
type Config struct {
	Version     int    `mapstructure:"version" yaml:"version"`
	FormsDir    string `mapstructure:"forms_dir" yaml:"forms_dir"`
	MinStrength int    `mapstructure:"min_strength" yaml:"min_strength"`
	MaskValues  bool   `mapstructure:"mask_values" yaml:"mask_values"`
	Debug       bool   `mapstructure:"debug" yaml:"debug"`
}

// Default returns the configuration used when no file or environment
// overrides exist.
func Default() *Config {
	return &Config{
		Version:    CurrentVersion,
		FormsDir:   paths.FormsDir(),
		MaskValues: true,
	}
}

// Init registers defaults, the config search path and environment binding
// on the global Viper instance. Call it once before Load.
func Init() {
	def := Default()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	viper.SetDefault(KeyVersion, def.Version)
	viper.SetDefault(KeyFormsDir, def.FormsDir)
	viper.SetDefault(KeyMinStrength, def.MinStrength)
	viper.SetDefault(KeyMaskValues, def.MaskValues)
	viper.SetDefault(KeyDebug, def.Debug)
}

// Load reads the configuration. An explicit path must exist; without one a
// missing file means defaults. The result is validated.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
		switch {
		case missing && path != "":
			return nil, errors.Wrapf(errors.ErrNotFound, "config file %s", path)
		case !missing:
			return nil, errors.Wrapf(errors.ErrInvalidConfig, "reading config file: %v", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "decoding config: %v", err)
	}
	if cfg.FormsDir != "" {
		cfg.FormsDir = expandHome(cfg.FormsDir)
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "validating config: %v", errs[0])
	}
	return &cfg, nil
}

// File returns the config file Viper read, or the default location when
// none was found.
func File() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return paths.ConfigFile()
}

func expandHome(p string) string {
	if p != "~" && !hasHomePrefix(p) {
		return p
	}
	home, err := paths.ResolveHome()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}

func hasHomePrefix(p string) bool {
	return len(p) > 1 && p[0] == '~' && (p[1] == '/' || p[1] == filepath.Separator)
}
