package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/formkit/internal/errors"
)

// AppName names formkit's directories under the XDG base directories.
const AppName = "formkit"

// ConfigDirEnv overrides the config directory when set.
const ConfigDirEnv = "FORMKIT_CONFIG_DIR"

// ErrHomeDirNotFound indicates the user's home directory could not be determined.
var ErrHomeDirNotFound = errors.New("home directory not found")

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return errors.Wrapf(os.MkdirAll(path, perm), "creating %s", path)
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// DataHome returns the XDG data home directory.
// On Linux: ~/.local/share
func DataHome() string {
	return xdg.DataHome
}

// ConfigDir returns formkit's config directory: $FORMKIT_CONFIG_DIR when
// set, otherwise <ConfigHome>/formkit.
func ConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns the default config file path: <ConfigDir>/config.yaml.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// FormsDir returns the default directory for user form definitions:
// <ConfigDir>/forms.
func FormsDir() string {
	return filepath.Join(ConfigDir(), "forms")
}

// SnapshotsDir returns where filled forms are saved by default:
// <DataHome>/formkit/snapshots.
func SnapshotsDir() string {
	return filepath.Join(DataHome(), AppName, "snapshots")
}
