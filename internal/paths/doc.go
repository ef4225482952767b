// Package paths resolves formkit's configuration and data directories.
//
// The package wraps github.com/adrg/xdg for cross-platform XDG Base
// Directory compliance. On Linux the layout is:
//
//	~/.config/formkit/config.yaml       configuration
//	~/.config/formkit/forms/*.yaml      user form definitions
//	~/.local/share/formkit/snapshots/   saved form snapshots
//
// FORMKIT_CONFIG_DIR replaces ~/.config/formkit entirely.
package paths
