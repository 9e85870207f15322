// Package paths centralizes promptline's filesystem locations,
// following the XDG Base Directory specification.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for promptline
	EnvConfigDir = "PROMPTLINE_CONFIG_DIR"
)

const (
	// AppDirName is the directory name under the XDG bases
	AppDirName = "promptline"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "promptline.toml"
)

// ConfigDir returns the directory holding the user configuration.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFile returns the full path of the user configuration file.
// The file is optional; callers must tolerate it not existing.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}
