package paths

import (
	"mcbanner/internal/constants"
	"mcbanner/internal/version"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
)

var (
	// ConfigHomeOverride allows overriding the config home for tests.
	ConfigHomeOverride string
	// StateHomeOverride allows overriding the state home for tests.
	StateHomeOverride string
	// DataHomeOverride allows overriding the data home for tests.
	DataHomeOverride string
)

func appDirName() string {
	return strings.ToLower(version.ApplicationName)
}

// GetConfigDir returns the folder holding the config file
// (e.g., ~/.config/mcbanner).
func GetConfigDir() string {
	if ConfigHomeOverride != "" {
		return filepath.Join(ConfigHomeOverride, appDirName())
	}
	if runtime.GOOS == "darwin" {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", appDirName())
	}
	return filepath.Join(xdg.ConfigHome, appDirName())
}

// GetConfigFilePath returns the absolute path to mcbanner.toml.
func GetConfigFilePath() string {
	return filepath.Join(GetConfigDir(), constants.AppConfigFileName)
}

// GetStateDir returns the folder for logs and other state.
func GetStateDir() string {
	if StateHomeOverride != "" {
		return filepath.Join(StateHomeOverride, appDirName())
	}
	return filepath.Join(xdg.StateHome, appDirName())
}

// GetLogFilePath returns the path of the application log file.
func GetLogFilePath() string {
	return filepath.Join(GetStateDir(), constants.LogFileName)
}

// GetDataDir returns the folder for user supplied data.
func GetDataDir() string {
	if DataHomeOverride != "" {
		return filepath.Join(DataHomeOverride, appDirName())
	}
	return filepath.Join(xdg.DataHome, appDirName())
}

// GetAssetsDir returns the default folder for user images and fonts.
func GetAssetsDir() string {
	return filepath.Join(GetDataDir(), constants.AssetsDirName)
}
