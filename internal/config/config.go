package config

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"mcbanner/internal/constants"
	"mcbanner/internal/paths"

	"github.com/Masterminds/semver/v3"
	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
)

// AppConfig holds the application configuration settings.
type AppConfig struct {
	Version string       `toml:"version"`
	Banner  BannerConfig `toml:"banner"`
	Fonts   FontConfig   `toml:"fonts"`
	Paths   PathConfig   `toml:"paths"`

	// These are helper fields for runtime use, not saved to TOML
	AssetsDir string `toml:"-"`
	OutputDir string `toml:"-"`
}

// BannerConfig holds output defaults for generated banners.
type BannerConfig struct {
	MIMEType     string `toml:"mime_type"`
	JPEGQuality  int    `toml:"jpeg_quality"`
	UseAmpersand bool   `toml:"use_ampersand"`
}

// FontConfig selects the font families used on the banner.
type FontConfig struct {
	Primary     string  `toml:"primary"`
	Fallback    string  `toml:"fallback"`
	Size        float64 `toml:"size"`
	PrimaryLift float64 `toml:"primary_lift"`
}

// PathConfig holds directory path settings.
type PathConfig struct {
	AssetsFolder string `toml:"assets_folder"`
	OutputFolder string `toml:"output_folder"`
}

// Defaults returns the configuration written on first run.
func Defaults() AppConfig {
	return AppConfig{
		Version: constants.ConfigVersion,
		Banner: BannerConfig{
			MIMEType:    "image/png",
			JPEGQuality: 90,
		},
		Fonts: FontConfig{
			Primary:     "gomono",
			Fallback:    "goregular",
			Size:        40,
			PrimaryLift: 29,
		},
		Paths: PathConfig{
			AssetsFolder: "${XDG_DATA_HOME}/mcbanner/assets",
			OutputFolder: ".",
		},
	}
}

// ExpandVariables expands environment variables in the config values.
// It supports:
// - ${XDG_CONFIG_HOME} -> xdg.ConfigHome
// - ${XDG_DATA_HOME}   -> xdg.DataHome
// - ${XDG_STATE_HOME}  -> xdg.StateHome
// - ${XDG_CACHE_HOME}  -> xdg.CacheHome
// - ${HOME}            -> os.UserHomeDir()
// - ${USER}            -> Current username
func ExpandVariables(val string) string {
	mapper := func(varName string) string {
		switch varName {
		case "XDG_CONFIG_HOME":
			return xdg.ConfigHome
		case "XDG_DATA_HOME":
			if paths.DataHomeOverride != "" {
				return paths.DataHomeOverride
			}
			return xdg.DataHome
		case "XDG_STATE_HOME":
			return xdg.StateHome
		case "XDG_CACHE_HOME":
			return xdg.CacheHome
		case "HOME":
			home, err := os.UserHomeDir()
			if err != nil {
				return ""
			}
			return home
		case "USER":
			u, err := user.Current()
			if err != nil {
				return os.Getenv("USERNAME") // Fallback for Windows
			}
			return u.Username
		}
		return ""
	}
	return os.Expand(val, mapper)
}

// LoadAppConfig reads the configuration file and returns the configuration.
// A missing file is created with defaults. A file written by an older
// version gets the new defaults merged in and is saved back.
func LoadAppConfig() (AppConfig, error) {
	conf := Defaults()
	path := paths.GetConfigFilePath()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		conf.expand()
		return conf, SaveAppConfig(conf)
	case err != nil:
		return conf, fmt.Errorf("failed to read %s: %w", path, err)
	}

	// Decoding over the defaults keeps every key the file does not set
	if err := toml.Unmarshal(data, &conf); err != nil {
		return conf, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	outdated, err := isOutdated(conf.Version)
	if err != nil {
		return conf, fmt.Errorf("invalid version in %s: %w", path, err)
	}
	conf.expand()
	if outdated {
		conf.Version = constants.ConfigVersion
		if err := SaveAppConfig(conf); err != nil {
			return conf, err
		}
	}
	return conf, nil
}

// isOutdated reports whether a config written with version v predates
// the current schema. An empty version counts as outdated.
func isOutdated(v string) (bool, error) {
	if v == "" {
		return true, nil
	}
	fileVersion, err := semver.NewVersion(v)
	if err != nil {
		return false, err
	}
	return fileVersion.LessThan(semver.MustParse(constants.ConfigVersion)), nil
}

func (c *AppConfig) expand() {
	c.AssetsDir = ExpandVariables(c.Paths.AssetsFolder)
	if strings.TrimSpace(c.AssetsDir) == "" {
		c.AssetsDir = paths.GetAssetsDir()
	}
	c.OutputDir = ExpandVariables(c.Paths.OutputFolder)
}

// SaveAppConfig writes the configuration to mcbanner.toml.
func SaveAppConfig(conf AppConfig) error {
	path := paths.GetConfigFilePath()

	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(conf)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
