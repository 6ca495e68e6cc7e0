package banner

import (
	"fmt"
	"strings"

	"mcbanner/internal/assets"
	"mcbanner/internal/constants"
)

// Output formats.
const (
	MIMETypePNG  = "image/png"
	MIMETypeJPEG = "image/jpeg"
)

// Banner geometry.
const (
	Width  = constants.BannerWidth
	Height = constants.BannerHeight
)

// DefaultMOTD is drawn when the MOTD is empty after trimming.
const DefaultMOTD = "§7A Minecraft Server"

// Players holds the player counts shown in the top right corner.
type Players struct {
	Max    int `toml:"max" yaml:"max"`
	Online int `toml:"online" yaml:"online"`
}

// Options describes one banner.
type Options struct {
	Name    string  `toml:"name" yaml:"name"`
	Players Players `toml:"players" yaml:"players"`
	// MOTD may hold several lines separated by "\n" or "\r\n".
	MOTD string `toml:"motd" yaml:"motd"`
	// Favicon is an encoded image. Empty means the default server icon.
	Favicon []byte `toml:"-" yaml:"-"`
	// MIMEType selects the output format. Empty means PNG; any value other
	// than MIMETypePNG encodes JPEG.
	MIMEType     string `toml:"mime_type" yaml:"mime_type"`
	UseAmpersand bool   `toml:"use_ampersand" yaml:"use_ampersand"`
}

// Settings configures a Composer.
type Settings struct {
	PrimaryFont  string
	FallbackFont string
	// FontSize is in pixels.
	FontSize    float64
	PrimaryLift float64
	JPEGQuality int
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		PrimaryFont:  assets.FamilyGoMono,
		FallbackFont: assets.FamilyGoRegular,
		FontSize:     40,
		PrimaryLift:  29,
		JPEGQuality:  90,
	}
}

// ParseFormat maps a format name ("png", "jpeg", "jpg") or a MIME type to
// the MIME type used in Options.
func ParseFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "png", MIMETypePNG:
		return MIMETypePNG, nil
	case "jpeg", "jpg", MIMETypeJPEG:
		return MIMETypeJPEG, nil
	}
	return "", fmt.Errorf("unsupported banner format %q (want png or jpeg)", format)
}

// Extension returns the file extension, with the dot, for a MIME type.
func Extension(mimeType string) string {
	if outputMIMEType(mimeType) == MIMETypeJPEG {
		return ".jpg"
	}
	return ".png"
}
