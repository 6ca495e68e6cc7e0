package version

import (
	"os"
	"path/filepath"
	"strings"
)

// ApplicationName is the human-readable name of the application.
var ApplicationName = "MCBanner"

// CommandName is the name of the executable command.
// It is initialized dynamically from the executable filename.
var CommandName = "mcbanner"

// Version is the current version of the application.
// This is intended to be overwritten at build time using:
// -ldflags "-X mcbanner/internal/version.Version=v1.2.3"
var Version = "v0.0.0-dev"

// Commit is the git commit hash of the build.
var Commit = "none"

// BuildDate is the date the binary was built.
var BuildDate = "unknown"

func init() {
	baseName := filepath.Base(os.Args[0])
	name := strings.TrimSuffix(baseName, filepath.Ext(baseName))

	// Keep the default for "go run" and test binaries
	if name == "" || strings.EqualFold(name, "main") || strings.HasSuffix(baseName, ".test") || strings.HasSuffix(name, ".test") {
		return
	}
	CommandName = name
}
