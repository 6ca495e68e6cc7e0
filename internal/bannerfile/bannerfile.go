// Package bannerfile loads banner definitions from TOML or YAML files.
//
// A definition looks like:
//
//	name = "My Server"
//	motd = """
//	§aWelcome!
//	§7Second line"""
//	favicon = "icon.png"
//	format = "png"
//	output = "banner.png"
//
//	[players]
//	online = 5
//	max = 20
package bannerfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mcbanner/internal/banner"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Definition is the content of a banner definition file.
type Definition struct {
	Name    string         `toml:"name" yaml:"name"`
	MOTD    string         `toml:"motd" yaml:"motd"`
	Players banner.Players `toml:"players" yaml:"players"`
	// Favicon and Output are relative to the definition file.
	Favicon string `toml:"favicon" yaml:"favicon"`
	Output  string `toml:"output" yaml:"output"`
	Format  string `toml:"format" yaml:"format"`
	// UseAmpersand is nil when the file does not set it.
	UseAmpersand *bool `toml:"use_ampersand" yaml:"use_ampersand"`

	dir string
}

// Load reads and decodes a definition file. The format is chosen by
// extension: .toml, .yaml or .yml.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	def := &Definition{dir: filepath.Dir(path)}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(def)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(def)
	default:
		return nil, fmt.Errorf("unsupported definition file type %q (want .toml, .yaml or .yml)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if strings.TrimSpace(def.Name) == "" {
		return nil, fmt.Errorf("%s: name is required", path)
	}
	return def, nil
}

// Options converts the definition into banner options, reading the
// favicon file if one is named. defaultAmpersand applies when the file
// does not set use_ampersand.
func (d *Definition) Options(defaultAmpersand bool) (banner.Options, error) {
	mimeType, err := banner.ParseFormat(d.Format)
	if err != nil {
		return banner.Options{}, err
	}

	opts := banner.Options{
		Name:         d.Name,
		Players:      d.Players,
		MOTD:         d.MOTD,
		MIMEType:     mimeType,
		UseAmpersand: defaultAmpersand,
	}
	if d.UseAmpersand != nil {
		opts.UseAmpersand = *d.UseAmpersand
	}
	if d.Favicon != "" {
		if opts.Favicon, err = os.ReadFile(d.FaviconPath()); err != nil {
			return banner.Options{}, fmt.Errorf("failed to read favicon: %w", err)
		}
	}
	return opts, nil
}

// FaviconPath returns the favicon path resolved against the file's folder,
// or "" when none is set.
func (d *Definition) FaviconPath() string {
	return d.resolve(d.Favicon)
}

// OutputPath returns the output path resolved against the file's folder,
// or "" when none is set. "-" is kept as is and means standard output.
func (d *Definition) OutputPath() string {
	return d.resolve(d.Output)
}

func (d *Definition) resolve(p string) string {
	if p == "" || p == "-" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(d.dir, p)
}
