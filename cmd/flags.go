package cmd

import (
	"io"

	"github.com/spf13/pflag"
)

// Options holds the parsed command line.
type Options struct {
	Name     string
	MOTD     []string
	Online   int
	Max      int
	Favicon  string
	Format   string
	Output   string
	File     string
	Ampers   bool
	Watch    bool
	Preview  bool
	Extract  bool
	List     bool
	ShowConf bool
	Verbose  bool
	Debug    bool
	Version  bool
	Help     bool

	flags *pflag.FlagSet
}

// Changed reports whether the named long flag was given on the command line.
func (o *Options) Changed(name string) bool {
	return o.flags != nil && o.flags.Changed(name)
}

// newFlagSet defines the flags used for parsing and help.
func newFlagSet(o *Options) *pflag.FlagSet {
	fs := pflag.NewFlagSet("mcbanner", pflag.ContinueOnError)
	fs.SortFlags = false

	// Banner content
	fs.StringVarP(&o.Name, "name", "n", "", "Server name")
	fs.StringArrayVarP(&o.MOTD, "motd", "m", nil, "MOTD line (repeatable)")
	fs.IntVar(&o.Online, "online", 0, "Online players")
	fs.IntVar(&o.Max, "max", 0, "Max players")
	fs.StringVarP(&o.Favicon, "favicon", "i", "", "Favicon image path")

	// Output
	fs.StringVarP(&o.Format, "format", "F", "", "Output format (png or jpeg)")
	fs.StringVarP(&o.Output, "output", "o", "", "Output path, '-' for stdout")
	fs.BoolVarP(&o.Ampers, "ampersand", "a", false, "Treat & as the formatting marker")

	// Input and modes
	fs.StringVarP(&o.File, "file", "f", "", "Banner definition file (.toml, .yaml)")
	fs.BoolVarP(&o.Watch, "watch", "w", false, "Regenerate when the definition file changes")
	fs.BoolVarP(&o.Preview, "preview", "p", false, "Print the MOTD to the terminal")
	fs.BoolVar(&o.Extract, "extract-assets", false, "Copy default images into the assets folder")
	fs.BoolVarP(&o.List, "list-assets", "l", false, "List available images and fonts")
	fs.BoolVar(&o.ShowConf, "config-show", false, "Show configuration")

	// Modifiers
	fs.BoolVarP(&o.Verbose, "verbose", "v", false, "Verbose output")
	fs.BoolVarP(&o.Debug, "debug", "x", false, "Debug output")
	fs.BoolVarP(&o.Version, "version", "V", false, "Show version")
	fs.BoolVarP(&o.Help, "help", "h", false, "Show help")

	// Errors and usage are printed by the caller
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)
	return fs
}
