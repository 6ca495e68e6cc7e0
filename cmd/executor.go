package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"syscall"
	"time"

	"mcbanner/internal/assets"
	"mcbanner/internal/banner"
	"mcbanner/internal/bannerfile"
	"mcbanner/internal/config"
	"mcbanner/internal/console"
	"mcbanner/internal/constants"
	"mcbanner/internal/logger"
	"mcbanner/internal/output"
	"mcbanner/internal/paths"
	"mcbanner/internal/version"
	"mcbanner/internal/watch"
)

// Execute runs the parsed command line and returns the process exit code.
func Execute(ctx context.Context, opts *Options) int {
	switch {
	case opts.Debug:
		logger.SetLevel(logger.LevelDebug)
	case opts.Verbose:
		logger.SetLevel(logger.LevelInfo)
	}

	if opts.Help {
		PrintHelp("")
		return 0
	}
	if opts.Version {
		handleVersion()
		return 0
	}

	conf, err := config.LoadAppConfig()
	if err != nil {
		logger.Error(ctx, "Failed to load configuration: %v", err)
		return 1
	}

	if opts.ShowConf {
		handleConfigShow(&conf)
		return 0
	}
	if opts.Extract {
		if err := assets.Extract(ctx, conf.AssetsDir); err != nil {
			logger.Error(ctx, "Failed to extract assets: %v", err)
			return 1
		}
		logger.Notice(ctx, "Assets extracted to '{{_Folder_}}%s{{|-|}}'.", conf.AssetsDir)
		return 0
	}

	store, err := assets.NewStore(ctx, conf.AssetsDir)
	if err != nil {
		logger.Error(ctx, "Failed to load assets: %v", err)
		return 1
	}
	if opts.List {
		handleListAssets(store)
		return 0
	}

	composer, err := banner.NewComposer(store, settingsFromConfig(conf))
	if err != nil {
		logger.Error(ctx, "Failed to set up the banner composer: %v", err)
		return 1
	}

	j := &job{opts: opts, conf: conf, composer: composer}
	if err := j.run(ctx); err != nil {
		logger.Error(ctx, "%v", err)
		if !opts.Watch {
			return 1
		}
	}

	if opts.Watch {
		return j.watch(ctx)
	}
	return 0
}

func settingsFromConfig(conf config.AppConfig) banner.Settings {
	s := banner.DefaultSettings()
	if conf.Fonts.Primary != "" {
		s.PrimaryFont = conf.Fonts.Primary
	}
	if conf.Fonts.Fallback != "" {
		s.FallbackFont = conf.Fonts.Fallback
	}
	if conf.Fonts.Size > 0 {
		s.FontSize = conf.Fonts.Size
	}
	s.PrimaryLift = conf.Fonts.PrimaryLift
	if conf.Banner.JPEGQuality > 0 {
		s.JPEGQuality = conf.Banner.JPEGQuality
	}
	return s
}

// job generates one banner from the command line, definition file and
// configuration, in that order of precedence.
type job struct {
	opts     *Options
	conf     config.AppConfig
	composer *banner.Composer

	// favicon is the favicon file last used, watched alongside the definition.
	favicon string
	// debounce overrides watch.DefaultDebounce when set.
	debounce time.Duration
}

func (j *job) run(ctx context.Context) error {
	bopts, outPath, err := j.resolve()
	if err != nil {
		return err
	}

	if j.opts.Preview {
		// Keep the preview out of the image stream
		if outPath == "-" {
			printPreview(os.Stderr, console.IsTerminal(os.Stderr), bopts)
		} else {
			printPreview(os.Stdout, console.IsTTY(), bopts)
		}
	}

	data, err := j.composer.Generate(ctx, bopts)
	if err != nil {
		return fmt.Errorf("failed to generate banner: %w", err)
	}

	if outPath == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := output.Write(ctx, outPath, data); err != nil {
		return err
	}
	logger.Notice(ctx, "Banner written to '{{_File_}}%s{{|-|}}'.", outPath)
	return nil
}

// resolve merges the configuration, definition file and flags into banner
// options and an output path.
func (j *job) resolve() (banner.Options, string, error) {
	o := j.opts
	bopts := banner.Options{
		MIMEType:     j.conf.Banner.MIMEType,
		UseAmpersand: j.conf.Banner.UseAmpersand,
	}
	var outPath string
	j.favicon = ""

	if o.File != "" {
		def, err := bannerfile.Load(o.File)
		if err != nil {
			return bopts, "", err
		}
		if bopts, err = def.Options(j.conf.Banner.UseAmpersand); err != nil {
			return bopts, "", err
		}
		if def.Format == "" {
			bopts.MIMEType = j.conf.Banner.MIMEType
		}
		outPath = def.OutputPath()
		j.favicon = def.FaviconPath()
	}

	if o.Changed("name") {
		bopts.Name = o.Name
	}
	if o.Changed("motd") {
		bopts.MOTD = strings.Join(o.MOTD, "\n")
	}
	if o.Changed("online") {
		bopts.Players.Online = o.Online
	}
	if o.Changed("max") {
		bopts.Players.Max = o.Max
	}
	if o.Changed("ampersand") {
		bopts.UseAmpersand = o.Ampers
	}
	if o.Changed("format") {
		mimeType, err := banner.ParseFormat(o.Format)
		if err != nil {
			return bopts, "", err
		}
		bopts.MIMEType = mimeType
	}
	if o.Changed("favicon") {
		data, err := os.ReadFile(o.Favicon)
		if err != nil {
			return bopts, "", fmt.Errorf("failed to read favicon: %w", err)
		}
		bopts.Favicon = data
		j.favicon = o.Favicon
	}
	if o.Changed("output") {
		outPath = o.Output
	}

	mimeType, err := banner.ParseFormat(bopts.MIMEType)
	if err != nil {
		return bopts, "", err
	}
	bopts.MIMEType = mimeType

	if strings.TrimSpace(bopts.Name) == "" {
		return bopts, "", errors.New("a server name is required")
	}
	if outPath == "" {
		outPath = filepath.Join(j.conf.OutputDir, constants.DefaultOutputName+banner.Extension(bopts.MIMEType))
	}
	return bopts, outPath, nil
}

// watch regenerates the banner until interrupted.
func (j *job) watch(ctx context.Context) int {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := j.watchFiles(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error(ctx, "Watch stopped: %v", err)
		return 1
	}
	return 0
}

// watchFiles watches the definition file and the favicon it names. When a
// regeneration switches to another favicon the watcher is rebuilt for the
// new set of files.
func (j *job) watchFiles(ctx context.Context) error {
	for {
		files := j.watchedFiles()
		logger.Notice(ctx, "Watching '{{_File_}}%s{{|-|}}' for changes. Press Ctrl+C to stop.", strings.Join(files, ", "))

		watchCtx, restart := context.WithCancel(ctx)
		w := watch.New(func(ctx context.Context) error {
			err := j.run(ctx)
			if !slices.Equal(j.watchedFiles(), files) {
				restart()
			}
			return err
		}, files...)
		if j.debounce > 0 {
			w.SetDebounce(j.debounce)
		}

		err := w.Watch(watchCtx)
		restart()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		logger.Info(ctx, "Favicon changed, updating watched files.")
	}
}

func (j *job) watchedFiles() []string {
	files := []string{j.opts.File}
	if j.favicon != "" {
		files = append(files, j.favicon)
	}
	return files
}

func printPreview(w io.Writer, color bool, o banner.Options) {
	motdText := strings.TrimSpace(o.MOTD)
	if motdText == "" {
		motdText = banner.DefaultMOTD
	}
	players := fmt.Sprintf("%d/%d", o.Players.Online, o.Players.Max)

	if color {
		fmt.Fprintln(w, console.MOTDToANSI("§f"+o.Name+"§8  "+players, false))
		fmt.Fprintln(w, console.MOTDToANSI(motdText, o.UseAmpersand))
		return
	}
	fmt.Fprintln(w, o.Name+"  "+players)
	fmt.Fprintln(w, console.StripMOTD(motdText, o.UseAmpersand))
}

func handleVersion() {
	console.Println(fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}]", version.ApplicationName, version.Version))
	console.Println(fmt.Sprintf("Commit {{_Var_}}%s{{|-|}}, built {{_Var_}}%s{{|-|}}", version.Commit, version.BuildDate))
}

func handleListAssets(store *assets.Store) {
	headers := []string{
		"{{_UsageCommand_}}Kind{{|-|}}",
		"{{_UsageCommand_}}Name{{|-|}}",
	}
	var data []string
	for _, name := range []string{assets.DefaultServerIcon, assets.ServerBannerBackground} {
		if _, ok := store.Image(name); ok {
			data = append(data, "Image", "{{_File_}}"+name+"{{|-|}}")
		}
	}
	families := store.Families()
	slices.Sort(families)
	for _, name := range families {
		data = append(data, "Font", "{{_Var_}}"+name+"{{|-|}}")
	}
	console.PrintTable(headers, data, console.IsTTY())
}

func handleConfigShow(conf *config.AppConfig) {
	headers := []string{
		"{{_UsageCommand_}}Option{{|-|}}",
		"{{_UsageCommand_}}Value{{|-|}}",
		"{{_UsageCommand_}}Expanded Value{{|-|}}",
	}
	rows := [][3]string{
		{"Config File", paths.GetConfigFilePath(), paths.GetConfigFilePath()},
		{"Assets Folder", conf.Paths.AssetsFolder, conf.AssetsDir},
		{"Output Folder", conf.Paths.OutputFolder, conf.OutputDir},
		{"Format", conf.Banner.MIMEType, ""},
		{"JPEG Quality", strconv.Itoa(conf.Banner.JPEGQuality), ""},
		{"Use Ampersand", strconv.FormatBool(conf.Banner.UseAmpersand), ""},
		{"Primary Font", conf.Fonts.Primary, ""},
		{"Fallback Font", conf.Fonts.Fallback, ""},
		{"Font Size", strconv.FormatFloat(conf.Fonts.Size, 'f', -1, 64), ""},
		{"Primary Lift", strconv.FormatFloat(conf.Fonts.PrimaryLift, 'f', -1, 64), ""},
	}
	var data []string
	for _, r := range rows {
		data = append(data, r[0], "{{_Var_}}"+r[1]+"{{|-|}}", "{{_Folder_}}"+r[2]+"{{|-|}}")
	}
	console.PrintTable(headers, data, console.IsTTY())
}
