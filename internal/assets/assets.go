package assets

import (
	"context"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"mcbanner/internal/logger"
)

//go:embed images
var embeddedFS embed.FS

// Names of the bundled images.
const (
	DefaultServerIcon      = "default_server_icon"
	ServerBannerBackground = "server_banner_background"
)

var imageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true, ".bmp": true,
}

var fontExts = map[string]bool{
	".ttf": true, ".otf": true,
}

// Store holds raw image data and parsed font families addressed by name.
// It is filled once by NewStore and read-only afterwards.
type Store struct {
	images   map[string][]byte
	families map[string]*Family
}

// NewStore loads the embedded images and built-in font families, then
// overlays anything found in dir. Files in dir replace embedded assets
// with the same name. A missing dir is not an error.
func NewStore(ctx context.Context, dir string) (*Store, error) {
	s := &Store{
		images:   make(map[string][]byte),
		families: make(map[string]*Family),
	}

	if err := s.loadEmbedded(); err != nil {
		return nil, fmt.Errorf("failed to load embedded images: %w", err)
	}
	if err := s.loadBuiltinFonts(); err != nil {
		return nil, fmt.Errorf("failed to load built-in fonts: %w", err)
	}

	if dir != "" {
		if err := s.loadDir(ctx, dir); err != nil {
			return nil, fmt.Errorf("failed to load assets from %s: %w", dir, err)
		}
	}
	return s, nil
}

// Image returns the raw bytes of an image asset.
func (s *Store) Image(name string) ([]byte, bool) {
	data, ok := s.images[name]
	return data, ok
}

// Family returns a font family by name.
func (s *Store) Family(name string) (*Family, error) {
	f, ok := s.families[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown font family %q", name)
	}
	return f, nil
}

// Families returns the names of all loaded font families.
func (s *Store) Families() []string {
	names := make([]string, 0, len(s.families))
	for name := range s.families {
		names = append(names, name)
	}
	return names
}

func (s *Store) loadEmbedded() error {
	return fs.WalkDir(embeddedFS, "images", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		ext := strings.ToLower(path.Ext(p))
		if !imageExts[ext] {
			return nil
		}
		data, err := embeddedFS.ReadFile(p)
		if err != nil {
			return err
		}
		s.images[strings.TrimSuffix(path.Base(p), path.Ext(p))] = data
		return nil
	})
}

func (s *Store) loadDir(ctx context.Context, dir string) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		logger.Debug(ctx, "Assets folder '{{_Folder_}}%s{{|-|}}' does not exist, using bundled assets.", dir)
		return nil
	}
	if err != nil {
		return err
	}

	fonts := make(map[string]map[string][]byte)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		fileName := entry.Name()
		ext := strings.ToLower(filepath.Ext(fileName))
		name := strings.TrimSuffix(fileName, filepath.Ext(fileName))

		switch {
		case imageExts[ext]:
			data, err := os.ReadFile(filepath.Join(dir, fileName))
			if err != nil {
				return err
			}
			logger.Info(ctx, "Using image '{{_File_}}%s{{|-|}}' for '{{_Var_}}%s{{|-|}}'.", fileName, name)
			s.images[name] = data
		case fontExts[ext]:
			data, err := os.ReadFile(filepath.Join(dir, fileName))
			if err != nil {
				return err
			}
			family, variant := splitFontName(name)
			if fonts[family] == nil {
				fonts[family] = make(map[string][]byte)
			}
			fonts[family][variant] = data
		}
	}

	for family, variants := range fonts {
		f, err := parseFamily(family, variants[variantRegular], variants[variantBold], variants[variantItalic])
		if err != nil {
			return err
		}
		logger.Info(ctx, "Loaded font family '{{_Var_}}%s{{|-|}}'.", family)
		s.families[family] = f
	}
	return nil
}

// Extract copies the embedded images into destDir so they can be
// customised. Existing files are left alone.
func Extract(ctx context.Context, destDir string) error {
	return fs.WalkDir(embeddedFS, "images", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, _ := filepath.Rel("images", filepath.FromSlash(p))
		if relPath == "." {
			return os.MkdirAll(destDir, 0755)
		}
		targetPath := filepath.Join(destDir, relPath)

		if d.IsDir() {
			return os.MkdirAll(targetPath, 0755)
		}
		if _, err := os.Stat(targetPath); err == nil {
			logger.Debug(ctx, "Asset '{{_File_}}%s{{|-|}}' already exists, skipping.", targetPath)
			return nil
		}

		logger.Info(ctx, "Extracting asset: {{_File_}}%s{{|-|}}", relPath)

		srcFile, err := embeddedFS.Open(p)
		if err != nil {
			return err
		}
		defer srcFile.Close()

		destFile, err := os.Create(targetPath)
		if err != nil {
			return err
		}
		defer destFile.Close()

		_, err = io.Copy(destFile, srcFile)
		return err
	})
}
