package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mcbanner/internal/constants"
	"mcbanner/internal/paths"
)

func useTempHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	paths.ConfigHomeOverride = dir
	paths.DataHomeOverride = dir
	t.Cleanup(func() {
		paths.ConfigHomeOverride = ""
		paths.DataHomeOverride = ""
	})
	return dir
}

func TestLoadCreatesDefaults(t *testing.T) {
	dir := useTempHome(t)

	conf, err := LoadAppConfig()
	if err != nil {
		t.Fatalf("LoadAppConfig() error: %v", err)
	}
	if conf.Fonts.Primary != "gomono" || conf.Banner.MIMEType != "image/png" {
		t.Errorf("unexpected defaults: %+v", conf)
	}
	if want := filepath.Join(dir, "mcbanner", "assets"); conf.AssetsDir != want {
		t.Errorf("AssetsDir = %q; want %q", conf.AssetsDir, want)
	}
	if _, err := os.Stat(paths.GetConfigFilePath()); err != nil {
		t.Errorf("config file not created: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	useTempHome(t)

	conf := Defaults()
	conf.Banner.UseAmpersand = true
	conf.Fonts.Size = 32
	if err := SaveAppConfig(conf); err != nil {
		t.Fatalf("SaveAppConfig() error: %v", err)
	}

	loaded, err := LoadAppConfig()
	if err != nil {
		t.Fatalf("LoadAppConfig() error: %v", err)
	}
	if !loaded.Banner.UseAmpersand {
		t.Error("use_ampersand was not persisted")
	}
	if loaded.Fonts.Size != 32 {
		t.Errorf("font size = %v; want 32", loaded.Fonts.Size)
	}
}

func TestEmptyAssetsFolderUsesDataDir(t *testing.T) {
	useTempHome(t)

	conf := Defaults()
	conf.Paths.AssetsFolder = ""
	if err := SaveAppConfig(conf); err != nil {
		t.Fatalf("SaveAppConfig() error: %v", err)
	}

	loaded, err := LoadAppConfig()
	if err != nil {
		t.Fatalf("LoadAppConfig() error: %v", err)
	}
	if want := paths.GetAssetsDir(); loaded.AssetsDir != want {
		t.Errorf("AssetsDir = %q; want %q", loaded.AssetsDir, want)
	}
}

func TestLoadMergesOutdatedFile(t *testing.T) {
	useTempHome(t)

	path := paths.GetConfigFilePath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	old := "version = \"1.0.0\"\n\n[fonts]\nprimary = \"minecraftia\"\n"
	if err := os.WriteFile(path, []byte(old), 0644); err != nil {
		t.Fatal(err)
	}

	conf, err := LoadAppConfig()
	if err != nil {
		t.Fatalf("LoadAppConfig() error: %v", err)
	}
	if conf.Fonts.Primary != "minecraftia" {
		t.Errorf("primary = %q; file value lost", conf.Fonts.Primary)
	}
	if conf.Fonts.PrimaryLift != 29 || conf.Banner.JPEGQuality != 90 {
		t.Errorf("defaults not merged: %+v", conf)
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), constants.ConfigVersion) {
		t.Errorf("outdated file was not rewritten:\n%s", data)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	useTempHome(t)

	path := paths.GetConfigFilePath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("version = \"not-semver\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAppConfig(); err == nil {
		t.Error("expected error for invalid version")
	}

	if err := os.WriteFile(path, []byte("[fonts\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAppConfig(); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestExpandVariables(t *testing.T) {
	home, _ := os.UserHomeDir()
	if got := ExpandVariables("${HOME}/x"); got != home+"/x" {
		t.Errorf("ExpandVariables(${HOME}/x) = %q", got)
	}
	if got := ExpandVariables("${NOPE}plain"); got != "plain" {
		t.Errorf("unknown variables should expand to empty, got %q", got)
	}
}
