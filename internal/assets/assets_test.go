package assets

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"mcbanner/internal/testutils"

	"golang.org/x/image/font/gofont/goregular"
)

func TestNewStoreEmbedded(t *testing.T) {
	s, err := NewStore(context.Background(), "")
	if err != nil {
		t.Fatalf("NewStore() error: %v", err)
	}

	for _, name := range []string{DefaultServerIcon, ServerBannerBackground} {
		data, ok := s.Image(name)
		if !ok || len(data) == 0 {
			t.Errorf("embedded image %q missing", name)
			continue
		}
		if !bytes.HasPrefix(data, []byte("\x89PNG")) {
			t.Errorf("embedded image %q is not a PNG", name)
		}
	}

	for _, name := range []string{FamilyGoMono, FamilyGoRegular} {
		f, err := s.Family(name)
		if err != nil {
			t.Errorf("Family(%q) error: %v", name, err)
			continue
		}
		if f.Regular == nil || f.Bold == nil || f.Italic == nil {
			t.Errorf("family %q has missing variants", name)
		}
		if f.Bold == f.Regular || f.Italic == f.Regular {
			t.Errorf("family %q should have distinct bold and italic fonts", name)
		}
	}

	if _, err := s.Family("nope"); err == nil {
		t.Error("expected error for unknown family")
	}
}

func TestNewStoreOverrides(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ServerBannerBackground+".png"), []byte("custom"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "pixel.ttf"), goregular.TTF, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := NewStore(context.Background(), dir)
	if err != nil {
		t.Fatalf("NewStore() error: %v", err)
	}

	if data, _ := s.Image(ServerBannerBackground); string(data) != "custom" {
		t.Errorf("background was not overridden, got %d bytes", len(data))
	}
	if _, ok := s.Image(DefaultServerIcon); !ok {
		t.Error("embedded icon should still be available")
	}
	if _, ok := s.Image("notes"); ok {
		t.Error("non-image file loaded as image")
	}

	f, err := s.Family("Pixel")
	if err != nil {
		t.Fatalf("Family(pixel) error: %v", err)
	}
	if f.Bold != f.Regular || f.Italic != f.Regular {
		t.Error("missing variants should reuse the regular font")
	}
}

func TestNewStoreBadFont(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.ttf"), []byte("not a font"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewStore(context.Background(), dir); err == nil {
		t.Error("expected error for unparsable font")
	}
}

func TestNewStoreMissingDir(t *testing.T) {
	if _, err := NewStore(context.Background(), filepath.Join(t.TempDir(), "missing")); err != nil {
		t.Errorf("missing assets dir should not fail: %v", err)
	}
}

func TestSplitFontName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"minecraftia", "minecraftia/regular"},
		{"Minecraftia-Bold", "minecraftia/bold"},
		{"minecraftia-italic", "minecraftia/italic"},
		{"code2000", "code2000/regular"},
		{"semi-bold-face", "semi-bold-face/regular"},
	}

	var cases []testutils.TestCase
	for _, tt := range tests {
		family, variant := splitFontName(tt.input)
		cases = append(cases, testutils.Compare("", tt.input, tt.expected, family+"/"+variant))
	}
	testutils.PrintTestTable(t, cases)
}

func TestExtract(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "assets")
	existing := filepath.Join(dir, DefaultServerIcon+".png")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(existing, []byte("mine"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Extract(context.Background(), dir); err != nil {
		t.Fatalf("Extract() error: %v", err)
	}

	if data, _ := os.ReadFile(existing); string(data) != "mine" {
		t.Error("Extract overwrote an existing file")
	}
	data, err := os.ReadFile(filepath.Join(dir, ServerBannerBackground+".png"))
	if err != nil {
		t.Fatalf("background not extracted: %v", err)
	}
	embedded, _ := embeddedFS.ReadFile("images/" + ServerBannerBackground + ".png")
	if !bytes.Equal(data, embedded) {
		t.Error("extracted background differs from embedded copy")
	}
}
