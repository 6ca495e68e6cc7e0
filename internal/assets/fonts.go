package assets

import (
	"fmt"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Built-in font families.
const (
	FamilyGoMono    = "gomono"
	FamilyGoRegular = "goregular"
)

const (
	variantRegular = "regular"
	variantBold    = "bold"
	variantItalic  = "italic"
)

// Family is a font with its bold and italic variants. A variant that was
// not supplied points at the regular font.
type Family struct {
	Name    string
	Regular *opentype.Font
	Bold    *opentype.Font
	Italic  *opentype.Font
}

func (s *Store) loadBuiltinFonts() error {
	builtin := []struct {
		name                  string
		regular, bold, italic []byte
	}{
		{FamilyGoMono, gomono.TTF, gomonobold.TTF, gomonoitalic.TTF},
		{FamilyGoRegular, goregular.TTF, gobold.TTF, goitalic.TTF},
	}
	for _, b := range builtin {
		f, err := parseFamily(b.name, b.regular, b.bold, b.italic)
		if err != nil {
			return err
		}
		s.families[b.name] = f
	}
	return nil
}

// parseFamily parses the font files of a family. regular is required.
func parseFamily(name string, regular, bold, italic []byte) (*Family, error) {
	if len(regular) == 0 {
		return nil, fmt.Errorf("font family %q has no regular font", name)
	}
	f := &Family{Name: name}

	var err error
	if f.Regular, err = opentype.Parse(regular); err != nil {
		return nil, fmt.Errorf("failed to parse %s regular font: %w", name, err)
	}
	f.Bold, f.Italic = f.Regular, f.Regular

	if len(bold) > 0 {
		if f.Bold, err = opentype.Parse(bold); err != nil {
			return nil, fmt.Errorf("failed to parse %s bold font: %w", name, err)
		}
	}
	if len(italic) > 0 {
		if f.Italic, err = opentype.Parse(italic); err != nil {
			return nil, fmt.Errorf("failed to parse %s italic font: %w", name, err)
		}
	}
	return f, nil
}

// splitFontName maps "minecraftia-bold" to ("minecraftia", "bold").
func splitFontName(fileName string) (family, variant string) {
	lower := strings.ToLower(fileName)
	for _, v := range []string{variantBold, variantItalic} {
		if base, ok := strings.CutSuffix(lower, "-"+v); ok {
			return base, v
		}
	}
	return lower, variantRegular
}
