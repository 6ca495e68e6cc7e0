package motd

import (
	"errors"
	"fmt"
	"regexp"
)

// Formatting markers. Minecraft uses the section sign; many server
// panels accept an ampersand instead.
const (
	SectionSign = '§'
	Ampersand   = '&'
)

// Format names resolved from the format code table.
const (
	FormatObfuscated    = "obfuscated"
	FormatBold          = "bold"
	FormatStrikethrough = "strikethrough"
	FormatUnderlined    = "underlined"
	FormatItalic        = "italic"
	FormatReset         = "reset"
)

// Color names used by the banner composer outside of MOTD text.
const (
	ColorGray     = "gray"
	ColorDarkGray = "dark_gray"
	ColorWhite    = "white"
)

// colorCodes maps a color code to its semantic name.
// "g" is Bedrock's minecoin_gold and is accepted alongside the Java codes.
var colorCodes = map[rune]string{
	'4': "dark_red",
	'c': "red",
	'6': "gold",
	'e': "yellow",
	'2': "dark_green",
	'a': "green",
	'b': "aqua",
	'3': "dark_aqua",
	'1': "dark_blue",
	'9': "blue",
	'd': "light_purple",
	'5': "dark_purple",
	'f': "white",
	'7': "gray",
	'8': "dark_gray",
	'0': "black",
	'g': "minecoin_gold",
}

// colorHex maps a semantic color name to its RGB value.
var colorHex = map[string]string{
	"dark_red":      "#AA0000",
	"red":           "#FF5555",
	"gold":          "#FFAA00",
	"yellow":        "#FFFF55",
	"dark_green":    "#00AA00",
	"green":         "#55FF55",
	"aqua":          "#55FFFF",
	"dark_aqua":     "#00AAAA",
	"dark_blue":     "#0000AA",
	"blue":          "#5555FF",
	"light_purple":  "#FF55FF",
	"dark_purple":   "#AA00AA",
	"white":         "#FFFFFF",
	"gray":          "#AAAAAA",
	"dark_gray":     "#555555",
	"black":         "#000000",
	"minecoin_gold": "#DDD605",
}

var formatCodes = map[rune]string{
	'k': FormatObfuscated,
	'l': FormatBold,
	'm': FormatStrikethrough,
	'n': FormatUnderlined,
	'o': FormatItalic,
	'r': FormatReset,
}

const (
	requiredColorCodes  = "0123456789abcdefg"
	requiredFormatCodes = "klmnor"
)

var hexRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// CodeTables holds the color and format lookups. It is never modified
// after construction and can be shared between goroutines.
type CodeTables struct {
	colors  map[rune]string
	hex     map[string]string
	formats map[rune]string
}

// Default is the validated table set used by the package level helpers.
var Default = MustCodeTables()

// NewCodeTables builds the standard tables and checks that every color and
// format code is present.
func NewCodeTables() (*CodeTables, error) {
	return newCodeTables(colorCodes, colorHex, formatCodes)
}

// MustCodeTables is like NewCodeTables but panics on error.
func MustCodeTables() *CodeTables {
	t, err := NewCodeTables()
	if err != nil {
		panic(err)
	}
	return t
}

func newCodeTables(colors map[rune]string, hex map[string]string, formats map[rune]string) (*CodeTables, error) {
	t := &CodeTables{
		colors:  make(map[rune]string, len(colors)),
		hex:     make(map[string]string, len(hex)),
		formats: make(map[rune]string, len(formats)),
	}
	for k, v := range colors {
		t.colors[k] = v
	}
	for k, v := range hex {
		t.hex[k] = v
	}
	for k, v := range formats {
		t.formats[k] = v
	}

	var errs []error
	for _, code := range requiredColorCodes {
		name, ok := t.colors[code]
		if !ok {
			errs = append(errs, fmt.Errorf("color code %q is missing", code))
			continue
		}
		value, ok := t.hex[name]
		if !ok {
			errs = append(errs, fmt.Errorf("color %q has no hex value", name))
			continue
		}
		if !hexRegex.MatchString(value) {
			errs = append(errs, fmt.Errorf("color %q has invalid hex value %q", name, value))
		}
	}
	for _, code := range requiredFormatCodes {
		if _, ok := t.formats[code]; !ok {
			errs = append(errs, fmt.Errorf("format code %q is missing", code))
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid code tables: %w", errors.Join(errs...))
	}
	return t, nil
}

// Color returns the color name for a code character.
func (t *CodeTables) Color(code rune) (string, bool) {
	name, ok := t.colors[code]
	return name, ok
}

// Format returns the format name for a code character.
func (t *CodeTables) Format(code rune) (string, bool) {
	name, ok := t.formats[code]
	return name, ok
}

// Hex returns the RGB value of a color name, e.g. "#FF5555" for "red".
func (t *CodeTables) Hex(name string) (string, bool) {
	value, ok := t.hex[name]
	return value, ok
}

// MustHex is Hex for names that are known to exist.
func (t *CodeTables) MustHex(name string) string {
	value, ok := t.hex[name]
	if !ok {
		panic(fmt.Sprintf("motd: unknown color %q", name))
	}
	return value
}

// resolve looks a code up in the color table first, then the format table.
// Unknown codes resolve to an empty name.
func (t *CodeTables) resolve(code rune) (name string, isColor bool) {
	if name, ok := t.colors[code]; ok {
		return name, true
	}
	return t.formats[code], false
}
