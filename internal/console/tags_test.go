package console

import (
	"fmt"
	"testing"

	"mcbanner/internal/testutils"

	"github.com/muesli/termenv"
)

func forceTrueColor(t *testing.T) {
	t.Helper()
	oldProfile := preferredProfile
	oldTTY := SetTTY(true)
	preferredProfile = termenv.TrueColor
	t.Cleanup(func() {
		preferredProfile = oldProfile
		SetTTY(oldTTY)
	})
}

func TestExpandTags(t *testing.T) {
	RegisterSemanticTag("_TestColor_", "{{|red|}}")
	defer ResetCustomColors()

	tests := []struct {
		input    string
		expected string
	}{
		{"Hello World", "Hello World"},
		{"{{_TestColor_}}Hello", "{{|red|}}Hello"},
		{"Prefix{{_testcolor_}}Suffix", "Prefix{{|red|}}Suffix"},
		{"{{_File_}}x", "{{|cyan::B|}}x"},
		{"{{_Unknown_}}text", "text"},
		{"{{|yellow|}}kept", "{{|yellow|}}kept"},
	}

	var cases []testutils.TestCase
	for _, tt := range tests {
		cases = append(cases, testutils.Compare("", tt.input, tt.expected, ExpandTags(tt.input)))
	}
	testutils.PrintTestTable(t, cases)
}

func TestToANSI(t *testing.T) {
	forceTrueColor(t)

	tests := []struct {
		input    string
		expected string
	}{
		{"{{|red|}}x{{|-|}}", CodeRed + "x" + CodeReset},
		{"{{|:blue|}}x", CodeBlueBg + "x"},
		{"{{|red::B|}}x", CodeRed + CodeBold + "x"},
		{"{{|red::H|}}x", CodeBrightRed + "x"},
		{"{{|::-U|}}x", CodeBoldOff + CodeItalicOff + CodeUnderlineOff + CodeBlinkOff + CodeReverseOff + CodeStrikethroughOff + CodeUnderline + "x"},
		{"{{|#FF0000|}}x", "\x1b[38;2;255;0;0mx"},
		{"{{|nosuchcolor|}}x", "x"},
		{"{{_Notice_}}ok", CodeGreen + "ok"},
	}

	var cases []testutils.TestCase
	for _, tt := range tests {
		cases = append(cases, testutils.Compare("", tt.input, tt.expected, ToANSI(tt.input)))
	}
	testutils.PrintTestTable(t, cases)
}

func TestToANSIStripsWithoutTTY(t *testing.T) {
	old := SetTTY(false)
	defer SetTTY(old)

	if got := ToANSI("{{_File_}}a{{|-|}}b\x1b[31mc"); got != "abc" {
		t.Errorf("ToANSI() = %q; want %q", got, "abc")
	}
}

func TestStrip(t *testing.T) {
	if got := Strip("{{_Var_}}x{{|red::B|}}y\x1b[1;31mz\x1b[0m"); got != "xyz" {
		t.Errorf("Strip() = %q; want %q", got, "xyz")
	}
}

func TestPaletteColors(t *testing.T) {
	forceTrueColor(t)

	tests := []struct {
		input    string
		expected string
	}{
		{"{{|mc-gold|}}x", "\x1b[38;2;255;170;0mx"},
		{"{{|mc-dark_gray|}}x", "\x1b[38;2;85;85;85mx"},
		{"{{|:mc-dark_blue|}}x", "\x1b[48;2;0;0;170mx"},
		{"{{|mc-nosuch|}}x", "x"},
		{"{{|cyan:-:H|}}x", CodeBrightCyan + "x"},
		{"{{|:cyan:H|}}x", CodeCyanBg + "x"},
	}

	var cases []testutils.TestCase
	for _, tt := range tests {
		cases = append(cases, testutils.Compare("", tt.input, tt.expected, ToANSI(tt.input)))
	}
	testutils.PrintTestTable(t, cases)
}

func TestDetectProfile(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want termenv.Profile
	}{
		{"no color wins", map[string]string{"NO_COLOR": "1", "COLORTERM": "truecolor"}, termenv.Ascii},
		{"colorterm truecolor", map[string]string{"COLORTERM": "truecolor", "TERM": "dumb"}, termenv.TrueColor},
		{"colorterm 256", map[string]string{"COLORTERM": "256color"}, termenv.ANSI256},
		{"term direct", map[string]string{"TERM": "xterm-direct"}, termenv.TrueColor},
		{"term 256color", map[string]string{"TERM": "xterm-256color"}, termenv.ANSI256},
		{"term 16color", map[string]string{"TERM": "rxvt-16color"}, termenv.ANSI},
		{"term dumb", map[string]string{"TERM": "dumb"}, termenv.Ascii},
	}

	var cases []testutils.TestCase
	for _, tt := range tests {
		got := detectProfile(func(k string) string { return tt.env[k] })
		cases = append(cases, testutils.Compare(tt.name, fmt.Sprint(tt.env), fmt.Sprint(tt.want), fmt.Sprint(got)))
	}
	testutils.PrintTestTable(t, cases)
}
