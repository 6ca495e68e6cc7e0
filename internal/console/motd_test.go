package console

import (
	"strings"
	"testing"

	"mcbanner/internal/testutils"

	"github.com/muesli/termenv"
)

func TestStripMOTD(t *testing.T) {
	tests := []struct {
		input     string
		ampersand bool
		expected  string
	}{
		{"§aHello §lWorld", false, "Hello World"},
		{"§7Line one\n§cLine two", false, "Line one\nLine two"},
		{"&aHello", true, "Hello"},
		{"&aHello", false, "&aHello"},
		{"plain", false, "plain"},
		{"§zunknown", false, "unknown"},
	}

	var cases []testutils.TestCase
	for _, tt := range tests {
		cases = append(cases, testutils.Compare("", tt.input, tt.expected, StripMOTD(tt.input, tt.ampersand)))
	}
	testutils.PrintTestTable(t, cases)
}

func TestMOTDToANSI(t *testing.T) {
	forceTrueColor(t)

	got := MOTDToANSI("§cRed§lBold", false)
	if !strings.Contains(got, "38;2;255;85;85") {
		t.Errorf("expected red truecolor sequence in %q", got)
	}
	if !strings.Contains(got, "1;38;2;255;85;85") && !strings.Contains(got, "38;2;255;85;85;1") {
		t.Errorf("expected bold red sequence in %q", got)
	}
	if StripANSI(got) != "RedBold" {
		t.Errorf("visible text = %q; want %q", StripANSI(got), "RedBold")
	}
}

func TestMOTDToANSIAscii(t *testing.T) {
	old := preferredProfile
	preferredProfile = termenv.Ascii
	defer func() { preferredProfile = old }()

	if got := MOTDToANSI("§a§nHi\n§7there", false); got != "Hi\nthere" {
		t.Errorf("MOTDToANSI() = %q; want plain text", got)
	}
}
