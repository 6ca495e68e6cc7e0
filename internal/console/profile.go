package console

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	isTTYGlobal bool

	// preferredProfile decides how hex and palette colors are rendered.
	preferredProfile termenv.Profile
)

func init() {
	isTTYGlobal = IsTerminal(os.Stdout)
	preferredProfile = detectProfile(os.Getenv)
}

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return isTTYGlobal
}

// IsTerminal reports whether f is a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// SetTTY forces the stdout terminal status and returns the previous value.
func SetTTY(isTTY bool) bool {
	old := isTTYGlobal
	isTTYGlobal = isTTY
	return old
}

var colorTermProfiles = map[string]termenv.Profile{
	"truecolor": termenv.TrueColor,
	"24bit":     termenv.TrueColor,
	"8bit":      termenv.ANSI256,
	"256color":  termenv.ANSI256,
	"4bit":      termenv.ANSI,
	"16color":   termenv.ANSI,
	"8color":    termenv.ANSI,
	"3bit":      termenv.ANSI,
	"1bit":      termenv.Ascii,
	"2color":    termenv.Ascii,
	"mono":      termenv.Ascii,
	"false":     termenv.Ascii,
	"0":         termenv.Ascii,
}

// detectProfile picks a color profile from NO_COLOR, then COLORTERM, then
// TERM, and finally asks termenv.
func detectProfile(getenv func(string) string) termenv.Profile {
	if getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if p, ok := colorTermProfiles[strings.ToLower(getenv("COLORTERM"))]; ok {
		return p
	}

	switch t := strings.ToLower(getenv("TERM")); {
	case strings.Contains(t, "direct"):
		return termenv.TrueColor
	case strings.Contains(t, "256color"):
		return termenv.ANSI256
	case strings.Contains(t, "16color"):
		return termenv.ANSI
	case t == "dumb":
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}
