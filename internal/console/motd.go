package console

import (
	"strings"

	"mcbanner/internal/motd"
)

// MOTDToANSI renders MOTD text with formatting codes as a terminal
// preview. Colors go through the preferred profile, so a terminal without
// color support gets plain text with the codes removed. Obfuscated text
// is scrambled the same way the banner renderer does it.
func MOTDToANSI(raw string, useAmpersand bool) string {
	lines := motd.Default.TokenizeLines(raw, useAmpersand)
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		var sb strings.Builder
		state := motd.NewStyleState()
		for _, f := range line {
			motd.Default.Apply(state, f)
			if f.Text == "" {
				continue
			}
			text := f.Text
			if state.Has(motd.DecorationObfuscated) {
				text = motd.Obfuscate(text, nil)
			}
			sb.WriteString(styleFragment(text, state))
		}
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// StripMOTD removes all formatting codes from MOTD text.
func StripMOTD(raw string, useAmpersand bool) string {
	lines := motd.Default.TokenizeLines(raw, useAmpersand)
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		var sb strings.Builder
		for _, f := range line {
			sb.WriteString(f.Text)
		}
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func styleFragment(text string, state *motd.StyleState) string {
	s := preferredProfile.String(text)
	if state.Fill != "" {
		s = s.Foreground(preferredProfile.Color(state.Fill))
	}
	switch state.Variant {
	case motd.VariantBold:
		s = s.Bold()
	case motd.VariantItalic:
		s = s.Italic()
	}
	if state.Has(motd.DecorationUnderlined) {
		s = s.Underline()
	}
	if state.Has(motd.DecorationStrikethrough) {
		s = s.CrossOut()
	}
	return s.String()
}
