package console

import (
	"strings"

	"mcbanner/internal/motd"
)

// palettePrefix selects a Minecraft color by name, e.g. {{|mc-gold|}}.
const palettePrefix = "mc-"

// flagsOff clears every attribute; a style whose flags start with '-'
// begins with it.
const flagsOff = CodeBoldOff + CodeItalicOff + CodeUnderlineOff + CodeBlinkOff + CodeReverseOff + CodeStrikethroughOff

// parseStyleCodeToANSI converts the inside of a {{|fg:bg:flags|}} tag.
func parseStyleCodeToANSI(content string) string {
	if content == "-" || content == "reset" {
		return CodeReset
	}

	fg, rest, _ := strings.Cut(content, ":")
	bg, flags, _ := strings.Cut(rest, ":")
	bright := strings.Contains(flags, "H")

	var codes strings.Builder
	if strings.HasPrefix(flags, "-") {
		codes.WriteString(flagsOff)
		flags = flags[1:]
	}
	if fg != "" && fg != "-" {
		codes.WriteString(colorToANSI(strings.ToLower(fg), false, bright))
	}
	if bg != "" && bg != "-" {
		codes.WriteString(colorToANSI(strings.ToLower(bg), true, bright))
	}
	for _, flag := range flags {
		codes.WriteString(ansiMap[string(flag)])
	}
	return codes.String()
}

// colorToANSI resolves a color name. Palette names and hex colors go
// through the preferred profile, terminal names through ansiMap. Unknown
// names produce nothing.
func colorToANSI(name string, background, bright bool) string {
	if paletteName, ok := strings.CutPrefix(name, palettePrefix); ok {
		hex, ok := motd.Default.Hex(paletteName)
		if !ok {
			return ""
		}
		name = hex
	}
	if strings.HasPrefix(name, "#") {
		c := preferredProfile.Color(name)
		if c == nil {
			return ""
		}
		return wrapSequence(c.Sequence(background))
	}

	if bright && !background {
		if _, ok := ansiMap["bright-"+name]; ok {
			name = "bright-" + name
		}
	}
	if background {
		name += "bg"
	}
	return ansiMap[name]
}

// wrapSequence wraps a bare SGR parameter list in CSI delimiters.
func wrapSequence(seq string) string {
	if seq == "" || strings.HasPrefix(seq, "\x1b[") {
		return seq
	}
	return "\x1b[" + seq + "m"
}
