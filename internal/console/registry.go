package console

import (
	"reflect"
	"strings"
)

var (
	// semanticMap maps a lower-cased semantic tag to its style tag,
	// e.g. "version" -> "{{|cyan|}}".
	semanticMap = make(map[string]string)

	// ansiMap maps color names and flag characters to ANSI codes.
	ansiMap = make(map[string]string)
)

type terminalColor struct {
	name           string
	fg, bright, bg string
}

var terminalColors = []terminalColor{
	{"black", CodeBlack, CodeBrightBlack, CodeBlackBg},
	{"red", CodeRed, CodeBrightRed, CodeRedBg},
	{"green", CodeGreen, CodeBrightGreen, CodeGreenBg},
	{"yellow", CodeYellow, CodeBrightYellow, CodeYellowBg},
	{"blue", CodeBlue, CodeBrightBlue, CodeBlueBg},
	{"magenta", CodeMagenta, CodeBrightMagenta, CodeMagentaBg},
	{"cyan", CodeCyan, CodeBrightCyan, CodeCyanBg},
	{"white", CodeWhite, CodeBrightWhite, CodeWhiteBg},
}

// Flag characters in the third style field. Upper case sets the
// attribute, lower case clears it.
var styleFlags = map[rune][2]string{
	'B': {CodeBold, CodeBoldOff},
	'D': {CodeDim, CodeDimOff},
	'I': {CodeItalic, CodeItalicOff},
	'U': {CodeUnderline, CodeUnderlineOff},
	'L': {CodeBlink, CodeBlinkOff},
	'R': {CodeReverse, CodeReverseOff},
	'S': {CodeStrikethrough, CodeStrikethroughOff},
}

// BuildColorMap fills the ANSI table and loads the semantic tags defined
// by Colors. Tags registered later are preserved.
func BuildColorMap() {
	ansiMap = map[string]string{
		"-":     CodeReset,
		"reset": CodeReset,
	}
	for flag, codes := range styleFlags {
		ansiMap[string(flag)] = codes[0]
		ansiMap[strings.ToLower(string(flag))] = codes[1]
	}
	for _, c := range terminalColors {
		ansiMap[c.name] = c.fg
		ansiMap["bright-"+c.name] = c.bright
		ansiMap[c.name+"bg"] = c.bg
	}

	val := reflect.ValueOf(Colors)
	typ := val.Type()
	for i := range val.NumField() {
		semanticMap[strings.ToLower(typ.Field(i).Name)] = val.Field(i).String()
	}
}

func ensureMaps() {
	if len(ansiMap) == 0 {
		BuildColorMap()
	}
}

// RegisterSemanticTag makes {{_name_}} expand to taggedValue.
func RegisterSemanticTag(name, taggedValue string) {
	ensureMaps()
	semanticMap[strings.ToLower(strings.Trim(name, "_"))] = taggedValue
}

// ResetCustomColors drops every tag registered since start up.
func ResetCustomColors() {
	semanticMap = make(map[string]string)
	BuildColorMap()
	RegisterBaseTags()
}
