package console

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// semanticRegex matches {{_content_}} format for semantic tags
	semanticRegex = regexp.MustCompile(`\{\{_([A-Za-z0-9_]+)_\}\}`)

	// directRegex matches {{|fg:bg:flags|}} style tags; colors may be
	// terminal names, #rrggbb or mc-<palette name>
	directRegex = regexp.MustCompile(`\{\{\|([A-Za-z0-9_:\-#]+)\|\}\}`)
)

// ExpandTags replaces semantic tags {{_Tag_}} with their {{|style|}} values.
// Unknown semantic tags are removed.
func ExpandTags(text string) string {
	ensureMaps()
	return semanticRegex.ReplaceAllStringFunc(text, func(match string) string {
		content := strings.ToLower(match[3 : len(match)-3])
		return semanticMap[content]
	})
}

// ToANSI converts semantic and direct tags to ANSI escape sequences
// - {{_Tag_}} : Semantic lookup -> ANSI
// - {{|code|}} : Direct fg:bg:flags style -> ANSI
//
// When stdout is not a terminal the tags are stripped instead.
func ToANSI(text string) string {
	if !isTTYGlobal {
		return Strip(text)
	}
	return ForceANSI(text)
}

// ForceANSI is ToANSI for output that is known to be a terminal.
func ForceANSI(text string) string {
	ensureMaps()

	// Semantic values are themselves direct tags, so expand them first
	text = ExpandTags(text)

	return directRegex.ReplaceAllStringFunc(text, func(match string) string {
		return parseStyleCodeToANSI(match[3 : len(match)-3])
	})
}

// Strip removes all semantic and direct tags from text, as well as ANSI escape sequences
func Strip(text string) string {
	text = semanticRegex.ReplaceAllString(text, "")
	text = directRegex.ReplaceAllString(text, "")
	return StripANSI(text)
}

// Parse is a convenience alias for ToANSI
func Parse(text string) string {
	return ToANSI(text)
}

// Println prints a line to stdout with its tags converted.
func Println(a ...any) {
	fmt.Println(ToANSI(fmt.Sprint(a...)))
}
