package motd

import (
	"strings"
	"unicode/utf8"
)

// Fragment is one piece of a tokenized MOTD line.
// A fragment with empty Text is the code token itself: it changes style
// state and draws nothing. Code is empty when the code character was not
// found in either table.
type Fragment struct {
	Text    string
	IsColor bool
	Code    string
}

// Tokenize splits raw into styled fragments using the default tables.
func Tokenize(raw string, useAmpersand bool) []Fragment {
	return Default.Tokenize(raw, useAmpersand)
}

// TokenizeLines splits raw on newlines and tokenizes every line.
func TokenizeLines(raw string, useAmpersand bool) [][]Fragment {
	return Default.TokenizeLines(raw, useAmpersand)
}

// Tokenize splits raw into styled fragments.
// The result always starts with a reset token, so consumers begin from a
// known style. Every character after a code becomes its own fragment
// carrying that code.
func (t *CodeTables) Tokenize(raw string, useAmpersand bool) []Fragment {
	marker := string(SectionSign)
	if useAmpersand {
		marker = string(Ampersand)
	}

	var result []Fragment
	for _, part := range strings.Split(marker+"r"+raw, marker) {
		if part == "" {
			continue
		}
		c, size := utf8.DecodeRuneInString(part)
		code, isColor := t.resolve(c)

		result = append(result, Fragment{Code: code, IsColor: isColor})
		for _, r := range part[size:] {
			result = append(result, Fragment{Text: string(r), Code: code, IsColor: isColor})
		}
	}
	return result
}

// TokenizeLines splits raw on "\n" or "\r\n" and tokenizes every line.
func (t *CodeTables) TokenizeLines(raw string, useAmpersand bool) [][]Fragment {
	lines := SplitLines(raw)
	result := make([][]Fragment, 0, len(lines))
	for _, line := range lines {
		result = append(result, t.Tokenize(line, useAmpersand))
	}
	return result
}

// SplitLines splits text on "\n", dropping the "\r" of "\r\n" endings.
func SplitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}
