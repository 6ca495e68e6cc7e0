package banner

import (
	"testing"

	"mcbanner/internal/testutils"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", MIMETypePNG},
		{"png", MIMETypePNG},
		{"PNG", MIMETypePNG},
		{"image/png", MIMETypePNG},
		{"jpeg", MIMETypeJPEG},
		{"jpg", MIMETypeJPEG},
		{"image/jpeg", MIMETypeJPEG},
		{"gif", "error"},
	}

	var cases []testutils.TestCase
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if err != nil {
			got = "error"
		}
		cases = append(cases, testutils.Compare("", tt.input, tt.expected, got))
	}
	testutils.PrintTestTable(t, cases)
}

func TestExtension(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ".png"},
		{MIMETypePNG, ".png"},
		{MIMETypeJPEG, ".jpg"},
		{"image/gif", ".jpg"},
	}

	var cases []testutils.TestCase
	for _, tt := range tests {
		cases = append(cases, testutils.Compare("", tt.input, tt.expected, Extension(tt.input)))
	}
	testutils.PrintTestTable(t, cases)
}
