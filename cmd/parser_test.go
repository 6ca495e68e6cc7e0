package cmd

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"mcbanner/internal/console"
	"mcbanner/internal/testutils"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantIndex int    // -1 when parsing succeeds
		wantCmd   string // FailingCommand of the error
	}{
		{"name only", []string{"-n", "Lobby"}, -1, ""},
		{"file without name", []string{"-f", "banner.toml"}, -1, ""},
		{"watch with file", []string{"-w", "-f", "banner.toml"}, -1, ""},
		{"version needs nothing else", []string{"-V"}, -1, ""},
		{"help needs nothing else", []string{"--help"}, -1, ""},
		{"list assets", []string{"-l"}, -1, ""},
		{"jpeg format", []string{"-n", "Lobby", "--format=jpg"}, -1, ""},
		{"no arguments", []string{}, 0, ""},
		{"positional argument", []string{"-n", "Lobby", "extra"}, 2, ""},
		{"unknown flag", []string{"-n", "Lobby", "--bogus"}, 2, ""},
		{"bad format", []string{"-n", "Lobby", "-F", "gif"}, 2, "--format"},
		{"negative online", []string{"-n", "Lobby", "--online", "-1"}, 2, "--online"},
		{"negative max", []string{"--max=-5", "-n", "Lobby"}, 0, "--max"},
		{"watch without file", []string{"-w", "-n", "Lobby"}, 0, "--watch"},
		{"empty name", []string{"-n", " "}, 0, "--name"},
		{"missing name", []string{"--online", "3"}, 2, ""},
	}

	var cases []testutils.TestCase
	for _, tt := range tests {
		expected := "ok"
		if tt.wantIndex >= 0 {
			expected = fmt.Sprintf("error at %d %s", tt.wantIndex, tt.wantCmd)
		}

		actual := "ok"
		_, err := Parse(tt.args)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				actual = fmt.Sprintf("error at %d %s", pe.Index, pe.FailingCommand)
			} else {
				actual = "unexpected error type: " + err.Error()
			}
		}
		cases = append(cases, testutils.Compare(tt.name, strings.Join(tt.args, " "), expected, actual))
	}
	testutils.PrintTestTable(t, cases)
}

func TestParseValues(t *testing.T) {
	opts, err := Parse([]string{"-n", "Lobby", "-m", "§aline one", "--motd", "line two", "--online=3", "--max", "20", "-a", "-o", "-"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	cases := []testutils.TestCase{
		testutils.Compare("name", "-n", "Lobby", opts.Name),
		testutils.Compare("motd", "-m --motd", "§aline one|line two", strings.Join(opts.MOTD, "|")),
		testutils.Compare("online", "--online", "3", fmt.Sprint(opts.Online)),
		testutils.Compare("max", "--max", "20", fmt.Sprint(opts.Max)),
		testutils.Compare("ampersand", "-a", "true", fmt.Sprint(opts.Ampers)),
		testutils.Compare("output", "-o", "-", opts.Output),
		testutils.Compare("changed online", "--online", "true", fmt.Sprint(opts.Changed("online"))),
		testutils.Compare("unchanged favicon", "--favicon", "false", fmt.Sprint(opts.Changed("favicon"))),
	}
	testutils.PrintTestTable(t, cases)
}

func TestParseErrorOutput(t *testing.T) {
	old := console.SetTTY(false)
	defer console.SetTTY(old)

	_, err := Parse([]string{"-n", "Lobby", "-F", "gif"})
	if err == nil {
		t.Fatal("expected an error")
	}
	out := console.Parse(err.Error())

	wantLines := []string{
		"   'mcbanner -n Lobby -F'",
		"                      ^",
		"   Unsupported format 'gif'. Use png or jpeg.",
		"   -F --format <png|jpeg>",
	}
	for _, want := range wantLines {
		if !strings.Contains(out, want+"\n") {
			t.Errorf("output missing line %q:\n%s", want, out)
		}
	}
}
