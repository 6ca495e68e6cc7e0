package cmd

import (
	"strings"
	"testing"

	"mcbanner/internal/testutils"
)

func TestGetUsage(t *testing.T) {
	tests := []struct {
		target   string
		contains string
		lines    int
	}{
		{"--format", "{{_UsageCommand_}}-F --format{{|-|}}", 2},
		{"-F", "{{_UsageCommand_}}-F --format{{|-|}}", 2},
		{"--format=png", "{{_UsageCommand_}}-F --format{{|-|}}", 2},
		{"--motd", "§7A Minecraft Server", 4},
		{"--nope", "", 0},
	}

	var cases []testutils.TestCase
	for _, tt := range tests {
		out := GetUsage(tt.target)
		lines := 0
		if out != "" {
			lines = strings.Count(out, "\n")
		}
		pass := lines == tt.lines && strings.Contains(out, tt.contains)
		cases = append(cases, testutils.TestCase{
			Input:    tt.target,
			Expected: tt.contains,
			Actual:   strings.SplitN(out, "\n", 2)[0],
			Pass:     pass,
		})
	}
	testutils.PrintTestTable(t, cases)
}

func TestGetUsageListsEveryFlag(t *testing.T) {
	out := GetUsage("")
	fs := newFlagSet(&Options{})

	var cases []testutils.TestCase
	for _, e := range usageEntries {
		name := e.names[len(e.names)-1]
		cases = append(cases, testutils.TestCase{
			Name:     "usage",
			Input:    name,
			Expected: "listed",
			Actual:   map[bool]string{true: "listed", false: "missing"}[strings.Contains(out, name)],
			Pass:     strings.Contains(out, name),
		})
		defined := fs.Lookup(strings.TrimPrefix(name, "--")) != nil
		cases = append(cases, testutils.TestCase{
			Name:     "flag",
			Input:    name,
			Expected: "defined",
			Actual:   map[bool]string{true: "defined", false: "missing"}[defined],
			Pass:     defined,
		})
	}
	testutils.PrintTestTable(t, cases)
}
