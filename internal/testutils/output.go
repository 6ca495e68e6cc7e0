package testutils

import (
	"fmt"
	"strings"
	"testing"
	"text/tabwriter"
)

// TestCase represents a single unit test scenario.
type TestCase struct {
	Name     string
	Input    string
	Expected string
	Actual   string
	Pass     bool
}

// PrintTestTable logs a formatted table of comparison results and fails
// the test if any case has Pass=false. Failing rows are marked with > <.
func PrintTestTable(t *testing.T, cases []TestCase) {
	t.Helper()

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 3, ' ', 0)

	withNames := false
	for _, tc := range cases {
		if tc.Name != "" {
			withNames = true
			break
		}
	}

	if withNames {
		fmt.Fprintf(w, "  Name\tInput\tExpected Value\tReturned Value\t\n")
	} else {
		fmt.Fprintf(w, "  Input\tExpected Value\tReturned Value\t\n")
	}

	anyFailed := false
	for _, tc := range cases {
		leftPtr, rightPtr := " ", " "
		if !tc.Pass {
			anyFailed = true
			leftPtr, rightPtr = ">", "<"
		}
		if withNames {
			fmt.Fprintf(w, "%s %s\t%s\t%s\t%s\t%s\n", leftPtr, tc.Name, tc.Input, tc.Expected, tc.Actual, rightPtr)
		} else {
			fmt.Fprintf(w, "%s %s\t%s\t%s\t%s\n", leftPtr, tc.Input, tc.Expected, tc.Actual, rightPtr)
		}
	}
	w.Flush()

	if anyFailed {
		t.Errorf("one or more cases failed:\n%s", sb.String())
		return
	}
	t.Logf("\n%s", sb.String())
}

// Compare builds a TestCase from an expected and actual string.
func Compare(name, input, expected, actual string) TestCase {
	return TestCase{
		Name:     name,
		Input:    input,
		Expected: expected,
		Actual:   actual,
		Pass:     expected == actual,
	}
}
