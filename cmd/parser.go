package cmd

import (
	"fmt"
	"strings"

	"mcbanner/internal/banner"
	"mcbanner/internal/version"
)

// ParseError wraps argument parsing errors to provide rich output with
// the failing argument highlighted.
type ParseError struct {
	Args           []string // The full argument list passed to Parse
	Index          int      // The index where the error occurred
	Message        string   // The specific error message
	FailingCommand string   // The flag being processed (e.g. "--format")
}

func (e *ParseError) Error() string {
	indent := "   "

	// Build command line string
	var cmdLineParts []string
	cmdLineParts = append(cmdLineParts, fmt.Sprintf("{{_UserCommand_}}%s{{|-|}}", version.CommandName))

	for i := 0; i <= e.Index && i < len(e.Args); i++ {
		str := e.Args[i]
		if i == e.Index {
			// Highlight failing option
			str = fmt.Sprintf("{{_UserCommandError_}}%s{{|-|}}", str)
		} else {
			str = fmt.Sprintf("{{_UserCommand_}}%s{{|-|}}", str)
		}
		cmdLineParts = append(cmdLineParts, str)
	}

	cmdLineStr := "'" + strings.Join(cmdLineParts, " ") + "'"
	// Indent + ' + command + space + previous args + spaces
	caretOffset := len(indent) + 1 + len(version.CommandName) + 1
	for i := 0; i < e.Index && i < len(e.Args); i++ {
		caretOffset += len([]rune(e.Args[i])) + 1
	}
	pointerLine := strings.Repeat(" ", caretOffset) + "{{_UserCommandErrorMarker_}}^{{|-|}}"

	// Message might contain %c (command) or %o (option)
	failingOpt := ""
	if e.Index < len(e.Args) {
		failingOpt = e.Args[e.Index]
	}
	replacer := strings.NewReplacer(
		"%c", fmt.Sprintf("'{{_UserCommand_}}%s{{|-|}}'", e.FailingCommand),
		"%o", fmt.Sprintf("'{{_UserCommand_}}%s{{|-|}}'", failingOpt),
	)
	formattedMsg := replacer.Replace(e.Message)

	out := fmt.Sprintf("Error in command line:\n\n%s%s\n%s\n\n%s%s\n", indent, cmdLineStr, pointerLine, indent, formattedMsg)

	if e.FailingCommand != "" {
		out += fmt.Sprintf("\n%sUsage is:\n", indent)
		for _, line := range strings.Split(strings.TrimRight(GetUsage(e.FailingCommand), "\n"), "\n") {
			out += fmt.Sprintf("%s%s\n", indent, line)
		}
	} else {
		out += fmt.Sprintf("\n%sRun '{{_UserCommand_}}%s --help{{|-|}}' for usage.\n", indent, version.CommandName)
	}

	return out
}

// Parse parses the raw command line arguments.
func Parse(args []string) (*Options, error) {
	opts := &Options{}
	fs := newFlagSet(opts)
	opts.flags = fs

	if err := fs.Parse(args); err != nil {
		return nil, &ParseError{Args: args, Index: failingIndex(args, err.Error()), Message: err.Error()}
	}
	if rest := fs.Args(); len(rest) > 0 {
		idx := len(args) - len(rest)
		return nil, &ParseError{Args: args, Index: idx, Message: "Invalid option %o"}
	}

	if opts.Help || opts.Version || opts.Extract || opts.List || opts.ShowConf {
		return opts, nil
	}

	if opts.Changed("format") {
		if _, err := banner.ParseFormat(opts.Format); err != nil {
			return nil, flagError(args, "format", "F", fmt.Sprintf("Unsupported format '{{_UserCommand_}}%s{{|-|}}'. Use png or jpeg.", opts.Format))
		}
	}
	for _, name := range []string{"online", "max"} {
		if v, _ := fs.GetInt(name); v < 0 {
			return nil, flagError(args, name, "", "Player counts cannot be negative.")
		}
	}
	if opts.Watch && opts.File == "" {
		return nil, flagError(args, "watch", "w", "Command %c requires a definition file given with '{{_UserCommand_}}--file{{|-|}}'.")
	}
	if opts.File == "" && strings.TrimSpace(opts.Name) == "" {
		if opts.Changed("name") {
			return nil, flagError(args, "name", "n", "The server name cannot be empty.")
		}
		return nil, &ParseError{Args: args, Index: len(args), Message: "A server name is required. Use '{{_UserCommand_}}--name{{|-|}}' or '{{_UserCommand_}}--file{{|-|}}'."}
	}
	return opts, nil
}

// flagError builds a ParseError pointing at the last use of a flag.
func flagError(args []string, long, short, msg string) *ParseError {
	idx := flagIndex(args, long, short)
	if idx < 0 {
		idx = len(args) - 1
	}
	return &ParseError{Args: args, Index: idx, Message: msg, FailingCommand: "--" + long}
}

// flagIndex returns the index of the last argument that sets the flag, or -1.
func flagIndex(args []string, long, short string) int {
	idx := -1
	for i, arg := range args {
		if arg == "--" {
			break
		}
		name, _, _ := strings.Cut(arg, "=")
		switch {
		case name == "--"+long:
			idx = i
		case short != "" && strings.HasPrefix(arg, "-") && !strings.HasPrefix(arg, "--") && strings.Contains(arg[1:], short):
			idx = i
		}
	}
	return idx
}

// failingIndex guesses which argument a pflag error message is about.
func failingIndex(args []string, msg string) int {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			continue
		}
		name, _, _ := strings.Cut(arg, "=")
		if strings.Contains(msg, `"`+name+`"`) || strings.Contains(msg, ", "+name+`"`) ||
			strings.HasSuffix(msg, " "+name) || strings.HasSuffix(msg, " "+arg) {
			return i
		}
	}
	if len(args) == 0 {
		return 0
	}
	return len(args) - 1
}
