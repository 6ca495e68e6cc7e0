package console

// AppColors defines the struct for program-wide colors/styles.
// Values are style tags in "{{|fg:bg:flags|}}" form; fg and bg may name
// a terminal color, a #rrggbb hex or a Minecraft palette color (mc-gold).
type AppColors struct {
	// Log levels
	Timestamp   string
	Trace       string
	Debug       string
	Info        string
	Notice      string
	Warn        string
	Error       string
	Fatal       string
	FatalFooter string

	// Stack traces
	TraceHeader      string
	TraceFooter      string
	TraceFrameNumber string
	TraceFrameLines  string
	TraceSourceFile  string
	TraceLineNumber  string
	TraceFunction    string

	// Tests
	UnitTestPass string
	UnitTestFail string

	// Semantic Colors
	ApplicationName        string
	File                   string
	Folder                 string
	Var                    string
	Version                string
	URL                    string
	UserCommand            string
	UserCommandError       string
	UserCommandErrorMarker string

	// Usage Colors
	UsageCommand string
	UsageOption  string
	UsageFile    string
	UsageVar     string
}

// Colors is the global instance for application output
var Colors AppColors

func init() {
	Colors = AppColors{
		Timestamp:   "{{|-|}}",
		Trace:       "{{|blue|}}",
		Debug:       "{{|blue|}}",
		Info:        "{{|blue|}}",
		Notice:      "{{|green|}}",
		Warn:        "{{|yellow|}}",
		Error:       "{{|red|}}",
		Fatal:       "{{|white:red|}}",
		FatalFooter: "{{|-|}}",

		TraceHeader:      "{{|red|}}",
		TraceFooter:      "{{|red|}}",
		TraceFrameNumber: "{{|red|}}",
		TraceFrameLines:  "{{|red|}}",
		TraceSourceFile:  "{{|cyan::B|}}",
		TraceLineNumber:  "{{|yellow::B|}}",
		TraceFunction:    "{{|green::B|}}",

		UnitTestPass: "{{|green|}}",
		UnitTestFail: "{{|red|}}",

		ApplicationName:        "{{|mc-gold::B|}}",
		File:                   "{{|cyan::B|}}",
		Folder:                 "{{|cyan::B|}}",
		Var:                    "{{|magenta|}}",
		Version:                "{{|cyan|}}",
		URL:                    "{{|cyan::U|}}",
		UserCommand:            "{{|yellow::B|}}",
		UserCommandError:       "{{|red::U|}}",
		UserCommandErrorMarker: "{{|red|}}",

		UsageCommand: "{{|yellow::B|}}",
		UsageOption:  "{{|yellow|}}",
		UsageFile:    "{{|cyan::B|}}",
		UsageVar:     "{{|magenta|}}",
	}
	BuildColorMap()
	RegisterBaseTags()
}

// RegisterBaseTags registers the shorthand tags used throughout the application.
func RegisterBaseTags() {
	RegisterSemanticTag("NC", "{{|-|}}")
	RegisterSemanticTag("BD", "{{|::B|}}")
	RegisterSemanticTag("UL", "{{|::U|}}")
	RegisterSemanticTag("DM", "{{|::D|}}")
}
