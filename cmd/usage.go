package cmd

import (
	"fmt"
	"strings"

	"mcbanner/internal/console"
	"mcbanner/internal/version"
)

type usageEntry struct {
	names []string
	arg   string
	lines []string
}

var usageEntries = []usageEntry{
	{[]string{"-n", "--name"}, "<name>", []string{
		"Server name drawn in white at the top of the banner.",
		"Required unless a definition file is given.",
	}},
	{[]string{"-m", "--motd"}, "<line>", []string{
		"One line of the message of the day. Repeat for more lines.",
		"Formatting codes start with '{{_UsageVar_}}§{{|-|}}', or '{{_UsageVar_}}&{{|-|}}' with {{_UsageOption_}}--ampersand{{|-|}}.",
		"Defaults to '{{_UsageVar_}}§7A Minecraft Server{{|-|}}'.",
	}},
	{[]string{"--online"}, "<count>", []string{"Online player count. Defaults to 0."}},
	{[]string{"--max"}, "<count>", []string{"Maximum player count. Defaults to 0."}},
	{[]string{"-i", "--favicon"}, "<file>", []string{
		"Server icon (png, jpeg, gif, webp or bmp), scaled to 128x128.",
		"Defaults to the bundled icon.",
	}},
	{[]string{"-F", "--format"}, "<png|jpeg>", []string{"Output format. Defaults to the configured format."}},
	{[]string{"-o", "--output"}, "<file>", []string{
		"Where to write the banner. Use '{{_UsageFile_}}-{{|-|}}' for standard output.",
		"Defaults to '{{_UsageFile_}}banner.png{{|-|}}' in the configured output folder.",
	}},
	{[]string{"-a", "--ampersand"}, "", []string{"Treat '{{_UsageVar_}}&{{|-|}}' as the formatting marker instead of '{{_UsageVar_}}§{{|-|}}'."}},
	{[]string{"-f", "--file"}, "<file>", []string{
		"Read the banner from a '{{_UsageFile_}}.toml{{|-|}}' or '{{_UsageFile_}}.yaml{{|-|}}' definition file.",
		"Flags given on the command line override the file.",
	}},
	{[]string{"-w", "--watch"}, "", []string{"Regenerate the banner whenever the definition file or favicon changes."}},
	{[]string{"-p", "--preview"}, "", []string{"Print the name and MOTD with terminal colors before generating."}},
	{[]string{"--extract-assets"}, "", []string{"Copy the bundled images into the assets folder for customizing."}},
	{[]string{"-l", "--list-assets"}, "", []string{"List the images and font families that can be used."}},
	{[]string{"--config-show"}, "", []string{"Show the current configuration."}},
	{[]string{"-v", "--verbose"}, "", []string{"Verbose output."}},
	{[]string{"-x", "--debug"}, "", []string{"Debug output."}},
	{[]string{"-V", "--version"}, "", []string{"Show version information."}},
	{[]string{"-h", "--help"}, "", []string{"Show this usage information."}},
}

// PrintHelp prints usage information.
// If target is empty, prints global usage.
// If target is specified, prints usage for that specific flag.
func PrintHelp(target string) {
	fmt.Print(console.Parse(GetUsage(target)))
}

// GetUsage returns usage information as a string.
// If target is empty, returns global usage.
// If target is specified, returns usage for that specific flag.
func GetUsage(target string) string {
	var sb strings.Builder
	printStr := func(s string) {
		sb.WriteString(s + "\n")
	}

	if target == "" {
		printStr(fmt.Sprintf("Usage: {{_UsageCommand_}}%s{{|-|}} [{{_UsageOption_}}<Flags>{{|-|}}]", version.CommandName))
		printStr("")
		printStr(fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}]", version.ApplicationName, version.Version))
		printStr("Renders a Minecraft server banner with favicon, name, player counts and MOTD.")
		printStr("")
		printStr("Flags:")
		printStr("")
	}

	for _, e := range usageEntries {
		if target != "" && !e.matches(target) {
			continue
		}
		head := "{{_UsageCommand_}}" + strings.Join(e.names, " ") + "{{|-|}}"
		if e.arg != "" {
			head += " {{_UsageOption_}}" + e.arg + "{{|-|}}"
		}
		printStr(head)
		for _, line := range e.lines {
			printStr("\t" + line)
		}
	}
	return sb.String()
}

func (e usageEntry) matches(target string) bool {
	target, _, _ = strings.Cut(target, "=")
	for _, n := range e.names {
		if n == target {
			return true
		}
	}
	return false
}
