package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Add optional tooling to a Vite + React starter"
	MsgListShort       = "List the optional features"
	MsgInitShort       = "Write the application template"
	MsgConfigShort     = "Show the resolved configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagAll         = "Install all optional features"
	MsgFlagFeature     = "Install %s"
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDir         = "Project directory containing package.json"
	MsgFlagFormat      = "Output format: auto, term or text (default from config)"
	MsgFlagSkipInstall = "Update package.json and write files without running the package manager"
	MsgFlagDefaults    = "Print the built-in defaults instead"

	// List output
	MsgAvailableFeatures = "Available features:"
	MsgListDevDeps       = "dev dependencies"
	MsgListScripts       = "scripts"
	MsgListFiles         = "files"

	// Config output
	MsgConfigSources = "# user config:    %s\n# project config: %s\n\n"

	// Version output
	MsgVersionFormat = "vitestarter version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrResolveDir     = "failed to resolve project directory: %w"
	MsgErrNotDir         = "project directory %s is not a directory"
	MsgErrUnknownFeature = "unknown feature %q (available: %s)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
