package flairgen

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Generate WordPress themes from the Flair starter theme"
	MsgNewShort        = "Generate a new theme"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Status messages
	MsgGreeting       = "Welcome to the Flair theme generator!"
	MsgVersionFormat  = "flairgen version %s\n  commit: %s\n  built:  %s\n"
	MsgManWritten     = "Man pages written to %s\n"
	MsgNoCommand      = "no command specified"
	MsgNeedsAttention = "generation finished with failures"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrRenderer   = "failed to create output renderer: %w"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig      = "Config file (default is $XDG_CONFIG_HOME/flairgen/config.toml)"
	MsgFlagDryRun      = "Preview the generated files without writing them"
	MsgFlagOutput      = "Output format: auto, term, text or json"
	MsgFlagTemplate    = "Use a local template directory instead of cloning"
	MsgFlagAnswers     = "Read answers from a YAML or TOML file"
	MsgFlagName        = "Theme name"
	MsgFlagShortName   = "Short name used for file names and prefixes"
	MsgFlagThemeURI    = "Theme URI"
	MsgFlagAuthor      = "Author name"
	MsgFlagAuthorURI   = "Author URI"
	MsgFlagDescription = "Theme description"
	MsgFlagSkipInstall = "Do not run the install and build commands"
	MsgFlagWorkers     = "Number of files transformed in parallel"
	MsgFlagDefaults    = "Print the commented built-in defaults instead"
	MsgFlagManDir      = "Directory to write man pages to"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/new-long.txt
	msgNewLongRaw string
	MsgNewLong    = strings.TrimSpace(msgNewLongRaw)

	//go:embed msgs/new-example.txt
	msgNewExampleRaw string
	MsgNewExample    = strings.TrimRight(msgNewExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
