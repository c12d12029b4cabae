package cmd

import "errors"

// Version is the CLI version string injected at build time via -ldflags.
var Version = "0.1.0"

// errSuperUser signals that the superuser account must not be used for
// report collection to encourage least-privilege operational practices.
var errSuperUser = errors.New("superuser account cannot be used")

var (
	// Global configuration populated by flags and/or environment variables.
	// These are declared here so they are visible across subcommands.
	cfgArray     string
	cfgUser      string
	cfgPassword  string
	cfgOutputDir string
	cfgManifest  string
	cfgVerbose   bool
)

// Allow tests to stub network-facing steps
var (
	probeFunc        = probeArray
	authenticateFunc = authenticate
	runCommandFunc   = runCommand
)
