// Package cmd implements the svcheck command-line interface.
//
// The package organizes the CLI subcommands (the root report run, verify,
// commands) and the underlying helpers for probing the array's REST port,
// authenticating and discovering the caller's role, pre-flight authorization
// of each battery command, ordered JSON record decoding, and incremental
// emission of the formatted Excel report.
//
// New contributors should start by reading rootCmd.go to see how cobra is
// wired, runReport.go for the main execution flow, authz.go for the local
// role policy table, and report.go for the reopen-and-save-per-sheet
// discipline that preserves partial progress on a fatal error.
package cmd
