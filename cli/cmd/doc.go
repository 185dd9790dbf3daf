// Package cmd implements the mend subcommands.
//
// Each command is a kong command struct whose Run method receives the
// command context and the writer bound for standard output. Parse failures
// are written to that writer as diagnostics and returned as errors so the
// process exits non-zero.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file.
	ConfigIdentifier = "config"
)
