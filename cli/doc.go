// Package cli contains the command line interface for mend.
//
// # Usage
//
// Check is the default command, so a source file may be given directly:
//
//	mend -g arith expr.txt
//	echo '(a b' | mend
//
// Each failure is reported with its position, an explanation, the offending
// line with a caret, and the closest fix. Use -o yaml or -o json for
// structured output and -w to check again whenever a file changes.
//
// # Configuration
//
// Global flags may be set in $XDG_CONFIG_HOME/mend/config.yaml. The init
// command writes the current flag values there. Nested keys are joined with
// hyphens, and command-line flags override the file.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o mend .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default: ~/.cache/mend/pprof)
package cli
