// Package log provides a leveled structured logger built on [log/slog].
//
// A [Logger] is created with [Make] and configured with functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatJSON),
//		log.WithTimeLayout("kitchen"),
//		log.WithCaller(true))
//
// Attributes are typed [slog.Attr] values:
//
//	logger.Info("parsed", slog.String("grammar", "sexpr"))
//
// Below [LevelDebug] sits [LevelTrace], which the parser uses to trace
// individual combinator applications.
//
// With pretty printing enabled (the default) keys and values are colored
// using lipgloss whenever the output is a terminal.
//
// The zero [Logger] discards every message. Package-level functions log
// through a default logger that writes to standard error and can be
// reconfigured with [Config].
package log
