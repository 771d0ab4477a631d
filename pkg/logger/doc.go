// Package logger builds *slog.Logger values for the krkit command-line tool.
//
// New applies functional options (format, level, output, static attributes
// and context extractors) and returns a logger whose handler pulls extra
// attributes out of the context on every record:
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "krkit"),
//	    logger.WithOutput(os.Stderr),
//	    logger.WithContextValue("command", commandKey{}),
//	)
//	log.InfoContext(ctx, "number checked", logger.Kind("rrn"))
//
// Attribute helpers in attr.go keep key names consistent. None of them ever
// logs the raw identifier; pass masked values only.
package logger
