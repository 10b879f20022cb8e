// Package logging provides a minimal logging facade for the SMILE binding.
//
// The Logger interface wraps a subset of log/slog so applications can plug
// in their own implementation or route records into an existing handler.
//
//	// Use default logger (slog.Default())
//	logger := logging.New(nil)
//
//	// Text records at debug level on stderr
//	logger = logging.NewText(os.Stderr, slog.LevelDebug)
//
// Raw native pointers are never logged; mark them with Redacted:
//
//	logger.Warn(ctx, "register rejected", logging.Redacted("pointer"))
//
// The handle registry logs registration and release at debug level; the C
// ABI entry points log rejected handles at warn level.
package logging
