// Package logger builds log/slog loggers with context-derived attributes and
// optional Sentry reporting.
//
// A ContextExtractor turns something stored in a context into an attribute.
// Extractors run on every record, so request-scoped values are always fresh:
//
//	log := logger.New(logger.LanguagesExtractor())
//
//	ctx = preference.WithContext(ctx, preference.FromAcceptLanguage("fr-CA,en;q=0.5"))
//	log.InfoContext(ctx, "greeting served")
//	// {"level":"INFO","msg":"greeting served","languages":["fr-CA","en"]}
//
// NewWithSentry fans records out to stdout and Sentry. Without a DSN it
// behaves like New, so the same wiring works in development:
//
//	log := logger.NewWithSentry(logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//		MinLevel:    slog.LevelWarn,
//	}, logger.LanguagesExtractor())
//
// NewNope returns a logger that discards output; packages use it as their
// default when no logger is configured.
package logger
