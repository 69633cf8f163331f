// Package logger builds *slog.Logger instances with functional options,
// context attribute injection and helper attributes for cache events.
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler according to the
// configured Format, applies static attributes, and wraps the result in a
// LogHandlerDecorator that runs every registered ContextExtractor before a
// record is handled. Values such as a request id therefore only need to be
// stored in the context, not passed to every log call.
//
// # Usage
//
//	type requestIDKey struct{}
//
//	log := logger.New(
//	    logger.WithEnvironment(logger.Development, "cachedemo"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	logger.SetAsDefault(log)
//
//	ctx := context.WithValue(context.Background(), requestIDKey{}, "abc-123")
//	log.InfoContext(ctx, "cache miss", logger.Key("user-1"))
//	log.Info("cache stats", slog.Any("cache", c.Stats()))
//
// # Configuration
//
//   - WithEnvironment – text/debug for development, JSON/info for staging and production.
//   - WithFormat / WithTextFormatter / WithJSONFormatter – override output format.
//   - WithLevel / WithLevelName – set the minimum level.
//   - WithOutput – write somewhere other than stdout.
//   - WithAttr – attach static attributes.
//   - WithContextExtractors / WithContextValue – inject attributes from context.
//
// # Attributes
//
// Error returns an empty Attr for a nil error, so it can be passed
// unconditionally. Key, Capacity and Evicted keep cache-related attribute
// names consistent.
package logger
