// Package requestid tags units of work with correlation identifiers so that
// log records produced while serving one lookup can be grouped together.
//
// Ids are UUIDv4 strings generated with github.com/google/uuid and carried in
// a context.Context:
//
//	ctx, id := requestid.Ensure(ctx)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	log.InfoContext(ctx, "cache miss") // includes request_id=<id>
//
// Ensure keeps an id that is already present and valid, and replaces empty
// or malformed ones.
package requestid
