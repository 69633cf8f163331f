package requestid

import (
	"context"
	"regexp"

	"github.com/google/uuid"
)

const maxIDLength = 128

var validID = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

type contextKey struct{}

// New returns a fresh random request id.
func New() string {
	return uuid.New().String()
}

// Valid reports whether id is a non-empty, bounded string of letters,
// digits, dashes and underscores.
func Valid(id string) bool {
	return len(id) > 0 && len(id) <= maxIDLength && validID.MatchString(id)
}

func WithContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, contextKey{}, requestID)
}

func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	requestID, _ := ctx.Value(contextKey{}).(string)
	return requestID
}

// Ensure returns ctx unchanged when it already carries a valid request id,
// otherwise a child context with a freshly generated one.
func Ensure(ctx context.Context) (context.Context, string) {
	if id := FromContext(ctx); Valid(id) {
		return ctx, id
	}
	id := New()
	return WithContext(ctx, id), id
}
