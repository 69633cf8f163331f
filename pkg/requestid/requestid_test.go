package requestid_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lrucache/pkg/logger"
	"github.com/dmitrymomot/lrucache/pkg/requestid"
)

func TestNew(t *testing.T) {
	id := requestid.New()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.True(t, requestid.Valid(id))
	assert.NotEqual(t, id, requestid.New())
}

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{name: "uuid", id: "2f1c7a52-7a43-4c1e-9d0b-1e6c0f6b2a11", want: true},
		{name: "word", id: "lookup_42", want: true},
		{name: "empty", id: "", want: false},
		{name: "spaces", id: "has space", want: false},
		{name: "too long", id: strings.Repeat("a", 129), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, requestid.Valid(tt.id))
		})
	}
}

func TestContext(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		ctx := requestid.WithContext(context.Background(), "abc")
		assert.Equal(t, "abc", requestid.FromContext(ctx))
	})

	t.Run("missing", func(t *testing.T) {
		assert.Empty(t, requestid.FromContext(context.Background()))
		//nolint:staticcheck // nil context is handled explicitly
		assert.Empty(t, requestid.FromContext(nil))
	})
}

func TestEnsure(t *testing.T) {
	t.Run("keeps existing id", func(t *testing.T) {
		ctx := requestid.WithContext(context.Background(), "existing-id")
		got, id := requestid.Ensure(ctx)
		assert.Equal(t, "existing-id", id)
		assert.Equal(t, ctx, got)
	})

	t.Run("generates when missing", func(t *testing.T) {
		ctx, id := requestid.Ensure(context.Background())
		assert.True(t, requestid.Valid(id))
		assert.Equal(t, id, requestid.FromContext(ctx))
	})

	t.Run("replaces invalid id", func(t *testing.T) {
		ctx := requestid.WithContext(context.Background(), "bad id!")
		ctx, id := requestid.Ensure(ctx)
		assert.NotEqual(t, "bad id!", id)
		assert.Equal(t, id, requestid.FromContext(ctx))
	})
}

func TestLoggerExtractor(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	ctx := requestid.WithContext(context.Background(), "abc-123")
	log.InfoContext(ctx, "lookup")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc-123", entry["request_id"])

	_, ok := requestid.LoggerExtractor()(context.Background())
	assert.False(t, ok)
}
