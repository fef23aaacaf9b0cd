package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", RequestIDFrom(ctx))

	ctx = WithRequestID(ctx, "req-123")
	assert.Equal(t, "req-123", RequestIDFrom(ctx))
}

func TestFromCtx(t *testing.T) {
	t.Run("Without request id returns global logger", func(t *testing.T) {
		log := FromCtx(context.Background())
		assert.NotNil(t, log)
	})

	t.Run("With request id returns scoped logger", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "req-456")
		log := FromCtx(ctx)
		assert.NotNil(t, log)
	})
}
