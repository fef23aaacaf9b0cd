package cart

import (
	"context"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionCtx(t *testing.T, sm *scs.SessionManager) context.Context {
	t.Helper()
	ctx, err := sm.Load(context.Background(), "")
	require.NoError(t, err)
	return ctx
}

func TestSessionStore_RoundTrip(t *testing.T) {
	sm := scs.New()
	store := NewSessionStore(sm)
	ctx := sessionCtx(t, sm)

	t.Run("Empty before first add", func(t *testing.T) {
		c := store.Load(ctx)
		assert.Empty(t, c)
	})

	t.Run("Save and load", func(t *testing.T) {
		c := Cart{
			Key(1): {ProductID: 1, Name: "Cafe", Price: decimal.RequireFromString("19.90"), Quantity: 2},
		}
		require.NoError(t, store.Save(ctx, c))

		got := store.Load(ctx)
		require.Len(t, got, 1)
		assert.Equal(t, 2, got[Key(1)].Quantity)
		assert.True(t, got[Key(1)].Price.Equal(decimal.RequireFromString("19.90")))
	})

	t.Run("Clear drops the cart", func(t *testing.T) {
		require.NoError(t, store.Clear(ctx))
		assert.Empty(t, store.Load(ctx))
	})
}

func TestSessionStore_NotSharedAcrossSessions(t *testing.T) {
	sm := scs.New()
	store := NewSessionStore(sm)

	ctxA := sessionCtx(t, sm)
	ctxB := sessionCtx(t, sm)

	require.NoError(t, store.Save(ctxA, Cart{
		Key(1): {ProductID: 1, Name: "Cafe", Price: decimal.RequireFromString("19.90"), Quantity: 1},
	}))

	assert.Len(t, store.Load(ctxA), 1)
	assert.Empty(t, store.Load(ctxB))
}
