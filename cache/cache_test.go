package cache

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridoc/entitymatch/policy"
)

func TestKey(t *testing.T) {
	t.Run("symmetric", func(t *testing.T) {
		forward := Key("Mohamed Ali", "784-1990-1234567-8", "Jane Doe", "AB123456")
		backward := Key("Jane Doe", "AB123456", "Mohamed Ali", "784-1990-1234567-8")
		assert.Equal(t, forward, backward)
	})

	t.Run("built from normalized forms", func(t *testing.T) {
		a := Key("Mohamed Al-Ali", "784-1990-1234567-8", "Jane", "x1")
		b := Key("  mohamed al ali ", "78419901234567 8", "JANE", "X-1")
		assert.Equal(t, a, b)
	})

	t.Run("distinct pairs get distinct keys", func(t *testing.T) {
		a := Key("Mohamed", "1", "Ali", "2")
		b := Key("Mohamed", "1", "Ali", "3")
		assert.NotEqual(t, a, b)
	})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	verdict := policy.MatchResult{
		Confidence:      0.97,
		MatchType:       policy.MatchTypeExactID,
		SuggestedAction: policy.ActionAutoGroup,
		Reason:          "Exact ID match",
	}

	t.Run("get and set", func(t *testing.T) {
		store := Memory(0)

		_, ok, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, store.Set(ctx, "k", verdict))

		got, ok, err := store.Get(ctx, "k")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, verdict, got)
	})

	t.Run("bounded store evicts", func(t *testing.T) {
		store := Memory(10)
		for i := 0; i < 25; i++ {
			require.NoError(t, store.Set(ctx, fmt.Sprintf("k%d", i), verdict))
		}
		assert.LessOrEqual(t, store.Len(), 10)
	})

	t.Run("overwriting does not evict", func(t *testing.T) {
		store := Memory(1)
		require.NoError(t, store.Set(ctx, "k", verdict))
		require.NoError(t, store.Set(ctx, "k", verdict))
		assert.Equal(t, 1, store.Len())
	})

	t.Run("close clears", func(t *testing.T) {
		store := Memory(0)
		require.NoError(t, store.Set(ctx, "k", verdict))
		require.NoError(t, store.Close())
		assert.Equal(t, 0, store.Len())
	})
}

func TestMemoryStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	store := Memory(100)
	done := make(chan struct{})

	for w := 0; w < 8; w++ {
		w := w
		go func() {
			defer func() { done <- struct{}{} }()
			for i := 0; i < 50; i++ {
				key := fmt.Sprintf("k%d", (w*50+i)%64)
				_ = store.Set(ctx, key, policy.MatchResult{Confidence: 0.5})
				_, _, _ = store.Get(ctx, key)
			}
		}()
	}
	for j := 0; j < 8; j++ {
		<-done
	}
}
