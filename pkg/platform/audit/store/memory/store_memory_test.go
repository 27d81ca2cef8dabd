package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	audit "policycore/pkg/platform/audit"
)

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	require.NoError(t, store.Append(ctx, audit.Event{Subject: "S001", Action: "a"}))
	require.NoError(t, store.Append(ctx, audit.Event{Subject: "S002", Action: "b"}))
	require.NoError(t, store.Append(ctx, audit.Event{Subject: "S001", Action: "c"}))

	t.Run("lists by subject in order", func(t *testing.T) {
		events, err := store.ListBySubject(ctx, "S001")
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "a", events[0].Action)
		assert.Equal(t, "c", events[1].Action)
	})

	t.Run("unknown subject is empty", func(t *testing.T) {
		events, err := store.ListBySubject(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("list all keeps append order", func(t *testing.T) {
		events, err := store.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, []string{"a", "b", "c"}, []string{events[0].Action, events[1].Action, events[2].Action})
	})

	t.Run("list recent caps at limit", func(t *testing.T) {
		events, err := store.ListRecent(ctx, 2)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "b", events[0].Action)

		events, err = store.ListRecent(ctx, 10)
		require.NoError(t, err)
		assert.Len(t, events, 3)
	})

	t.Run("list recent with non-positive limit is empty", func(t *testing.T) {
		events, err := store.ListRecent(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}
