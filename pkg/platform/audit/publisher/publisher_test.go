package publisher

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	audit "policycore/pkg/platform/audit"
	"policycore/pkg/platform/audit/store/memory"
	"policycore/pkg/requestcontext"
)

func TestPublisher_Emit(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store)

	event := audit.Event{
		Subject: "S001",
		Action:  string(audit.EventRegistrationRejected),
	}

	err := pub.Emit(context.Background(), event)
	require.NoError(t, err)

	events, err := pub.List(context.Background(), "S001")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, string(audit.EventRegistrationRejected), events[0].Action)
	assert.Equal(t, audit.CategoryCompliance, events[0].Category)
}

func TestPublisher_SetsTimestamp(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store)

	before := time.Now()
	err := pub.Emit(context.Background(), audit.Event{Subject: "S001", Action: "x"})
	require.NoError(t, err)
	after := time.Now()

	events, err := pub.List(context.Background(), "S001")
	require.NoError(t, err)
	require.Len(t, events, 1)

	assert.False(t, events[0].Timestamp.Before(before), "timestamp should be >= before")
	assert.False(t, events[0].Timestamp.After(after), "timestamp should be <= after")
}

func TestPublisher_UsesContextValues(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store)

	fixed := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), fixed)
	ctx = requestcontext.WithRequestID(ctx, "req-7")

	require.NoError(t, pub.Emit(ctx, audit.Event{Subject: "o-1", Action: string(audit.EventCheckoutCompleted)}))

	events, err := pub.List(ctx, "o-1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, fixed, events[0].Timestamp)
	assert.Equal(t, "req-7", events[0].RequestID)
}

func TestPublisher_PreservesExistingTimestamp(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store)

	customTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	err := pub.Emit(context.Background(), audit.Event{
		Subject:   "S001",
		Action:    "x",
		Timestamp: customTime,
		Category:  audit.CategoryOperations,
	})
	require.NoError(t, err)

	events, err := pub.List(context.Background(), "S001")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, customTime, events[0].Timestamp)
}

func TestPublisher_ContextCancellation(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pub.Emit(ctx, audit.Event{Subject: "S001", Action: "x"})
	assert.True(t, errors.Is(err, context.Canceled))

	events, err := store.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, events)
}

type failingStore struct{}

func (failingStore) Append(context.Context, audit.Event) error { return errors.New("disk full") }
func (failingStore) ListBySubject(context.Context, string) ([]audit.Event, error) {
	return nil, nil
}

func TestPublisher_StoreFailure(t *testing.T) {
	pub := NewPublisher(failingStore{})
	err := pub.Emit(context.Background(), audit.Event{Subject: "S001", Action: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
