package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// offlineStore builds a Store around a client that never reaches a
// server, so driver calls fail during server selection.
func offlineStore(t *testing.T) *Store {
	t.Helper()

	client, err := mongo.Connect(context.Background(),
		options.Client().ApplyURI("mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=100&connectTimeoutMS=100"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	return &Store{
		client: client,
		db:     client.Database("test"),
		locks: map[string]*sync.Mutex{
			colGalleryItems:   {},
			colUpcomingEvents: {},
		},
	}
}

// A write issued on a context that already expired never reaches the
// server; handlers must take their store deadline after any slow work.
func TestReplaceFailsFastOnExpiredContext(t *testing.T) {
	s := offlineStore(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	<-ctx.Done()

	err := s.replaceByID(ctx, colGalleryItems, "gallery-1", bson.M{"id": "gallery-1"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "context deadline exceeded")
}

func TestApplyPriorityWriteClearsBeforeWriting(t *testing.T) {
	var lock sync.Mutex
	var steps []string

	err := applyPriorityWrite(&lock,
		func() error { steps = append(steps, "clear"); return nil },
		func() error { steps = append(steps, "write"); return nil },
	)
	require.NoError(t, err)
	require.Equal(t, []string{"clear", "write"}, steps)
}

func TestApplyPriorityWriteAbortsOnClearFailure(t *testing.T) {
	var lock sync.Mutex
	clearErr := errors.New("clear failed")
	wrote := false

	err := applyPriorityWrite(&lock,
		func() error { return clearErr },
		func() error { wrote = true; return nil },
	)
	require.ErrorIs(t, err, clearErr)
	require.False(t, wrote)
}

// Concurrent flagged writes must not interleave: each clear-then-write
// pair runs alone, otherwise two records could end up flagged.
func TestApplyPriorityWriteSerializesFlaggedWrites(t *testing.T) {
	var lock sync.Mutex

	var mu sync.Mutex
	inFlight, peak := 0, 0
	enter := func() error {
		mu.Lock()
		inFlight++
		if inFlight > peak {
			peak = inFlight
		}
		mu.Unlock()
		time.Sleep(2 * time.Millisecond)
		return nil
	}
	leave := func() error {
		time.Sleep(2 * time.Millisecond)
		mu.Lock()
		inFlight--
		mu.Unlock()
		return nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = applyPriorityWrite(&lock, enter, leave)
		}()
	}
	wg.Wait()

	require.Equal(t, 1, peak)
}
