package project

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// countingStore records upserts for debounce assertions
type countingStore struct {
	mu       sync.Mutex
	upserts  []Project
	failWith error
}

func (cs *countingStore) List() ([]Project, error) { return nil, nil }

func (cs *countingStore) Get(id string) (*Project, error) { return nil, nil }

func (cs *countingStore) Upsert(p Project) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if cs.failWith != nil {
		return cs.failWith
	}
	cs.upserts = append(cs.upserts, p)
	return nil
}

func (cs *countingStore) count() int {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return len(cs.upserts)
}

func (cs *countingStore) last() Project {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.upserts[len(cs.upserts)-1]
}

func TestAutosaver_Debounce(t *testing.T) {
	t.Run("should collapse rapid edits into a single save with final state", func(t *testing.T) {
		// Arrange
		store := &countingStore{}
		var mu sync.Mutex
		current := testProject("p1", 1)
		saver := NewAutosaver(20*time.Millisecond, func() Project {
			mu.Lock()
			defer mu.Unlock()
			return current
		}, store, zap.NewNop())
		defer saver.Close()

		// Act: two edits inside the debounce window
		saver.Notify()
		mu.Lock()
		current = testProject("p1", 2)
		mu.Unlock()
		saver.Notify()

		// Assert
		require.Eventually(t, func() bool { return store.count() == 1 },
			time.Second, 5*time.Millisecond, "exactly one save should fire")
		assert.EqualValues(t, 2, store.last().LastModified, "save captures the final state")

		time.Sleep(50 * time.Millisecond)
		assert.Equal(t, 1, store.count(), "no further saves without new edits")
	})

	t.Run("should save again after a new edit past the window", func(t *testing.T) {
		store := &countingStore{}
		saver := NewAutosaver(10*time.Millisecond, func() Project {
			return testProject("p1", 1)
		}, store, zap.NewNop())
		defer saver.Close()

		saver.Notify()
		require.Eventually(t, func() bool { return store.count() == 1 }, time.Second, time.Millisecond)

		saver.Notify()
		require.Eventually(t, func() bool { return store.count() == 2 }, time.Second, time.Millisecond)
	})
}

func TestAutosaver_Close(t *testing.T) {
	t.Run("should flush a pending save on close", func(t *testing.T) {
		store := &countingStore{}
		saver := NewAutosaver(time.Hour, func() Project {
			return testProject("p1", 1)
		}, store, zap.NewNop())

		saver.Notify()
		require.NoError(t, saver.Close())

		assert.Equal(t, 1, store.count())
	})

	t.Run("should not save when nothing is pending", func(t *testing.T) {
		store := &countingStore{}
		saver := NewAutosaver(time.Hour, func() Project {
			return testProject("p1", 1)
		}, store, zap.NewNop())

		require.NoError(t, saver.Close())

		assert.Equal(t, 0, store.count())
	})

	t.Run("should ignore notifications after close", func(t *testing.T) {
		store := &countingStore{}
		saver := NewAutosaver(time.Millisecond, func() Project {
			return testProject("p1", 1)
		}, store, zap.NewNop())
		require.NoError(t, saver.Close())

		saver.Notify()
		time.Sleep(20 * time.Millisecond)

		assert.Equal(t, 0, store.count())
	})
}

func TestAutosaver_Flush(t *testing.T) {
	store := &countingStore{}
	saver := NewAutosaver(time.Hour, func() Project {
		return testProject("p1", 1)
	}, store, zap.NewNop())
	defer saver.Close()

	saver.Notify()
	saver.Flush()

	assert.Equal(t, 1, store.count())

	saver.Flush()
	assert.Equal(t, 1, store.count(), "flush without pending edits is a no-op")
}

func TestAutosaver_StoreFailure(t *testing.T) {
	// a failing store must not panic or retry; the session carries on
	store := &countingStore{failWith: assert.AnError}
	saver := NewAutosaver(time.Millisecond, func() Project {
		return testProject("p1", 1)
	}, store, zap.NewNop())
	defer saver.Close()

	saver.Notify()
	time.Sleep(20 * time.Millisecond)

	saver.Notify()
	saver.Flush()
}
