package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xidach/internal/shared"
)

func newRoom(id int) *shared.Room {
	return &shared.Room{ID: id, Phase: shared.PhaseWaitingPlayer}
}

func TestCreateAllocatesSequentialIDs(t *testing.T) {
	s := NewMemoryStore(1000)

	a := s.Create(newRoom, nil)
	b := s.Create(newRoom, nil)

	assert.Equal(t, 1000, a.ID)
	assert.Equal(t, 1001, b.ID)
	assert.Equal(t, 2, s.Len())
}

func TestWithUnknownRoom(t *testing.T) {
	s := NewMemoryStore(1)
	called := false

	ok := s.With(42, func(*shared.Room) { called = true })

	assert.False(t, ok)
	assert.False(t, called)
}

func TestCreateRunsCallbackWithRoomLocked(t *testing.T) {
	s := NewMemoryStore(1)
	var seen int

	s.Create(newRoom, func(r *shared.Room) {
		seen = r.ID
		r.Message = "ready"
	})

	assert.Equal(t, 1, seen)
	ok := s.With(1, func(r *shared.Room) {
		assert.Equal(t, "ready", r.Message)
	})
	require.True(t, ok)
}

func TestWithSerializesPerRoom(t *testing.T) {
	s := NewMemoryStore(1)
	s.Create(newRoom, nil)

	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.With(1, func(r *shared.Room) {
				// read-modify-write; lost updates would show up as a short count
				n := r.TurnIdx
				r.TurnIdx = n + 1
			})
		}()
	}
	wg.Wait()

	s.With(1, func(r *shared.Room) {
		assert.Equal(t, 200, r.TurnIdx)
	})
}

func TestConcurrentCreateKeepsIDsUnique(t *testing.T) {
	s := NewMemoryStore(1)

	var wg sync.WaitGroup
	ids := make(chan int, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- s.Create(newRoom, nil).ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, 50)
}
