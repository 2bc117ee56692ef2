package store

import (
	"sync"

	"xidach/internal/shared"
)

type entry struct {
	mu   sync.Mutex
	room *shared.Room
}

// MemoryStore keeps rooms for the life of the process. Ids are handed out
// sequentially. Every access to a room goes through that room's own lock so
// actions on one room never interleave, while different rooms run freely.
type MemoryStore struct {
	mu     sync.RWMutex
	rooms  map[int]*entry
	nextID int
}

func NewMemoryStore(firstID int) *MemoryStore {
	return &MemoryStore{
		rooms:  map[int]*entry{},
		nextID: firstID,
	}
}

// Create allocates the next id, stores the room built for it and runs fn
// with the room locked.
func (m *MemoryStore) Create(build func(id int) *shared.Room, fn func(r *shared.Room)) *shared.Room {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	e := &entry{room: build(id)}
	e.mu.Lock()
	m.rooms[id] = e
	m.mu.Unlock()

	defer e.mu.Unlock()
	if fn != nil {
		fn(e.room)
	}
	return e.room
}

// With runs fn while holding the room's lock. It reports false when the room
// does not exist.
func (m *MemoryStore) With(id int, fn func(r *shared.Room)) bool {
	m.mu.RLock()
	e, ok := m.rooms[id]
	m.mu.RUnlock()
	if !ok {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.room)
	return true
}

func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rooms)
}
