package service

import (
	"sync"

	"github.com/itsGods/Notes-to-Store/internal/repository"
)

// SessionManager hands out one NoteStore per signed-in owner. Stores are
// created lazily on first use and torn down on sign-out, so there is no
// ambient global collection anywhere.
type SessionManager struct {
	repo repository.NoteRepository

	mu     sync.RWMutex
	stores map[string]*NoteStore
}

func NewSessionManager(repo repository.NoteRepository) *SessionManager {
	return &SessionManager{
		repo:   repo,
		stores: make(map[string]*NoteStore),
	}
}

// Store returns the owner's NoteStore, creating an empty one if the owner
// has no live session yet.
func (m *SessionManager) Store(ownerID string) *NoteStore {
	m.mu.RLock()
	store, ok := m.stores[ownerID]
	m.mu.RUnlock()
	if ok {
		return store
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.stores[ownerID]; ok {
		return store
	}

	store = NewNoteStore(ownerID, m.repo)
	m.stores[ownerID] = store
	return store
}

// End clears and drops the owner's store on sign-out.
func (m *SessionManager) End(ownerID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.stores[ownerID]; ok {
		store.Clear()
		delete(m.stores, ownerID)
	}
}

// Active reports how many owners currently hold a live store.
func (m *SessionManager) Active() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.stores)
}
