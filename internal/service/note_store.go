package service

import (
	"log"
	"sync"
	"time"

	"github.com/itsGods/Notes-to-Store/internal/domain"
	"github.com/itsGods/Notes-to-Store/internal/repository"

	"github.com/google/uuid"
)

// NoteStore owns the authoritative local collection for one signed-in
// owner, kept in sync with the remote store by reloading after every
// confirmed mutation. The mutex serializes mutations per owner so that
// concurrent HTTP callers cannot interleave a write with its reload.
type NoteStore struct {
	ownerID string
	repo    repository.NoteRepository

	mu     sync.Mutex
	loaded bool
	notes  []*domain.Note
}

func NewNoteStore(ownerID string, repo repository.NoteRepository) *NoteStore {
	return &NoteStore{
		ownerID: ownerID,
		repo:    repo,
	}
}

func (s *NoteStore) OwnerID() string {
	return s.ownerID
}

// Load replaces the local collection wholesale with the remote state,
// most-recently-updated first. On failure the prior collection is kept
// and a *SyncError is returned; stale data is the caller's call to make.
func (s *NoteStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.reload()
}

// Notes returns a snapshot of the collection. The slice is the caller's
// to keep; the notes themselves are shared and must be treated as
// read-only.
func (s *NoteStore) Notes() []*domain.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]*domain.Note, len(s.notes))
	copy(snapshot, s.notes)
	return snapshot
}

// Save resolves the draft through the save policy, writes it through to
// the remote store, then reloads so the collection reflects the remotely
// stamped timestamps. A fully blank draft is a discard: no write, no new
// note, nil result. A failed write returns *SaveError with the local
// collection untouched.
func (s *NoteStore) Save(draftTitle, draftContent, existingID string) (*domain.Note, error) {
	if IsBlankDraft(draftTitle, draftContent) {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	title, content := ResolveDraft(draftTitle, draftContent)

	note := &domain.Note{
		ID:        existingID,
		OwnerID:   s.ownerID,
		Title:     title,
		Content:   content,
		UpdatedAt: time.Now(),
	}
	if note.ID == "" {
		note.ID = uuid.New().String()
	}

	if err := s.repo.Upsert(note); err != nil {
		return nil, &SaveError{NoteID: note.ID, Err: err}
	}

	if err := s.reload(); err != nil {
		// The write went through; only the refresh failed.
		return note, err
	}

	for _, n := range s.notes {
		if n.ID == note.ID {
			return n, nil
		}
	}
	return note, nil
}

// Delete removes a note remotely and reloads, reporting whether the
// remote delete was issued and confirmed. An id that was never part of
// the collection is a discarded draft: pure local no-op, no remote
// call. A store that has never loaded refreshes first so a persisted
// note cannot be mistaken for a draft. Remote delete failures are
// logged only; the following reload simply shows the note again, which
// is self-correcting.
func (s *NoteStore) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		if err := s.reload(); err != nil {
			return false, err
		}
	}

	if !s.contains(id) {
		return false, nil
	}

	if err := s.repo.DeleteByID(id); err != nil {
		log.Printf("best-effort delete of note %s failed: %v", id, err)
		return false, s.reload()
	}

	return true, s.reload()
}

// Clear empties the local collection only, for sign-out. Remote state is
// untouched.
func (s *NoteStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = nil
	s.loaded = false
}

func (s *NoteStore) contains(id string) bool {
	for _, n := range s.notes {
		if n.ID == id {
			return true
		}
	}
	return false
}

// reload must be called with s.mu held.
func (s *NoteStore) reload() error {
	notes, err := s.repo.FetchAll(s.ownerID)
	if err != nil {
		return &SyncError{OwnerID: s.ownerID, Err: err}
	}

	s.notes = notes
	s.loaded = true
	return nil
}
