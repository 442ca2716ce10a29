package service

import "testing"

func TestSessionManager_StoreIsPerOwner(t *testing.T) {
	repo := newMockNoteRepo()
	sessions := NewSessionManager(repo)

	a := sessions.Store("owner-a")
	b := sessions.Store("owner-b")

	if a == b {
		t.Error("different owners share a store")
	}
	if sessions.Store("owner-a") != a {
		t.Error("same owner got a new store on second call")
	}
	if sessions.Active() != 2 {
		t.Errorf("Active() = %d, want 2", sessions.Active())
	}
}

func TestSessionManager_EndClearsAndDrops(t *testing.T) {
	repo := newMockNoteRepo()
	sessions := NewSessionManager(repo)

	store := sessions.Store("owner-a")
	if _, err := store.Save("Sign-out test", "content", ""); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	sessions.End("owner-a")

	if len(store.Notes()) != 0 {
		t.Error("End() left notes in the dropped store")
	}
	if sessions.Active() != 0 {
		t.Errorf("Active() = %d after End, want 0", sessions.Active())
	}
	if len(repo.notes) != 1 {
		t.Error("End() must not delete remote notes")
	}

	// A fresh store after sign-out reloads from remote.
	fresh := sessions.Store("owner-a")
	if fresh == store {
		t.Error("Store() after End returned the dead store")
	}
	if err := fresh.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(fresh.Notes()) != 1 {
		t.Errorf("fresh store loaded %d notes, want 1", len(fresh.Notes()))
	}
}
