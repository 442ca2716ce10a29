package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/itsGods/Notes-to-Store/internal/domain"

	"github.com/go-kivik/kivik/v4"
)

// NoteRepository is the remote persistence boundary for notes. FetchAll
// returns an owner's notes most-recently-updated first; Upsert creates or
// wholesale-replaces by id and stamps updated_at server-side, so callers
// must reload rather than trust their locally computed timestamp.
type NoteRepository interface {
	FetchAll(ownerID string) ([]*domain.Note, error)
	Upsert(note *domain.Note) error
	DeleteByID(id string) error
}

type noteRepository struct {
	client *kivik.Client
	dbName string
}

func NewNoteRepository(client *kivik.Client, dbName string) NoteRepository {
	return &noteRepository{
		client: client,
		dbName: dbName,
	}
}

func (r *noteRepository) FetchAll(ownerID string) ([]*domain.Note, error) {
	db := r.client.DB(r.dbName)

	// Mango only accepts the sort when updated_at is part of the
	// selector and the owner_id/updated_at index covers the query.
	query := map[string]interface{}{
		"selector": map[string]interface{}{
			"owner_id":   ownerID,
			"updated_at": map[string]interface{}{"$gt": nil},
		},
		"sort": []interface{}{
			map[string]string{"owner_id": "desc"},
			map[string]string{"updated_at": "desc"},
		},
	}

	rows := db.Find(context.Background(), query)
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to fetch notes: %w", err)
	}
	defer rows.Close()

	var notes []*domain.Note
	for rows.Next() {
		var note domain.Note
		if err := rows.ScanDoc(&note); err != nil {
			continue
		}
		notes = append(notes, &note)
	}

	return notes, nil
}

func (r *noteRepository) Upsert(note *domain.Note) error {
	db := r.client.DB(r.dbName)
	docID := fmt.Sprintf("note:%s", note.ID)
	now := time.Now().UTC()

	var existingDoc map[string]interface{}
	row := db.Get(context.Background(), docID)
	if err := row.ScanDoc(&existingDoc); err == nil {
		existingDoc["title"] = note.Title
		existingDoc["content"] = note.Content
		existingDoc["updated_at"] = now

		if _, err := db.Put(context.Background(), docID, existingDoc); err != nil {
			return fmt.Errorf("failed to replace note: %w", err)
		}
		return nil
	}

	doc := map[string]interface{}{
		"id":         note.ID,
		"owner_id":   note.OwnerID,
		"title":      note.Title,
		"content":    note.Content,
		"created_at": now,
		"updated_at": now,
	}

	if _, err := db.Put(context.Background(), docID, doc); err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}

	return nil
}

func (r *noteRepository) DeleteByID(id string) error {
	db := r.client.DB(r.dbName)
	docID := fmt.Sprintf("note:%s", id)

	var existingDoc map[string]interface{}
	row := db.Get(context.Background(), docID)
	if err := row.ScanDoc(&existingDoc); err != nil {
		return fmt.Errorf("failed to find note for delete: %w", err)
	}

	rev, _ := existingDoc["_rev"].(string)
	if _, err := db.Delete(context.Background(), docID, rev); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	return nil
}
