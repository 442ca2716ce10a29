package websocket

import (
	"encoding/json"
	"time"

	"github.com/itsGods/Notes-to-Store/internal/domain"
)

type MessageType string

const (
	TypeNoteSaved   MessageType = "note_saved"
	TypeNoteDeleted MessageType = "note_deleted"
	TypePing        MessageType = "ping"
	TypePong        MessageType = "pong"
)

type Message struct {
	Type      MessageType     `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

type NoteSavedPayload struct {
	Note *domain.Note `json:"note"`
}

type NoteDeletedPayload struct {
	NoteID string `json:"note_id"`
}

func NewMessage(msgType MessageType, payload interface{}) (*Message, error) {
	var payloadBytes json.RawMessage
	if payload != nil {
		bytes, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		payloadBytes = bytes
	}

	return &Message{
		Type:      msgType,
		Timestamp: time.Now(),
		Payload:   payloadBytes,
	}, nil
}
