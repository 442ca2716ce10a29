package domain

import "time"

// Note is the canonical persisted record. A note only ever enters the
// local collection after its first successful save; before that the
// title/content pair is an editor draft, not a Note.
type Note struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TransformAction string

const (
	ActionSummarize TransformAction = "summarize"
	ActionExpand    TransformAction = "expand"
	ActionImprove   TransformAction = "improve"
)

type SaveNoteRequest struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type TransformNoteRequest struct {
	Text   string          `json:"text" validate:"required"`
	Action TransformAction `json:"action" validate:"required,oneof=summarize expand improve"`
}

type TransformNoteResponse struct {
	Text        string `json:"text"`
	Transformed bool   `json:"transformed"`
}
