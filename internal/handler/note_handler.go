package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/itsGods/Notes-to-Store/internal/domain"
	"github.com/itsGods/Notes-to-Store/internal/middleware"
	"github.com/itsGods/Notes-to-Store/internal/service"
	"github.com/itsGods/Notes-to-Store/internal/websocket"
	"github.com/itsGods/Notes-to-Store/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type NoteHandler struct {
	sessions         *service.SessionManager
	transformService *service.TransformService
	wsManager        *websocket.Manager
	validate         *validator.Validate
}

func NewNoteHandler(sessions *service.SessionManager, transformService *service.TransformService, wsManager *websocket.Manager) *NoteHandler {
	return &NoteHandler{
		sessions:         sessions,
		transformService: transformService,
		wsManager:        wsManager,
		validate:         validator.New(),
	}
}

// List refreshes the owner's collection and answers with the filtered,
// recency-grouped view. When the refresh fails but an earlier snapshot
// exists, the stale snapshot is served and flagged as such.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r)
	store := h.sessions.Store(ownerID)

	stale := false
	if err := store.Load(); err != nil {
		var syncErr *service.SyncError
		if !errors.As(err, &syncErr) {
			response.InternalError(w, "Failed to list notes")
			return
		}

		notes := store.Notes()
		if len(notes) == 0 {
			response.BadGateway(w, "Failed to sync notes")
			return
		}
		stale = true
	}

	query := r.URL.Query().Get("q")
	filtered := service.FilterNotes(store.Notes(), query)
	groups := service.GroupByRecency(filtered, time.Now())

	response.Success(w, map[string]interface{}{
		"query":  query,
		"stale":  stale,
		"groups": groups,
	})
}

func (h *NoteHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req domain.SaveNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request payload")
		return
	}

	ownerID := middleware.GetOwnerID(r)
	store := h.sessions.Store(ownerID)

	note, err := store.Save(req.Title, req.Content, req.ID)
	if note == nil && err == nil {
		// Blank draft: nothing was written, nothing to report back.
		response.Success(w, map[string]interface{}{"discarded": true})
		return
	}

	if err != nil {
		var saveErr *service.SaveError
		if errors.As(err, &saveErr) {
			response.BadGateway(w, "Failed to save note")
			return
		}
		// The write went through; only the follow-up reload failed.
		h.notifySaved(ownerID, note)
		response.Success(w, map[string]interface{}{"note": note, "stale": true})
		return
	}

	h.notifySaved(ownerID, note)
	response.Success(w, map[string]interface{}{"note": note, "stale": false})
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	noteID := mux.Vars(r)["id"]
	if noteID == "" {
		response.BadRequest(w, "Note ID is required")
		return
	}

	ownerID := middleware.GetOwnerID(r)
	store := h.sessions.Store(ownerID)

	removed, err := store.Delete(noteID)
	if err != nil && !removed {
		// Nothing left the remote store and the collection could not
		// be refreshed.
		response.BadGateway(w, "Failed to delete note")
		return
	}
	if err != nil {
		log.Printf("reload after delete failed for owner %s: %v", ownerID, err)
	}

	if removed {
		h.notifyDeleted(ownerID, noteID)
	}
	response.Success(w, map[string]string{"message": "Note deleted successfully"})
}

func (h *NoteHandler) Transform(w http.ResponseWriter, r *http.Request) {
	var req domain.TransformNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request payload")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	text, err := h.transformService.Transform(req.Text, req.Action)
	if err != nil {
		// The service hands the original text back on failure.
		response.JSON(w, http.StatusBadGateway, domain.TransformNoteResponse{
			Text:        text,
			Transformed: false,
		})
		return
	}

	response.Success(w, domain.TransformNoteResponse{
		Text:        text,
		Transformed: true,
	})
}

func (h *NoteHandler) notifySaved(ownerID string, note *domain.Note) {
	if h.wsManager == nil {
		return
	}
	msg, err := websocket.NewMessage(websocket.TypeNoteSaved, websocket.NoteSavedPayload{Note: note})
	if err != nil {
		return
	}
	h.wsManager.BroadcastToOwner(ownerID, msg)
}

func (h *NoteHandler) notifyDeleted(ownerID, noteID string) {
	if h.wsManager == nil {
		return
	}
	msg, err := websocket.NewMessage(websocket.TypeNoteDeleted, websocket.NoteDeletedPayload{NoteID: noteID})
	if err != nil {
		return
	}
	h.wsManager.BroadcastToOwner(ownerID, msg)
}
