package handler

import (
	"encoding/json"
	"net/http"

	"github.com/itsGods/Notes-to-Store/internal/domain"
	"github.com/itsGods/Notes-to-Store/internal/middleware"
	"github.com/itsGods/Notes-to-Store/internal/service"
	"github.com/itsGods/Notes-to-Store/pkg/response"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r)

	user, err := h.userService.GetByID(ownerID)
	if err != nil {
		response.NotFound(w, "User not found")
		return
	}

	response.Success(w, user)
}

func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	ownerID := middleware.GetOwnerID(r)

	user, err := h.userService.Update(ownerID, &req)
	if err != nil {
		response.InternalError(w, "Failed to update user")
		return
	}

	response.Success(w, user)
}
