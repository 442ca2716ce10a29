package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/itsGods/Notes-to-Store/internal/domain"
	"github.com/itsGods/Notes-to-Store/internal/middleware"
	"github.com/itsGods/Notes-to-Store/internal/service"
	"github.com/itsGods/Notes-to-Store/pkg/response"

	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	authService *service.AuthService
	sessions    *service.SessionManager
	validator   *validator.Validate
}

func NewAuthHandler(authService *service.AuthService, sessions *service.SessionManager) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		validator:   validator.New(),
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	if err := h.authService.Register(&req); err != nil {
		writeAuthError(w, err)
		return
	}

	response.Created(w, map[string]string{
		"message": "User registered successfully. Please login.",
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	loginResp, err := h.authService.Login(&req)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	response.Success(w, loginResp)
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req domain.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	tokenResp, err := h.authService.RefreshToken(&req)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	response.Success(w, tokenResp)
}

// Logout tears down the caller's session store; the local collection is
// cleared, remote state stays as it is.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetOwnerID(r)
	h.sessions.End(ownerID)

	response.Success(w, map[string]string{
		"message": "Logged out successfully",
	})
}

func writeAuthError(w http.ResponseWriter, err error) {
	var authErr *service.AuthError
	if !errors.As(err, &authErr) {
		response.InternalError(w, "Something went wrong")
		return
	}

	switch authErr.Kind {
	case service.AuthAccountExists:
		response.Error(w, http.StatusConflict, authErr.Message)
	case service.AuthRateLimited:
		response.TooManyRequests(w, authErr.Message)
	default:
		response.Unauthorized(w, authErr.Message)
	}
}
