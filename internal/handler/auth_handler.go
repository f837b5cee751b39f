package handler

import (
	"encoding/json"
	"net/http"

	"job-tracker/internal/middleware"
	"job-tracker/internal/model"
	"job-tracker/internal/service"
	"job-tracker/internal/session"
	"job-tracker/internal/token"
	"job-tracker/pkg/apierror"
)

type AuthHandler struct {
	auth   *service.AuthService
	tokens *token.Service
	cookie *session.Cookie
}

func NewAuthHandler(auth *service.AuthService, tokens *token.Service, cookie *session.Cookie) *AuthHandler {
	return &AuthHandler{auth: auth, tokens: tokens, cookie: cookie}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.Validation("Invalid JSON body"))
		return
	}

	user, err := h.auth.Register(r.Context(), payload.Name, payload.Email, payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.startSession(w, user.ID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, model.UserResponse{
		Success: true,
		Message: "Account created successfully",
		User:    user.Public(),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.Validation("Invalid JSON body"))
		return
	}

	user, err := h.auth.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.startSession(w, user.ID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.UserResponse{
		Success: true,
		Message: "Logged in successfully",
		User:    user.Public(),
	})
}

// Logout clears the cookie unconditionally; the token itself stays
// valid until expiry since no revocation list is kept.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.cookie.Clear(w)
	writeJSON(w, http.StatusOK, model.MessageResponse{
		Success: true,
		Message: "Logged out successfully",
	})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, apierror.Unauthenticated("Not authorized"))
		return
	}

	writeJSON(w, http.StatusOK, model.UserResponse{
		Success: true,
		User:    user.Public(),
	})
}

func (h *AuthHandler) startSession(w http.ResponseWriter, principalID string) error {
	signed, err := h.tokens.Issue(principalID)
	if err != nil {
		return err
	}

	h.cookie.Attach(w, signed)
	return nil
}
