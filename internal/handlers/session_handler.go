package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"quizowl/internal/models"
	"quizowl/internal/service"
	"quizowl/internal/validation"
)

// SessionHandler serves the session-wide endpoints: state, navigation,
// login, signup and the public account help forms
type SessionHandler struct {
	accounts *service.AccountService
	log      *zap.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(accounts *service.AccountService, log *zap.Logger) *SessionHandler {
	return &SessionHandler{accounts: accounts, log: log}
}

// State returns the current session snapshot
func (h *SessionHandler) State(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	respondJSON(w, http.StatusOK, session.State())
}

// Navigate moves the session to another screen
func (h *SessionHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	var req navigateRequest
	if err := decodeJSON(r, w, &req); err != nil {
		respondWithServiceError(w, h.log, "failed to decode navigation", err)
		return
	}

	nav := models.NavContext{
		Topic:   service.NormalizeTopic(req.Topic),
		Group:   req.Group,
		Subject: req.Subject,
	}
	if err := session.Navigate(req.Screen, nav); err != nil {
		respondWithServiceError(w, h.log, "failed to navigate", err)
		return
	}
	respondJSON(w, http.StatusOK, session.State())
}

// Login handles parent and child login
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	var req loginRequest
	if err := decodeJSON(r, w, &req); err != nil {
		respondWithServiceError(w, h.log, "failed to decode login", err)
		return
	}

	if err := session.Login(req.Username, req.Password, req.Role); err != nil {
		respondWithServiceError(w, h.log, "login failed", err)
		return
	}
	respondJSON(w, http.StatusOK, session.State())
}

// Logout logs the session out. The session itself lives on.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	session.Logout()
	respondJSON(w, http.StatusOK, session.State())
}

// Signup creates a parent account and logs it in
func (h *SessionHandler) Signup(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	var req signupRequest
	if err := decodeJSON(r, w, &req); err != nil {
		respondWithServiceError(w, h.log, "failed to decode signup", err)
		return
	}
	if err := validation.ValidatePasswordConfirmation(req.Password, req.ConfirmPassword); err != nil {
		respondWithServiceError(w, h.log, "", err)
		return
	}

	if _, err := session.SignupParent(req.Username, req.Password, req.Email); err != nil {
		respondWithServiceError(w, h.log, "signup failed", err)
		return
	}
	respondJSON(w, http.StatusCreated, session.State())
}

// ForgotPassword sends a username reminder to the address if a parent uses
// it. The response is the same either way.
func (h *SessionHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	var req forgotPasswordRequest
	if err := decodeJSON(r, w, &req); err != nil {
		respondWithServiceError(w, h.log, "failed to decode forgot password", err)
		return
	}

	h.accounts.ForgotPassword(r.Context(), req.Email)
	if err := session.Navigate(models.ScreenParentLogin, models.NavContext{}); err != nil {
		respondWithServiceError(w, h.log, "failed to navigate", err)
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{
		Message: "If a parent account uses that address, we have sent its username there.",
	})
}

// Contact forwards a contact form message
func (h *SessionHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var req service.ContactMessage
	if err := decodeJSON(r, w, &req); err != nil {
		respondWithServiceError(w, h.log, "failed to decode contact message", err)
		return
	}

	if err := h.accounts.Contact(r.Context(), req); err != nil {
		respondWithError(w, h.log, http.StatusBadGateway, "Your message could not be sent, please try again later", "failed to forward contact message", err)
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: "Thanks for your message!"})
}
