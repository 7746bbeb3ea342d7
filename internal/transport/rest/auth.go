package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	orderrors "github.com/odmng/orderdesk/internal/errors"
	"github.com/odmng/orderdesk/pkg/web"
)

// LoginRequest carries the login form fields.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login checks the credentials and returns a new session token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !h.checkStruct(w, r, mLogger, req) {
		return
	}

	session, err := h.sessions.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, orderrors.ErrInvalidCredentials) {
			mLogger.WarnContext(r.Context(), "Login rejected", "email", req.Email)
			web.RespondError(w, mLogger, http.StatusUnauthorized, err.Error())
			return
		}
		mLogger.ErrorContext(r.Context(), "Error during login", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Login failed, please try again")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, session)
}

// Logout ends the authenticated session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)

	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if err := h.sessions.Logout(r.Context(), token); err != nil {
		if errors.Is(err, orderrors.ErrSessionNotFound) {
			web.RespondError(w, mLogger, http.StatusUnauthorized, "Invalid or expired session")
			return
		}
		mLogger.ErrorContext(r.Context(), "Error during logout", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Logout failed")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusNoContent, nil)
}

// Me returns the user of the authenticated session.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)

	session, ok := sessionFrom(r.Context())
	if !ok {
		web.RespondError(w, mLogger, http.StatusUnauthorized, "Invalid or expired session")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, session.User)
}
