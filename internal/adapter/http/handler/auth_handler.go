package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/tobostore/Catatan-Keuangan/internal/adapter/http/dto"
	"github.com/tobostore/Catatan-Keuangan/internal/adapter/http/middleware"
	"github.com/tobostore/Catatan-Keuangan/internal/domain"
	"github.com/tobostore/Catatan-Keuangan/internal/infrastructure/auth"
	"github.com/tobostore/Catatan-Keuangan/internal/infrastructure/metrics"
	"github.com/tobostore/Catatan-Keuangan/internal/usecase"
)

// UserService defines the behavior needed by AuthHandler.
type UserService interface {
	Authenticate(ctx context.Context, input usecase.AuthenticateInput) (*domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
}

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	userUC   UserService
	sessions *auth.SessionManager
	metrics  *metrics.Metrics
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userUC UserService, sessions *auth.SessionManager, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		userUC:   userUC,
		sessions: sessions,
		metrics:  m,
	}
}

// Login verifies credentials and starts a session. The token is set as a
// cookie for browser clients and echoed in the body for everything else.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, err := h.userUC.Authenticate(r.Context(), usecase.AuthenticateInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.metrics.LoginAttempts.WithLabelValues("failure").Inc()
		writeDomainError(w, r, err)
		return
	}

	token, err := h.sessions.Issue(user)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	h.metrics.LoginAttempts.WithLabelValues("success").Inc()

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessions.TTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
		},
	})
}

// Logout clears the session cookie. The token itself stays valid until it
// expires; there is no server side session state to revoke.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Me returns the current authenticated user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	user, err := h.userUC.GetUser(r.Context(), session.ID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	})
}
