package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cerberus-watch/cerberus/internal/access"
	"github.com/cerberus-watch/cerberus/internal/auth"
	"github.com/cerberus-watch/cerberus/internal/models"
	"log/slog"
)

// UserStore looks up accounts for login.
type UserStore interface {
	GetUser(ctx context.Context, username string) (*models.User, error)
}

// AuthHandler handles authentication requests
type AuthHandler struct {
	config   auth.Config
	users    UserStore
	sessions auth.SessionStore
	logger   *slog.Logger
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(config auth.Config, users UserStore, sessions auth.SessionStore, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		config:   config,
		users:    users,
		sessions: sessions,
		logger:   logger,
	}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginUser is the user payload returned on successful login.
type LoginUser struct {
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

// LoginResponse represents a login response
type LoginResponse struct {
	Success   bool       `json:"success"`
	Message   string     `json:"message,omitempty"`
	User      *LoginUser `json:"user,omitempty"`
	Token     string     `json:"token,omitempty"`
	ExpiresAt string     `json:"expires_at,omitempty"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	// Set CORS headers for all responses
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

	// Handle CORS preflight
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// One generic failure message for every cause: bad username, bad
	// password, and lookup errors are indistinguishable to the caller.
	user, err := h.users.GetUser(r.Context(), req.Username)
	if err != nil {
		h.logger.Error("user lookup failed", "error", err)
		h.rejectLogin(w)
		return
	}
	if user == nil || !auth.CheckPassword(req.Password, user.PasswordHash) {
		h.logger.Warn("failed login attempt", "username", req.Username, "ip", r.RemoteAddr)
		h.rejectLogin(w)
		return
	}

	session := auth.NewSession(*user, h.config.TokenDuration)
	if err := h.sessions.Create(r.Context(), session); err != nil {
		h.logger.Error("failed to create session", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	token, err := auth.GenerateToken(session, h.config.JWTSecret)
	if err != nil {
		h.logger.Error("failed to generate token", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("successful login", "username", user.Username, "role", user.Role, "ip", r.RemoteAddr)

	writeJSON(w, http.StatusOK, LoginResponse{
		Success:   true,
		User:      &LoginUser{Username: user.Username, Role: user.Role},
		Token:     token,
		ExpiresAt: session.ExpiresAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}, h.logger)
}

func (h *AuthHandler) rejectLogin(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, LoginResponse{
		Success: false,
		Message: "Invalid credentials",
	}, h.logger)
}

// Logout handles POST /api/auth/logout. Destroys the backing session, which
// immediately invalidates the token everywhere.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	if err := h.sessions.Delete(r.Context(), principal.SessionID); err != nil {
		h.logger.Error("failed to delete session", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("logout", "username", principal.Username)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true}, h.logger)
}

// MeResponse is the payload for GET /api/auth/me.
type MeResponse struct {
	Username string        `json:"username"`
	Role     models.Role   `json:"role"`
	Areas    []access.Area `json:"areas"`
}

// Me handles GET /api/auth/me, returning the authenticated principal and
// the dashboard areas visible to its role. The area list is advisory
// navigation data, not an authorization decision.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, MeResponse{
		Username: principal.Username,
		Role:     principal.Role,
		Areas:    access.VisibleAreas(principal.Role),
	}, h.logger)
}
