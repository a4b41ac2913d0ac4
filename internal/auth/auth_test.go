package auth

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/cerberus-watch/cerberus/internal/models"
	"log/slog"
)

func testConfig() Config {
	return Config{JWTSecret: "test-secret", TokenDuration: time.Hour}
}

func newTestSession(t *testing.T, store SessionStore) models.Session {
	t.Helper()
	session := NewSession(models.User{Username: "analyst", Role: models.RoleRiskAnalyst}, time.Hour)
	if err := store.Create(context.Background(), session); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	return session
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testConfig()
	session := NewSession(models.User{Username: "admin", Role: models.RoleAdmin}, time.Hour)

	token, err := GenerateToken(session, cfg.JWTSecret)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	claims, err := ValidateToken(token, cfg.JWTSecret)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}

	if claims.Username != "admin" {
		t.Errorf("claims.Username = %q, want admin", claims.Username)
	}
	if claims.Role != string(models.RoleAdmin) {
		t.Errorf("claims.Role = %q, want %q", claims.Role, models.RoleAdmin)
	}
	if claims.SessionID != session.ID {
		t.Errorf("claims.SessionID = %q, want %q", claims.SessionID, session.ID)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	session := NewSession(models.User{Username: "admin", Role: models.RoleAdmin}, time.Hour)
	token, err := GenerateToken(session, "secret-a")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if _, err := ValidateToken(token, "secret-b"); err == nil {
		t.Error("expected validation to fail with wrong secret")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	session := NewSession(models.User{Username: "admin", Role: models.RoleAdmin}, -time.Hour)
	token, err := GenerateToken(session, "secret")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	if _, err := ValidateToken(token, "secret"); err == nil {
		t.Error("expected validation to fail for expired token")
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if !CheckPassword("hunter2", hash) {
		t.Error("correct password rejected")
	}
	if CheckPassword("wrong", hash) {
		t.Error("wrong password accepted")
	}
}

func TestMiddlewareAllowsValidSession(t *testing.T) {
	cfg := testConfig()
	store := NewMemorySessionStore()
	session := newTestSession(t, store)

	token, err := GenerateToken(session, cfg.JWTSecret)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	var got Principal
	handler := Middleware(cfg, store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := PrincipalFromContext(r.Context())
		if !ok {
			t.Error("principal missing from context")
		}
		got = principal
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/vips", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if got.Username != "analyst" || got.Role != models.RoleRiskAnalyst {
		t.Errorf("principal = %+v", got)
	}
}

func TestMiddlewareRejectsMissingAndMalformedHeaders(t *testing.T) {
	cfg := testConfig()
	store := NewMemorySessionStore()
	handler := Middleware(cfg, store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/vips", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rr.Code)
			}
		})
	}
}

func TestMiddlewareRejectsTerminatedSession(t *testing.T) {
	cfg := testConfig()
	store := NewMemorySessionStore()
	session := newTestSession(t, store)

	token, err := GenerateToken(session, cfg.JWTSecret)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	// Logout destroys the session; the still-valid JWT must stop working.
	if err := store.Delete(context.Background(), session.ID); err != nil {
		t.Fatalf("failed to delete session: %v", err)
	}

	handler := Middleware(cfg, store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached after logout")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/vips", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rr.Code)
	}
}

func TestMemorySessionStoreLifecycle(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()
	session := NewSession(models.User{Username: "auditor", Role: models.RoleDatabaseAuditor}, time.Hour)

	if err := store.Create(ctx, session); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	got, err := store.Get(ctx, session.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got == nil || got.Username != "auditor" {
		t.Fatalf("Get returned %+v", got)
	}

	if err := store.Delete(ctx, session.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	got, err = store.Get(ctx, session.ID)
	if err != nil {
		t.Fatalf("Get after delete returned error: %v", err)
	}
	if got != nil {
		t.Errorf("session survived delete: %+v", got)
	}
}

type countingExpiredStore struct {
	mu    sync.Mutex
	calls int
}

func (s *countingExpiredStore) DeleteExpired(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return 1, nil
}

func (s *countingExpiredStore) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestSweepExpiredSessionsStopsOnCancel(t *testing.T) {
	store := &countingExpiredStore{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		SweepExpiredSessions(ctx, store, 5*time.Millisecond, logger)
		close(done)
	}()

	deadline := time.After(time.Second)
	for store.callCount() == 0 {
		select {
		case <-deadline:
			t.Fatal("sweeper never ran")
		case <-time.After(time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after context cancellation")
	}
}
