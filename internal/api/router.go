package api

import (
	"net/http"

	"github.com/cerberus-watch/cerberus/internal/auth"
	"github.com/cerberus-watch/cerberus/internal/briefing"
	"github.com/cerberus-watch/cerberus/internal/feed"
	"log/slog"
)

// SetupRoutes configures all API routes
func SetupRoutes(
	mux *http.ServeMux,
	store DataStore,
	users UserStore,
	sessions auth.SessionStore,
	poller *feed.Poller,
	briefer briefing.Generator,
	authConfig auth.Config,
	logger *slog.Logger,
) {
	handler := NewHandler(store, poller, briefer, logger)
	authHandler := NewAuthHandler(authConfig, users, sessions, logger)

	// Auth middleware: valid token plus a live session
	authMiddleware := auth.Middleware(authConfig, sessions)
	protected := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			authMiddleware(http.HandlerFunc(h)).ServeHTTP(w, r)
		}
	}

	// Public routes
	mux.HandleFunc("/api/health", handler.HealthHandler)
	mux.HandleFunc("/api/auth/login", authHandler.Login)

	// Session routes
	mux.HandleFunc("/api/auth/logout", protected(authHandler.Logout))
	mux.HandleFunc("/api/auth/me", protected(authHandler.Me))

	// Dataset routes
	mux.HandleFunc("/api/vips", protected(handler.GetVIPsHandler))
	mux.HandleFunc("/api/fake-posts", protected(handler.GetFakePostsHandler))
	mux.HandleFunc("/api/deepfakes", protected(handler.GetDeepfakesHandler))
	mux.HandleFunc("/api/hacked-tweets", protected(handler.GetHackedTweetsHandler))
	mux.HandleFunc("/api/news-mentions", protected(handler.GetNewsMentionsHandler))

	// Derived views
	mux.HandleFunc("/api/notifications", protected(handler.GetNotificationsHandler))
	mux.HandleFunc("/api/stats", protected(handler.GetStatsHandler))
	mux.HandleFunc("/api/briefing", protected(handler.GetBriefingHandler))
}
