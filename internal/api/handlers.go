package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/cerberus-watch/cerberus/internal/briefing"
	"github.com/cerberus-watch/cerberus/internal/feed"
	"github.com/cerberus-watch/cerberus/internal/models"
	"github.com/cerberus-watch/cerberus/internal/stats"
	"log/slog"
)

// DataStore is the read side of the dataset collaborator. Both the Postgres
// store and the JSON fixture store satisfy it.
type DataStore interface {
	ListVIPs(ctx context.Context) ([]models.VIP, error)
	ListFakePosts(ctx context.Context) ([]models.FakePost, error)
	ListDeepfakes(ctx context.Context) ([]models.Deepfake, error)
	ListHackedTweets(ctx context.Context) ([]models.HackedTweet, error)
	ListNewsMentions(ctx context.Context) ([]models.NewsMention, error)
}

// Handler serves the dashboard dataset endpoints.
type Handler struct {
	store     DataStore
	poller    *feed.Poller
	briefer   briefing.Generator
	logger    *slog.Logger
	startTime time.Time
}

func NewHandler(store DataStore, poller *feed.Poller, briefer briefing.Generator, logger *slog.Logger) *Handler {
	return &Handler{
		store:     store,
		poller:    poller,
		briefer:   briefer,
		logger:    logger,
		startTime: time.Now(),
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// GetVIPsHandler handles GET /api/vips
func (h *Handler) GetVIPsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	vips, err := h.store.ListVIPs(r.Context())
	if err != nil {
		h.logger.Error("failed to list vips", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if vips == nil {
		vips = []models.VIP{}
	}

	writeJSON(w, http.StatusOK, vips, h.logger)
}

// GetFakePostsHandler handles GET /api/fake-posts
func (h *Handler) GetFakePostsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	posts, err := h.store.ListFakePosts(r.Context())
	if err != nil {
		h.logger.Error("failed to list fake posts", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if posts == nil {
		posts = []models.FakePost{}
	}

	writeJSON(w, http.StatusOK, posts, h.logger)
}

// GetDeepfakesHandler handles GET /api/deepfakes
func (h *Handler) GetDeepfakesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	deepfakes, err := h.store.ListDeepfakes(r.Context())
	if err != nil {
		h.logger.Error("failed to list deepfakes", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if deepfakes == nil {
		deepfakes = []models.Deepfake{}
	}

	writeJSON(w, http.StatusOK, deepfakes, h.logger)
}

// GetHackedTweetsHandler handles GET /api/hacked-tweets
func (h *Handler) GetHackedTweetsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	tweets, err := h.store.ListHackedTweets(r.Context())
	if err != nil {
		h.logger.Error("failed to list hacked tweets", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if tweets == nil {
		tweets = []models.HackedTweet{}
	}

	writeJSON(w, http.StatusOK, tweets, h.logger)
}

// GetNewsMentionsHandler handles GET /api/news-mentions
func (h *Handler) GetNewsMentionsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	mentions, err := h.store.ListNewsMentions(r.Context())
	if err != nil {
		h.logger.Error("failed to list news mentions", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if mentions == nil {
		mentions = []models.NewsMention{}
	}

	writeJSON(w, http.StatusOK, mentions, h.logger)
}

// GetNotificationsHandler handles GET /api/notifications. The feed comes
// from the poller's current snapshot; the optional risk query parameter
// filters by severity ("all" or absent passes everything through).
func (h *Handler) GetNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	notifications := feed.Filter(h.poller.Snapshot(), r.URL.Query().Get("risk"))

	writeJSON(w, http.StatusOK, notifications, h.logger)
}

// GetStatsHandler handles GET /api/stats. Statistics are always derived
// locally from the full record set.
func (h *Handler) GetStatsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	summary, err := h.summarize(r.Context())
	if err != nil {
		h.logger.Error("failed to compute stats", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, summary, h.logger)
}

// BriefingResponse is the payload for GET /api/briefing.
type BriefingResponse struct {
	Briefing    string    `json:"briefing"`
	GeneratedAt time.Time `json:"generated_at"`
}

// GetBriefingHandler handles GET /api/briefing, producing an analyst summary
// of the current situation.
func (h *Handler) GetBriefingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	summary, err := h.summarize(r.Context())
	if err != nil {
		h.logger.Error("failed to compute stats for briefing", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	recent := h.poller.Snapshot()
	if len(recent) > 5 {
		recent = recent[:5]
	}

	text, err := h.briefer.Generate(r.Context(), summary, recent)
	if err != nil {
		h.logger.Error("failed to generate briefing", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, BriefingResponse{
		Briefing:    text,
		GeneratedAt: time.Now(),
	}, h.logger)
}

// HealthResponse is the payload for GET /api/health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	UptimeSec int64     `json:"uptime_seconds"`
	Database  string    `json:"database,omitempty"`
}

// healthChecker is satisfied by stores with a backing connection to probe.
// The fixture store has none and reports nothing.
type healthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler handles GET /api/health. The probe stays 200 even when the
// database is unreachable; a degraded status with a stale feed beats a
// restart loop.
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Message:   "Cerberus Watch API is running",
		UptimeSec: int64(time.Since(h.startTime).Seconds()),
	}

	if checker, ok := h.store.(healthChecker); ok {
		if err := checker.HealthCheck(r.Context()); err != nil {
			h.logger.Error("database health check failed", "error", err)
			resp.Status = "degraded"
			resp.Database = "unreachable"
		} else {
			resp.Database = "connected"
		}
	}

	writeJSON(w, http.StatusOK, resp, h.logger)
}

func (h *Handler) summarize(ctx context.Context) (models.Stats, error) {
	fakePosts, err := h.store.ListFakePosts(ctx)
	if err != nil {
		return models.Stats{}, err
	}
	deepfakes, err := h.store.ListDeepfakes(ctx)
	if err != nil {
		return models.Stats{}, err
	}
	hackedTweets, err := h.store.ListHackedTweets(ctx)
	if err != nil {
		return models.Stats{}, err
	}
	newsMentions, err := h.store.ListNewsMentions(ctx)
	if err != nil {
		return models.Stats{}, err
	}

	return stats.Summarize(fakePosts, deepfakes, hackedTweets, newsMentions), nil
}
