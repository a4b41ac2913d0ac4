package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cerberus-watch/cerberus/internal/models"
)

// Store bundles the per-category repositories behind the dataset interface
// consumed by the API layer and the feed poller.
type Store struct {
	db *sql.DB

	VIPs         *VIPRepository
	FakePosts    *FakePostRepository
	Deepfakes    *DeepfakeRepository
	HackedTweets *HackedTweetRepository
	NewsMentions *NewsMentionRepository
	Users        *UserRepository
	Sessions     *SessionRepository
}

// NewStore constructs repositories over a shared connection pool.
func NewStore(db *sql.DB) *Store {
	return &Store{
		db:           db,
		VIPs:         NewVIPRepository(db),
		FakePosts:    NewFakePostRepository(db),
		Deepfakes:    NewDeepfakeRepository(db),
		HackedTweets: NewHackedTweetRepository(db),
		NewsMentions: NewNewsMentionRepository(db),
		Users:        NewUserRepository(db),
		Sessions:     NewSessionRepository(db),
	}
}

// HealthCheck pings the underlying connection pool.
func (s *Store) HealthCheck(ctx context.Context) error {
	return HealthCheck(ctx, s.db)
}

func (s *Store) ListVIPs(ctx context.Context) ([]models.VIP, error) {
	return s.VIPs.List(ctx)
}

func (s *Store) ListFakePosts(ctx context.Context) ([]models.FakePost, error) {
	return s.FakePosts.List(ctx)
}

func (s *Store) ListDeepfakes(ctx context.Context) ([]models.Deepfake, error) {
	return s.Deepfakes.List(ctx)
}

func (s *Store) ListHackedTweets(ctx context.Context) ([]models.HackedTweet, error) {
	return s.HackedTweets.List(ctx)
}

func (s *Store) ListNewsMentions(ctx context.Context) ([]models.NewsMention, error) {
	return s.NewsMentions.List(ctx)
}

func (s *Store) GetUser(ctx context.Context, username string) (*models.User, error) {
	return s.Users.GetByUsername(ctx, username)
}

// ThreatRecords gathers every category into a single record set for the
// notification feed.
func (s *Store) ThreatRecords(ctx context.Context) ([]models.ThreatRecord, error) {
	fakePosts, err := s.FakePosts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch fake posts: %w", err)
	}
	deepfakes, err := s.Deepfakes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch deepfakes: %w", err)
	}
	hackedTweets, err := s.HackedTweets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch hacked tweets: %w", err)
	}
	newsMentions, err := s.NewsMentions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch news mentions: %w", err)
	}

	return models.CollectThreatRecords(fakePosts, deepfakes, hackedTweets, newsMentions), nil
}
