// Package jsonstore serves the dashboard datasets from JSON fixture files.
// It backs local development and tests when no database is configured. A
// missing fixture file yields an empty set rather than an error.
package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cerberus-watch/cerberus/internal/models"
)

// Fixture file names inside the data directory.
const (
	vipFile         = "vip_profiles.json"
	fakePostFile    = "fake_posts.json"
	deepfakeFile    = "deepfake_samples.json"
	hackedTweetFile = "hacked_tweets.json"
	newsMentionFile = "news_mentions.json"
	userFile        = "users.json"
)

// Store reads datasets from a directory of JSON fixtures.
type Store struct {
	dir string
}

// New creates a store over the given data directory.
func New(dir string) *Store {
	return &Store{dir: dir}
}

func loadFile[T any](dir, name string) ([]T, error) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return out, nil
}

func (s *Store) ListVIPs(ctx context.Context) ([]models.VIP, error) {
	return loadFile[models.VIP](s.dir, vipFile)
}

func (s *Store) ListFakePosts(ctx context.Context) ([]models.FakePost, error) {
	return loadFile[models.FakePost](s.dir, fakePostFile)
}

func (s *Store) ListDeepfakes(ctx context.Context) ([]models.Deepfake, error) {
	return loadFile[models.Deepfake](s.dir, deepfakeFile)
}

func (s *Store) ListHackedTweets(ctx context.Context) ([]models.HackedTweet, error) {
	return loadFile[models.HackedTweet](s.dir, hackedTweetFile)
}

func (s *Store) ListNewsMentions(ctx context.Context) ([]models.NewsMention, error) {
	return loadFile[models.NewsMention](s.dir, newsMentionFile)
}

// userRecord re-exposes the password hash, which the API-facing model keeps
// out of JSON.
type userRecord struct {
	models.User
	PasswordHash string `json:"password_hash"`
}

// GetUser looks a user up by username, case-insensitively.
func (s *Store) GetUser(ctx context.Context, username string) (*models.User, error) {
	users, err := loadFile[userRecord](s.dir, userFile)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if strings.EqualFold(users[i].Username, username) {
			user := users[i].User
			user.PasswordHash = users[i].PasswordHash
			return &user, nil
		}
	}
	return nil, nil
}

// ListUsers returns every account with its password hash populated. Used to
// seed an empty database from the fixture set.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	records, err := loadFile[userRecord](s.dir, userFile)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(records))
	for i := range records {
		user := records[i].User
		user.PasswordHash = records[i].PasswordHash
		users = append(users, user)
	}
	return users, nil
}

// ThreatRecords gathers every category into a single record set for the
// notification feed.
func (s *Store) ThreatRecords(ctx context.Context) ([]models.ThreatRecord, error) {
	fakePosts, err := s.ListFakePosts(ctx)
	if err != nil {
		return nil, err
	}
	deepfakes, err := s.ListDeepfakes(ctx)
	if err != nil {
		return nil, err
	}
	hackedTweets, err := s.ListHackedTweets(ctx)
	if err != nil {
		return nil, err
	}
	newsMentions, err := s.ListNewsMentions(ctx)
	if err != nil {
		return nil, err
	}

	return models.CollectThreatRecords(fakePosts, deepfakes, hackedTweets, newsMentions), nil
}
