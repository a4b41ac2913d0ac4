package database

import (
	"context"
	"fmt"

	"github.com/cerberus-watch/cerberus/internal/models"
	"log/slog"
)

// FixtureSource supplies seed datasets for an empty database.
type FixtureSource interface {
	ListVIPs(ctx context.Context) ([]models.VIP, error)
	ListFakePosts(ctx context.Context) ([]models.FakePost, error)
	ListDeepfakes(ctx context.Context) ([]models.Deepfake, error)
	ListHackedTweets(ctx context.Context) ([]models.HackedTweet, error)
	ListNewsMentions(ctx context.Context) ([]models.NewsMention, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// ImportFixtures seeds empty tables from src through the repository writers.
// A table that already holds rows is left untouched, so repeated startups
// never overwrite live data. Users are checked individually by username and
// imported only when absent, which keeps rotated credentials intact.
func (s *Store) ImportFixtures(ctx context.Context, src FixtureSource, logger *slog.Logger) error {
	n, err := importDataset(ctx, s.VIPs.List, src.ListVIPs, s.VIPs.Store)
	if err != nil {
		return fmt.Errorf("import vips: %w", err)
	}
	logImported(logger, "vips", n)

	n, err = importDataset(ctx, s.FakePosts.List, src.ListFakePosts, s.FakePosts.Store)
	if err != nil {
		return fmt.Errorf("import fake posts: %w", err)
	}
	logImported(logger, "fake_posts", n)

	n, err = importDataset(ctx, s.Deepfakes.List, src.ListDeepfakes, s.Deepfakes.Store)
	if err != nil {
		return fmt.Errorf("import deepfakes: %w", err)
	}
	logImported(logger, "deepfakes", n)

	n, err = importDataset(ctx, s.HackedTweets.List, src.ListHackedTweets, s.HackedTweets.Store)
	if err != nil {
		return fmt.Errorf("import hacked tweets: %w", err)
	}
	logImported(logger, "hacked_tweets", n)

	n, err = importDataset(ctx, s.NewsMentions.List, src.ListNewsMentions, s.NewsMentions.Store)
	if err != nil {
		return fmt.Errorf("import news mentions: %w", err)
	}
	logImported(logger, "news_mentions", n)

	users, err := src.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("import users: %w", err)
	}
	n, err = importMissingUsers(ctx, users, s.Users.GetByUsername, s.Users.Store)
	if err != nil {
		return fmt.Errorf("import users: %w", err)
	}
	logImported(logger, "users", n)

	return nil
}

// importDataset copies the fixture set through the writer when the table is
// empty. A non-empty table is skipped wholesale.
func importDataset[T any](
	ctx context.Context,
	existing func(context.Context) ([]T, error),
	fixtures func(context.Context) ([]T, error),
	store func(context.Context, *T) error,
) (int, error) {
	current, err := existing(ctx)
	if err != nil {
		return 0, err
	}
	if len(current) > 0 {
		return 0, nil
	}

	records, err := fixtures(ctx)
	if err != nil {
		return 0, err
	}
	for i := range records {
		if err := store(ctx, &records[i]); err != nil {
			return i, err
		}
	}
	return len(records), nil
}

// importMissingUsers stores only the users whose username is not already
// present. Existing accounts are never updated.
func importMissingUsers(
	ctx context.Context,
	users []models.User,
	get func(context.Context, string) (*models.User, error),
	store func(context.Context, *models.User) error,
) (int, error) {
	imported := 0
	for i := range users {
		existing, err := get(ctx, users[i].Username)
		if err != nil {
			return imported, err
		}
		if existing != nil {
			continue
		}
		if err := store(ctx, &users[i]); err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}

func logImported(logger *slog.Logger, dataset string, count int) {
	if count > 0 {
		logger.Info("imported fixtures", "dataset", dataset, "count", count)
	}
}
