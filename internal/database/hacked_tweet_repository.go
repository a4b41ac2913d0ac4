package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/cerberus-watch/cerberus/internal/models"
)

type HackedTweetRepository struct {
	db *sql.DB
}

func NewHackedTweetRepository(db *sql.DB) *HackedTweetRepository {
	return &HackedTweetRepository{db: db}
}

func (r *HackedTweetRepository) List(ctx context.Context) ([]models.HackedTweet, error) {
	query := `
		SELECT id, target_vip, platform, fake_account, tweet_content, retweets,
		       likes, replies, risk_level, reason, detected_at, source_url
		FROM hacked_tweets
		ORDER BY detected_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query hacked tweets: %w", err)
	}
	defer rows.Close()

	var tweets []models.HackedTweet
	for rows.Next() {
		var t models.HackedTweet
		if err := rows.Scan(
			&t.ID,
			&t.TargetVIPID,
			&t.Platform,
			&t.FakeAccount,
			&t.TweetContent,
			&t.Retweets,
			&t.Likes,
			&t.Replies,
			&t.RiskLevel,
			&t.Reason,
			&t.DetectedAt,
			&t.SourceURL,
		); err != nil {
			return nil, fmt.Errorf("failed to scan hacked tweet: %w", err)
		}
		tweets = append(tweets, t)
	}

	return tweets, rows.Err()
}

func (r *HackedTweetRepository) Store(ctx context.Context, tweet *models.HackedTweet) error {
	if tweet.ID == "" {
		tweet.ID = uuid.New().String()
	}

	query := `
		INSERT INTO hacked_tweets (id, target_vip, platform, fake_account, tweet_content,
		                           retweets, likes, replies, risk_level, reason,
		                           detected_at, source_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id)
		DO UPDATE SET
			retweets = EXCLUDED.retweets,
			likes = EXCLUDED.likes,
			replies = EXCLUDED.replies,
			risk_level = EXCLUDED.risk_level,
			reason = EXCLUDED.reason
	`

	_, err := r.db.ExecContext(ctx, query,
		tweet.ID,
		tweet.TargetVIPID,
		tweet.Platform,
		tweet.FakeAccount,
		tweet.TweetContent,
		tweet.Retweets,
		tweet.Likes,
		tweet.Replies,
		tweet.RiskLevel,
		tweet.Reason,
		tweet.DetectedAt,
		tweet.SourceURL,
	)
	if err != nil {
		return fmt.Errorf("failed to store hacked tweet: %w", err)
	}

	return nil
}
