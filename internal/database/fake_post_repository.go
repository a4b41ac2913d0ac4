package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/cerberus-watch/cerberus/internal/models"
)

type FakePostRepository struct {
	db *sql.DB
}

func NewFakePostRepository(db *sql.DB) *FakePostRepository {
	return &FakePostRepository{db: db}
}

func (r *FakePostRepository) List(ctx context.Context) ([]models.FakePost, error) {
	query := `
		SELECT id, target_vip, platform, fake_account, post_caption, media_url,
		       likes, comments, shares, risk_level, reason, detected_at, source_url
		FROM fake_posts
		ORDER BY detected_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query fake posts: %w", err)
	}
	defer rows.Close()

	var posts []models.FakePost
	for rows.Next() {
		var p models.FakePost
		if err := rows.Scan(
			&p.ID,
			&p.TargetVIPID,
			&p.Platform,
			&p.FakeAccount,
			&p.PostCaption,
			&p.MediaURL,
			&p.Likes,
			&p.Comments,
			&p.Shares,
			&p.RiskLevel,
			&p.Reason,
			&p.DetectedAt,
			&p.SourceURL,
		); err != nil {
			return nil, fmt.Errorf("failed to scan fake post: %w", err)
		}
		posts = append(posts, p)
	}

	return posts, rows.Err()
}

func (r *FakePostRepository) Store(ctx context.Context, post *models.FakePost) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}

	query := `
		INSERT INTO fake_posts (id, target_vip, platform, fake_account, post_caption,
		                        media_url, likes, comments, shares, risk_level, reason,
		                        detected_at, source_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id)
		DO UPDATE SET
			likes = EXCLUDED.likes,
			comments = EXCLUDED.comments,
			shares = EXCLUDED.shares,
			risk_level = EXCLUDED.risk_level,
			reason = EXCLUDED.reason
	`

	_, err := r.db.ExecContext(ctx, query,
		post.ID,
		post.TargetVIPID,
		post.Platform,
		post.FakeAccount,
		post.PostCaption,
		post.MediaURL,
		post.Likes,
		post.Comments,
		post.Shares,
		post.RiskLevel,
		post.Reason,
		post.DetectedAt,
		post.SourceURL,
	)
	if err != nil {
		return fmt.Errorf("failed to store fake post: %w", err)
	}

	return nil
}
