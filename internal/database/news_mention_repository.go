package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/cerberus-watch/cerberus/internal/models"
)

type NewsMentionRepository struct {
	db *sql.DB
}

func NewNewsMentionRepository(db *sql.DB) *NewsMentionRepository {
	return &NewsMentionRepository{db: db}
}

func (r *NewsMentionRepository) List(ctx context.Context) ([]models.NewsMention, error) {
	query := `
		SELECT id, target_vip, headline, content_snippet, source, published_at,
		       risk_level, reason, detected_at, source_url
		FROM news_mentions
		ORDER BY detected_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query news mentions: %w", err)
	}
	defer rows.Close()

	var mentions []models.NewsMention
	for rows.Next() {
		var m models.NewsMention
		if err := rows.Scan(
			&m.ID,
			&m.TargetVIPID,
			&m.Headline,
			&m.ContentSnippet,
			&m.Source,
			&m.PublishedAt,
			&m.RiskLevel,
			&m.Reason,
			&m.DetectedAt,
			&m.SourceURL,
		); err != nil {
			return nil, fmt.Errorf("failed to scan news mention: %w", err)
		}
		mentions = append(mentions, m)
	}

	return mentions, rows.Err()
}

func (r *NewsMentionRepository) Store(ctx context.Context, mention *models.NewsMention) error {
	if mention.ID == "" {
		mention.ID = uuid.New().String()
	}

	query := `
		INSERT INTO news_mentions (id, target_vip, headline, content_snippet, source,
		                           published_at, risk_level, reason, detected_at, source_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id)
		DO UPDATE SET
			risk_level = EXCLUDED.risk_level,
			reason = EXCLUDED.reason
	`

	_, err := r.db.ExecContext(ctx, query,
		mention.ID,
		mention.TargetVIPID,
		mention.Headline,
		mention.ContentSnippet,
		mention.Source,
		mention.PublishedAt,
		mention.RiskLevel,
		mention.Reason,
		mention.DetectedAt,
		mention.SourceURL,
	)
	if err != nil {
		return fmt.Errorf("failed to store news mention: %w", err)
	}

	return nil
}
