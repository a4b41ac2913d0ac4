package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/cerberus-watch/cerberus/internal/models"
)

type DeepfakeRepository struct {
	db *sql.DB
}

func NewDeepfakeRepository(db *sql.DB) *DeepfakeRepository {
	return &DeepfakeRepository{db: db}
}

func (r *DeepfakeRepository) List(ctx context.Context) ([]models.Deepfake, error) {
	query := `
		SELECT id, target_vip, platform, media_type, fake_channel, duration,
		       description, media_url, views, likes, dislikes, risk_level,
		       reason, detected_at, source_url
		FROM deepfakes
		ORDER BY detected_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query deepfakes: %w", err)
	}
	defer rows.Close()

	var deepfakes []models.Deepfake
	for rows.Next() {
		var d models.Deepfake
		if err := rows.Scan(
			&d.ID,
			&d.TargetVIPID,
			&d.Platform,
			&d.MediaType,
			&d.FakeChannel,
			&d.Duration,
			&d.Description,
			&d.MediaURL,
			&d.Views,
			&d.Likes,
			&d.Dislikes,
			&d.RiskLevel,
			&d.Reason,
			&d.DetectedAt,
			&d.SourceURL,
		); err != nil {
			return nil, fmt.Errorf("failed to scan deepfake: %w", err)
		}
		deepfakes = append(deepfakes, d)
	}

	return deepfakes, rows.Err()
}

func (r *DeepfakeRepository) Store(ctx context.Context, deepfake *models.Deepfake) error {
	if deepfake.ID == "" {
		deepfake.ID = uuid.New().String()
	}

	query := `
		INSERT INTO deepfakes (id, target_vip, platform, media_type, fake_channel,
		                       duration, description, media_url, views, likes, dislikes,
		                       risk_level, reason, detected_at, source_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (id)
		DO UPDATE SET
			views = EXCLUDED.views,
			likes = EXCLUDED.likes,
			dislikes = EXCLUDED.dislikes,
			risk_level = EXCLUDED.risk_level,
			reason = EXCLUDED.reason
	`

	_, err := r.db.ExecContext(ctx, query,
		deepfake.ID,
		deepfake.TargetVIPID,
		deepfake.Platform,
		deepfake.MediaType,
		deepfake.FakeChannel,
		deepfake.Duration,
		deepfake.Description,
		deepfake.MediaURL,
		deepfake.Views,
		deepfake.Likes,
		deepfake.Dislikes,
		deepfake.RiskLevel,
		deepfake.Reason,
		deepfake.DetectedAt,
		deepfake.SourceURL,
	)
	if err != nil {
		return fmt.Errorf("failed to store deepfake: %w", err)
	}

	return nil
}
