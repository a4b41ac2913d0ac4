package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/cerberus-watch/cerberus/internal/models"
)

type VIPRepository struct {
	db *sql.DB
}

func NewVIPRepository(db *sql.DB) *VIPRepository {
	return &VIPRepository{db: db}
}

func (r *VIPRepository) List(ctx context.Context) ([]models.VIP, error) {
	query := `
		SELECT id, name, category, instagram, twitter, followers,
		       profile_picture, risk_level, aliases
		FROM vips
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query vips: %w", err)
	}
	defer rows.Close()

	var vips []models.VIP
	for rows.Next() {
		var vip models.VIP
		if err := rows.Scan(
			&vip.ID,
			&vip.Name,
			&vip.Category,
			&vip.Instagram,
			&vip.Twitter,
			&vip.Followers,
			&vip.ProfilePicture,
			&vip.RiskLevel,
			pq.Array(&vip.Aliases),
		); err != nil {
			return nil, fmt.Errorf("failed to scan vip: %w", err)
		}
		vips = append(vips, vip)
	}

	return vips, rows.Err()
}

func (r *VIPRepository) Store(ctx context.Context, vip *models.VIP) error {
	if vip.ID == "" {
		vip.ID = uuid.New().String()
	}

	query := `
		INSERT INTO vips (id, name, category, instagram, twitter, followers,
		                  profile_picture, risk_level, aliases)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id)
		DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			instagram = EXCLUDED.instagram,
			twitter = EXCLUDED.twitter,
			followers = EXCLUDED.followers,
			profile_picture = EXCLUDED.profile_picture,
			risk_level = EXCLUDED.risk_level,
			aliases = EXCLUDED.aliases
	`

	_, err := r.db.ExecContext(ctx, query,
		vip.ID,
		vip.Name,
		vip.Category,
		vip.Instagram,
		vip.Twitter,
		vip.Followers,
		vip.ProfilePicture,
		vip.RiskLevel,
		pq.Array(vip.Aliases),
	)
	if err != nil {
		return fmt.Errorf("failed to store vip: %w", err)
	}

	return nil
}
