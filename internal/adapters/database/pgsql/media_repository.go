package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jengabot/jenga_backend/internal/core/domain"
	portsrepo "github.com/jengabot/jenga_backend/internal/core/ports/repositories"
)

type MediaRepository struct {
	db *pgxpool.Pool
}

func NewMediaRepository(db *pgxpool.Pool) *MediaRepository {
	return &MediaRepository{db: db}
}

var _ portsrepo.MediaRepositoryFacade = (*MediaRepository)(nil)

func (r *MediaRepository) SaveMedia(ctx context.Context, media domain.MediaRecord) error {
	query := `
        INSERT INTO media (media_id, project_id, profile_id, media_url, content_type, caption, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		media.MediaID,
		media.ProjectID,
		media.ProfileID,
		media.MediaURL,
		media.ContentType,
		media.Caption,
		media.CreatedAt,
		media.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save media record: %w", err)
	}
	return nil
}
