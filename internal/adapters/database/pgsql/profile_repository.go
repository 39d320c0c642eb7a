package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jengabot/jenga_backend/internal/apperrors"
	"github.com/jengabot/jenga_backend/internal/core/domain"
	portsrepo "github.com/jengabot/jenga_backend/internal/core/ports/repositories"
)

type ProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

var _ portsrepo.ProfileRepositoryFacade = (*ProfileRepository)(nil)

func (r *ProfileRepository) SaveProfile(ctx context.Context, profile domain.Profile) error {
	query := `
        INSERT INTO profiles (profile_id, phone_number, name, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (phone_number) DO NOTHING;
    `
	_, err := r.db.Exec(ctx, query,
		profile.ProfileID,
		profile.PhoneNumber,
		profile.Name,
		profile.CreatedAt,
		profile.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) FindProfileByPhone(ctx context.Context, phoneNumber string) (*domain.Profile, error) {
	query := `
        SELECT profile_id, phone_number, name, created_at, last_updated_at
        FROM profiles
        WHERE phone_number = $1;
    `
	return r.scanProfile(r.db.QueryRow(ctx, query, phoneNumber))
}

func (r *ProfileRepository) FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	query := `
        SELECT profile_id, phone_number, name, created_at, last_updated_at
        FROM profiles
        WHERE profile_id = $1;
    `
	return r.scanProfile(r.db.QueryRow(ctx, query, profileID))
}

func (r *ProfileRepository) scanProfile(row pgx.Row) (*domain.Profile, error) {
	var profile domain.Profile
	err := row.Scan(
		&profile.ProfileID,
		&profile.PhoneNumber,
		&profile.Name,
		&profile.CreatedAt,
		&profile.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return &profile, nil
}
