package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jengabot/jenga_backend/internal/apperrors"
	"github.com/jengabot/jenga_backend/internal/core/domain"
	portsrepo "github.com/jengabot/jenga_backend/internal/core/ports/repositories"
)

type OnboardingRepository struct {
	db *pgxpool.Pool
}

func NewOnboardingRepository(db *pgxpool.Pool) *OnboardingRepository {
	return &OnboardingRepository{db: db}
}

var _ portsrepo.OnboardingRepositoryFacade = (*OnboardingRepository)(nil)

// SaveOnboardingState upserts the single state row per profile. Data is a
// jsonb column so answers collected so far survive step transitions.
func (r *OnboardingRepository) SaveOnboardingState(ctx context.Context, state domain.OnboardingState) error {
	data, err := json.Marshal(state.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal onboarding data: %w", err)
	}
	query := `
        INSERT INTO onboarding_states (profile_id, step, data, completed_at, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (profile_id) DO UPDATE
        SET step = EXCLUDED.step,
            data = EXCLUDED.data,
            completed_at = EXCLUDED.completed_at,
            last_updated_at = EXCLUDED.last_updated_at;
    `
	_, err = r.db.Exec(ctx, query,
		state.ProfileID,
		state.Step,
		data,
		state.CompletedAt,
		state.CreatedAt,
		state.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save onboarding state: %w", err)
	}
	return nil
}

func (r *OnboardingRepository) FindOnboardingState(ctx context.Context, profileID string) (*domain.OnboardingState, error) {
	query := `
        SELECT profile_id, step, data, completed_at, created_at, last_updated_at
        FROM onboarding_states
        WHERE profile_id = $1;
    `
	var state domain.OnboardingState
	var data []byte
	err := r.db.QueryRow(ctx, query, profileID).Scan(
		&state.ProfileID,
		&state.Step,
		&data,
		&state.CompletedAt,
		&state.CreatedAt,
		&state.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find onboarding state: %w", err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &state.Data); err != nil {
			return nil, fmt.Errorf("failed to unmarshal onboarding data: %w", err)
		}
	}
	return &state, nil
}
