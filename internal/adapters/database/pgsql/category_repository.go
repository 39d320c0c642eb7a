package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jengabot/jenga_backend/internal/core/domain"
	portsrepo "github.com/jengabot/jenga_backend/internal/core/ports/repositories"
)

// categoryKeywords is the fixed keyword table for auto-assignment. Matching
// is a case-insensitive substring check; table order decides ties, so the
// first entry whose keyword appears in the text wins.
var categoryKeywords = []struct {
	name     string
	keywords []string
}{
	{"Materials", []string{"cement", "sand", "brick", "timber", "steel", "paint", "nails", "tiles", "aggregate"}},
	{"Labor", []string{"wages", "worker", "mason", "labour", "labor", "porter", "fundi"}},
	{"Transport", []string{"fuel", "transport", "delivery", "truck", "boda"}},
	{"Equipment", []string{"hire", "rental", "mixer", "scaffolding", "generator"}},
}

type CategoryRepository struct {
	db *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{db: db}
}

var _ portsrepo.CategoryRepositoryFacade = (*CategoryRepository)(nil)

func (r *CategoryRepository) SaveCategories(ctx context.Context, categories []domain.Category) error {
	if len(categories) == 0 {
		return nil
	}
	query := `
        INSERT INTO categories (category_id, profile_id, name, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (profile_id, name) DO NOTHING;
    `
	batch := &pgx.Batch{}
	for _, category := range categories {
		batch.Queue(query,
			category.CategoryID,
			category.ProfileID,
			category.Name,
			category.CreatedAt,
			category.LastUpdatedAt,
		)
	}
	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range categories {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to save categories batch: %w", err)
		}
	}
	return nil
}

// FindCategoryByKeyword matches the message text against the fixed keyword
// table and loads the winning category. The table is fixed; category rows
// only tell us which seed categories the profile has.
func (r *CategoryRepository) FindCategoryByKeyword(ctx context.Context, profileID string, text string) (*domain.Category, error) {
	name := matchCategoryName(text)
	if name == "" {
		return nil, nil
	}

	query := `
        SELECT category_id, profile_id, name, created_at, last_updated_at
        FROM categories
        WHERE profile_id = $1 AND name = $2;
    `
	var category domain.Category
	err := r.db.QueryRow(ctx, query, profileID, name).Scan(
		&category.CategoryID,
		&category.ProfileID,
		&category.Name,
		&category.CreatedAt,
		&category.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find category %q: %w", name, err)
	}
	return &category, nil
}

func matchCategoryName(text string) string {
	lowered := strings.ToLower(text)
	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lowered, keyword) {
				return entry.name
			}
		}
	}
	return ""
}
