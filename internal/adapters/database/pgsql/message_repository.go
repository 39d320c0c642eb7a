package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jengabot/jenga_backend/internal/core/domain"
	portsrepo "github.com/jengabot/jenga_backend/internal/core/ports/repositories"
)

type MessageRepository struct {
	db *pgxpool.Pool
}

func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

var _ portsrepo.MessageRepositoryFacade = (*MessageRepository)(nil)

func (r *MessageRepository) SaveMessage(ctx context.Context, record domain.MessageRecord) error {
	query := `
        INSERT INTO whatsapp_messages (message_id, profile_id, direction, body, media_url, intent,
                                       processed, error_message, provider_sid, created_at, processed_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		record.MessageID,
		record.ProfileID,
		record.Direction,
		record.Body,
		record.MediaURL,
		record.Intent,
		record.Processed,
		record.ErrorMessage,
		record.ProviderSID,
		record.CreatedAt,
		record.ProcessedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save message record: %w", err)
	}
	return nil
}

func (r *MessageRepository) MarkMessageProcessed(ctx context.Context, messageID string, intent domain.IntentType, errorMessage string, processedAt time.Time) error {
	query := `
        UPDATE whatsapp_messages
        SET processed = TRUE, intent = $1, error_message = $2, processed_at = $3
        WHERE message_id = $4;
    `
	_, err := r.db.Exec(ctx, query, intent, errorMessage, processedAt, messageID)
	if err != nil {
		return fmt.Errorf("failed to mark message processed: %w", err)
	}
	return nil
}

func (r *MessageRepository) FindMessages(ctx context.Context, filter portsrepo.MessageFilter) ([]domain.MessageRecord, error) {
	query := `
        SELECT message_id, profile_id, direction, body, media_url, intent,
               processed, error_message, provider_sid, created_at, processed_at
        FROM whatsapp_messages
        WHERE ($1::text IS NULL OR profile_id = $1)
          AND ($2::text IS NULL OR direction = $2)
          AND ($3::boolean IS NULL OR processed = $3)
        ORDER BY created_at DESC
        LIMIT $4 OFFSET $5;
    `
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(ctx, query, filter.ProfileID, filter.Direction, filter.Processed, limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query message records: %w", err)
	}
	defer rows.Close()

	records := []domain.MessageRecord{}
	for rows.Next() {
		var record domain.MessageRecord
		err := rows.Scan(
			&record.MessageID,
			&record.ProfileID,
			&record.Direction,
			&record.Body,
			&record.MediaURL,
			&record.Intent,
			&record.Processed,
			&record.ErrorMessage,
			&record.ProviderSID,
			&record.CreatedAt,
			&record.ProcessedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message record row: %w", err)
		}
		records = append(records, record)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating message record rows: %w", rows.Err())
	}
	return records, nil
}
