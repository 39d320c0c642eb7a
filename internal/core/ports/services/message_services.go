package services

import (
	"context"

	"github.com/jengabot/jenga_backend/internal/core/domain"
	"github.com/jengabot/jenga_backend/internal/dto"
)

// MessageSvcFacade exposes the audit message log to the dashboard.
type MessageSvcFacade interface {
	ListMessages(ctx context.Context, params dto.ListMessagesParams) ([]domain.MessageRecord, error)
}
