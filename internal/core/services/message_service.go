package services

import (
	"context"
	"fmt"

	"github.com/jengabot/jenga_backend/internal/core/domain"
	portsrepo "github.com/jengabot/jenga_backend/internal/core/ports/repositories"
	portssvc "github.com/jengabot/jenga_backend/internal/core/ports/services"
	"github.com/jengabot/jenga_backend/internal/dto"
)

// MessageService exposes the persisted audit log to the dashboard. This is
// the externally queryable audit store; there is no in-memory mirror.
type MessageService struct {
	messageRepo portsrepo.MessageRepositoryFacade
	profileRepo portsrepo.ProfileReader
}

var _ portssvc.MessageSvcFacade = (*MessageService)(nil)

// NewMessageService creates a new MessageService.
func NewMessageService(messageRepo portsrepo.MessageRepositoryFacade, profileRepo portsrepo.ProfileReader) *MessageService {
	return &MessageService{messageRepo: messageRepo, profileRepo: profileRepo}
}

// ListMessages retrieves audit rows matching the query, newest first. A
// profileID filter is resolved first so an unknown profile surfaces as
// ErrNotFound instead of an empty page.
func (s *MessageService) ListMessages(ctx context.Context, params dto.ListMessagesParams) ([]domain.MessageRecord, error) {
	filter := portsrepo.MessageFilter{
		Limit:     params.Limit,
		Offset:    params.Offset,
		Processed: params.Processed,
	}
	if params.ProfileID != "" {
		if _, err := s.profileRepo.FindProfileByID(ctx, params.ProfileID); err != nil {
			return nil, fmt.Errorf("failed to resolve profile %s: %w", params.ProfileID, err)
		}
		filter.ProfileID = &params.ProfileID
	}
	if params.Direction != "" {
		direction := domain.MessageDirection(params.Direction)
		filter.Direction = &direction
	}

	records, err := s.messageRepo.FindMessages(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return records, nil
}
