package dto

import (
	"time"

	"github.com/jengabot/jenga_backend/internal/core/domain"
)

// ListMessagesParams defines query parameters for the audit message listing.
type ListMessagesParams struct {
	ProfileID string `form:"profileID"`
	Direction string `form:"direction" binding:"omitempty,oneof=inbound outbound"`
	Processed *bool  `form:"processed"`
	Limit     int    `form:"limit,default=50"`
	Offset    int    `form:"offset,default=0"`
}

// MessageResponse is one audit row as exposed to the dashboard.
type MessageResponse struct {
	MessageID    string     `json:"messageID"`
	ProfileID    *string    `json:"profileID,omitempty"`
	Direction    string     `json:"direction"`
	Body         string     `json:"body"`
	MediaURL     string     `json:"mediaURL,omitempty"`
	Intent       string     `json:"intent,omitempty"`
	Processed    bool       `json:"processed"`
	ErrorMessage string     `json:"errorMessage,omitempty"`
	ProviderSID  string     `json:"providerSID,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	ProcessedAt  *time.Time `json:"processedAt,omitempty"`
}

// ListMessagesResponse wraps the list of audit rows.
type ListMessagesResponse struct {
	Messages []MessageResponse `json:"messages"`
}

// ToMessageResponse converts a domain.MessageRecord to its API shape.
func ToMessageResponse(record *domain.MessageRecord) MessageResponse {
	return MessageResponse{
		MessageID:    record.MessageID,
		ProfileID:    record.ProfileID,
		Direction:    string(record.Direction),
		Body:         record.Body,
		MediaURL:     record.MediaURL,
		Intent:       string(record.Intent),
		Processed:    record.Processed,
		ErrorMessage: record.ErrorMessage,
		ProviderSID:  record.ProviderSID,
		CreatedAt:    record.CreatedAt,
		ProcessedAt:  record.ProcessedAt,
	}
}

// ToListMessagesResponse converts a slice of domain records to the list DTO.
func ToListMessagesResponse(records []domain.MessageRecord) ListMessagesResponse {
	responses := make([]MessageResponse, len(records))
	for i := range records {
		responses[i] = ToMessageResponse(&records[i])
	}
	return ListMessagesResponse{Messages: responses}
}
