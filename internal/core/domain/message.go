package domain

import "time"

// MessageDirection distinguishes received messages from sent replies.
type MessageDirection string

const (
	DirectionInbound  MessageDirection = "inbound"
	DirectionOutbound MessageDirection = "outbound"
)

// MessageRecord is the durable audit entry written once per inbound message
// and once per outbound reply. After Processed is set the row is never
// mutated again except to attach ErrorMessage.
type MessageRecord struct {
	MessageID    string           `json:"messageID"`
	ProfileID    *string          `json:"profileID,omitempty"` // nil before auto-provisioning resolves
	Direction    MessageDirection `json:"direction"`
	Body         string           `json:"body"`
	MediaURL     string           `json:"mediaURL,omitempty"`
	Intent       IntentType       `json:"intent,omitempty"`
	Processed    bool             `json:"processed"`
	ErrorMessage string           `json:"errorMessage,omitempty"`
	ProviderSID  string           `json:"providerSID,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	ProcessedAt  *time.Time       `json:"processedAt,omitempty"`
}
