package services

import "context"

// DeliveryResult reports the outcome of one outbound send attempt.
type DeliveryResult struct {
	Success     bool
	ProviderSID string
	Error       string
}

// Messenger delivers outbound WhatsApp messages through the transport
// provider. A failed send is recorded but never retried and never fails the
// webhook response.
type Messenger interface {
	SendMessage(ctx context.Context, toAddress string, body string) DeliveryResult
}
