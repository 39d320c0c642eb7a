package services

import (
	"context"

	"github.com/jengabot/jenga_backend/internal/dto"
)

// WebhookSvcFacade is the inbound message processing pipeline. ProcessInbound
// runs the full sequence (dedup, profile resolution, onboarding, intent
// classification, dispatch, reply, audit) and never lets internal failures
// escape to the transport layer; the returned error is for logging only.
type WebhookSvcFacade interface {
	ProcessInbound(ctx context.Context, req dto.TwilioWebhookRequest) error
}
