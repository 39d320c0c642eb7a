package services

import (
	"context"

	"github.com/jengabot/jenga_backend/internal/core/domain"
)

// CommandSvcFacade dispatches a validated, confident intent to its handler
// and returns the reply text. The reply is always usable; a non-nil error
// reports a swallowed handler failure for the audit trail.
type CommandSvcFacade interface {
	Dispatch(ctx context.Context, profileID string, parsed domain.ParsedIntent) (string, error)
}
