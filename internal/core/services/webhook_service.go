package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jengabot/jenga_backend/internal/apperrors"
	"github.com/jengabot/jenga_backend/internal/core/domain"
	"github.com/jengabot/jenga_backend/internal/core/intent"
	portsrepo "github.com/jengabot/jenga_backend/internal/core/ports/repositories"
	portssvc "github.com/jengabot/jenga_backend/internal/core/ports/services"
	"github.com/jengabot/jenga_backend/internal/dto"
	"github.com/jengabot/jenga_backend/internal/middleware"
	"github.com/jengabot/jenga_backend/internal/platform/metrics"
)

// seedCategoryNames are created for every auto-provisioned profile so
// keyword auto-categorization has targets from the first expense.
var seedCategoryNames = []string{"Materials", "Labor", "Transport", "Equipment", "Other"}

// WebhookService orchestrates the inbound pipeline: dedup, profile
// resolution, onboarding short-circuit, classification, dispatch, reply and
// audit. Internal failures never escape to the transport layer.
type WebhookService struct {
	profileRepo    portsrepo.ProfileRepositoryFacade
	categoryRepo   portsrepo.CategoryRepositoryFacade
	messageRepo    portsrepo.MessageRepositoryFacade
	onboardingRepo portsrepo.OnboardingRepositoryFacade
	onboardingSvc  portssvc.OnboardingSvcFacade
	commandSvc     portssvc.CommandSvcFacade
	parser         *intent.Parser
	messenger      portssvc.Messenger
	dedup          portssvc.DedupStore
}

var _ portssvc.WebhookSvcFacade = (*WebhookService)(nil)

// NewWebhookService creates a new WebhookService. dedup may be nil, in which
// case retried deliveries are reprocessed (at-least-once).
func NewWebhookService(
	profileRepo portsrepo.ProfileRepositoryFacade,
	categoryRepo portsrepo.CategoryRepositoryFacade,
	messageRepo portsrepo.MessageRepositoryFacade,
	onboardingRepo portsrepo.OnboardingRepositoryFacade,
	onboardingSvc portssvc.OnboardingSvcFacade,
	commandSvc portssvc.CommandSvcFacade,
	parser *intent.Parser,
	messenger portssvc.Messenger,
	dedup portssvc.DedupStore,
) *WebhookService {
	return &WebhookService{
		profileRepo:    profileRepo,
		categoryRepo:   categoryRepo,
		messageRepo:    messageRepo,
		onboardingRepo: onboardingRepo,
		onboardingSvc:  onboardingSvc,
		commandSvc:     commandSvc,
		parser:         parser,
		messenger:      messenger,
		dedup:          dedup,
	}
}

// ProcessInbound runs the full pipeline for one webhook delivery. The
// returned error is for logging only; the transport layer acknowledges the
// provider regardless.
func (s *WebhookService) ProcessInbound(ctx context.Context, req dto.TwilioWebhookRequest) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if suppressed := s.alreadyProcessed(ctx, req.MessageSid); suppressed {
		logger.Info("Duplicate delivery suppressed", slog.String("provider_sid", req.MessageSid))
		metrics.DedupSuppressed.Inc()
		return nil
	}

	profile, isNew, err := s.resolveProfile(ctx, req.PhoneNumber())
	if err != nil {
		// No profile means no audit owner; log the failed inbound with a nil
		// profile reference so the round-trip invariant still holds.
		s.auditOrphanedInbound(ctx, req, err)
		return fmt.Errorf("failed to resolve profile: %w", err)
	}

	inbound := domain.MessageRecord{
		MessageID:   uuid.NewString(),
		ProfileID:   &profile.ProfileID,
		Direction:   domain.DirectionInbound,
		Body:        req.Body,
		MediaURL:    req.MediaURL0,
		ProviderSID: req.MessageSid,
		CreatedAt:   time.Now(),
	}
	if err := s.messageRepo.SaveMessage(ctx, inbound); err != nil {
		return fmt.Errorf("failed to log inbound message: %w", err)
	}

	// Setup conversation overrides normal dispatch until completed.
	state, err := s.onboardingState(ctx, profile.ProfileID)
	if err != nil {
		return s.finish(ctx, req.From, profile, inbound, domain.IntentUnknown, "", err)
	}
	if isNew || state.NeedsOnboarding() {
		reply, obErr := s.handleOnboardingTurn(ctx, profile, state, req.Body, isNew)
		return s.finish(ctx, req.From, profile, inbound, "", reply, obErr)
	}

	parsed := s.parser.Parse(req.Body, req.MediaURL0)
	metrics.InboundMessages.WithLabelValues(string(parsed.Intent)).Inc()

	// Low confidence or missing fields is not an error: it routes to help.
	dispatched := parsed
	if !intent.IsValidIntent(parsed) || !intent.MeetsThreshold(parsed) {
		dispatched.Intent = domain.IntentUnknown
	}

	reply, handlerErr := s.commandSvc.Dispatch(ctx, profile.ProfileID, dispatched)
	return s.finish(ctx, req.From, profile, inbound, parsed.Intent, reply, handlerErr)
}

// finish sends the reply, logs the outbound row and finalizes the inbound
// audit row. Every code path ends here, so every inbound message ends up
// with exactly one processed audit row.
func (s *WebhookService) finish(ctx context.Context, toAddress string, profile *domain.Profile, inbound domain.MessageRecord, classified domain.IntentType, reply string, handlerErr error) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if reply != "" {
		result := s.messenger.SendMessage(ctx, toAddress, reply)
		if !result.Success {
			metrics.OutboundFailures.Inc()
			logger.Warn("Outbound delivery failed", slog.String("error", result.Error))
		}

		now := time.Now()
		outbound := domain.MessageRecord{
			MessageID:    uuid.NewString(),
			ProfileID:    inbound.ProfileID,
			Direction:    domain.DirectionOutbound,
			Body:         reply,
			Intent:       classified,
			Processed:    true,
			ProviderSID:  result.ProviderSID,
			ErrorMessage: result.Error,
			CreatedAt:    now,
			ProcessedAt:  &now,
		}
		if err := s.messageRepo.SaveMessage(ctx, outbound); err != nil {
			logger.Error("Failed to log outbound message", slog.String("error", err.Error()))
		}
	}

	errMsg := ""
	if handlerErr != nil {
		errMsg = handlerErr.Error()
		logger.Error("Pipeline error recorded on audit row", slog.String("error", errMsg))
	}
	if err := s.messageRepo.MarkMessageProcessed(ctx, inbound.MessageID, classified, errMsg, time.Now()); err != nil {
		logger.Error("Failed to mark inbound message processed", slog.String("error", err.Error()))
	}

	if profile != nil {
		logger.Info("Inbound message processed",
			slog.String("profile_id", profile.ProfileID),
			slog.String("intent", string(classified)),
			slog.Bool("had_error", handlerErr != nil))
	}
	return handlerErr
}

// resolveProfile finds the sender, auto-provisioning a fresh profile (with
// seed categories) for unknown numbers.
func (s *WebhookService) resolveProfile(ctx context.Context, phoneNumber string) (*domain.Profile, bool, error) {
	profile, err := s.profileRepo.FindProfileByPhone(ctx, phoneNumber)
	if err == nil {
		return profile, false, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, err
	}

	now := time.Now()
	fresh := domain.Profile{
		ProfileID:   uuid.NewString(),
		PhoneNumber: phoneNumber,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.profileRepo.SaveProfile(ctx, fresh); err != nil {
		return nil, false, fmt.Errorf("failed to auto-provision profile: %w", err)
	}

	categories := make([]domain.Category, len(seedCategoryNames))
	for i, name := range seedCategoryNames {
		categories[i] = domain.Category{
			CategoryID: uuid.NewString(),
			ProfileID:  fresh.ProfileID,
			Name:       name,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
	}
	if err := s.categoryRepo.SaveCategories(ctx, categories); err != nil {
		// The profile is usable without categories; expenses stay uncategorized.
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to seed categories", slog.String("error", err.Error()))
	}
	return &fresh, true, nil
}

func (s *WebhookService) onboardingState(ctx context.Context, profileID string) (*domain.OnboardingState, error) {
	state, err := s.onboardingRepo.FindOnboardingState(ctx, profileID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read onboarding state: %w", err)
	}
	return state, nil
}

func (s *WebhookService) handleOnboardingTurn(ctx context.Context, profile *domain.Profile, state *domain.OnboardingState, body string, isNew bool) (string, error) {
	if isNew || state == nil {
		return s.onboardingSvc.Begin(ctx, profile.ProfileID)
	}
	return s.onboardingSvc.HandleMessage(ctx, profile, state, body)
}

// alreadyProcessed consults the dedup cache. The SID is recorded up front,
// so a failure later in the pipeline will not be retried by the provider.
// Any cache failure degrades to at-least-once processing.
func (s *WebhookService) alreadyProcessed(ctx context.Context, providerSID string) bool {
	if s.dedup == nil || providerSID == "" {
		return false
	}
	first, err := s.dedup.FirstSeen(ctx, providerSID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Dedup cache unavailable", slog.String("error", err.Error()))
		return false
	}
	return !first
}

// auditOrphanedInbound records an inbound message whose sender could not be
// resolved or provisioned.
func (s *WebhookService) auditOrphanedInbound(ctx context.Context, req dto.TwilioWebhookRequest, cause error) {
	now := time.Now()
	record := domain.MessageRecord{
		MessageID:    uuid.NewString(),
		Direction:    domain.DirectionInbound,
		Body:         req.Body,
		MediaURL:     req.MediaURL0,
		ProviderSID:  req.MessageSid,
		Processed:    true,
		ErrorMessage: cause.Error(),
		CreatedAt:    now,
		ProcessedAt:  &now,
	}
	if err := s.messageRepo.SaveMessage(ctx, record); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to log orphaned inbound message", slog.String("error", err.Error()))
	}
}
