package services

import (
	"github.com/jengabot/jenga_backend/internal/core/intent"
	portsrepo "github.com/jengabot/jenga_backend/internal/core/ports/repositories"
	portssvc "github.com/jengabot/jenga_backend/internal/core/ports/services"
)

// NewServiceContainer wires all services from the repository provider and
// the transport-side collaborators.
func NewServiceContainer(
	repos *portsrepo.RepositoryProvider,
	messenger portssvc.Messenger,
	dedup portssvc.DedupStore,
) *portssvc.ServiceContainer {
	parser := intent.NewParser()
	onboardingSvc := NewOnboardingService(repos.OnboardingRepo, repos.ProjectRepo)
	commandSvc := NewCommandService(repos.ProjectRepo, repos.ExpenseRepo, repos.CategoryRepo, repos.TaskRepo, repos.MediaRepo)

	return &portssvc.ServiceContainer{
		Webhook: NewWebhookService(
			repos.ProfileRepo,
			repos.CategoryRepo,
			repos.MessageRepo,
			repos.OnboardingRepo,
			onboardingSvc,
			commandSvc,
			parser,
			messenger,
			dedup,
		),
		Message: NewMessageService(repos.MessageRepo, repos.ProfileRepo),
	}
}
