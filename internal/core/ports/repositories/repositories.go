package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ProfileRepo    ProfileRepositoryFacade
	ProjectRepo    ProjectRepositoryFacade
	ExpenseRepo    ExpenseRepositoryFacade
	CategoryRepo   CategoryRepositoryFacade
	TaskRepo       TaskRepositoryFacade
	MediaRepo      MediaRepositoryFacade
	MessageRepo    MessageRepositoryFacade
	OnboardingRepo OnboardingRepositoryFacade
}
