package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jengabot/jenga_backend/internal/apperrors"
	"github.com/jengabot/jenga_backend/internal/core/domain"
	portsrepo "github.com/jengabot/jenga_backend/internal/core/ports/repositories"
	portssvc "github.com/jengabot/jenga_backend/internal/core/ports/services"
	"github.com/jengabot/jenga_backend/internal/platform/metrics"
	"github.com/jengabot/jenga_backend/internal/utils"
	"github.com/jengabot/jenga_backend/internal/utils/budgeting"
)

// HelpReply is the fixed bilingual fallback listing example commands for
// every intent. The unknown handler always succeeds with this.
const HelpReply = "🤔 I didn't understand that. Here's what I can do:\n\n" +
	"💸 Log an expense / Okusaasaanya:\n" +
	"  \"spent 50000 on cement\"\n" +
	"  \"naguze amatafaali ku 120000\"\n" +
	"📝 Add a task:\n" +
	"  \"task: inspect foundation\"\n" +
	"💰 Set your budget / Bbajeti:\n" +
	"  \"set budget 5000000\"\n" +
	"📊 Check spending / Ssente zimeka:\n" +
	"  \"how much have I spent?\"\n" +
	"📷 Send a photo of a receipt and I'll file it."

// NoActiveProjectReply directs the owner to the dashboard when no mutation
// target exists. This is the most common failure path and short-circuits
// before any write.
const NoActiveProjectReply = "⚠️ You don't have an active project yet. " +
	"Open the dashboard to create one, then send your expenses here."

const apologyReply = "😓 Sorry, something went wrong on our side. Your message was not lost - please try again in a moment."

// CommandService maps a validated, confident intent to one handler. Handler
// failures never propagate: they become the apology reply, with the cause
// returned separately for the audit trail.
type CommandService struct {
	projectRepo  portsrepo.ProjectRepositoryFacade
	expenseRepo  portsrepo.ExpenseRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
	taskRepo     portsrepo.TaskRepositoryFacade
	mediaRepo    portsrepo.MediaRepositoryFacade
}

var _ portssvc.CommandSvcFacade = (*CommandService)(nil)

// NewCommandService creates a new CommandService.
func NewCommandService(
	projectRepo portsrepo.ProjectRepositoryFacade,
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	categoryRepo portsrepo.CategoryRepositoryFacade,
	taskRepo portsrepo.TaskRepositoryFacade,
	mediaRepo portsrepo.MediaRepositoryFacade,
) *CommandService {
	return &CommandService{
		projectRepo:  projectRepo,
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		taskRepo:     taskRepo,
		mediaRepo:    mediaRepo,
	}
}

// Dispatch routes the intent to its handler and returns the reply text. The
// reply is always usable; a non-nil error reports a swallowed handler
// failure.
func (s *CommandService) Dispatch(ctx context.Context, profileID string, parsed domain.ParsedIntent) (string, error) {
	var reply string
	var err error

	switch parsed.Intent {
	case domain.IntentLogExpense:
		reply, err = s.handleLogExpense(ctx, profileID, parsed)
	case domain.IntentCreateTask:
		reply, err = s.handleCreateTask(ctx, profileID, parsed)
	case domain.IntentSetBudget:
		reply, err = s.handleSetBudget(ctx, profileID, parsed)
	case domain.IntentQueryExpenses:
		reply, err = s.handleQueryExpenses(ctx, profileID)
	case domain.IntentLogImage:
		reply, err = s.handleLogImage(ctx, profileID, parsed)
	default:
		return HelpReply, nil
	}

	if err != nil {
		if errors.Is(err, apperrors.ErrNoActiveProject) {
			return NoActiveProjectReply, nil
		}
		metrics.HandlerErrors.WithLabelValues(string(parsed.Intent)).Inc()
		return apologyReply, err
	}
	return reply, nil
}

// defaultProject resolves the profile's single active project, translating
// absence into the expected no-active-project outcome.
func (s *CommandService) defaultProject(ctx context.Context, profileID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindDefaultProject(ctx, profileID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNoActiveProject
		}
		return nil, fmt.Errorf("failed to resolve default project: %w", err)
	}
	return project, nil
}

func (s *CommandService) handleLogExpense(ctx context.Context, profileID string, parsed domain.ParsedIntent) (string, error) {
	project, err := s.defaultProject(ctx, profileID)
	if err != nil {
		return "", err
	}

	// Best-effort keyword categorization; a lookup failure just leaves the
	// expense uncategorized.
	var categoryID *string
	categoryName := ""
	if category, catErr := s.categoryRepo.FindCategoryByKeyword(ctx, profileID, parsed.Description); catErr == nil && category != nil {
		categoryID = &category.CategoryID
		categoryName = category.Name
	}

	now := time.Now()
	expense := domain.Expense{
		ExpenseID:    uuid.NewString(),
		ProjectID:    project.ProjectID,
		ProfileID:    profileID,
		CategoryID:   categoryID,
		Amount:       parsed.Amount,
		CurrencyCode: parsed.CurrencyCode,
		Description:  parsed.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		return "", fmt.Errorf("failed to save expense: %w", err)
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayTotal, err := s.expenseRepo.SumExpensesSince(ctx, project.ProjectID, startOfDay)
	if err != nil {
		return "", fmt.Errorf("failed to total today's expenses: %w", err)
	}
	spent, err := s.expenseRepo.SumExpenses(ctx, project.ProjectID)
	if err != nil {
		return "", fmt.Errorf("failed to total expenses: %w", err)
	}
	snapshot := budgeting.Compute(project.BudgetAmount, spent)

	var b strings.Builder
	fmt.Fprintf(&b, "✅ Logged %s for %s", utils.FormatMoney(parsed.CurrencyCode, parsed.Amount), parsed.Description)
	if categoryName != "" {
		fmt.Fprintf(&b, " (%s)", categoryName)
	}
	fmt.Fprintf(&b, ".\n📅 Today: %s", utils.FormatMoney(project.CurrencyCode, todayTotal))
	fmt.Fprintf(&b, "\n💰 Budget used: %s%% - %s remaining",
		snapshot.PercentUsed.String(), utils.FormatMoney(project.CurrencyCode, snapshot.Remaining))
	return b.String(), nil
}

func (s *CommandService) handleCreateTask(ctx context.Context, profileID string, parsed domain.ParsedIntent) (string, error) {
	project, err := s.defaultProject(ctx, profileID)
	if err != nil {
		return "", err
	}

	priority := parsed.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	now := time.Now()
	task := domain.Task{
		TaskID:    uuid.NewString(),
		ProjectID: project.ProjectID,
		ProfileID: profileID,
		Title:     parsed.Title,
		Priority:  priority,
		Status:    domain.TaskPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.taskRepo.SaveTask(ctx, task); err != nil {
		return "", fmt.Errorf("failed to save task: %w", err)
	}

	pending, err := s.taskRepo.CountPendingTasks(ctx, profileID)
	if err != nil {
		return "", fmt.Errorf("failed to count pending tasks: %w", err)
	}
	return fmt.Sprintf("📝 Task added: \"%s\" (%s priority). You now have %d pending task(s).",
		task.Title, task.Priority, pending), nil
}

func (s *CommandService) handleSetBudget(ctx context.Context, profileID string, parsed domain.ParsedIntent) (string, error) {
	project, err := s.defaultProject(ctx, profileID)
	if err != nil {
		return "", err
	}

	if err := s.projectRepo.UpdateProjectBudget(ctx, project.ProjectID, parsed.Amount, time.Now()); err != nil {
		return "", fmt.Errorf("failed to update budget: %w", err)
	}

	// The new budget is measured against existing spend; spend is never reset.
	spent, err := s.expenseRepo.SumExpenses(ctx, project.ProjectID)
	if err != nil {
		return "", fmt.Errorf("failed to total expenses: %w", err)
	}
	snapshot := budgeting.Compute(parsed.Amount, spent)

	return fmt.Sprintf("💰 Budget set to %s.\nSpent so far: %s (%s%% used) - %s remaining.",
		utils.FormatMoney(project.CurrencyCode, parsed.Amount),
		utils.FormatMoney(project.CurrencyCode, snapshot.Spent),
		snapshot.PercentUsed.String(),
		utils.FormatMoney(project.CurrencyCode, snapshot.Remaining)), nil
}

func (s *CommandService) handleQueryExpenses(ctx context.Context, profileID string) (string, error) {
	project, err := s.defaultProject(ctx, profileID)
	if err != nil {
		return "", err
	}

	spent, err := s.expenseRepo.SumExpenses(ctx, project.ProjectID)
	if err != nil {
		return "", fmt.Errorf("failed to total expenses: %w", err)
	}
	snapshot := budgeting.Compute(project.BudgetAmount, spent)

	topCategories, err := s.expenseRepo.TopCategorySpend(ctx, project.ProjectID, 3)
	if err != nil {
		return "", fmt.Errorf("failed to aggregate category spend: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 %s\n", project.Name)
	fmt.Fprintf(&b, "Spent: %s of %s (%s%% used)\n",
		utils.FormatMoney(project.CurrencyCode, snapshot.Spent),
		utils.FormatMoney(project.CurrencyCode, project.BudgetAmount),
		snapshot.PercentUsed.String())
	fmt.Fprintf(&b, "Remaining: %s", utils.FormatMoney(project.CurrencyCode, snapshot.Remaining))

	if len(topCategories) > 0 {
		b.WriteString("\n\nTop categories:")
		for _, c := range topCategories {
			fmt.Fprintf(&b, "\n• %s: %s", c.CategoryName, utils.FormatMoney(project.CurrencyCode, c.Total))
		}
	}

	if snapshot.OverBudget() {
		b.WriteString("\n\n🚨 You are over budget!")
	} else if snapshot.NearLimit() {
		b.WriteString("\n\n⚠️ You've used over 80% of your budget.")
	}
	return b.String(), nil
}

func (s *CommandService) handleLogImage(ctx context.Context, profileID string, parsed domain.ParsedIntent) (string, error) {
	project, err := s.defaultProject(ctx, profileID)
	if err != nil {
		return "", err
	}

	now := time.Now()
	media := domain.MediaRecord{
		MediaID:   uuid.NewString(),
		ProjectID: project.ProjectID,
		ProfileID: profileID,
		MediaURL:  parsed.MediaURL,
		Caption:   parsed.Caption,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.mediaRepo.SaveMedia(ctx, media); err != nil {
		return "", fmt.Errorf("failed to save media: %w", err)
	}

	return "📷 Photo saved to your project. If this was a purchase, reply with the amount (e.g. \"spent 50000 on cement\") so I can log it.", nil
}
