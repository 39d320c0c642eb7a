package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/jengabot/jenga_backend/internal/core/domain"
	portsrepo "github.com/jengabot/jenga_backend/internal/core/ports/repositories"
	portssvc "github.com/jengabot/jenga_backend/internal/core/ports/services"
)

// --- Repository mocks (based on service usage) ---

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) SaveProfile(ctx context.Context, profile domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) FindProfileByPhone(ctx context.Context, phoneNumber string) (*domain.Profile, error) {
	args := m.Called(ctx, phoneNumber)
	var profile *domain.Profile
	if args.Get(0) != nil {
		profile = args.Get(0).(*domain.Profile)
	}
	return profile, args.Error(1)
}

func (m *MockProfileRepository) FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	args := m.Called(ctx, profileID)
	var profile *domain.Profile
	if args.Get(0) != nil {
		profile = args.Get(0).(*domain.Profile)
	}
	return profile, args.Error(1)
}

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) FindDefaultProject(ctx context.Context, profileID string) (*domain.Project, error) {
	args := m.Called(ctx, profileID)
	var project *domain.Project
	if args.Get(0) != nil {
		project = args.Get(0).(*domain.Project)
	}
	return project, args.Error(1)
}

func (m *MockProjectRepository) UpdateProjectBudget(ctx context.Context, projectID string, budget decimal.Decimal, updatedAt time.Time) error {
	args := m.Called(ctx, projectID, budget, updatedAt)
	return args.Error(0)
}

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) SumExpenses(ctx context.Context, projectID string) (decimal.Decimal, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockExpenseRepository) SumExpensesSince(ctx context.Context, projectID string, since time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, projectID, since)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockExpenseRepository) TopCategorySpend(ctx context.Context, projectID string, limit int) ([]domain.CategorySpend, error) {
	args := m.Called(ctx, projectID, limit)
	var spends []domain.CategorySpend
	if args.Get(0) != nil {
		spends = args.Get(0).([]domain.CategorySpend)
	}
	return spends, args.Error(1)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByKeyword(ctx context.Context, profileID string, text string) (*domain.Category, error) {
	args := m.Called(ctx, profileID, text)
	var category *domain.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*domain.Category)
	}
	return category, args.Error(1)
}

func (m *MockCategoryRepository) SaveCategories(ctx context.Context, categories []domain.Category) error {
	args := m.Called(ctx, categories)
	return args.Error(0)
}

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) SaveTask(ctx context.Context, task domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) CountPendingTasks(ctx context.Context, profileID string) (int, error) {
	args := m.Called(ctx, profileID)
	return args.Int(0), args.Error(1)
}

type MockMediaRepository struct {
	mock.Mock
}

func (m *MockMediaRepository) SaveMedia(ctx context.Context, media domain.MediaRecord) error {
	args := m.Called(ctx, media)
	return args.Error(0)
}

type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) SaveMessage(ctx context.Context, record domain.MessageRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockMessageRepository) MarkMessageProcessed(ctx context.Context, messageID string, intent domain.IntentType, errorMessage string, processedAt time.Time) error {
	args := m.Called(ctx, messageID, intent, errorMessage, processedAt)
	return args.Error(0)
}

func (m *MockMessageRepository) FindMessages(ctx context.Context, filter portsrepo.MessageFilter) ([]domain.MessageRecord, error) {
	args := m.Called(ctx, filter)
	var records []domain.MessageRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.MessageRecord)
	}
	return records, args.Error(1)
}

type MockOnboardingRepository struct {
	mock.Mock
}

func (m *MockOnboardingRepository) FindOnboardingState(ctx context.Context, profileID string) (*domain.OnboardingState, error) {
	args := m.Called(ctx, profileID)
	var state *domain.OnboardingState
	if args.Get(0) != nil {
		state = args.Get(0).(*domain.OnboardingState)
	}
	return state, args.Error(1)
}

func (m *MockOnboardingRepository) SaveOnboardingState(ctx context.Context, state domain.OnboardingState) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

// --- Service mocks ---

type MockOnboardingSvc struct {
	mock.Mock
}

func (m *MockOnboardingSvc) Begin(ctx context.Context, profileID string) (string, error) {
	args := m.Called(ctx, profileID)
	return args.String(0), args.Error(1)
}

func (m *MockOnboardingSvc) HandleMessage(ctx context.Context, profile *domain.Profile, state *domain.OnboardingState, body string) (string, error) {
	args := m.Called(ctx, profile, state, body)
	return args.String(0), args.Error(1)
}

type MockCommandSvc struct {
	mock.Mock
}

func (m *MockCommandSvc) Dispatch(ctx context.Context, profileID string, parsed domain.ParsedIntent) (string, error) {
	args := m.Called(ctx, profileID, parsed)
	return args.String(0), args.Error(1)
}

type MockMessenger struct {
	mock.Mock
}

func (m *MockMessenger) SendMessage(ctx context.Context, toAddress string, body string) portssvc.DeliveryResult {
	args := m.Called(ctx, toAddress, body)
	return args.Get(0).(portssvc.DeliveryResult)
}

type MockDedupStore struct {
	mock.Mock
}

func (m *MockDedupStore) FirstSeen(ctx context.Context, providerSID string) (bool, error) {
	args := m.Called(ctx, providerSID)
	return args.Bool(0), args.Error(1)
}
