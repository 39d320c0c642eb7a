package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/jengabot/jenga_backend/internal/core/domain"
	portssvc "github.com/jengabot/jenga_backend/internal/core/ports/services"
	"github.com/jengabot/jenga_backend/internal/core/services"
)

type OnboardingServiceTestSuite struct {
	suite.Suite
	mockOnboardingRepo *MockOnboardingRepository
	mockProjectRepo    *MockProjectRepository
	service            portssvc.OnboardingSvcFacade

	profile *domain.Profile
}

func (suite *OnboardingServiceTestSuite) SetupTest() {
	suite.mockOnboardingRepo = new(MockOnboardingRepository)
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.service = services.NewOnboardingService(suite.mockOnboardingRepo, suite.mockProjectRepo)

	suite.profile = &domain.Profile{
		ProfileID:   uuid.NewString(),
		PhoneNumber: "+256700000001",
	}
}

func (suite *OnboardingServiceTestSuite) TestBegin_CreatesInitialState() {
	ctx := context.Background()

	suite.mockOnboardingRepo.On("SaveOnboardingState", ctx, mock.MatchedBy(func(state domain.OnboardingState) bool {
		return state.ProfileID == suite.profile.ProfileID &&
			state.Step == domain.StepProjectType &&
			state.CompletedAt == nil
	})).Return(nil).Once()

	reply, err := suite.service.Begin(ctx, suite.profile.ProfileID)

	suite.Require().NoError(err)
	suite.Contains(reply, "Welcome to Jenga")
	suite.Contains(reply, "1. Residential house")
	suite.Contains(reply, "2. Commercial building")
	suite.Contains(reply, "3. Renovation")
	suite.mockOnboardingRepo.AssertExpectations(suite.T())
}

func (suite *OnboardingServiceTestSuite) TestHandleMessage_ProjectTypeByNumber() {
	ctx := context.Background()
	state := &domain.OnboardingState{
		ProfileID: suite.profile.ProfileID,
		Step:      domain.StepProjectType,
	}

	suite.mockOnboardingRepo.On("SaveOnboardingState", ctx, mock.MatchedBy(func(s domain.OnboardingState) bool {
		return s.Step == domain.StepLocation && s.Data.ProjectType == "Residential house"
	})).Return(nil).Once()

	reply, err := suite.service.HandleMessage(ctx, suite.profile, state, "1")

	suite.Require().NoError(err)
	suite.Contains(reply, "Where is the project located")
	suite.mockOnboardingRepo.AssertExpectations(suite.T())
}

func (suite *OnboardingServiceTestSuite) TestHandleMessage_UnrecognizedRepromptsWithoutSave() {
	ctx := context.Background()
	state := &domain.OnboardingState{
		ProfileID: suite.profile.ProfileID,
		Step:      domain.StepProjectType,
	}

	reply, err := suite.service.HandleMessage(ctx, suite.profile, state, "a castle")

	suite.Require().NoError(err)
	suite.Contains(reply, "What type of project")
	suite.mockOnboardingRepo.AssertNotCalled(suite.T(), "SaveOnboardingState", mock.Anything, mock.Anything)
}

func (suite *OnboardingServiceTestSuite) TestHandleMessage_BudgetRejectsNonNumeric() {
	ctx := context.Background()
	state := &domain.OnboardingState{
		ProfileID: suite.profile.ProfileID,
		Step:      domain.StepBudget,
		Data: domain.OnboardingData{
			ProjectType: "Renovation",
			Location:    "Ntinda",
			StartDate:   "today",
		},
	}

	reply, err := suite.service.HandleMessage(ctx, suite.profile, state, "a lot of money")

	suite.Require().NoError(err)
	suite.Contains(reply, "total project budget")
	suite.mockOnboardingRepo.AssertNotCalled(suite.T(), "SaveOnboardingState", mock.Anything, mock.Anything)
}

func (suite *OnboardingServiceTestSuite) TestHandleMessage_BudgetAdvancesToConfirmation() {
	ctx := context.Background()
	state := &domain.OnboardingState{
		ProfileID: suite.profile.ProfileID,
		Step:      domain.StepBudget,
		Data: domain.OnboardingData{
			ProjectType: "Renovation",
			Location:    "Ntinda",
			StartDate:   "today",
		},
	}

	suite.mockOnboardingRepo.On("SaveOnboardingState", ctx, mock.MatchedBy(func(s domain.OnboardingState) bool {
		return s.Step == domain.StepConfirmation && s.Data.Budget == "50000000"
	})).Return(nil).Once()

	reply, err := suite.service.HandleMessage(ctx, suite.profile, state, "50,000,000")

	suite.Require().NoError(err)
	suite.Contains(reply, "Renovation")
	suite.Contains(reply, "Ntinda")
	suite.Contains(reply, "confirm")
	suite.mockOnboardingRepo.AssertExpectations(suite.T())
}

func (suite *OnboardingServiceTestSuite) TestHandleMessage_ConfirmCreatesProjectAndCompletes() {
	ctx := context.Background()
	state := &domain.OnboardingState{
		ProfileID: suite.profile.ProfileID,
		Step:      domain.StepConfirmation,
		Data: domain.OnboardingData{
			ProjectType: "Residential house",
			Location:    "Kololo",
			StartDate:   "2026-03-01",
			Budget:      "50000000",
		},
	}

	suite.mockProjectRepo.On("SaveProject", ctx, mock.MatchedBy(func(project domain.Project) bool {
		return project.ProfileID == suite.profile.ProfileID &&
			project.ProjectType == "Residential house" &&
			project.Location == "Kololo" &&
			project.BudgetAmount.Equal(decimal.NewFromInt(50000000)) &&
			project.CurrencyCode == "UGX" &&
			project.Status == domain.ProjectActive &&
			project.StartDate != nil
	})).Return(nil).Once()
	suite.mockOnboardingRepo.On("SaveOnboardingState", ctx, mock.MatchedBy(func(s domain.OnboardingState) bool {
		return s.Step == domain.StepCompleted && s.CompletedAt != nil
	})).Return(nil).Once()

	reply, err := suite.service.HandleMessage(ctx, suite.profile, state, "confirm")

	suite.Require().NoError(err)
	suite.Contains(reply, "ready")
	suite.mockProjectRepo.AssertExpectations(suite.T())
	suite.mockOnboardingRepo.AssertExpectations(suite.T())
}

func (suite *OnboardingServiceTestSuite) TestHandleMessage_LaterCompletesWithoutProject() {
	ctx := context.Background()
	state := &domain.OnboardingState{
		ProfileID: suite.profile.ProfileID,
		Step:      domain.StepConfirmation,
		Data: domain.OnboardingData{
			ProjectType: "Renovation",
			Location:    "Ntinda",
		},
	}

	suite.mockOnboardingRepo.On("SaveOnboardingState", ctx, mock.MatchedBy(func(s domain.OnboardingState) bool {
		return s.Step == domain.StepCompleted && s.CompletedAt != nil
	})).Return(nil).Once()

	reply, err := suite.service.HandleMessage(ctx, suite.profile, state, "later")

	suite.Require().NoError(err)
	suite.Contains(reply, "dashboard")
	suite.mockProjectRepo.AssertNotCalled(suite.T(), "SaveProject", mock.Anything, mock.Anything)
}

// CompletedAt is the terminal authority: a completed state never re-enters
// the flow, so "confirm" can never create a second project.
func (suite *OnboardingServiceTestSuite) TestHandleMessage_CompletedStateIsTerminal() {
	ctx := context.Background()
	completedAt := time.Now().Add(-24 * time.Hour)
	state := &domain.OnboardingState{
		ProfileID:   suite.profile.ProfileID,
		Step:        domain.StepConfirmation, // stale step, CompletedAt still wins
		CompletedAt: &completedAt,
	}

	reply, err := suite.service.HandleMessage(ctx, suite.profile, state, "confirm")

	suite.Require().NoError(err)
	suite.Empty(reply)
	suite.mockProjectRepo.AssertNotCalled(suite.T(), "SaveProject", mock.Anything, mock.Anything)
	suite.mockOnboardingRepo.AssertNotCalled(suite.T(), "SaveOnboardingState", mock.Anything, mock.Anything)
}

func (suite *OnboardingServiceTestSuite) TestHandleMessage_NilStateBegins() {
	ctx := context.Background()

	suite.mockOnboardingRepo.On("SaveOnboardingState", ctx, mock.AnythingOfType("domain.OnboardingState")).Return(nil).Once()

	reply, err := suite.service.HandleMessage(ctx, suite.profile, nil, "hello")

	suite.Require().NoError(err)
	suite.Contains(reply, "Welcome to Jenga")
}

func TestOnboardingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OnboardingServiceTestSuite))
}

func TestNeedsOnboarding(t *testing.T) {
	var nilState *domain.OnboardingState
	assert.True(t, nilState.NeedsOnboarding())

	assert.True(t, (&domain.OnboardingState{Step: domain.StepBudget}).NeedsOnboarding())

	now := time.Now()
	assert.False(t, (&domain.OnboardingState{Step: domain.StepCompleted, CompletedAt: &now}).NeedsOnboarding())
}
