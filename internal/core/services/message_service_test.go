package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/jengabot/jenga_backend/internal/apperrors"
	"github.com/jengabot/jenga_backend/internal/core/domain"
	portsrepo "github.com/jengabot/jenga_backend/internal/core/ports/repositories"
	"github.com/jengabot/jenga_backend/internal/core/services"
	"github.com/jengabot/jenga_backend/internal/dto"
)

type MessageServiceTestSuite struct {
	suite.Suite
	mockMessageRepo *MockMessageRepository
	mockProfileRepo *MockProfileRepository
	service         *services.MessageService
}

func (suite *MessageServiceTestSuite) SetupTest() {
	suite.mockMessageRepo = new(MockMessageRepository)
	suite.mockProfileRepo = new(MockProfileRepository)
	suite.service = services.NewMessageService(suite.mockMessageRepo, suite.mockProfileRepo)
}

func (suite *MessageServiceTestSuite) TestListMessages_BuildsFilter() {
	ctx := context.Background()
	profileID := uuid.NewString()
	processed := true
	params := dto.ListMessagesParams{
		ProfileID: profileID,
		Direction: "inbound",
		Processed: &processed,
		Limit:     20,
		Offset:    40,
	}
	expected := []domain.MessageRecord{{MessageID: uuid.NewString()}}

	suite.mockProfileRepo.On("FindProfileByID", ctx, profileID).
		Return(&domain.Profile{ProfileID: profileID}, nil).Once()
	suite.mockMessageRepo.On("FindMessages", ctx, mock.MatchedBy(func(f portsrepo.MessageFilter) bool {
		return f.ProfileID != nil && *f.ProfileID == profileID &&
			f.Direction != nil && *f.Direction == domain.DirectionInbound &&
			f.Processed != nil && *f.Processed &&
			f.Limit == 20 && f.Offset == 40
	})).Return(expected, nil).Once()

	records, err := suite.service.ListMessages(ctx, params)

	suite.Require().NoError(err)
	suite.Equal(expected, records)
	suite.mockMessageRepo.AssertExpectations(suite.T())
	suite.mockProfileRepo.AssertExpectations(suite.T())
}

func (suite *MessageServiceTestSuite) TestListMessages_EmptyFiltersStayNil() {
	ctx := context.Background()

	suite.mockMessageRepo.On("FindMessages", ctx, mock.MatchedBy(func(f portsrepo.MessageFilter) bool {
		return f.ProfileID == nil && f.Direction == nil && f.Processed == nil
	})).Return([]domain.MessageRecord{}, nil).Once()

	records, err := suite.service.ListMessages(ctx, dto.ListMessagesParams{})

	suite.Require().NoError(err)
	suite.Empty(records)
	suite.mockProfileRepo.AssertNotCalled(suite.T(), "FindProfileByID", mock.Anything, mock.Anything)
}

func (suite *MessageServiceTestSuite) TestListMessages_UnknownProfile() {
	ctx := context.Background()
	profileID := uuid.NewString()

	suite.mockProfileRepo.On("FindProfileByID", ctx, profileID).
		Return(nil, apperrors.ErrNotFound).Once()

	records, err := suite.service.ListMessages(ctx, dto.ListMessagesParams{ProfileID: profileID})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(records)
	suite.mockMessageRepo.AssertNotCalled(suite.T(), "FindMessages", mock.Anything, mock.Anything)
}

func (suite *MessageServiceTestSuite) TestListMessages_RepoError() {
	ctx := context.Background()

	suite.mockMessageRepo.On("FindMessages", ctx, mock.Anything).Return(nil, assert.AnError).Once()

	records, err := suite.service.ListMessages(ctx, dto.ListMessagesParams{})

	suite.Require().Error(err)
	suite.Nil(records)
}

func TestMessageServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessageServiceTestSuite))
}
