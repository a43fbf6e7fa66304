package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/cleansweep/cleansweep/internal/domain"
	"github.com/cleansweep/cleansweep/internal/domain/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamService_CreateTeam(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTeamRepository(ctrl)
	mockLogger := setupMockLogger(ctrl)
	service := NewTeamService(mockRepo, mockLogger)

	ctx := context.Background()
	actorID := uuid.New()

	t.Run("Success - Create team", func(t *testing.T) {
		team := &domain.Team{Name: "River Rats", IsPublic: true}

		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, created *domain.Team) error {
				assert.NotEqual(t, uuid.Nil, created.ID)
				assert.Equal(t, actorID, created.CreatedByUserID)
				assert.Equal(t, actorID, created.LastUpdatedByUserID)
				return nil
			})

		err := service.CreateTeam(ctx, team, actorID)
		require.NoError(t, err)
	})

	t.Run("Fail - Missing name", func(t *testing.T) {
		err := service.CreateTeam(ctx, &domain.Team{}, actorID)
		require.Error(t, err)
		var validationErr domain.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})

	t.Run("Fail - Missing actor identity", func(t *testing.T) {
		err := service.CreateTeam(ctx, &domain.Team{Name: "No Actor"}, uuid.Nil)
		require.ErrorIs(t, err, domain.ErrMissingAuditIdentity)
	})

	t.Run("Fail - Repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(errors.New("connection refused"))

		err := service.CreateTeam(ctx, &domain.Team{Name: "Doomed"}, actorID)
		require.Error(t, err)
	})
}

func TestTeamService_RequestToJoin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTeamRepository(ctrl)
	mockLogger := setupMockLogger(ctrl)
	service := NewTeamService(mockRepo, mockLogger)

	ctx := context.Background()
	teamID := uuid.New()
	userID := uuid.New()

	t.Run("Success - Opens pending request stamped by the applicant", func(t *testing.T) {
		mockRepo.EXPECT().
			CreateJoinRequest(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, request *domain.TeamJoinRequest) error {
				assert.Equal(t, domain.TeamJoinRequestStatusPending, request.StatusID)
				assert.Equal(t, userID, request.CreatedByUserID)
				assert.Nil(t, request.ReviewedByUserID)
				return nil
			})

		request, err := service.RequestToJoin(ctx, teamID, userID)
		require.NoError(t, err)
		assert.Equal(t, teamID, request.TeamID)
		assert.Equal(t, userID, request.UserID)
	})

	t.Run("Fail - Duplicate outstanding request", func(t *testing.T) {
		mockRepo.EXPECT().
			CreateJoinRequest(ctx, gomock.Any()).
			Return(&domain.ErrUniqueViolation{Constraint: "team_join_requests_pending_idx"})

		_, err := service.RequestToJoin(ctx, teamID, userID)
		require.Error(t, err)
		var uniqueErr *domain.ErrUniqueViolation
		assert.True(t, errors.As(err, &uniqueErr))
	})
}

func TestTeamService_ApproveJoinRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTeamRepository(ctrl)
	mockLogger := setupMockLogger(ctrl)
	service := NewTeamService(mockRepo, mockLogger)

	ctx := context.Background()
	teamID := uuid.New()
	userID := uuid.New()
	reviewerID := uuid.New()

	pendingRequest := func() *domain.TeamJoinRequest {
		request := &domain.TeamJoinRequest{
			ID:       uuid.New(),
			TeamID:   teamID,
			UserID:   userID,
			StatusID: domain.TeamJoinRequestStatusPending,
		}
		require.NoError(t, request.StampCreate(userID, time.Now().Add(-time.Hour)))
		return request
	}

	t.Run("Success - Resolves request and adds member in one transaction", func(t *testing.T) {
		request := pendingRequest()

		mockRepo.EXPECT().GetJoinRequest(ctx, request.ID).Return(request, nil)
		mockRepo.EXPECT().
			WithTransaction(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(*sql.Tx) error) error {
				return fn(nil)
			})
		mockRepo.EXPECT().
			UpdateJoinRequestTx(ctx, gomock.Nil(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sql.Tx, updated *domain.TeamJoinRequest) error {
				assert.Equal(t, domain.TeamJoinRequestStatusApproved, updated.StatusID)
				require.NotNil(t, updated.ReviewedByUserID)
				assert.Equal(t, reviewerID, *updated.ReviewedByUserID)
				assert.NotNil(t, updated.ReviewedDate)
				return nil
			})
		mockRepo.EXPECT().
			AddMemberTx(ctx, gomock.Nil(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sql.Tx, member *domain.TeamMember) error {
				assert.Equal(t, teamID, member.TeamID)
				assert.Equal(t, userID, member.UserID)
				assert.Equal(t, reviewerID, member.CreatedByUserID)
				return nil
			})

		err := service.ApproveJoinRequest(ctx, request.ID, reviewerID)
		require.NoError(t, err)
	})

	t.Run("Fail - Already resolved", func(t *testing.T) {
		request := pendingRequest()
		require.NoError(t, request.Reject(reviewerID, time.Now()))

		mockRepo.EXPECT().GetJoinRequest(ctx, request.ID).Return(request, nil)

		err := service.ApproveJoinRequest(ctx, request.ID, reviewerID)
		require.Error(t, err)
		var transitionErr *domain.ErrInvalidTransition
		require.True(t, errors.As(err, &transitionErr))
		assert.Equal(t, "Rejected", transitionErr.From)
	})

	t.Run("Fail - Member insert rolls back the resolution", func(t *testing.T) {
		request := pendingRequest()

		mockRepo.EXPECT().GetJoinRequest(ctx, request.ID).Return(request, nil)
		mockRepo.EXPECT().
			WithTransaction(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(*sql.Tx) error) error {
				return fn(nil)
			})
		mockRepo.EXPECT().UpdateJoinRequestTx(ctx, gomock.Nil(), gomock.Any()).Return(nil)
		mockRepo.EXPECT().
			AddMemberTx(ctx, gomock.Nil(), gomock.Any()).
			Return(errors.New("insert failed"))

		err := service.ApproveJoinRequest(ctx, request.ID, reviewerID)
		require.Error(t, err)
	})

	t.Run("Fail - Request not found", func(t *testing.T) {
		missingID := uuid.New()
		mockRepo.EXPECT().
			GetJoinRequest(ctx, missingID).
			Return(nil, &domain.ErrNotFound{Entity: "team join request", ID: missingID.String()})

		err := service.ApproveJoinRequest(ctx, missingID, reviewerID)
		require.Error(t, err)
		var notFoundErr *domain.ErrNotFound
		assert.True(t, errors.As(err, &notFoundErr))
	})
}

func TestTeamService_RejectJoinRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTeamRepository(ctrl)
	mockLogger := setupMockLogger(ctrl)
	service := NewTeamService(mockRepo, mockLogger)

	ctx := context.Background()
	reviewerID := uuid.New()

	t.Run("Success - Resolves without a member row", func(t *testing.T) {
		request := &domain.TeamJoinRequest{
			ID:       uuid.New(),
			TeamID:   uuid.New(),
			UserID:   uuid.New(),
			StatusID: domain.TeamJoinRequestStatusPending,
		}
		require.NoError(t, request.StampCreate(request.UserID, time.Now().Add(-time.Hour)))

		mockRepo.EXPECT().GetJoinRequest(ctx, request.ID).Return(request, nil)
		mockRepo.EXPECT().
			WithTransaction(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(*sql.Tx) error) error {
				return fn(nil)
			})
		mockRepo.EXPECT().
			UpdateJoinRequestTx(ctx, gomock.Nil(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sql.Tx, updated *domain.TeamJoinRequest) error {
				assert.Equal(t, domain.TeamJoinRequestStatusRejected, updated.StatusID)
				return nil
			})

		err := service.RejectJoinRequest(ctx, request.ID, reviewerID)
		require.NoError(t, err)
	})
}

func TestTeamService_AddTeamEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTeamRepository(ctrl)
	mockLogger := setupMockLogger(ctrl)
	service := NewTeamService(mockRepo, mockLogger)

	ctx := context.Background()
	teamID := uuid.New()
	eventID := uuid.New()
	actorID := uuid.New()

	mockRepo.EXPECT().
		AddTeamEvent(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, teamEvent *domain.TeamEvent) error {
			assert.Equal(t, teamID, teamEvent.TeamID)
			assert.Equal(t, eventID, teamEvent.EventID)
			assert.Equal(t, actorID, teamEvent.CreatedByUserID)
			return nil
		})

	err := service.AddTeamEvent(ctx, teamID, eventID, actorID)
	require.NoError(t, err)
}
