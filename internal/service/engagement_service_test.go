package service

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"

	"github.com/cleansweep/cleansweep/internal/domain"
	"github.com/cleansweep/cleansweep/internal/domain/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngagementService_GrantAchievement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEngagementRepository(ctrl)
	mockLogger := setupMockLogger(ctrl)
	service := NewEngagementService(mockRepo, mockLogger)

	ctx := context.Background()
	userID := uuid.New()
	actorID := uuid.New()

	t.Run("Success - Grant achievement", func(t *testing.T) {
		mockRepo.EXPECT().
			GrantAchievement(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, achievement *domain.UserAchievement) error {
				assert.Equal(t, userID, achievement.UserID)
				assert.Equal(t, 7, achievement.AchievementTypeID)
				assert.False(t, achievement.EarnedDate.IsZero())
				return nil
			})

		achievement, err := service.GrantAchievement(ctx, userID, 7, actorID)
		require.NoError(t, err)
		assert.Equal(t, actorID, achievement.CreatedByUserID)
	})

	t.Run("Fail - Repeat grant for the same pair", func(t *testing.T) {
		mockRepo.EXPECT().
			GrantAchievement(ctx, gomock.Any()).
			Return(&domain.ErrUniqueViolation{Constraint: "user_achievements_pkey"})

		_, err := service.GrantAchievement(ctx, userID, 7, actorID)
		var uniqueErr *domain.ErrUniqueViolation
		require.True(t, errors.As(err, &uniqueErr))
	})
}

func TestEngagementService_Recompute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEngagementRepository(ctrl)
	mockLogger := setupMockLogger(ctrl)
	service := NewEngagementService(mockRepo, mockLogger)

	ctx := context.Background()

	keys := []domain.LeaderboardKey{
		{
			EntityType:      domain.LeaderboardEntityUser,
			LeaderboardType: domain.LeaderboardTypeBags,
			TimeRange:       domain.LeaderboardRangeAllTime,
			LocationScope:   domain.LeaderboardScopeGlobal,
		},
		{
			EntityType:      domain.LeaderboardEntityUser,
			LeaderboardType: domain.LeaderboardTypeBags,
			TimeRange:       domain.LeaderboardRangeMonth,
			LocationScope:   domain.LeaderboardScopeCity,
			LocationValue:   "Seattle",
		},
	}

	t.Run("Success - Every key recomputed and swapped in transactionally", func(t *testing.T) {
		var mu sync.Mutex
		replaced := make(map[string]int)

		for _, key := range keys {
			key := key
			entries := []*domain.LeaderboardEntry{
				{Rank: 1, EntityID: uuid.New(), DisplayName: "riverkeeper", Score: 42},
			}
			mockRepo.EXPECT().
				ComputeEventLeaderboard(gomock.Any(), key, gomock.Any()).
				Return(entries, nil)
			mockRepo.EXPECT().
				WithTransaction(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, fn func(*sql.Tx) error) error {
					return fn(nil)
				})
			mockRepo.EXPECT().
				ReplaceLeaderboardTx(gomock.Any(), gomock.Nil(), key, entries).
				DoAndReturn(func(_ context.Context, _ *sql.Tx, key domain.LeaderboardKey, _ []*domain.LeaderboardEntry) error {
					mu.Lock()
					replaced[key.TimeRange]++
					mu.Unlock()
					return nil
				})
		}

		err := service.Recompute(ctx, keys)
		require.NoError(t, err)
		assert.Equal(t, 1, replaced[domain.LeaderboardRangeAllTime])
		assert.Equal(t, 1, replaced[domain.LeaderboardRangeMonth])
	})

	t.Run("Fail - One key failing fails the recompute", func(t *testing.T) {
		mockRepo.EXPECT().
			ComputeEventLeaderboard(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("metric scan failed"))
		mockRepo.EXPECT().
			ComputeEventLeaderboard(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]*domain.LeaderboardEntry{}, nil).
			AnyTimes()
		mockRepo.EXPECT().
			WithTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(*sql.Tx) error) error {
				return fn(nil)
			}).
			AnyTimes()
		mockRepo.EXPECT().
			ReplaceLeaderboardTx(gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := service.Recompute(ctx, keys)
		require.Error(t, err)
	})
}

func TestEngagementService_GetLeaderboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEngagementRepository(ctrl)
	mockLogger := setupMockLogger(ctrl)
	service := NewEngagementService(mockRepo, mockLogger)

	ctx := context.Background()
	key := domain.LeaderboardKey{
		EntityType:      domain.LeaderboardEntityUser,
		LeaderboardType: domain.LeaderboardTypeEvents,
		TimeRange:       domain.LeaderboardRangeYear,
		LocationScope:   domain.LeaderboardScopeGlobal,
	}

	entries := []*domain.LeaderboardEntry{
		{Rank: 1, DisplayName: "riverkeeper", Score: 31},
		{Rank: 2, DisplayName: "trailblazer", Score: 28},
	}
	mockRepo.EXPECT().GetLeaderboard(ctx, key, uint64(10)).Return(entries, nil)

	result, err := service.GetLeaderboard(ctx, key, 10)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "riverkeeper", result[0].DisplayName)
}
