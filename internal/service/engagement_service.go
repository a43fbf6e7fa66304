package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/cleansweep/cleansweep/internal/domain"
	"github.com/cleansweep/cleansweep/pkg/logger"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// EngagementService grants achievements and maintains the leaderboard cache.
// The cache is a derived read-model; Recompute rebuilds each requested slice
// from the authoritative metric tables.
type EngagementService struct {
	repo   domain.EngagementRepository
	logger logger.Logger
}

// NewEngagementService creates a new engagement service
func NewEngagementService(repo domain.EngagementRepository, logger logger.Logger) *EngagementService {
	return &EngagementService{
		repo:   repo,
		logger: logger,
	}
}

// GrantAchievement awards an achievement to a user. A repeat grant for the
// same (user, type) pair surfaces as a unique violation from the repository.
func (s *EngagementService) GrantAchievement(ctx context.Context, userID uuid.UUID, achievementTypeID int, actorID uuid.UUID) (*domain.UserAchievement, error) {
	now := time.Now()
	achievement := &domain.UserAchievement{
		UserID:            userID,
		AchievementTypeID: achievementTypeID,
		EarnedDate:        now.UTC(),
	}
	if err := achievement.StampCreate(actorID, now); err != nil {
		return nil, err
	}

	if err := s.repo.GrantAchievement(ctx, achievement); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"user_id":             userID.String(),
			"achievement_type_id": achievementTypeID,
		}).Error("Failed to grant achievement")
		return nil, err
	}
	return achievement, nil
}

// GetUserAchievements returns the achievements a user has earned.
func (s *EngagementService) GetUserAchievements(ctx context.Context, userID uuid.UUID) ([]*domain.UserAchievement, error) {
	return s.repo.GetUserAchievements(ctx, userID)
}

// Recompute rebuilds the cached slices for the given keys concurrently. Each
// slice is derived from the metric tables and swapped in under its own
// transaction, so a failed key leaves the other slices intact.
func (s *EngagementService) Recompute(ctx context.Context, keys []domain.LeaderboardKey) error {
	now := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	for _, key := range keys {
		key := key
		g.Go(func() error {
			entries, err := s.repo.ComputeEventLeaderboard(gctx, key, now)
			if err != nil {
				s.logger.WithFields(map[string]interface{}{
					"leaderboard_type": key.LeaderboardType,
					"time_range":       key.TimeRange,
				}).Error("Failed to compute leaderboard")
				return err
			}
			return s.repo.WithTransaction(gctx, func(tx *sql.Tx) error {
				return s.repo.ReplaceLeaderboardTx(gctx, tx, key, entries)
			})
		})
	}
	return g.Wait()
}

// GetLeaderboard reads a cached slice, most recent standings first.
func (s *EngagementService) GetLeaderboard(ctx context.Context, key domain.LeaderboardKey, limit uint64) ([]*domain.LeaderboardEntry, error) {
	return s.repo.GetLeaderboard(ctx, key, limit)
}
