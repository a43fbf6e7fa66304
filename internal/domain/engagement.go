package domain

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -destination mocks/mock_engagement_repository.go -package mocks github.com/cleansweep/cleansweep/internal/domain EngagementRepository

// UserAchievement grants an achievement to a user at most once per
// (user, achievement type) pair.
type UserAchievement struct {
	UserID            uuid.UUID `json:"user_id" db:"user_id"`
	AchievementTypeID int       `json:"achievement_type_id" db:"achievement_type_id"`
	EarnedDate        time.Time `json:"earned_date" db:"earned_date"`
	AuditFields
}

// Leaderboard cache key dimensions.
const (
	LeaderboardEntityUser = "user"
	LeaderboardEntityTeam = "team"

	LeaderboardTypeEvents = "events"
	LeaderboardTypeBags   = "bags"
	LeaderboardTypeWeight = "weight"

	LeaderboardRangeAllTime = "all_time"
	LeaderboardRangeYear    = "year"
	LeaderboardRangeMonth   = "month"

	LeaderboardScopeGlobal  = "global"
	LeaderboardScopeCountry = "country"
	LeaderboardScopeRegion  = "region"
	LeaderboardScopeCity    = "city"
)

// LeaderboardEntry is one row of the derived leaderboard read-model. The
// cache is recomputed wholesale by a batch refresh; the underlying event and
// metric tables stay authoritative.
type LeaderboardEntry struct {
	EntityType      string    `json:"entity_type" db:"entity_type"`
	LeaderboardType string    `json:"leaderboard_type" db:"leaderboard_type"`
	TimeRange       string    `json:"time_range" db:"time_range"`
	LocationScope   string    `json:"location_scope" db:"location_scope"`
	LocationValue   string    `json:"location_value" db:"location_value"`
	Rank            int       `json:"rank" db:"rank"`
	EntityID        uuid.UUID `json:"entity_id" db:"entity_id"`
	DisplayName     string    `json:"display_name" db:"display_name"`
	Score           float64   `json:"score" db:"score"`
	ComputedDate    time.Time `json:"computed_date" db:"computed_date"`
}

// LeaderboardKey identifies one cached leaderboard slice.
type LeaderboardKey struct {
	EntityType      string
	LeaderboardType string
	TimeRange       string
	LocationScope   string
	LocationValue   string
}

// EngagementRepository provides access to achievements and the leaderboard
// cache.
type EngagementRepository interface {
	WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error

	// GrantAchievement inserts the (user, type) row; a second grant for the
	// same pair is rejected by the unique constraint
	GrantAchievement(ctx context.Context, achievement *UserAchievement) error
	GetUserAchievements(ctx context.Context, userID uuid.UUID) ([]*UserAchievement, error)

	// ReplaceLeaderboardTx deletes a cached slice and reinserts its entries
	// in one transaction so readers never see a half-built board
	ReplaceLeaderboardTx(ctx context.Context, tx *sql.Tx, key LeaderboardKey, entries []*LeaderboardEntry) error
	GetLeaderboard(ctx context.Context, key LeaderboardKey, limit uint64) ([]*LeaderboardEntry, error)

	// ComputeEventLeaderboard derives fresh standings from the authoritative
	// attendee metric tables for the given key
	ComputeEventLeaderboard(ctx context.Context, key LeaderboardKey, now time.Time) ([]*LeaderboardEntry, error)
}
