package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cleansweep/cleansweep/internal/domain"
	"github.com/google/uuid"
)

type engagementRepository struct {
	db *sql.DB
}

// NewEngagementRepository creates a new PostgreSQL engagement repository
func NewEngagementRepository(db *sql.DB) domain.EngagementRepository {
	return &engagementRepository{db: db}
}

func (r *engagementRepository) WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return withTransaction(ctx, r.db, fn)
}

func (r *engagementRepository) GrantAchievement(ctx context.Context, achievement *domain.UserAchievement) error {
	query := `
		INSERT INTO user_achievements (
			user_id, achievement_type_id, earned_date,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		achievement.UserID,
		achievement.AchievementTypeID,
		achievement.EarnedDate,
		achievement.CreatedByUserID,
		achievement.CreatedDate,
		achievement.LastUpdatedByUserID,
		achievement.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to grant achievement: %w", mapConstraintError(err))
	}
	return nil
}

func (r *engagementRepository) GetUserAchievements(ctx context.Context, userID uuid.UUID) ([]*domain.UserAchievement, error) {
	query := `
		SELECT user_id, achievement_type_id, earned_date,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		FROM user_achievements WHERE user_id = $1
		ORDER BY earned_date
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user achievements: %w", err)
	}
	defer rows.Close()

	var achievements []*domain.UserAchievement
	for rows.Next() {
		var achievement domain.UserAchievement
		if err := rows.Scan(
			&achievement.UserID,
			&achievement.AchievementTypeID,
			&achievement.EarnedDate,
			&achievement.CreatedByUserID,
			&achievement.CreatedDate,
			&achievement.LastUpdatedByUserID,
			&achievement.LastUpdatedDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user achievement: %w", err)
		}
		achievements = append(achievements, &achievement)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user achievements: %w", err)
	}
	return achievements, nil
}

// ReplaceLeaderboardTx swaps one cached slice atomically: the delete and all
// inserts share the caller's transaction, so readers either see the old
// board or the new one, never a partial rebuild.
func (r *engagementRepository) ReplaceLeaderboardTx(ctx context.Context, tx *sql.Tx, key domain.LeaderboardKey, entries []*domain.LeaderboardEntry) error {
	deleteQuery := `
		DELETE FROM leaderboard_cache
		WHERE entity_type = $1 AND leaderboard_type = $2 AND time_range = $3
			AND location_scope = $4 AND location_value = $5
	`
	if _, err := tx.ExecContext(ctx, deleteQuery,
		key.EntityType, key.LeaderboardType, key.TimeRange, key.LocationScope, key.LocationValue,
	); err != nil {
		return fmt.Errorf("failed to clear leaderboard slice: %w", err)
	}

	insertQuery := `
		INSERT INTO leaderboard_cache (
			entity_type, leaderboard_type, time_range, location_scope, location_value,
			rank, entity_id, display_name, score, computed_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	for _, entry := range entries {
		if _, err := tx.ExecContext(ctx, insertQuery,
			entry.EntityType,
			entry.LeaderboardType,
			entry.TimeRange,
			entry.LocationScope,
			entry.LocationValue,
			entry.Rank,
			entry.EntityID,
			entry.DisplayName,
			entry.Score,
			entry.ComputedDate,
		); err != nil {
			return fmt.Errorf("failed to insert leaderboard entry: %w", mapConstraintError(err))
		}
	}
	return nil
}

func (r *engagementRepository) GetLeaderboard(ctx context.Context, key domain.LeaderboardKey, limit uint64) ([]*domain.LeaderboardEntry, error) {
	builder := sq.Select(
		"entity_type", "leaderboard_type", "time_range", "location_scope", "location_value",
		"rank", "entity_id", "display_name", "score", "computed_date").
		From("leaderboard_cache").
		Where(sq.Eq{
			"entity_type":      key.EntityType,
			"leaderboard_type": key.LeaderboardType,
			"time_range":       key.TimeRange,
			"location_scope":   key.LocationScope,
			"location_value":   key.LocationValue,
		}).
		OrderBy("rank").
		PlaceholderFormat(sq.Dollar)
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build leaderboard query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []*domain.LeaderboardEntry
	for rows.Next() {
		entry, err := scanLeaderboardEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leaderboard entries: %w", err)
	}
	return entries, nil
}

// ComputeEventLeaderboard derives fresh standings from the authoritative
// attendee metric rows. The score expression follows the leaderboard type:
// events counts distinct events, bags sums bag counts, weight sums reported
// weight.
func (r *engagementRepository) ComputeEventLeaderboard(ctx context.Context, key domain.LeaderboardKey, now time.Time) ([]*domain.LeaderboardEntry, error) {
	var score string
	switch key.LeaderboardType {
	case domain.LeaderboardTypeEvents:
		score = "COUNT(DISTINCT m.event_id)"
	case domain.LeaderboardTypeBags:
		score = "COALESCE(SUM(m.number_of_bags), 0)"
	case domain.LeaderboardTypeWeight:
		score = "COALESCE(SUM(m.weight), 0)"
	default:
		return nil, domain.NewValidationError("unknown leaderboard type: " + key.LeaderboardType)
	}
	if key.EntityType != domain.LeaderboardEntityUser {
		return nil, domain.NewValidationError("event leaderboards are computed per user")
	}

	builder := sq.Select(
		"RANK() OVER (ORDER BY "+score+" DESC) AS rank",
		"u.id",
		"u.user_name",
		score+" AS score").
		From("event_attendee_metrics m").
		Join("users u ON u.id = m.user_id").
		Join("events e ON e.id = m.event_id").
		GroupBy("u.id", "u.user_name").
		OrderBy("score DESC").
		PlaceholderFormat(sq.Dollar)

	switch key.TimeRange {
	case domain.LeaderboardRangeYear:
		builder = builder.Where(sq.GtOrEq{"e.event_date": now.UTC().AddDate(-1, 0, 0)})
	case domain.LeaderboardRangeMonth:
		builder = builder.Where(sq.GtOrEq{"e.event_date": now.UTC().AddDate(0, -1, 0)})
	}

	switch key.LocationScope {
	case domain.LeaderboardScopeCountry:
		builder = builder.Where(sq.Eq{"e.country": key.LocationValue})
	case domain.LeaderboardScopeRegion:
		builder = builder.Where(sq.Eq{"e.region": key.LocationValue})
	case domain.LeaderboardScopeCity:
		builder = builder.Where(sq.Eq{"e.city": key.LocationValue})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build leaderboard compute query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to compute leaderboard: %w", err)
	}
	defer rows.Close()

	computed := now.UTC()
	var entries []*domain.LeaderboardEntry
	for rows.Next() {
		entry := &domain.LeaderboardEntry{
			EntityType:      key.EntityType,
			LeaderboardType: key.LeaderboardType,
			TimeRange:       key.TimeRange,
			LocationScope:   key.LocationScope,
			LocationValue:   key.LocationValue,
			ComputedDate:    computed,
		}
		if err := rows.Scan(&entry.Rank, &entry.EntityID, &entry.DisplayName, &entry.Score); err != nil {
			return nil, fmt.Errorf("failed to scan computed leaderboard row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate computed leaderboard rows: %w", err)
	}
	return entries, nil
}

func scanLeaderboardEntry(row rowScanner) (*domain.LeaderboardEntry, error) {
	var entry domain.LeaderboardEntry
	err := row.Scan(
		&entry.EntityType,
		&entry.LeaderboardType,
		&entry.TimeRange,
		&entry.LocationScope,
		&entry.LocationValue,
		&entry.Rank,
		&entry.EntityID,
		&entry.DisplayName,
		&entry.Score,
		&entry.ComputedDate,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
