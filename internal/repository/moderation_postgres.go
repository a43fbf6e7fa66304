package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cleansweep/cleansweep/internal/domain"
	"github.com/google/uuid"
)

type moderationRepository struct {
	db *sql.DB
}

// NewModerationRepository creates a new PostgreSQL moderation repository
func NewModerationRepository(db *sql.DB) domain.ModerationRepository {
	return &moderationRepository{db: db}
}

func (r *moderationRepository) WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return withTransaction(ctx, r.db, fn)
}

// photoTable resolves the tagged union discriminator to the owning table.
func photoTable(photoType domain.PhotoType) (string, error) {
	switch photoType {
	case domain.PhotoTypeEvent:
		return "event_photos", nil
	case domain.PhotoTypeTeam:
		return "team_photos", nil
	case domain.PhotoTypeLitter:
		return "litter_images", nil
	case domain.PhotoTypePartner:
		return "partner_photos", nil
	}
	return "", domain.NewValidationError("unknown photo type: " + string(photoType))
}

const moderationColumns = `moderation_status_id, in_review, review_requested_by_user_id,
		review_requested_date, moderated_by_user_id, moderated_date, moderation_reason`

func (r *moderationRepository) GetModerationState(ctx context.Context, ref domain.PhotoRef) (*domain.ModerationState, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}
	table, err := photoTable(ref.PhotoType)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + moderationColumns + ` FROM ` + table + ` WHERE id = $1`

	var state domain.ModerationState
	var reason sql.NullString
	err = r.db.QueryRowContext(ctx, query, ref.PhotoID).Scan(
		&state.ModerationStatusID,
		&state.InReview,
		&state.ReviewRequestedByUserID,
		&state.ReviewRequestedDate,
		&state.ModeratedByUserID,
		&state.ModeratedDate,
		&reason,
	)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: string(ref.PhotoType) + " photo", ID: ref.PhotoID.String()}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get moderation state: %w", err)
	}
	state.ModerationReason = reason.String
	return &state, nil
}

func moderationUpdateQuery(table string) string {
	return `
		UPDATE ` + table + ` SET
			moderation_status_id = $2, in_review = $3, review_requested_by_user_id = $4,
			review_requested_date = $5, moderated_by_user_id = $6, moderated_date = $7,
			moderation_reason = $8
		WHERE id = $1
	`
}

func moderationStateArgs(ref domain.PhotoRef, state *domain.ModerationState) []interface{} {
	return []interface{}{
		ref.PhotoID,
		state.ModerationStatusID,
		state.InReview,
		state.ReviewRequestedByUserID,
		state.ReviewRequestedDate,
		state.ModeratedByUserID,
		state.ModeratedDate,
		nullString(state.ModerationReason),
	}
}

func (r *moderationRepository) UpdateModerationState(ctx context.Context, ref domain.PhotoRef, state *domain.ModerationState) error {
	if err := ref.Validate(); err != nil {
		return err
	}
	table, err := photoTable(ref.PhotoType)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, moderationUpdateQuery(table), moderationStateArgs(ref, state)...)
	if err != nil {
		return fmt.Errorf("failed to update moderation state: %w", mapConstraintError(err))
	}
	return checkModerationUpdated(result, ref)
}

func (r *moderationRepository) UpdateModerationStateTx(ctx context.Context, tx *sql.Tx, ref domain.PhotoRef, state *domain.ModerationState) error {
	if err := ref.Validate(); err != nil {
		return err
	}
	table, err := photoTable(ref.PhotoType)
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, moderationUpdateQuery(table), moderationStateArgs(ref, state)...)
	if err != nil {
		return fmt.Errorf("failed to update moderation state: %w", mapConstraintError(err))
	}
	return checkModerationUpdated(result, ref)
}

func checkModerationUpdated(result sql.Result, ref domain.PhotoRef) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check moderation update result: %w", err)
	}
	if affected == 0 {
		return &domain.ErrNotFound{Entity: string(ref.PhotoType) + " photo", ID: ref.PhotoID.String()}
	}
	return nil
}

const appendModerationLogQuery = `
		INSERT INTO photo_moderation_logs (
			id, photo_id, photo_type, action, reason, performed_by_user_id, performed_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

func moderationLogArgs(log *domain.PhotoModerationLog) []interface{} {
	return []interface{}{
		log.ID,
		log.PhotoID,
		string(log.PhotoType),
		log.Action,
		nullString(log.Reason),
		log.PerformedByUserID,
		log.PerformedDate,
	}
}

func (r *moderationRepository) AppendLog(ctx context.Context, log *domain.PhotoModerationLog) error {
	if err := log.PhotoRef.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, appendModerationLogQuery, moderationLogArgs(log)...)
	if err != nil {
		return fmt.Errorf("failed to append moderation log: %w", mapConstraintError(err))
	}
	return nil
}

func (r *moderationRepository) AppendLogTx(ctx context.Context, tx *sql.Tx, log *domain.PhotoModerationLog) error {
	if err := log.PhotoRef.Validate(); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, appendModerationLogQuery, moderationLogArgs(log)...)
	if err != nil {
		return fmt.Errorf("failed to append moderation log: %w", mapConstraintError(err))
	}
	return nil
}

func (r *moderationRepository) GetLogs(ctx context.Context, ref domain.PhotoRef) ([]*domain.PhotoModerationLog, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}
	query := `
		SELECT id, photo_id, photo_type, action, reason, performed_by_user_id, performed_date
		FROM photo_moderation_logs
		WHERE photo_id = $1 AND photo_type = $2
		ORDER BY performed_date
	`
	rows, err := r.db.QueryContext(ctx, query, ref.PhotoID, string(ref.PhotoType))
	if err != nil {
		return nil, fmt.Errorf("failed to get moderation logs: %w", err)
	}
	defer rows.Close()

	var logs []*domain.PhotoModerationLog
	for rows.Next() {
		var log domain.PhotoModerationLog
		var reason sql.NullString
		if err := rows.Scan(
			&log.ID,
			&log.PhotoID,
			&log.PhotoType,
			&log.Action,
			&reason,
			&log.PerformedByUserID,
			&log.PerformedDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan moderation log: %w", err)
		}
		log.Reason = reason.String
		logs = append(logs, &log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate moderation logs: %w", err)
	}
	return logs, nil
}

func (r *moderationRepository) CreateFlag(ctx context.Context, flag *domain.PhotoFlag) error {
	if err := flag.PhotoRef.Validate(); err != nil {
		return err
	}
	query := `
		INSERT INTO photo_flags (
			id, photo_id, photo_type, flagged_by_user_id, reason, resolution,
			resolved_by_user_id, resolved_date, created_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		flag.ID,
		flag.PhotoID,
		string(flag.PhotoType),
		flag.FlaggedByUserID,
		flag.Reason,
		nullString(flag.Resolution),
		flag.ResolvedByUserID,
		flag.ResolvedDate,
		flag.CreatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to create photo flag: %w", mapConstraintError(err))
	}
	return nil
}

func (r *moderationRepository) ResolveFlag(ctx context.Context, flagID uuid.UUID, resolution string, resolverID uuid.UUID, now time.Time) error {
	if resolution == "" {
		return domain.NewValidationError("flag resolution is required")
	}
	query := `
		UPDATE photo_flags SET
			resolution = $2, resolved_by_user_id = $3, resolved_date = $4
		WHERE id = $1 AND resolved_date IS NULL
	`
	result, err := r.db.ExecContext(ctx, query, flagID, resolution, resolverID, now.UTC())
	if err != nil {
		return fmt.Errorf("failed to resolve photo flag: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check flag resolution result: %w", err)
	}
	if affected == 0 {
		return &domain.ErrNotFound{Entity: "open photo flag", ID: flagID.String()}
	}
	return nil
}

func (r *moderationRepository) GetOpenFlags(ctx context.Context) ([]*domain.PhotoFlag, error) {
	query := `
		SELECT id, photo_id, photo_type, flagged_by_user_id, reason, resolution,
			resolved_by_user_id, resolved_date, created_date
		FROM photo_flags WHERE resolved_date IS NULL
		ORDER BY created_date
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get open photo flags: %w", err)
	}
	defer rows.Close()

	var flags []*domain.PhotoFlag
	for rows.Next() {
		var flag domain.PhotoFlag
		var resolution sql.NullString
		if err := rows.Scan(
			&flag.ID,
			&flag.PhotoID,
			&flag.PhotoType,
			&flag.FlaggedByUserID,
			&flag.Reason,
			&resolution,
			&flag.ResolvedByUserID,
			&flag.ResolvedDate,
			&flag.CreatedDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan photo flag: %w", err)
		}
		flag.Resolution = resolution.String
		flags = append(flags, &flag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate photo flags: %w", err)
	}
	return flags, nil
}
