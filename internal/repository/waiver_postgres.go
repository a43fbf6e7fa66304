package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cleansweep/cleansweep/internal/domain"
	"github.com/google/uuid"
)

type waiverRepository struct {
	db *sql.DB
}

// NewWaiverRepository creates a new PostgreSQL waiver repository
func NewWaiverRepository(db *sql.DB) domain.WaiverRepository {
	return &waiverRepository{db: db}
}

const waiverVersionColumns = `id, name, version_label, waiver_text, waiver_duration_type_id,
		duration_days, effective_date, is_active,
		created_by_user_id, created_date, last_updated_by_user_id, last_updated_date`

func (r *waiverRepository) CreateVersion(ctx context.Context, version *domain.WaiverVersion) error {
	query := `
		INSERT INTO waiver_versions (` + waiverVersionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.ExecContext(ctx, query,
		version.ID,
		version.Name,
		version.VersionLabel,
		version.WaiverText,
		version.WaiverDurationTypeID,
		version.DurationDays,
		version.EffectiveDate,
		version.IsActive,
		version.CreatedByUserID,
		version.CreatedDate,
		version.LastUpdatedByUserID,
		version.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to create waiver version: %w", mapConstraintError(err))
	}
	return nil
}

func (r *waiverRepository) GetVersionByID(ctx context.Context, id uuid.UUID) (*domain.WaiverVersion, error) {
	query := `SELECT ` + waiverVersionColumns + ` FROM waiver_versions WHERE id = $1`

	version, err := scanWaiverVersion(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "waiver version", ID: id.String()}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get waiver version: %w", err)
	}
	return version, nil
}

func (r *waiverRepository) GetActiveVersionByName(ctx context.Context, name string) (*domain.WaiverVersion, error) {
	query := `
		SELECT ` + waiverVersionColumns + `
		FROM waiver_versions
		WHERE name = $1 AND is_active = TRUE
		ORDER BY effective_date DESC
		LIMIT 1
	`
	version, err := scanWaiverVersion(r.db.QueryRowContext(ctx, query, name))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "active waiver version", ID: name}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active waiver version: %w", err)
	}
	return version, nil
}

func scanWaiverVersion(row rowScanner) (*domain.WaiverVersion, error) {
	var version domain.WaiverVersion
	err := row.Scan(
		&version.ID,
		&version.Name,
		&version.VersionLabel,
		&version.WaiverText,
		&version.WaiverDurationTypeID,
		&version.DurationDays,
		&version.EffectiveDate,
		&version.IsActive,
		&version.CreatedByUserID,
		&version.CreatedDate,
		&version.LastUpdatedByUserID,
		&version.LastUpdatedDate,
	)
	if err != nil {
		return nil, err
	}
	return &version, nil
}

// UpdateVersion persists version changes. Text immutability on referenced
// versions is enforced here, not left to callers: the statement refuses to
// change waiver_text once any user waiver points at the row.
func (r *waiverRepository) UpdateVersion(ctx context.Context, version *domain.WaiverVersion) error {
	referenced, err := r.VersionIsReferenced(ctx, version.ID)
	if err != nil {
		return err
	}
	if referenced {
		current, err := r.GetVersionByID(ctx, version.ID)
		if err != nil {
			return err
		}
		if current.WaiverText != version.WaiverText {
			return &domain.ErrWaiverVersionInUse{VersionID: version.ID.String()}
		}
	}

	query := `
		UPDATE waiver_versions SET
			name = $2, version_label = $3, waiver_text = $4, waiver_duration_type_id = $5,
			duration_days = $6, effective_date = $7, is_active = $8,
			last_updated_by_user_id = $9, last_updated_date = $10
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		version.ID,
		version.Name,
		version.VersionLabel,
		version.WaiverText,
		version.WaiverDurationTypeID,
		version.DurationDays,
		version.EffectiveDate,
		version.IsActive,
		version.LastUpdatedByUserID,
		version.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to update waiver version: %w", mapConstraintError(err))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check version update result: %w", err)
	}
	if affected == 0 {
		return &domain.ErrNotFound{Entity: "waiver version", ID: version.ID.String()}
	}
	return nil
}

func (r *waiverRepository) DeactivateVersion(ctx context.Context, id uuid.UUID, actorID uuid.UUID, now time.Time) error {
	query := `
		UPDATE waiver_versions SET
			is_active = FALSE, last_updated_by_user_id = $2, last_updated_date = $3
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, id, actorID, now.UTC())
	if err != nil {
		return fmt.Errorf("failed to deactivate waiver version: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deactivate result: %w", err)
	}
	if affected == 0 {
		return &domain.ErrNotFound{Entity: "waiver version", ID: id.String()}
	}
	return nil
}

func (r *waiverRepository) VersionIsReferenced(ctx context.Context, versionID uuid.UUID) (bool, error) {
	var referenced bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM user_waivers WHERE waiver_version_id = $1)`, versionID).Scan(&referenced)
	if err != nil {
		return false, fmt.Errorf("failed to check waiver version references: %w", err)
	}
	return referenced, nil
}

func (r *waiverRepository) CreateUserWaiver(ctx context.Context, waiver *domain.UserWaiver) error {
	query := `
		INSERT INTO user_waivers (
			id, user_id, waiver_version_id, accepted_date, expiry_date,
			waiver_text_snapshot, guardian_name, guardian_email,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.ExecContext(ctx, query,
		waiver.ID,
		waiver.UserID,
		waiver.WaiverVersionID,
		waiver.AcceptedDate,
		waiver.ExpiryDate,
		waiver.WaiverTextSnapshot,
		nullString(waiver.GuardianName),
		nullString(waiver.GuardianEmail),
		waiver.CreatedByUserID,
		waiver.CreatedDate,
		waiver.LastUpdatedByUserID,
		waiver.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to create user waiver: %w", mapConstraintError(err))
	}
	return nil
}

func (r *waiverRepository) GetUserWaivers(ctx context.Context, userID uuid.UUID) ([]*domain.UserWaiver, error) {
	query := `
		SELECT id, user_id, waiver_version_id, accepted_date, expiry_date,
			waiver_text_snapshot, guardian_name, guardian_email,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		FROM user_waivers WHERE user_id = $1
		ORDER BY accepted_date DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user waivers: %w", err)
	}
	defer rows.Close()

	var waivers []*domain.UserWaiver
	for rows.Next() {
		var waiver domain.UserWaiver
		var guardianName, guardianEmail sql.NullString
		if err := rows.Scan(
			&waiver.ID,
			&waiver.UserID,
			&waiver.WaiverVersionID,
			&waiver.AcceptedDate,
			&waiver.ExpiryDate,
			&waiver.WaiverTextSnapshot,
			&guardianName,
			&guardianEmail,
			&waiver.CreatedByUserID,
			&waiver.CreatedDate,
			&waiver.LastUpdatedByUserID,
			&waiver.LastUpdatedDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user waiver: %w", err)
		}
		waiver.GuardianName = guardianName.String
		waiver.GuardianEmail = guardianEmail.String
		waivers = append(waivers, &waiver)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user waivers: %w", err)
	}
	return waivers, nil
}

func (r *waiverRepository) CreateCommunityWaiver(ctx context.Context, waiver *domain.CommunityWaiver) error {
	query := `
		INSERT INTO community_waivers (
			id, partner_id, waiver_version_id,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		waiver.ID,
		waiver.PartnerID,
		waiver.WaiverVersionID,
		waiver.CreatedByUserID,
		waiver.CreatedDate,
		waiver.LastUpdatedByUserID,
		waiver.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to create community waiver: %w", mapConstraintError(err))
	}
	return nil
}

func (r *waiverRepository) GetCommunityWaivers(ctx context.Context, partnerID uuid.UUID) ([]*domain.CommunityWaiver, error) {
	query := `
		SELECT id, partner_id, waiver_version_id,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		FROM community_waivers WHERE partner_id = $1
		ORDER BY created_date
	`
	rows, err := r.db.QueryContext(ctx, query, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get community waivers: %w", err)
	}
	defer rows.Close()

	var waivers []*domain.CommunityWaiver
	for rows.Next() {
		var waiver domain.CommunityWaiver
		if err := rows.Scan(
			&waiver.ID,
			&waiver.PartnerID,
			&waiver.WaiverVersionID,
			&waiver.CreatedByUserID,
			&waiver.CreatedDate,
			&waiver.LastUpdatedByUserID,
			&waiver.LastUpdatedDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan community waiver: %w", err)
		}
		waivers = append(waivers, &waiver)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate community waivers: %w", err)
	}
	return waivers, nil
}
