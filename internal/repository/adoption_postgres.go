package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cleansweep/cleansweep/internal/domain"
	"github.com/google/uuid"
)

type adoptionRepository struct {
	db *sql.DB
}

// NewAdoptionRepository creates a new PostgreSQL adoption repository
func NewAdoptionRepository(db *sql.DB) domain.AdoptionRepository {
	return &adoptionRepository{db: db}
}

func (r *adoptionRepository) WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return withTransaction(ctx, r.db, fn)
}

const createAreaQuery = `
		INSERT INTO adoptable_areas (
			id, partner_id, name, description, area_type, requirements, max_teams,
			latitude, longitude, is_active,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

func areaArgs(area *domain.AdoptableArea) []interface{} {
	return []interface{}{
		area.ID,
		area.PartnerID,
		area.Name,
		nullString(area.Description),
		nullString(area.AreaType),
		nullString(area.Requirements),
		area.MaxTeams,
		area.Latitude,
		area.Longitude,
		area.IsActive,
		area.CreatedByUserID,
		area.CreatedDate,
		area.LastUpdatedByUserID,
		area.LastUpdatedDate,
	}
}

func (r *adoptionRepository) CreateArea(ctx context.Context, area *domain.AdoptableArea) error {
	_, err := r.db.ExecContext(ctx, createAreaQuery, areaArgs(area)...)
	if err != nil {
		return fmt.Errorf("failed to create adoptable area: %w", mapConstraintError(err))
	}
	return nil
}

func (r *adoptionRepository) CreateAreaTx(ctx context.Context, tx *sql.Tx, area *domain.AdoptableArea) error {
	_, err := tx.ExecContext(ctx, createAreaQuery, areaArgs(area)...)
	if err != nil {
		return fmt.Errorf("failed to create adoptable area: %w", mapConstraintError(err))
	}
	return nil
}

const areaColumns = `id, partner_id, name, description, area_type, requirements, max_teams,
		latitude, longitude, is_active,
		created_by_user_id, created_date, last_updated_by_user_id, last_updated_date`

func (r *adoptionRepository) GetAreaByID(ctx context.Context, id uuid.UUID) (*domain.AdoptableArea, error) {
	query := `SELECT ` + areaColumns + ` FROM adoptable_areas WHERE id = $1`

	area, err := scanArea(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "adoptable area", ID: id.String()}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get adoptable area: %w", err)
	}
	return area, nil
}

func (r *adoptionRepository) ListAreasByPartner(ctx context.Context, partnerID uuid.UUID) ([]*domain.AdoptableArea, error) {
	query := `SELECT ` + areaColumns + ` FROM adoptable_areas WHERE partner_id = $1 ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list adoptable areas: %w", err)
	}
	defer rows.Close()

	var areas []*domain.AdoptableArea
	for rows.Next() {
		area, err := scanArea(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan adoptable area: %w", err)
		}
		areas = append(areas, area)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate adoptable areas: %w", err)
	}
	return areas, nil
}

func scanArea(row rowScanner) (*domain.AdoptableArea, error) {
	var area domain.AdoptableArea
	var description, areaType, requirements sql.NullString
	err := row.Scan(
		&area.ID,
		&area.PartnerID,
		&area.Name,
		&description,
		&areaType,
		&requirements,
		&area.MaxTeams,
		&area.Latitude,
		&area.Longitude,
		&area.IsActive,
		&area.CreatedByUserID,
		&area.CreatedDate,
		&area.LastUpdatedByUserID,
		&area.LastUpdatedDate,
	)
	if err != nil {
		return nil, err
	}
	area.Description = description.String
	area.AreaType = areaType.String
	area.Requirements = requirements.String
	return &area, nil
}

func (r *adoptionRepository) CreateAdoption(ctx context.Context, adoption *domain.TeamAdoption) error {
	query := `
		INSERT INTO team_adoptions (
			id, team_id, adoptable_area_id, status_id, rejection_reason,
			event_count, is_compliant, last_event_date,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.ExecContext(ctx, query,
		adoption.ID,
		adoption.TeamID,
		adoption.AdoptableAreaID,
		adoption.StatusID,
		nullString(adoption.RejectionReason),
		adoption.EventCount,
		adoption.IsCompliant,
		adoption.LastEventDate,
		adoption.CreatedByUserID,
		adoption.CreatedDate,
		adoption.LastUpdatedByUserID,
		adoption.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to create team adoption: %w", mapConstraintError(err))
	}
	return nil
}

func (r *adoptionRepository) GetAdoptionByID(ctx context.Context, id uuid.UUID) (*domain.TeamAdoption, error) {
	query := `
		SELECT id, team_id, adoptable_area_id, status_id, rejection_reason,
			event_count, is_compliant, last_event_date,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		FROM team_adoptions WHERE id = $1
	`
	var adoption domain.TeamAdoption
	var rejectionReason sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&adoption.ID,
		&adoption.TeamID,
		&adoption.AdoptableAreaID,
		&adoption.StatusID,
		&rejectionReason,
		&adoption.EventCount,
		&adoption.IsCompliant,
		&adoption.LastEventDate,
		&adoption.CreatedByUserID,
		&adoption.CreatedDate,
		&adoption.LastUpdatedByUserID,
		&adoption.LastUpdatedDate,
	)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "team adoption", ID: id.String()}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team adoption: %w", err)
	}
	adoption.RejectionReason = rejectionReason.String
	return &adoption, nil
}

const updateAdoptionQuery = `
		UPDATE team_adoptions SET
			status_id = $2, rejection_reason = $3, event_count = $4,
			is_compliant = $5, last_event_date = $6,
			last_updated_by_user_id = $7, last_updated_date = $8
		WHERE id = $1
	`

func adoptionUpdateArgs(adoption *domain.TeamAdoption) []interface{} {
	return []interface{}{
		adoption.ID,
		adoption.StatusID,
		nullString(adoption.RejectionReason),
		adoption.EventCount,
		adoption.IsCompliant,
		adoption.LastEventDate,
		adoption.LastUpdatedByUserID,
		adoption.LastUpdatedDate,
	}
}

func (r *adoptionRepository) UpdateAdoption(ctx context.Context, adoption *domain.TeamAdoption) error {
	result, err := r.db.ExecContext(ctx, updateAdoptionQuery, adoptionUpdateArgs(adoption)...)
	if err != nil {
		return fmt.Errorf("failed to update team adoption: %w", mapConstraintError(err))
	}
	return checkAdoptionUpdated(result, adoption.ID)
}

func (r *adoptionRepository) UpdateAdoptionTx(ctx context.Context, tx *sql.Tx, adoption *domain.TeamAdoption) error {
	result, err := tx.ExecContext(ctx, updateAdoptionQuery, adoptionUpdateArgs(adoption)...)
	if err != nil {
		return fmt.Errorf("failed to update team adoption: %w", mapConstraintError(err))
	}
	return checkAdoptionUpdated(result, adoption.ID)
}

func checkAdoptionUpdated(result sql.Result, id uuid.UUID) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check adoption update result: %w", err)
	}
	if affected == 0 {
		return &domain.ErrNotFound{Entity: "team adoption", ID: id.String()}
	}
	return nil
}

func (r *adoptionRepository) AddAdoptionEventTx(ctx context.Context, tx *sql.Tx, event *domain.TeamAdoptionEvent) error {
	query := `
		INSERT INTO team_adoption_events (
			team_adoption_id, event_id, event_date,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := tx.ExecContext(ctx, query,
		event.TeamAdoptionID,
		event.EventID,
		event.EventDate,
		event.CreatedByUserID,
		event.CreatedDate,
		event.LastUpdatedByUserID,
		event.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to add adoption event: %w", mapConstraintError(err))
	}
	return nil
}

func (r *adoptionRepository) CountAdoptionEvents(ctx context.Context, adoptionID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM team_adoption_events WHERE team_adoption_id = $1`, adoptionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count adoption events: %w", err)
	}
	return count, nil
}

func (r *adoptionRepository) CreateSponsoredAdoption(ctx context.Context, sponsored *domain.SponsoredAdoption) error {
	query := `
		INSERT INTO sponsored_adoptions (
			id, sponsor_id, team_adoption_id,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		sponsored.ID,
		sponsored.SponsorID,
		sponsored.TeamAdoptionID,
		sponsored.CreatedByUserID,
		sponsored.CreatedDate,
		sponsored.LastUpdatedByUserID,
		sponsored.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to create sponsored adoption: %w", mapConstraintError(err))
	}
	return nil
}
