package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/cleansweep/cleansweep/internal/domain"
	"github.com/google/uuid"
)

type areaGenerationRepository struct {
	db *sql.DB
}

// NewAreaGenerationRepository creates a new PostgreSQL area generation repository
func NewAreaGenerationRepository(db *sql.DB) domain.AreaGenerationRepository {
	return &areaGenerationRepository{db: db}
}

func (r *areaGenerationRepository) WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return withTransaction(ctx, r.db, fn)
}

func (r *areaGenerationRepository) CreateBatch(ctx context.Context, batch *domain.AreaGenerationBatch) error {
	query := `
		INSERT INTO area_generation_batches (
			id, partner_id, status_id, source_name, discovered_count, processed_count,
			approved_count, created_count, error_message, started_date, completed_date,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := r.db.ExecContext(ctx, query,
		batch.ID,
		batch.PartnerID,
		batch.StatusID,
		nullString(batch.SourceName),
		batch.DiscoveredCount,
		batch.ProcessedCount,
		batch.ApprovedCount,
		batch.CreatedCount,
		nullString(batch.ErrorMessage),
		batch.StartedDate,
		batch.CompletedDate,
		batch.CreatedByUserID,
		batch.CreatedDate,
		batch.LastUpdatedByUserID,
		batch.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to create area generation batch: %w", mapConstraintError(err))
	}
	return nil
}

func (r *areaGenerationRepository) GetBatchByID(ctx context.Context, id uuid.UUID) (*domain.AreaGenerationBatch, error) {
	query := `
		SELECT id, partner_id, status_id, source_name, discovered_count, processed_count,
			approved_count, created_count, error_message, started_date, completed_date,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		FROM area_generation_batches WHERE id = $1
	`
	var batch domain.AreaGenerationBatch
	var sourceName, errorMessage sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&batch.ID,
		&batch.PartnerID,
		&batch.StatusID,
		&sourceName,
		&batch.DiscoveredCount,
		&batch.ProcessedCount,
		&batch.ApprovedCount,
		&batch.CreatedCount,
		&errorMessage,
		&batch.StartedDate,
		&batch.CompletedDate,
		&batch.CreatedByUserID,
		&batch.CreatedDate,
		&batch.LastUpdatedByUserID,
		&batch.LastUpdatedDate,
	)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "area generation batch", ID: id.String()}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get area generation batch: %w", err)
	}
	batch.SourceName = sourceName.String
	batch.ErrorMessage = errorMessage.String
	return &batch, nil
}

const updateBatchQuery = `
		UPDATE area_generation_batches SET
			status_id = $2, discovered_count = $3, processed_count = $4,
			approved_count = $5, created_count = $6, error_message = $7,
			started_date = $8, completed_date = $9,
			last_updated_by_user_id = $10, last_updated_date = $11
		WHERE id = $1
	`

func batchUpdateArgs(batch *domain.AreaGenerationBatch) []interface{} {
	return []interface{}{
		batch.ID,
		batch.StatusID,
		batch.DiscoveredCount,
		batch.ProcessedCount,
		batch.ApprovedCount,
		batch.CreatedCount,
		nullString(batch.ErrorMessage),
		batch.StartedDate,
		batch.CompletedDate,
		batch.LastUpdatedByUserID,
		batch.LastUpdatedDate,
	}
}

func (r *areaGenerationRepository) UpdateBatch(ctx context.Context, batch *domain.AreaGenerationBatch) error {
	result, err := r.db.ExecContext(ctx, updateBatchQuery, batchUpdateArgs(batch)...)
	if err != nil {
		return fmt.Errorf("failed to update area generation batch: %w", mapConstraintError(err))
	}
	return checkBatchUpdated(result, batch.ID)
}

func (r *areaGenerationRepository) UpdateBatchTx(ctx context.Context, tx *sql.Tx, batch *domain.AreaGenerationBatch) error {
	result, err := tx.ExecContext(ctx, updateBatchQuery, batchUpdateArgs(batch)...)
	if err != nil {
		return fmt.Errorf("failed to update area generation batch: %w", mapConstraintError(err))
	}
	return checkBatchUpdated(result, batch.ID)
}

func checkBatchUpdated(result sql.Result, id uuid.UUID) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check batch update result: %w", err)
	}
	if affected == 0 {
		return &domain.ErrNotFound{Entity: "area generation batch", ID: id.String()}
	}
	return nil
}

const stagedAreaColumns = `id, batch_id, name, description, area_type, latitude, longitude,
		review_status_id, reviewed_by_user_id, reviewed_date, is_potential_duplicate,
		duplicate_of_name, promoted_area_id,
		created_by_user_id, created_date, last_updated_by_user_id, last_updated_date`

const createStagedAreaQuery = `
		INSERT INTO staged_adoptable_areas (` + stagedAreaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

func stagedAreaArgs(staged *domain.StagedAdoptableArea) []interface{} {
	return []interface{}{
		staged.ID,
		staged.BatchID,
		staged.Name,
		nullString(staged.Description),
		nullString(staged.AreaType),
		staged.Latitude,
		staged.Longitude,
		staged.ReviewStatusID,
		staged.ReviewedByUserID,
		staged.ReviewedDate,
		staged.IsPotentialDuplicate,
		nullString(staged.DuplicateOfName),
		staged.PromotedAreaID,
		staged.CreatedByUserID,
		staged.CreatedDate,
		staged.LastUpdatedByUserID,
		staged.LastUpdatedDate,
	}
}

func (r *areaGenerationRepository) CreateStagedArea(ctx context.Context, staged *domain.StagedAdoptableArea) error {
	_, err := r.db.ExecContext(ctx, createStagedAreaQuery, stagedAreaArgs(staged)...)
	if err != nil {
		return fmt.Errorf("failed to create staged area: %w", mapConstraintError(err))
	}
	return nil
}

func (r *areaGenerationRepository) CreateStagedAreaTx(ctx context.Context, tx *sql.Tx, staged *domain.StagedAdoptableArea) error {
	_, err := tx.ExecContext(ctx, createStagedAreaQuery, stagedAreaArgs(staged)...)
	if err != nil {
		return fmt.Errorf("failed to create staged area: %w", mapConstraintError(err))
	}
	return nil
}

func (r *areaGenerationRepository) GetStagedAreaByID(ctx context.Context, id uuid.UUID) (*domain.StagedAdoptableArea, error) {
	query := `SELECT ` + stagedAreaColumns + ` FROM staged_adoptable_areas WHERE id = $1`

	staged, err := scanStagedArea(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "staged adoptable area", ID: id.String()}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get staged area: %w", err)
	}
	return staged, nil
}

const updateStagedAreaQuery = `
		UPDATE staged_adoptable_areas SET
			review_status_id = $2, reviewed_by_user_id = $3, reviewed_date = $4,
			is_potential_duplicate = $5, duplicate_of_name = $6, promoted_area_id = $7,
			last_updated_by_user_id = $8, last_updated_date = $9
		WHERE id = $1
	`

func stagedAreaUpdateArgs(staged *domain.StagedAdoptableArea) []interface{} {
	return []interface{}{
		staged.ID,
		staged.ReviewStatusID,
		staged.ReviewedByUserID,
		staged.ReviewedDate,
		staged.IsPotentialDuplicate,
		nullString(staged.DuplicateOfName),
		staged.PromotedAreaID,
		staged.LastUpdatedByUserID,
		staged.LastUpdatedDate,
	}
}

func (r *areaGenerationRepository) UpdateStagedArea(ctx context.Context, staged *domain.StagedAdoptableArea) error {
	result, err := r.db.ExecContext(ctx, updateStagedAreaQuery, stagedAreaUpdateArgs(staged)...)
	if err != nil {
		return fmt.Errorf("failed to update staged area: %w", mapConstraintError(err))
	}
	return checkStagedAreaUpdated(result, staged.ID)
}

func (r *areaGenerationRepository) UpdateStagedAreaTx(ctx context.Context, tx *sql.Tx, staged *domain.StagedAdoptableArea) error {
	result, err := tx.ExecContext(ctx, updateStagedAreaQuery, stagedAreaUpdateArgs(staged)...)
	if err != nil {
		return fmt.Errorf("failed to update staged area: %w", mapConstraintError(err))
	}
	return checkStagedAreaUpdated(result, staged.ID)
}

func checkStagedAreaUpdated(result sql.Result, id uuid.UUID) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check staged area update result: %w", err)
	}
	if affected == 0 {
		return &domain.ErrNotFound{Entity: "staged adoptable area", ID: id.String()}
	}
	return nil
}

func (r *areaGenerationRepository) ListStagedAreas(ctx context.Context, filter domain.StagedAreaFilter) ([]*domain.StagedAdoptableArea, error) {
	builder := sq.Select(
		"id", "batch_id", "name", "description", "area_type", "latitude", "longitude",
		"review_status_id", "reviewed_by_user_id", "reviewed_date", "is_potential_duplicate",
		"duplicate_of_name", "promoted_area_id",
		"created_by_user_id", "created_date", "last_updated_by_user_id", "last_updated_date").
		From("staged_adoptable_areas").
		OrderBy("created_date").
		PlaceholderFormat(sq.Dollar)

	if filter.BatchID != nil {
		builder = builder.Where(sq.Eq{"batch_id": *filter.BatchID})
	}
	if filter.ReviewStatusID != 0 {
		builder = builder.Where(sq.Eq{"review_status_id": filter.ReviewStatusID})
	}
	if filter.DuplicatesOnly {
		builder = builder.Where(sq.Eq{"is_potential_duplicate": true})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build staged area list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list staged areas: %w", err)
	}
	defer rows.Close()

	var areas []*domain.StagedAdoptableArea
	for rows.Next() {
		staged, err := scanStagedArea(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staged area: %w", err)
		}
		areas = append(areas, staged)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate staged areas: %w", err)
	}
	return areas, nil
}

func scanStagedArea(row rowScanner) (*domain.StagedAdoptableArea, error) {
	var staged domain.StagedAdoptableArea
	var description, areaType, duplicateOfName sql.NullString
	err := row.Scan(
		&staged.ID,
		&staged.BatchID,
		&staged.Name,
		&description,
		&areaType,
		&staged.Latitude,
		&staged.Longitude,
		&staged.ReviewStatusID,
		&staged.ReviewedByUserID,
		&staged.ReviewedDate,
		&staged.IsPotentialDuplicate,
		&duplicateOfName,
		&staged.PromotedAreaID,
		&staged.CreatedByUserID,
		&staged.CreatedDate,
		&staged.LastUpdatedByUserID,
		&staged.LastUpdatedDate,
	)
	if err != nil {
		return nil, err
	}
	staged.Description = description.String
	staged.AreaType = areaType.String
	staged.DuplicateOfName = duplicateOfName.String
	return &staged, nil
}
