package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cleansweep/cleansweep/internal/domain"
	"github.com/google/uuid"
)

type litterRepository struct {
	db *sql.DB
}

// NewLitterRepository creates a new PostgreSQL litter repository
func NewLitterRepository(db *sql.DB) domain.LitterRepository {
	return &litterRepository{db: db}
}

func (r *litterRepository) CreateReport(ctx context.Context, report *domain.LitterReport) error {
	query := `
		INSERT INTO litter_reports (
			id, name, description, litter_report_status_id,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		report.ID,
		report.Name,
		nullString(report.Description),
		report.LitterReportStatusID,
		report.CreatedByUserID,
		report.CreatedDate,
		report.LastUpdatedByUserID,
		report.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to create litter report: %w", mapConstraintError(err))
	}
	return nil
}

func (r *litterRepository) GetReportByID(ctx context.Context, id uuid.UUID) (*domain.LitterReport, error) {
	query := `
		SELECT id, name, description, litter_report_status_id,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		FROM litter_reports WHERE id = $1
	`
	var report domain.LitterReport
	var description sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&report.ID,
		&report.Name,
		&description,
		&report.LitterReportStatusID,
		&report.CreatedByUserID,
		&report.CreatedDate,
		&report.LastUpdatedByUserID,
		&report.LastUpdatedDate,
	)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "litter report", ID: id.String()}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get litter report: %w", err)
	}
	report.Description = description.String
	return &report, nil
}

func (r *litterRepository) UpdateReportStatus(ctx context.Context, id uuid.UUID, statusID int, actorID uuid.UUID) error {
	query := `
		UPDATE litter_reports SET
			litter_report_status_id = $2, last_updated_by_user_id = $3, last_updated_date = $4
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, id, statusID, actorID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to update litter report status: %w", mapConstraintError(err))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check report update result: %w", err)
	}
	if affected == 0 {
		return &domain.ErrNotFound{Entity: "litter report", ID: id.String()}
	}
	return nil
}

func (r *litterRepository) ListReportsByStatus(ctx context.Context, statusID int) ([]*domain.LitterReport, error) {
	query := `
		SELECT id, name, description, litter_report_status_id,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		FROM litter_reports WHERE litter_report_status_id = $1
		ORDER BY created_date DESC
	`
	rows, err := r.db.QueryContext(ctx, query, statusID)
	if err != nil {
		return nil, fmt.Errorf("failed to list litter reports: %w", err)
	}
	defer rows.Close()

	var reports []*domain.LitterReport
	for rows.Next() {
		var report domain.LitterReport
		var description sql.NullString
		if err := rows.Scan(
			&report.ID,
			&report.Name,
			&description,
			&report.LitterReportStatusID,
			&report.CreatedByUserID,
			&report.CreatedDate,
			&report.LastUpdatedByUserID,
			&report.LastUpdatedDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan litter report: %w", err)
		}
		report.Description = description.String
		reports = append(reports, &report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate litter reports: %w", err)
	}
	return reports, nil
}

func (r *litterRepository) AddImage(ctx context.Context, image *domain.LitterImage) error {
	query := `
		INSERT INTO litter_images (
			id, litter_report_id, image_url, street_address, city, region, country,
			postal_code, latitude, longitude,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.db.ExecContext(ctx, query,
		image.ID,
		image.LitterReportID,
		image.ImageURL,
		nullString(image.StreetAddress),
		nullString(image.City),
		nullString(image.Region),
		nullString(image.Country),
		nullString(image.PostalCode),
		image.Latitude,
		image.Longitude,
		image.CreatedByUserID,
		image.CreatedDate,
		image.LastUpdatedByUserID,
		image.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to add litter image: %w", mapConstraintError(err))
	}
	return nil
}

func (r *litterRepository) GetImages(ctx context.Context, reportID uuid.UUID) ([]*domain.LitterImage, error) {
	query := `
		SELECT id, litter_report_id, image_url, street_address, city, region, country,
			postal_code, latitude, longitude,
			moderation_status_id, in_review, review_requested_by_user_id,
			review_requested_date, moderated_by_user_id, moderated_date, moderation_reason,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		FROM litter_images WHERE litter_report_id = $1
		ORDER BY created_date
	`
	rows, err := r.db.QueryContext(ctx, query, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to get litter images: %w", err)
	}
	defer rows.Close()

	var images []*domain.LitterImage
	for rows.Next() {
		var image domain.LitterImage
		var streetAddress, city, region, country, postalCode, moderationReason sql.NullString
		if err := rows.Scan(
			&image.ID,
			&image.LitterReportID,
			&image.ImageURL,
			&streetAddress,
			&city,
			&region,
			&country,
			&postalCode,
			&image.Latitude,
			&image.Longitude,
			&image.ModerationStatusID,
			&image.InReview,
			&image.ReviewRequestedByUserID,
			&image.ReviewRequestedDate,
			&image.ModeratedByUserID,
			&image.ModeratedDate,
			&moderationReason,
			&image.CreatedByUserID,
			&image.CreatedDate,
			&image.LastUpdatedByUserID,
			&image.LastUpdatedDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan litter image: %w", err)
		}
		image.StreetAddress = streetAddress.String
		image.City = city.String
		image.Region = region.String
		image.Country = country.String
		image.PostalCode = postalCode.String
		image.ModerationReason = moderationReason.String
		images = append(images, &image)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate litter images: %w", err)
	}
	return images, nil
}
