package domain

import (
	"context"

	"github.com/google/uuid"
)

// LitterReport is a sighting of litter submitted for cleanup.
type LitterReport struct {
	ID                   uuid.UUID `json:"id" db:"id"`
	Name                 string    `json:"name" db:"name"`
	Description          string    `json:"description,omitempty" db:"description"`
	LitterReportStatusID int       `json:"litter_report_status_id" db:"litter_report_status_id"`
	AuditFields
}

// Validate checks caller-controlled fields before a write.
func (r *LitterReport) Validate() error {
	if r.Name == "" {
		return NewValidationError("litter report name is required")
	}
	if r.LitterReportStatusID == 0 {
		return NewValidationError("litter report status is required")
	}
	return nil
}

// LitterImage belongs to a report and goes with it. It carries its own
// location (images can be taken at different spots within one report) and
// the shared moderation sub-state.
type LitterImage struct {
	ID             uuid.UUID `json:"id" db:"id"`
	LitterReportID uuid.UUID `json:"litter_report_id" db:"litter_report_id"`
	ImageURL       string    `json:"image_url" db:"image_url"`
	StreetAddress  string    `json:"street_address,omitempty" db:"street_address"`
	City           string    `json:"city,omitempty" db:"city"`
	Region         string    `json:"region,omitempty" db:"region"`
	Country        string    `json:"country,omitempty" db:"country"`
	PostalCode     string    `json:"postal_code,omitempty" db:"postal_code"`
	Latitude       *float64  `json:"latitude,omitempty" db:"latitude"`
	Longitude      *float64  `json:"longitude,omitempty" db:"longitude"`
	ModerationState
	AuditFields
}

// LitterRepository provides access to litter reports and their images.
type LitterRepository interface {
	CreateReport(ctx context.Context, report *LitterReport) error
	GetReportByID(ctx context.Context, id uuid.UUID) (*LitterReport, error)
	UpdateReportStatus(ctx context.Context, id uuid.UUID, statusID int, actorID uuid.UUID) error
	ListReportsByStatus(ctx context.Context, statusID int) ([]*LitterReport, error)

	AddImage(ctx context.Context, image *LitterImage) error
	GetImages(ctx context.Context, reportID uuid.UUID) ([]*LitterImage, error)
}
