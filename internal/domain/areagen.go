package domain

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -destination mocks/mock_areagen_repository.go -package mocks github.com/cleansweep/cleansweep/internal/domain AreaGenerationRepository

// AreaGenerationBatch tracks one discovery run against an external map data
// source: Queued -> Processing -> Completed | Failed. The counters form a
// chain that must hold after every transition:
// CreatedCount <= ApprovedCount <= ProcessedCount <= DiscoveredCount.
type AreaGenerationBatch struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	PartnerID       uuid.UUID  `json:"partner_id" db:"partner_id"`
	StatusID        int        `json:"status_id" db:"status_id"`
	SourceName      string     `json:"source_name,omitempty" db:"source_name"`
	DiscoveredCount int        `json:"discovered_count" db:"discovered_count"`
	ProcessedCount  int        `json:"processed_count" db:"processed_count"`
	ApprovedCount   int        `json:"approved_count" db:"approved_count"`
	CreatedCount    int        `json:"created_count" db:"created_count"`
	ErrorMessage    string     `json:"error_message,omitempty" db:"error_message"`
	StartedDate     *time.Time `json:"started_date,omitempty" db:"started_date"`
	CompletedDate   *time.Time `json:"completed_date,omitempty" db:"completed_date"`
	AuditFields
}

// CheckCounters validates the counter chain invariant.
func (b *AreaGenerationBatch) CheckCounters() error {
	if b.CreatedCount <= b.ApprovedCount &&
		b.ApprovedCount <= b.ProcessedCount &&
		b.ProcessedCount <= b.DiscoveredCount {
		return nil
	}
	return NewValidationError(fmt.Sprintf(
		"batch counters out of order: created=%d approved=%d processed=%d discovered=%d",
		b.CreatedCount, b.ApprovedCount, b.ProcessedCount, b.DiscoveredCount))
}

// Start transitions Queued -> Processing.
func (b *AreaGenerationBatch) Start(now time.Time) error {
	if b.StatusID != BatchStatusQueued {
		return &ErrInvalidTransition{Entity: "area generation batch", From: batchStatusName(b.StatusID), To: "Processing"}
	}
	b.StatusID = BatchStatusProcessing
	t := now.UTC()
	b.StartedDate = &t
	return nil
}

// Complete transitions Processing -> Completed.
func (b *AreaGenerationBatch) Complete(now time.Time) error {
	if b.StatusID != BatchStatusProcessing {
		return &ErrInvalidTransition{Entity: "area generation batch", From: batchStatusName(b.StatusID), To: "Completed"}
	}
	if err := b.CheckCounters(); err != nil {
		return err
	}
	b.StatusID = BatchStatusCompleted
	t := now.UTC()
	b.CompletedDate = &t
	return nil
}

// Fail transitions Processing -> Failed with a reason.
func (b *AreaGenerationBatch) Fail(reason string, now time.Time) error {
	if b.StatusID != BatchStatusProcessing {
		return &ErrInvalidTransition{Entity: "area generation batch", From: batchStatusName(b.StatusID), To: "Failed"}
	}
	b.StatusID = BatchStatusFailed
	b.ErrorMessage = reason
	t := now.UTC()
	b.CompletedDate = &t
	return nil
}

func batchStatusName(id int) string {
	switch id {
	case BatchStatusQueued:
		return "Queued"
	case BatchStatusProcessing:
		return "Processing"
	case BatchStatusCompleted:
		return "Completed"
	case BatchStatusFailed:
		return "Failed"
	}
	return "Unknown"
}

// StagedAdoptableArea is a discovered candidate pending human review:
// Pending -> Approved | Rejected. Duplicate detection is informational; it
// never blocks staging, only informs review. Only Approved rows may be
// promoted into adoptable_areas.
type StagedAdoptableArea struct {
	ID                   uuid.UUID  `json:"id" db:"id"`
	BatchID              uuid.UUID  `json:"batch_id" db:"batch_id"`
	Name                 string     `json:"name" db:"name"`
	Description          string     `json:"description,omitempty" db:"description"`
	AreaType             string     `json:"area_type,omitempty" db:"area_type"`
	Latitude             *float64   `json:"latitude,omitempty" db:"latitude"`
	Longitude            *float64   `json:"longitude,omitempty" db:"longitude"`
	ReviewStatusID       int        `json:"review_status_id" db:"review_status_id"`
	ReviewedByUserID     *uuid.UUID `json:"reviewed_by_user_id,omitempty" db:"reviewed_by_user_id"`
	ReviewedDate         *time.Time `json:"reviewed_date,omitempty" db:"reviewed_date"`
	IsPotentialDuplicate bool       `json:"is_potential_duplicate" db:"is_potential_duplicate"`
	DuplicateOfName      string     `json:"duplicate_of_name,omitempty" db:"duplicate_of_name"`
	PromotedAreaID       *uuid.UUID `json:"promoted_area_id,omitempty" db:"promoted_area_id"`
	AuditFields
}

// Review resolves a pending staged area. Terminal once resolved.
func (s *StagedAdoptableArea) Review(statusID int, reviewerID uuid.UUID, now time.Time) error {
	if reviewerID == uuid.Nil {
		return ErrMissingAuditIdentity
	}
	if statusID != ReviewStatusApproved && statusID != ReviewStatusRejected {
		return NewValidationError("review must resolve to Approved or Rejected")
	}
	if s.ReviewStatusID != ReviewStatusPending {
		return &ErrInvalidTransition{
			Entity: "staged adoptable area",
			From:   reviewStatusName(s.ReviewStatusID),
			To:     reviewStatusName(statusID),
		}
	}
	s.ReviewStatusID = statusID
	s.ReviewedByUserID = &reviewerID
	t := now.UTC()
	s.ReviewedDate = &t
	return nil
}

func reviewStatusName(id int) string {
	switch id {
	case ReviewStatusPending:
		return "Pending"
	case ReviewStatusApproved:
		return "Approved"
	case ReviewStatusRejected:
		return "Rejected"
	}
	return "Unknown"
}

// StagedAreaFilter narrows staged-area scans; zero values mean no constraint.
type StagedAreaFilter struct {
	BatchID        *uuid.UUID
	ReviewStatusID int
	DuplicatesOnly bool
	Limit          uint64
}

// AreaGenerationRepository provides access to batches and staged areas.
type AreaGenerationRepository interface {
	WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error

	CreateBatch(ctx context.Context, batch *AreaGenerationBatch) error
	GetBatchByID(ctx context.Context, id uuid.UUID) (*AreaGenerationBatch, error)
	UpdateBatch(ctx context.Context, batch *AreaGenerationBatch) error
	UpdateBatchTx(ctx context.Context, tx *sql.Tx, batch *AreaGenerationBatch) error

	CreateStagedArea(ctx context.Context, staged *StagedAdoptableArea) error
	CreateStagedAreaTx(ctx context.Context, tx *sql.Tx, staged *StagedAdoptableArea) error
	GetStagedAreaByID(ctx context.Context, id uuid.UUID) (*StagedAdoptableArea, error)
	UpdateStagedArea(ctx context.Context, staged *StagedAdoptableArea) error
	UpdateStagedAreaTx(ctx context.Context, tx *sql.Tx, staged *StagedAdoptableArea) error
	ListStagedAreas(ctx context.Context, filter StagedAreaFilter) ([]*StagedAdoptableArea, error)
}
