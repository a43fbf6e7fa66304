package domain

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -destination mocks/mock_adoption_repository.go -package mocks github.com/cleansweep/cleansweep/internal/domain AdoptionRepository

// AdoptableArea is a maintained stretch offered for adoption. It belongs to
// one partner and is removed with it.
type AdoptableArea struct {
	ID           uuid.UUID `json:"id" db:"id"`
	PartnerID    uuid.UUID `json:"partner_id" db:"partner_id"`
	Name         string    `json:"name" db:"name"`
	Description  string    `json:"description,omitempty" db:"description"`
	AreaType     string    `json:"area_type,omitempty" db:"area_type"`
	Requirements string    `json:"requirements,omitempty" db:"requirements"`
	MaxTeams     int       `json:"max_teams" db:"max_teams"`
	Latitude     *float64  `json:"latitude,omitempty" db:"latitude"`
	Longitude    *float64  `json:"longitude,omitempty" db:"longitude"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	AuditFields
}

// Validate checks caller-controlled fields before a write.
func (a *AdoptableArea) Validate() error {
	if a.Name == "" {
		return NewValidationError("adoptable area name is required")
	}
	if a.PartnerID == uuid.Nil {
		return NewValidationError("adoptable area must belong to a partner")
	}
	return nil
}

// TeamAdoption is a team's application to adopt an area:
// Pending -> Approved -> Active, or Pending -> Rejected (terminal, reason
// required). EventCount, IsCompliant and LastEventDate are derived from
// team_adoption_events and recomputed on every insert, never set directly.
type TeamAdoption struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	TeamID          uuid.UUID  `json:"team_id" db:"team_id"`
	AdoptableAreaID uuid.UUID  `json:"adoptable_area_id" db:"adoptable_area_id"`
	StatusID        int        `json:"status_id" db:"status_id"`
	RejectionReason string     `json:"rejection_reason,omitempty" db:"rejection_reason"`
	EventCount      int        `json:"event_count" db:"event_count"`
	IsCompliant     bool       `json:"is_compliant" db:"is_compliant"`
	LastEventDate   *time.Time `json:"last_event_date,omitempty" db:"last_event_date"`
	AuditFields
}

// Approve transitions Pending -> Approved.
func (a *TeamAdoption) Approve() error {
	if a.StatusID != TeamAdoptionStatusPending {
		return &ErrInvalidTransition{Entity: "team adoption", From: adoptionStatusName(a.StatusID), To: "Approved"}
	}
	a.StatusID = TeamAdoptionStatusApproved
	return nil
}

// Activate transitions Approved -> Active.
func (a *TeamAdoption) Activate() error {
	if a.StatusID != TeamAdoptionStatusApproved {
		return &ErrInvalidTransition{Entity: "team adoption", From: adoptionStatusName(a.StatusID), To: "Active"}
	}
	a.StatusID = TeamAdoptionStatusActive
	return nil
}

// Reject transitions Pending -> Rejected. A reason is mandatory and the
// state is terminal.
func (a *TeamAdoption) Reject(reason string) error {
	if reason == "" {
		return NewValidationError("rejection reason is required")
	}
	if a.StatusID != TeamAdoptionStatusPending {
		return &ErrInvalidTransition{Entity: "team adoption", From: adoptionStatusName(a.StatusID), To: "Rejected"}
	}
	a.StatusID = TeamAdoptionStatusRejected
	a.RejectionReason = reason
	return nil
}

// RecordEvent folds one more adoption event into the derived compliance
// fields. requiredPerYear is the partner's cadence requirement.
func (a *TeamAdoption) RecordEvent(eventDate time.Time, requiredPerYear int) {
	a.EventCount++
	d := eventDate.UTC()
	if a.LastEventDate == nil || d.After(*a.LastEventDate) {
		a.LastEventDate = &d
	}
	a.IsCompliant = requiredPerYear <= 0 || a.EventCount >= requiredPerYear
}

func adoptionStatusName(id int) string {
	switch id {
	case TeamAdoptionStatusPending:
		return "Pending"
	case TeamAdoptionStatusApproved:
		return "Approved"
	case TeamAdoptionStatusRejected:
		return "Rejected"
	case TeamAdoptionStatusActive:
		return "Active"
	}
	return "Unknown"
}

// TeamAdoptionEvent links an adoption to an event held on the area, one row
// per pair.
type TeamAdoptionEvent struct {
	TeamAdoptionID uuid.UUID `json:"team_adoption_id" db:"team_adoption_id"`
	EventID        uuid.UUID `json:"event_id" db:"event_id"`
	EventDate      time.Time `json:"event_date" db:"event_date"`
	AuditFields
}

// SponsoredAdoption links a sponsor to a team adoption it underwrites.
type SponsoredAdoption struct {
	ID             uuid.UUID `json:"id" db:"id"`
	SponsorID      uuid.UUID `json:"sponsor_id" db:"sponsor_id"`
	TeamAdoptionID uuid.UUID `json:"team_adoption_id" db:"team_adoption_id"`
	AuditFields
}

// AdoptionRepository provides access to adoptable areas and adoptions.
type AdoptionRepository interface {
	WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error

	CreateArea(ctx context.Context, area *AdoptableArea) error
	CreateAreaTx(ctx context.Context, tx *sql.Tx, area *AdoptableArea) error
	GetAreaByID(ctx context.Context, id uuid.UUID) (*AdoptableArea, error)
	ListAreasByPartner(ctx context.Context, partnerID uuid.UUID) ([]*AdoptableArea, error)

	CreateAdoption(ctx context.Context, adoption *TeamAdoption) error
	GetAdoptionByID(ctx context.Context, id uuid.UUID) (*TeamAdoption, error)
	UpdateAdoption(ctx context.Context, adoption *TeamAdoption) error
	UpdateAdoptionTx(ctx context.Context, tx *sql.Tx, adoption *TeamAdoption) error

	AddAdoptionEventTx(ctx context.Context, tx *sql.Tx, event *TeamAdoptionEvent) error
	CountAdoptionEvents(ctx context.Context, adoptionID uuid.UUID) (int, error)

	CreateSponsoredAdoption(ctx context.Context, sponsored *SponsoredAdoption) error
}
