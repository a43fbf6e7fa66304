package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -destination mocks/mock_waiver_repository.go -package mocks github.com/cleansweep/cleansweep/internal/domain WaiverRepository

// WaiverVersion is one published revision of a waiver. The text becomes
// immutable the moment any user waiver references it; superseding text means
// creating a new version and deactivating this one. An earlier flat
// "waivers" design was deprecated in favor of this table.
type WaiverVersion struct {
	ID                   uuid.UUID `json:"id" db:"id"`
	Name                 string    `json:"name" db:"name"`
	VersionLabel         string    `json:"version_label" db:"version_label"`
	WaiverText           string    `json:"waiver_text" db:"waiver_text"`
	WaiverDurationTypeID int       `json:"waiver_duration_type_id" db:"waiver_duration_type_id"`
	DurationDays         int       `json:"duration_days" db:"duration_days"`
	EffectiveDate        time.Time `json:"effective_date" db:"effective_date"`
	IsActive             bool      `json:"is_active" db:"is_active"`
	AuditFields
}

// Validate checks caller-controlled fields before a write.
func (w *WaiverVersion) Validate() error {
	if w.Name == "" || w.VersionLabel == "" {
		return NewValidationError("waiver name and version label are required")
	}
	if w.WaiverText == "" {
		return NewValidationError("waiver text is required")
	}
	if w.WaiverDurationTypeID == WaiverDurationDays && w.DurationDays <= 0 {
		return NewValidationError("duration days must be positive for a day-based waiver")
	}
	return nil
}

// ExpiryFrom computes the acceptance expiry from the version's duration
// policy. The result is stored on the user waiver at acceptance time, never
// recomputed at read time. A nil result means the acceptance never expires.
func (w *WaiverVersion) ExpiryFrom(accepted time.Time) *time.Time {
	switch w.WaiverDurationTypeID {
	case WaiverDurationAnnual:
		t := accepted.UTC().AddDate(1, 0, 0)
		return &t
	case WaiverDurationDays:
		t := accepted.UTC().AddDate(0, 0, w.DurationDays)
		return &t
	}
	return nil
}

// UserWaiver records one user's acceptance of one waiver version. The text
// snapshot freezes what was agreed to, so later revisions of the version can
// never retroactively change it. Guardian fields cover minor waivers.
type UserWaiver struct {
	ID                 uuid.UUID  `json:"id" db:"id"`
	UserID             uuid.UUID  `json:"user_id" db:"user_id"`
	WaiverVersionID    uuid.UUID  `json:"waiver_version_id" db:"waiver_version_id"`
	AcceptedDate       time.Time  `json:"accepted_date" db:"accepted_date"`
	ExpiryDate         *time.Time `json:"expiry_date,omitempty" db:"expiry_date"`
	WaiverTextSnapshot string     `json:"waiver_text_snapshot" db:"waiver_text_snapshot"`
	GuardianName       string     `json:"guardian_name,omitempty" db:"guardian_name"`
	GuardianEmail      string     `json:"guardian_email,omitempty" db:"guardian_email"`
	AuditFields
}

// IsExpired reports whether the acceptance has lapsed at the given instant.
func (w *UserWaiver) IsExpired(at time.Time) bool {
	return w.ExpiryDate != nil && at.After(*w.ExpiryDate)
}

// CommunityWaiver requires a waiver version for a partner's events, one row
// per (partner, version) pair.
type CommunityWaiver struct {
	ID              uuid.UUID `json:"id" db:"id"`
	PartnerID       uuid.UUID `json:"partner_id" db:"partner_id"`
	WaiverVersionID uuid.UUID `json:"waiver_version_id" db:"waiver_version_id"`
	AuditFields
}

// WaiverRepository provides access to waiver versions and acceptances.
type WaiverRepository interface {
	CreateVersion(ctx context.Context, version *WaiverVersion) error
	GetVersionByID(ctx context.Context, id uuid.UUID) (*WaiverVersion, error)
	GetActiveVersionByName(ctx context.Context, name string) (*WaiverVersion, error)

	// UpdateVersion persists metadata changes. The repository refuses text
	// changes on a referenced version; see VersionIsReferenced.
	UpdateVersion(ctx context.Context, version *WaiverVersion) error

	// DeactivateVersion flips is_active off, typically when superseded
	DeactivateVersion(ctx context.Context, id uuid.UUID, actorID uuid.UUID, now time.Time) error

	// VersionIsReferenced reports whether any user waiver references the version
	VersionIsReferenced(ctx context.Context, versionID uuid.UUID) (bool, error)

	CreateUserWaiver(ctx context.Context, waiver *UserWaiver) error
	GetUserWaivers(ctx context.Context, userID uuid.UUID) ([]*UserWaiver, error)

	CreateCommunityWaiver(ctx context.Context, waiver *CommunityWaiver) error
	GetCommunityWaivers(ctx context.Context, partnerID uuid.UUID) ([]*CommunityWaiver, error)
}
