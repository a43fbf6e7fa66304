package domain

import (
	"time"

	"github.com/google/uuid"
)

// SystemUserID is the reserved identity used to bootstrap the users table.
// The system user is its own creator and updater; it is inserted exactly once
// at database initialization and is exempt from the "actor must be resolvable"
// rule that applies to every other write.
var SystemUserID = uuid.Nil

// AuditFields is the audit envelope embedded in every mutable entity.
// All four columns reference the users table and must be set atomically with
// the write that creates or updates the entity.
type AuditFields struct {
	CreatedByUserID     uuid.UUID `json:"created_by_user_id" db:"created_by_user_id"`
	CreatedDate         time.Time `json:"created_date" db:"created_date"`
	LastUpdatedByUserID uuid.UUID `json:"last_updated_by_user_id" db:"last_updated_by_user_id"`
	LastUpdatedDate     time.Time `json:"last_updated_date" db:"last_updated_date"`
}

// StampCreate sets the full envelope for a brand new entity. A zero actor ID
// is a hard error: creation without a resolvable identity must fail before
// the write is attempted, never be defaulted silently.
func (a *AuditFields) StampCreate(actorID uuid.UUID, now time.Time) error {
	if actorID == uuid.Nil {
		return ErrMissingAuditIdentity
	}
	a.CreatedByUserID = actorID
	a.CreatedDate = now.UTC()
	a.LastUpdatedByUserID = actorID
	a.LastUpdatedDate = now.UTC()
	return nil
}

// StampUpdate refreshes the updater half of the envelope. It never touches
// CreatedByUserID or CreatedDate.
func (a *AuditFields) StampUpdate(actorID uuid.UUID, now time.Time) error {
	if actorID == uuid.Nil {
		return ErrMissingAuditIdentity
	}
	a.LastUpdatedByUserID = actorID
	a.LastUpdatedDate = now.UTC()
	return nil
}

// stampSystem fills the envelope with the reserved system identity. Only the
// bootstrap path may use it.
func (a *AuditFields) stampSystem(now time.Time) {
	a.CreatedByUserID = SystemUserID
	a.CreatedDate = now.UTC()
	a.LastUpdatedByUserID = SystemUserID
	a.LastUpdatedDate = now.UTC()
}

// Validate checks the envelope invariants once both halves are set.
func (a *AuditFields) Validate() error {
	if a.CreatedDate.IsZero() || a.LastUpdatedDate.IsZero() {
		return NewValidationError("audit timestamps are not set")
	}
	if a.LastUpdatedDate.Before(a.CreatedDate) {
		return NewValidationError("last updated date precedes created date")
	}
	return nil
}
