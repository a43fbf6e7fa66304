package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -destination mocks/mock_moderation_repository.go -package mocks github.com/cleansweep/cleansweep/internal/domain ModerationRepository

// PhotoType discriminates the four photo-bearing tables for polymorphic
// references. No single relational foreign key can span them, so flags and
// moderation logs carry (photo_id, photo_type) and the discriminator is
// validated here instead.
type PhotoType string

const (
	PhotoTypeEvent   PhotoType = "event"
	PhotoTypeTeam    PhotoType = "team"
	PhotoTypeLitter  PhotoType = "litter"
	PhotoTypePartner PhotoType = "partner"
)

// IsValid reports whether the discriminator names a known photo table.
func (t PhotoType) IsValid() bool {
	switch t {
	case PhotoTypeEvent, PhotoTypeTeam, PhotoTypeLitter, PhotoTypePartner:
		return true
	}
	return false
}

// PhotoRef is the tagged union used wherever a photo is referenced
// polymorphically.
type PhotoRef struct {
	PhotoID   uuid.UUID `json:"photo_id" db:"photo_id"`
	PhotoType PhotoType `json:"photo_type" db:"photo_type"`
}

// Validate rejects unknown discriminators before any write.
func (r PhotoRef) Validate() error {
	if r.PhotoID == uuid.Nil {
		return NewValidationError("photo id is required")
	}
	if !r.PhotoType.IsValid() {
		return NewValidationError("unknown photo type: " + string(r.PhotoType))
	}
	return nil
}

// ModerationState is the sub-state machine embedded in all four photo
// tables: None -> InReview -> Approved | Rejected. Entering review requires
// the requester identity; leaving it requires the moderator identity and, on
// rejection, a reason.
type ModerationState struct {
	ModerationStatusID      int        `json:"moderation_status_id" db:"moderation_status_id"`
	InReview                bool       `json:"in_review" db:"in_review"`
	ReviewRequestedByUserID *uuid.UUID `json:"review_requested_by_user_id,omitempty" db:"review_requested_by_user_id"`
	ReviewRequestedDate     *time.Time `json:"review_requested_date,omitempty" db:"review_requested_date"`
	ModeratedByUserID       *uuid.UUID `json:"moderated_by_user_id,omitempty" db:"moderated_by_user_id"`
	ModeratedDate           *time.Time `json:"moderated_date,omitempty" db:"moderated_date"`
	ModerationReason        string     `json:"moderation_reason,omitempty" db:"moderation_reason"`
}

// RequestReview transitions None -> InReview.
func (m *ModerationState) RequestReview(requesterID uuid.UUID, now time.Time) error {
	if requesterID == uuid.Nil {
		return ErrMissingAuditIdentity
	}
	if m.ModerationStatusID != ModerationStatusNone {
		return &ErrInvalidTransition{Entity: "photo", From: moderationStatusName(m.ModerationStatusID), To: "InReview"}
	}
	m.ModerationStatusID = ModerationStatusInReview
	m.InReview = true
	m.ReviewRequestedByUserID = &requesterID
	t := now.UTC()
	m.ReviewRequestedDate = &t
	return nil
}

// Approve transitions InReview -> Approved.
func (m *ModerationState) Approve(moderatorID uuid.UUID, now time.Time) error {
	if moderatorID == uuid.Nil {
		return ErrMissingAuditIdentity
	}
	if m.ModerationStatusID != ModerationStatusInReview {
		return &ErrInvalidTransition{Entity: "photo", From: moderationStatusName(m.ModerationStatusID), To: "Approved"}
	}
	m.ModerationStatusID = ModerationStatusApproved
	m.InReview = false
	m.ModeratedByUserID = &moderatorID
	t := now.UTC()
	m.ModeratedDate = &t
	return nil
}

// Reject transitions InReview -> Rejected. A reason is mandatory.
func (m *ModerationState) Reject(moderatorID uuid.UUID, reason string, now time.Time) error {
	if moderatorID == uuid.Nil {
		return ErrMissingAuditIdentity
	}
	if reason == "" {
		return NewValidationError("moderation reason is required on rejection")
	}
	if m.ModerationStatusID != ModerationStatusInReview {
		return &ErrInvalidTransition{Entity: "photo", From: moderationStatusName(m.ModerationStatusID), To: "Rejected"}
	}
	m.ModerationStatusID = ModerationStatusRejected
	m.InReview = false
	m.ModeratedByUserID = &moderatorID
	t := now.UTC()
	m.ModeratedDate = &t
	m.ModerationReason = reason
	return nil
}

func moderationStatusName(id int) string {
	switch id {
	case ModerationStatusNone:
		return "None"
	case ModerationStatusInReview:
		return "InReview"
	case ModerationStatusApproved:
		return "Approved"
	case ModerationStatusRejected:
		return "Rejected"
	}
	return "Unknown"
}

// PhotoFlag is an independent report against a photo. Flags never transition
// the photo's own moderation status; a moderator resolves them separately.
type PhotoFlag struct {
	ID uuid.UUID `json:"id" db:"id"`
	PhotoRef
	FlaggedByUserID  uuid.UUID  `json:"flagged_by_user_id" db:"flagged_by_user_id"`
	Reason           string     `json:"reason" db:"reason"`
	Resolution       string     `json:"resolution,omitempty" db:"resolution"`
	ResolvedByUserID *uuid.UUID `json:"resolved_by_user_id,omitempty" db:"resolved_by_user_id"`
	ResolvedDate     *time.Time `json:"resolved_date,omitempty" db:"resolved_date"`
	CreatedDate      time.Time  `json:"created_date" db:"created_date"`
}

// PhotoModerationLog is the append-only audit trail of moderator actions.
// Rows are never mutated or deleted.
type PhotoModerationLog struct {
	ID uuid.UUID `json:"id" db:"id"`
	PhotoRef
	Action            string    `json:"action" db:"action"`
	Reason            string    `json:"reason,omitempty" db:"reason"`
	PerformedByUserID uuid.UUID `json:"performed_by_user_id" db:"performed_by_user_id"`
	PerformedDate     time.Time `json:"performed_date" db:"performed_date"`
}

// Moderation log actions.
const (
	ModerationActionReviewRequested = "review_requested"
	ModerationActionApproved        = "approved"
	ModerationActionRejected        = "rejected"
)

// ModerationRepository spans the four photo tables plus the shared flag and
// log tables.
type ModerationRepository interface {
	WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error

	// GetModerationState loads the embedded sub-state from the table the
	// discriminator names
	GetModerationState(ctx context.Context, ref PhotoRef) (*ModerationState, error)

	// UpdateModerationState writes the sub-state back to the owning table
	UpdateModerationState(ctx context.Context, ref PhotoRef, state *ModerationState) error
	UpdateModerationStateTx(ctx context.Context, tx *sql.Tx, ref PhotoRef, state *ModerationState) error

	// AppendLog adds an append-only moderation log row
	AppendLog(ctx context.Context, log *PhotoModerationLog) error
	AppendLogTx(ctx context.Context, tx *sql.Tx, log *PhotoModerationLog) error

	// GetLogs returns all log rows for a photo in chronological order
	GetLogs(ctx context.Context, ref PhotoRef) ([]*PhotoModerationLog, error)

	// CreateFlag records an independent report against a photo
	CreateFlag(ctx context.Context, flag *PhotoFlag) error

	// ResolveFlag records the moderator's resolution on an open flag
	ResolveFlag(ctx context.Context, flagID uuid.UUID, resolution string, resolverID uuid.UUID, now time.Time) error

	// GetOpenFlags lists unresolved flags across all photo types
	GetOpenFlags(ctx context.Context) ([]*PhotoFlag, error)
}
