package domain

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -destination mocks/mock_team_repository.go -package mocks github.com/cleansweep/cleansweep/internal/domain TeamRepository

// Team is a volunteer group with a globally unique name.
type Team struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description,omitempty" db:"description"`
	IsPublic    bool      `json:"is_public" db:"is_public"`
	AuditFields
}

// Validate checks caller-controlled fields before a write.
func (t *Team) Validate() error {
	if t.Name == "" {
		return NewValidationError("team name is required")
	}
	return nil
}

// TeamMember joins a user to a team, one row per pair.
type TeamMember struct {
	TeamID     uuid.UUID `json:"team_id" db:"team_id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	IsTeamLead bool      `json:"is_team_lead" db:"is_team_lead"`
	AuditFields
}

// TeamJoinRequest is the Pending -> Approved | Rejected workflow row.
// Uniqueness is scoped to outstanding requests: a partial unique index on
// (team_id, user_id) WHERE status = Pending blocks a duplicate while one is
// open but lets a resolved pair reapply later.
type TeamJoinRequest struct {
	ID               uuid.UUID  `json:"id" db:"id"`
	TeamID           uuid.UUID  `json:"team_id" db:"team_id"`
	UserID           uuid.UUID  `json:"user_id" db:"user_id"`
	StatusID         int        `json:"status_id" db:"status_id"`
	ReviewedByUserID *uuid.UUID `json:"reviewed_by_user_id,omitempty" db:"reviewed_by_user_id"`
	ReviewedDate     *time.Time `json:"reviewed_date,omitempty" db:"reviewed_date"`
	AuditFields
}

// Approve resolves a pending request. Terminal once resolved.
func (r *TeamJoinRequest) Approve(reviewerID uuid.UUID, now time.Time) error {
	return r.resolve(TeamJoinRequestStatusApproved, reviewerID, now)
}

// Reject resolves a pending request. Terminal once resolved.
func (r *TeamJoinRequest) Reject(reviewerID uuid.UUID, now time.Time) error {
	return r.resolve(TeamJoinRequestStatusRejected, reviewerID, now)
}

func (r *TeamJoinRequest) resolve(statusID int, reviewerID uuid.UUID, now time.Time) error {
	if reviewerID == uuid.Nil {
		return ErrMissingAuditIdentity
	}
	if r.StatusID != TeamJoinRequestStatusPending {
		return &ErrInvalidTransition{
			Entity: "team join request",
			From:   joinRequestStatusName(r.StatusID),
			To:     joinRequestStatusName(statusID),
		}
	}
	r.StatusID = statusID
	r.ReviewedByUserID = &reviewerID
	t := now.UTC()
	r.ReviewedDate = &t
	return nil
}

func joinRequestStatusName(id int) string {
	switch id {
	case TeamJoinRequestStatusPending:
		return "Pending"
	case TeamJoinRequestStatusApproved:
		return "Approved"
	case TeamJoinRequestStatusRejected:
		return "Rejected"
	}
	return "Unknown"
}

// TeamEvent links a team to an event it ran, one row per pair.
type TeamEvent struct {
	TeamID  uuid.UUID `json:"team_id" db:"team_id"`
	EventID uuid.UUID `json:"event_id" db:"event_id"`
	AuditFields
}

// TeamPhoto carries the shared moderation sub-state.
type TeamPhoto struct {
	ID       uuid.UUID `json:"id" db:"id"`
	TeamID   uuid.UUID `json:"team_id" db:"team_id"`
	ImageURL string    `json:"image_url" db:"image_url"`
	Caption  string    `json:"caption,omitempty" db:"caption"`
	ModerationState
	AuditFields
}

// TeamRepository provides access to teams and their relationship tables.
type TeamRepository interface {
	WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error

	Create(ctx context.Context, team *Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*Team, error)
	GetByName(ctx context.Context, name string) (*Team, error)
	Update(ctx context.Context, team *Team) error

	AddMember(ctx context.Context, member *TeamMember) error
	AddMemberTx(ctx context.Context, tx *sql.Tx, member *TeamMember) error
	GetMembers(ctx context.Context, teamID uuid.UUID) ([]*TeamMember, error)

	CreateJoinRequest(ctx context.Context, request *TeamJoinRequest) error
	GetJoinRequest(ctx context.Context, id uuid.UUID) (*TeamJoinRequest, error)
	UpdateJoinRequestTx(ctx context.Context, tx *sql.Tx, request *TeamJoinRequest) error
	GetPendingJoinRequests(ctx context.Context, teamID uuid.UUID) ([]*TeamJoinRequest, error)

	AddTeamEvent(ctx context.Context, teamEvent *TeamEvent) error
}
