package domain

import (
	"context"
	"database/sql"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
)

//go:generate mockgen -destination mocks/mock_outreach_repository.go -package mocks github.com/cleansweep/cleansweep/internal/domain OutreachRepository

// CommunityProspect is a community being courted to become a partner. The
// pipeline stage is a lookup reference; FitScore is a 0-100 estimate of how
// well the community matches the program.
type CommunityProspect struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	City            string    `json:"city,omitempty" db:"city"`
	Region          string    `json:"region,omitempty" db:"region"`
	Country         string    `json:"country,omitempty" db:"country"`
	ContactName     string    `json:"contact_name,omitempty" db:"contact_name"`
	ContactEmail    string    `json:"contact_email,omitempty" db:"contact_email"`
	PipelineStageID int       `json:"pipeline_stage_id" db:"pipeline_stage_id"`
	FitScore        int       `json:"fit_score" db:"fit_score"`
	Notes           string    `json:"notes,omitempty" db:"notes"`
	AuditFields
}

// Validate checks caller-controlled fields before a write.
func (p *CommunityProspect) Validate() error {
	if p.Name == "" {
		return NewValidationError("prospect name is required")
	}
	if p.ContactEmail != "" && !govalidator.IsEmail(p.ContactEmail) {
		return NewValidationError("invalid prospect contact email")
	}
	if p.FitScore < 0 || p.FitScore > 100 {
		return NewValidationError("fit score must be between 0 and 100")
	}
	return nil
}

// ProspectActivity is a logged interaction with a prospect.
type ProspectActivity struct {
	ID           uuid.UUID `json:"id" db:"id"`
	ProspectID   uuid.UUID `json:"prospect_id" db:"prospect_id"`
	ActivityType string    `json:"activity_type" db:"activity_type"`
	Notes        string    `json:"notes,omitempty" db:"notes"`
	ActivityDate time.Time `json:"activity_date" db:"activity_date"`
	AuditFields
}

// ProspectOutreachEmail is one step of the outreach cadence sent to a
// prospect.
type ProspectOutreachEmail struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	ProspectID  uuid.UUID  `json:"prospect_id" db:"prospect_id"`
	CadenceStep int        `json:"cadence_step" db:"cadence_step"`
	Subject     string     `json:"subject" db:"subject"`
	SentDate    *time.Time `json:"sent_date,omitempty" db:"sent_date"`
	AuditFields
}

// EmailInviteBatch aggregates a bulk-invite send. The counters must always
// reconcile: SentCount + FailedCount <= TotalCount.
type EmailInviteBatch struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	TotalCount  int       `json:"total_count" db:"total_count"`
	SentCount   int       `json:"sent_count" db:"sent_count"`
	FailedCount int       `json:"failed_count" db:"failed_count"`
	AuditFields
}

// CheckCounters validates the delivery counter reconciliation invariant.
func (b *EmailInviteBatch) CheckCounters() error {
	if b.SentCount < 0 || b.FailedCount < 0 {
		return NewValidationError("invite batch counters cannot be negative")
	}
	if b.SentCount+b.FailedCount > b.TotalCount {
		return NewValidationError("invite batch sent + failed exceeds total")
	}
	return nil
}

// EmailInvite is one recipient within a batch.
type EmailInvite struct {
	ID       uuid.UUID  `json:"id" db:"id"`
	BatchID  uuid.UUID  `json:"batch_id" db:"batch_id"`
	Email    string     `json:"email" db:"email"`
	Status   string     `json:"status" db:"status"`
	SentDate *time.Time `json:"sent_date,omitempty" db:"sent_date"`
	AuditFields
}

// Email invite statuses.
const (
	EmailInviteStatusPending = "pending"
	EmailInviteStatusSent    = "sent"
	EmailInviteStatusFailed  = "failed"
)

// Validate checks the invite before a write.
func (i *EmailInvite) Validate() error {
	if !govalidator.IsEmail(i.Email) {
		return NewValidationError("invalid invite email address")
	}
	return nil
}

// Newsletter has a Draft -> Scheduled -> Sent lifecycle with delivery and
// engagement counters filled after the send.
type Newsletter struct {
	ID                 uuid.UUID  `json:"id" db:"id"`
	Title              string     `json:"title" db:"title"`
	Body               string     `json:"body,omitempty" db:"body"`
	NewsletterStatusID int        `json:"newsletter_status_id" db:"newsletter_status_id"`
	ScheduledDate      *time.Time `json:"scheduled_date,omitempty" db:"scheduled_date"`
	SentDate           *time.Time `json:"sent_date,omitempty" db:"sent_date"`
	RecipientCount     int        `json:"recipient_count" db:"recipient_count"`
	DeliveredCount     int        `json:"delivered_count" db:"delivered_count"`
	OpenedCount        int        `json:"opened_count" db:"opened_count"`
	AuditFields
}

// Schedule transitions Draft -> Scheduled.
func (n *Newsletter) Schedule(at time.Time) error {
	if n.NewsletterStatusID != NewsletterStatusDraft {
		return &ErrInvalidTransition{Entity: "newsletter", From: newsletterStatusName(n.NewsletterStatusID), To: "Scheduled"}
	}
	n.NewsletterStatusID = NewsletterStatusScheduled
	t := at.UTC()
	n.ScheduledDate = &t
	return nil
}

// MarkSent transitions Scheduled -> Sent with the recipient total.
func (n *Newsletter) MarkSent(at time.Time, recipients int) error {
	if n.NewsletterStatusID != NewsletterStatusScheduled {
		return &ErrInvalidTransition{Entity: "newsletter", From: newsletterStatusName(n.NewsletterStatusID), To: "Sent"}
	}
	n.NewsletterStatusID = NewsletterStatusSent
	t := at.UTC()
	n.SentDate = &t
	n.RecipientCount = recipients
	return nil
}

func newsletterStatusName(id int) string {
	switch id {
	case NewsletterStatusDraft:
		return "Draft"
	case NewsletterStatusScheduled:
		return "Scheduled"
	case NewsletterStatusSent:
		return "Sent"
	}
	return "Unknown"
}

// OutreachRepository provides access to prospects, invites and newsletters.
type OutreachRepository interface {
	WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error

	CreateProspect(ctx context.Context, prospect *CommunityProspect) error
	GetProspectByID(ctx context.Context, id uuid.UUID) (*CommunityProspect, error)
	UpdateProspect(ctx context.Context, prospect *CommunityProspect) error
	ListProspectsByStage(ctx context.Context, stageID int) ([]*CommunityProspect, error)

	AddProspectActivity(ctx context.Context, activity *ProspectActivity) error
	AddProspectOutreachEmail(ctx context.Context, email *ProspectOutreachEmail) error

	CreateInviteBatch(ctx context.Context, batch *EmailInviteBatch) error
	CreateInviteBatchTx(ctx context.Context, tx *sql.Tx, batch *EmailInviteBatch) error
	GetInviteBatchByID(ctx context.Context, id uuid.UUID) (*EmailInviteBatch, error)
	AddInviteTx(ctx context.Context, tx *sql.Tx, invite *EmailInvite) error
	UpdateInviteStatusTx(ctx context.Context, tx *sql.Tx, inviteID uuid.UUID, status string, sent *time.Time) error
	UpdateInviteBatchTx(ctx context.Context, tx *sql.Tx, batch *EmailInviteBatch) error

	CreateNewsletter(ctx context.Context, newsletter *Newsletter) error
	GetNewsletterByID(ctx context.Context, id uuid.UUID) (*Newsletter, error)
	UpdateNewsletter(ctx context.Context, newsletter *Newsletter) error
}
