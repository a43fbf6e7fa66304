package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cleansweep/cleansweep/internal/domain"
	"github.com/google/uuid"
)

type outreachRepository struct {
	db *sql.DB
}

// NewOutreachRepository creates a new PostgreSQL outreach repository
func NewOutreachRepository(db *sql.DB) domain.OutreachRepository {
	return &outreachRepository{db: db}
}

func (r *outreachRepository) WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return withTransaction(ctx, r.db, fn)
}

const prospectColumns = `id, name, city, region, country, contact_name, contact_email,
		pipeline_stage_id, fit_score, notes,
		created_by_user_id, created_date, last_updated_by_user_id, last_updated_date`

func (r *outreachRepository) CreateProspect(ctx context.Context, prospect *domain.CommunityProspect) error {
	query := `
		INSERT INTO community_prospects (` + prospectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.db.ExecContext(ctx, query,
		prospect.ID,
		prospect.Name,
		nullString(prospect.City),
		nullString(prospect.Region),
		nullString(prospect.Country),
		nullString(prospect.ContactName),
		nullString(prospect.ContactEmail),
		prospect.PipelineStageID,
		prospect.FitScore,
		nullString(prospect.Notes),
		prospect.CreatedByUserID,
		prospect.CreatedDate,
		prospect.LastUpdatedByUserID,
		prospect.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to create community prospect: %w", mapConstraintError(err))
	}
	return nil
}

func (r *outreachRepository) GetProspectByID(ctx context.Context, id uuid.UUID) (*domain.CommunityProspect, error) {
	query := `SELECT ` + prospectColumns + ` FROM community_prospects WHERE id = $1`

	prospect, err := scanProspect(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "community prospect", ID: id.String()}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get community prospect: %w", err)
	}
	return prospect, nil
}

func (r *outreachRepository) UpdateProspect(ctx context.Context, prospect *domain.CommunityProspect) error {
	query := `
		UPDATE community_prospects SET
			name = $2, city = $3, region = $4, country = $5, contact_name = $6,
			contact_email = $7, pipeline_stage_id = $8, fit_score = $9, notes = $10,
			last_updated_by_user_id = $11, last_updated_date = $12
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		prospect.ID,
		prospect.Name,
		nullString(prospect.City),
		nullString(prospect.Region),
		nullString(prospect.Country),
		nullString(prospect.ContactName),
		nullString(prospect.ContactEmail),
		prospect.PipelineStageID,
		prospect.FitScore,
		nullString(prospect.Notes),
		prospect.LastUpdatedByUserID,
		prospect.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to update community prospect: %w", mapConstraintError(err))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check prospect update result: %w", err)
	}
	if affected == 0 {
		return &domain.ErrNotFound{Entity: "community prospect", ID: prospect.ID.String()}
	}
	return nil
}

func (r *outreachRepository) ListProspectsByStage(ctx context.Context, stageID int) ([]*domain.CommunityProspect, error) {
	query := `
		SELECT ` + prospectColumns + `
		FROM community_prospects WHERE pipeline_stage_id = $1
		ORDER BY fit_score DESC, name
	`
	rows, err := r.db.QueryContext(ctx, query, stageID)
	if err != nil {
		return nil, fmt.Errorf("failed to list community prospects: %w", err)
	}
	defer rows.Close()

	var prospects []*domain.CommunityProspect
	for rows.Next() {
		prospect, err := scanProspect(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan community prospect: %w", err)
		}
		prospects = append(prospects, prospect)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate community prospects: %w", err)
	}
	return prospects, nil
}

func scanProspect(row rowScanner) (*domain.CommunityProspect, error) {
	var prospect domain.CommunityProspect
	var city, region, country, contactName, contactEmail, notes sql.NullString
	err := row.Scan(
		&prospect.ID,
		&prospect.Name,
		&city,
		&region,
		&country,
		&contactName,
		&contactEmail,
		&prospect.PipelineStageID,
		&prospect.FitScore,
		&notes,
		&prospect.CreatedByUserID,
		&prospect.CreatedDate,
		&prospect.LastUpdatedByUserID,
		&prospect.LastUpdatedDate,
	)
	if err != nil {
		return nil, err
	}
	prospect.City = city.String
	prospect.Region = region.String
	prospect.Country = country.String
	prospect.ContactName = contactName.String
	prospect.ContactEmail = contactEmail.String
	prospect.Notes = notes.String
	return &prospect, nil
}

func (r *outreachRepository) AddProspectActivity(ctx context.Context, activity *domain.ProspectActivity) error {
	query := `
		INSERT INTO prospect_activities (
			id, prospect_id, activity_type, notes, activity_date,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		activity.ID,
		activity.ProspectID,
		activity.ActivityType,
		nullString(activity.Notes),
		activity.ActivityDate,
		activity.CreatedByUserID,
		activity.CreatedDate,
		activity.LastUpdatedByUserID,
		activity.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to add prospect activity: %w", mapConstraintError(err))
	}
	return nil
}

func (r *outreachRepository) AddProspectOutreachEmail(ctx context.Context, email *domain.ProspectOutreachEmail) error {
	query := `
		INSERT INTO prospect_outreach_emails (
			id, prospect_id, cadence_step, subject, sent_date,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		email.ID,
		email.ProspectID,
		email.CadenceStep,
		email.Subject,
		email.SentDate,
		email.CreatedByUserID,
		email.CreatedDate,
		email.LastUpdatedByUserID,
		email.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to add prospect outreach email: %w", mapConstraintError(err))
	}
	return nil
}

const createInviteBatchQuery = `
		INSERT INTO email_invite_batches (
			id, name, total_count, sent_count, failed_count,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

func inviteBatchArgs(batch *domain.EmailInviteBatch) []interface{} {
	return []interface{}{
		batch.ID,
		batch.Name,
		batch.TotalCount,
		batch.SentCount,
		batch.FailedCount,
		batch.CreatedByUserID,
		batch.CreatedDate,
		batch.LastUpdatedByUserID,
		batch.LastUpdatedDate,
	}
}

func (r *outreachRepository) CreateInviteBatch(ctx context.Context, batch *domain.EmailInviteBatch) error {
	_, err := r.db.ExecContext(ctx, createInviteBatchQuery, inviteBatchArgs(batch)...)
	if err != nil {
		return fmt.Errorf("failed to create invite batch: %w", mapConstraintError(err))
	}
	return nil
}

func (r *outreachRepository) CreateInviteBatchTx(ctx context.Context, tx *sql.Tx, batch *domain.EmailInviteBatch) error {
	_, err := tx.ExecContext(ctx, createInviteBatchQuery, inviteBatchArgs(batch)...)
	if err != nil {
		return fmt.Errorf("failed to create invite batch: %w", mapConstraintError(err))
	}
	return nil
}

func (r *outreachRepository) GetInviteBatchByID(ctx context.Context, id uuid.UUID) (*domain.EmailInviteBatch, error) {
	query := `
		SELECT id, name, total_count, sent_count, failed_count,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		FROM email_invite_batches WHERE id = $1
	`
	var batch domain.EmailInviteBatch
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&batch.ID,
		&batch.Name,
		&batch.TotalCount,
		&batch.SentCount,
		&batch.FailedCount,
		&batch.CreatedByUserID,
		&batch.CreatedDate,
		&batch.LastUpdatedByUserID,
		&batch.LastUpdatedDate,
	)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "email invite batch", ID: id.String()}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get invite batch: %w", err)
	}
	return &batch, nil
}

func (r *outreachRepository) AddInviteTx(ctx context.Context, tx *sql.Tx, invite *domain.EmailInvite) error {
	query := `
		INSERT INTO email_invites (
			id, batch_id, email, status, sent_date,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := tx.ExecContext(ctx, query,
		invite.ID,
		invite.BatchID,
		invite.Email,
		invite.Status,
		invite.SentDate,
		invite.CreatedByUserID,
		invite.CreatedDate,
		invite.LastUpdatedByUserID,
		invite.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to add email invite: %w", mapConstraintError(err))
	}
	return nil
}

func (r *outreachRepository) UpdateInviteStatusTx(ctx context.Context, tx *sql.Tx, inviteID uuid.UUID, status string, sent *time.Time) error {
	query := `UPDATE email_invites SET status = $2, sent_date = $3 WHERE id = $1`
	result, err := tx.ExecContext(ctx, query, inviteID, status, sent)
	if err != nil {
		return fmt.Errorf("failed to update invite status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check invite update result: %w", err)
	}
	if affected == 0 {
		return &domain.ErrNotFound{Entity: "email invite", ID: inviteID.String()}
	}
	return nil
}

func (r *outreachRepository) UpdateInviteBatchTx(ctx context.Context, tx *sql.Tx, batch *domain.EmailInviteBatch) error {
	query := `
		UPDATE email_invite_batches SET
			total_count = $2, sent_count = $3, failed_count = $4,
			last_updated_by_user_id = $5, last_updated_date = $6
		WHERE id = $1
	`
	result, err := tx.ExecContext(ctx, query,
		batch.ID,
		batch.TotalCount,
		batch.SentCount,
		batch.FailedCount,
		batch.LastUpdatedByUserID,
		batch.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to update invite batch: %w", mapConstraintError(err))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check batch update result: %w", err)
	}
	if affected == 0 {
		return &domain.ErrNotFound{Entity: "email invite batch", ID: batch.ID.String()}
	}
	return nil
}

func (r *outreachRepository) CreateNewsletter(ctx context.Context, newsletter *domain.Newsletter) error {
	query := `
		INSERT INTO newsletters (
			id, title, body, newsletter_status_id, scheduled_date, sent_date,
			recipient_count, delivered_count, opened_count,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.db.ExecContext(ctx, query,
		newsletter.ID,
		newsletter.Title,
		nullString(newsletter.Body),
		newsletter.NewsletterStatusID,
		newsletter.ScheduledDate,
		newsletter.SentDate,
		newsletter.RecipientCount,
		newsletter.DeliveredCount,
		newsletter.OpenedCount,
		newsletter.CreatedByUserID,
		newsletter.CreatedDate,
		newsletter.LastUpdatedByUserID,
		newsletter.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to create newsletter: %w", mapConstraintError(err))
	}
	return nil
}

func (r *outreachRepository) GetNewsletterByID(ctx context.Context, id uuid.UUID) (*domain.Newsletter, error) {
	query := `
		SELECT id, title, body, newsletter_status_id, scheduled_date, sent_date,
			recipient_count, delivered_count, opened_count,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		FROM newsletters WHERE id = $1
	`
	var newsletter domain.Newsletter
	var body sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&newsletter.ID,
		&newsletter.Title,
		&body,
		&newsletter.NewsletterStatusID,
		&newsletter.ScheduledDate,
		&newsletter.SentDate,
		&newsletter.RecipientCount,
		&newsletter.DeliveredCount,
		&newsletter.OpenedCount,
		&newsletter.CreatedByUserID,
		&newsletter.CreatedDate,
		&newsletter.LastUpdatedByUserID,
		&newsletter.LastUpdatedDate,
	)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "newsletter", ID: id.String()}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get newsletter: %w", err)
	}
	newsletter.Body = body.String
	return &newsletter, nil
}

func (r *outreachRepository) UpdateNewsletter(ctx context.Context, newsletter *domain.Newsletter) error {
	query := `
		UPDATE newsletters SET
			title = $2, body = $3, newsletter_status_id = $4, scheduled_date = $5,
			sent_date = $6, recipient_count = $7, delivered_count = $8, opened_count = $9,
			last_updated_by_user_id = $10, last_updated_date = $11
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		newsletter.ID,
		newsletter.Title,
		nullString(newsletter.Body),
		newsletter.NewsletterStatusID,
		newsletter.ScheduledDate,
		newsletter.SentDate,
		newsletter.RecipientCount,
		newsletter.DeliveredCount,
		newsletter.OpenedCount,
		newsletter.LastUpdatedByUserID,
		newsletter.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to update newsletter: %w", mapConstraintError(err))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check newsletter update result: %w", err)
	}
	if affected == 0 {
		return &domain.ErrNotFound{Entity: "newsletter", ID: newsletter.ID.String()}
	}
	return nil
}
