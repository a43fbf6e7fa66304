package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/cleansweep/cleansweep/internal/domain"
	"github.com/cleansweep/cleansweep/pkg/logger"
	"github.com/google/uuid"
)

// OutreachService runs the partner pipeline: prospects, bulk email invites
// and newsletters.
type OutreachService struct {
	repo   domain.OutreachRepository
	logger logger.Logger
}

// NewOutreachService creates a new outreach service
func NewOutreachService(repo domain.OutreachRepository, logger logger.Logger) *OutreachService {
	return &OutreachService{
		repo:   repo,
		logger: logger,
	}
}

// CreateProspect validates and records a new community prospect.
func (s *OutreachService) CreateProspect(ctx context.Context, prospect *domain.CommunityProspect, actorID uuid.UUID) error {
	if err := prospect.Validate(); err != nil {
		return err
	}
	if prospect.ID == uuid.Nil {
		prospect.ID = uuid.New()
	}
	if prospect.PipelineStageID == 0 {
		prospect.PipelineStageID = domain.PipelineStageIdentified
	}
	if err := prospect.StampCreate(actorID, time.Now()); err != nil {
		return err
	}
	if err := s.repo.CreateProspect(ctx, prospect); err != nil {
		s.logger.WithField("prospect_name", prospect.Name).Error("Failed to create prospect")
		return err
	}
	return nil
}

// AdvanceStage moves a prospect to a new pipeline stage.
func (s *OutreachService) AdvanceStage(ctx context.Context, prospectID uuid.UUID, stageID int, actorID uuid.UUID) (*domain.CommunityProspect, error) {
	prospect, err := s.repo.GetProspectByID(ctx, prospectID)
	if err != nil {
		return nil, err
	}
	prospect.PipelineStageID = stageID
	if err := prospect.StampUpdate(actorID, time.Now()); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateProspect(ctx, prospect); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"prospect_id": prospectID.String(),
			"stage_id":    stageID,
		}).Error("Failed to advance prospect stage")
		return nil, err
	}
	return prospect, nil
}

// LogActivity records an interaction with a prospect.
func (s *OutreachService) LogActivity(ctx context.Context, prospectID uuid.UUID, activityType, notes string, actorID uuid.UUID) (*domain.ProspectActivity, error) {
	now := time.Now()
	activity := &domain.ProspectActivity{
		ID:           uuid.New(),
		ProspectID:   prospectID,
		ActivityType: activityType,
		Notes:        notes,
		ActivityDate: now.UTC(),
	}
	if err := activity.StampCreate(actorID, now); err != nil {
		return nil, err
	}
	if err := s.repo.AddProspectActivity(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// RecordOutreachEmail logs one cadence step sent to a prospect.
func (s *OutreachService) RecordOutreachEmail(ctx context.Context, prospectID uuid.UUID, cadenceStep int, subject string, actorID uuid.UUID) (*domain.ProspectOutreachEmail, error) {
	now := time.Now()
	sent := now.UTC()
	email := &domain.ProspectOutreachEmail{
		ID:          uuid.New(),
		ProspectID:  prospectID,
		CadenceStep: cadenceStep,
		Subject:     subject,
		SentDate:    &sent,
	}
	if err := email.StampCreate(actorID, now); err != nil {
		return nil, err
	}
	if err := s.repo.AddProspectOutreachEmail(ctx, email); err != nil {
		return nil, err
	}
	return email, nil
}

// CreateInviteBatch creates a batch with one pending invite per address. All
// invites land in the same transaction so the batch total always matches the
// invite rows.
func (s *OutreachService) CreateInviteBatch(ctx context.Context, name string, emails []string, actorID uuid.UUID) (*domain.EmailInviteBatch, error) {
	now := time.Now()
	batch := &domain.EmailInviteBatch{
		ID:         uuid.New(),
		Name:       name,
		TotalCount: len(emails),
	}
	if err := batch.StampCreate(actorID, now); err != nil {
		return nil, err
	}

	invites := make([]*domain.EmailInvite, 0, len(emails))
	for _, email := range emails {
		invite := &domain.EmailInvite{
			ID:      uuid.New(),
			BatchID: batch.ID,
			Email:   email,
			Status:  domain.EmailInviteStatusPending,
		}
		if err := invite.Validate(); err != nil {
			return nil, err
		}
		if err := invite.StampCreate(actorID, now); err != nil {
			return nil, err
		}
		invites = append(invites, invite)
	}

	// The batch row and its invites land together or not at all.
	err := s.repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.repo.CreateInviteBatchTx(ctx, tx, batch); err != nil {
			return err
		}
		for _, invite := range invites {
			if err := s.repo.AddInviteTx(ctx, tx, invite); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.WithField("batch_name", name).Error("Failed to create invite batch")
		return nil, err
	}
	return batch, nil
}

// RecordInviteSent marks an invite delivered and bumps the batch sent
// counter. The invite update and the counter move share one transaction so
// the reconciliation invariant cannot be violated by a partial write.
func (s *OutreachService) RecordInviteSent(ctx context.Context, batchID, inviteID, actorID uuid.UUID) error {
	return s.recordInviteOutcome(ctx, batchID, inviteID, actorID, domain.EmailInviteStatusSent)
}

// RecordInviteFailed marks an invite failed and bumps the batch failed
// counter.
func (s *OutreachService) RecordInviteFailed(ctx context.Context, batchID, inviteID, actorID uuid.UUID) error {
	return s.recordInviteOutcome(ctx, batchID, inviteID, actorID, domain.EmailInviteStatusFailed)
}

func (s *OutreachService) recordInviteOutcome(ctx context.Context, batchID, inviteID, actorID uuid.UUID, status string) error {
	batch, err := s.repo.GetInviteBatchByID(ctx, batchID)
	if err != nil {
		return err
	}

	now := time.Now()
	var sent *time.Time
	switch status {
	case domain.EmailInviteStatusSent:
		t := now.UTC()
		sent = &t
		batch.SentCount++
	case domain.EmailInviteStatusFailed:
		batch.FailedCount++
	}
	if err := batch.CheckCounters(); err != nil {
		return err
	}
	if err := batch.StampUpdate(actorID, now); err != nil {
		return err
	}

	err = s.repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.repo.UpdateInviteStatusTx(ctx, tx, inviteID, status, sent); err != nil {
			return err
		}
		return s.repo.UpdateInviteBatchTx(ctx, tx, batch)
	})
	if err != nil {
		s.logger.WithFields(map[string]interface{}{
			"batch_id":  batchID.String(),
			"invite_id": inviteID.String(),
			"status":    status,
		}).Error("Failed to record invite outcome")
		return err
	}
	return nil
}

// CreateNewsletter creates a newsletter in Draft.
func (s *OutreachService) CreateNewsletter(ctx context.Context, title, body string, actorID uuid.UUID) (*domain.Newsletter, error) {
	newsletter := &domain.Newsletter{
		ID:                 uuid.New(),
		Title:              title,
		Body:               body,
		NewsletterStatusID: domain.NewsletterStatusDraft,
	}
	if err := newsletter.StampCreate(actorID, time.Now()); err != nil {
		return nil, err
	}
	if err := s.repo.CreateNewsletter(ctx, newsletter); err != nil {
		return nil, err
	}
	return newsletter, nil
}

// ScheduleNewsletter transitions a draft newsletter to Scheduled.
func (s *OutreachService) ScheduleNewsletter(ctx context.Context, newsletterID uuid.UUID, at time.Time, actorID uuid.UUID) error {
	return s.transitionNewsletter(ctx, newsletterID, actorID, func(n *domain.Newsletter) error {
		return n.Schedule(at)
	})
}

// MarkNewsletterSent transitions a scheduled newsletter to Sent and records
// the recipient total.
func (s *OutreachService) MarkNewsletterSent(ctx context.Context, newsletterID uuid.UUID, recipients int, actorID uuid.UUID) error {
	return s.transitionNewsletter(ctx, newsletterID, actorID, func(n *domain.Newsletter) error {
		return n.MarkSent(time.Now(), recipients)
	})
}

func (s *OutreachService) transitionNewsletter(ctx context.Context, newsletterID, actorID uuid.UUID, apply func(*domain.Newsletter) error) error {
	newsletter, err := s.repo.GetNewsletterByID(ctx, newsletterID)
	if err != nil {
		return err
	}
	if err := apply(newsletter); err != nil {
		return err
	}
	if err := newsletter.StampUpdate(actorID, time.Now()); err != nil {
		return err
	}
	if err := s.repo.UpdateNewsletter(ctx, newsletter); err != nil {
		s.logger.WithField("newsletter_id", newsletterID.String()).Error("Failed to update newsletter")
		return err
	}
	return nil
}
