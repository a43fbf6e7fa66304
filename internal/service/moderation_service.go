package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/cleansweep/cleansweep/internal/domain"
	"github.com/cleansweep/cleansweep/pkg/logger"
	"github.com/google/uuid"
)

// ModerationService drives the shared photo moderation state machine and the
// append-only log. Every successful transition writes exactly one log row.
type ModerationService struct {
	repo   domain.ModerationRepository
	logger logger.Logger
}

// NewModerationService creates a new moderation service
func NewModerationService(repo domain.ModerationRepository, logger logger.Logger) *ModerationService {
	return &ModerationService{
		repo:   repo,
		logger: logger,
	}
}

// RequestReview transitions a photo from None to InReview.
func (s *ModerationService) RequestReview(ctx context.Context, ref domain.PhotoRef, requesterID uuid.UUID) error {
	return s.apply(ctx, ref, domain.ModerationActionReviewRequested, "", requesterID,
		func(state *domain.ModerationState, now time.Time) error {
			return state.RequestReview(requesterID, now)
		})
}

// ApprovePhoto transitions a photo from InReview to Approved.
func (s *ModerationService) ApprovePhoto(ctx context.Context, ref domain.PhotoRef, moderatorID uuid.UUID) error {
	return s.apply(ctx, ref, domain.ModerationActionApproved, "", moderatorID,
		func(state *domain.ModerationState, now time.Time) error {
			return state.Approve(moderatorID, now)
		})
}

// RejectPhoto transitions a photo from InReview to Rejected. The reason is
// mandatory and is recorded on both the photo and the log row.
func (s *ModerationService) RejectPhoto(ctx context.Context, ref domain.PhotoRef, moderatorID uuid.UUID, reason string) error {
	return s.apply(ctx, ref, domain.ModerationActionRejected, reason, moderatorID,
		func(state *domain.ModerationState, now time.Time) error {
			return state.Reject(moderatorID, reason, now)
		})
}

func (s *ModerationService) apply(ctx context.Context, ref domain.PhotoRef, action, reason string, actorID uuid.UUID, transition func(*domain.ModerationState, time.Time) error) error {
	if err := ref.Validate(); err != nil {
		return err
	}

	state, err := s.repo.GetModerationState(ctx, ref)
	if err != nil {
		return err
	}

	now := time.Now()
	if err := transition(state, now); err != nil {
		return err
	}

	log := &domain.PhotoModerationLog{
		ID:                uuid.New(),
		PhotoRef:          ref,
		Action:            action,
		Reason:            reason,
		PerformedByUserID: actorID,
		PerformedDate:     now.UTC(),
	}

	// The state write and its log row land together or not at all.
	err = s.repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.repo.UpdateModerationStateTx(ctx, tx, ref, state); err != nil {
			return err
		}
		return s.repo.AppendLogTx(ctx, tx, log)
	})
	if err != nil {
		s.logger.WithFields(map[string]interface{}{
			"photo_id":   ref.PhotoID.String(),
			"photo_type": string(ref.PhotoType),
			"action":     action,
		}).Error("Failed to update moderation state")
		return err
	}
	return nil
}

// GetLogs returns a photo's moderation history in chronological order.
func (s *ModerationService) GetLogs(ctx context.Context, ref domain.PhotoRef) ([]*domain.PhotoModerationLog, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}
	return s.repo.GetLogs(ctx, ref)
}

// FlagPhoto records an independent report against a photo. Flags never
// change the photo's own moderation status.
func (s *ModerationService) FlagPhoto(ctx context.Context, ref domain.PhotoRef, flaggerID uuid.UUID, reason string) (*domain.PhotoFlag, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, domain.NewValidationError("flag reason is required")
	}

	flag := &domain.PhotoFlag{
		ID:              uuid.New(),
		PhotoRef:        ref,
		FlaggedByUserID: flaggerID,
		Reason:          reason,
		CreatedDate:     time.Now().UTC(),
	}
	if err := s.repo.CreateFlag(ctx, flag); err != nil {
		return nil, err
	}
	return flag, nil
}

// ResolveFlag closes an open flag with the moderator's resolution.
func (s *ModerationService) ResolveFlag(ctx context.Context, flagID uuid.UUID, resolution string, resolverID uuid.UUID) error {
	return s.repo.ResolveFlag(ctx, flagID, resolution, resolverID, time.Now())
}

// GetOpenFlags lists unresolved flags across all photo types.
func (s *ModerationService) GetOpenFlags(ctx context.Context) ([]*domain.PhotoFlag, error) {
	return s.repo.GetOpenFlags(ctx)
}
