package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/cleansweep/cleansweep/internal/domain"
	"github.com/cleansweep/cleansweep/pkg/logger"
	"github.com/google/uuid"
)

// AreaGenerationService runs the discovery pipeline that turns map data into
// adoptable areas: batch lifecycle, human review of staged candidates, and
// promotion of approved candidates. Batch counters are re-validated before
// every write that moves them.
type AreaGenerationService struct {
	repo         domain.AreaGenerationRepository
	adoptionRepo domain.AdoptionRepository
	logger       logger.Logger
}

// NewAreaGenerationService creates a new area generation service
func NewAreaGenerationService(repo domain.AreaGenerationRepository, adoptionRepo domain.AdoptionRepository, logger logger.Logger) *AreaGenerationService {
	return &AreaGenerationService{
		repo:         repo,
		adoptionRepo: adoptionRepo,
		logger:       logger,
	}
}

// CreateBatch queues a new discovery run for a partner.
func (s *AreaGenerationService) CreateBatch(ctx context.Context, partnerID, actorID uuid.UUID, sourceName string) (*domain.AreaGenerationBatch, error) {
	batch := &domain.AreaGenerationBatch{
		ID:         uuid.New(),
		PartnerID:  partnerID,
		StatusID:   domain.BatchStatusQueued,
		SourceName: sourceName,
	}
	if err := batch.StampCreate(actorID, time.Now()); err != nil {
		return nil, err
	}
	if err := s.repo.CreateBatch(ctx, batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// StartBatch transitions a queued batch to Processing.
func (s *AreaGenerationService) StartBatch(ctx context.Context, batchID, actorID uuid.UUID) error {
	return s.transitionBatch(ctx, batchID, actorID, func(b *domain.AreaGenerationBatch, now time.Time) error {
		return b.Start(now)
	})
}

// CompleteBatch transitions a processing batch to Completed after the
// counter chain is checked.
func (s *AreaGenerationService) CompleteBatch(ctx context.Context, batchID, actorID uuid.UUID) error {
	return s.transitionBatch(ctx, batchID, actorID, func(b *domain.AreaGenerationBatch, now time.Time) error {
		return b.Complete(now)
	})
}

// FailBatch transitions a processing batch to Failed with the reason.
func (s *AreaGenerationService) FailBatch(ctx context.Context, batchID, actorID uuid.UUID, reason string) error {
	return s.transitionBatch(ctx, batchID, actorID, func(b *domain.AreaGenerationBatch, now time.Time) error {
		return b.Fail(reason, now)
	})
}

func (s *AreaGenerationService) transitionBatch(ctx context.Context, batchID, actorID uuid.UUID, apply func(*domain.AreaGenerationBatch, time.Time) error) error {
	batch, err := s.repo.GetBatchByID(ctx, batchID)
	if err != nil {
		return err
	}
	now := time.Now()
	if err := apply(batch, now); err != nil {
		return err
	}
	if err := batch.StampUpdate(actorID, now); err != nil {
		return err
	}
	return s.repo.UpdateBatch(ctx, batch)
}

// StageArea adds a discovered candidate to a processing batch and bumps its
// discovered counter. Duplicate detection is informational only.
func (s *AreaGenerationService) StageArea(ctx context.Context, staged *domain.StagedAdoptableArea, actorID uuid.UUID) error {
	batch, err := s.repo.GetBatchByID(ctx, staged.BatchID)
	if err != nil {
		return err
	}
	if batch.StatusID != domain.BatchStatusProcessing {
		return &domain.ErrInvalidTransition{Entity: "area generation batch", From: "not processing", To: "StageArea"}
	}

	now := time.Now()
	if staged.ID == uuid.Nil {
		staged.ID = uuid.New()
	}
	staged.ReviewStatusID = domain.ReviewStatusPending
	if err := staged.StampCreate(actorID, now); err != nil {
		return err
	}

	batch.DiscoveredCount++
	if err := batch.CheckCounters(); err != nil {
		return err
	}
	if err := batch.StampUpdate(actorID, now); err != nil {
		return err
	}

	err = s.repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.repo.CreateStagedAreaTx(ctx, tx, staged); err != nil {
			return err
		}
		return s.repo.UpdateBatchTx(ctx, tx, batch)
	})
	if err != nil {
		s.logger.WithField("batch_id", staged.BatchID.String()).Error("Failed to stage area")
		return err
	}
	return nil
}

// ReviewStagedArea resolves a pending candidate and bumps the batch's
// processed (and, on approval, approved) counters in the same transaction.
func (s *AreaGenerationService) ReviewStagedArea(ctx context.Context, stagedID uuid.UUID, statusID int, reviewerID uuid.UUID) error {
	staged, err := s.repo.GetStagedAreaByID(ctx, stagedID)
	if err != nil {
		return err
	}
	batch, err := s.repo.GetBatchByID(ctx, staged.BatchID)
	if err != nil {
		return err
	}

	now := time.Now()
	if err := staged.Review(statusID, reviewerID, now); err != nil {
		return err
	}
	if err := staged.StampUpdate(reviewerID, now); err != nil {
		return err
	}

	batch.ProcessedCount++
	if statusID == domain.ReviewStatusApproved {
		batch.ApprovedCount++
	}
	if err := batch.CheckCounters(); err != nil {
		return err
	}
	if err := batch.StampUpdate(reviewerID, now); err != nil {
		return err
	}

	err = s.repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.repo.UpdateStagedAreaTx(ctx, tx, staged); err != nil {
			return err
		}
		return s.repo.UpdateBatchTx(ctx, tx, batch)
	})
	if err != nil {
		s.logger.WithField("staged_area_id", stagedID.String()).Error("Failed to review staged area")
		return err
	}
	return nil
}

// PromoteStagedArea turns an approved candidate into a live adoptable area.
// The area insert, the staged pointer, and the batch created counter move in
// one transaction; anything but an Approved candidate is refused.
func (s *AreaGenerationService) PromoteStagedArea(ctx context.Context, stagedID, actorID uuid.UUID) (*domain.AdoptableArea, error) {
	staged, err := s.repo.GetStagedAreaByID(ctx, stagedID)
	if err != nil {
		return nil, err
	}
	if staged.ReviewStatusID != domain.ReviewStatusApproved {
		return nil, &domain.ErrInvalidTransition{
			Entity: "staged adoptable area",
			From:   "unapproved",
			To:     "Promoted",
		}
	}
	if staged.PromotedAreaID != nil {
		return nil, domain.NewValidationError("staged area is already promoted")
	}

	batch, err := s.repo.GetBatchByID(ctx, staged.BatchID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	area := &domain.AdoptableArea{
		ID:          uuid.New(),
		PartnerID:   batch.PartnerID,
		Name:        staged.Name,
		Description: staged.Description,
		AreaType:    staged.AreaType,
		Latitude:    staged.Latitude,
		Longitude:   staged.Longitude,
		MaxTeams:    1,
		IsActive:    true,
	}
	if err := area.Validate(); err != nil {
		return nil, err
	}
	if err := area.StampCreate(actorID, now); err != nil {
		return nil, err
	}

	staged.PromotedAreaID = &area.ID
	if err := staged.StampUpdate(actorID, now); err != nil {
		return nil, err
	}

	batch.CreatedCount++
	if err := batch.CheckCounters(); err != nil {
		return nil, err
	}
	if err := batch.StampUpdate(actorID, now); err != nil {
		return nil, err
	}

	err = s.repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.adoptionRepo.CreateAreaTx(ctx, tx, area); err != nil {
			return err
		}
		if err := s.repo.UpdateStagedAreaTx(ctx, tx, staged); err != nil {
			return err
		}
		return s.repo.UpdateBatchTx(ctx, tx, batch)
	})
	if err != nil {
		s.logger.WithField("staged_area_id", stagedID.String()).Error("Failed to promote staged area")
		return nil, err
	}
	return area, nil
}
