package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/cleansweep/cleansweep/internal/domain"
	"github.com/cleansweep/cleansweep/pkg/logger"
	"github.com/google/uuid"
)

// AdoptionService runs the adoption lifecycle. The compliance fields on an
// adoption are derived from its event rows and only change here, inside the
// same transaction as the event insert.
type AdoptionService struct {
	repo   domain.AdoptionRepository
	logger logger.Logger
}

// NewAdoptionService creates a new adoption service
func NewAdoptionService(repo domain.AdoptionRepository, logger logger.Logger) *AdoptionService {
	return &AdoptionService{
		repo:   repo,
		logger: logger,
	}
}

// Apply opens a pending adoption application for a team on an area.
func (s *AdoptionService) Apply(ctx context.Context, teamID, areaID, actorID uuid.UUID) (*domain.TeamAdoption, error) {
	adoption := &domain.TeamAdoption{
		ID:              uuid.New(),
		TeamID:          teamID,
		AdoptableAreaID: areaID,
		StatusID:        domain.TeamAdoptionStatusPending,
	}
	if err := adoption.StampCreate(actorID, time.Now()); err != nil {
		return nil, err
	}
	if err := s.repo.CreateAdoption(ctx, adoption); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"team_id": teamID.String(),
			"area_id": areaID.String(),
		}).Error("Failed to create adoption application")
		return nil, err
	}
	return adoption, nil
}

// Approve transitions a pending adoption to Approved.
func (s *AdoptionService) Approve(ctx context.Context, adoptionID, actorID uuid.UUID) error {
	return s.transition(ctx, adoptionID, actorID, func(a *domain.TeamAdoption) error {
		return a.Approve()
	})
}

// Activate transitions an approved adoption to Active.
func (s *AdoptionService) Activate(ctx context.Context, adoptionID, actorID uuid.UUID) error {
	return s.transition(ctx, adoptionID, actorID, func(a *domain.TeamAdoption) error {
		return a.Activate()
	})
}

// Reject terminally rejects a pending adoption. The reason is mandatory.
func (s *AdoptionService) Reject(ctx context.Context, adoptionID, actorID uuid.UUID, reason string) error {
	return s.transition(ctx, adoptionID, actorID, func(a *domain.TeamAdoption) error {
		return a.Reject(reason)
	})
}

func (s *AdoptionService) transition(ctx context.Context, adoptionID, actorID uuid.UUID, apply func(*domain.TeamAdoption) error) error {
	adoption, err := s.repo.GetAdoptionByID(ctx, adoptionID)
	if err != nil {
		return err
	}
	if err := apply(adoption); err != nil {
		return err
	}
	if err := adoption.StampUpdate(actorID, time.Now()); err != nil {
		return err
	}
	return s.repo.UpdateAdoption(ctx, adoption)
}

// RecordAdoptionEvent links a cleanup event to an active adoption and folds
// it into the derived compliance counters, all in one transaction.
// requiredPerYear is the partner's cadence requirement for the area.
func (s *AdoptionService) RecordAdoptionEvent(ctx context.Context, adoptionID, eventID, actorID uuid.UUID, eventDate time.Time, requiredPerYear int) error {
	adoption, err := s.repo.GetAdoptionByID(ctx, adoptionID)
	if err != nil {
		return err
	}
	if adoption.StatusID != domain.TeamAdoptionStatusActive {
		return &domain.ErrInvalidTransition{Entity: "team adoption", From: "inactive", To: "RecordEvent"}
	}

	now := time.Now()
	adoptionEvent := &domain.TeamAdoptionEvent{
		TeamAdoptionID: adoptionID,
		EventID:        eventID,
		EventDate:      eventDate,
	}
	if err := adoptionEvent.StampCreate(actorID, now); err != nil {
		return err
	}

	adoption.RecordEvent(eventDate, requiredPerYear)
	if err := adoption.StampUpdate(actorID, now); err != nil {
		return err
	}

	err = s.repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.repo.AddAdoptionEventTx(ctx, tx, adoptionEvent); err != nil {
			return err
		}
		return s.repo.UpdateAdoptionTx(ctx, tx, adoption)
	})
	if err != nil {
		s.logger.WithField("adoption_id", adoptionID.String()).Error("Failed to record adoption event")
		return err
	}
	return nil
}

// Sponsor records a sponsor underwriting an adoption.
func (s *AdoptionService) Sponsor(ctx context.Context, sponsorID, adoptionID, actorID uuid.UUID) error {
	sponsored := &domain.SponsoredAdoption{
		ID:             uuid.New(),
		SponsorID:      sponsorID,
		TeamAdoptionID: adoptionID,
	}
	if err := sponsored.StampCreate(actorID, time.Now()); err != nil {
		return err
	}
	return s.repo.CreateSponsoredAdoption(ctx, sponsored)
}
