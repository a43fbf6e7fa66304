package service

import (
	"context"
	"time"

	"github.com/cleansweep/cleansweep/internal/domain"
	"github.com/cleansweep/cleansweep/pkg/logger"
	"github.com/google/uuid"
)

// WaiverService manages waiver publication and acceptance. Text on a
// referenced version never changes: superseding publishes a new version and
// deactivates the old one, and every acceptance snapshots the text it agreed
// to.
type WaiverService struct {
	repo   domain.WaiverRepository
	logger logger.Logger
}

// NewWaiverService creates a new waiver service
func NewWaiverService(repo domain.WaiverRepository, logger logger.Logger) *WaiverService {
	return &WaiverService{
		repo:   repo,
		logger: logger,
	}
}

// CreateVersion validates and publishes a new waiver version.
func (s *WaiverService) CreateVersion(ctx context.Context, version *domain.WaiverVersion, actorID uuid.UUID) error {
	if err := version.Validate(); err != nil {
		return err
	}
	if version.ID == uuid.Nil {
		version.ID = uuid.New()
	}
	if err := version.StampCreate(actorID, time.Now()); err != nil {
		return err
	}
	if err := s.repo.CreateVersion(ctx, version); err != nil {
		s.logger.WithField("waiver_name", version.Name).Error("Failed to create waiver version")
		return err
	}
	return nil
}

// SupersedeVersion publishes a replacement for the currently active version
// of the named waiver and deactivates the old one. Existing acceptances keep
// their snapshots and expiry untouched.
func (s *WaiverService) SupersedeVersion(ctx context.Context, replacement *domain.WaiverVersion, actorID uuid.UUID) error {
	current, err := s.repo.GetActiveVersionByName(ctx, replacement.Name)
	if err != nil {
		return err
	}

	replacement.IsActive = true
	if err := s.CreateVersion(ctx, replacement, actorID); err != nil {
		return err
	}

	if err := s.repo.DeactivateVersion(ctx, current.ID, actorID, time.Now()); err != nil {
		s.logger.WithField("version_id", current.ID.String()).Error("Failed to deactivate superseded waiver version")
		return err
	}
	return nil
}

// UpdateVersion updates a waiver version's metadata. The repository rejects
// text changes on versions already referenced by an acceptance; callers
// should supersede instead.
func (s *WaiverService) UpdateVersion(ctx context.Context, version *domain.WaiverVersion, actorID uuid.UUID) error {
	if err := version.Validate(); err != nil {
		return err
	}
	if err := version.StampUpdate(actorID, time.Now()); err != nil {
		return err
	}
	if err := s.repo.UpdateVersion(ctx, version); err != nil {
		s.logger.WithField("version_id", version.ID.String()).Warn("Failed to update waiver version")
		return err
	}
	return nil
}

// AcceptWaiver records a user accepting the active version of the named
// waiver. The version's text is snapshotted and the expiry is computed once
// from its duration policy. Guardian fields are required together or not at
// all.
func (s *WaiverService) AcceptWaiver(ctx context.Context, userID uuid.UUID, waiverName, guardianName, guardianEmail string) (*domain.UserWaiver, error) {
	if (guardianName == "") != (guardianEmail == "") {
		return nil, domain.NewValidationError("guardian name and email must be provided together")
	}

	version, err := s.repo.GetActiveVersionByName(ctx, waiverName)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	waiver := &domain.UserWaiver{
		ID:                 uuid.New(),
		UserID:             userID,
		WaiverVersionID:    version.ID,
		AcceptedDate:       now.UTC(),
		ExpiryDate:         version.ExpiryFrom(now),
		WaiverTextSnapshot: version.WaiverText,
		GuardianName:       guardianName,
		GuardianEmail:      guardianEmail,
	}
	if err := waiver.StampCreate(userID, now); err != nil {
		return nil, err
	}

	if err := s.repo.CreateUserWaiver(ctx, waiver); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"user_id":     userID.String(),
			"waiver_name": waiverName,
		}).Error("Failed to record waiver acceptance")
		return nil, err
	}
	return waiver, nil
}

// HasValidWaiver reports whether the user holds an unexpired acceptance of
// any version of the named waiver.
func (s *WaiverService) HasValidWaiver(ctx context.Context, userID uuid.UUID, at time.Time) (bool, error) {
	waivers, err := s.repo.GetUserWaivers(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, waiver := range waivers {
		if !waiver.IsExpired(at) {
			return true, nil
		}
	}
	return false, nil
}

// RequireCommunityWaiver attaches a waiver version requirement to a partner.
func (s *WaiverService) RequireCommunityWaiver(ctx context.Context, partnerID, versionID, actorID uuid.UUID) error {
	waiver := &domain.CommunityWaiver{
		ID:              uuid.New(),
		PartnerID:       partnerID,
		WaiverVersionID: versionID,
	}
	if err := waiver.StampCreate(actorID, time.Now()); err != nil {
		return err
	}
	return s.repo.CreateCommunityWaiver(ctx, waiver)
}
