package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/cleansweep/cleansweep/internal/domain"
	"github.com/cleansweep/cleansweep/pkg/logger"
	"github.com/google/uuid"
)

// TeamService guards team membership workflows. Join requests resolve inside
// one transaction so a request is never marked Approved without its member
// row landing.
type TeamService struct {
	repo   domain.TeamRepository
	logger logger.Logger
}

// NewTeamService creates a new team service
func NewTeamService(repo domain.TeamRepository, logger logger.Logger) *TeamService {
	return &TeamService{
		repo:   repo,
		logger: logger,
	}
}

// CreateTeam validates and persists a new team created by actorID.
func (s *TeamService) CreateTeam(ctx context.Context, team *domain.Team, actorID uuid.UUID) error {
	if err := team.Validate(); err != nil {
		return err
	}
	if team.ID == uuid.Nil {
		team.ID = uuid.New()
	}
	if err := team.StampCreate(actorID, time.Now()); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, team); err != nil {
		s.logger.WithField("team_name", team.Name).Error("Failed to create team")
		return err
	}
	return nil
}

// RequestToJoin opens a pending join request for userID. A second open
// request for the same pair is rejected by the partial unique index on
// pending status; a pair whose earlier request was resolved may reapply.
func (s *TeamService) RequestToJoin(ctx context.Context, teamID, userID uuid.UUID) (*domain.TeamJoinRequest, error) {
	request := &domain.TeamJoinRequest{
		ID:       uuid.New(),
		TeamID:   teamID,
		UserID:   userID,
		StatusID: domain.TeamJoinRequestStatusPending,
	}
	if err := request.StampCreate(userID, time.Now()); err != nil {
		return nil, err
	}
	if err := s.repo.CreateJoinRequest(ctx, request); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"team_id": teamID.String(),
			"user_id": userID.String(),
		}).Warn("Failed to create join request")
		return nil, err
	}
	return request, nil
}

// ApproveJoinRequest resolves a pending request and inserts the member row
// in the same transaction.
func (s *TeamService) ApproveJoinRequest(ctx context.Context, requestID, reviewerID uuid.UUID) error {
	request, err := s.repo.GetJoinRequest(ctx, requestID)
	if err != nil {
		return err
	}

	now := time.Now()
	if err := request.Approve(reviewerID, now); err != nil {
		return err
	}
	if err := request.StampUpdate(reviewerID, now); err != nil {
		return err
	}

	member := &domain.TeamMember{
		TeamID: request.TeamID,
		UserID: request.UserID,
	}
	if err := member.StampCreate(reviewerID, now); err != nil {
		return err
	}

	err = s.repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.repo.UpdateJoinRequestTx(ctx, tx, request); err != nil {
			return err
		}
		return s.repo.AddMemberTx(ctx, tx, member)
	})
	if err != nil {
		s.logger.WithField("request_id", requestID.String()).Error("Failed to approve join request")
		return err
	}
	return nil
}

// RejectJoinRequest resolves a pending request without adding a member.
func (s *TeamService) RejectJoinRequest(ctx context.Context, requestID, reviewerID uuid.UUID) error {
	request, err := s.repo.GetJoinRequest(ctx, requestID)
	if err != nil {
		return err
	}

	now := time.Now()
	if err := request.Reject(reviewerID, now); err != nil {
		return err
	}
	if err := request.StampUpdate(reviewerID, now); err != nil {
		return err
	}

	return s.repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		return s.repo.UpdateJoinRequestTx(ctx, tx, request)
	})
}

// AddTeamEvent links a team to an event it ran.
func (s *TeamService) AddTeamEvent(ctx context.Context, teamID, eventID, actorID uuid.UUID) error {
	teamEvent := &domain.TeamEvent{
		TeamID:  teamID,
		EventID: eventID,
	}
	if err := teamEvent.StampCreate(actorID, time.Now()); err != nil {
		return err
	}
	return s.repo.AddTeamEvent(ctx, teamEvent)
}
