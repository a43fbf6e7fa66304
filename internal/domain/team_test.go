package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleansweep/cleansweep/internal/domain"
)

func TestTeam_Validate(t *testing.T) {
	tests := []struct {
		name    string
		team    domain.Team
		wantErr bool
	}{
		{
			name: "valid team",
			team: domain.Team{ID: uuid.New(), Name: "River Rats", IsPublic: true},
		},
		{
			name:    "missing name",
			team:    domain.Team{ID: uuid.New()},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.team.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTeamJoinRequest_Resolve(t *testing.T) {
	reviewerID := uuid.New()
	now := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)

	pending := func() *domain.TeamJoinRequest {
		return &domain.TeamJoinRequest{
			ID:       uuid.New(),
			TeamID:   uuid.New(),
			UserID:   uuid.New(),
			StatusID: domain.TeamJoinRequestStatusPending,
		}
	}

	t.Run("approve records reviewer and date", func(t *testing.T) {
		request := pending()
		require.NoError(t, request.Approve(reviewerID, now))

		assert.Equal(t, domain.TeamJoinRequestStatusApproved, request.StatusID)
		require.NotNil(t, request.ReviewedByUserID)
		assert.Equal(t, reviewerID, *request.ReviewedByUserID)
		require.NotNil(t, request.ReviewedDate)
		assert.Equal(t, now, *request.ReviewedDate)
	})

	t.Run("reject records reviewer and date", func(t *testing.T) {
		request := pending()
		require.NoError(t, request.Reject(reviewerID, now))
		assert.Equal(t, domain.TeamJoinRequestStatusRejected, request.StatusID)
	})

	t.Run("resolution is terminal", func(t *testing.T) {
		request := pending()
		require.NoError(t, request.Approve(reviewerID, now))

		err := request.Reject(reviewerID, now.Add(time.Minute))
		var transitionErr *domain.ErrInvalidTransition
		require.True(t, errors.As(err, &transitionErr))
		assert.Equal(t, "Approved", transitionErr.From)
		assert.Equal(t, "Rejected", transitionErr.To)
	})

	t.Run("nil reviewer is rejected", func(t *testing.T) {
		request := pending()
		assert.ErrorIs(t, request.Approve(uuid.Nil, now), domain.ErrMissingAuditIdentity)
		assert.Equal(t, domain.TeamJoinRequestStatusPending, request.StatusID)
	})
}
