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

func TestAdoptableArea_Validate(t *testing.T) {
	tests := []struct {
		name    string
		area    domain.AdoptableArea
		wantErr bool
	}{
		{
			name: "valid area",
			area: domain.AdoptableArea{ID: uuid.New(), PartnerID: uuid.New(), Name: "Cedar Creek Bank", MaxTeams: 1},
		},
		{
			name:    "missing name",
			area:    domain.AdoptableArea{ID: uuid.New(), PartnerID: uuid.New()},
			wantErr: true,
		},
		{
			name:    "missing partner",
			area:    domain.AdoptableArea{ID: uuid.New(), Name: "Orphan Park"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.area.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTeamAdoption_Lifecycle(t *testing.T) {
	pending := func() *domain.TeamAdoption {
		return &domain.TeamAdoption{
			ID:              uuid.New(),
			TeamID:          uuid.New(),
			AdoptableAreaID: uuid.New(),
			StatusID:        domain.TeamAdoptionStatusPending,
		}
	}

	t.Run("pending to approved to active", func(t *testing.T) {
		adoption := pending()
		require.NoError(t, adoption.Approve())
		require.NoError(t, adoption.Activate())
		assert.Equal(t, domain.TeamAdoptionStatusActive, adoption.StatusID)
	})

	t.Run("activate straight from pending is refused", func(t *testing.T) {
		adoption := pending()
		err := adoption.Activate()
		var transitionErr *domain.ErrInvalidTransition
		require.True(t, errors.As(err, &transitionErr))
		assert.Equal(t, "Pending", transitionErr.From)
	})

	t.Run("rejection requires a reason and is terminal", func(t *testing.T) {
		adoption := pending()
		assert.Error(t, adoption.Reject(""))
		require.NoError(t, adoption.Reject("no capacity"))
		assert.Equal(t, "no capacity", adoption.RejectionReason)
		assert.Error(t, adoption.Approve())
	})
}

func TestTeamAdoption_RecordEvent(t *testing.T) {
	adoption := &domain.TeamAdoption{
		ID:       uuid.New(),
		StatusID: domain.TeamAdoptionStatusActive,
	}

	first := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	second := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	adoption.RecordEvent(first, 2)
	assert.Equal(t, 1, adoption.EventCount)
	assert.False(t, adoption.IsCompliant)
	require.NotNil(t, adoption.LastEventDate)
	assert.Equal(t, first, *adoption.LastEventDate)

	adoption.RecordEvent(second, 2)
	assert.Equal(t, 2, adoption.EventCount)
	assert.True(t, adoption.IsCompliant)
	assert.Equal(t, second, *adoption.LastEventDate)

	// An out-of-order backfill never moves the last event date backwards.
	adoption.RecordEvent(first, 2)
	assert.Equal(t, 3, adoption.EventCount)
	assert.Equal(t, second, *adoption.LastEventDate)
}

func TestTeamAdoption_RecordEventNoRequirement(t *testing.T) {
	adoption := &domain.TeamAdoption{StatusID: domain.TeamAdoptionStatusActive}
	adoption.RecordEvent(time.Now(), 0)
	assert.True(t, adoption.IsCompliant)
}
