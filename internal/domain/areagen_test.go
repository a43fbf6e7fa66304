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

func TestAreaGenerationBatch_CheckCounters(t *testing.T) {
	tests := []struct {
		name    string
		batch   domain.AreaGenerationBatch
		wantErr bool
	}{
		{
			name:  "empty batch",
			batch: domain.AreaGenerationBatch{},
		},
		{
			name:  "full chain in order",
			batch: domain.AreaGenerationBatch{DiscoveredCount: 10, ProcessedCount: 8, ApprovedCount: 5, CreatedCount: 5},
		},
		{
			name:    "processed exceeds discovered",
			batch:   domain.AreaGenerationBatch{DiscoveredCount: 5, ProcessedCount: 7},
			wantErr: true,
		},
		{
			name:    "approved exceeds processed",
			batch:   domain.AreaGenerationBatch{DiscoveredCount: 10, ProcessedCount: 4, ApprovedCount: 5},
			wantErr: true,
		},
		{
			name:    "created exceeds approved",
			batch:   domain.AreaGenerationBatch{DiscoveredCount: 10, ProcessedCount: 8, ApprovedCount: 5, CreatedCount: 6},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.batch.CheckCounters()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAreaGenerationBatch_Lifecycle(t *testing.T) {
	now := time.Date(2026, 7, 4, 8, 0, 0, 0, time.UTC)

	t.Run("queued to processing to completed", func(t *testing.T) {
		batch := &domain.AreaGenerationBatch{ID: uuid.New(), StatusID: domain.BatchStatusQueued}

		require.NoError(t, batch.Start(now))
		assert.Equal(t, domain.BatchStatusProcessing, batch.StatusID)
		require.NotNil(t, batch.StartedDate)

		require.NoError(t, batch.Complete(now.Add(time.Hour)))
		assert.Equal(t, domain.BatchStatusCompleted, batch.StatusID)
		require.NotNil(t, batch.CompletedDate)
	})

	t.Run("completion re-checks the counter chain", func(t *testing.T) {
		batch := &domain.AreaGenerationBatch{
			ID:              uuid.New(),
			StatusID:        domain.BatchStatusProcessing,
			DiscoveredCount: 3,
			ProcessedCount:  5,
		}
		assert.Error(t, batch.Complete(now))
		assert.Equal(t, domain.BatchStatusProcessing, batch.StatusID)
	})

	t.Run("failure records the reason", func(t *testing.T) {
		batch := &domain.AreaGenerationBatch{ID: uuid.New(), StatusID: domain.BatchStatusProcessing}
		require.NoError(t, batch.Fail("tile server unavailable", now))
		assert.Equal(t, domain.BatchStatusFailed, batch.StatusID)
		assert.Equal(t, "tile server unavailable", batch.ErrorMessage)
		require.NotNil(t, batch.CompletedDate)
	})

	t.Run("start is queued-only", func(t *testing.T) {
		batch := &domain.AreaGenerationBatch{ID: uuid.New(), StatusID: domain.BatchStatusCompleted}
		err := batch.Start(now)
		var transitionErr *domain.ErrInvalidTransition
		require.True(t, errors.As(err, &transitionErr))
		assert.Equal(t, "Completed", transitionErr.From)
	})
}

func TestStagedAdoptableArea_Review(t *testing.T) {
	reviewerID := uuid.New()
	now := time.Date(2026, 7, 5, 9, 0, 0, 0, time.UTC)

	pending := func() *domain.StagedAdoptableArea {
		return &domain.StagedAdoptableArea{
			ID:             uuid.New(),
			BatchID:        uuid.New(),
			Name:           "Willow Bend",
			ReviewStatusID: domain.ReviewStatusPending,
		}
	}

	t.Run("approve records reviewer", func(t *testing.T) {
		staged := pending()
		require.NoError(t, staged.Review(domain.ReviewStatusApproved, reviewerID, now))
		assert.Equal(t, domain.ReviewStatusApproved, staged.ReviewStatusID)
		require.NotNil(t, staged.ReviewedByUserID)
		assert.Equal(t, reviewerID, *staged.ReviewedByUserID)
	})

	t.Run("review must resolve", func(t *testing.T) {
		staged := pending()
		assert.Error(t, staged.Review(domain.ReviewStatusPending, reviewerID, now))
	})

	t.Run("resolution is terminal", func(t *testing.T) {
		staged := pending()
		require.NoError(t, staged.Review(domain.ReviewStatusRejected, reviewerID, now))

		err := staged.Review(domain.ReviewStatusApproved, reviewerID, now)
		var transitionErr *domain.ErrInvalidTransition
		require.True(t, errors.As(err, &transitionErr))
	})

	t.Run("nil reviewer is rejected", func(t *testing.T) {
		staged := pending()
		assert.ErrorIs(t, staged.Review(domain.ReviewStatusApproved, uuid.Nil, now), domain.ErrMissingAuditIdentity)
	})
}
