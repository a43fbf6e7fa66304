package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleansweep/cleansweep/internal/domain"
)

func TestAuditFields_StampCreate(t *testing.T) {
	actorID := uuid.New()
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.FixedZone("PST", -8*3600))

	t.Run("sets the full envelope in UTC", func(t *testing.T) {
		var fields domain.AuditFields
		require.NoError(t, fields.StampCreate(actorID, now))

		assert.Equal(t, actorID, fields.CreatedByUserID)
		assert.Equal(t, actorID, fields.LastUpdatedByUserID)
		assert.Equal(t, now.UTC(), fields.CreatedDate)
		assert.Equal(t, now.UTC(), fields.LastUpdatedDate)
	})

	t.Run("zero actor is rejected before any write", func(t *testing.T) {
		var fields domain.AuditFields
		err := fields.StampCreate(uuid.Nil, now)
		assert.ErrorIs(t, err, domain.ErrMissingAuditIdentity)
		assert.True(t, fields.CreatedDate.IsZero())
	})
}

func TestAuditFields_StampUpdate(t *testing.T) {
	creatorID := uuid.New()
	updaterID := uuid.New()
	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("touches only the updater half", func(t *testing.T) {
		var fields domain.AuditFields
		require.NoError(t, fields.StampCreate(creatorID, created))
		require.NoError(t, fields.StampUpdate(updaterID, created.Add(2*time.Hour)))

		assert.Equal(t, creatorID, fields.CreatedByUserID)
		assert.Equal(t, created, fields.CreatedDate)
		assert.Equal(t, updaterID, fields.LastUpdatedByUserID)
		assert.Equal(t, created.Add(2*time.Hour), fields.LastUpdatedDate)
	})

	t.Run("zero actor is rejected", func(t *testing.T) {
		var fields domain.AuditFields
		require.NoError(t, fields.StampCreate(creatorID, created))
		assert.ErrorIs(t, fields.StampUpdate(uuid.Nil, created.Add(time.Hour)), domain.ErrMissingAuditIdentity)
	})
}

func TestAuditFields_Validate(t *testing.T) {
	actorID := uuid.New()
	now := time.Now()

	t.Run("stamped envelope is valid", func(t *testing.T) {
		var fields domain.AuditFields
		require.NoError(t, fields.StampCreate(actorID, now))
		require.NoError(t, fields.StampUpdate(actorID, now.Add(time.Minute)))
		assert.NoError(t, fields.Validate())
	})

	t.Run("unset timestamps are invalid", func(t *testing.T) {
		var fields domain.AuditFields
		assert.Error(t, fields.Validate())
	})

	t.Run("update predating creation is invalid", func(t *testing.T) {
		var fields domain.AuditFields
		require.NoError(t, fields.StampCreate(actorID, now))
		require.NoError(t, fields.StampUpdate(actorID, now.Add(-time.Hour)))
		assert.Error(t, fields.Validate())
	})
}
