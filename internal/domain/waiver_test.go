package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleansweep/cleansweep/internal/domain"
)

func TestWaiverVersion_Validate(t *testing.T) {
	tests := []struct {
		name    string
		version domain.WaiverVersion
		wantErr bool
	}{
		{
			name: "valid indefinite waiver",
			version: domain.WaiverVersion{
				Name:                 "volunteer-release",
				VersionLabel:         "v1",
				WaiverText:           "text",
				WaiverDurationTypeID: domain.WaiverDurationIndefinite,
			},
		},
		{
			name: "valid day-based waiver",
			version: domain.WaiverVersion{
				Name:                 "event-day",
				VersionLabel:         "v1",
				WaiverText:           "text",
				WaiverDurationTypeID: domain.WaiverDurationDays,
				DurationDays:         90,
			},
		},
		{
			name:    "missing text",
			version: domain.WaiverVersion{Name: "volunteer-release", VersionLabel: "v1"},
			wantErr: true,
		},
		{
			name: "day-based without duration",
			version: domain.WaiverVersion{
				Name:                 "event-day",
				VersionLabel:         "v1",
				WaiverText:           "text",
				WaiverDurationTypeID: domain.WaiverDurationDays,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.version.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWaiverVersion_ExpiryFrom(t *testing.T) {
	accepted := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

	t.Run("indefinite never expires", func(t *testing.T) {
		version := domain.WaiverVersion{WaiverDurationTypeID: domain.WaiverDurationIndefinite}
		assert.Nil(t, version.ExpiryFrom(accepted))
	})

	t.Run("annual expires one year out", func(t *testing.T) {
		version := domain.WaiverVersion{WaiverDurationTypeID: domain.WaiverDurationAnnual}
		expiry := version.ExpiryFrom(accepted)
		require.NotNil(t, expiry)
		assert.Equal(t, accepted.AddDate(1, 0, 0), *expiry)
	})

	t.Run("day-based expires after the configured span", func(t *testing.T) {
		version := domain.WaiverVersion{WaiverDurationTypeID: domain.WaiverDurationDays, DurationDays: 30}
		expiry := version.ExpiryFrom(accepted)
		require.NotNil(t, expiry)
		assert.Equal(t, accepted.AddDate(0, 0, 30), *expiry)
	})
}

func TestUserWaiver_IsExpired(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run("nil expiry never expires", func(t *testing.T) {
		waiver := domain.UserWaiver{ID: uuid.New()}
		assert.False(t, waiver.IsExpired(now.AddDate(50, 0, 0)))
	})

	t.Run("boundary instant is still valid", func(t *testing.T) {
		waiver := domain.UserWaiver{ID: uuid.New(), ExpiryDate: &now}
		assert.False(t, waiver.IsExpired(now))
		assert.True(t, waiver.IsExpired(now.Add(time.Second)))
	})
}
