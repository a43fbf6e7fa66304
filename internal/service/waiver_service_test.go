package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cleansweep/cleansweep/internal/domain"
	"github.com/cleansweep/cleansweep/internal/domain/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeWaiverVersion(t *testing.T) *domain.WaiverVersion {
	t.Helper()
	version := &domain.WaiverVersion{
		ID:                   uuid.New(),
		Name:                 "volunteer-release",
		VersionLabel:         "v2",
		WaiverText:           "I volunteer at my own risk.",
		WaiverDurationTypeID: domain.WaiverDurationAnnual,
		EffectiveDate:        time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		IsActive:             true,
	}
	require.NoError(t, version.StampCreate(uuid.New(), time.Now().Add(-48*time.Hour)))
	return version
}

func TestWaiverService_CreateVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWaiverRepository(ctrl)
	mockLogger := setupMockLogger(ctrl)
	service := NewWaiverService(mockRepo, mockLogger)

	ctx := context.Background()
	actorID := uuid.New()

	t.Run("Success - Create version", func(t *testing.T) {
		version := &domain.WaiverVersion{
			Name:                 "volunteer-release",
			VersionLabel:         "v1",
			WaiverText:           "I volunteer at my own risk.",
			WaiverDurationTypeID: domain.WaiverDurationIndefinite,
		}

		mockRepo.EXPECT().
			CreateVersion(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, created *domain.WaiverVersion) error {
				assert.NotEqual(t, uuid.Nil, created.ID)
				assert.Equal(t, actorID, created.CreatedByUserID)
				return nil
			})

		err := service.CreateVersion(ctx, version, actorID)
		require.NoError(t, err)
	})

	t.Run("Fail - Day-based policy without duration", func(t *testing.T) {
		version := &domain.WaiverVersion{
			Name:                 "minor-release",
			VersionLabel:         "v1",
			WaiverText:           "Guardian consent required.",
			WaiverDurationTypeID: domain.WaiverDurationDays,
		}

		err := service.CreateVersion(ctx, version, actorID)
		require.Error(t, err)
		var validationErr domain.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})
}

func TestWaiverService_SupersedeVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWaiverRepository(ctrl)
	mockLogger := setupMockLogger(ctrl)
	service := NewWaiverService(mockRepo, mockLogger)

	ctx := context.Background()
	actorID := uuid.New()

	t.Run("Success - New version lands, old one deactivated", func(t *testing.T) {
		current := activeWaiverVersion(t)
		replacement := &domain.WaiverVersion{
			Name:                 current.Name,
			VersionLabel:         "v3",
			WaiverText:           "I volunteer at my own risk, rain or shine.",
			WaiverDurationTypeID: domain.WaiverDurationAnnual,
		}

		mockRepo.EXPECT().GetActiveVersionByName(ctx, current.Name).Return(current, nil)
		mockRepo.EXPECT().
			CreateVersion(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, created *domain.WaiverVersion) error {
				assert.True(t, created.IsActive)
				assert.NotEqual(t, current.ID, created.ID)
				return nil
			})
		mockRepo.EXPECT().
			DeactivateVersion(ctx, current.ID, actorID, gomock.Any()).
			Return(nil)

		err := service.SupersedeVersion(ctx, replacement, actorID)
		require.NoError(t, err)
	})

	t.Run("Fail - No active version to supersede", func(t *testing.T) {
		replacement := &domain.WaiverVersion{
			Name:                 "unknown-waiver",
			VersionLabel:         "v1",
			WaiverText:           "text",
			WaiverDurationTypeID: domain.WaiverDurationIndefinite,
		}

		mockRepo.EXPECT().
			GetActiveVersionByName(ctx, "unknown-waiver").
			Return(nil, &domain.ErrNotFound{Entity: "active waiver version", ID: "unknown-waiver"})

		err := service.SupersedeVersion(ctx, replacement, actorID)
		var notFoundErr *domain.ErrNotFound
		require.True(t, errors.As(err, &notFoundErr))
	})
}

func TestWaiverService_UpdateVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWaiverRepository(ctrl)
	mockLogger := setupMockLogger(ctrl)
	service := NewWaiverService(mockRepo, mockLogger)

	ctx := context.Background()
	actorID := uuid.New()

	t.Run("Fail - Text edit on referenced version surfaces as in-use", func(t *testing.T) {
		version := activeWaiverVersion(t)
		version.WaiverText = "Edited text."

		mockRepo.EXPECT().
			UpdateVersion(ctx, gomock.Any()).
			Return(&domain.ErrWaiverVersionInUse{VersionID: version.ID.String()})

		err := service.UpdateVersion(ctx, version, actorID)
		require.Error(t, err)
		var inUseErr *domain.ErrWaiverVersionInUse
		require.True(t, errors.As(err, &inUseErr))
		assert.Equal(t, version.ID.String(), inUseErr.VersionID)
	})

	t.Run("Success - Metadata update refreshes the updater stamp", func(t *testing.T) {
		version := activeWaiverVersion(t)
		version.IsActive = false

		mockRepo.EXPECT().
			UpdateVersion(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, updated *domain.WaiverVersion) error {
				assert.Equal(t, actorID, updated.LastUpdatedByUserID)
				return nil
			})

		err := service.UpdateVersion(ctx, version, actorID)
		require.NoError(t, err)
	})
}

func TestWaiverService_AcceptWaiver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWaiverRepository(ctrl)
	mockLogger := setupMockLogger(ctrl)
	service := NewWaiverService(mockRepo, mockLogger)

	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success - Snapshot and expiry frozen at acceptance", func(t *testing.T) {
		version := activeWaiverVersion(t)

		mockRepo.EXPECT().GetActiveVersionByName(ctx, version.Name).Return(version, nil)
		mockRepo.EXPECT().
			CreateUserWaiver(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, waiver *domain.UserWaiver) error {
				assert.Equal(t, version.ID, waiver.WaiverVersionID)
				assert.Equal(t, version.WaiverText, waiver.WaiverTextSnapshot)
				require.NotNil(t, waiver.ExpiryDate)
				assert.WithinDuration(t, waiver.AcceptedDate.AddDate(1, 0, 0), *waiver.ExpiryDate, time.Second)
				assert.Equal(t, userID, waiver.CreatedByUserID)
				return nil
			})

		waiver, err := service.AcceptWaiver(ctx, userID, version.Name, "", "")
		require.NoError(t, err)
		assert.Equal(t, userID, waiver.UserID)
		assert.False(t, waiver.IsExpired(time.Now()))
		assert.True(t, waiver.IsExpired(time.Now().AddDate(1, 0, 1)))
	})

	t.Run("Success - Indefinite policy never expires", func(t *testing.T) {
		version := activeWaiverVersion(t)
		version.WaiverDurationTypeID = domain.WaiverDurationIndefinite

		mockRepo.EXPECT().GetActiveVersionByName(ctx, version.Name).Return(version, nil)
		mockRepo.EXPECT().CreateUserWaiver(ctx, gomock.Any()).Return(nil)

		waiver, err := service.AcceptWaiver(ctx, userID, version.Name, "", "")
		require.NoError(t, err)
		assert.Nil(t, waiver.ExpiryDate)
		assert.False(t, waiver.IsExpired(time.Now().AddDate(20, 0, 0)))
	})

	t.Run("Success - Guardian fields recorded for a minor", func(t *testing.T) {
		version := activeWaiverVersion(t)

		mockRepo.EXPECT().GetActiveVersionByName(ctx, version.Name).Return(version, nil)
		mockRepo.EXPECT().
			CreateUserWaiver(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, waiver *domain.UserWaiver) error {
				assert.Equal(t, "Pat Guardian", waiver.GuardianName)
				assert.Equal(t, "pat@example.com", waiver.GuardianEmail)
				return nil
			})

		_, err := service.AcceptWaiver(ctx, userID, version.Name, "Pat Guardian", "pat@example.com")
		require.NoError(t, err)
	})

	t.Run("Fail - Guardian name without email", func(t *testing.T) {
		_, err := service.AcceptWaiver(ctx, userID, "volunteer-release", "Pat Guardian", "")
		require.Error(t, err)
		var validationErr domain.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})

	t.Run("Scenario - Later text revision leaves earlier snapshots untouched", func(t *testing.T) {
		version := activeWaiverVersion(t)

		mockRepo.EXPECT().GetActiveVersionByName(ctx, version.Name).Return(version, nil)
		var accepted *domain.UserWaiver
		mockRepo.EXPECT().
			CreateUserWaiver(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, waiver *domain.UserWaiver) error {
				accepted = waiver
				return nil
			})

		_, err := service.AcceptWaiver(ctx, userID, version.Name, "", "")
		require.NoError(t, err)

		// Supersede with new text; the stored snapshot keeps the old text.
		replacement := &domain.WaiverVersion{
			Name:                 version.Name,
			VersionLabel:         "v3",
			WaiverText:           "Entirely new obligations.",
			WaiverDurationTypeID: domain.WaiverDurationAnnual,
		}
		mockRepo.EXPECT().GetActiveVersionByName(ctx, version.Name).Return(version, nil)
		mockRepo.EXPECT().CreateVersion(ctx, gomock.Any()).Return(nil)
		mockRepo.EXPECT().DeactivateVersion(ctx, version.ID, userID, gomock.Any()).Return(nil)
		require.NoError(t, service.SupersedeVersion(ctx, replacement, userID))

		assert.Equal(t, "I volunteer at my own risk.", accepted.WaiverTextSnapshot)
	})
}

func TestWaiverService_HasValidWaiver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockWaiverRepository(ctrl)
	mockLogger := setupMockLogger(ctrl)
	service := NewWaiverService(mockRepo, mockLogger)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()

	t.Run("Success - Unexpired acceptance counts", func(t *testing.T) {
		expiry := now.AddDate(0, 6, 0)
		mockRepo.EXPECT().
			GetUserWaivers(ctx, userID).
			Return([]*domain.UserWaiver{
				{ID: uuid.New(), UserID: userID, ExpiryDate: &expiry},
			}, nil)

		ok, err := service.HasValidWaiver(ctx, userID, now)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Success - Only expired acceptances", func(t *testing.T) {
		expiry := now.AddDate(-1, 0, 0)
		mockRepo.EXPECT().
			GetUserWaivers(ctx, userID).
			Return([]*domain.UserWaiver{
				{ID: uuid.New(), UserID: userID, ExpiryDate: &expiry},
			}, nil)

		ok, err := service.HasValidWaiver(ctx, userID, now)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
