package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleansweep/cleansweep/internal/domain"
	"github.com/cleansweep/cleansweep/internal/repository/testutil"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

func testLitterReport(now time.Time) *domain.LitterReport {
	report := &domain.LitterReport{
		ID:                   uuid.New(),
		Name:                 "Riverside trail dumping",
		Description:          "Bags and furniture under the bridge",
		LitterReportStatusID: domain.LitterReportStatusNew,
	}
	report.StampCreate(uuid.New(), now)
	return report
}

func TestLitterCreateReport(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewLitterRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)
	report := testLitterReport(now)

	// Test case 1: successful insert
	mock.ExpectExec(`INSERT INTO litter_reports`).
		WithArgs(
			report.ID, report.Name, sqlmock.AnyArg(), report.LitterReportStatusID,
			report.CreatedByUserID, report.CreatedDate,
			report.LastUpdatedByUserID, report.LastUpdatedDate,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateReport(context.Background(), report)
	require.NoError(t, err)

	// Test case 2: database error is wrapped
	mock.ExpectExec(`INSERT INTO litter_reports`).
		WillReturnError(errors.New("connection reset"))

	err = repo.CreateReport(context.Background(), report)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create litter report")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLitterGetReportByID(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewLitterRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)
	report := testLitterReport(now)

	// Test case 1: report found, nil description column
	rows := sqlmock.NewRows([]string{
		"id", "name", "description", "litter_report_status_id",
		"created_by_user_id", "created_date", "last_updated_by_user_id", "last_updated_date",
	}).AddRow(
		report.ID.String(), report.Name, nil, report.LitterReportStatusID,
		report.CreatedByUserID.String(), report.CreatedDate,
		report.LastUpdatedByUserID.String(), report.LastUpdatedDate,
	)

	mock.ExpectQuery(`SELECT (.+) FROM litter_reports WHERE id = \$1`).
		WithArgs(report.ID).
		WillReturnRows(rows)

	got, err := repo.GetReportByID(context.Background(), report.ID)
	require.NoError(t, err)
	assert.Equal(t, report.Name, got.Name)
	assert.Empty(t, got.Description)

	// Test case 2: report not found
	missing := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM litter_reports WHERE id = \$1`).
		WithArgs(missing).
		WillReturnError(sql.ErrNoRows)

	got, err = repo.GetReportByID(context.Background(), missing)
	require.Error(t, err)
	assert.Nil(t, got)
	var notFound *domain.ErrNotFound
	assert.True(t, errors.As(err, &notFound))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLitterUpdateReportStatus(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewLitterRepository(db)
	reportID := uuid.New()
	actor := uuid.New()

	// Test case 1: status change applied
	mock.ExpectExec(`UPDATE litter_reports SET`).
		WithArgs(reportID, domain.LitterReportStatusCleaned, actor, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateReportStatus(context.Background(), reportID, domain.LitterReportStatusCleaned, actor)
	require.NoError(t, err)

	// Test case 2: unknown report
	mock.ExpectExec(`UPDATE litter_reports SET`).
		WithArgs(reportID, domain.LitterReportStatusCleaned, actor, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdateReportStatus(context.Background(), reportID, domain.LitterReportStatusCleaned, actor)
	require.Error(t, err)
	var notFound *domain.ErrNotFound
	assert.True(t, errors.As(err, &notFound))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLitterListReportsByStatus(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewLitterRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)
	actor := uuid.NewString()

	rows := sqlmock.NewRows([]string{
		"id", "name", "description", "litter_report_status_id",
		"created_by_user_id", "created_date", "last_updated_by_user_id", "last_updated_date",
	}).
		AddRow(uuid.NewString(), "Overflowing bins", "Park entrance", domain.LitterReportStatusNew,
			actor, now, actor, now).
		AddRow(uuid.NewString(), "Roadside tires", nil, domain.LitterReportStatusNew,
			actor, now.Add(-time.Hour), actor, now.Add(-time.Hour))

	mock.ExpectQuery(`SELECT (.+) FROM litter_reports WHERE litter_report_status_id = \$1`).
		WithArgs(domain.LitterReportStatusNew).
		WillReturnRows(rows)

	reports, err := repo.ListReportsByStatus(context.Background(), domain.LitterReportStatusNew)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "Park entrance", reports[0].Description)
	assert.Empty(t, reports[1].Description)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLitterAddImage(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewLitterRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)
	lat, lng := 47.6097, -122.3331

	image := &domain.LitterImage{
		ID:             uuid.New(),
		LitterReportID: uuid.New(),
		ImageURL:       "https://img.example.com/reports/1.jpg",
		City:           "Seattle",
		Region:         "WA",
		Country:        "US",
		Latitude:       &lat,
		Longitude:      &lng,
	}
	image.StampCreate(uuid.New(), now)

	// Test case 1: successful insert
	mock.ExpectExec(`INSERT INTO litter_images`).
		WithArgs(
			image.ID, image.LitterReportID, image.ImageURL,
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(),
			image.CreatedByUserID, image.CreatedDate,
			image.LastUpdatedByUserID, image.LastUpdatedDate,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.AddImage(context.Background(), image)
	require.NoError(t, err)

	// Test case 2: image for a deleted report
	mock.ExpectExec(`INSERT INTO litter_images`).
		WillReturnError(&pq.Error{Code: "23503", Constraint: "fk_litter_images_litter_report_id"})

	err = repo.AddImage(context.Background(), image)
	require.Error(t, err)
	var fkErr *domain.ErrForeignKeyViolation
	require.True(t, errors.As(err, &fkErr))
	assert.Equal(t, "fk_litter_images_litter_report_id", fkErr.Constraint)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLitterGetImages(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewLitterRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)
	reportID := uuid.New()
	actor := uuid.NewString()
	moderator := uuid.NewString()

	rows := sqlmock.NewRows([]string{
		"id", "litter_report_id", "image_url", "street_address", "city", "region", "country",
		"postal_code", "latitude", "longitude",
		"moderation_status_id", "in_review", "review_requested_by_user_id",
		"review_requested_date", "moderated_by_user_id", "moderated_date", "moderation_reason",
		"created_by_user_id", "created_date", "last_updated_by_user_id", "last_updated_date",
	}).
		AddRow(uuid.NewString(), reportID.String(), "https://img.example.com/reports/1.jpg",
			nil, "Seattle", "WA", "US", nil, 47.6097, -122.3331,
			domain.ModerationStatusApproved, false, nil, nil, moderator, now, nil,
			actor, now, actor, now).
		AddRow(uuid.NewString(), reportID.String(), "https://img.example.com/reports/2.jpg",
			nil, nil, nil, nil, nil, nil, nil,
			domain.ModerationStatusRejected, false, actor, now, moderator, now, "faces visible",
			actor, now, actor, now)

	mock.ExpectQuery(`SELECT (.+) FROM litter_images WHERE litter_report_id = \$1`).
		WithArgs(reportID).
		WillReturnRows(rows)

	images, err := repo.GetImages(context.Background(), reportID)
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "Seattle", images[0].City)
	assert.NotNil(t, images[0].Latitude)
	assert.Nil(t, images[1].Latitude)
	assert.Equal(t, domain.ModerationStatusRejected, images[1].ModerationStatusID)
	assert.Equal(t, "faces visible", images[1].ModerationReason)

	require.NoError(t, mock.ExpectationsWereMet())
}
