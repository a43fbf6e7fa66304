package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleansweep/cleansweep/internal/domain"
	"github.com/cleansweep/cleansweep/internal/repository/testutil"
	"github.com/google/uuid"
)

func testEvent(now time.Time) *domain.Event {
	event := &domain.Event{
		ID:                      uuid.New(),
		Name:                    "Greenbelt Cleanup",
		EventDate:               now.Add(72 * time.Hour),
		DurationHours:           2,
		EventStatusID:           domain.EventStatusActive,
		EventTypeID:             domain.EventTypeParkCleanup,
		EventVisibilityID:       domain.EventVisibilityPublic,
		City:                    "Boise",
		Region:                  "ID",
		Country:                 "US",
		MaxNumberOfParticipants: 25,
	}
	event.StampCreate(uuid.New(), now)
	return event
}

func eventRows(event *domain.Event) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "description", "event_date", "duration_hours", "duration_minutes",
		"event_status_id", "event_type_id", "event_visibility_id", "team_id",
		"street_address", "city", "region", "country", "postal_code", "latitude", "longitude",
		"max_number_of_participants", "created_by_user_id", "created_date",
		"last_updated_by_user_id", "last_updated_date",
	}).AddRow(
		event.ID.String(), event.Name, nil, event.EventDate, event.DurationHours, event.DurationMinutes,
		event.EventStatusID, event.EventTypeID, event.EventVisibilityID, nil,
		nil, event.City, event.Region, event.Country, nil, nil, nil,
		event.MaxNumberOfParticipants, event.CreatedByUserID.String(), event.CreatedDate,
		event.LastUpdatedByUserID.String(), event.LastUpdatedDate,
	)
}

func TestEventCreate(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewEventRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)
	event := testEvent(now)

	// Test case 1: Successful create
	mock.ExpectExec(`INSERT INTO events`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), event)
	require.NoError(t, err)

	// Test case 2: Unknown visibility id rejected by the lookup FK
	mock.ExpectExec(`INSERT INTO events`).
		WillReturnError(&pq.Error{Code: "23503", Constraint: "fk_events_event_visibility_id"})

	err = repo.Create(context.Background(), event)
	require.Error(t, err)
	var fk *domain.ErrForeignKeyViolation
	require.True(t, errors.As(err, &fk))
	assert.Equal(t, "fk_events_event_visibility_id", fk.Constraint)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventGetByID(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewEventRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)
	event := testEvent(now)

	mock.ExpectQuery(`SELECT (.+) FROM events WHERE id = \$1`).
		WithArgs(event.ID).
		WillReturnRows(eventRows(event))

	got, err := repo.GetByID(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, event.Name, got.Name)
	assert.Equal(t, event.EventVisibilityID, got.EventVisibilityID)
	assert.Nil(t, got.TeamID)

	// Not found
	missing := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM events WHERE id = \$1`).
		WithArgs(missing).
		WillReturnError(sql.ErrNoRows)

	got, err = repo.GetByID(context.Background(), missing)
	require.Error(t, err)
	assert.Nil(t, got)
	var notFound *domain.ErrNotFound
	assert.True(t, errors.As(err, &notFound))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventList(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewEventRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)
	event := testEvent(now)

	// Status and visibility filters become WHERE clauses
	mock.ExpectQuery(`SELECT (.+) FROM events WHERE event_status_id = \$1 AND event_visibility_id = \$2 ORDER BY event_date`).
		WithArgs(domain.EventStatusActive, domain.EventVisibilityPublic).
		WillReturnRows(eventRows(event))

	events, err := repo.List(context.Background(), domain.EventFilter{
		StatusID:     domain.EventStatusActive,
		VisibilityID: domain.EventVisibilityPublic,
	})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, event.ID, events[0].ID)

	// No filters: bare ordered select
	mock.ExpectQuery(`SELECT (.+) FROM events ORDER BY event_date`).
		WillReturnRows(eventRows(event))

	events, err = repo.List(context.Background(), domain.EventFilter{})
	require.NoError(t, err)
	require.Len(t, events, 1)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventCancelAttendance(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewEventRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)
	eventID := uuid.New()
	userID := uuid.New()

	// Test case 1: Active signup gets its canceled date set
	mock.ExpectExec(`UPDATE event_attendees SET`).
		WithArgs(eventID, userID, sqlmock.AnyArg(), userID, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CancelAttendance(context.Background(), eventID, userID, userID, now)
	require.NoError(t, err)

	// Test case 2: Already canceled, no row matches
	mock.ExpectExec(`UPDATE event_attendees SET`).
		WithArgs(eventID, userID, sqlmock.AnyArg(), userID, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.CancelAttendance(context.Background(), eventID, userID, userID, now)
	require.Error(t, err)
	var notFound *domain.ErrNotFound
	assert.True(t, errors.As(err, &notFound))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventUpsertSummary(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewEventRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	summary := &domain.EventSummary{
		EventID:                 uuid.New(),
		ActualNumberOfAttendees: 12,
		NumberOfBags:            34,
		DurationInMinutes:       90,
		Notes:                   "heavy glass along the north bank",
	}
	summary.StampCreate(uuid.New(), now)

	mock.ExpectExec(`INSERT INTO event_summaries (.+) ON CONFLICT \(event_id\) DO UPDATE`).
		WithArgs(
			summary.EventID, summary.ActualNumberOfAttendees, summary.NumberOfBags,
			summary.NumberOfBuckets, summary.DurationInMinutes, sqlmock.AnyArg(),
			summary.CreatedByUserID, summary.CreatedDate,
			summary.LastUpdatedByUserID, summary.LastUpdatedDate,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.UpsertSummary(context.Background(), summary)
	require.NoError(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventAddRoute(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewEventRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)

	route := &domain.EventAttendeeRoute{
		ID:      uuid.New(),
		EventID: uuid.New(),
		UserID:  uuid.New(),
	}
	route.StampCreate(route.UserID, now)

	points := []*domain.EventAttendeeRoutePoint{
		{ID: uuid.New(), RouteID: route.ID, SortOrder: 1, Latitude: 43.61, Longitude: -116.20, RecordedAt: now},
		{ID: uuid.New(), RouteID: route.ID, SortOrder: 2, Latitude: 43.62, Longitude: -116.21, RecordedAt: now.Add(time.Minute)},
	}

	// Test case 1: Route and points commit together
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO event_attendee_routes`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO event_attendee_route_points`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO event_attendee_route_points`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.AddRoute(context.Background(), route, points)
	require.NoError(t, err)

	// Test case 2: Point insert failure rolls the route back
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO event_attendee_routes`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO event_attendee_route_points`).
		WillReturnError(errors.New("database error"))
	mock.ExpectRollback()

	err = repo.AddRoute(context.Background(), route, points)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to add route point")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventGetRoutePoints(t *testing.T) {
	db, mock, cleanup := testutil.SetupMockDB(t)
	defer cleanup()

	repo := NewEventRepository(db)
	now := time.Now().UTC().Truncate(time.Microsecond)
	routeID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "route_id", "sort_order", "latitude", "longitude", "recorded_at"}).
		AddRow(uuid.NewString(), routeID.String(), 1, 43.61, -116.20, now).
		AddRow(uuid.NewString(), routeID.String(), 2, 43.62, -116.21, now.Add(time.Minute))

	mock.ExpectQuery(`SELECT (.+) FROM event_attendee_route_points WHERE route_id = \$1`).
		WithArgs(routeID).
		WillReturnRows(rows)

	points, err := repo.GetRoutePoints(context.Background(), routeID)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, 1, points[0].SortOrder)
	assert.Equal(t, 2, points[1].SortOrder)

	require.NoError(t, mock.ExpectationsWereMet())
}
