package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cleansweep/cleansweep/internal/domain"
	"github.com/google/uuid"
)

type eventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new PostgreSQL event repository
func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return withTransaction(ctx, r.db, fn)
}

const eventColumns = `id, name, description, event_date, duration_hours, duration_minutes,
		event_status_id, event_type_id, event_visibility_id, team_id,
		street_address, city, region, country, postal_code, latitude, longitude,
		max_number_of_participants, created_by_user_id, created_date,
		last_updated_by_user_id, last_updated_date`

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
	`
	_, err := r.db.ExecContext(ctx, query,
		event.ID,
		event.Name,
		nullString(event.Description),
		event.EventDate,
		event.DurationHours,
		event.DurationMinutes,
		event.EventStatusID,
		event.EventTypeID,
		event.EventVisibilityID,
		event.TeamID,
		nullString(event.StreetAddress),
		nullString(event.City),
		nullString(event.Region),
		nullString(event.Country),
		nullString(event.PostalCode),
		event.Latitude,
		event.Longitude,
		event.MaxNumberOfParticipants,
		event.CreatedByUserID,
		event.CreatedDate,
		event.LastUpdatedByUserID,
		event.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", mapConstraintError(err))
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event, err := scanEvent(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "event", ID: id.String()}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	query := `
		UPDATE events SET
			name = $2, description = $3, event_date = $4, duration_hours = $5,
			duration_minutes = $6, event_status_id = $7, event_type_id = $8,
			event_visibility_id = $9, team_id = $10, street_address = $11, city = $12,
			region = $13, country = $14, postal_code = $15, latitude = $16,
			longitude = $17, max_number_of_participants = $18,
			last_updated_by_user_id = $19, last_updated_date = $20
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		event.ID,
		event.Name,
		nullString(event.Description),
		event.EventDate,
		event.DurationHours,
		event.DurationMinutes,
		event.EventStatusID,
		event.EventTypeID,
		event.EventVisibilityID,
		event.TeamID,
		nullString(event.StreetAddress),
		nullString(event.City),
		nullString(event.Region),
		nullString(event.Country),
		nullString(event.PostalCode),
		event.Latitude,
		event.Longitude,
		event.MaxNumberOfParticipants,
		event.LastUpdatedByUserID,
		event.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", mapConstraintError(err))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return &domain.ErrNotFound{Entity: "event", ID: event.ID.String()}
	}
	return nil
}

func (r *eventRepository) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	builder := sq.Select(
		"id", "name", "description", "event_date", "duration_hours", "duration_minutes",
		"event_status_id", "event_type_id", "event_visibility_id", "team_id",
		"street_address", "city", "region", "country", "postal_code", "latitude", "longitude",
		"max_number_of_participants", "created_by_user_id", "created_date",
		"last_updated_by_user_id", "last_updated_date").
		From("events").
		OrderBy("event_date").
		PlaceholderFormat(sq.Dollar)

	if filter.StatusID != 0 {
		builder = builder.Where(sq.Eq{"event_status_id": filter.StatusID})
	}
	if filter.TypeID != 0 {
		builder = builder.Where(sq.Eq{"event_type_id": filter.TypeID})
	}
	if filter.VisibilityID != 0 {
		builder = builder.Where(sq.Eq{"event_visibility_id": filter.VisibilityID})
	}
	if filter.TeamID != nil {
		builder = builder.Where(sq.Eq{"team_id": *filter.TeamID})
	}
	if filter.From != nil {
		builder = builder.Where(sq.GtOrEq{"event_date": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(sq.Lt{"event_date": *filter.To})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build event list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}
	return events, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan code
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var event domain.Event
	var description, streetAddress, city, region, country, postalCode sql.NullString
	err := row.Scan(
		&event.ID,
		&event.Name,
		&description,
		&event.EventDate,
		&event.DurationHours,
		&event.DurationMinutes,
		&event.EventStatusID,
		&event.EventTypeID,
		&event.EventVisibilityID,
		&event.TeamID,
		&streetAddress,
		&city,
		&region,
		&country,
		&postalCode,
		&event.Latitude,
		&event.Longitude,
		&event.MaxNumberOfParticipants,
		&event.CreatedByUserID,
		&event.CreatedDate,
		&event.LastUpdatedByUserID,
		&event.LastUpdatedDate,
	)
	if err != nil {
		return nil, err
	}
	event.Description = description.String
	event.StreetAddress = streetAddress.String
	event.City = city.String
	event.Region = region.String
	event.Country = country.String
	event.PostalCode = postalCode.String
	return &event, nil
}

func (r *eventRepository) AddAttendee(ctx context.Context, attendee *domain.EventAttendee) error {
	query := `
		INSERT INTO event_attendees (
			event_id, user_id, sign_up_date, canceled_date,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		attendee.EventID,
		attendee.UserID,
		attendee.SignUpDate,
		attendee.CanceledDate,
		attendee.CreatedByUserID,
		attendee.CreatedDate,
		attendee.LastUpdatedByUserID,
		attendee.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to add event attendee: %w", mapConstraintError(err))
	}
	return nil
}

// CancelAttendance sets the canceled date instead of deleting the row so
// attendance history survives withdrawal.
func (r *eventRepository) CancelAttendance(ctx context.Context, eventID, userID uuid.UUID, actorID uuid.UUID, canceled time.Time) error {
	query := `
		UPDATE event_attendees SET
			canceled_date = $3, last_updated_by_user_id = $4, last_updated_date = $5
		WHERE event_id = $1 AND user_id = $2 AND canceled_date IS NULL
	`
	result, err := r.db.ExecContext(ctx, query, eventID, userID, canceled.UTC(), actorID, canceled.UTC())
	if err != nil {
		return fmt.Errorf("failed to cancel attendance: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check cancel result: %w", err)
	}
	if affected == 0 {
		return &domain.ErrNotFound{Entity: "event attendee", ID: fmt.Sprintf("%s/%s", eventID, userID)}
	}
	return nil
}

func (r *eventRepository) GetAttendees(ctx context.Context, eventID uuid.UUID) ([]*domain.EventAttendee, error) {
	query := `
		SELECT event_id, user_id, sign_up_date, canceled_date,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		FROM event_attendees WHERE event_id = $1
		ORDER BY sign_up_date
	`
	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event attendees: %w", err)
	}
	defer rows.Close()

	var attendees []*domain.EventAttendee
	for rows.Next() {
		var attendee domain.EventAttendee
		if err := rows.Scan(
			&attendee.EventID,
			&attendee.UserID,
			&attendee.SignUpDate,
			&attendee.CanceledDate,
			&attendee.CreatedByUserID,
			&attendee.CreatedDate,
			&attendee.LastUpdatedByUserID,
			&attendee.LastUpdatedDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan event attendee: %w", err)
		}
		attendees = append(attendees, &attendee)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate event attendees: %w", err)
	}
	return attendees, nil
}

func (r *eventRepository) UpsertSummary(ctx context.Context, summary *domain.EventSummary) error {
	query := `
		INSERT INTO event_summaries (
			event_id, actual_number_of_attendees, number_of_bags, number_of_buckets,
			duration_in_minutes, notes,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (event_id) DO UPDATE SET
			actual_number_of_attendees = $2, number_of_bags = $3, number_of_buckets = $4,
			duration_in_minutes = $5, notes = $6,
			last_updated_by_user_id = $9, last_updated_date = $10
	`
	_, err := r.db.ExecContext(ctx, query,
		summary.EventID,
		summary.ActualNumberOfAttendees,
		summary.NumberOfBags,
		summary.NumberOfBuckets,
		summary.DurationInMinutes,
		nullString(summary.Notes),
		summary.CreatedByUserID,
		summary.CreatedDate,
		summary.LastUpdatedByUserID,
		summary.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert event summary: %w", mapConstraintError(err))
	}
	return nil
}

func (r *eventRepository) GetSummary(ctx context.Context, eventID uuid.UUID) (*domain.EventSummary, error) {
	query := `
		SELECT event_id, actual_number_of_attendees, number_of_bags, number_of_buckets,
			duration_in_minutes, notes,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		FROM event_summaries WHERE event_id = $1
	`
	var summary domain.EventSummary
	var notes sql.NullString
	err := r.db.QueryRowContext(ctx, query, eventID).Scan(
		&summary.EventID,
		&summary.ActualNumberOfAttendees,
		&summary.NumberOfBags,
		&summary.NumberOfBuckets,
		&summary.DurationInMinutes,
		&notes,
		&summary.CreatedByUserID,
		&summary.CreatedDate,
		&summary.LastUpdatedByUserID,
		&summary.LastUpdatedDate,
	)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: "event summary", ID: eventID.String()}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event summary: %w", err)
	}
	summary.Notes = notes.String
	return &summary, nil
}

func (r *eventRepository) AddPickupLocation(ctx context.Context, location *domain.PickupLocation) error {
	query := `
		INSERT INTO pickup_locations (
			id, event_id, name, notes, street_address, city, latitude, longitude,
			has_been_submitted, has_been_picked_up,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.db.ExecContext(ctx, query,
		location.ID,
		location.EventID,
		nullString(location.Name),
		nullString(location.Notes),
		nullString(location.StreetAddress),
		nullString(location.City),
		location.Latitude,
		location.Longitude,
		location.HasBeenSubmitted,
		location.HasBeenPickedUp,
		location.CreatedByUserID,
		location.CreatedDate,
		location.LastUpdatedByUserID,
		location.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to add pickup location: %w", mapConstraintError(err))
	}
	return nil
}

func (r *eventRepository) MarkPickupLocationPickedUp(ctx context.Context, id uuid.UUID, actorID uuid.UUID, now time.Time) error {
	query := `
		UPDATE pickup_locations SET
			has_been_picked_up = TRUE, last_updated_by_user_id = $2, last_updated_date = $3
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, id, actorID, now.UTC())
	if err != nil {
		return fmt.Errorf("failed to mark pickup location picked up: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check pickup update result: %w", err)
	}
	if affected == 0 {
		return &domain.ErrNotFound{Entity: "pickup location", ID: id.String()}
	}
	return nil
}

func (r *eventRepository) AddAttendeeMetric(ctx context.Context, metric *domain.EventAttendeeMetric) error {
	query := `
		INSERT INTO event_attendee_metrics (
			id, event_id, user_id, number_of_bags, weight, weight_unit_id,
			distance_in_meters, duration_in_minutes,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.ExecContext(ctx, query,
		metric.ID,
		metric.EventID,
		metric.UserID,
		metric.NumberOfBags,
		metric.Weight,
		metric.WeightUnitID,
		metric.DistanceInMeters,
		metric.DurationInMinutes,
		metric.CreatedByUserID,
		metric.CreatedDate,
		metric.LastUpdatedByUserID,
		metric.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to add attendee metric: %w", mapConstraintError(err))
	}
	return nil
}

// AddRoute inserts the route and its ordered points in one transaction so a
// partial route can never be observed.
func (r *eventRepository) AddRoute(ctx context.Context, route *domain.EventAttendeeRoute, points []*domain.EventAttendeeRoutePoint) error {
	return withTransaction(ctx, r.db, func(tx *sql.Tx) error {
		routeQuery := `
			INSERT INTO event_attendee_routes (
				id, event_id, user_id,
				created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
			) VALUES ($1, $2, $3, $4, $5, $6, $7)
		`
		if _, err := tx.ExecContext(ctx, routeQuery,
			route.ID,
			route.EventID,
			route.UserID,
			route.CreatedByUserID,
			route.CreatedDate,
			route.LastUpdatedByUserID,
			route.LastUpdatedDate,
		); err != nil {
			return fmt.Errorf("failed to add route: %w", mapConstraintError(err))
		}

		pointQuery := `
			INSERT INTO event_attendee_route_points (
				id, route_id, sort_order, latitude, longitude, recorded_at
			) VALUES ($1, $2, $3, $4, $5, $6)
		`
		for _, point := range points {
			if _, err := tx.ExecContext(ctx, pointQuery,
				point.ID,
				point.RouteID,
				point.SortOrder,
				point.Latitude,
				point.Longitude,
				point.RecordedAt,
			); err != nil {
				return fmt.Errorf("failed to add route point: %w", mapConstraintError(err))
			}
		}
		return nil
	})
}

func (r *eventRepository) GetRoutePoints(ctx context.Context, routeID uuid.UUID) ([]*domain.EventAttendeeRoutePoint, error) {
	query := `
		SELECT id, route_id, sort_order, latitude, longitude, recorded_at
		FROM event_attendee_route_points WHERE route_id = $1
		ORDER BY sort_order
	`
	rows, err := r.db.QueryContext(ctx, query, routeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get route points: %w", err)
	}
	defer rows.Close()

	var points []*domain.EventAttendeeRoutePoint
	for rows.Next() {
		var point domain.EventAttendeeRoutePoint
		if err := rows.Scan(
			&point.ID,
			&point.RouteID,
			&point.SortOrder,
			&point.Latitude,
			&point.Longitude,
			&point.RecordedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan route point: %w", err)
		}
		points = append(points, &point)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate route points: %w", err)
	}
	return points, nil
}
