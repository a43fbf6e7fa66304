package domain

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -destination mocks/mock_event_repository.go -package mocks github.com/cleansweep/cleansweep/internal/domain EventRepository

// Event is a scheduled cleanup. Status, type and visibility are lookup
// references with restrict delete so history can never be orphaned by an
// enumerant removal.
type Event struct {
	ID                      uuid.UUID  `json:"id" db:"id"`
	Name                    string     `json:"name" db:"name"`
	Description             string     `json:"description,omitempty" db:"description"`
	EventDate               time.Time  `json:"event_date" db:"event_date"`
	DurationHours           int        `json:"duration_hours" db:"duration_hours"`
	DurationMinutes         int        `json:"duration_minutes" db:"duration_minutes"`
	EventStatusID           int        `json:"event_status_id" db:"event_status_id"`
	EventTypeID             int        `json:"event_type_id" db:"event_type_id"`
	EventVisibilityID       int        `json:"event_visibility_id" db:"event_visibility_id"`
	TeamID                  *uuid.UUID `json:"team_id,omitempty" db:"team_id"`
	StreetAddress           string     `json:"street_address,omitempty" db:"street_address"`
	City                    string     `json:"city,omitempty" db:"city"`
	Region                  string     `json:"region,omitempty" db:"region"`
	Country                 string     `json:"country,omitempty" db:"country"`
	PostalCode              string     `json:"postal_code,omitempty" db:"postal_code"`
	Latitude                *float64   `json:"latitude,omitempty" db:"latitude"`
	Longitude               *float64   `json:"longitude,omitempty" db:"longitude"`
	MaxNumberOfParticipants int        `json:"max_number_of_participants" db:"max_number_of_participants"`
	AuditFields
}

// Validate checks caller-controlled fields before a write.
func (e *Event) Validate() error {
	if e.Name == "" {
		return NewValidationError("event name is required")
	}
	if e.EventDate.IsZero() {
		return NewValidationError("event date is required")
	}
	if e.EventStatusID == 0 || e.EventTypeID == 0 || e.EventVisibilityID == 0 {
		return NewValidationError("event status, type and visibility are required")
	}
	return nil
}

// EventAttendee joins a user to an event. The composite key keeps one row per
// pair; withdrawal sets CanceledDate instead of deleting the row so
// attendance history survives.
type EventAttendee struct {
	EventID      uuid.UUID  `json:"event_id" db:"event_id"`
	UserID       uuid.UUID  `json:"user_id" db:"user_id"`
	SignUpDate   time.Time  `json:"sign_up_date" db:"sign_up_date"`
	CanceledDate *time.Time `json:"canceled_date,omitempty" db:"canceled_date"`
	AuditFields
}

// EventSummary is the one-to-one wrap-up record keyed by the event itself.
type EventSummary struct {
	EventID                 uuid.UUID `json:"event_id" db:"event_id"`
	ActualNumberOfAttendees int       `json:"actual_number_of_attendees" db:"actual_number_of_attendees"`
	NumberOfBags            int       `json:"number_of_bags" db:"number_of_bags"`
	NumberOfBuckets         int       `json:"number_of_buckets" db:"number_of_buckets"`
	DurationInMinutes       int       `json:"duration_in_minutes" db:"duration_in_minutes"`
	Notes                   string    `json:"notes,omitempty" db:"notes"`
	AuditFields
}

// PickupLocation is a spot where collected litter was left for haul-away.
type PickupLocation struct {
	ID               uuid.UUID `json:"id" db:"id"`
	EventID          uuid.UUID `json:"event_id" db:"event_id"`
	Name             string    `json:"name,omitempty" db:"name"`
	Notes            string    `json:"notes,omitempty" db:"notes"`
	StreetAddress    string    `json:"street_address,omitempty" db:"street_address"`
	City             string    `json:"city,omitempty" db:"city"`
	Latitude         *float64  `json:"latitude,omitempty" db:"latitude"`
	Longitude        *float64  `json:"longitude,omitempty" db:"longitude"`
	HasBeenSubmitted bool      `json:"has_been_submitted" db:"has_been_submitted"`
	HasBeenPickedUp  bool      `json:"has_been_picked_up" db:"has_been_picked_up"`
	AuditFields
}

// EventPhoto carries the shared moderation sub-state (see ModerationState).
type EventPhoto struct {
	ID       uuid.UUID `json:"id" db:"id"`
	EventID  uuid.UUID `json:"event_id" db:"event_id"`
	ImageURL string    `json:"image_url" db:"image_url"`
	Caption  string    `json:"caption,omitempty" db:"caption"`
	ModerationState
	AuditFields
}

// EventAttendeeMetric records one attendee's haul for one event, unique on
// the (event, user) pair.
type EventAttendeeMetric struct {
	ID                uuid.UUID `json:"id" db:"id"`
	EventID           uuid.UUID `json:"event_id" db:"event_id"`
	UserID            uuid.UUID `json:"user_id" db:"user_id"`
	NumberOfBags      int       `json:"number_of_bags" db:"number_of_bags"`
	Weight            *float64  `json:"weight,omitempty" db:"weight"`
	WeightUnitID      *int      `json:"weight_unit_id,omitempty" db:"weight_unit_id"`
	DistanceInMeters  *float64  `json:"distance_in_meters,omitempty" db:"distance_in_meters"`
	DurationInMinutes *int      `json:"duration_in_minutes,omitempty" db:"duration_in_minutes"`
	AuditFields
}

// EventAttendeeRoute is one attendee's walked route for one event, unique on
// the pair. The route owns its ordered points; dropping the route drops them.
type EventAttendeeRoute struct {
	ID      uuid.UUID `json:"id" db:"id"`
	EventID uuid.UUID `json:"event_id" db:"event_id"`
	UserID  uuid.UUID `json:"user_id" db:"user_id"`
	AuditFields
}

// EventAttendeeRoutePoint is a single ordered fix on a route.
type EventAttendeeRoutePoint struct {
	ID         uuid.UUID `json:"id" db:"id"`
	RouteID    uuid.UUID `json:"route_id" db:"route_id"`
	SortOrder  int       `json:"sort_order" db:"sort_order"`
	Latitude   float64   `json:"latitude" db:"latitude"`
	Longitude  float64   `json:"longitude" db:"longitude"`
	RecordedAt time.Time `json:"recorded_at" db:"recorded_at"`
}

// EventFilter narrows List queries; zero values mean "no constraint".
type EventFilter struct {
	StatusID     int
	TypeID       int
	VisibilityID int
	TeamID       *uuid.UUID
	From         *time.Time
	To           *time.Time
	Limit        uint64
}

// EventRepository provides access to the event subsystem tables.
type EventRepository interface {
	WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error

	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*Event, error)
	Update(ctx context.Context, event *Event) error
	List(ctx context.Context, filter EventFilter) ([]*Event, error)

	AddAttendee(ctx context.Context, attendee *EventAttendee) error
	CancelAttendance(ctx context.Context, eventID, userID uuid.UUID, actorID uuid.UUID, canceled time.Time) error
	GetAttendees(ctx context.Context, eventID uuid.UUID) ([]*EventAttendee, error)

	UpsertSummary(ctx context.Context, summary *EventSummary) error
	GetSummary(ctx context.Context, eventID uuid.UUID) (*EventSummary, error)

	AddPickupLocation(ctx context.Context, location *PickupLocation) error
	MarkPickupLocationPickedUp(ctx context.Context, id uuid.UUID, actorID uuid.UUID, now time.Time) error

	AddAttendeeMetric(ctx context.Context, metric *EventAttendeeMetric) error
	AddRoute(ctx context.Context, route *EventAttendeeRoute, points []*EventAttendeeRoutePoint) error
	GetRoutePoints(ctx context.Context, routeID uuid.UUID) ([]*EventAttendeeRoutePoint, error)
}
