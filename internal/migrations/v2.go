package migrations

import (
	"context"
	"fmt"

	"github.com/cleansweep/cleansweep/internal/database/schema"
)

func init() {
	Register(&V2Migration{})
}

var v2LookupTables = []string{
	"event_statuses",
	"event_types",
	"weight_units",
	"moderation_statuses",
	"litter_report_statuses",
}

// v2 tables minus events, which this era creates with its original shape: a
// plain is_event_public boolean instead of the visibility lookup v3 adds.
var v2Tables = []string{
	"team_events",
	"team_photos",
	"partner_photos",
	"event_attendees",
	"event_summaries",
	"pickup_locations",
	"event_photos",
	"event_attendee_metrics",
	"event_attendee_routes",
	"event_attendee_route_points",
	"litter_reports",
	"litter_images",
	"photo_flags",
	"photo_moderation_logs",
}

// legacyEventsDDL is the events table as it existed before the visibility
// enum. v3 replaces is_event_public with event_visibility_id.
const legacyEventsDDL = `CREATE TABLE IF NOT EXISTS events (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		event_date TIMESTAMP NOT NULL,
		duration_hours INTEGER NOT NULL DEFAULT 2,
		duration_minutes INTEGER NOT NULL DEFAULT 0,
		event_status_id INTEGER NOT NULL,
		event_type_id INTEGER NOT NULL,
		is_event_public BOOLEAN NOT NULL DEFAULT TRUE,
		team_id UUID,
		street_address VARCHAR(255),
		city VARCHAR(100),
		region VARCHAR(100),
		country VARCHAR(100),
		postal_code VARCHAR(20),
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		max_number_of_participants INTEGER NOT NULL DEFAULT 0,
		created_by_user_id UUID NOT NULL,
		created_date TIMESTAMP NOT NULL,
		last_updated_by_user_id UUID NOT NULL,
		last_updated_date TIMESTAMP NOT NULL
	)`

// legacyWaiversDDL is the first waiver design: a flat acceptance record
// against a single implicit waiver text. v4 deprecates it in favor of
// versioned waivers with text snapshots.
const legacyWaiversDDL = `CREATE TABLE IF NOT EXISTS waivers (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		name VARCHAR(100) NOT NULL,
		accepted_date TIMESTAMP NOT NULL,
		created_by_user_id UUID NOT NULL,
		created_date TIMESTAMP NOT NULL,
		last_updated_by_user_id UUID NOT NULL,
		last_updated_date TIMESTAMP NOT NULL
	)`

// V2Migration creates the event subsystem, litter reporting, and the photo
// moderation infrastructure, plus the since-deprecated waivers table.
type V2Migration struct{}

func (m *V2Migration) GetMajorVersion() float64 {
	return 2.0
}

func (m *V2Migration) Up(ctx context.Context, db DBExecutor) error {
	if err := execAll(ctx, db, schema.LookupTableDefinitionsFor(v2LookupTables...)); err != nil {
		return fmt.Errorf("failed to create v2 lookup tables: %w", err)
	}
	if _, err := db.ExecContext(ctx, legacyEventsDDL); err != nil {
		return fmt.Errorf("failed to create events table: %w", err)
	}
	if err := execAll(ctx, db, schema.TableDefinitionsFor(v2Tables...)); err != nil {
		return fmt.Errorf("failed to create v2 tables: %w", err)
	}
	for _, fk := range v2ForeignKeys() {
		if _, err := db.ExecContext(ctx, fk.AddStatement()); err != nil {
			return fmt.Errorf("failed to add constraint %s: %w", fk.Name(), err)
		}
	}
	if _, err := db.ExecContext(ctx, legacyWaiversDDL); err != nil {
		return fmt.Errorf("failed to create waivers table: %w", err)
	}
	if err := execAll(ctx, db, schema.IndexesFor(append(v2Tables, "events")...)); err != nil {
		return fmt.Errorf("failed to create v2 indexes: %w", err)
	}
	if err := execAll(ctx, db, schema.SeedStatementsFor(v2LookupTables...)); err != nil {
		return fmt.Errorf("failed to seed v2 lookup tables: %w", err)
	}
	return nil
}

func (m *V2Migration) Down(ctx context.Context, db DBExecutor) error {
	drops := append([]string{"events"}, v2Tables...)
	drops = append(drops, "waivers")
	if err := execAll(ctx, db, schema.DropTableStatements(drops...)); err != nil {
		return fmt.Errorf("failed to drop v2 tables: %w", err)
	}
	if err := execAll(ctx, db, schema.DropTableStatements(v2LookupTables...)); err != nil {
		return fmt.Errorf("failed to drop v2 lookup tables: %w", err)
	}
	return nil
}

// v2ForeignKeys returns the constraints for this era. The events visibility
// relation is excluded because its column does not exist until v3.
func v2ForeignKeys() []schema.ForeignKey {
	var fks []schema.ForeignKey
	for _, fk := range schema.ForeignKeysFor(append(v2Tables, "events")...) {
		if fk.Table == "events" && fk.Column == "event_visibility_id" {
			continue
		}
		fks = append(fks, fk)
	}
	return fks
}
