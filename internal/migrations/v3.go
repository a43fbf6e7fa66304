package migrations

import (
	"context"
	"fmt"

	"github.com/cleansweep/cleansweep/internal/database/schema"
)

func init() {
	Register(&V3Migration{})
}

// V3Migration replaces the events is_event_public boolean with the
// event_visibilities lookup. Public maps to Public, private to Private; the
// TeamOnly level only becomes reachable after this migration.
type V3Migration struct{}

func (m *V3Migration) GetMajorVersion() float64 {
	return 3.0
}

func (m *V3Migration) Up(ctx context.Context, db DBExecutor) error {
	if err := execAll(ctx, db, schema.LookupTableDefinitionsFor("event_visibilities")); err != nil {
		return fmt.Errorf("failed to create event_visibilities table: %w", err)
	}
	if err := execAll(ctx, db, schema.SeedStatementsFor("event_visibilities")); err != nil {
		return fmt.Errorf("failed to seed event_visibilities: %w", err)
	}

	statements := []string{
		`ALTER TABLE events ADD COLUMN IF NOT EXISTS event_visibility_id INTEGER NOT NULL DEFAULT 1`,
		`UPDATE events SET event_visibility_id = CASE WHEN is_event_public THEN 1 ELSE 2 END`,
		`ALTER TABLE events ALTER COLUMN event_visibility_id DROP DEFAULT`,
		`ALTER TABLE events DROP COLUMN IF EXISTS is_event_public`,
	}
	if err := execAll(ctx, db, statements); err != nil {
		return fmt.Errorf("failed to migrate events to visibility lookup: %w", err)
	}

	fk := schema.ForeignKey{
		Table: "events", Column: "event_visibility_id",
		RefTable: "event_visibilities", RefColumn: "id",
		OnDelete: schema.Restrict,
	}
	if _, err := db.ExecContext(ctx, fk.AddStatement()); err != nil {
		return fmt.Errorf("failed to add constraint %s: %w", fk.Name(), err)
	}
	return nil
}

func (m *V3Migration) Down(ctx context.Context, db DBExecutor) error {
	fk := schema.ForeignKey{
		Table: "events", Column: "event_visibility_id",
		RefTable: "event_visibilities", RefColumn: "id",
		OnDelete: schema.Restrict,
	}
	statements := []string{
		fk.DropStatement(),
		`ALTER TABLE events ADD COLUMN IF NOT EXISTS is_event_public BOOLEAN NOT NULL DEFAULT TRUE`,
		// TeamOnly collapses to private; the boolean cannot represent it.
		`UPDATE events SET is_event_public = (event_visibility_id = 1)`,
		`ALTER TABLE events DROP COLUMN IF EXISTS event_visibility_id`,
	}
	if err := execAll(ctx, db, statements); err != nil {
		return fmt.Errorf("failed to restore events boolean visibility: %w", err)
	}
	if err := execAll(ctx, db, schema.DropTableStatements("event_visibilities")); err != nil {
		return fmt.Errorf("failed to drop event_visibilities table: %w", err)
	}
	return nil
}
