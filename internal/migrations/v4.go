package migrations

import (
	"context"
	"fmt"

	"github.com/cleansweep/cleansweep/internal/database/schema"
)

func init() {
	Register(&V4Migration{})
}

var v4Tables = []string{
	"waiver_versions",
	"user_waivers",
	"community_waivers",
}

// V4Migration introduces versioned waivers with acceptance-time text
// snapshots and drops the flat waivers table from v2. Legacy acceptance
// rows are not carried over; they predate per-version text and cannot be
// mapped onto a snapshot.
type V4Migration struct{}

func (m *V4Migration) GetMajorVersion() float64 {
	return 4.0
}

func (m *V4Migration) Up(ctx context.Context, db DBExecutor) error {
	if err := execAll(ctx, db, schema.LookupTableDefinitionsFor("waiver_duration_types")); err != nil {
		return fmt.Errorf("failed to create waiver_duration_types table: %w", err)
	}
	if err := execAll(ctx, db, schema.TableDefinitionsFor(v4Tables...)); err != nil {
		return fmt.Errorf("failed to create v4 tables: %w", err)
	}
	for _, fk := range schema.ForeignKeysFor(v4Tables...) {
		if _, err := db.ExecContext(ctx, fk.AddStatement()); err != nil {
			return fmt.Errorf("failed to add constraint %s: %w", fk.Name(), err)
		}
	}
	if err := execAll(ctx, db, schema.IndexesFor(v4Tables...)); err != nil {
		return fmt.Errorf("failed to create v4 indexes: %w", err)
	}
	if err := execAll(ctx, db, schema.SeedStatementsFor("waiver_duration_types")); err != nil {
		return fmt.Errorf("failed to seed waiver_duration_types: %w", err)
	}
	if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS waivers CASCADE`); err != nil {
		return fmt.Errorf("failed to drop deprecated waivers table: %w", err)
	}
	return nil
}

func (m *V4Migration) Down(ctx context.Context, db DBExecutor) error {
	if _, err := db.ExecContext(ctx, legacyWaiversDDL); err != nil {
		return fmt.Errorf("failed to restore deprecated waivers table: %w", err)
	}
	if err := execAll(ctx, db, schema.DropTableStatements(v4Tables...)); err != nil {
		return fmt.Errorf("failed to drop v4 tables: %w", err)
	}
	if err := execAll(ctx, db, schema.DropTableStatements("waiver_duration_types")); err != nil {
		return fmt.Errorf("failed to drop waiver_duration_types table: %w", err)
	}
	return nil
}
