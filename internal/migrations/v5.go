package migrations

import (
	"context"
	"fmt"

	"github.com/cleansweep/cleansweep/internal/database/schema"
)

func init() {
	Register(&V5Migration{})
}

var v5LookupTables = []string{
	"team_adoption_statuses",
	"review_statuses",
	"batch_statuses",
}

var v5Tables = []string{
	"adoptable_areas",
	"team_adoptions",
	"team_adoption_events",
	"sponsored_adoptions",
	"area_generation_batches",
	"staged_adoptable_areas",
}

// V5Migration creates the adopt-an-area subsystem: published areas, team
// adoptions with their compliance history, sponsorships, and the staged
// area generation pipeline that feeds new areas into review.
type V5Migration struct{}

func (m *V5Migration) GetMajorVersion() float64 {
	return 5.0
}

func (m *V5Migration) Up(ctx context.Context, db DBExecutor) error {
	if err := execAll(ctx, db, schema.LookupTableDefinitionsFor(v5LookupTables...)); err != nil {
		return fmt.Errorf("failed to create v5 lookup tables: %w", err)
	}
	if err := execAll(ctx, db, schema.TableDefinitionsFor(v5Tables...)); err != nil {
		return fmt.Errorf("failed to create v5 tables: %w", err)
	}
	for _, fk := range schema.ForeignKeysFor(v5Tables...) {
		if _, err := db.ExecContext(ctx, fk.AddStatement()); err != nil {
			return fmt.Errorf("failed to add constraint %s: %w", fk.Name(), err)
		}
	}
	if err := execAll(ctx, db, schema.IndexesFor(v5Tables...)); err != nil {
		return fmt.Errorf("failed to create v5 indexes: %w", err)
	}
	if err := execAll(ctx, db, schema.SeedStatementsFor(v5LookupTables...)); err != nil {
		return fmt.Errorf("failed to seed v5 lookup tables: %w", err)
	}
	return nil
}

func (m *V5Migration) Down(ctx context.Context, db DBExecutor) error {
	if err := execAll(ctx, db, schema.DropTableStatements(v5Tables...)); err != nil {
		return fmt.Errorf("failed to drop v5 tables: %w", err)
	}
	if err := execAll(ctx, db, schema.DropTableStatements(v5LookupTables...)); err != nil {
		return fmt.Errorf("failed to drop v5 lookup tables: %w", err)
	}
	return nil
}
