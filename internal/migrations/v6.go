package migrations

import (
	"context"
	"fmt"

	"github.com/cleansweep/cleansweep/internal/database/schema"
)

func init() {
	Register(&V6Migration{})
}

var v6LookupTables = []string{
	"achievement_types",
	"newsletter_statuses",
	"pipeline_stages",
}

var v6Tables = []string{
	"user_achievements",
	"leaderboard_cache",
	"newsletters",
	"email_invite_batches",
	"email_invites",
	"community_prospects",
	"prospect_activities",
	"prospect_outreach_emails",
}

// V6Migration creates the engagement and outreach subsystem: achievements,
// cached leaderboards, newsletters, invite batches, and the community
// prospect pipeline.
type V6Migration struct{}

func (m *V6Migration) GetMajorVersion() float64 {
	return 6.0
}

func (m *V6Migration) Up(ctx context.Context, db DBExecutor) error {
	if err := execAll(ctx, db, schema.LookupTableDefinitionsFor(v6LookupTables...)); err != nil {
		return fmt.Errorf("failed to create v6 lookup tables: %w", err)
	}
	if err := execAll(ctx, db, schema.TableDefinitionsFor(v6Tables...)); err != nil {
		return fmt.Errorf("failed to create v6 tables: %w", err)
	}
	for _, fk := range schema.ForeignKeysFor(v6Tables...) {
		if _, err := db.ExecContext(ctx, fk.AddStatement()); err != nil {
			return fmt.Errorf("failed to add constraint %s: %w", fk.Name(), err)
		}
	}
	if err := execAll(ctx, db, schema.IndexesFor(v6Tables...)); err != nil {
		return fmt.Errorf("failed to create v6 indexes: %w", err)
	}
	if err := execAll(ctx, db, schema.SeedStatementsFor(v6LookupTables...)); err != nil {
		return fmt.Errorf("failed to seed v6 lookup tables: %w", err)
	}
	return nil
}

func (m *V6Migration) Down(ctx context.Context, db DBExecutor) error {
	if err := execAll(ctx, db, schema.DropTableStatements(v6Tables...)); err != nil {
		return fmt.Errorf("failed to drop v6 tables: %w", err)
	}
	if err := execAll(ctx, db, schema.DropTableStatements(v6LookupTables...)); err != nil {
		return fmt.Errorf("failed to drop v6 lookup tables: %w", err)
	}
	return nil
}
