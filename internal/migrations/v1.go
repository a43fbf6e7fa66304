package migrations

import (
	"context"
	"fmt"
	"time"

	"github.com/cleansweep/cleansweep/internal/database/schema"
	"github.com/cleansweep/cleansweep/internal/domain"
)

func init() {
	Register(&V1Migration{})
}

// v1 tables and lookups: core identity and organizations. Every later era
// hangs its audit envelope off the users table created here.
var v1LookupTables = []string{
	"partner_statuses",
	"partner_types",
	"invitation_statuses",
	"team_join_request_statuses",
}

var v1Tables = []string{
	"users",
	"partners",
	"partner_locations",
	"partner_contacts",
	"partner_documents",
	"partner_social_media_accounts",
	"partner_admins",
	"partner_admin_invitations",
	"sponsors",
	"professional_companies",
	"teams",
	"team_members",
	"team_join_requests",
}

// V1Migration creates the identity and organization subsystem: users with
// the audit envelope, partners and their child records, teams and
// membership, plus the system user every automated write attributes to.
type V1Migration struct{}

func (m *V1Migration) GetMajorVersion() float64 {
	return 1.0
}

func (m *V1Migration) Up(ctx context.Context, db DBExecutor) error {
	if err := execAll(ctx, db, schema.LookupTableDefinitionsFor(v1LookupTables...)); err != nil {
		return fmt.Errorf("failed to create v1 lookup tables: %w", err)
	}
	if err := execAll(ctx, db, schema.TableDefinitionsFor(v1Tables...)); err != nil {
		return fmt.Errorf("failed to create v1 tables: %w", err)
	}
	for _, fk := range schema.ForeignKeysFor(v1Tables...) {
		if _, err := db.ExecContext(ctx, fk.AddStatement()); err != nil {
			return fmt.Errorf("failed to add constraint %s: %w", fk.Name(), err)
		}
	}
	if err := execAll(ctx, db, schema.IndexesFor(v1Tables...)); err != nil {
		return fmt.Errorf("failed to create v1 indexes: %w", err)
	}
	if err := execAll(ctx, db, schema.SeedStatementsFor(v1LookupTables...)); err != nil {
		return fmt.Errorf("failed to seed v1 lookup tables: %w", err)
	}
	if err := insertSystemUser(ctx, db); err != nil {
		return fmt.Errorf("failed to insert system user: %w", err)
	}
	return nil
}

func (m *V1Migration) Down(ctx context.Context, db DBExecutor) error {
	if err := execAll(ctx, db, schema.DropTableStatements(v1Tables...)); err != nil {
		return fmt.Errorf("failed to drop v1 tables: %w", err)
	}
	if err := execAll(ctx, db, schema.DropTableStatements(v1LookupTables...)); err != nil {
		return fmt.Errorf("failed to drop v1 lookup tables: %w", err)
	}
	return nil
}

// insertSystemUser writes the sentinel actor for automated writes. The row
// is self-referential in its audit columns, which the FK allows because the
// constraint checks existence, not distinctness.
func insertSystemUser(ctx context.Context, db DBExecutor) error {
	sys := domain.NewSystemUser(time.Now().UTC())
	_, err := db.ExecContext(ctx, `
		INSERT INTO users (
			id, user_name, email, is_site_admin,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		) VALUES ($1, $2, $3, TRUE, $1, $4, $1, $4)
		ON CONFLICT (id) DO NOTHING
	`, sys.ID, sys.UserName, sys.Email, sys.CreatedDate)
	return err
}
