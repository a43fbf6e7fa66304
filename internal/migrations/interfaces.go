package migrations

import (
	"context"
	"database/sql"

	"github.com/cleansweep/cleansweep/config"
)

// DBExecutor represents a database connection that can execute queries
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// MajorMigrationInterface defines a major version migration. Up and Down are
// symmetric: applying Down after Up must restore the prior schema exactly,
// seed data included.
type MajorMigrationInterface interface {
	GetMajorVersion() float64
	Up(ctx context.Context, db DBExecutor) error
	Down(ctx context.Context, db DBExecutor) error
}

// MigrationManager interface for managing migrations
type MigrationManager interface {
	GetCurrentDBVersion(ctx context.Context, db *sql.DB) (float64, error, bool)
	SetCurrentDBVersion(ctx context.Context, db *sql.DB, version float64) error
	RunMigrations(ctx context.Context, config *config.Config, db *sql.DB) error
	MigrateDownTo(ctx context.Context, db *sql.DB, target float64) error
}

// MigrationRegistry manages registered migrations
type MigrationRegistry interface {
	Register(migration MajorMigrationInterface)
	GetMigrations() []MajorMigrationInterface
	GetMigration(version float64) (MajorMigrationInterface, bool)
}

// execAll runs the statements in order, stopping at the first failure.
func execAll(ctx context.Context, db DBExecutor, statements []string) error {
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
