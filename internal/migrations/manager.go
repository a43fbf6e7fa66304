package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strconv"

	"github.com/cleansweep/cleansweep/config"
	"github.com/cleansweep/cleansweep/pkg/logger"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// Manager implements MigrationManager
type Manager struct {
	logger logger.Logger
}

// NewManager creates a new migration manager
func NewManager(logger logger.Logger) *Manager {
	return &Manager{logger: logger}
}

// ensureSettingsTable creates the version tracking table if needed. It must
// exist before the first version read on a brand new database.
func (m *Manager) ensureSettingsTable(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS settings (
			key VARCHAR(255) PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create settings table: %w", err)
	}
	return nil
}

// GetCurrentDBVersion retrieves the current database version from the
// settings table
func (m *Manager) GetCurrentDBVersion(ctx context.Context, db *sql.DB) (float64, error, bool) {
	var versionStr string
	err := db.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = 'db_version'").Scan(&versionStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, nil, false
		}
		return 0, fmt.Errorf("failed to get current database version: %w", err), false
	}

	version, err := strconv.ParseFloat(versionStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid database version format '%s': %w", versionStr, err), false
	}

	return version, nil, true
}

// SetCurrentDBVersion updates the current database version in the settings
// table
func (m *Manager) SetCurrentDBVersion(ctx context.Context, db *sql.DB, version float64) error {
	versionStr := fmt.Sprintf("%.0f", version)

	_, err := db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES ('db_version', $1)
		ON CONFLICT (key) DO UPDATE SET
			value = $1,
			updated_at = CURRENT_TIMESTAMP
	`, versionStr)

	if err != nil {
		return fmt.Errorf("failed to set database version to %s: %w", versionStr, err)
	}

	m.logger.WithField("version", versionStr).Info("Database version updated")
	return nil
}

// RunMigrations executes all necessary Up migrations based on version
// comparison
func (m *Manager) RunMigrations(ctx context.Context, cfg *config.Config, db *sql.DB) error {
	m.logger.Info("Starting migration process")

	if err := m.ensureSettingsTable(ctx, db); err != nil {
		return err
	}

	currentDBVersion, err, versionExists := m.GetCurrentDBVersion(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to get current database version: %w", err)
	}

	currentCodeVersion, err := GetCurrentCodeVersion()
	if err != nil {
		return fmt.Errorf("failed to get current code version: %w", err)
	}

	if versionExists {
		m.logger.WithField("db_version", fmt.Sprintf("%.0f", currentDBVersion)).
			WithField("code_version", fmt.Sprintf("%.0f", currentCodeVersion)).
			Info("Version comparison")

		if currentDBVersion >= currentCodeVersion {
			m.logger.Info("Database is up to date, no migrations needed")
			return nil
		}
	} else {
		m.logger.WithField("code_version", fmt.Sprintf("%.0f", currentCodeVersion)).
			Info("First run detected, applying all migrations")
	}

	registeredMigrations := GetRegisteredMigrations()

	var migrationsToRun []MajorMigrationInterface
	for _, migration := range registeredMigrations {
		migrationVersion := migration.GetMajorVersion()
		if migrationVersion > currentDBVersion && migrationVersion <= currentCodeVersion {
			migrationsToRun = append(migrationsToRun, migration)
		}
	}

	if len(migrationsToRun) == 0 {
		m.logger.Info("No migrations to run")
		return nil
	}

	m.logger.WithField("count", len(migrationsToRun)).Info("Migrations to execute")

	for _, migration := range migrationsToRun {
		if err := m.executeUp(ctx, db, migration); err != nil {
			return fmt.Errorf("migration failed for version %.0f: %w", migration.GetMajorVersion(), err)
		}
	}

	if err := m.SetCurrentDBVersion(ctx, db, currentCodeVersion); err != nil {
		return fmt.Errorf("failed to update database version after migrations: %w", err)
	}

	m.logger.WithField("version", fmt.Sprintf("%.0f", currentCodeVersion)).
		Info("Migration process completed successfully")
	return nil
}

// MigrateDownTo replays Down migrations, newest first, until the database
// version equals target. Down restores the prior schema exactly, seed data
// included.
func (m *Manager) MigrateDownTo(ctx context.Context, db *sql.DB, target float64) error {
	if err := m.ensureSettingsTable(ctx, db); err != nil {
		return err
	}

	currentDBVersion, err, versionExists := m.GetCurrentDBVersion(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to get current database version: %w", err)
	}
	if !versionExists {
		return fmt.Errorf("no database version recorded, nothing to migrate down")
	}
	if target >= currentDBVersion {
		m.logger.WithField("target", fmt.Sprintf("%.0f", target)).
			Info("Target version is not below current version, nothing to do")
		return nil
	}

	var migrationsToRevert []MajorMigrationInterface
	for _, migration := range GetRegisteredMigrations() {
		version := migration.GetMajorVersion()
		if version > target && version <= currentDBVersion {
			migrationsToRevert = append(migrationsToRevert, migration)
		}
	}

	// Newest first
	sort.Slice(migrationsToRevert, func(i, j int) bool {
		return migrationsToRevert[i].GetMajorVersion() > migrationsToRevert[j].GetMajorVersion()
	})

	for _, migration := range migrationsToRevert {
		if err := m.executeDown(ctx, db, migration); err != nil {
			return fmt.Errorf("down migration failed for version %.0f: %w", migration.GetMajorVersion(), err)
		}
	}

	if err := m.SetCurrentDBVersion(ctx, db, target); err != nil {
		return fmt.Errorf("failed to update database version after down migrations: %w", err)
	}

	m.logger.WithField("version", fmt.Sprintf("%.0f", target)).
		Info("Down migration process completed successfully")
	return nil
}

// executeUp runs a single Up migration in its own transaction
func (m *Manager) executeUp(ctx context.Context, db *sql.DB, migration MajorMigrationInterface) error {
	version := migration.GetMajorVersion()
	m.logger.WithField("version", fmt.Sprintf("%.0f", version)).Info("Executing migration")

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := migration.Up(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration transaction: %w", err)
	}

	m.logger.WithField("version", fmt.Sprintf("%.0f", version)).Info("Migration completed successfully")
	return nil
}

// executeDown runs a single Down migration in its own transaction
func (m *Manager) executeDown(ctx context.Context, db *sql.DB, migration MajorMigrationInterface) error {
	version := migration.GetMajorVersion()
	m.logger.WithField("version", fmt.Sprintf("%.0f", version)).Info("Reverting migration")

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := migration.Down(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit down migration transaction: %w", err)
	}

	m.logger.WithField("version", fmt.Sprintf("%.0f", version)).Info("Migration reverted successfully")
	return nil
}
