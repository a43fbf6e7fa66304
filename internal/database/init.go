package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/cleansweep/cleansweep/internal/database/schema"
	"github.com/cleansweep/cleansweep/internal/domain"
)

// InitializeDatabase creates every table, constraint and index, seeds the
// lookup enumerants and bootstraps the system user. All statements are
// idempotent so reruns are safe.
func InitializeDatabase(db *sql.DB) error {
	for _, query := range schema.LookupTableDefinitions() {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create lookup table: %w", err)
		}
	}

	for _, query := range schema.TableDefinitions {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	for _, query := range schema.ConstraintStatements() {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to add constraint: %w", err)
		}
	}

	for _, query := range schema.IndexDefinitions() {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	for _, query := range schema.SeedStatements() {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to seed lookup table: %w", err)
		}
	}

	if err := bootstrapSystemUser(db); err != nil {
		return err
	}

	return nil
}

// bootstrapSystemUser inserts the zero-UUID identity that anchors every
// audit envelope. It is its own creator and updater; this is the one
// documented exemption from the audit identity rule.
func bootstrapSystemUser(db *sql.DB) error {
	var exists bool
	err := db.QueryRow("SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)", domain.SystemUserID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check system user existence: %w", err)
	}
	if exists {
		return nil
	}

	systemUser := domain.NewSystemUser(time.Now())
	query := `
		INSERT INTO users (
			id, user_name, email,
			created_by_user_id, created_date, last_updated_by_user_id, last_updated_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = db.Exec(query,
		systemUser.ID,
		systemUser.UserName,
		systemUser.Email,
		systemUser.CreatedByUserID,
		systemUser.CreatedDate,
		systemUser.LastUpdatedByUserID,
		systemUser.LastUpdatedDate,
	)
	if err != nil {
		return fmt.Errorf("failed to create system user: %w", err)
	}
	return nil
}
