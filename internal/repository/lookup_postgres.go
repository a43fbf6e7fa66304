package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/cleansweep/cleansweep/internal/database/schema"
	"github.com/cleansweep/cleansweep/internal/domain"
)

type lookupRepository struct {
	db *sql.DB
}

// NewLookupRepository creates a new PostgreSQL lookup repository
func NewLookupRepository(db *sql.DB) domain.LookupRepository {
	return &lookupRepository{db: db}
}

// validTable guards against a caller passing an arbitrary identifier into a
// query; table names cannot be bound as parameters.
func validTable(table string) bool {
	for _, name := range schema.LookupTableNames {
		if name == table {
			return true
		}
	}
	return false
}

func (r *lookupRepository) GetByID(ctx context.Context, table string, id int) (*domain.Lookup, error) {
	if !validTable(table) {
		return nil, domain.NewValidationError(fmt.Sprintf("unknown lookup table: %s", table))
	}

	query, args, err := sq.Select("id", "name", "description", "display_order", "is_active").
		From(table).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build lookup query: %w", err)
	}

	var lookup domain.Lookup
	var description sql.NullString
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&lookup.ID, &lookup.Name, &description, &lookup.DisplayOrder, &lookup.IsActive)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrNotFound{Entity: table, ID: strconv.Itoa(id)}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lookup from %s: %w", table, err)
	}
	lookup.Description = description.String
	return &lookup, nil
}

func (r *lookupRepository) List(ctx context.Context, table string) ([]*domain.Lookup, error) {
	if !validTable(table) {
		return nil, domain.NewValidationError(fmt.Sprintf("unknown lookup table: %s", table))
	}

	query, args, err := sq.Select("id", "name", "description", "display_order", "is_active").
		From(table).
		OrderBy("display_order", "id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build lookup list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list lookups from %s: %w", table, err)
	}
	defer rows.Close()

	var lookups []*domain.Lookup
	for rows.Next() {
		var lookup domain.Lookup
		var description sql.NullString
		if err := rows.Scan(&lookup.ID, &lookup.Name, &description, &lookup.DisplayOrder, &lookup.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan lookup row: %w", err)
		}
		lookup.Description = description.String
		lookups = append(lookups, &lookup)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lookup rows: %w", err)
	}
	return lookups, nil
}

func (r *lookupRepository) Deactivate(ctx context.Context, table string, id int) error {
	if !validTable(table) {
		return domain.NewValidationError(fmt.Sprintf("unknown lookup table: %s", table))
	}

	query, args, err := sq.Update(table).
		Set("is_active", false).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build lookup deactivate query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to deactivate lookup in %s: %w", table, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deactivate result: %w", err)
	}
	if affected == 0 {
		return &domain.ErrNotFound{Entity: table, ID: strconv.Itoa(id)}
	}
	return nil
}
