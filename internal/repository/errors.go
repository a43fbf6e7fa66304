package repository

import (
	"errors"

	"github.com/cleansweep/cleansweep/internal/domain"
	"github.com/lib/pq"
)

// Postgres error classes for constraint violations
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
)

// mapConstraintError translates a pq constraint failure into the matching
// typed domain error so callers can branch on the violation class without
// knowing Postgres error codes. Unrecognized errors pass through unchanged.
func mapConstraintError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch string(pqErr.Code) {
	case pgUniqueViolation:
		return &domain.ErrUniqueViolation{Constraint: pqErr.Constraint, Err: err}
	case pgForeignKeyViolation:
		return &domain.ErrForeignKeyViolation{Constraint: pqErr.Constraint, Err: err}
	case pgNotNullViolation:
		return &domain.ErrNotNullViolation{Column: pqErr.Column, Err: err}
	}
	return err
}
