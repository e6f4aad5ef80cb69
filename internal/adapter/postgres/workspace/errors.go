package workspace

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/anterra/worksim/internal/domain"
)

// mapError converts pgx/pgconn errors to domain errors, tagged with the
// table the operation targeted. context.DeadlineExceeded and
// context.Canceled are NOT mapped and pass through.
//
// Constraint violations are not retried anywhere: in a generator whose
// insertion order is supposed to guarantee referential integrity, a foreign
// key failure is a logic defect and must abort the run.
func mapError(err error, table string) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", table, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", table, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s: %s: %w", table, pgErr.ConstraintName, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s: %s: %w", table, pgErr.ConstraintName, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s: %s: %w", table, pgErr.ConstraintName, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s: %w", table, err)
}
