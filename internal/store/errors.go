package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ncnews/newsapi/internal/apperr"
)

// mapError converts pgx/pgconn failures to the shared sentinel errors.
// context.DeadlineExceeded and context.Canceled pass through unmapped.
func mapError(err error, entity string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", entity, err)
	}

	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return fmt.Errorf("%s: %w", entity, apperr.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "22P02": // invalid_text_representation: not a valid uuid
			return fmt.Errorf("%s: %w", entity, apperr.ErrMalformed)
		case "23503": // foreign_key_violation: dangling reference
			return fmt.Errorf("%s: %w", entity, apperr.ErrReference)
		case "23502", "23514": // not_null_violation, check_violation
			return fmt.Errorf("%s: %w", entity, apperr.ErrBadRequest)
		}
	}

	return fmt.Errorf("%s: %w", entity, err)
}
