package store

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ncnews/newsapi/internal/apperr"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil stays nil", in: nil, want: nil},
		{name: "no rows", in: pgx.ErrNoRows, want: apperr.ErrNotFound},
		{name: "invalid text representation", in: &pgconn.PgError{Code: "22P02"}, want: apperr.ErrMalformed},
		{name: "foreign key violation", in: &pgconn.PgError{Code: "23503"}, want: apperr.ErrReference},
		{name: "not null violation", in: &pgconn.PgError{Code: "23502"}, want: apperr.ErrBadRequest},
		{name: "check violation", in: &pgconn.PgError{Code: "23514"}, want: apperr.ErrBadRequest},
		{name: "context canceled passes through", in: context.Canceled, want: context.Canceled},
		{name: "deadline exceeded passes through", in: context.DeadlineExceeded, want: context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.in, "thing")

			if tt.want == nil {
				if got != nil {
					t.Fatalf("mapError() = %v, want nil", got)
				}

				return
			}

			if !errors.Is(got, tt.want) {
				t.Errorf("mapError(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// Unrecognized database errors must not be flattened into a client-facing
// kind; they surface as 500s.
func TestMapErrorUnknownKind(t *testing.T) {
	in := errors.New("connection refused")
	got := mapError(in, "thing")

	for _, sentinel := range []error{
		apperr.ErrNotFound, apperr.ErrMalformed, apperr.ErrBadRequest, apperr.ErrReference,
	} {
		if errors.Is(got, sentinel) {
			t.Errorf("mapError() wrongly mapped %v to %v", in, sentinel)
		}
	}
}
