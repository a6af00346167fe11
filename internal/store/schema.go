package store

import (
	"context"
	_ "embed"
)

//go:embed schema.sql
var schemaSQL string

// Reset drops every table and recreates the schema. Irreversible; no backup
// is taken. Used by the seed pipeline's clear phase and by test setup.
func (s *Store) Reset(ctx context.Context) error {
	_, err := s.db.Exec(ctx, schemaSQL)

	return mapError(err, "reset schema")
}
