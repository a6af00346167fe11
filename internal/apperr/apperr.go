// Package apperr defines the sentinel errors shared by the store, the seed
// pipeline and the HTTP handlers. The HTTP status mapping lives in
// internal/errresponse; nothing here knows about HTTP.
package apperr

import "errors"

var (
	// ErrNotFound marks a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrMalformed marks an identifier that is not in the store's id format.
	ErrMalformed = errors.New("malformed identifier")

	// ErrBadRequest marks input rejected by a handler-level check, such as
	// disallowed casing in a path segment or an unrecognized vote value.
	ErrBadRequest = errors.New("bad request")

	// ErrReference marks a natural-key foreign reference (username, topic
	// slug, article title) that does not resolve to an existing record.
	ErrReference = errors.New("unresolved reference")
)
