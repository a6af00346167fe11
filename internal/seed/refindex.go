// Package seed implements the fixture load pipeline: it clears the store,
// inserts topics and users, resolves natural-key references (usernames,
// article titles) to generated identifiers, and inserts articles and
// comments whose foreign keys have been rewritten to those identifiers.
package seed

import (
	"fmt"

	"github.com/google/uuid"
)

// Index maps a natural key (username, article title) to the generated
// identifier the store assigned on insert.
type Index map[string]uuid.UUID

// BuildIndex zips fixture records with the persisted records positionally
// and maps each fixture's natural key to the persisted record's identifier.
//
// Precondition: docs must be the store's bulk-insert result for sources, in
// submission order. The pgx batch inserts in internal/store guarantee this;
// a store without that guarantee would need a client-assigned correlation
// key instead. A length mismatch is a caller contract violation and fails
// loudly rather than silently truncating.
func BuildIndex[S, D any](sources []S, docs []D, key func(S) string, id func(D) uuid.UUID) (Index, error) {
	if len(sources) != len(docs) {
		return nil, fmt.Errorf("seed: %d fixture records but %d persisted records", len(sources), len(docs))
	}

	idx := make(Index, len(sources))
	for i, src := range sources {
		idx[key(src)] = id(docs[i])
	}

	return idx, nil
}
