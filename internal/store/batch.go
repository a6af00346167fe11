package store

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
)

// queryBatchReturning executes the batch and scans one RETURNING row per
// queued statement. pgx delivers batch results in queue order, so the
// returned slice is in the same order the records were submitted; the seed
// pipeline's reference index builder depends on this.
func queryBatchReturning[T any](ctx context.Context, db Querier, batch *pgx.Batch, entity string) ([]T, error) {
	br := db.SendBatch(ctx, batch)
	defer br.Close()

	out := make([]T, 0, batch.Len())

	for i := 0; i < batch.Len(); i++ {
		rows, err := br.Query()
		if err != nil {
			return nil, mapError(err, entity)
		}

		var rec T
		if err := pgxscan.ScanOne(&rec, rows); err != nil {
			return nil, mapError(err, entity)
		}

		out = append(out, rec)
	}

	return out, nil
}
