package store

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"github.com/ncnews/newsapi/internal/model"
)

var topicColumns = []string{"slug", "description"}

// ListTopics returns all topics ordered by slug. Returns an empty slice, not
// nil, when no topics exist.
func (s *Store) ListTopics(ctx context.Context) ([]model.Topic, error) {
	sql, args, err := psql.Select(topicColumns...).
		From("topics").
		OrderBy("slug ASC").
		ToSql()
	if err != nil {
		return nil, mapError(err, "topics")
	}

	topics := []model.Topic{}
	if err := pgxscan.Select(ctx, s.db, &topics, sql, args...); err != nil {
		return nil, mapError(err, "topics")
	}

	return topics, nil
}

// GetTopic returns a topic by slug, or apperr.ErrNotFound.
func (s *Store) GetTopic(ctx context.Context, slug string) (*model.Topic, error) {
	sql, args, err := psql.Select(topicColumns...).
		From("topics").
		Where(squirrel.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return nil, mapError(err, "topic")
	}

	var topic model.Topic
	if err := pgxscan.Get(ctx, s.db, &topic, sql, args...); err != nil {
		return nil, mapError(err, "topic")
	}

	return &topic, nil
}

// InsertTopics bulk-inserts topics and returns the persisted records in
// submission order.
func (s *Store) InsertTopics(ctx context.Context, topics []model.Topic) ([]model.Topic, error) {
	batch := &pgx.Batch{}
	for _, t := range topics {
		batch.Queue(
			`INSERT INTO topics (slug, description)
			 VALUES ($1, $2)
			 RETURNING slug, description`,
			t.Slug, t.Description,
		)
	}

	return queryBatchReturning[model.Topic](ctx, s.db, batch, "topic")
}
