package store

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ncnews/newsapi/internal/model"
)

const commentColumns = "id, body, votes, created_at, belongs_to, created_by"

// ListCommentsByArticle returns all comments on the article, newest first.
// The handler checks article existence separately; an article with no
// comments yields an empty slice.
func (s *Store) ListCommentsByArticle(ctx context.Context, articleID uuid.UUID) ([]model.Comment, error) {
	sql, args, err := psql.Select("id", "body", "votes", "created_at", "belongs_to", "created_by").
		From("comments").
		Where(squirrel.Eq{"belongs_to": articleID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, mapError(err, "comments")
	}

	comments := []model.Comment{}
	if err := pgxscan.Select(ctx, s.db, &comments, sql, args...); err != nil {
		return nil, mapError(err, "comments")
	}

	return comments, nil
}

// InsertComment persists a single comment created through the API. Votes and
// created_at take their store defaults.
func (s *Store) InsertComment(ctx context.Context, comment model.Comment) (*model.Comment, error) {
	sql, args, err := psql.Insert("comments").
		Columns("body", "belongs_to", "created_by").
		Values(comment.Body, comment.BelongsTo, comment.CreatedBy).
		Suffix("RETURNING " + commentColumns).
		ToSql()
	if err != nil {
		return nil, mapError(err, "comment")
	}

	var persisted model.Comment
	if err := pgxscan.Get(ctx, s.db, &persisted, sql, args...); err != nil {
		return nil, mapError(err, "comment")
	}

	return &persisted, nil
}

// InsertComments bulk-inserts pre-formatted comments (seed path) and returns
// the persisted records in submission order.
func (s *Store) InsertComments(ctx context.Context, comments []model.Comment) ([]model.Comment, error) {
	batch := &pgx.Batch{}
	for _, c := range comments {
		batch.Queue(
			`INSERT INTO comments (body, votes, created_at, belongs_to, created_by)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING `+commentColumns,
			c.Body, c.Votes, c.CreatedAt, c.BelongsTo, c.CreatedBy,
		)
	}

	return queryBatchReturning[model.Comment](ctx, s.db, batch, "comment")
}

// UpdateCommentVotes applies the vote delta as a single atomic update and
// returns the updated comment.
func (s *Store) UpdateCommentVotes(ctx context.Context, id uuid.UUID, delta int) (*model.Comment, error) {
	sql, args, err := psql.Update("comments").
		Set("votes", squirrel.Expr("votes + ?", delta)).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + commentColumns).
		ToSql()
	if err != nil {
		return nil, mapError(err, "comment")
	}

	var comment model.Comment
	if err := pgxscan.Get(ctx, s.db, &comment, sql, args...); err != nil {
		return nil, mapError(err, "comment")
	}

	return &comment, nil
}

// DeleteComment removes a comment and returns the deleted record, or
// apperr.ErrNotFound if it never existed.
func (s *Store) DeleteComment(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	sql, args, err := psql.Delete("comments").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + commentColumns).
		ToSql()
	if err != nil {
		return nil, mapError(err, "comment")
	}

	var comment model.Comment
	if err := pgxscan.Get(ctx, s.db, &comment, sql, args...); err != nil {
		return nil, mapError(err, "comment")
	}

	return &comment, nil
}
