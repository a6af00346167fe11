package store

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ncnews/newsapi/internal/model"
)

const articleColumns = "id, title, body, votes, created_at, belongs_to, created_by"

// countedArticleColumns is the select list for article queries annotated
// with comment_count.
var countedArticleColumns = []string{
	"a.id", "a.title", "a.body", "a.votes", "a.created_at", "a.belongs_to", "a.created_by",
	"count(c.id)::int AS comment_count",
}

// ListArticles returns all articles, newest first, each annotated with its
// comment count.
func (s *Store) ListArticles(ctx context.Context) ([]model.ArticleWithCount, error) {
	sql, args, err := psql.Select(countedArticleColumns...).
		From("articles a").
		LeftJoin("comments c ON c.belongs_to = a.id").
		GroupBy("a.id").
		OrderBy("a.created_at DESC").
		ToSql()
	if err != nil {
		return nil, mapError(err, "articles")
	}

	articles := []model.ArticleWithCount{}
	if err := pgxscan.Select(ctx, s.db, &articles, sql, args...); err != nil {
		return nil, mapError(err, "articles")
	}

	return articles, nil
}

// GetArticle returns an article by id with its comment count, or
// apperr.ErrNotFound.
func (s *Store) GetArticle(ctx context.Context, id uuid.UUID) (*model.ArticleWithCount, error) {
	sql, args, err := psql.Select(countedArticleColumns...).
		From("articles a").
		LeftJoin("comments c ON c.belongs_to = a.id").
		Where(squirrel.Eq{"a.id": id}).
		GroupBy("a.id").
		ToSql()
	if err != nil {
		return nil, mapError(err, "article")
	}

	var article model.ArticleWithCount
	if err := pgxscan.Get(ctx, s.db, &article, sql, args...); err != nil {
		return nil, mapError(err, "article")
	}

	return &article, nil
}

// ListArticlesByTopic returns all articles belonging to the topic slug,
// newest first. An unknown slug yields an empty slice; the handler decides
// whether that is a 404.
func (s *Store) ListArticlesByTopic(ctx context.Context, slug string) ([]model.Article, error) {
	sql, args, err := psql.Select("id", "title", "body", "votes", "created_at", "belongs_to", "created_by").
		From("articles").
		Where(squirrel.Eq{"belongs_to": slug}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, mapError(err, "articles")
	}

	articles := []model.Article{}
	if err := pgxscan.Select(ctx, s.db, &articles, sql, args...); err != nil {
		return nil, mapError(err, "articles")
	}

	return articles, nil
}

// InsertArticle persists a single article created through the API. Votes and
// created_at take their store defaults.
func (s *Store) InsertArticle(ctx context.Context, article model.Article) (*model.Article, error) {
	sql, args, err := psql.Insert("articles").
		Columns("title", "body", "belongs_to", "created_by").
		Values(article.Title, article.Body, article.BelongsTo, article.CreatedBy).
		Suffix("RETURNING " + articleColumns).
		ToSql()
	if err != nil {
		return nil, mapError(err, "article")
	}

	var persisted model.Article
	if err := pgxscan.Get(ctx, s.db, &persisted, sql, args...); err != nil {
		return nil, mapError(err, "article")
	}

	return &persisted, nil
}

// InsertArticles bulk-inserts pre-formatted articles (seed path, with
// fixture-supplied votes and timestamps) and returns the persisted records
// in submission order.
func (s *Store) InsertArticles(ctx context.Context, articles []model.Article) ([]model.Article, error) {
	batch := &pgx.Batch{}
	for _, a := range articles {
		batch.Queue(
			`INSERT INTO articles (title, body, votes, created_at, belongs_to, created_by)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING `+articleColumns,
			a.Title, a.Body, a.Votes, a.CreatedAt, a.BelongsTo, a.CreatedBy,
		)
	}

	return queryBatchReturning[model.Article](ctx, s.db, batch, "article")
}

// UpdateArticleVotes applies the vote delta as a single atomic update and
// returns the updated article. Concurrent votes are never lost: the
// adjustment happens inside one UPDATE statement, not a read-modify-write
// pair.
func (s *Store) UpdateArticleVotes(ctx context.Context, id uuid.UUID, delta int) (*model.Article, error) {
	sql, args, err := psql.Update("articles").
		Set("votes", squirrel.Expr("votes + ?", delta)).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + articleColumns).
		ToSql()
	if err != nil {
		return nil, mapError(err, "article")
	}

	var article model.Article
	if err := pgxscan.Get(ctx, s.db, &article, sql, args...); err != nil {
		return nil, mapError(err, "article")
	}

	return &article, nil
}
