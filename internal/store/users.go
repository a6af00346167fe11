package store

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"github.com/ncnews/newsapi/internal/model"
)

var userColumns = []string{"id", "username", "name", "avatar_url"}

// GetUserByUsername returns a user by their unique username, or
// apperr.ErrNotFound.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	sql, args, err := psql.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, mapError(err, "user")
	}

	var user model.User
	if err := pgxscan.Get(ctx, s.db, &user, sql, args...); err != nil {
		return nil, mapError(err, "user")
	}

	return &user, nil
}

// InsertUsers bulk-inserts users and returns the persisted records, with
// generated identifiers, in submission order.
func (s *Store) InsertUsers(ctx context.Context, users []model.User) ([]model.User, error) {
	batch := &pgx.Batch{}
	for _, u := range users {
		batch.Queue(
			`INSERT INTO users (username, name, avatar_url)
			 VALUES ($1, $2, $3)
			 RETURNING id, username, name, avatar_url`,
			u.Username, u.Name, u.AvatarURL,
		)
	}

	return queryBatchReturning[model.User](ctx, s.db, batch, "user")
}
