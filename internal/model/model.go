// Package model holds the persisted data model for the news API.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Topic is a category for articles. Topics are a closed reference set
// created at seed time; articles point at a topic by slug, never by a
// generated identifier.
type Topic struct {
	Slug        string `db:"slug" json:"slug"`
	Description string `db:"description" json:"description"`
}

// User data model.
type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Username  string    `db:"username" json:"username"`
	Name      string    `db:"name" json:"name"`
	AvatarURL string    `db:"avatar_url" json:"avatar_url"`
}

// Article data model. BelongsTo carries the owning topic's slug;
// CreatedBy carries the author's generated identifier.
type Article struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Body      string    `db:"body" json:"body"`
	Votes     int       `db:"votes" json:"votes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	BelongsTo string    `db:"belongs_to" json:"belongs_to"`
	CreatedBy uuid.UUID `db:"created_by" json:"created_by"`
}

// ArticleWithCount annotates an Article with the number of comments
// attached to it.
type ArticleWithCount struct {
	Article
	CommentCount int `db:"comment_count" json:"comment_count"`
}

// Comment data model. BelongsTo carries the parent article's generated
// identifier.
type Comment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Body      string    `db:"body" json:"body"`
	Votes     int       `db:"votes" json:"votes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	BelongsTo uuid.UUID `db:"belongs_to" json:"belongs_to"`
	CreatedBy uuid.UUID `db:"created_by" json:"created_by"`
}
