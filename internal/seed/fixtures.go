package seed

import (
	"embed"
	"encoding/json"
	"fmt"
	"time"
)

// Fixture records use natural keys for every cross-entity reference: an
// article names its author by username and its topic by slug; a comment
// names its author by username and its article by title. The pipeline
// resolves these to generated identifiers before insert.

type TopicFixture struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type UserFixture struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

type ArticleFixture struct {
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
	Topic     string    `json:"topic"`
	CreatedBy string    `json:"created_by"`
}

type CommentFixture struct {
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
	BelongsTo string    `json:"belongs_to"` // article title
	CreatedBy string    `json:"created_by"` // username
}

// Data bundles the four fixture collections the pipeline loads.
type Data struct {
	Topics   []TopicFixture
	Users    []UserFixture
	Articles []ArticleFixture
	Comments []CommentFixture
}

//go:embed data/*.json
var devFiles embed.FS

// DevData returns the embedded development fixture set.
func DevData() (*Data, error) {
	var data Data

	for name, dst := range map[string]any{
		"data/topics.json":   &data.Topics,
		"data/users.json":    &data.Users,
		"data/articles.json": &data.Articles,
		"data/comments.json": &data.Comments,
	} {
		raw, err := devFiles.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("seed: read %s: %w", name, err)
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return nil, fmt.Errorf("seed: parse %s: %w", name, err)
		}
	}

	return &data, nil
}
