package seed

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncnews/newsapi/internal/apperr"
)

func TestFormatArticles(t *testing.T) {
	authorID := uuid.New()
	created := time.Date(2017, 7, 20, 20, 57, 53, 0, time.UTC)

	fixtures := []ArticleFixture{
		{
			Title:     "Running a Node App",
			Body:      "This is part two...",
			Votes:     3,
			CreatedAt: created,
			Topic:     "coding",
			CreatedBy: "jessjelly",
		},
	}

	articles, err := FormatArticles(fixtures, Index{"jessjelly": authorID})
	require.NoError(t, err)
	require.Len(t, articles, 1)

	a := articles[0]
	assert.Equal(t, "Running a Node App", a.Title)
	assert.Equal(t, "coding", a.BelongsTo, "topic slug is kept, not resolved to an id")
	assert.Equal(t, authorID, a.CreatedBy)
	assert.Equal(t, 3, a.Votes)
	assert.Equal(t, created, a.CreatedAt)
}

func TestFormatArticlesUnknownAuthor(t *testing.T) {
	fixtures := []ArticleFixture{
		{Title: "orphaned", CreatedBy: "ghost", Topic: "cats"},
	}

	_, err := FormatArticles(fixtures, Index{})
	require.ErrorIs(t, err, apperr.ErrReference)
	assert.Contains(t, err.Error(), "ghost")
}

func TestFormatComments(t *testing.T) {
	authorID := uuid.New()
	articleID := uuid.New()

	fixtures := []CommentFixture{
		{
			Body:      "great stuff",
			Votes:     7,
			BelongsTo: "Running a Node App",
			CreatedBy: "jessjelly",
		},
	}

	comments, err := FormatComments(fixtures,
		Index{"jessjelly": authorID},
		Index{"Running a Node App": articleID})
	require.NoError(t, err)
	require.Len(t, comments, 1)

	c := comments[0]
	assert.Equal(t, articleID, c.BelongsTo, "article title resolved to its id")
	assert.Equal(t, authorID, c.CreatedBy)
	assert.Equal(t, 7, c.Votes)
}

func TestFormatCommentsUnknownReferences(t *testing.T) {
	authorID := uuid.New()

	t.Run("unknown author", func(t *testing.T) {
		fixtures := []CommentFixture{{CreatedBy: "ghost", BelongsTo: "anything"}}
		_, err := FormatComments(fixtures, Index{}, Index{})
		require.ErrorIs(t, err, apperr.ErrReference)
	})

	t.Run("unknown article title", func(t *testing.T) {
		fixtures := []CommentFixture{{CreatedBy: "jessjelly", BelongsTo: "no such article"}}
		_, err := FormatComments(fixtures, Index{"jessjelly": authorID}, Index{})
		require.ErrorIs(t, err, apperr.ErrReference)
		assert.Contains(t, err.Error(), "no such article")
	})
}

func TestDevData(t *testing.T) {
	data, err := DevData()
	require.NoError(t, err)

	assert.NotEmpty(t, data.Topics)
	assert.NotEmpty(t, data.Users)
	assert.NotEmpty(t, data.Articles)
	assert.NotEmpty(t, data.Comments)

	// Every embedded fixture must resolve against the others, otherwise a
	// fresh checkout cannot seed.
	usernames := map[string]bool{}
	for _, u := range data.Users {
		usernames[u.Username] = true
	}
	titles := map[string]bool{}
	slugs := map[string]bool{}
	for _, tp := range data.Topics {
		slugs[tp.Slug] = true
	}
	for _, a := range data.Articles {
		titles[a.Title] = true
		assert.True(t, usernames[a.CreatedBy], "article %q author %q", a.Title, a.CreatedBy)
		assert.True(t, slugs[a.Topic], "article %q topic %q", a.Title, a.Topic)
	}
	for _, c := range data.Comments {
		assert.True(t, usernames[c.CreatedBy], "comment author %q", c.CreatedBy)
		assert.True(t, titles[c.BelongsTo], "comment article %q", c.BelongsTo)
	}
}
