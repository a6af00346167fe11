package seed

import (
	"fmt"

	"github.com/ncnews/newsapi/internal/apperr"
	"github.com/ncnews/newsapi/internal/model"
)

// FormatArticles rewrites raw article fixtures into insertable records: the
// fixture's topic field becomes belongs_to with the slug value kept (topics
// are referenced by slug, not by generated id) and created_by is resolved
// from username to the user's identifier. A username missing from the index
// fails fast with a referential error instead of persisting a dangling
// reference.
func FormatArticles(fixtures []ArticleFixture, users Index) ([]model.Article, error) {
	articles := make([]model.Article, 0, len(fixtures))

	for _, f := range fixtures {
		userID, ok := users[f.CreatedBy]
		if !ok {
			return nil, fmt.Errorf("article %q: created_by %q: %w", f.Title, f.CreatedBy, apperr.ErrReference)
		}

		articles = append(articles, model.Article{
			Title:     f.Title,
			Body:      f.Body,
			Votes:     f.Votes,
			CreatedAt: f.CreatedAt,
			BelongsTo: f.Topic,
			CreatedBy: userID,
		})
	}

	return articles, nil
}

// FormatComments rewrites raw comment fixtures into insertable records,
// resolving created_by through the username index and belongs_to (an
// article title) through the title index. Either key missing fails fast.
func FormatComments(fixtures []CommentFixture, users, articles Index) ([]model.Comment, error) {
	comments := make([]model.Comment, 0, len(fixtures))

	for _, f := range fixtures {
		userID, ok := users[f.CreatedBy]
		if !ok {
			return nil, fmt.Errorf("comment created_by %q: %w", f.CreatedBy, apperr.ErrReference)
		}

		articleID, ok := articles[f.BelongsTo]
		if !ok {
			return nil, fmt.Errorf("comment belongs_to %q: %w", f.BelongsTo, apperr.ErrReference)
		}

		comments = append(comments, model.Comment{
			Body:      f.Body,
			Votes:     f.Votes,
			CreatedAt: f.CreatedAt,
			BelongsTo: articleID,
			CreatedBy: userID,
		})
	}

	return comments, nil
}
