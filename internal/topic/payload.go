package topic

import (
	"errors"
	"net/http"

	"github.com/ncnews/newsapi/internal/model"
)

// ArticleRequest is the request payload for posting an article to a topic.
// belongs_to comes from the URL, created_at from the store.
type ArticleRequest struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedBy string `json:"created_by"`
}

// Bind runs after unmarshalling and rejects payloads missing required
// fields.
func (a *ArticleRequest) Bind(r *http.Request) error {
	if a.Title == "" {
		return errors.New("missing required article title")
	}
	if a.Body == "" {
		return errors.New("missing required article body")
	}
	if a.CreatedBy == "" {
		return errors.New("missing required created_by")
	}

	return nil
}

// ListResponse is the {topics} envelope.
type ListResponse struct {
	Topics []model.Topic `json:"topics"`
}

func (*ListResponse) Render(w http.ResponseWriter, r *http.Request) error { return nil }

// ArticlesResponse is the {articles} envelope for a topic's articles.
type ArticlesResponse struct {
	Articles []model.Article `json:"articles"`
}

func (*ArticlesResponse) Render(w http.ResponseWriter, r *http.Request) error { return nil }

// ArticleResponse is the {article} envelope for a newly created article; a
// fresh article always has a comment count of zero.
type ArticleResponse struct {
	Article *model.ArticleWithCount `json:"article"`
}

func (*ArticleResponse) Render(w http.ResponseWriter, r *http.Request) error { return nil }
