package article

import (
	"errors"
	"net/http"

	"github.com/ncnews/newsapi/internal/model"
)

// CommentRequest is the request payload for posting a comment to an
// article. belongs_to and created_at are assigned server-side.
type CommentRequest struct {
	Body      string `json:"body"`
	CreatedBy string `json:"created_by"`
}

// Bind runs after unmarshalling and rejects payloads missing required
// fields.
func (c *CommentRequest) Bind(r *http.Request) error {
	if c.Body == "" {
		return errors.New("missing required comment body")
	}
	if c.CreatedBy == "" {
		return errors.New("missing required created_by")
	}

	return nil
}

// ListResponse is the {articles} envelope for the annotated article list.
type ListResponse struct {
	Articles []model.ArticleWithCount `json:"articles"`
}

func (*ListResponse) Render(w http.ResponseWriter, r *http.Request) error { return nil }

// Response is the {article} envelope for a single annotated article.
type Response struct {
	Article *model.ArticleWithCount `json:"article"`
}

func (*Response) Render(w http.ResponseWriter, r *http.Request) error { return nil }

// VoteResponse is the {article} envelope returned by the vote endpoint,
// which carries no comment count.
type VoteResponse struct {
	Article *model.Article `json:"article"`
}

func (*VoteResponse) Render(w http.ResponseWriter, r *http.Request) error { return nil }

// CommentsResponse is the {comments} envelope.
type CommentsResponse struct {
	Comments []model.Comment `json:"comments"`
}

func (*CommentsResponse) Render(w http.ResponseWriter, r *http.Request) error { return nil }

// CommentResponse is the {comment} envelope for a newly created comment.
type CommentResponse struct {
	Comment *model.Comment `json:"comment"`
}

func (*CommentResponse) Render(w http.ResponseWriter, r *http.Request) error { return nil }
