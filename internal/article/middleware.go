package article

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ncnews/newsapi/internal/apperr"
	"github.com/ncnews/newsapi/internal/errresponse"
)

type ctxKey int8

const ctxKeyArticleID ctxKey = iota

// ArticleID middleware parses the {articleID} URL parameter. A value that
// is not a valid identifier stops here with 400.
func ArticleID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "articleID"))
		if err != nil {
			errresponse.Render(w, r, fmt.Errorf("article id: %w", apperr.ErrMalformed))

			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyArticleID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// articleIDFromCtx assumes the ArticleID middleware ran; handlers mounted
// under /{articleID} are always behind it.
func articleIDFromCtx(ctx context.Context) uuid.UUID {
	return ctx.Value(ctxKeyArticleID).(uuid.UUID)
}
