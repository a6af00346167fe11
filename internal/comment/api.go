// Package comment serves the /api/comments routes.
package comment

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ncnews/newsapi/internal/apperr"
	"github.com/ncnews/newsapi/internal/errresponse"
	"github.com/ncnews/newsapi/internal/model"
	"github.com/ncnews/newsapi/internal/vote"
)

// Store is the persistence surface these handlers need.
type Store interface {
	UpdateCommentVotes(ctx context.Context, id uuid.UUID, delta int) (*model.Comment, error)
	DeleteComment(ctx context.Context, id uuid.UUID) (*model.Comment, error)
}

type Handler struct {
	store Store
	log   *zap.SugaredLogger
}

func NewHandler(store Store, log *zap.SugaredLogger) *Handler {
	return &Handler{store: store, log: log}
}

// Routes mounts the comments resource.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/{commentID}", func(r chi.Router) {
		r.Use(CommentID)
		r.Patch("/", h.Vote)
		r.Delete("/", h.Delete)
	})

	return r
}

// Vote applies the vote query parameter to a comment's votes. Same
// semantics as the article endpoint: absent is a no-op, unrecognized is
// rejected before the store is touched.
func (h *Handler) Vote(w http.ResponseWriter, r *http.Request) {
	delta, err := vote.Delta(r.URL.Query().Get("vote"))
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	comment, err := h.store.UpdateCommentVotes(r.Context(), commentIDFromCtx(r.Context()), delta)
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	h.respond(w, r, &Response{Comment: comment})
}

// Delete removes a comment and returns the deleted record.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	comment, err := h.store.DeleteComment(r.Context(), commentIDFromCtx(r.Context()))
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	h.respond(w, r, &Response{Comment: comment})
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, v render.Renderer) {
	if err := render.Render(w, r, v); err != nil {
		h.log.Errorw(err.Error())
	}
}

type ctxKey int8

const ctxKeyCommentID ctxKey = iota

// CommentID middleware parses the {commentID} URL parameter; a value that
// is not a valid identifier stops here with 400.
func CommentID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "commentID"))
		if err != nil {
			errresponse.Render(w, r, fmt.Errorf("comment id: %w", apperr.ErrMalformed))

			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyCommentID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func commentIDFromCtx(ctx context.Context) uuid.UUID {
	return ctx.Value(ctxKeyCommentID).(uuid.UUID)
}

// Response is the {comment} envelope.
type Response struct {
	Comment *model.Comment `json:"comment"`
}

func (*Response) Render(w http.ResponseWriter, r *http.Request) error { return nil }
