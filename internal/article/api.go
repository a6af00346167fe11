// Package article serves the /api/articles routes.
package article

import (
	"context"
	"errors"
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

// Store is the persistence surface these handlers need. *store.Store
// satisfies it; tests supply a mock.
type Store interface {
	ListArticles(ctx context.Context) ([]model.ArticleWithCount, error)
	GetArticle(ctx context.Context, id uuid.UUID) (*model.ArticleWithCount, error)
	ListCommentsByArticle(ctx context.Context, id uuid.UUID) ([]model.Comment, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	InsertComment(ctx context.Context, comment model.Comment) (*model.Comment, error)
	UpdateArticleVotes(ctx context.Context, id uuid.UUID, delta int) (*model.Article, error)
}

type Handler struct {
	store Store
	log   *zap.SugaredLogger
}

func NewHandler(store Store, log *zap.SugaredLogger) *Handler {
	return &Handler{store: store, log: log}
}

// Routes mounts the articles resource.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListArticles)

	r.Route("/{articleID}", func(r chi.Router) {
		r.Use(ArticleID) // reject malformed identifiers before any handler runs
		r.Get("/", h.GetArticle)
		r.Patch("/", h.Vote)
		r.Get("/comments", h.ListComments)
		r.Post("/comments", h.CreateComment)
	})

	return r
}

// ListArticles returns every article annotated with its comment count.
func (h *Handler) ListArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.store.ListArticles(r.Context())
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	h.respond(w, r, &ListResponse{Articles: articles})
}

// GetArticle returns a single article with its comment count.
func (h *Handler) GetArticle(w http.ResponseWriter, r *http.Request) {
	article, err := h.store.GetArticle(r.Context(), articleIDFromCtx(r.Context()))
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	h.respond(w, r, &Response{Article: article})
}

// ListComments returns the comments on an article. The article must exist;
// an existing article with no comments yields an empty list.
func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	id := articleIDFromCtx(r.Context())

	if _, err := h.store.GetArticle(r.Context(), id); err != nil {
		errresponse.Render(w, r, err)

		return
	}

	comments, err := h.store.ListCommentsByArticle(r.Context(), id)
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	h.respond(w, r, &CommentsResponse{Comments: comments})
}

// CreateComment persists a comment posted to an article. The article must
// exist (404 otherwise) and created_by must name an existing user (400
// otherwise).
func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	data := &CommentRequest{}
	if err := render.Bind(r, data); err != nil {
		errresponse.Render(w, r, fmt.Errorf("%s: %w", err, apperr.ErrBadRequest))

		return
	}

	id := articleIDFromCtx(r.Context())

	if _, err := h.store.GetArticle(r.Context(), id); err != nil {
		errresponse.Render(w, r, err)

		return
	}

	user, err := h.store.GetUserByUsername(r.Context(), data.CreatedBy)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			err = fmt.Errorf("created_by %q: %w", data.CreatedBy, apperr.ErrReference)
		}
		errresponse.Render(w, r, err)

		return
	}

	comment, err := h.store.InsertComment(r.Context(), model.Comment{
		Body:      data.Body,
		BelongsTo: id,
		CreatedBy: user.ID,
	})
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	render.Status(r, http.StatusCreated)
	h.respond(w, r, &CommentResponse{Comment: comment})
}

// Vote applies the vote query parameter to an article's votes. An absent
// parameter is a no-op that still returns the article; an unrecognized
// value is rejected before the store is touched.
func (h *Handler) Vote(w http.ResponseWriter, r *http.Request) {
	delta, err := vote.Delta(r.URL.Query().Get("vote"))
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	article, err := h.store.UpdateArticleVotes(r.Context(), articleIDFromCtx(r.Context()), delta)
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	h.respond(w, r, &VoteResponse{Article: article})
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, v render.Renderer) {
	if err := render.Render(w, r, v); err != nil {
		h.log.Errorw(err.Error())
	}
}
