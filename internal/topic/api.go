// Package topic serves the /api/topics routes.
package topic

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/ncnews/newsapi/internal/apperr"
	"github.com/ncnews/newsapi/internal/errresponse"
	"github.com/ncnews/newsapi/internal/model"
)

// Store is the persistence surface these handlers need.
type Store interface {
	ListTopics(ctx context.Context) ([]model.Topic, error)
	GetTopic(ctx context.Context, slug string) (*model.Topic, error)
	ListArticlesByTopic(ctx context.Context, slug string) ([]model.Article, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	InsertArticle(ctx context.Context, article model.Article) (*model.Article, error)
}

// Topic slugs are lowercase; any uppercase letter in the path segment is a
// client error, checked before the store is queried.
var upperRe = regexp.MustCompile(`[A-Z]`)

type Handler struct {
	store Store
	log   *zap.SugaredLogger
}

func NewHandler(store Store, log *zap.SugaredLogger) *Handler {
	return &Handler{store: store, log: log}
}

// Routes mounts the topics resource.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListTopics)

	r.Route("/{topicSlug}/articles", func(r chi.Router) {
		r.Get("/", h.ListArticles)
		r.Post("/", h.CreateArticle)
	})

	return r
}

// ListTopics returns all topics.
func (h *Handler) ListTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.store.ListTopics(r.Context())
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	h.respond(w, r, &ListResponse{Topics: topics})
}

// ListArticles returns the articles belonging to a topic. A slug with
// uppercase letters is a 400; a slug matching nothing is a 404.
func (h *Handler) ListArticles(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "topicSlug")
	if upperRe.MatchString(slug) {
		errresponse.Render(w, r, fmt.Errorf("topic slug %q: %w", slug, apperr.ErrBadRequest))

		return
	}

	articles, err := h.store.ListArticlesByTopic(r.Context(), slug)
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	if len(articles) == 0 {
		errresponse.Render(w, r, fmt.Errorf("topic %q articles: %w", slug, apperr.ErrNotFound))

		return
	}

	h.respond(w, r, &ArticlesResponse{Articles: articles})
}

// CreateArticle persists an article posted to a topic. The topic must exist
// (404 otherwise) and created_by must name an existing user (400 otherwise).
func (h *Handler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	data := &ArticleRequest{}
	if err := render.Bind(r, data); err != nil {
		errresponse.Render(w, r, fmt.Errorf("%s: %w", err, apperr.ErrBadRequest))

		return
	}

	slug := chi.URLParam(r, "topicSlug")

	if _, err := h.store.GetTopic(r.Context(), slug); err != nil {
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

	article, err := h.store.InsertArticle(r.Context(), model.Article{
		Title:     data.Title,
		Body:      data.Body,
		BelongsTo: slug,
		CreatedBy: user.ID,
	})
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	render.Status(r, http.StatusCreated)
	h.respond(w, r, &ArticleResponse{
		Article: &model.ArticleWithCount{Article: *article},
	})
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, v render.Renderer) {
	if err := render.Render(w, r, v); err != nil {
		h.log.Errorw(err.Error())
	}
}
