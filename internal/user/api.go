// Package user serves the /api/users routes.
package user

import (
	"context"
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
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
}

// Usernames are lowercase; any uppercase letter in the path segment is a
// client error, checked before the store is queried.
var upperRe = regexp.MustCompile(`[A-Z]`)

type Handler struct {
	store Store
	log   *zap.SugaredLogger
}

func NewHandler(store Store, log *zap.SugaredLogger) *Handler {
	return &Handler{store: store, log: log}
}

// Routes mounts the users resource.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{username}", h.GetUser)

	return r
}

// GetUser returns a user by username.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if upperRe.MatchString(username) {
		errresponse.Render(w, r, fmt.Errorf("username %q: %w", username, apperr.ErrBadRequest))

		return
	}

	user, err := h.store.GetUserByUsername(r.Context(), username)
	if err != nil {
		errresponse.Render(w, r, err)

		return
	}

	if err := render.Render(w, r, &Response{User: user}); err != nil {
		h.log.Errorw(err.Error())
	}
}

// Response is the {user} envelope.
type Response struct {
	User *model.User `json:"user"`
}

func (*Response) Render(w http.ResponseWriter, r *http.Request) error { return nil }
