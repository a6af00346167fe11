// Package errresponse normalizes every failure into the single wire shape
// {msg, status}. Handlers never format error bodies themselves; they pass
// whatever error they have to Render.
package errresponse

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/ncnews/newsapi/internal/apperr"
)

// ErrResponse is the renderer for all error bodies.
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	Msg    string `json:"msg"`
	Status int    `json:"status"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)

	return nil
}

// Normalize maps an error to its response. Not-found maps to 404,
// malformed input and referential failures to 400, anything
// unrecognized to 500.
func Normalize(err error) *ErrResponse {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return &ErrResponse{Err: err, HTTPStatusCode: http.StatusNotFound, Msg: "Page Not Found", Status: http.StatusNotFound}
	case errors.Is(err, apperr.ErrMalformed),
		errors.Is(err, apperr.ErrBadRequest),
		errors.Is(err, apperr.ErrReference):
		return &ErrResponse{Err: err, HTTPStatusCode: http.StatusBadRequest, Msg: "Bad Request", Status: http.StatusBadRequest}
	default:
		return &ErrResponse{Err: err, HTTPStatusCode: http.StatusInternalServerError, Msg: "Internal Server Error", Status: http.StatusInternalServerError}
	}
}

// Render writes the normalized body for err.
func Render(w http.ResponseWriter, r *http.Request, err error) {
	// render.Render on ErrResponse cannot fail; the error return only
	// reflects the Renderer contract.
	_ = render.Render(w, r, Normalize(err))
}

// NotFound is the renderer for unknown routes.
var NotFound = &ErrResponse{HTTPStatusCode: http.StatusNotFound, Msg: "Page Not Found", Status: http.StatusNotFound}
