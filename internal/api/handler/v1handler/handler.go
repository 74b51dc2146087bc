// Package v1handler implements the version 1 HTTP API of the calculator.
package v1handler

import (
	"context"
	"net/http"
	"passrate/internal/calculator"
	"passrate/pkg/logger"
	"passrate/pkg/probability"
	"passrate/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// DefaultMaxBodyBytes caps JSON request bodies when Options leaves it unset.
const DefaultMaxBodyBytes = 4096

// Deps are the services the handlers call into.
type Deps struct {
	Calculator calculator.Calculator
}

// Options tune request handling.
type Options struct {
	// MaxBodyBytes limits the size of JSON request bodies.
	MaxBodyBytes int64
}

type Handler struct {
	deps Deps
	opts Options
}

func New(deps Deps, opts Options) *Handler {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}

	return &Handler{deps: deps, opts: opts}
}

// Register mounts the v1 routes on r.
func (h Handler) Register(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Get("/probability", h.GetProbability)
		r.Post("/probability", h.PostProbability)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.WriteError(w, r, serrors.With(serrors.ErrNotFound, "no route for %s", r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.WriteError(w, r, serrors.With(serrors.ErrMethodNotAllowed, "method %s not allowed", r.Method))
	})
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    string
	Message string
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

type errorClass struct {
	status  int
	message string
}

//nolint: gochecknoglobals
var errorClasses = map[serrors.Kind]errorClass{
	probability.ErrInvalidTrialCount:  {http.StatusBadRequest, "invalid trial count"},
	probability.ErrInvalidSuccessRate: {http.StatusBadRequest, "invalid success rate"},
	serrors.ErrBadRequest:             {http.StatusBadRequest, "bad request"},
	serrors.ErrNotFound:               {http.StatusNotFound, "resource not found"},
	serrors.ErrMethodNotAllowed:       {http.StatusMethodNotAllowed, "method not allowed"},
}

// NewError maps err to a response. Known kinds keep their code and message;
// anything else is logged and reported as an internal error without leaking
// its text.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	class, known := errorClasses[kind]
	if !known {
		logger.Error(ctx, "request failed", zap.Error(err))

		return &ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response: ErrorResponse{
				Code:    serrors.ErrInternal.Error(),
				Message: "internal error",
			},
		}
	}

	msg := serrors.MessageOf(err)
	if msg == "" || msg == kind.Error() {
		msg = class.message
	}

	return &ErrorStatusCode{
		StatusCode: class.status,
		Response:   ErrorResponse{Code: kind.Error(), Message: msg},
	}
}

// WriteError writes the response NewError builds for err.
func (h Handler) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("code", func(e *jx.Encoder) { e.Str(res.Response.Code) })
		e.Field("message", func(e *jx.Encoder) { e.Str(res.Response.Message) })
	})
	writeJSON(r.Context(), w, res.StatusCode, e.Bytes())
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}
