package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"tracker/internal/tracker"
	"tracker/pkg/logger"
	"tracker/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Deps holds the collaborators used by v1 handlers.
type Deps struct {
	Tracker tracker.Tracker
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes returns the v1 router. Mount it under /v1.
func (h Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/track/{number}", h.Track)
	r.Get("/identify/{number}", h.Identify)

	return r
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorStatus pairs an ErrorResponse with its HTTP status code.
type ErrorStatus struct {
	StatusCode int
	Response   ErrorResponse
}

type kindStatus struct {
	status  int
	message string
	// expose controls whether the error's own message reaches the caller
	expose bool
}

// kindStatuses maps semantic kinds to HTTP replies. Upstream failures are
// reported as gateway errors: the caller did nothing wrong.
var kindStatuses = map[serrors.Kind]kindStatus{ //nolint: gochecknoglobals
	serrors.ErrBadRequest:   {status: http.StatusBadRequest, message: "bad request", expose: true},
	serrors.ErrNotFound:     {status: http.StatusNotFound, message: "resource not found", expose: true},
	serrors.ErrForbidden:    {status: http.StatusForbidden, message: "forbidden", expose: true},
	serrors.ErrConflict:     {status: http.StatusConflict, message: "conflict", expose: true},
	serrors.ErrUnauthorized: {status: http.StatusBadGateway, message: "carrier rejected credentials"},
	serrors.ErrTimeout:      {status: http.StatusGatewayTimeout, message: "carrier timed out"},
	serrors.ErrUnavailable:  {status: http.StatusServiceUnavailable, message: "carrier unavailable"},
	serrors.ErrRateLimited:  {status: http.StatusServiceUnavailable, message: "carrier rate limit exceeded"},
}

// NewError converts err into an HTTP error reply.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatus {
	kind := serrors.KindOf(err)
	if kind == nil {
		var k serrors.Kind
		if errors.As(err, &k) {
			kind = k
		}
	}

	ks, ok := kindStatuses[kind]
	if !ok {
		logger.Error(ctx, "request failed", zap.Error(err))

		return &ErrorStatus{
			StatusCode: http.StatusInternalServerError,
			Response:   ErrorResponse{Code: serrors.ErrInternal.Error(), Message: "internal error"},
		}
	}

	msg := ks.message
	var se *serrors.Error
	if ks.expose && errors.As(err, &se) && se.Message() != "" {
		msg = se.Message()
	}
	if ks.status >= http.StatusInternalServerError {
		logger.Warn(ctx, "upstream failure", zap.Error(err))
	}

	return &ErrorStatus{
		StatusCode: ks.status,
		Response:   ErrorResponse{Code: kind.Error(), Message: msg},
	}
}

func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	es := h.NewError(r.Context(), err)
	writeJSON(r.Context(), w, es.StatusCode, es.Response)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}
