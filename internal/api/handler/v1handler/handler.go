// Package v1handler implements version 1 of the event API.
package v1handler

import (
	"context"
	"net/http"
	"purger/internal/events"
	"purger/pkg/logger"
	"purger/pkg/serrors"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Deps are the collaborators of the v1 handlers.
type Deps struct {
	Bus *events.Bus
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// ErrorResponse is the JSON body of every error answer.
type ErrorResponse struct {
	Code    string
	Message string
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

type errorMapping struct {
	status  int
	message string
}

//nolint: gochecknoglobals
var errorMappings = map[serrors.Kind]errorMapping{
	serrors.ErrNotFound:      {http.StatusNotFound, "resource not found"},
	serrors.ErrBadRequest:    {http.StatusBadRequest, "bad request"},
	serrors.ErrUnauthorized:  {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrTimeout:       {http.StatusGatewayTimeout, "request timed out"},
	serrors.ErrUnavailable:   {http.StatusServiceUnavailable, "service unavailable"},
	serrors.ErrInvalidConfig: {http.StatusInternalServerError, "internal error"},
	serrors.ErrInternal:      {http.StatusInternalServerError, "internal error"},
}

// NewError maps err to a response using its semantic kind. Only messages
// attached to client-facing kinds are exposed.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	mapping, ok := errorMappings[kind]
	if !ok {
		kind, mapping = serrors.ErrInternal, errorMappings[serrors.ErrInternal]
	}

	message := mapping.message
	if mapping.status < http.StatusInternalServerError {
		if m := serrors.MessageOf(err); m != "" {
			message = m
		}
		logger.Debug(ctx, "request failed", zap.Error(err))
	} else {
		logger.Error(ctx, "request failed", zap.Error(err))
	}

	return &ErrorStatusCode{
		StatusCode: mapping.status,
		Response: ErrorResponse{
			Code:    kind.Error(),
			Message: message,
		},
	}
}

// Encode writes the error as a JSON object.
func (r ErrorResponse) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("code")
	e.Str(r.Code)
	e.FieldStart("message")
	e.Str(r.Message)
	e.ObjEnd()
}

func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)

	var e jx.Encoder
	res.Response.Encode(&e)
	writeJSON(w, res.StatusCode, e.Bytes())
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
