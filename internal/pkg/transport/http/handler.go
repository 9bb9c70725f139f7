package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/itinerary-planner-service/internal/pkg/exception"
)

type DecodeRequestFunc func(r *http.Request) (interface{}, error)

type EncodeResponseFunc func(ctx context.Context, w http.ResponseWriter, response interface{}) error

// MakeHandlerFunc adapts a go-kit endpoint to net/http: decode, call, encode, and
// report any failure through ErrorResponse.
func MakeHandlerFunc(
	endpt endpoint.Endpoint,
	decode DecodeRequestFunc,
	encode EncodeResponseFunc,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		request, err := decode(r)
		if err != nil {
			ErrorResponse(ctx, err, w)
			return
		}

		response, err := endpt(ctx, request)
		if err != nil {
			ErrorResponse(ctx, err, w)
			return
		}

		if err := encode(ctx, w, response); err != nil {
			ErrorResponse(ctx, err, w)
		}
	}
}

// Bind decodes the JSON body into a new T and runs its Bind hook.
func Bind[T any, PT interface {
	*T
	render.Binder
}](r *http.Request) (PT, error) {
	req := PT(new(T))

	if err := render.Bind(r, req); err != nil {
		var appErr exception.ApplicationError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, exception.WithCause(http.StatusBadRequest, "invalid request body", err)
	}

	return req, nil
}

func DecodeRequest[T any, PT interface {
	*T
	render.Binder
}](r *http.Request) (interface{}, error) {
	req, err := Bind[T, PT](r)
	if err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}

	return req, nil
}
