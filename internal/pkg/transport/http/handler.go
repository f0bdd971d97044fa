package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
)

type DecodeRequestFunc func(ctx context.Context, r *http.Request) (interface{}, error)

type EncodeResponseFunc func(ctx context.Context, w http.ResponseWriter, response interface{}) error

// MakeHandlerFunc glues a decoder, an endpoint and an encoder into a handler.
// Decode and endpoint errors go through ErrorResponse.
func MakeHandlerFunc(e endpoint.Endpoint, dec DecodeRequestFunc, enc EncodeResponseFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		req, err := dec(ctx, r)
		if err != nil {
			ErrorResponse(ctx, err, w)
			return
		}

		resp, err := e(ctx, req)
		if err != nil {
			ErrorResponse(ctx, err, w)
			return
		}

		if err := enc(ctx, w, resp); err != nil {
			slog.ErrorContext(ctx, "failed to encode response", slog.String("error", err.Error()))
		}
	}
}

// DecodeRequest decodes the JSON body into a new T regardless of the request
// content type, then runs its render.Binder hook if it has one.
func DecodeRequest[T any](_ context.Context, r *http.Request) (interface{}, error) {
	req := new(T)

	if err := render.DecodeJSON(r.Body, req); err != nil {
		return nil, fmt.Errorf("decode request body: %w", err)
	}

	if binder, ok := any(req).(render.Binder); ok {
		if err := binder.Bind(r); err != nil {
			return nil, fmt.Errorf("bind request: %w", err)
		}
	}

	return req, nil
}
