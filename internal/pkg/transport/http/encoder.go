package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ijalalfrz/destination-deals-service/internal/app/dto"
	"github.com/ijalalfrz/destination-deals-service/internal/pkg/exception"
)

const (
	InternalServerErrorMessage = "Internal server error"

	OfferSourceHeader = "X-Offer-Source"
)

// ResponseWithBody is the common method to encode all response types to the client.
func ResponseWithBody(_ context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("encode response body: %w", err)
	}

	return nil
}

// SearchResponse encodes a dto.SearchResponse and reports where the offers came from.
func SearchResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	if resp, ok := response.(dto.SearchResponse); ok && resp.Source != "" {
		w.Header().Set(OfferSourceHeader, resp.Source)
	}

	return ResponseWithBody(ctx, w, response)
}

// ErrorResponse encodes the error response to the client. Application errors keep
// their status and message; anything else becomes a 500 with a fixed message so
// no detail leaks, and is logged.
func ErrorResponse(ctx context.Context, err error, respWriter http.ResponseWriter) {
	var (
		appErr     exception.ApplicationError
		message    = InternalServerErrorMessage
		statusCode = exception.StatusCode(err)
	)

	if errors.As(err, &appErr) {
		message = appErr.Message
	} else {
		slog.ErrorContext(ctx, "fatal error", slog.Any("error", err))
	}

	respWriter.Header().Set("Content-Type", "application/json; charset=utf-8")
	respWriter.WriteHeader(statusCode)

	//nolint:errcheck,errchkjson
	json.NewEncoder(respWriter).Encode(dto.ErrorResponse{
		Error: message,
	})
}
