package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/globaltravelbg/package-feed-service/internal/app/dto"
	"github.com/globaltravelbg/package-feed-service/internal/pkg/exception"
)

// ResponseWithBody is the common method to encode all response types to the client.
func ResponseWithBody(_ context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("encode response body: %w", err)
	}

	return nil
}

// CacheableResponse marks the response as cacheable by downstream caches
// for maxAge seconds before writing the body.
func CacheableResponse(maxAge int) EncodeResponseFunc {
	return func(ctx context.Context, w http.ResponseWriter, response interface{}) error {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", maxAge))

		return ResponseWithBody(ctx, w, response)
	}
}

// NoStoreResponse forbids caching; the destination taxonomy changes at the
// feed's whim.
func NoStoreResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Cache-Control", "no-store, max-age=0")

	return ResponseWithBody(ctx, w, response)
}

// ErrorResponse encodes the error response to the client. it will check if it's a sentinel error or unknown error.
func ErrorResponse(ctx context.Context, err error, respWriter http.ResponseWriter) {
	var (
		appErr  exception.ApplicationError
		message string
		status  int
	)

	if errors.As(err, &appErr) {
		status = appErr.StatusCode
		message = appErr.Message
	} else {
		status = http.StatusInternalServerError
		message = err.Error()

		slog.ErrorContext(ctx, message, slog.Any("error", err))
	}

	respWriter.Header().Set("Content-Type", "application/json; charset=utf-8")
	respWriter.WriteHeader(status)

	//nolint:errcheck,errchkjson
	json.NewEncoder(respWriter).Encode(dto.ErrorResponse{
		Error: message,
	})
}
