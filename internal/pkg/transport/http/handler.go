package http

import (
	"context"
	"net/http"

	"github.com/go-kit/kit/endpoint"
)

// DecodeRequestFunc extracts an endpoint request from the HTTP request.
type DecodeRequestFunc func(ctx context.Context, r *http.Request) (interface{}, error)

// EncodeResponseFunc writes an endpoint response to the client.
type EncodeResponseFunc func(ctx context.Context, w http.ResponseWriter, response interface{}) error

// MakeHandlerFunc adapts a go-kit endpoint to an http.HandlerFunc. Decode
// and endpoint errors both go through the shared error encoder so every
// route answers failures with the same JSON shape.
func MakeHandlerFunc(
	ep endpoint.Endpoint,
	dec DecodeRequestFunc,
	enc EncodeResponseFunc,
) http.HandlerFunc {
	return func(respWriter http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		request, err := dec(ctx, req)
		if err != nil {
			ErrorResponse(ctx, err, respWriter)

			return
		}

		response, err := ep(ctx, request)
		if err != nil {
			ErrorResponse(ctx, err, respWriter)

			return
		}

		if err := enc(ctx, respWriter, response); err != nil {
			ErrorResponse(ctx, err, respWriter)
		}
	}
}

// NopRequest decodes endpoints that take no input.
func NopRequest(_ context.Context, _ *http.Request) (interface{}, error) {
	return nil, nil
}
