// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer for communicating with the
// model server's OpenAI-compatible API.
//
// The primary abstraction is [ModelServerAdapter], which decouples the
// service layer from the wire protocol. The package ships an HTTP/REST
// implementation ([NewHTTPModelServerAdapter]) that speaks the completion
// endpoints LocalAI exposes.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/AI-Engineer-Skool/your-ai-lab/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/model_server_adapter_mock.go -package=mock

// ModelServerAdapter defines transport-agnostic communication with the model
// server. Implementations are responsible for serialisation, authorization
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ModelServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent requests. A local backend typically needs none; pass the
	// empty string to clear a previously set token.
	SetToken(token string)

	// Token returns the bearer token currently held by the adapter, or an
	// empty string if none has been set.
	Token() string

	// ListModels fetches the model catalog from GET /models. Returns an
	// error if the request fails or the response cannot be decoded.
	ListModels(ctx context.Context) (models.ModelList, error)

	// Complete sends a non-streaming completion request and returns the
	// single response chunk. The req.Stream flag is forced to false.
	Complete(ctx context.Context, req models.CompletionRequest) (models.CompletionChunk, error)

	// CompleteStream sends a streaming completion request and returns a
	// channel of tokens plus an error channel. The token channel is closed
	// when the stream ends; at most one error is sent before the error
	// channel closes. Each token carries the time elapsed since the stream
	// started. Malformed stream chunks are skipped.
	CompleteStream(ctx context.Context, req models.CompletionRequest) (<-chan models.StreamToken, <-chan error)
}
