package service

import "errors"

var (
	// ErrEmptyPrompt is returned when a run is requested with no content
	// fragments.
	ErrEmptyPrompt = errors.New("prompt content is empty")

	// ErrEmptyTitle is returned when a run is requested without a title.
	ErrEmptyTitle = errors.New("prompt title is empty")

	// ErrNoModelConfigured is returned when no model name is available for
	// a completion request.
	ErrNoModelConfigured = errors.New("no model configured")

	// ErrBackendUnavailable wraps transport failures that indicate the
	// model server is not reachable or not ready.
	ErrBackendUnavailable = errors.New("model server unavailable")

	// ErrInvalidToken wraps authentication failures from the model server.
	ErrInvalidToken = errors.New("api token rejected by model server")

	// ErrEmptyToken is returned when SaveToken is called with a blank token.
	ErrEmptyToken = errors.New("api token is empty")
)
