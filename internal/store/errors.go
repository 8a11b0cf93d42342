package store

import "errors"

var (
	// ErrExampleNotFound is returned when a queried example does not exist
	// or has been soft-deleted.
	ErrExampleNotFound = errors.New("example not found")

	// ErrDuplicateExample is returned when saving an example whose
	// fingerprint already exists in the library.
	ErrDuplicateExample = errors.New("example already saved")

	// ErrCredentialNotFound is returned when no credential row exists for
	// the requested name.
	ErrCredentialNotFound = errors.New("credential not found")
)
