// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys, prompt
// fingerprint hashing, HTTP client initialization, JSON response writing,
// and UUID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RunIDCtxKey is the key used to store the completion run identifier in the
// context. Used together with GetRunIDFromContext for type-safe retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.RunIDCtxKey, runID)
var RunIDCtxKey = contextKey("runID")

// GetRunIDFromContext retrieves the completion run identifier from the context.
//
// Returns the run ID and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetRunIDFromContext(ctx context.Context) (string, bool) {
	runID, ok := ctx.Value(RunIDCtxKey).(string)
	return runID, ok
}
