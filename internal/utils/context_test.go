package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGetRunIDFromContext_Found verifies retrieval of a stored run ID.
func TestGetRunIDFromContext_Found(t *testing.T) {
	ctx := context.WithValue(context.Background(), RunIDCtxKey, "0190ed0e-run")

	runID, ok := GetRunIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "0190ed0e-run", runID)
}

// TestGetRunIDFromContext_Missing verifies that a bare context yields ok=false.
func TestGetRunIDFromContext_Missing(t *testing.T) {
	runID, ok := GetRunIDFromContext(context.Background())
	assert.False(t, ok)
	assert.Empty(t, runID)
}

// TestGetRunIDFromContext_WrongType verifies that a value of the wrong type
// is not returned.
func TestGetRunIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), RunIDCtxKey, 42)

	_, ok := GetRunIDFromContext(ctx)
	assert.False(t, ok)
}
