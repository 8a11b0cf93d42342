// SPDX-License-Identifier: Apache-2.0

package service

import (
	"errors"
	"fmt"

	"github.com/AI-Engineer-Skool/your-ai-lab/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// business error.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)

	case errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable),
		errors.Is(err, adapter.ErrTooManyRequests):
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	return err
}
