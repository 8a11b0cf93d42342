// SPDX-License-Identifier: Apache-2.0

package server

import "errors"

var (
	errNoHandler = errors.New("no handler to serve")
	errNoAddress = errors.New("no listen address configured")
)
