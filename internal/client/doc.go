// SPDX-License-Identifier: Apache-2.0

// Package client implements the lab client application runtime.
//
// It wires the model server adapter, client services, and background workers
// into a single process lifecycle, and picks between the one-shot prompt mode
// and the interactive terminal UI based on the parsed configuration.
package client
