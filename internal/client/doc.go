// SPDX-License-Identifier: Apache-2.0

// Package client implements the interactive client application runtime.
//
// It wires the REST gateway, session manager, expiry watcher, year catalog
// controller and terminal UI into a single process lifecycle.
package client
