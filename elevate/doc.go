// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package elevate bootstraps a private channel between an unprivileged
// client and a privileged worker process it launches on demand through
// an elevation front-end (pkexec).
//
// The package is organized around the bootstrap data flow:
//
//   - address.go: collision-resistant abstract-namespace channel addresses
//   - strategy.go: the execution strategy (descriptor slots, command shape)
//   - bootstrap.go: client-side listen, launch, and connect
//   - service.go: worker-side recovery of the inherited listener
//   - init_linux.go: descriptor repair at escalated worker start
//
// The client binds a listener on a fresh abstract unix-socket address
// and launches the worker command with the listening descriptor mapped
// onto the strategy's child slot, then connects to the same address.
// The worker rebuilds the listener from its recovery slot and accepts
// that single connection. The listener is bound before the launch, so
// a refused elevation closes the only remaining listener descriptor
// and the client's connection fails promptly instead of hanging.
//
// Exactly one channel exists per bootstrap and the worker serves
// exactly one connection; there is no broker, multiplexing, or retry
// at this layer.
package elevate
