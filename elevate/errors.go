// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package elevate

import "errors"

// ErrSlotCollision reports that the strategy's child slot is already
// claimed by something else on the command being built. The bootstrap
// refuses to silently displace it.
var ErrSlotCollision = errors.New("elevate: descriptor slot already occupied")

// TransportError reports a channel-plumbing failure during bootstrap
// or recovery: bind, connect, accept, or descriptor reconstruction.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return "elevate: " + e.Op + ": " + e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// SpawnError reports that the external worker command could not be
// launched.
type SpawnError struct {
	Path string
	Err  error
}

func (e *SpawnError) Error() string { return "elevate: spawn " + e.Path + ": " + e.Err.Error() }
func (e *SpawnError) Unwrap() error { return e.Err }
