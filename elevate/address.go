// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package elevate

import "github.com/google/uuid"

// Address identifies a channel endpoint in the abstract unix-socket
// namespace. It is not a filesystem path: nothing is created on disk,
// the name vanishes with its last open descriptor, and nothing needs
// cleaning up after a failed bootstrap.
type Address string

// NewAddress allocates a fresh channel address from a version 4 UUID.
// The 128-bit identity makes collisions between concurrent bootstraps
// on one host vanishingly unlikely. No OS resource is consumed until a
// listener actually binds the address.
func NewAddress() Address {
	return Address("@" + uuid.NewString())
}

// String returns the address in the form net.Listen and net.Dial
// accept for the abstract namespace (leading '@').
func (a Address) String() string {
	return string(a)
}
