// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package channel

import (
	"errors"
	"io"
	"net"
	"syscall"
)

// ErrPeerClosed reports that the remote end has shut down its side of
// the channel. Callers treat this as an expected outcome of a finished
// exchange, distinct from transport faults.
var ErrPeerClosed = errors.New("channel: peer closed")

// EncodeError reports an outbound message the codec could not encode.
// The channel remains usable; the message was never written.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string { return "channel: encode message: " + e.Err.Error() }
func (e *EncodeError) Unwrap() error { return e.Err }

// DecodeError reports an inbound unit that could not be decoded into
// the channel's inbound type. The stream position is past the bad unit
// as far as the codec could determine; iteration may continue.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return "channel: decode message: " + e.Err.Error() }
func (e *DecodeError) Unwrap() error { return e.Err }

// isStreamEnd reports whether err is one of the conditions folded into
// ordinary sequence termination: clean end-of-stream between units,
// end-of-stream inside a unit, or the peer closing or resetting the
// connection under the decoder.
func isStreamEnd(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, net.ErrClosed) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE)
}

// isPeerClosed reports whether a write failed because the peer is gone
// rather than because of a local fault.
func isPeerClosed(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, syscall.ECONNRESET)
}
