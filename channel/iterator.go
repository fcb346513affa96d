// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package channel

import (
	"io"

	"github.com/bureau-foundation/escalate/lib/codec"
)

// Iterator pulls successive inbound messages off a live channel. It is
// single-pass and stateful: once the stream terminates the iterator is
// terminal and reports io.EOF forever, even if more bytes later arrive
// on the connection.
type Iterator[In any] struct {
	decoder codec.Decoder
	done    bool
}

// Next decodes the next inbound unit. It blocks until a unit arrives,
// the stream terminates, or a decode fault occurs.
//
// Returns io.EOF once the stream has terminated. Clean end-of-stream,
// end-of-stream inside a unit, and peer-closed or connection-reset
// transport reports all count as termination; none of them surface as
// a distinct error. Any other decode failure returns a *DecodeError
// and leaves the iterator non-terminal, so a single malformed unit
// does not tear down the session.
func (it *Iterator[In]) Next() (In, error) {
	var zero In
	if it.done {
		return zero, io.EOF
	}

	var message In
	err := it.decoder.Decode(&message)
	if err == nil {
		return message, nil
	}
	if isStreamEnd(err) {
		it.done = true
		return zero, io.EOF
	}
	return zero, &DecodeError{Err: err}
}

// Done reports whether the iterator has reached the terminal state.
func (it *Iterator[In]) Done() bool {
	return it.done
}
