// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package channel

import (
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/bureau-foundation/escalate/lib/codec"
)

// Conn is the minimal byte-stream endpoint a Channel runs over: full
// duplex with independent half-close of each direction. *net.UnixConn
// and *net.TCPConn both satisfy it.
type Conn interface {
	io.Reader
	io.Writer
	io.Closer
	CloseRead() error
	CloseWrite() error
}

// Direction selects which side of a channel Shutdown closes.
type Direction int

const (
	// Read shuts down the inbound side; pending and future receives
	// observe end-of-stream.
	Read Direction = iota
	// Write shuts down the outbound side; the peer's decoder observes
	// end-of-stream once buffered units drain.
	Write
	// Both closes the underlying endpoint entirely.
	Both
)

// Channel wraps one connection with a specific outbound message type
// Out and inbound message type In. The two ends of a pair instantiate
// it with the type parameters swapped.
type Channel[Out, In any] struct {
	conn    Conn
	wire    codec.Codec
	encoder codec.Encoder
}

// New wraps conn in a typed channel using the given wire codec. The
// channel takes over all reads and writes on conn; mixing direct I/O
// on conn with channel operations corrupts the unit framing.
func New[Out, In any](conn Conn, wire codec.Codec) *Channel[Out, In] {
	return &Channel[Out, In]{
		conn:    conn,
		wire:    wire,
		encoder: wire.NewEncoder(conn),
	}
}

// Send encodes message as one self-delimiting unit and writes it to
// the connection. A graceful peer shutdown surfaces as ErrPeerClosed,
// an unencodable message as *EncodeError, and any other I/O fault as a
// wrapped transport error.
func (c *Channel[Out, In]) Send(message Out) error {
	err := c.encoder.Encode(message)
	if err == nil {
		return nil
	}
	if isPeerClosed(err) {
		return ErrPeerClosed
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) || errors.Is(err, net.ErrClosed) {
		return fmt.Errorf("channel: write: %w", err)
	}
	return &EncodeError{Err: err}
}

// Incoming returns an iterator over inbound messages. Each call starts
// a fresh iterator reading from the current stream position; only one
// iterator may be driven at a time.
func (c *Channel[Out, In]) Incoming() *Iterator[In] {
	return &Iterator[In]{decoder: c.wire.NewDecoder(c.conn)}
}

// Shutdown half- or fully closes the underlying connection. Subsequent
// operations on a closed direction fail promptly rather than hang.
// Shutting down an already shut-down direction is harmless.
func (c *Channel[Out, In]) Shutdown(direction Direction) error {
	var err error
	switch direction {
	case Read:
		err = c.conn.CloseRead()
	case Write:
		err = c.conn.CloseWrite()
	case Both:
		err = c.conn.Close()
	default:
		return fmt.Errorf("channel: unknown shutdown direction %d", direction)
	}
	if err != nil && !errors.Is(err, net.ErrClosed) {
		return fmt.Errorf("channel: shutdown: %w", err)
	}
	return nil
}
