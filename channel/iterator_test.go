// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package channel

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/bureau-foundation/escalate/lib/codec"
)

// iteratorOver builds an iterator reading raw wire bytes, bypassing a
// live connection so classification can be exercised byte by byte.
func iteratorOver(stream *bytes.Buffer) *Iterator[testRequest] {
	return &Iterator[testRequest]{decoder: codec.JSON{}.NewDecoder(stream)}
}

func TestIteratorCleanTermination(t *testing.T) {
	stream := bytes.NewBufferString(`{"type":"ping"}{"type":"compute","value":3}`)
	incoming := iteratorOver(stream)

	first, err := incoming.Next()
	if err != nil {
		t.Fatalf("first Next: %v", err)
	}
	if first.Type != "ping" {
		t.Errorf("first message: got type %q, want %q", first.Type, "ping")
	}

	second, err := incoming.Next()
	if err != nil {
		t.Fatalf("second Next: %v", err)
	}
	if second.Value != 3 {
		t.Errorf("second message: got value %d, want 3", second.Value)
	}

	// The stream ends exactly on a unit boundary: termination, no
	// error element.
	if _, err := incoming.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("at clean end: got %v, want io.EOF", err)
	}
	if !incoming.Done() {
		t.Error("iterator not terminal at clean end")
	}
}

func TestIteratorTruncatedUnit(t *testing.T) {
	stream := bytes.NewBufferString(`{"type":"ping"}{"type":"comp`)
	incoming := iteratorOver(stream)

	if _, err := incoming.Next(); err != nil {
		t.Fatalf("first Next: %v", err)
	}

	// A stream dying mid-unit is unexpected-end, which still folds
	// into ordinary termination rather than an error element.
	if _, err := incoming.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("at truncated unit: got %v, want io.EOF", err)
	}
	if !incoming.Done() {
		t.Error("iterator not terminal after truncated unit")
	}
}

func TestIteratorMalformedUnit(t *testing.T) {
	stream := bytes.NewBufferString(`{"type":"ping"}%%%%`)
	incoming := iteratorOver(stream)

	if _, err := incoming.Next(); err != nil {
		t.Fatalf("first Next: %v", err)
	}

	_, err := incoming.Next()
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("at malformed unit: got %v, want *DecodeError", err)
	}

	// A malformed unit is not stream termination; the iterator stays
	// live and the caller decides whether to keep pulling.
	if incoming.Done() {
		t.Error("iterator terminal after malformed unit")
	}
	if _, err := incoming.Next(); errors.Is(err, io.EOF) {
		t.Error("iterator reported io.EOF solely because of a malformed unit")
	}
}

func TestIteratorTerminalLatch(t *testing.T) {
	stream := bytes.NewBufferString(`{"type":"ping"}`)
	incoming := iteratorOver(stream)

	if _, err := incoming.Next(); err != nil {
		t.Fatalf("first Next: %v", err)
	}
	if _, err := incoming.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("at end: got %v, want io.EOF", err)
	}

	// Bytes arriving after logical end-of-stream must not re-arm the
	// iterator.
	stream.WriteString(`{"type":"late"}`)
	if _, err := incoming.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("after late bytes: got %v, want io.EOF", err)
	}
	if !incoming.Done() {
		t.Error("terminal state lost after late bytes")
	}
}

func TestIteratorCBOR(t *testing.T) {
	var stream bytes.Buffer
	encoder := codec.CBOR{}.NewEncoder(&stream)
	for i := 0; i < 3; i++ {
		if err := encoder.Encode(testRequest{Type: "compute", Value: i}); err != nil {
			t.Fatalf("Encode %d: %v", i, err)
		}
	}

	incoming := &Iterator[testRequest]{decoder: codec.CBOR{}.NewDecoder(&stream)}
	for i := 0; i < 3; i++ {
		message, err := incoming.Next()
		if err != nil {
			t.Fatalf("Next %d: %v", i, err)
		}
		if message.Value != i {
			t.Errorf("message %d: got value %d, want %d", i, message.Value, i)
		}
	}
	if _, err := incoming.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("at end: got %v, want io.EOF", err)
	}
}
