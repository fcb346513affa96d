// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import "io"

// Codec produces encoders and decoders for one self-delimiting wire
// format. Implementations must guarantee that successive encoded units
// written back-to-back can be decoded without any external framing.
type Codec interface {
	NewEncoder(w io.Writer) Encoder
	NewDecoder(r io.Reader) Decoder
}

// Encoder writes one value per Encode call as a single self-delimiting
// unit, flushing it fully before returning.
type Encoder interface {
	Encode(v any) error
}

// Decoder consumes exactly one self-delimiting unit per Decode call.
// It returns io.EOF when the stream ends cleanly between units and
// io.ErrUnexpectedEOF when it ends inside one.
type Decoder interface {
	Decode(v any) error
}
