// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"io"

	"github.com/fxamacker/cbor/v2"
)

// cborEncMode is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer
// encoding, no indefinite-length items. Same logical message always
// produces identical bytes on the wire.
var cborEncMode cbor.EncMode

// cborDecMode is the CBOR decoder configured to accept standard CBOR.
// Unknown fields are ignored so old workers tolerate newer clients.
var cborDecMode cbor.DecMode

func init() {
	var err error

	cborEncMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	cborDecMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// CBOR streams messages as back-to-back CBOR data items using Core
// Deterministic Encoding. Both channel ends must agree on the codec;
// external workers speak JSON, so CBOR is for module-internal pairs.
type CBOR struct{}

// NewEncoder returns a streaming CBOR encoder writing to w.
func (CBOR) NewEncoder(w io.Writer) Encoder {
	return cborEncMode.NewEncoder(w)
}

// NewDecoder returns a streaming CBOR decoder reading from r.
func (CBOR) NewDecoder(r io.Reader) Decoder {
	return cborDecMode.NewDecoder(r)
}
