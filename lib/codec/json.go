// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"encoding/json"
	"io"
)

// JSON streams messages as back-to-back JSON values. Each Encode call
// writes one value followed by a newline (insignificant inter-unit
// whitespace); Decode consumes one value regardless of surrounding
// whitespace. This is the wire default for escalate channels.
type JSON struct{}

// NewEncoder returns a streaming JSON encoder writing to w.
func (JSON) NewEncoder(w io.Writer) Encoder {
	return json.NewEncoder(w)
}

// NewDecoder returns a streaming JSON decoder reading from r. The
// decoder buffers internally; do not mix it with direct reads from r.
func (JSON) NewDecoder(r io.Reader) Decoder {
	return json.NewDecoder(r)
}
