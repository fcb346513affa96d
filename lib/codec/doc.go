// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the self-delimiting wire encodings used by
// escalate channels.
//
// A channel writes each message as one encoded unit and concatenates
// units back-to-back on the stream with no extra framing; unit
// boundaries are recovered entirely from the encoding itself. Two
// codecs satisfy that property:
//
//   - JSON: streamed JSON values. This is the wire default, and the
//     format fixed by the descriptor-inheritance contract with external
//     workers, which expects structured text.
//   - CBOR: RFC 8949 with Core Deterministic Encoding. Binary, smaller,
//     usable when both channel ends are built from this module.
//
// Both expose the same Codec/Encoder/Decoder surface so the channel
// layer is written once.
package codec
