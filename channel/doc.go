// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package channel implements the typed message layer over a bootstrap
// connection: a byte-stream endpoint paired with one outbound and one
// inbound message shape.
//
// The package is organized around the message flow:
//
//   - channel.go: the generic Channel, Send, and directional Shutdown
//   - iterator.go: the pull-based decoder iterator over the live stream
//   - errors.go: the error taxonomy (peer-closed vs encoding vs transport)
//
// A Channel is point-to-point and single-purpose: the client's Out type
// is the worker's In type and vice versa, each Send writes exactly one
// self-delimiting unit, and message order on each direction is the
// write order. Pairing requests with responses is an application
// convention; the channel itself never interleaves or reorders.
//
// A Channel is not safe for concurrent use without external locking,
// and an Iterator must be driven from a single goroutine.
package channel
