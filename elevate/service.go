// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package elevate

import (
	"fmt"
	"net"
	"os"
)

// Recover rebuilds the listening endpoint a freshly launched worker
// inherited from its bootstrap, using the slot dictated by the
// detected strategy. The raw descriptor must still be open; recovery
// takes ownership of it.
func Recover() (net.Listener, error) {
	return RecoverFrom(Select().RecoverSlot)
}

// RecoverFrom rebuilds the inherited listener from an explicit
// descriptor slot. The strategy-derived slot is the contract in
// production; taking the slot as a parameter keeps the contract
// substitutable in tests.
func RecoverFrom(slot int) (net.Listener, error) {
	file := os.NewFile(uintptr(slot), "channel-listener")
	if file == nil {
		return nil, fmt.Errorf("elevate: invalid descriptor slot %d", slot)
	}
	// FileListener dups the descriptor; release the inherited one so
	// the listener's lifetime is the only thing keeping the address
	// alive.
	listener, err := net.FileListener(file)
	file.Close()
	if err != nil {
		return nil, &TransportError{Op: fmt.Sprintf("recover listener from slot %d", slot), Err: err}
	}
	return listener, nil
}

// AcceptOne blocks for the single inbound connection of this worker's
// lifetime and closes the listener immediately after. One worker
// serves one client; there is nothing else to accept.
func AcceptOne(listener net.Listener) (net.Conn, error) {
	conn, err := listener.Accept()
	listener.Close()
	if err != nil {
		return nil, &TransportError{Op: "accept", Err: err}
	}
	return conn, nil
}
