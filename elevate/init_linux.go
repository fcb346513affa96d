// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux

package elevate

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Init repairs the descriptor layout of a freshly escalated worker and
// must be the first thing main does: it has to run before anything
// writes to stderr and before any code (including the network poller)
// allocates descriptors that could land on the recovery slot.
//
// Outside an elevated context it is a no-op. Under the front-end the
// worker starts with the channel endpoint on the stderr slot and its
// real stderr pointing nowhere useful; Init moves the endpoint to the
// recovery slot and repoints stderr at stdout, so diagnostics reach a
// stream the client still observes.
func Init() error {
	if _, ok := os.LookupEnv(MarkerEnv); !ok {
		return nil
	}
	return repairDescriptors(Elevated)
}

// repairDescriptors moves the inherited endpoint from the strategy's
// child slot to its recovery slot, then reuses the vacated child slot
// (the process's stderr) as a duplicate of stdout.
func repairDescriptors(strategy Strategy) error {
	if strategy.ChildSlot == strategy.RecoverSlot {
		return nil
	}
	if err := unix.Dup3(strategy.ChildSlot, strategy.RecoverSlot, 0); err != nil {
		return fmt.Errorf("elevate: move channel descriptor %d to %d: %w",
			strategy.ChildSlot, strategy.RecoverSlot, err)
	}
	if err := unix.Close(strategy.ChildSlot); err != nil {
		return fmt.Errorf("elevate: close descriptor %d: %w", strategy.ChildSlot, err)
	}
	if err := unix.Dup3(1, strategy.ChildSlot, 0); err != nil {
		return fmt.Errorf("elevate: redirect stderr to stdout: %w", err)
	}
	return nil
}
