// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package elevate

import (
	"os"
	"os/exec"
)

// MarkerEnv is the environment variable the elevation front-end sets
// in the escalated worker (pkexec records the invoking user's uid).
// Its presence is the sole signal that the worker runs elevated; the
// bootstrap scrubs it from the child environment so a worker that
// itself bootstraps a nested worker cannot misread its context.
const MarkerEnv = "PKEXEC_UID"

// defaultFrontEnd is the policy-gated elevation binary wrapped around
// the worker command by the Elevated strategy.
const defaultFrontEnd = "pkexec"

// Strategy is the execution policy for one privilege-escalation mode.
// It is plain data: two descriptor slot numbers and the command shape.
// Slot numbers are part of the interop contract with the front-end and
// must match on both ends of a bootstrap.
type Strategy struct {
	// ChildSlot is the descriptor the launched child inherits the
	// listening endpoint at.
	ChildSlot int

	// RecoverSlot is the descriptor the worker recovers the endpoint
	// from after any front-end descriptor rearrangement. For the
	// Elevated strategy the initializer moves the endpoint from
	// ChildSlot to RecoverSlot before recovery runs.
	RecoverSlot int

	// FrontEnd is the elevation front-end binary wrapped around the
	// worker command. Empty means direct invocation.
	FrontEnd string
}

// Elevated launches the worker through the elevation front-end. The
// endpoint rides the stderr slot because pkexec preserves only the
// standard descriptors across its own exec.
var Elevated = Strategy{ChildSlot: 2, RecoverSlot: 3, FrontEnd: defaultFrontEnd}

// Direct launches the worker without privilege escalation. The
// endpoint sits at the first free slot above the standard descriptors
// on both sides.
var Direct = Strategy{ChildSlot: 3, RecoverSlot: 3}

// Select picks the strategy matching the current process context. It
// is called once at worker start: the marker is present only when the
// front-end performed the launch.
func Select() Strategy {
	if _, ok := os.LookupEnv(MarkerEnv); ok {
		return Elevated
	}
	return Direct
}

// Command builds the external invocation for executable and args. It
// is a pure function of its inputs and the strategy: no process is
// spawned and no descriptor is touched.
func (s Strategy) Command(executable string, args []string) *exec.Cmd {
	if s.FrontEnd != "" {
		return exec.Command(s.FrontEnd, append([]string{executable}, args...)...)
	}
	return exec.Command(executable, args...)
}

// WithFrontEnd returns a copy of the strategy using the given
// elevation front-end binary, for deployments where pkexec is not on
// PATH. Meaningful only for the Elevated strategy.
func (s Strategy) WithFrontEnd(path string) Strategy {
	s.FrontEnd = path
	return s
}
