// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package elevate

import (
	"os"
	"reflect"
	"testing"
)

func TestSlotContract(t *testing.T) {
	// These numbers are the interop contract with the elevation
	// front-end and must not drift.
	if Elevated.ChildSlot != 2 || Elevated.RecoverSlot != 3 {
		t.Errorf("Elevated slots: got {%d, %d}, want {2, 3}", Elevated.ChildSlot, Elevated.RecoverSlot)
	}
	if Direct.ChildSlot != 3 || Direct.RecoverSlot != 3 {
		t.Errorf("Direct slots: got {%d, %d}, want {3, 3}", Direct.ChildSlot, Direct.RecoverSlot)
	}
}

func TestSelectWithMarker(t *testing.T) {
	t.Setenv(MarkerEnv, "1000")

	if got := Select(); got != Elevated {
		t.Errorf("Select with marker: got %+v, want Elevated", got)
	}
}

func TestSelectMarkerPresenceNotValue(t *testing.T) {
	// Presence alone decides; an empty value still means elevated.
	t.Setenv(MarkerEnv, "")

	if got := Select(); got != Elevated {
		t.Errorf("Select with empty marker: got %+v, want Elevated", got)
	}
}

func TestSelectWithoutMarker(t *testing.T) {
	t.Setenv(MarkerEnv, "1000")
	os.Unsetenv(MarkerEnv)

	if got := Select(); got != Direct {
		t.Errorf("Select without marker: got %+v, want Direct", got)
	}
}

func TestCommandShapeElevated(t *testing.T) {
	cmd := Elevated.Command("/usr/libexec/demo-worker", []string{"--server", "-v"})

	want := []string{"pkexec", "/usr/libexec/demo-worker", "--server", "-v"}
	if !reflect.DeepEqual(cmd.Args, want) {
		t.Errorf("elevated command: got %v, want %v", cmd.Args, want)
	}
}

func TestCommandShapeDirect(t *testing.T) {
	cmd := Direct.Command("/usr/libexec/demo-worker", []string{"--server"})

	want := []string{"/usr/libexec/demo-worker", "--server"}
	if !reflect.DeepEqual(cmd.Args, want) {
		t.Errorf("direct command: got %v, want %v", cmd.Args, want)
	}
}

func TestCommandPure(t *testing.T) {
	args := []string{"--server"}
	first := Elevated.Command("worker", args)
	second := Elevated.Command("worker", args)

	if !reflect.DeepEqual(first.Args, second.Args) {
		t.Errorf("repeated invocations differ: %v vs %v", first.Args, second.Args)
	}
	if !reflect.DeepEqual(args, []string{"--server"}) {
		t.Errorf("input args mutated: %v", args)
	}
}

func TestWithFrontEnd(t *testing.T) {
	custom := Elevated.WithFrontEnd("/usr/local/bin/pkexec")

	cmd := custom.Command("worker", nil)
	if cmd.Args[0] != "/usr/local/bin/pkexec" {
		t.Errorf("front-end override: got %s", cmd.Args[0])
	}
	if Elevated.FrontEnd != "pkexec" {
		t.Errorf("WithFrontEnd mutated the shared strategy: %s", Elevated.FrontEnd)
	}
	if custom.ChildSlot != Elevated.ChildSlot || custom.RecoverSlot != Elevated.RecoverSlot {
		t.Error("WithFrontEnd disturbed the slot contract")
	}
}
