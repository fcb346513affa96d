// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package elevate

// Init is a no-op off Linux. Elevation front-end support (pkexec and
// the abstract socket namespace) is Linux-only; the Direct strategy
// needs no descriptor repair.
func Init() error {
	return nil
}
