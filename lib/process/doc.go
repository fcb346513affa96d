// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides binary entrypoint helpers for escalate
// binaries: fatal error reporting to stderr when the structured logger
// may not be initialized, and worker exit-status propagation so a
// client binary can exit with the code its worker exited with.
package process
