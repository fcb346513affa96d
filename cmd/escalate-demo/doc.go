// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// escalate-demo demonstrates the bootstrap and typed channel layers
// with a package-inventory worker.
//
// Run without flags it is the client: it bootstraps a copy of itself
// as a privileged worker through pkexec, sends a few requests, prints
// the replies, and exits with the worker's exit code. With --direct it
// launches the worker without privilege escalation, which is useful
// for trying the exchange without a polkit prompt.
//
// The --server flag marks the worker role. It is passed by the
// bootstrap and not intended for direct use.
//
// Environment variables:
//
//	ESCALATE_CONFIG  path to a YAML configuration file
//	ESCALATE_DEBUG   enable debug logging
package main
