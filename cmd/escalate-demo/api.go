// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

// RequestType identifies a client-to-worker request.
type RequestType string

const (
	// RequestCompute asks the worker to acknowledge a value.
	RequestCompute RequestType = "compute"
	// RequestListPackages asks for the worker's package inventory.
	RequestListPackages RequestType = "list-packages"
	// RequestIdentity asks for the worker's numeric user id, which
	// verifies whether escalation actually happened.
	RequestIdentity RequestType = "identity"
)

// Request is one client-to-worker message.
type Request struct {
	Type  RequestType `json:"type"`
	Value int         `json:"value,omitempty"`
}

// ReplyType identifies a worker-to-client reply.
type ReplyType string

const (
	// ReplyComputed acknowledges a compute request.
	ReplyComputed ReplyType = "computed"
	// ReplyPackage carries one package from the inventory.
	ReplyPackage ReplyType = "package"
	// ReplyEndOfPackages marks the end of the inventory listing.
	ReplyEndOfPackages ReplyType = "end-of-packages"
	// ReplyIdentity carries the worker's numeric user id.
	ReplyIdentity ReplyType = "identity"
)

// Reply is one worker-to-client message.
type Reply struct {
	Type    ReplyType `json:"type"`
	Message string    `json:"message,omitempty"`
	Package *Package  `json:"package,omitempty"`
	UID     *int      `json:"uid,omitempty"`
}

// Package describes one installed software package.
type Package struct {
	Name          string `json:"name"`
	Version       string `json:"version"`
	Description   string `json:"description"`
	Size          uint64 `json:"size"`
	InstalledSize uint64 `json:"installed_size"`
	Arch          string `json:"arch"`
	URL           string `json:"url"`
	License       string `json:"license"`
}

// samplePackages returns the demo worker's static inventory.
func samplePackages() []Package {
	return []Package{
		{
			Name:          "nano",
			Version:       "8.3",
			Description:   "Small and friendly text editor",
			Size:          600_000,
			InstalledSize: 2_800_000,
			Arch:          "x86_64",
			URL:           "https://www.nano-editor.org",
			License:       "GPL-3.0",
		},
		{
			Name:          "zstd",
			Version:       "1.5.7",
			Description:   "Fast real-time compression algorithm",
			Size:          1_800_000,
			InstalledSize: 5_200_000,
			Arch:          "x86_64",
			URL:           "https://facebook.github.io/zstd",
			License:       "BSD-3-Clause",
		},
		{
			Name:          "htop",
			Version:       "3.4.1",
			Description:   "Interactive process viewer",
			Size:          400_000,
			InstalledSize: 1_300_000,
			Arch:          "x86_64",
			URL:           "https://htop.dev",
			License:       "GPL-2.0",
		},
	}
}
