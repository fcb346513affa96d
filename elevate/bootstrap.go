// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package elevate

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/exec"
	"strings"

	"github.com/bureau-foundation/escalate/lib/process"
)

// Session is the client's side of one bootstrap: the connected channel
// endpoint and the handle of the launched worker. It is immutable
// after construction apart from Close and Wait.
type Session struct {
	conn *net.UnixConn
	cmd  *exec.Cmd
}

// Bootstrap establishes a private channel to a worker launched via the
// given strategy. It binds a listener on a fresh abstract address,
// starts the strategy's command with the listening descriptor mapped
// onto the child slot and the elevation marker scrubbed from the
// environment, drops every local listener descriptor, and connects to
// the address.
//
// The bind happens before the launch and the child holds the only
// surviving listener descriptor afterward, so a refused elevation
// closes the address and the returned connection fails promptly on
// first use instead of hanging.
//
// Errors are *TransportError (bind or connect), ErrSlotCollision
// (descriptor mapping), or *SpawnError (command launch).
func Bootstrap(executable string, args []string, strategy Strategy) (*Session, error) {
	address := NewAddress()

	listener, err := net.Listen("unix", address.String())
	if err != nil {
		return nil, &TransportError{Op: "bind " + address.String(), Err: err}
	}
	unixListener := listener.(*net.UnixListener)

	// File dups the descriptor; both copies are closed below once the
	// child owns its own dup.
	listenerFile, err := unixListener.File()
	if err != nil {
		unixListener.Close()
		return nil, &TransportError{Op: "export listener descriptor", Err: err}
	}

	cmd := strategy.Command(executable, args)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	if strategy.ChildSlot != stderrSlot {
		cmd.Stderr = os.Stderr
	}
	cmd.Env = scrubbedEnviron()

	padding, err := mapListener(cmd, listenerFile, strategy.ChildSlot)
	if err != nil {
		listenerFile.Close()
		unixListener.Close()
		return nil, err
	}

	startErr := cmd.Start()

	// The parent's listener descriptors must go away regardless of the
	// start outcome: after this point only the child can keep the
	// address alive.
	listenerFile.Close()
	unixListener.Close()
	for _, pad := range padding {
		pad.Close()
	}

	if startErr != nil {
		return nil, &SpawnError{Path: cmd.Path, Err: startErr}
	}

	slog.Debug("bootstrapped worker", "address", address, "pid", cmd.Process.Pid)

	conn, err := net.Dial("unix", address.String())
	if err != nil {
		// The worker exited (or the front-end refused) before the
		// connect landed. Collect it in the background; there is no
		// session for the caller to wait on.
		go cmd.Wait()
		return nil, &TransportError{Op: "connect " + address.String(), Err: err}
	}

	return &Session{conn: conn.(*net.UnixConn), cmd: cmd}, nil
}

// stderrSlot is the descriptor number exec.Cmd wires Stderr to.
const stderrSlot = 2

// extraFilesBase is the first descriptor number exec.Cmd assigns to
// ExtraFiles entries.
const extraFilesBase = 3

// mapListener arranges for file to appear at the given descriptor slot
// in cmd's child process. Slots below stderr belong to stdin/stdout
// and are always a collision; slots at extraFilesBase and above are
// reached by padding ExtraFiles with /dev/null. The returned padding
// files stay open until after the command starts.
func mapListener(cmd *exec.Cmd, file *os.File, slot int) ([]*os.File, error) {
	switch {
	case slot < stderrSlot:
		return nil, fmt.Errorf("slot %d is reserved for standard input/output: %w", slot, ErrSlotCollision)
	case slot == stderrSlot:
		if cmd.Stderr != nil {
			return nil, fmt.Errorf("slot %d: %w", slot, ErrSlotCollision)
		}
		cmd.Stderr = file
		return nil, nil
	default:
		index := slot - extraFilesBase
		if index < len(cmd.ExtraFiles) {
			return nil, fmt.Errorf("slot %d: %w", slot, ErrSlotCollision)
		}
		var padding []*os.File
		for len(cmd.ExtraFiles) < index {
			pad, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
			if err != nil {
				for _, p := range padding {
					p.Close()
				}
				return nil, &TransportError{Op: "open padding descriptor", Err: err}
			}
			padding = append(padding, pad)
			cmd.ExtraFiles = append(cmd.ExtraFiles, pad)
		}
		cmd.ExtraFiles = append(cmd.ExtraFiles, file)
		return padding, nil
	}
}

// scrubbedEnviron returns the current environment without the
// elevation marker.
func scrubbedEnviron() []string {
	environ := os.Environ()
	scrubbed := make([]string, 0, len(environ))
	for _, entry := range environ {
		if strings.HasPrefix(entry, MarkerEnv+"=") {
			continue
		}
		scrubbed = append(scrubbed, entry)
	}
	return scrubbed
}

// Conn returns the connected channel endpoint. Wrap it in a typed
// channel for message exchange.
func (s *Session) Conn() *net.UnixConn {
	return s.conn
}

// Pid returns the launched worker's process id.
func (s *Session) Pid() int {
	return s.cmd.Process.Pid
}

// Wait reaps the worker and reports its exit status: nil for a clean
// exit, *process.ExitError for a non-zero one. Call it after the
// message exchange is finished; the bootstrap never waits on the
// worker by itself.
func (s *Session) Wait() error {
	if err := s.cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &process.ExitError{Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("elevate: wait for worker: %w", err)
	}
	return nil
}

// Close closes the channel endpoint. It does not reap the worker; the
// worker exits on its own once its side of the channel drains, and
// callers that need the exit status call Wait.
func (s *Session) Close() error {
	return s.conn.Close()
}
