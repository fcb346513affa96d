// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/escalate/channel"
	"github.com/bureau-foundation/escalate/elevate"
	"github.com/bureau-foundation/escalate/lib/codec"
	"github.com/bureau-foundation/escalate/lib/config"
	"github.com/bureau-foundation/escalate/lib/process"
)

func main() {
	// Descriptor repair has to happen before anything else in the
	// process: before flag parsing, logging, and any code that could
	// write to stderr or allocate descriptors.
	if err := elevate.Init(); err != nil {
		process.Fatal(err)
	}

	server := pflag.Bool("server", false, "run as the bootstrapped worker (internal)")
	direct := pflag.Bool("direct", false, "launch the worker without privilege escalation")
	configPath := pflag.String("config", "", "path to configuration file")
	pflag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		process.Fatal(err)
	}

	level := slog.LevelInfo
	if cfg.Debug || os.Getenv("ESCALATE_DEBUG") != "" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	if *server {
		err = runServer(logger)
	} else {
		err = runClient(cfg, *direct, logger)
	}
	if err != nil {
		if code, ok := process.IsExitError(err); ok {
			os.Exit(code)
		}
		process.Fatal(err)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadFromEnv()
}

// runClient bootstraps this binary as the worker and drives the sample
// exchange: a compute request, a package listing, and an identity
// query, then a write shutdown so the worker sees the request stream
// end.
func runClient(cfg *config.Config, direct bool, logger *slog.Logger) error {
	executable, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve own executable: %w", err)
	}

	strategy := elevate.Elevated.WithFrontEnd(cfg.FrontEnd)
	if direct {
		strategy = elevate.Direct
	}

	session, err := elevate.Bootstrap(executable, []string{"--server"}, strategy)
	if err != nil {
		return err
	}
	defer session.Close()
	logger.Info("worker launched", "pid", session.Pid())

	ch := channel.New[Request, Reply](session.Conn(), codec.JSON{})
	requests := []Request{
		{Type: RequestCompute, Value: 42},
		{Type: RequestListPackages},
		{Type: RequestIdentity},
	}
	for _, request := range requests {
		if err := ch.Send(request); err != nil {
			return fmt.Errorf("send %s: %w", request.Type, err)
		}
	}
	if err := ch.Shutdown(channel.Write); err != nil {
		return err
	}

	incoming := ch.Incoming()
	for {
		reply, err := incoming.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logger.Error("undecodable reply", "error", err)
			continue
		}
		switch reply.Type {
		case ReplyComputed:
			logger.Info("computed", "message", reply.Message)
		case ReplyPackage:
			logger.Info("package",
				"name", reply.Package.Name,
				"version", reply.Package.Version,
				"license", reply.Package.License,
			)
		case ReplyEndOfPackages:
			logger.Info("package listing complete")
		case ReplyIdentity:
			logger.Info("worker identity", "uid", *reply.UID)
		default:
			logger.Warn("unknown reply type", "type", reply.Type)
		}
	}

	return session.Wait()
}

// runServer is the worker role: recover the inherited listener, accept
// the single client connection, and answer requests until the request
// stream ends.
func runServer(logger *slog.Logger) error {
	logger.Info("worker starting", "uid", os.Getuid(), "elevated", elevate.Select() == elevate.Elevated)

	listener, err := elevate.Recover()
	if err != nil {
		return err
	}
	conn, err := elevate.AcceptOne(listener)
	if err != nil {
		return err
	}
	logger.Debug("client connected")

	ch := channel.New[Reply, Request](conn.(*net.UnixConn), codec.JSON{})
	incoming := ch.Incoming()
	for {
		request, err := incoming.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read request: %w", err)
		}
		if err := handle(ch, request, logger); err != nil {
			return err
		}
	}

	return ch.Shutdown(channel.Both)
}

func handle(ch *channel.Channel[Reply, Request], request Request, logger *slog.Logger) error {
	logger.Debug("request", "type", request.Type)
	switch request.Type {
	case RequestCompute:
		return ch.Send(Reply{
			Type:    ReplyComputed,
			Message: fmt.Sprintf("received value %d", request.Value),
		})
	case RequestListPackages:
		for _, pkg := range samplePackages() {
			if err := ch.Send(Reply{Type: ReplyPackage, Package: &pkg}); err != nil {
				return err
			}
		}
		return ch.Send(Reply{Type: ReplyEndOfPackages})
	case RequestIdentity:
		uid := os.Getuid()
		return ch.Send(Reply{Type: ReplyIdentity, UID: &uid})
	default:
		logger.Warn("unknown request type", "type", request.Type)
		return nil
	}
}
