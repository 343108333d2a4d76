package server

import "context"

// Server defines the lifecycle contract of the coordinator server.
//
// RunServer blocks until a stop signal is received and everything has shut
// down. Shutdown stops the server from another goroutine.
type Server interface {
	RunServer()
	Shutdown()
}

// Background is a set of jobs that run for the lifetime of the server.
// [workers.Workers] satisfies it.
type Background interface {
	Start(ctx context.Context)
	Stop()
}
