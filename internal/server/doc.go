// Package server wires and runs the coordinator's transport server together
// with its background workers.
//
// It owns startup, signal handling and graceful shutdown: on SIGINT, SIGTERM
// or SIGQUIT the HTTP server stops accepting requests, in-flight requests are
// drained and the workers are stopped.
package server
