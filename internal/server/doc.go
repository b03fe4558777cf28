// Package server runs the HTTP and gRPC transports of the door-keeper
// server and stops them together when the run context is cancelled.
package server
