// Package server runs the daemon's loopback HTTP API and optional gRPC health
// endpoint until the context is cancelled, then shuts both down.
package server
