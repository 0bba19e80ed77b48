// Package http implements the local HTTP API of the go-aura daemon.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as bearer authentication, request tracing,
// access logging, response compression, PIN attempt throttling and integrity
// checks are handled in this package before requests are delegated to the
// service layer.
package http
