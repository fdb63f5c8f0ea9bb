// Package server wires and runs the facade's HTTP server.
//
// It provides orchestration for the server lifecycle, including startup,
// optional TLS (from certificate files or a generated self-signed pair),
// signal handling, and graceful shutdown.
package server
