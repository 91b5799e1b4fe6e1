// Package server owns the lifecycle of the board vault's inbound
// transport: constructing the HTTP server around the router, running it,
// and shutting it down gracefully on SIGINT/SIGTERM/SIGQUIT.
package server
