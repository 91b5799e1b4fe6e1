// Package config provides configuration loading, merging, and validation
// facilities for the board vault server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]. Validation is strict about
// the encryption secret: a server without one refuses to start.
package config
