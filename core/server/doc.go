// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structure for server settings such as the listen port
// and the shared secret that guards the sync endpoint.
//
// # Configuration
//
// The Config struct defines the HTTP port, the shared secret (ApiKey), the header
// it travels in, allowed CORS origins and the version string reported by /health.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the auth middleware to validate incoming requests.
package server
