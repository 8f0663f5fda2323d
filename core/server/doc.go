// Package server holds the HTTP server configuration and project constants.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structures for server settings and the project
// identity (name, artist, calendar start date) embedded in the catalog artifact.
//
// # Configuration
//
// The Config struct defines the HTTP port, API key, and the project start date
// from which all release dates are derived.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the catalog feature to anchor day-to-date conversion.
package server
