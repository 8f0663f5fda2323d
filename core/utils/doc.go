// Package utils provides common utility functions for the release-manager application.
// It includes helper functions for type conversion of loosely-typed JSON and
// database values, and other shared logic that doesn't fit into domain-specific packages.
package utils
