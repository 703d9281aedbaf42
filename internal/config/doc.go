// Package config provides configuration loading, merging, and validation
// facilities for the Enquete client.
//
// Configuration is assembled from multiple sources; later sources override
// earlier non-zero fields:
//  1. Built-in defaults
//  2. JSON config file (path taken from CONFIG or -c/-config)
//  3. Environment variables
//  4. Command-line flags
//
// The main entry points are [GetStructuredConfig] for the raw merged view and
// [GetClientConfig] for the validated view used by the client runtime.
package config
