// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win; merging only fills fields that are still zero):
//  1. Command-line overrides supplied by the CLI layer
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetClientConfig] for the check command and
// [GetServerConfig] for the HTTP facade; both are views over the merged
// [StructuredConfig].
package config
