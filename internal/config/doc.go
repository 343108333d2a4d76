// Package config provides configuration loading, merging, and validation
// for walletd and walletctl.
//
// Configuration is assembled from multiple sources in the following priority
// order (an earlier non-zero field is never overridden):
//  1. Environment variables
//  2. Command-line flags (walletd only)
//  3. JSON config file
//  4. Built-in defaults
//
// The entry points are [GetStructuredConfig] for the coordinator and
// [GetClientConfig] for the CLI.
package config
