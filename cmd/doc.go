// Package cmd implements the command-line interface for the etcdc client.
// It provides a hierarchical command structure with operations for every
// API surface of the etcd cluster.
//
// The package is organized into several subpackages:
//
//   - kv: Commands for key-value store operations (get, set, delete, etc.)
//   - members: Commands for managing cluster membership
//   - stats: Commands for querying leader, member and store statistics
//   - auth: Commands for managing users, roles and the auth system
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See etcdc -help for a list of all commands.
package cmd
